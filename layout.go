package presskit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yohamta/donburi"
	"gopkg.in/yaml.v3"
)

// ErrLayout is returned for layout files that fail to decode or validate.
var ErrLayout = errors.New("presskit: invalid layout")

// Layout describes a console of buttons plus free-standing nodes. It is
// decoded from YAML or TOML and turned into nodes and entities by Build.
type Layout struct {
	Console *ConsoleLayout `yaml:"console" toml:"console"`
	Nodes   []NodeLayout   `yaml:"nodes"   toml:"nodes"`
}

// NodeLayout is a box node. Vectors are [x, y, z].
type NodeLayout struct {
	Name     string    `yaml:"name"     toml:"name"`
	Label    string    `yaml:"label"    toml:"label"`
	Position []float64 `yaml:"position" toml:"position"`
	Rotation []float64 `yaml:"rotation" toml:"rotation"`
	Size     []float64 `yaml:"size"     toml:"size"`
	Color    string    `yaml:"color"    toml:"color"`
	Hidden   bool      `yaml:"hidden"   toml:"hidden"`

	// Rotate spins the node at this many radians per second.
	Rotate float64 `yaml:"rotate" toml:"rotate"`
	// Instruction shows the node only while a hand is tracked.
	Instruction bool `yaml:"instruction" toml:"instruction"`
}

// ConsoleLayout is the panel that carries the buttons. When Calibrate is
// set, the console is placed at the viewer position plus that offset once a
// session starts.
type ConsoleLayout struct {
	NodeLayout `yaml:",inline"`

	Calibrate []float64      `yaml:"calibrate" toml:"calibrate"`
	Buttons   []ButtonLayout `yaml:"buttons"   toml:"buttons"`
}

// ButtonLayout is a button node parented to the console.
type ButtonLayout struct {
	NodeLayout `yaml:",inline"`

	SurfaceY  float64 `yaml:"surface_y"  toml:"surface_y"`
	FullPress float64 `yaml:"full_press" toml:"full_press"`
	Recovery  float64 `yaml:"recovery"   toml:"recovery"`
	Action    string  `yaml:"action"     toml:"action"`
}

// Config returns the button's authoring config.
func (b ButtonLayout) Config() ButtonConfig {
	return ButtonConfig{
		SurfaceY:          b.SurfaceY,
		FullPressDistance: b.FullPress,
		RecoverySpeed:     b.Recovery,
		Action:            b.Action,
	}
}

// Built is the result of Build: every created node by name, and the entity
// of every button by node name.
type Built struct {
	Nodes   map[string]*Node
	Buttons map[string]donburi.Entity
	Console *Node
}

// ParseLayout decodes a layout. format is "yaml", "yml" or "toml".
func ParseLayout(data []byte, format string) (*Layout, error) {
	var l Layout
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("%w: decode yaml: %w", ErrLayout, err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("%w: decode toml: %w", ErrLayout, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrLayout, format)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// LoadLayout reads a layout file, picking the decoder by extension.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	l, err := ParseLayout(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}
	return l, nil
}

// Validate checks names, vector shapes, colors and button configs.
func (l *Layout) Validate() error {
	var errs []error
	seen := make(map[string]bool)
	check := func(n NodeLayout) {
		if n.Name == "" {
			errs = append(errs, fmt.Errorf("%w: node without a name", ErrLayout))
			return
		}
		if seen[n.Name] {
			errs = append(errs, fmt.Errorf("%w: duplicate node name %q", ErrLayout, n.Name))
		}
		seen[n.Name] = true
		vecs := []struct {
			field string
			v     []float64
		}{{"position", n.Position}, {"rotation", n.Rotation}, {"size", n.Size}}
		for _, vec := range vecs {
			if vec.v != nil && len(vec.v) != 3 {
				errs = append(errs, fmt.Errorf("%w: %s.%s needs 3 values, got %d", ErrLayout, n.Name, vec.field, len(vec.v)))
			}
		}
		if _, err := parseColor(n.Color); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s.color: %w", ErrLayout, n.Name, err))
		}
	}

	if c := l.Console; c != nil {
		check(c.NodeLayout)
		if c.Calibrate != nil && len(c.Calibrate) != 3 {
			errs = append(errs, fmt.Errorf("%w: %s.calibrate needs 3 values, got %d", ErrLayout, c.Name, len(c.Calibrate)))
		}
		for _, b := range c.Buttons {
			check(b.NodeLayout)
			if len(b.Size) == 0 {
				errs = append(errs, fmt.Errorf("%w: button %q needs a size", ErrLayout, b.Name))
			}
			if err := b.Config().Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%w: button %q: %w", ErrLayout, b.Name, err))
			}
		}
	}
	for _, n := range l.Nodes {
		check(n)
	}
	return errors.Join(errs...)
}

// Build creates the layout's nodes under s.Root() and registers their
// entities with s.
func (l *Layout) Build(s *Scene) (*Built, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	out := &Built{
		Nodes:   make(map[string]*Node),
		Buttons: make(map[string]donburi.Entity),
	}

	if c := l.Console; c != nil {
		console := l.node(c.NodeLayout)
		s.Root().AddChild(console)
		out.Nodes[console.Name] = console
		out.Console = console
		if c.Calibrate != nil {
			if _, err := s.AddCalibrated(console, vec3(c.Calibrate)); err != nil {
				return nil, fmt.Errorf("build console: %w", err)
			}
		}
		if err := l.decorate(s, console, c.NodeLayout); err != nil {
			return nil, err
		}
		for _, b := range c.Buttons {
			node := l.node(b.NodeLayout)
			console.AddChild(node)
			out.Nodes[node.Name] = node
			e, err := s.AddButton(node, b.Config())
			if err != nil {
				return nil, fmt.Errorf("build button %q: %w", b.Name, err)
			}
			out.Buttons[node.Name] = e
		}
	}

	for _, n := range l.Nodes {
		node := l.node(n)
		s.Root().AddChild(node)
		out.Nodes[node.Name] = node
		if err := l.decorate(s, node, n); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (l *Layout) node(n NodeLayout) *Node {
	var node *Node
	if len(n.Size) == 3 {
		node = NewBox(n.Name, n.Size[0], n.Size[1], n.Size[2])
	} else {
		node = NewNode(n.Name)
	}
	if p := vec3(n.Position); p != (Vec3{}) {
		node.SetPosition(p.X, p.Y, p.Z)
	}
	if r := vec3(n.Rotation); r != (Vec3{}) {
		node.SetRotation(r.X, r.Y, r.Z)
	}
	if c, _ := parseColor(n.Color); n.Color != "" {
		node.Color = c
	}
	node.Label = n.Label
	node.Visible = !n.Hidden
	return node
}

func (l *Layout) decorate(s *Scene, node *Node, n NodeLayout) error {
	if n.Rotate != 0 {
		if _, err := s.AddRotating(node, n.Rotate); err != nil {
			return fmt.Errorf("build %q: %w", n.Name, err)
		}
	}
	if n.Instruction {
		if _, err := s.AddInstruction(node); err != nil {
			return fmt.Errorf("build %q: %w", n.Name, err)
		}
	}
	return nil
}

func vec3(v []float64) Vec3 {
	if len(v) != 3 {
		return Vec3{}
	}
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// parseColor accepts "#rrggbb", "0xrrggbb" or an empty string (white).
func parseColor(s string) (Color, error) {
	if s == "" {
		return ColorWhite, nil
	}
	hex := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("want 6 hex digits, got %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return ColorFromHex(uint32(v)), nil
}
