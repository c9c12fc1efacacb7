package presskit

import (
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandBox       CommandType = iota // filled box with outline
	CommandLabel                        // debug text
	CommandFingertip                    // hand marker
)

// RenderCommand is a single draw instruction emitted during scene traversal.
type RenderCommand struct {
	Type  CommandType
	Rect  Rect
	Color color.RGBA
	Text  string
	// Depth orders commands back to front; larger is nearer the camera.
	Depth     float64
	treeOrder int
}

var (
	outlineColor   = color.RGBA{0, 0, 0, 200}
	fingertipColor = color.RGBA{90, 220, 255, 255}
	untrackedColor = color.RGBA{120, 120, 120, 160}
)

// fingertipPixels is the on-screen radius of a fingertip marker.
const fingertipPixels = 5

// BuildCommands traverses the visible node tree and the scene hands and
// returns draw commands sorted back to front for cam. The returned slice is
// reused by the next call.
func (s *Scene) BuildCommands(cam *Camera) []RenderCommand {
	s.commands = s.commands[:0]
	order := 0
	s.traverse(s.root, cam, &order)

	for _, h := range s.hands {
		if h == nil {
			continue
		}
		clr := fingertipColor
		if t, ok := h.(Tracker); ok && !t.IsTracked() {
			clr = untrackedColor
		}
		p := h.FingertipWorldPosition()
		sx, sy := cam.WorldToScreen(p)
		_, _, depth := cam.plane(p)
		order++
		s.commands = append(s.commands, RenderCommand{
			Type:      CommandFingertip,
			Rect:      Rect{X: sx, Y: sy},
			Color:     clr,
			Depth:     depth,
			treeOrder: order,
		})
	}

	slices.SortStableFunc(s.commands, func(a, b RenderCommand) int {
		switch {
		case a.Type == CommandLabel && b.Type != CommandLabel:
			return 1
		case b.Type == CommandLabel && a.Type != CommandLabel:
			return -1
		case a.Depth < b.Depth:
			return -1
		case a.Depth > b.Depth:
			return 1
		}
		return a.treeOrder - b.treeOrder
	})
	return s.commands
}

// traverse walks the node tree depth-first, emitting commands for visible
// nodes with bounds or a label. Invisible nodes hide their subtree.
func (s *Scene) traverse(n *Node, cam *Camera, order *int) {
	if !n.Visible || n.disposed {
		return
	}
	if !n.Bounds.IsEmpty() {
		wb := n.WorldBounds()
		_, _, depth := cam.plane(wb.Max)
		*order++
		s.commands = append(s.commands, RenderCommand{
			Type:      CommandBox,
			Rect:      cam.ScreenRect(wb),
			Color:     n.Color.RGBA(),
			Depth:     depth,
			treeOrder: *order,
		})
	}
	if n.Label != "" {
		sx, sy := cam.WorldToScreen(n.WorldPosition())
		*order++
		s.commands = append(s.commands, RenderCommand{
			Type:      CommandLabel,
			Rect:      Rect{X: sx, Y: sy},
			Text:      n.Label,
			treeOrder: *order,
		})
	}
	for _, c := range n.children {
		s.traverse(c, cam, order)
	}
}

// Draw renders the scene through every camera added with AddCamera. With no
// cameras, a front camera centered on the origin fills the screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.RGBA())
	cams := s.cameras
	if len(cams) == 0 {
		b := screen.Bounds()
		cam := NewCamera(Rect{Width: float64(b.Dx()), Height: float64(b.Dy())}, ProjectFront)
		cam.Zoom = defaultZoom
		cams = []*Camera{cam}
	}
	for _, cam := range cams {
		for _, cmd := range s.BuildCommands(cam) {
			submit(screen, cmd)
		}
	}
}

// defaultZoom shows roughly a metre across a 640px window.
const defaultZoom = 600

func submit(dst *ebiten.Image, cmd RenderCommand) {
	r := cmd.Rect
	switch cmd.Type {
	case CommandBox:
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), cmd.Color, false)
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, outlineColor, false)
	case CommandFingertip:
		vector.DrawFilledCircle(dst, float32(r.X), float32(r.Y), fingertipPixels, cmd.Color, true)
	case CommandLabel:
		ebitenutil.DebugPrintAt(dst, cmd.Text, int(r.X), int(r.Y))
	}
}

// AddCamera adds a view drawn by Draw.
func (s *Scene) AddCamera(cam *Camera) {
	s.cameras = append(s.cameras, cam)
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}
