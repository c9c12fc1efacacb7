package presskit

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/component"
	"github.com/yohamta/donburi/filter"
)

// NodeRefData is a non-owning reference from an entity to a scene node.
type NodeRefData struct {
	Node *Node
}

// RotatingData configures continuous rotation around the X and Y axes.
type RotatingData struct {
	// Rate is the angular speed in radians per second.
	Rate float64
}

// Component types. Each is registered with donburi once at package init;
// queries below are built from them and cache their archetype matches.
var (
	ButtonComponent  = donburi.NewComponentType[Button]()
	Pressable        = donburi.NewTag().SetName("Pressable")
	NodeRef          = donburi.NewComponentType[NodeRefData]()
	NeedsCalibration = donburi.NewTag().SetName("NeedsCalibration")
	OffsetFromCamera = donburi.NewComponentType[Vec3]()
	Rotating         = donburi.NewComponentType[RotatingData]()
	InstructionTag   = donburi.NewTag().SetName("Instruction")
)

var (
	pressableQuery   = donburi.NewQuery(filter.Contains(ButtonComponent, Pressable, NodeRef))
	buttonQuery      = donburi.NewQuery(filter.Contains(ButtonComponent, NodeRef))
	calibrationQuery = donburi.NewQuery(filter.Contains(NeedsCalibration, OffsetFromCamera, NodeRef))
	rotatingQuery    = donburi.NewQuery(filter.Contains(Rotating, NodeRef))
	instructionQuery = donburi.NewQuery(filter.Contains(InstructionTag, NodeRef))
)

// nodeOf returns the node referenced by entry, or nil.
func nodeOf(entry *donburi.Entry) *Node {
	return NodeRef.Get(entry).Node
}

// AddButton creates a pressable button entity bound to node.
// The config is validated before anything is created.
func (s *Scene) AddButton(node *Node, cfg ButtonConfig) (donburi.Entity, error) {
	if node == nil {
		return donburi.Null, ErrNoNode
	}
	if err := cfg.Validate(); err != nil {
		return donburi.Null, err
	}
	e := s.world.Create(ButtonComponent, Pressable, NodeRef)
	entry := s.world.Entry(e)
	ButtonComponent.SetValue(entry, newButton(cfg))
	NodeRef.SetValue(entry, NodeRefData{Node: node})
	s.byEntity[e] = node
	return e, nil
}

// AddCalibrated creates an entity that places node at the viewer position
// plus offset the first frame a session is active.
func (s *Scene) AddCalibrated(node *Node, offset Vec3) (donburi.Entity, error) {
	if node == nil {
		return donburi.Null, ErrNoNode
	}
	e := s.world.Create(NeedsCalibration, OffsetFromCamera, NodeRef)
	entry := s.world.Entry(e)
	OffsetFromCamera.SetValue(entry, offset)
	NodeRef.SetValue(entry, NodeRefData{Node: node})
	s.byEntity[e] = node
	return e, nil
}

// AddRotating creates an entity that spins node at rate radians per second.
func (s *Scene) AddRotating(node *Node, rate float64) (donburi.Entity, error) {
	if node == nil {
		return donburi.Null, ErrNoNode
	}
	e := s.world.Create(Rotating, NodeRef)
	entry := s.world.Entry(e)
	Rotating.SetValue(entry, RotatingData{Rate: rate})
	NodeRef.SetValue(entry, NodeRefData{Node: node})
	s.byEntity[e] = node
	return e, nil
}

// AddInstruction creates an entity whose node is shown only while at least
// one hand is tracked.
func (s *Scene) AddInstruction(node *Node) (donburi.Entity, error) {
	if node == nil {
		return donburi.Null, ErrNoNode
	}
	e := s.world.Create(InstructionTag, NodeRef)
	NodeRef.SetValue(s.world.Entry(e), NodeRefData{Node: node})
	s.byEntity[e] = node
	return e, nil
}

// Button returns a copy of the button component of e.
func (s *Scene) Button(e donburi.Entity) (Button, bool) {
	if !s.world.Valid(e) {
		return Button{}, false
	}
	entry := s.world.Entry(e)
	if !entry.HasComponent(ButtonComponent) {
		return Button{}, false
	}
	return *ButtonComponent.Get(entry), true
}

// HasComponent reports whether e currently carries the component type c.
func (s *Scene) HasComponent(e donburi.Entity, c component.IComponentType) bool {
	if !s.world.Valid(e) {
		return false
	}
	return s.world.Entry(e).HasComponent(c)
}

// NodeOf returns the node bound to entity e, or nil.
func (s *Scene) NodeOf(e donburi.Entity) *Node {
	return s.byEntity[e]
}

// World returns the underlying donburi world.
func (s *Scene) World() donburi.World {
	return s.world
}
