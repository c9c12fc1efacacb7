package presskit

import (
	"github.com/yohamta/donburi"
)

// DefaultRotationRate is the spin rate used by the console demo's knot.
const DefaultRotationRate = 0.4

// RotationSystem spins Rotating nodes around X and Y.
type RotationSystem struct{}

// Name implements System.
func (RotationSystem) Name() string { return "rotation" }

// Update implements System.
func (RotationSystem) Update(f *Frame) {
	rotatingQuery.Each(f.World, func(entry *donburi.Entry) {
		node := nodeOf(entry)
		if node == nil {
			return
		}
		step := Rotating.Get(entry).Rate * f.Delta
		node.SetRotation(node.RotX+step, node.RotY+step, node.RotZ)
	})
}

// InstructionSystem shows instruction nodes while any hand is tracked.
type InstructionSystem struct{}

// Name implements System.
func (InstructionSystem) Name() string { return "instruction" }

// Update implements System.
func (InstructionSystem) Update(f *Frame) {
	visible := anyTracked(f.Hands)
	instructionQuery.Each(f.World, func(entry *donburi.Entry) {
		if node := nodeOf(entry); node != nil {
			node.Visible = visible
		}
	})
}
