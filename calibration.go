package presskit

import (
	"github.com/yohamta/donburi"
)

// CalibrationSystem places each NeedsCalibration node at the viewer position
// plus its offset, once, on the first frame a session is active. The tag is
// then removed so the entity leaves the query for good.
type CalibrationSystem struct {
	done []*donburi.Entry
}

// Name implements System.
func (*CalibrationSystem) Name() string { return "calibration" }

// Update implements System.
func (sys *CalibrationSystem) Update(f *Frame) {
	if f.Session == nil || !f.Session.IsActive() {
		return
	}
	viewer := f.Session.ViewerWorldPosition()

	sys.done = sys.done[:0]
	calibrationQuery.Each(f.World, func(entry *donburi.Entry) {
		node := nodeOf(entry)
		if node == nil {
			return
		}
		p := viewer.Add(OffsetFromCamera.GetValue(entry))
		node.SetPosition(p.X, p.Y, p.Z)
		sys.done = append(sys.done, entry)
		f.Logger.Info("calibrated", "node", node.Name, "x", p.X, "y", p.Y, "z", p.Z)
	})

	// Removing a component moves the entry to another archetype, so it is
	// done after the query has finished iterating.
	for _, entry := range sys.done {
		entry.RemoveComponent(NeedsCalibration)
	}
}
