package presskit

import (
	"strconv"

	"github.com/yohamta/donburi"
)

// HandSample is one hand source as seen by a frame.
type HandSample struct {
	Name      string
	Present   bool
	Tracked   bool
	Fingertip Vec3
}

// ButtonSample is one button after finger input ran.
type ButtonSample struct {
	Entity donburi.Entity
	Node   string
	State  ButtonState
	Y      float64
}

// FrameSnapshot is the settled state of a frame handed to observers. The
// slices are reused between frames; observers that keep them must copy.
type FrameSnapshot struct {
	Index   uint64
	Delta   float64
	Elapsed float64
	Hands   []HandSample
	Buttons []ButtonSample
	Events  []ButtonEvent
}

// FrameObserver receives a snapshot after every frame in which systems ran.
type FrameObserver interface {
	ObserveFrame(snap *FrameSnapshot)
}

func (s *Scene) fillSnapshot(f *Frame) {
	snap := &s.snapshot
	snap.Index = f.Index
	snap.Delta = f.Delta
	snap.Elapsed = f.Elapsed

	snap.Hands = snap.Hands[:0]
	for i, h := range s.hands {
		sample := HandSample{Name: handLabel(h, i)}
		if h != nil {
			sample.Present = true
			sample.Tracked = true
			if t, ok := h.(Tracker); ok {
				sample.Tracked = t.IsTracked()
			}
			sample.Fingertip = h.FingertipWorldPosition()
		}
		snap.Hands = append(snap.Hands, sample)
	}

	snap.Buttons = snap.Buttons[:0]
	buttonQuery.Each(s.world, func(entry *donburi.Entry) {
		node := nodeOf(entry)
		if node == nil {
			return
		}
		snap.Buttons = append(snap.Buttons, ButtonSample{
			Entity: entry.Entity(),
			Node:   node.Name,
			State:  ButtonComponent.Get(entry).CurrState,
			Y:      node.Y,
		})
	})

	snap.Events = append(snap.Events[:0], s.frameEvents...)
}

func handLabel(h HandSource, i int) string {
	if hand, ok := h.(*Hand); ok && hand != nil && hand.Name != "" {
		return hand.Name
	}
	return "hand" + strconv.Itoa(i)
}
