package trace

import (
	"time"

	"github.com/phanxgames/presskit"
)

// Version is the trace format version written in every header.
const Version = 1

// Record is one entry in a trace file. Exactly one field is set.
type Record struct {
	Header *Header `cbor:"1,keyasint,omitempty"`
	Frame  *Frame  `cbor:"2,keyasint,omitempty"`
}

// Header opens a trace.
type Header struct {
	// SessionID identifies the recording (UUID).
	SessionID string    `cbor:"1,keyasint"`
	Started   time.Time `cbor:"2,keyasint"`
	Version   uint8     `cbor:"3,keyasint"`
}

// Frame is one settled scene frame.
type Frame struct {
	Index   uint64   `cbor:"1,keyasint"`
	Delta   float64  `cbor:"2,keyasint"`
	Elapsed float64  `cbor:"3,keyasint"`
	Hands   []Hand   `cbor:"4,keyasint,omitempty"`
	Buttons []Button `cbor:"5,keyasint,omitempty"`
	Events  []Event  `cbor:"6,keyasint,omitempty"`
}

// Hand is a recorded hand source.
type Hand struct {
	Name      string        `cbor:"1,keyasint"`
	Present   bool          `cbor:"2,keyasint,omitempty"`
	Tracked   bool          `cbor:"3,keyasint,omitempty"`
	Fingertip presskit.Vec3 `cbor:"4,keyasint"`
}

// Button is a recorded button after finger input.
type Button struct {
	Node  string               `cbor:"1,keyasint"`
	State presskit.ButtonState `cbor:"2,keyasint"`
	Y     float64              `cbor:"3,keyasint"`
}

// Event is a recorded button event.
type Event struct {
	Type   presskit.EventType `cbor:"1,keyasint"`
	Node   string             `cbor:"2,keyasint"`
	Action string             `cbor:"3,keyasint,omitempty"`
}

// Hand returns the recorded hand with the given name.
func (f *Frame) Hand(name string) (Hand, bool) {
	for _, h := range f.Hands {
		if h.Name == name {
			return h, true
		}
	}
	return Hand{}, false
}

// Button returns the recorded button with the given node name.
func (f *Frame) Button(node string) (Button, bool) {
	for _, b := range f.Buttons {
		if b.Node == node {
			return b, true
		}
	}
	return Button{}, false
}

// frameFromSnapshot copies a snapshot into a Frame record.
func frameFromSnapshot(snap *presskit.FrameSnapshot) *Frame {
	f := &Frame{
		Index:   snap.Index,
		Delta:   snap.Delta,
		Elapsed: snap.Elapsed,
	}
	for _, h := range snap.Hands {
		f.Hands = append(f.Hands, Hand{
			Name:      h.Name,
			Present:   h.Present,
			Tracked:   h.Tracked,
			Fingertip: h.Fingertip,
		})
	}
	for _, b := range snap.Buttons {
		f.Buttons = append(f.Buttons, Button{Node: b.Node, State: b.State, Y: b.Y})
	}
	for _, ev := range snap.Events {
		node := ""
		if ev.Node != nil {
			node = ev.Node.Name
		}
		f.Events = append(f.Events, Event{Type: ev.Type, Node: node, Action: ev.Action})
	}
	return f
}
