package presskit

import (
	"github.com/yohamta/donburi"
)

// ButtonDispatchSystem reacts to the state transitions finger input produced
// in the previous frame: it plays cues, emits ButtonEvents, then ages the
// state. It must run before FingerInputSystem in the frame order.
type ButtonDispatchSystem struct {
	// local backs audio backends that cannot be shared across scenes.
	local audioBinding
}

// Name implements System.
func (*ButtonDispatchSystem) Name() string { return "button_dispatch" }

// Update implements System.
func (sys *ButtonDispatchSystem) Update(f *Frame) {
	bnd := sys.bindingFor(f.Audio)
	listenerBindings.Lock()
	bnd.advance(f)
	bound, press, release := bnd.state == bindBound, bnd.press, bnd.release
	listenerBindings.Unlock()

	buttonQuery.Each(f.World, func(entry *donburi.Entry) {
		b := ButtonComponent.Get(entry)
		node := nodeOf(entry)
		if node == nil {
			return
		}
		if b.captureRestingY(node.Y) {
			f.Logger.Debug("resting height captured", "node", node.Name, "y", node.Y)
		}
		if bound {
			b.adoptSounds(press, release)
		}

		if b.CurrState == StateFullyPressed && b.PrevState != StateFullyPressed {
			playOnce(f.Audio, b.PressSound)
			sys.emit(f, entry, b, node, EventFullyPressed)
		}
		if b.CurrState == StateRecovering && b.PrevState != StateRecovering {
			playOnce(f.Audio, b.ReleaseSound)
			sys.emit(f, entry, b, node, EventReleased)
		}

		if b.CurrState != b.PrevState {
			f.Logger.Debug("button state", "node", node.Name, "from", b.PrevState, "to", b.CurrState, "frame", f.Index)
		}
		b.PrevState = b.CurrState
		b.CurrState = StateResting
	})

	buttonEvents.ProcessEvents(f.World)
}

// bindingFor returns the binding shared by every scene using a.
func (sys *ButtonDispatchSystem) bindingFor(a Audio) *audioBinding {
	if b := sharedBinding(a); b != nil {
		return b
	}
	return &sys.local
}

func (sys *ButtonDispatchSystem) emit(f *Frame, entry *donburi.Entry, b *Button, node *Node, typ EventType) {
	buttonEvents.Publish(f.World, ButtonEvent{
		Type:   typ,
		Entity: entry.Entity(),
		Node:   node,
		Action: b.Action,
		Frame:  f.Index,
	})
}
