package presskit

import (
	"errors"
	"fmt"
	"slices"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ButtonEvent is emitted by the dispatch system on a button state edge.
type ButtonEvent struct {
	Type   EventType
	Entity donburi.Entity
	Node   *Node
	Action string
	Frame  uint64
}

// EventSink is the interface for optional ECS integration.
// When set on a Scene, button events are forwarded to it after the scene's
// own handlers have run.
type EventSink interface {
	EmitEvent(event ButtonEvent)
}

// buttonEvents is the queue the dispatch system publishes into. It is
// drained at the end of each dispatch pass.
var buttonEvents = events.NewEventType[ButtonEvent]()

// ErrUnknownAction is returned when a button names an action that has not
// been registered.
var ErrUnknownAction = errors.New("presskit: unknown action")

// --- Handler registry ---

type buttonHandler struct {
	id uint32
	fn func(ButtonEvent)
}

type handlerRegistry struct {
	fullyPressed []buttonHandler
	released     []buttonHandler
	actions      map[string]buttonHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id     uint32
	reg    *handlerRegistry
	event  EventType
	action string
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	if h.action != "" {
		if cur, ok := h.reg.actions[h.action]; ok && cur.id == h.id {
			delete(h.reg.actions, h.action)
		}
		return
	}
	switch h.event {
	case EventFullyPressed:
		h.reg.fullyPressed = removeButtonHandler(h.reg.fullyPressed, h.id)
	case EventReleased:
		h.reg.released = removeButtonHandler(h.reg.released, h.id)
	}
}

func removeButtonHandler(s []buttonHandler, id uint32) []buttonHandler {
	for i := range s {
		if s[i].id == id {
			// A fresh slice leaves any delivery loop ranging over s intact.
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

// OnFullyPressed registers a scene-level callback fired for every button
// that enters FullyPressed.
func (s *Scene) OnFullyPressed(fn func(ButtonEvent)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.fullyPressed = append(s.handlers.fullyPressed, buttonHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventFullyPressed}
}

// OnReleased registers a scene-level callback fired for every button that
// starts recovering.
func (s *Scene) OnReleased(fn func(ButtonEvent)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.released = append(s.handlers.released, buttonHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventReleased}
}

// RegisterAction binds a named action. Buttons whose config names it invoke
// fn once per full press. Registering a name again replaces the handler.
func (s *Scene) RegisterAction(name string, fn func(ButtonEvent)) CallbackHandle {
	if s.handlers.actions == nil {
		s.handlers.actions = make(map[string]buttonHandler)
	}
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.actions[name] = buttonHandler{id: id, fn: fn}
	return CallbackHandle{id: id, reg: &s.handlers, event: EventFullyPressed, action: name}
}

// CheckActions reports every button whose action has no registered handler.
func (s *Scene) CheckActions() error {
	var errs []error
	buttonQuery.Each(s.world, func(entry *donburi.Entry) {
		b := ButtonComponent.Get(entry)
		if b.Action == "" {
			return
		}
		if _, ok := s.handlers.actions[b.Action]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q on node %q", ErrUnknownAction, b.Action, nodeOf(entry).Name))
		}
	})
	return errors.Join(errs...)
}

// deliver routes one event to scene handlers, the named action and the sink.
func (s *Scene) deliver(_ donburi.World, ev ButtonEvent) {
	switch ev.Type {
	case EventFullyPressed:
		for _, h := range slices.Clone(s.handlers.fullyPressed) {
			h.fn(ev)
		}
		if ev.Action != "" {
			if h, ok := s.handlers.actions[ev.Action]; ok {
				h.fn(ev)
			} else {
				s.logger.Warn("button action not registered", "action", ev.Action, "node", nodeName(ev.Node))
			}
		}
	case EventReleased:
		for _, h := range slices.Clone(s.handlers.released) {
			h.fn(ev)
		}
	}
	if s.sink != nil {
		s.sink.EmitEvent(ev)
	}
	s.frameEvents = append(s.frameEvents, ev)
}

func nodeName(n *Node) string {
	if n == nil {
		return ""
	}
	return n.Name
}
