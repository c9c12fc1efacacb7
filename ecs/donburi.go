package ecs

import (
	"github.com/phanxgames/presskit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ButtonEventType is the Donburi event type for presskit button events.
// Subscribe to this in your ECS systems to receive press and release edges.
var ButtonEventType = events.NewEventType[presskit.ButtonEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a host Donburi world.
// Button events are published to ButtonEventType and can be consumed with
// events.Subscribe and ProcessEvents in the host's own frame.
func NewDonburiSink(world donburi.World) presskit.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event presskit.ButtonEvent) {
	ButtonEventType.Publish(s.world, event)
}

// Attach installs a Donburi sink for world on scene and returns it.
func Attach(scene *presskit.Scene, world donburi.World) presskit.EventSink {
	sink := NewDonburiSink(world)
	scene.SetEventSink(sink)
	return sink
}
