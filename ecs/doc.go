// Package ecs provides ECS adapters for presskit's button event system.
//
// The primary adapter is [NewDonburiSink], which forwards presskit button
// events (fully pressed, released) into a host [Donburi] world as typed
// events. Subscribe to [ButtonEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
