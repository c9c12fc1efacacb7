package ecs

import (
	"testing"

	"github.com/phanxgames/presskit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []presskit.ButtonEvent
	ButtonEventType.Subscribe(world, func(w donburi.World, e presskit.ButtonEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(presskit.ButtonEvent{
		Type:   presskit.EventFullyPressed,
		Action: "tint",
		Frame:  7,
	})
	sink.EmitEvent(presskit.ButtonEvent{
		Type:  presskit.EventReleased,
		Frame: 9,
	})

	// Events are queued; process them.
	ButtonEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e0 := received[0]; e0.Type != presskit.EventFullyPressed || e0.Action != "tint" || e0.Frame != 7 {
		t.Errorf("event 0: %+v", e0)
	}
	if e1 := received[1]; e1.Type != presskit.EventReleased || e1.Frame != 9 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	ButtonEventType.Subscribe(world, func(w donburi.World, e presskit.ButtonEvent) {
		count1++
	})
	ButtonEventType.Subscribe(world, func(w donburi.World, e presskit.ButtonEvent) {
		count2++
	})

	sink.EmitEvent(presskit.ButtonEvent{Type: presskit.EventFullyPressed})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestAttach_ForwardsScenePresses(t *testing.T) {
	host := donburi.NewWorld()
	scene := presskit.NewScene()
	Attach(scene, host)

	console := presskit.NewBox("console", 0.6, 0.12, 0.15)
	scene.Root().AddChild(console)
	btn := presskit.NewBox("orange", 0.08, 0.1, 0.08)
	btn.SetPosition(-0.15, 0.04, 0)
	console.AddChild(btn)
	if _, err := scene.AddButton(btn, presskit.ButtonConfig{SurfaceY: 0.05, FullPressDistance: 0.02}); err != nil {
		t.Fatal(err)
	}

	hand := presskit.NewHand("right")
	scene.SetHands(hand)
	scene.SetSession(&presskit.StaticSession{Active: true})

	var pressed int
	ButtonEventType.Subscribe(host, func(w donburi.World, e presskit.ButtonEvent) {
		if e.Type == presskit.EventFullyPressed && e.Node == btn {
			pressed++
		}
	})

	// Frame 1 captures the rest height; later frames press and hold.
	scene.Update(1.0 / 60)
	hand.SetPose(btn.LocalToWorld(presskit.Vec3{Y: 0}))
	for i := 0; i < 5; i++ {
		scene.Update(1.0 / 60)
	}
	ButtonEventType.ProcessEvents(host)

	if pressed != 1 {
		t.Errorf("host saw %d presses, want 1", pressed)
	}
}
