// Package presskit turns 3D hand-tracking samples into edge-triggered button
// press and release events.
//
// A [Scene] owns a node tree, a [Donburi] world and a fixed system schedule.
// Every call to [Scene.Update] runs, in order: the cosmetic systems
// (rotation, instruction visibility, tweens), calibration, button dispatch
// and finger input. Dispatch deliberately runs before finger input: it
// reacts to the state finger input wrote on the previous frame, then ages it,
// so an action fires once per press however long the finger dwells.
//
// # Quick start
//
//	scene := presskit.NewScene()
//
//	console := presskit.NewBox("console", 0.6, 0.12, 0.15)
//	scene.Root().AddChild(console)
//	scene.AddCalibrated(console, presskit.Vec3{Y: -0.4, Z: -0.3})
//
//	btn := presskit.NewBox("orange", 0.08, 0.1, 0.08)
//	btn.SetPosition(-0.15, 0.04, 0)
//	console.AddChild(btn)
//	scene.AddButton(btn, presskit.ButtonConfig{
//		SurfaceY: 0.05, FullPressDistance: 0.02, Action: "tint",
//	})
//	scene.RegisterAction("tint", func(ev presskit.ButtonEvent) { ... })
//
//	hand := presskit.NewHand("right")
//	scene.SetHands(hand)
//	scene.SetSession(&presskit.StaticSession{Active: true})
//
//	for {
//		hand.SetPose(readFingertip())
//		scene.Update(1.0 / 60)
//	}
//
// For a desktop window with a mouse-driven hand and a debug renderer, use
// [Run] with a [PointerHand].
//
// # Buttons
//
// A button moves along its local Y axis. Its rest height is captured from
// the node the first frame it is seen. A touching fingertip pushes it down
// by how far the tip is below SurfaceY; at FullPressDistance below rest it
// clamps and becomes FullyPressed. Untouched, it rises back at RecoverySpeed.
// When several hands touch the same button, the deepest press wins.
//
// # Events
//
// Edges are delivered as [ButtonEvent] values to [Scene.OnFullyPressed],
// [Scene.OnReleased], the named action registered with
// [Scene.RegisterAction], and an optional [EventSink] (see presskit/ecs).
//
// # Testing and replay
//
// [Hand.InjectPress] and friends queue fingertip poses one per frame;
// [LoadTestScript] sequences them from JSON. The presskit/trace package
// records every frame to a CBOR file and replays it.
//
// [Donburi]: https://github.com/yohamta/donburi
package presskit
