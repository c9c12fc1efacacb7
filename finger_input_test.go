package presskit

import (
	"math"
	"testing"
)

const testDT = 0.01

func TestFingerInputFullPressClamp(t *testing.T) {
	s := NewScene()
	node, e := newTestButton(t, s, "btn", defaultConfig())
	hand := NewHand("right")
	s.SetHands(hand)

	// Tip at the button origin is 0.05 below the surface, well past the
	// 0.02 full-press floor.
	hand.SetPose(node.LocalToWorld(Vec3{}))
	s.Update(testDT)

	assertNear(t, "node.Y", node.Y, 0.02)
	if got := mustButton(t, s, e).CurrState; got != StateFullyPressed {
		t.Errorf("CurrState = %v, want fully_pressed", got)
	}
}

func TestFingerInputPartialPress(t *testing.T) {
	s := NewScene()
	node, e := newTestButton(t, s, "btn", defaultConfig())
	hand := NewHand("right")
	s.SetHands(hand)

	hand.SetPose(node.LocalToWorld(Vec3{Y: 0.045}))
	s.Update(testDT)

	assertNear(t, "node.Y", node.Y, 0.035)
	if got := mustButton(t, s, e).CurrState; got != StatePressed {
		t.Errorf("CurrState = %v, want pressed", got)
	}

	// The surface now sits at the tip: holding still pushes no further.
	s.Update(testDT)
	assertNear(t, "node.Y held", node.Y, 0.035)
}

func TestFingerInputMaxDistanceWins(t *testing.T) {
	for _, order := range []string{"shallow first", "deep first"} {
		t.Run(order, func(t *testing.T) {
			s := NewScene()
			node, e := newTestButton(t, s, "btn", ButtonConfig{SurfaceY: 0.05, FullPressDistance: 0.1})
			shallow := NewHand("left")
			deep := NewHand("right")
			shallow.SetPose(node.LocalToWorld(Vec3{Y: 0.04})) // 0.01 below the surface
			deep.SetPose(node.LocalToWorld(Vec3{Y: 0.02}))    // 0.03 below
			if order == "shallow first" {
				s.SetHands(shallow, deep)
			} else {
				s.SetHands(deep, shallow)
			}

			s.Update(testDT)

			assertNear(t, "node.Y", node.Y, 0.01)
			if got := mustButton(t, s, e).CurrState; got != StatePressed {
				t.Errorf("CurrState = %v, want pressed", got)
			}
		})
	}
}

func TestFingerInputContactAboveSurface(t *testing.T) {
	s := NewScene()
	node, e := newTestButton(t, s, "btn", defaultConfig())
	hand := NewHand("right")
	s.SetHands(hand)

	// Within touch radius of the top face but above the surface height.
	hand.SetPose(node.LocalToWorld(Vec3{Y: 0.055}))
	s.Update(testDT)

	assertNear(t, "node.Y", node.Y, 0.04)
	if got := mustButton(t, s, e).CurrState; got != StatePressed {
		t.Errorf("CurrState = %v, want pressed", got)
	}
}

func TestFingerInputIgnoresUntrackedAndNil(t *testing.T) {
	s := NewScene()
	node, e := newTestButton(t, s, "btn", defaultConfig())
	hand := NewHand("right")
	hand.Fingertip = node.LocalToWorld(Vec3{})
	s.SetHands(nil, hand)

	s.Update(testDT)

	assertNear(t, "node.Y", node.Y, 0.04)
	if got := mustButton(t, s, e).CurrState; got != StateResting {
		t.Errorf("CurrState = %v, want resting", got)
	}
}

func TestFingerInputRestingIsStable(t *testing.T) {
	s := NewScene()
	node, e := newTestButton(t, s, "btn", defaultConfig())
	s.SetHands(NewHand("right"))

	for i := 0; i < 100; i++ {
		s.Update(testDT)
		if len(s.Events()) != 0 {
			t.Fatalf("frame %d: unexpected events %v", i, s.Events())
		}
	}
	if node.Y != 0.04 {
		t.Errorf("node.Y = %v, want exactly 0.04", node.Y)
	}
	if got := mustButton(t, s, e).CurrState; got != StateResting {
		t.Errorf("CurrState = %v, want resting", got)
	}
}

func TestFingerInputRecovery(t *testing.T) {
	s := NewScene()
	node, e := newTestButton(t, s, "btn", defaultConfig())
	hand := NewHand("right")
	s.SetHands(hand)

	hand.SetPose(node.LocalToWorld(Vec3{}))
	s.Update(testDT)
	assertNear(t, "pressed Y", node.Y, 0.02)

	hand.Lift()
	s.Update(testDT)
	assertNear(t, "first recovery step", node.Y, 0.02+DefaultRecoverySpeed*testDT)
	if got := mustButton(t, s, e).CurrState; got != StateRecovering {
		t.Fatalf("CurrState = %v, want recovering", got)
	}

	prev := node.Y
	for i := 0; i < 10; i++ {
		s.Update(testDT)
		if node.Y < prev {
			t.Fatalf("frame %d: button moved down while recovering (%v < %v)", i, node.Y, prev)
		}
		if node.Y > 0.04 {
			t.Fatalf("frame %d: overshot rest height: %v", i, node.Y)
		}
		prev = node.Y
	}
	if node.Y != 0.04 {
		t.Errorf("node.Y = %v, want exactly 0.04", node.Y)
	}
	if got := mustButton(t, s, e).CurrState; got != StateResting {
		t.Errorf("CurrState = %v, want resting", got)
	}
}

func TestFingerInputCustomRecoverySpeed(t *testing.T) {
	s := NewScene()
	node, _ := newTestButton(t, s, "up", ButtonConfig{SurfaceY: 0.05, FullPressDistance: 0.03, RecoverySpeed: 0.2})
	hand := NewHand("right")
	s.SetHands(hand)

	hand.SetPose(node.LocalToWorld(Vec3{}))
	s.Update(testDT)
	assertNear(t, "pressed Y", node.Y, 0.01)

	hand.Lift()
	s.Update(testDT)
	assertNear(t, "recovery step", node.Y, 0.01+0.2*testDT)
}

func TestFingerInputNoRecoveryStaysDown(t *testing.T) {
	s := NewScene()
	node, e := newTestButton(t, s, "latch", ButtonConfig{SurfaceY: 0.05, FullPressDistance: 0.02, RecoverySpeed: NoRecovery})
	hand := NewHand("right")
	s.SetHands(hand)
	c := countEvents(s)

	hand.SetPose(node.LocalToWorld(Vec3{}))
	s.Update(testDT)
	hand.Lift()
	for i := 0; i < 50; i++ {
		s.Update(testDT)
	}

	assertNear(t, "node.Y", node.Y, 0.02)
	if got := mustButton(t, s, e).CurrState; got != StateRecovering {
		t.Errorf("CurrState = %v, want recovering", got)
	}
	if len(c.pressed) != 1 || len(c.released) != 1 {
		t.Errorf("events = %d pressed, %d released, want 1 each", len(c.pressed), len(c.released))
	}
}

func TestFingerInputUsesButtonLocalFrame(t *testing.T) {
	s := NewScene()
	panel := NewNode("panel")
	panel.SetPosition(1, 0, 0)
	panel.SetRotation(0, 0, math.Pi/2)
	s.Root().AddChild(panel)

	node := NewBox("btn", 0.08, 0.1, 0.08)
	node.SetPosition(0, 0.04, 0)
	panel.AddChild(node)
	e, err := s.AddButton(node, defaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	hand := NewHand("right")
	s.SetHands(hand)

	tip := node.LocalToWorld(Vec3{})
	assertVec(t, "tip", tip, Vec3{X: 0.96})
	hand.SetPose(tip)
	s.Update(testDT)

	assertNear(t, "node.Y", node.Y, 0.02)
	if got := mustButton(t, s, e).CurrState; got != StateFullyPressed {
		t.Errorf("CurrState = %v, want fully_pressed", got)
	}
}

func TestFingerInputWaitsForRestingHeight(t *testing.T) {
	s := NewScene()
	node, _ := newTestButton(t, s, "btn", defaultConfig())
	hand := NewHand("right")
	hand.SetPose(node.LocalToWorld(Vec3{}))

	// Run finger input alone: dispatch has not captured the rest height.
	sys := &FingerInputSystem{}
	sys.Update(&Frame{World: s.World(), Hands: []HandSource{hand}, Delta: testDT, Logger: discardLogger})

	assertNear(t, "node.Y", node.Y, 0.04)
}

func TestMaxDistance(t *testing.T) {
	assertNear(t, "max", maxDistance([]float64{0.01, 0.03, -0.02}), 0.03)
	assertNear(t, "all negative", maxDistance([]float64{-0.5, -0.1}), -0.1)
}
