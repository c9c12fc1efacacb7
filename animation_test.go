package presskit

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	node := NewNode("pos")
	node.SetPosition(1, 2, 3)

	g := TweenPosition(node, Vec3{X: 4, Y: -2, Z: 0.5}, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.X-4) > 1e-5 || math.Abs(node.Y+2) > 1e-5 || math.Abs(node.Z-0.5) > 1e-5 {
		t.Errorf("position = %+v, want ~(4, -2, 0.5)", node.LocalPosition())
	}
}

func TestTweenPositionMidway(t *testing.T) {
	node := NewNode("pos")
	g := TweenPosition(node, Vec3{X: 1}, 1.0, ease.Linear)
	g.Update(0.5)

	if g.Done {
		t.Error("should not be done halfway")
	}
	if math.Abs(node.X-0.5) > 1e-5 {
		t.Errorf("X = %f, want ~0.5", node.X)
	}
	if !node.transformDirty {
		t.Error("tween should mark the node dirty")
	}
}

func TestTweenScaleUniform(t *testing.T) {
	node := NewNode("scale")

	g := TweenScale(node, 2.0, 0.5, ease.Linear)
	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	for name, v := range map[string]float64{"X": node.ScaleX, "Y": node.ScaleY, "Z": node.ScaleZ} {
		if math.Abs(v-2) > 0.01 {
			t.Errorf("Scale%s = %f, want ~2.0", name, v)
		}
	}
}

func TestTweenColorAllComponents(t *testing.T) {
	node := NewNode("color")
	node.Color = Color{R: 1, G: 0, B: 0, A: 1}
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}

	g := TweenColor(node, target, 1.0, ease.Linear)
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Color.R-target.R) > 0.01 ||
		math.Abs(node.Color.G-target.G) > 0.01 ||
		math.Abs(node.Color.B-target.B) > 0.01 ||
		math.Abs(node.Color.A-target.A) > 0.01 {
		t.Errorf("Color = %+v, want %+v", node.Color, target)
	}
}

func TestTweenStopsOnDisposedNode(t *testing.T) {
	node := NewNode("gone")
	g := TweenPosition(node, Vec3{X: 10}, 1.0, ease.Linear)
	node.Dispose()

	g.Update(0.5)
	if !g.Done {
		t.Error("tween on a disposed node should stop")
	}
	if node.X != 0 {
		t.Errorf("X = %f, want 0 (no writes after dispose)", node.X)
	}
}

func TestTweenSystemDropsFinished(t *testing.T) {
	s := NewScene()
	node := NewNode("n")
	s.Root().AddChild(node)
	s.AddTween(TweenPosition(node, Vec3{Y: 1}, 0.05, ease.Linear))
	s.AddTween(TweenScale(node, 2, 1, ease.Linear))

	for i := 0; i < 10; i++ {
		s.Update(testDT)
	}

	if s.tweens.Len() != 1 {
		t.Errorf("running tweens = %d, want 1", s.tweens.Len())
	}
	if math.Abs(node.Y-1) > 1e-5 {
		t.Errorf("Y = %f, want ~1", node.Y)
	}
}
