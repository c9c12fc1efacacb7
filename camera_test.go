package presskit

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(Rect{Width: 640, Height: 480}, ProjectFront)
	if cam.Zoom != 1 {
		t.Errorf("Zoom = %v, want 1", cam.Zoom)
	}
	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("position = (%v, %v), want (0, 0)", cam.X, cam.Y)
	}
	if cam.Scrolling() {
		t.Error("new camera should not be scrolling")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if !r.Contains(10, 20) {
		t.Error("top-left corner is inside")
	}
	if r.Contains(110, 20) {
		t.Error("right edge is outside")
	}
	if r.Contains(50, 10) {
		t.Error("point above is outside")
	}
}

func TestCameraFrontProjection(t *testing.T) {
	cam := NewCamera(Rect{Width: 640, Height: 480}, ProjectFront)
	cam.Zoom = 100

	sx, sy := cam.WorldToScreen(Vec3{X: 1, Y: 1, Z: 5})
	if !approxEqual(sx, 420, 1e-9) || !approxEqual(sy, 140, 1e-9) {
		t.Errorf("WorldToScreen = (%v, %v), want (420, 140)", sx, sy)
	}
}

func TestCameraTopProjection(t *testing.T) {
	cam := NewCamera(Rect{Y: 240, Width: 640, Height: 240}, ProjectTop)
	cam.Zoom = 100

	// Z grows toward the bottom of the screen; Y is depth.
	sx, sy := cam.WorldToScreen(Vec3{X: -1, Y: 9, Z: 0.5})
	if !approxEqual(sx, 220, 1e-9) || !approxEqual(sy, 410, 1e-9) {
		t.Errorf("WorldToScreen = (%v, %v), want (220, 410)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	for _, p := range []Projection{ProjectFront, ProjectTop} {
		cam := NewCamera(Rect{X: 10, Y: 20, Width: 400, Height: 300}, p)
		cam.X, cam.Y = 0.3, 1.2
		cam.Zoom = 900

		world := Vec3{X: -0.1, Y: 1.25, Z: -0.05}
		sx, sy := cam.WorldToScreen(world)
		_, _, depth := cam.plane(world)
		assertVec(t, "roundtrip", cam.ScreenToWorld(sx, sy, depth), world)
	}
}

func TestCameraScreenRectNormalized(t *testing.T) {
	cam := NewCamera(Rect{Width: 200, Height: 200}, ProjectFront)
	cam.Zoom = 100
	r := cam.ScreenRect(BoxFromSize(0.2, 0.4, 0.2))
	if r.Width <= 0 || r.Height <= 0 {
		t.Fatalf("rect = %+v, want positive size", r)
	}
	if !approxEqual(r.Width, 20, 1e-9) || !approxEqual(r.Height, 40, 1e-9) {
		t.Errorf("size = %vx%v, want 20x40", r.Width, r.Height)
	}
	if !approxEqual(r.X, 90, 1e-9) || !approxEqual(r.Y, 80, 1e-9) {
		t.Errorf("origin = (%v, %v), want (90, 80)", r.X, r.Y)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(Rect{Width: 640, Height: 480}, ProjectFront)
	cam.ScrollTo(1, 2, 1, ease.Linear)
	if !cam.Scrolling() {
		t.Fatal("should be scrolling")
	}

	cam.Update(0.5)
	if !approxEqual(cam.X, 0.5, 1e-5) || !approxEqual(cam.Y, 1, 1e-5) {
		t.Errorf("midway = (%v, %v), want (0.5, 1)", cam.X, cam.Y)
	}

	cam.Update(0.6)
	if !approxEqual(cam.X, 1, 1e-5) || !approxEqual(cam.Y, 2, 1e-5) {
		t.Errorf("end = (%v, %v), want (1, 2)", cam.X, cam.Y)
	}
	if cam.Scrolling() {
		t.Error("scroll should be finished")
	}
}

func TestSceneUpdateRunsCameraUpdates(t *testing.T) {
	s := NewScene()
	cam := NewCamera(Rect{Width: 100, Height: 100}, ProjectTop)
	s.AddCamera(cam)
	cam.ScrollTo(4, 0, 0.1, ease.Linear)

	for i := 0; i < 20; i++ {
		s.Update(testDT)
	}
	if !approxEqual(cam.X, 4, 1e-5) {
		t.Errorf("X = %v, want 4", cam.X)
	}
	if len(s.Cameras()) != 1 {
		t.Errorf("Cameras() = %d, want 1", len(s.Cameras()))
	}
}
