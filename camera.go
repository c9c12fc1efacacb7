package presskit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Projection selects which world plane a Camera looks at.
type Projection uint8

const (
	// ProjectFront looks along -Z: screen right is +X, screen up is +Y.
	// Button travel is visible in this view.
	ProjectFront Projection = iota
	// ProjectTop looks down -Y: screen right is +X, screen down is +Z.
	ProjectTop
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is an orthographic view onto one world plane.
type Camera struct {
	// X and Y are the plane coordinates the camera centers on.
	X, Y float64
	// Zoom is pixels per world unit.
	Zoom float64
	// Projection is the plane being viewed.
	Projection Projection
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	scrollTween *scrollAnim
}

// NewCamera creates a Camera with the given viewport and projection.
func NewCamera(viewport Rect, p Projection) *Camera {
	return &Camera{
		Zoom:       1.0,
		Projection: p,
		Viewport:   viewport,
	}
}

// ScrollTo animates the camera to the given plane position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is running.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// Update advances the scroll animation.
func (c *Camera) Update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		c.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		c.Y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
}

// plane maps a world point onto the camera plane plus the depth toward the
// viewer (larger is nearer).
func (c *Camera) plane(p Vec3) (u, v, depth float64) {
	switch c.Projection {
	case ProjectTop:
		return p.X, p.Z, p.Y
	default:
		return p.X, p.Y, p.Z
	}
}

// WorldToScreen converts a world point to screen coordinates.
func (c *Camera) WorldToScreen(p Vec3) (sx, sy float64) {
	u, v, _ := c.plane(p)
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	sx = cx + (u-c.X)*c.Zoom
	if c.Projection == ProjectTop {
		sy = cy + (v-c.Y)*c.Zoom
	} else {
		sy = cy - (v-c.Y)*c.Zoom
	}
	return sx, sy
}

// ScreenToWorld converts screen coordinates to a world point on the camera
// plane. depth fills the axis the camera looks along.
func (c *Camera) ScreenToWorld(sx, sy, depth float64) Vec3 {
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	u := c.X + (sx-cx)/c.Zoom
	if c.Projection == ProjectTop {
		v := c.Y + (sy-cy)/c.Zoom
		return Vec3{X: u, Y: depth, Z: v}
	}
	v := c.Y - (sy-cy)/c.Zoom
	return Vec3{X: u, Y: v, Z: depth}
}

// ScreenRect projects a world box into a screen rectangle.
func (c *Camera) ScreenRect(b Box) Rect {
	x0, y0 := c.WorldToScreen(b.Min)
	x1, y1 := c.WorldToScreen(b.Max)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
