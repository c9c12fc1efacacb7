package presskit

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node tint.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts c to a color.RGBA, clamping each component to [0, 1].
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// ColorFromHex builds an opaque Color from a 0xRRGGBB value.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: float64((hex>>16)&0xff) / 255,
		G: float64((hex>>8)&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: 1,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec3 is a 3D vector used for positions, offsets and sizes. Units are
// meters, Y is up.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Lerp interpolates between v and o by t in [0, 1].
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

// Box is an axis-aligned bounding box. A zero Box has no volume and never
// intersects anything.
type Box struct {
	Min, Max Vec3
}

// BoxFromSize returns a box of the given dimensions centered on the origin.
func BoxFromSize(w, h, d float64) Box {
	return Box{
		Min: Vec3{-w / 2, -h / 2, -d / 2},
		Max: Vec3{w / 2, h / 2, d / 2},
	}
}

// IsEmpty reports whether the box has no volume.
func (b Box) IsEmpty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y || b.Max.Z <= b.Min.Z
}

// Size returns the box extents.
func (b Box) Size() Vec3 { return b.Max.Sub(b.Min) }

// Contains reports whether p lies inside the box. Points on a face count as
// inside.
func (b Box) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ClosestPoint returns the point inside the box nearest to p.
func (b Box) ClosestPoint(p Vec3) Vec3 {
	return Vec3{
		math.Max(b.Min.X, math.Min(p.X, b.Max.X)),
		math.Max(b.Min.Y, math.Min(p.Y, b.Max.Y)),
		math.Max(b.Min.Z, math.Min(p.Z, b.Max.Z)),
	}
}

// IntersectsSphere reports whether a sphere touches the box. Tangent contact
// counts as intersecting.
func (b Box) IntersectsSphere(center Vec3, radius float64) bool {
	if b.IsEmpty() {
		return false
	}
	d := b.ClosestPoint(center).Sub(center)
	return d.X*d.X+d.Y*d.Y+d.Z*d.Z <= radius*radius
}

// expand grows the box to include p.
func (b *Box) expand(p Vec3) {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Min.Z = math.Min(b.Min.Z, p.Z)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
	b.Max.Z = math.Max(b.Max.Z, p.Z)
}

// EventType identifies a kind of button event.
type EventType uint8

const (
	EventFullyPressed EventType = iota // fires on the frame a button enters FullyPressed
	EventReleased                      // fires on the frame a button starts recovering
)

// String returns the event name used in logs and traces.
func (e EventType) String() string {
	switch e {
	case EventFullyPressed:
		return "fully_pressed"
	case EventReleased:
		return "released"
	default:
		return "unknown"
	}
}
