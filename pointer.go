package presskit

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerHand drives a Hand from the mouse for desktop runs. The cursor
// position in a top camera gives the fingertip X and Z; holding the left
// button lowers the fingertip at Speed, releasing raises it back to Hover.
// Pressing T toggles tracking.
type PointerHand struct {
	Hand   *Hand
	Camera *Camera

	// Hover is the fingertip height when the button is up.
	Hover float64
	// Floor is the lowest fingertip height.
	Floor float64
	// Speed is the vertical fingertip speed in units per second.
	Speed float64

	height   float64
	disabled bool
}

// NewPointerHand creates a mouse hand over cam, hovering at hover and able
// to reach floor.
func NewPointerHand(name string, cam *Camera, hover, floor float64) *PointerHand {
	return &PointerHand{
		Hand:   NewHand(name),
		Camera: cam,
		Hover:  hover,
		Floor:  floor,
		Speed:  0.25,
		height: hover,
	}
}

// Update reads the mouse and keyboard and moves the fingertip.
func (p *PointerHand) Update(dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		p.disabled = !p.disabled
	}
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	inside := p.Camera.Viewport.Contains(sx, sy)
	p.apply(sx, sy, inside, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), dt)
}

// apply moves the fingertip for a cursor at (sx, sy).
func (p *PointerHand) apply(sx, sy float64, inside, down bool, dt float64) {
	if p.disabled || !inside {
		p.Hand.Lift()
		p.height = p.Hover
		return
	}
	if down {
		p.height = math.Max(p.Floor, p.height-p.Speed*dt)
	} else {
		p.height = math.Min(p.Hover, p.height+p.Speed*dt)
	}
	p.Hand.SetPose(p.Camera.ScreenToWorld(sx, sy, p.height))
}
