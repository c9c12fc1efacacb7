package presskit

import (
	"errors"
	"fmt"
	"math"
)

// DefaultRecoverySpeed is the return-to-rest speed in units per second used
// when a ButtonConfig leaves RecoverySpeed at zero.
const DefaultRecoverySpeed = 0.4

// NoRecovery as a RecoverySpeed keeps a released button where the finger
// left it. It still reports Recovering and fires its release event.
const NoRecovery = -1.0

// ButtonState is the per-frame state of a pressable button.
type ButtonState uint8

const (
	StateResting      ButtonState = iota // at rest height, no contact
	StatePressed                         // touched, not yet at the full-press floor
	StateFullyPressed                    // pushed to the full-press floor
	StateRecovering                      // released, travelling back to rest
)

// String returns the state name used in logs and traces.
func (s ButtonState) String() string {
	switch s {
	case StateResting:
		return "resting"
	case StatePressed:
		return "pressed"
	case StateFullyPressed:
		return "fully_pressed"
	case StateRecovering:
		return "recovering"
	default:
		return fmt.Sprintf("ButtonState(%d)", uint8(s))
	}
}

// ErrInvalidButton is returned (wrapped) when a ButtonConfig fails validation.
var ErrInvalidButton = errors.New("presskit: invalid button config")

// ButtonConfig is the authoring surface for a pressable button.
type ButtonConfig struct {
	// SurfaceY is the local-space height of the pressable face.
	SurfaceY float64
	// FullPressDistance is the depth below the rest height that counts as
	// fully pressed. Must be positive.
	FullPressDistance float64
	// RecoverySpeed is the return-to-rest speed in units per second.
	// Zero is not a speed: it selects DefaultRecoverySpeed. Use NoRecovery
	// for a button that never returns to rest.
	RecoverySpeed float64
	// Action names a handler registered with Scene.RegisterAction. It is
	// invoked once each time the button enters FullyPressed. Empty means no
	// action; scene-level handlers still fire.
	Action string

	// PressSound and ReleaseSound override the sounds bound from the scene's
	// Audio. NoSound keeps the shared ones.
	PressSound   SoundHandle
	ReleaseSound SoundHandle
}

// Validate reports whether the config can produce a meaningful press cycle.
func (c ButtonConfig) Validate() error {
	if !isFinite(c.SurfaceY) {
		return fmt.Errorf("%w: surface y %v is not finite", ErrInvalidButton, c.SurfaceY)
	}
	if !isFinite(c.FullPressDistance) || c.FullPressDistance <= 0 {
		return fmt.Errorf("%w: full press distance must be positive, got %v", ErrInvalidButton, c.FullPressDistance)
	}
	if c.RecoverySpeed != NoRecovery && (!isFinite(c.RecoverySpeed) || c.RecoverySpeed < 0) {
		return fmt.Errorf("%w: recovery speed must be non-negative, got %v", ErrInvalidButton, c.RecoverySpeed)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Button is the component attached to pressable entities.
//
// CurrState is written by the finger input system and PrevState by the
// dispatch system; the pair lets dispatch see transitions produced in the
// previous frame.
type Button struct {
	CurrState ButtonState
	PrevState ButtonState

	SurfaceY          float64
	FullPressDistance float64
	RecoverySpeed     float64
	Action            string

	PressSound   SoundHandle
	ReleaseSound SoundHandle

	restingY   float64
	restingSet bool
	ownPress   bool
	ownRelease bool
}

// newButton builds the component from a validated config.
func newButton(cfg ButtonConfig) Button {
	speed := cfg.RecoverySpeed
	switch speed {
	case 0:
		speed = DefaultRecoverySpeed
	case NoRecovery:
		speed = 0
	}
	return Button{
		SurfaceY:          cfg.SurfaceY,
		FullPressDistance: cfg.FullPressDistance,
		RecoverySpeed:     speed,
		Action:            cfg.Action,
		PressSound:        cfg.PressSound,
		ReleaseSound:      cfg.ReleaseSound,
		ownPress:          cfg.PressSound != NoSound,
		ownRelease:        cfg.ReleaseSound != NoSound,
	}
}

// RestingY returns the captured rest height and whether it has been captured.
func (b Button) RestingY() (float64, bool) {
	return b.restingY, b.restingSet
}

// adoptSounds fills every cue slot the config left unset.
func (b *Button) adoptSounds(press, release SoundHandle) {
	if !b.ownPress {
		b.PressSound = press
	}
	if !b.ownRelease {
		b.ReleaseSound = release
	}
}

// captureRestingY records y as the rest height. Later calls are ignored.
func (b *Button) captureRestingY(y float64) bool {
	if b.restingSet {
		return false
	}
	b.restingY = y
	b.restingSet = true
	return true
}

// floorY is the local Y at which the button counts as fully pressed.
func (b *Button) floorY() float64 {
	return b.restingY - b.FullPressDistance
}
