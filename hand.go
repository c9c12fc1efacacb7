package presskit

// DefaultTouchRadius is the fingertip sphere radius used for contact tests.
const DefaultTouchRadius = 0.01

// HandSource is a tracked hand (or any fingertip-bearing device) that can
// touch buttons.
type HandSource interface {
	// Intersects reports whether the fingertip currently touches n's
	// bounding volume.
	Intersects(n *Node) bool
	// FingertipWorldPosition returns the pointing fingertip in world space.
	FingertipWorldPosition() Vec3
}

// Tracker is implemented by sources that can report whether they are
// currently tracked. The instruction system shows its nodes while any source
// is tracked.
type Tracker interface {
	IsTracked() bool
}

// Hand is a HandSource whose fingertip pose is written directly each frame,
// by a device adapter, the injection queue, or a replay.
type Hand struct {
	Name      string
	Tracked   bool
	Fingertip Vec3
	// Radius is the fingertip sphere radius. Zero selects DefaultTouchRadius.
	Radius float64

	queue []handPose
}

// NewHand creates an untracked hand.
func NewHand(name string) *Hand {
	return &Hand{Name: name}
}

// Intersects reports whether the fingertip sphere touches n's world-space
// bounding box. Untracked and nil hands touch nothing.
func (h *Hand) Intersects(n *Node) bool {
	if h == nil || !h.Tracked || n == nil {
		return false
	}
	r := h.Radius
	if r == 0 {
		r = DefaultTouchRadius
	}
	return n.WorldBounds().IntersectsSphere(h.Fingertip, r)
}

// FingertipWorldPosition returns the last written fingertip position.
func (h *Hand) FingertipWorldPosition() Vec3 {
	if h == nil {
		return Vec3{}
	}
	return h.Fingertip
}

// IsTracked reports whether the hand is tracked.
func (h *Hand) IsTracked() bool {
	return h != nil && h.Tracked
}

// SetPose moves the fingertip and marks the hand tracked.
func (h *Hand) SetPose(p Vec3) {
	h.Fingertip = p
	h.Tracked = true
}

// Lift marks the hand untracked.
func (h *Hand) Lift() {
	h.Tracked = false
}

// anyTracked reports whether at least one source is tracked.
func anyTracked(hands []HandSource) bool {
	for _, h := range hands {
		if h == nil {
			continue
		}
		if t, ok := h.(Tracker); ok && t.IsTracked() {
			return true
		}
	}
	return false
}
