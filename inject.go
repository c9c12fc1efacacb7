package presskit

// handPose is a single queued fingertip sample. A lifted pose untracks the
// hand for that frame.
type handPose struct {
	pos    Vec3
	lifted bool
}

// InjectPose queues a fingertip position. The pose is applied on the next
// frame's Scene.Update, one queued pose per hand per frame.
func (h *Hand) InjectPose(p Vec3) {
	h.queue = append(h.queue, handPose{pos: p})
}

// InjectLift queues a frame in which the hand is not tracked.
func (h *Hand) InjectLift() {
	h.queue = append(h.queue, handPose{lifted: true})
}

// InjectHold queues the same pose for the given number of frames.
func (h *Hand) InjectHold(p Vec3, frames int) {
	for i := 0; i < frames; i++ {
		h.InjectPose(p)
	}
}

// InjectPress queues a straight-down press on target: the fingertip starts
// above the button's surface at the node's world X/Z and descends linearly
// to depth below the surface over frames frames (minimum 2). surfaceY is the
// button's local surface height.
func (h *Hand) InjectPress(target *Node, surfaceY, depth float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	top := target.LocalToWorld(Vec3{Y: surfaceY + DefaultTouchRadius})
	bottom := target.LocalToWorld(Vec3{Y: surfaceY - depth})
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		h.InjectPose(top.Lerp(bottom, t))
	}
}

// Pending returns the number of queued poses.
func (h *Hand) Pending() int {
	return len(h.queue)
}

// stepInjected pops one queued pose and applies it. Returns false when the
// queue is empty and the hand keeps its current pose.
func (h *Hand) stepInjected() bool {
	if len(h.queue) == 0 {
		return false
	}
	p := h.queue[0]
	copy(h.queue, h.queue[1:])
	h.queue = h.queue[:len(h.queue)-1]
	if p.lifted {
		h.Lift()
	} else {
		h.SetPose(p.pos)
	}
	return true
}
