package presskit

// Session reports the lifecycle of the immersive session and the viewer pose.
type Session interface {
	IsActive() bool
	ViewerWorldPosition() Vec3
}

// StaticSession is a Session whose state is set directly. Useful for desktop
// runs, scripted tests and replays.
type StaticSession struct {
	Active bool
	Viewer Vec3
}

// IsActive reports whether the session has started.
func (s *StaticSession) IsActive() bool {
	return s != nil && s.Active
}

// ViewerWorldPosition returns the viewer (head) position.
func (s *StaticSession) ViewerWorldPosition() Vec3 {
	if s == nil {
		return Vec3{}
	}
	return s.Viewer
}
