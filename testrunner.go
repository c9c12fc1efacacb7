package presskit

import (
	"encoding/json"
	"fmt"

	"github.com/yohamta/donburi"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Hand   string  `json:"hand,omitempty"`
	Target string  `json:"target,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Z      float64 `json:"z,omitempty"`
	Depth  float64 `json:"depth,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected hand poses and session changes across frames
// for automated testing. Attach to a Scene via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	err       error
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "pose", "lift":
			if st.Hand == "" {
				return nil, fmt.Errorf("parse test script: step %d: %s needs a hand", i, st.Action)
			}
			if st.Action == "press" && st.Target == "" {
				return nil, fmt.Errorf("parse test script: step %d: press needs a target", i)
			}
		case "wait", "session":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before systems run each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns the error that stopped the script early, if any.
func (r *TestRunner) Err() error {
	return r.err
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if s.pendingInjections() > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	if err := r.exec(s, st); err != nil {
		r.err = fmt.Errorf("test script step %d: %w", r.cursor-1, err)
		r.done = true
		return
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && s.pendingInjections() == 0 {
		r.done = true
	}
}

func (r *TestRunner) exec(s *Scene, st testStep) error {
	switch st.Action {
	case "session":
		active := true
		if st.Active != nil {
			active = *st.Active
		}
		ss, ok := s.session.(*StaticSession)
		if !ok || ss == nil {
			ss = &StaticSession{}
			s.SetSession(ss)
		}
		ss.Active = active
		ss.Viewer = Vec3{X: st.X, Y: st.Y, Z: st.Z}
	case "pose":
		h := s.handNamed(st.Hand)
		if h == nil {
			return fmt.Errorf("unknown hand %q", st.Hand)
		}
		frames := st.Frames
		if frames < 1 {
			frames = 1
		}
		h.InjectHold(Vec3{X: st.X, Y: st.Y, Z: st.Z}, frames)
	case "lift":
		h := s.handNamed(st.Hand)
		if h == nil {
			return fmt.Errorf("unknown hand %q", st.Hand)
		}
		h.InjectLift()
	case "press":
		h := s.handNamed(st.Hand)
		if h == nil {
			return fmt.Errorf("unknown hand %q", st.Hand)
		}
		node, b, ok := s.buttonNamed(st.Target)
		if !ok {
			return fmt.Errorf("%w: no button named %q", ErrNoNode, st.Target)
		}
		depth := st.Depth
		if depth == 0 {
			depth = b.FullPressDistance + DefaultTouchRadius
		}
		h.InjectPress(node, b.SurfaceY, depth, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
	return nil
}

// buttonNamed finds the button whose node has the given name.
func (s *Scene) buttonNamed(name string) (*Node, Button, bool) {
	var (
		node  *Node
		found Button
	)
	buttonQuery.Each(s.world, func(entry *donburi.Entry) {
		if node != nil {
			return
		}
		if n := nodeOf(entry); n != nil && n.Name == name {
			node = n
			found = *ButtonComponent.Get(entry)
		}
	})
	return node, found, node != nil
}
