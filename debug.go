package presskit

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// newDebugLogger returns the stderr logger installed by SetDebugMode when the
// caller has not provided one.
func newDebugLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("lib", "presskit")
}

// debugLogFrame logs how long a frame's systems took.
func (s *Scene) debugLogFrame(index uint64, took time.Duration) {
	if !s.debug {
		return
	}
	s.logger.Debug("frame", "index", index, "systems", len(s.sched.Systems()), "took", took)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("presskit debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugMaxTreeDepth is the depth past which AddChild warns in debug mode.
const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns through the debug logger if tree depth exceeds
// the threshold.
func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		globalDebugLogger.Warn("tree depth exceeds limit", "depth", depth, "limit", debugMaxTreeDepth, "node", n.Name)
	}
}
