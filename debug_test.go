package presskit

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewNode("parent")
	s.Root().AddChild(parent)

	child := NewBox("child", 1, 1, 1)
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_DisposedParentPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewNode("parent")
	parent.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild to disposed parent, got none")
		}
		if !strings.Contains(fmt.Sprint(r), "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %v", r)
		}
	}()

	parent.AddChild(NewNode("child"))
}

func TestDebugMode_OffNoPanic(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(false)

	parent := NewNode("parent")
	child := NewNode("child")
	child.Dispose()
	parent.AddChild(child) // must not panic outside debug mode
}

func TestDebugMode_InstallsLogger(t *testing.T) {
	s := NewScene()
	if s.Logger() != discardLogger {
		t.Fatal("default logger should discard")
	}
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	if s.Logger() == discardLogger {
		t.Error("debug mode should install a stderr logger")
	}
}

func TestDebugMode_KeepsCallerLogger(t *testing.T) {
	s := NewScene()
	l := discardLogger.With("test", t.Name())
	s.SetLogger(l)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)
	if s.Logger() != l {
		t.Error("debug mode should not replace a caller-provided logger")
	}
}

func TestSetLoggerNilDiscards(t *testing.T) {
	s := NewScene()
	s.SetLogger(nil)
	if s.Logger() != discardLogger {
		t.Error("nil logger should fall back to discard")
	}
}

func TestDebugCheckTreeDepthDeepTree(t *testing.T) {
	root := NewNode("n0")
	n := root
	for i := 1; i <= debugMaxTreeDepth+1; i++ {
		c := NewNode(fmt.Sprintf("n%d", i))
		n.AddChild(c)
		n = c
	}
	// Only logs a warning; must not panic.
	debugCheckTreeDepth(n)
}

func TestDebugCheckTreeDepthUsesSceneLogger(t *testing.T) {
	var buf bytes.Buffer
	s := NewScene()
	s.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	n := s.Root()
	for i := 1; i <= debugMaxTreeDepth; i++ {
		c := NewNode(fmt.Sprintf("n%d", i))
		n.AddChild(c)
		n = c
	}
	out := buf.String()
	if !strings.Contains(out, "tree depth exceeds limit") || !strings.Contains(out, "level=WARN") {
		t.Errorf("log = %q, want a depth warning", out)
	}
	if !strings.Contains(out, fmt.Sprintf("node=n%d", debugMaxTreeDepth)) {
		t.Errorf("log = %q, want the offending node", out)
	}
}
