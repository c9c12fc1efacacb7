package presskit

import (
	"testing"
)

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("test")
	if n.Name != "test" {
		t.Errorf("Name = %q, want %q", n.Name, "test")
	}
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.ScaleX != 1 || n.ScaleY != 1 || n.ScaleZ != 1 {
		t.Errorf("scale = (%v, %v, %v), want (1, 1, 1)", n.ScaleX, n.ScaleY, n.ScaleZ)
	}
	if !n.Visible {
		t.Error("new node should be visible")
	}
	if n.Color != ColorWhite {
		t.Errorf("Color = %+v, want white", n.Color)
	}
	if !n.Bounds.IsEmpty() {
		t.Error("NewNode should have no hit volume")
	}
}

func TestNewNodeUniqueIDs(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	if a.ID == b.ID {
		t.Errorf("IDs should differ, both %d", a.ID)
	}
}

func TestNewBoxCentered(t *testing.T) {
	n := NewBox("btn", 0.08, 0.1, 0.06)
	assertVec(t, "min", n.Bounds.Min, Vec3{X: -0.04, Y: -0.05, Z: -0.03})
	assertVec(t, "max", n.Bounds.Max, Vec3{X: 0.04, Y: 0.05, Z: 0.03})
}

// --- Tree manipulation ---

func TestAddChild(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != child {
		t.Errorf("children = %v, want [child]", parent.Children())
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	child := NewNode("child")
	a.AddChild(child)
	b.AddChild(child)

	if a.NumChildren() != 0 {
		t.Errorf("old parent has %d children, want 0", a.NumChildren())
	}
	if child.Parent != b {
		t.Error("child.Parent should be the new parent")
	}
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewNode("parent").AddChild(nil)
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	a.AddChild(b)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on cycle")
		}
	}()
	b.AddChild(a)
}

func TestAddChildSelfPanics(t *testing.T) {
	a := NewNode("a")
	defer func() {
		if recover() == nil {
			t.Error("expected panic on self-add")
		}
	}()
	a.AddChild(a)
}

func TestRemoveChild(t *testing.T) {
	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.RemoveChild(a)

	if a.Parent != nil {
		t.Error("removed child should have nil parent")
	}
	if parent.NumChildren() != 1 || parent.Children()[0] != b {
		t.Errorf("children = %v, want [b]", parent.Children())
	}
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	a.RemoveChild(b)
}

func TestRemoveFromParentNoParent(t *testing.T) {
	n := NewNode("n")
	n.RemoveFromParent() // no-op, must not panic
	if n.Parent != nil {
		t.Error("Parent should stay nil")
	}
}

func TestRemoveChildMarksDirty(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)
	updateWorldTransform(parent, identityTransform, false)

	parent.RemoveChild(child)
	if !child.transformDirty {
		t.Error("detached child should be dirty")
	}
}

func TestFind(t *testing.T) {
	root := NewNode("root")
	console := NewNode("console")
	btn := NewNode("orange")
	root.AddChild(console)
	console.AddChild(btn)

	if got := root.Find("orange"); got != btn {
		t.Errorf("Find(orange) = %v, want btn", got)
	}
	if got := root.Find("root"); got != root {
		t.Error("Find should match the receiver itself")
	}
	if got := root.Find("missing"); got != nil {
		t.Errorf("Find(missing) = %v, want nil", got)
	}
}

// --- Disposal ---

func TestDispose(t *testing.T) {
	root := NewNode("root")
	parent := NewNode("parent")
	child := NewNode("child")
	root.AddChild(parent)
	parent.AddChild(child)

	parent.Dispose()

	if !parent.IsDisposed() || !child.IsDisposed() {
		t.Error("parent and child should be disposed")
	}
	if root.NumChildren() != 0 {
		t.Errorf("root has %d children, want 0", root.NumChildren())
	}
	if parent.ID != 0 {
		t.Errorf("disposed ID = %d, want 0", parent.ID)
	}
	if child.Parent != nil {
		t.Error("disposed child should have nil parent")
	}
}

func TestDisposeTwice(t *testing.T) {
	n := NewNode("n")
	n.Dispose()
	n.Dispose() // no-op
	if !n.IsDisposed() {
		t.Error("should stay disposed")
	}
}
