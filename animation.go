package presskit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenColor) and either call Update(dt) yourself or hand it to
// Scene.AddTween. The group auto-applies values and marks the node dirty.
// If the target node is disposed, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenPosition creates a TweenGroup that moves node to the target position
// over the given duration using the easing function.
func TweenPosition(node *Node, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: node}
	g.tweens[0] = gween.New(float32(node.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(node.Z), float32(to.Z), duration, fn)
	g.fields[0] = &node.X
	g.fields[1] = &node.Y
	g.fields[2] = &node.Z
	return g
}

// TweenScale creates a TweenGroup that scales node uniformly to s.
func TweenScale(node *Node, s float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: node}
	g.tweens[0] = gween.New(float32(node.ScaleX), float32(s), duration, fn)
	g.tweens[1] = gween.New(float32(node.ScaleY), float32(s), duration, fn)
	g.tweens[2] = gween.New(float32(node.ScaleZ), float32(s), duration, fn)
	g.fields[0] = &node.ScaleX
	g.fields[1] = &node.ScaleY
	g.fields[2] = &node.ScaleZ
	return g
}

// TweenColor creates a TweenGroup that animates all four components of
// node.Color (R, G, B, A) to the target color over the given duration.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: node}
	g.tweens[0] = gween.New(float32(node.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(node.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(node.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(node.Color.A), float32(to.A), duration, fn)
	g.fields[0] = &node.Color.R
	g.fields[1] = &node.Color.G
	g.fields[2] = &node.Color.B
	g.fields[3] = &node.Color.A
	return g
}

// TweenSystem advances tween groups added with Scene.AddTween and drops the
// finished ones.
type TweenSystem struct {
	groups []*TweenGroup
}

// Name implements System.
func (*TweenSystem) Name() string { return "tween" }

// Add schedules g. A group already running on the same fields keeps running;
// later groups win because they write last.
func (sys *TweenSystem) Add(g *TweenGroup) {
	sys.groups = append(sys.groups, g)
}

// Len returns the number of running groups.
func (sys *TweenSystem) Len() int {
	return len(sys.groups)
}

// Update implements System.
func (sys *TweenSystem) Update(f *Frame) {
	live := sys.groups[:0]
	for _, g := range sys.groups {
		g.Update(float32(f.Delta))
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(sys.groups); i++ {
		sys.groups[i] = nil
	}
	sys.groups = live
}
