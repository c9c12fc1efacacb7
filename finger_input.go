package presskit

import (
	"math"

	"github.com/yohamta/donburi"
)

// FingerInputSystem resolves hand contact for every pressable button and
// moves the button node. It is the only writer of a button's transform and
// of Button.CurrState.
type FingerInputSystem struct {
	distances []float64
}

// Name implements System.
func (*FingerInputSystem) Name() string { return "finger_input" }

// Update implements System.
func (sys *FingerInputSystem) Update(f *Frame) {
	pressableQuery.Each(f.World, func(entry *donburi.Entry) {
		b := ButtonComponent.Get(entry)
		node := nodeOf(entry)
		if node == nil {
			return
		}
		restingY, ok := b.RestingY()
		if !ok {
			// Rest height is captured by dispatch; nothing to compare against yet.
			return
		}

		sys.distances = contactDistances(sys.distances[:0], f.Hands, node, b.SurfaceY)
		if len(sys.distances) == 0 {
			relax(b, node, restingY, f.Delta)
			return
		}
		push(b, node, maxDistance(sys.distances))
	})
}

// contactDistances appends, for every hand touching node, how far its
// fingertip has crossed below the button surface in the node's local frame.
func contactDistances(buf []float64, hands []HandSource, node *Node, surfaceY float64) []float64 {
	for _, h := range hands {
		if h == nil || !h.Intersects(node) {
			continue
		}
		tip := node.WorldToLocal(h.FingertipWorldPosition())
		buf = append(buf, surfaceY-tip.Y)
	}
	return buf
}

// maxDistance returns the deepest press among contacting hands.
func maxDistance(d []float64) float64 {
	m := math.Inf(-1)
	for _, v := range d {
		if v > m {
			m = v
		}
	}
	return m
}

// relax moves an untouched button back toward rest without overshooting.
func relax(b *Button, node *Node, restingY, delta float64) {
	if node.Y < restingY {
		node.SetLocalY(math.Min(restingY, node.Y+b.RecoverySpeed*delta))
		b.CurrState = StateRecovering
		return
	}
	node.SetLocalY(restingY)
	b.CurrState = StateResting
}

// push moves a touched button down by distance and clamps at the floor.
func push(b *Button, node *Node, distance float64) {
	b.CurrState = StatePressed
	y := node.Y
	if distance > 0 {
		y -= distance
	}
	if floor := b.floorY(); y <= floor {
		y = floor
		b.CurrState = StateFullyPressed
	}
	if y != node.Y {
		node.SetLocalY(y)
	}
}
