package presskit

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [12]float64{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties. The matrix is row-major 3×4:
//
//	| m0 m1 m2  m3 |
//	| m4 m5 m6  m7 |
//	| m8 m9 m10 m11 |
//
// Composition order: Scale -> Rotate(X·Y·Z) -> Translate.
func computeLocalTransform(n *Node) [12]float64 {
	sx, cx := math.Sincos(n.RotX)
	sy, cy := math.Sincos(n.RotY)
	sz, cz := math.Sincos(n.RotZ)

	// R = Rx * Ry * Rz
	r00 := cy * cz
	r01 := -cy * sz
	r02 := sy
	r10 := cx*sz + sx*sy*cz
	r11 := cx*cz - sx*sy*sz
	r12 := -sx * cy
	r20 := sx*sz - cx*sy*cz
	r21 := sx*cz + cx*sy*sz
	r22 := cx * cy

	return [12]float64{
		r00 * n.ScaleX, r01 * n.ScaleY, r02 * n.ScaleZ, n.X,
		r10 * n.ScaleX, r11 * n.ScaleY, r12 * n.ScaleZ, n.Y,
		r20 * n.ScaleX, r21 * n.ScaleY, r22 * n.ScaleZ, n.Z,
	}
}

// multiplyAffine multiplies two affine matrices: result = parent * child.
func multiplyAffine(p, c [12]float64) [12]float64 {
	var r [12]float64
	for row := 0; row < 3; row++ {
		p0, p1, p2, p3 := p[row*4], p[row*4+1], p[row*4+2], p[row*4+3]
		r[row*4] = p0*c[0] + p1*c[4] + p2*c[8]
		r[row*4+1] = p0*c[1] + p1*c[5] + p2*c[9]
		r[row*4+2] = p0*c[2] + p1*c[6] + p2*c[10]
		r[row*4+3] = p0*c[3] + p1*c[7] + p2*c[11] + p3
	}
	return r
}

// invertAffine computes the inverse of an affine matrix.
// Returns the identity matrix if the linear part is singular.
func invertAffine(m [12]float64) [12]float64 {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[4], m[5], m[6]
	g, h, i := m[8], m[9], m[10]

	A := e*i - f*h
	B := -(d*i - f*g)
	C := d*h - e*g
	det := a*A + b*B + c*C
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	inv := 1.0 / det

	r00 := A * inv
	r01 := -(b*i - c*h) * inv
	r02 := (b*f - c*e) * inv
	r10 := B * inv
	r11 := (a*i - c*g) * inv
	r12 := -(a*f - c*d) * inv
	r20 := C * inv
	r21 := -(a*h - b*g) * inv
	r22 := (a*e - b*d) * inv

	tx, ty, tz := m[3], m[7], m[11]
	return [12]float64{
		r00, r01, r02, -(r00*tx + r01*ty + r02*tz),
		r10, r11, r12, -(r10*tx + r11*ty + r12*tz),
		r20, r21, r22, -(r20*tx + r21*ty + r22*tz),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [12]float64, p Vec3) Vec3 {
	return Vec3{
		m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}

// updateWorldTransform recomputes cached world transforms for the subtree.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform [12]float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}

// currentWorldTransform composes the world matrix from the live local fields
// of n and its ancestors. Unlike the cached worldTransform it reflects writes
// made earlier in the same frame.
func (n *Node) currentWorldTransform() [12]float64 {
	local := computeLocalTransform(n)
	if n.Parent == nil {
		return local
	}
	return multiplyAffine(n.Parent.currentWorldTransform(), local)
}

// --- Transform property setters ---

// SetPosition sets the node's local position and marks it dirty.
func (n *Node) SetPosition(x, y, z float64) {
	n.X, n.Y, n.Z = x, y, z
	n.transformDirty = true
}

// SetLocalY sets only the node's local Y and marks it dirty.
func (n *Node) SetLocalY(y float64) {
	n.Y = y
	n.transformDirty = true
}

// SetRotation sets the node's Euler rotation (radians) and marks it dirty.
func (n *Node) SetRotation(x, y, z float64) {
	n.RotX, n.RotY, n.RotZ = x, y, z
	n.transformDirty = true
}

// SetScale sets the node's scale and marks it dirty.
func (n *Node) SetScale(x, y, z float64) {
	n.ScaleX, n.ScaleY, n.ScaleZ = x, y, z
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// LocalPosition returns the node's position relative to its parent.
func (n *Node) LocalPosition() Vec3 {
	return Vec3{n.X, n.Y, n.Z}
}

// --- Coordinate conversion ---

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() Vec3 {
	return n.LocalToWorld(Vec3{})
}

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(p Vec3) Vec3 {
	return transformPoint(invertAffine(n.currentWorldTransform()), p)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(p Vec3) Vec3 {
	return transformPoint(n.currentWorldTransform(), p)
}

// WorldBounds returns the world-space AABB enclosing the node's Bounds.
// Returns a zero Box if the node has no hit volume.
func (n *Node) WorldBounds() Box {
	if n.Bounds.IsEmpty() {
		return Box{}
	}
	m := n.currentWorldTransform()
	lo, hi := n.Bounds.Min, n.Bounds.Max
	first := transformPoint(m, lo)
	out := Box{Min: first, Max: first}
	for i := 1; i < 8; i++ {
		c := lo
		if i&1 != 0 {
			c.X = hi.X
		}
		if i&2 != 0 {
			c.Y = hi.Y
		}
		if i&4 != 0 {
			c.Z = hi.Z
		}
		out.expand(transformPoint(m, c))
	}
	return out
}
