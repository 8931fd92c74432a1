package treent

import "math"

// Affine is a 2D affine matrix laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// Identity is the identity affine matrix.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Translate returns a translation matrix.
func Translate(x, y float64) Affine {
	return Affine{1, 0, 0, 1, x, y}
}

// Scale returns a scale matrix.
func Scale(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a rotation matrix for r radians.
func Rotate(r float64) Affine {
	sin, cos := math.Sincos(r)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Mul returns m * c, i.e. c applied first, then m.
func (m Affine) Mul(c Affine) Affine {
	return multiplyAffine(m, c)
}

// Invert returns the inverse of m, or Identity if m is singular.
func (m Affine) Invert() Affine {
	return invertAffine(m)
}

// Apply transforms the point (x, y) by m.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return transformPoint(m, x, y)
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
func multiplyAffine(p, c Affine) Affine {
	return Affine{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m Affine) Affine {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

func transformPoint(m Affine, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Transform is the spatial component attached to every node's entity.
//
// The local matrix is derived from the property fields unless an explicit
// matrix has been installed with SetMatrix; any property setter returns the
// transform to property mode. The world matrix is written only by
// UpdateMatrix and is stale until the first tree update reaches the node.
type Transform struct {
	X, Y         float64
	ScaleX       float64
	ScaleY       float64
	Rotation     float64
	SkewX, SkewY float64
	PivotX       float64
	PivotY       float64

	local    Affine
	explicit bool
	world    Affine
	updated  bool
}

// newTransform returns a transform with unit scale and identity matrices.
func newTransform() Transform {
	return Transform{
		ScaleX: 1,
		ScaleY: 1,
		local:  Identity,
		world:  Identity,
	}
}

// Matrix returns the local matrix.
func (t *Transform) Matrix() Affine {
	if t.explicit {
		return t.local
	}
	return computeLocalTransform(t)
}

// SetMatrix installs an explicit local matrix, overriding the property fields
// until the next property setter call.
func (t *Transform) SetMatrix(m Affine) {
	t.local = m
	t.explicit = true
}

// World returns the world matrix computed by the most recent UpdateMatrix.
func (t *Transform) World() Affine {
	return t.world
}

// Updated reports whether UpdateMatrix has run at least once.
func (t *Transform) Updated() bool {
	return t.updated
}

// UpdateMatrix stores world = parent * local.
func (t *Transform) UpdateMatrix(parent Affine) {
	t.world = multiplyAffine(parent, t.Matrix())
	t.updated = true
}

// computeLocalTransform computes the local affine matrix from the transform's
// properties.
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Skew -> Rotate -> Translate(X, Y)
func computeLocalTransform(t *Transform) Affine {
	sx := t.ScaleX
	sy := t.ScaleY

	sin, cos := math.Sincos(t.Rotation)

	var tanSkewX, tanSkewY float64
	if t.SkewX != 0 {
		tanSkewX = math.Tan(t.SkewX)
	}
	if t.SkewY != 0 {
		tanSkewY = math.Tan(t.SkewY)
	}

	a := sx
	b := tanSkewY * sx
	c := tanSkewX * sy
	d := sy

	px := t.PivotX
	py := t.PivotY
	preTx := -px*sx - tanSkewX*py*sy
	preTy := -tanSkewY*px*sx - py*sy

	ra := cos*a - sin*b
	rb := sin*a + cos*b
	rc := cos*c - sin*d
	rd := sin*c + cos*d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	return Affine{ra, rb, rc, rd, rtx + t.X, rty + t.Y}
}

// --- Property setters ---

// SetPosition sets X and Y.
func (t *Transform) SetPosition(x, y float64) {
	t.X = x
	t.Y = y
	t.explicit = false
}

// SetScale sets ScaleX and ScaleY.
func (t *Transform) SetScale(sx, sy float64) {
	t.ScaleX = sx
	t.ScaleY = sy
	t.explicit = false
}

// SetRotation sets the rotation in radians.
func (t *Transform) SetRotation(r float64) {
	t.Rotation = r
	t.explicit = false
}

// SetSkew sets SkewX and SkewY.
func (t *Transform) SetSkew(sx, sy float64) {
	t.SkewX = sx
	t.SkewY = sy
	t.explicit = false
}

// SetPivot sets PivotX and PivotY.
func (t *Transform) SetPivot(px, py float64) {
	t.PivotX = px
	t.PivotY = py
	t.explicit = false
}

// --- Tree propagation ---

// UpdateTree composes parent with this node's local matrix, stores the result
// as the node's world matrix, then updates every child with it, in order.
// Every call recomputes the whole subtree.
func (n *Node) UpdateTree(parent Affine) {
	t := n.Transform()
	if t == nil {
		return
	}
	t.UpdateMatrix(parent)
	world := t.world
	// No callbacks run here, so the live slice is safe to range over.
	for _, child := range n.children {
		child.UpdateTree(world)
	}
}

// WorldTransform returns the node's world matrix as of the last UpdateTree.
// Destroyed nodes report Identity.
func (n *Node) WorldTransform() Affine {
	t := n.Transform()
	if t == nil {
		return Identity
	}
	return t.world
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return transformPoint(invertAffine(n.WorldTransform()), wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(n.WorldTransform(), lx, ly)
}
