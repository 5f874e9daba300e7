package rgss

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transform places a sprite on screen from its position, origin, zoom and
// angle, plus a global offset supplied by the enclosing viewport. The matrix
// is recomputed lazily on the first Matrix call after any change.
//
// Composition order:
//
//	Translate(-Origin) -> Scale -> Rotate(-Angle) -> Translate(Position + GlobalOffset)
//
// Angle is in degrees and positive values turn counter-clockwise on screen.
type Transform struct {
	position     Vec2
	origin       Vec2
	scale        Vec2
	rotation     float64
	globalOffset Vec2

	matrix [6]float64
	dirty  bool
}

// NewTransform returns a transform with unit scale and no offset.
func NewTransform() Transform {
	return Transform{scale: Vec2{1, 1}, matrix: identityTransform}
}

// Position returns the position.
func (t *Transform) Position() Vec2 { return t.position }

// Origin returns the origin (the point placed at Position).
func (t *Transform) Origin() Vec2 { return t.origin }

// Scale returns the zoom factors.
func (t *Transform) Scale() Vec2 { return t.scale }

// Rotation returns the angle in degrees.
func (t *Transform) Rotation() float64 { return t.rotation }

// GlobalOffset returns the viewport offset.
func (t *Transform) GlobalOffset() Vec2 { return t.globalOffset }

// SetPosition sets the position and marks the matrix dirty.
func (t *Transform) SetPosition(p Vec2) {
	t.position = p
	t.dirty = true
}

// SetOrigin sets the origin and marks the matrix dirty.
func (t *Transform) SetOrigin(o Vec2) {
	t.origin = o
	t.dirty = true
}

// SetScale sets the zoom factors and marks the matrix dirty.
func (t *Transform) SetScale(s Vec2) {
	t.scale = s
	t.dirty = true
}

// SetRotation sets the angle in degrees and marks the matrix dirty.
func (t *Transform) SetRotation(deg float64) {
	t.rotation = deg
	t.dirty = true
}

// SetGlobalOffset sets the viewport offset and marks the matrix dirty.
func (t *Transform) SetGlobalOffset(x, y float64) {
	t.globalOffset = Vec2{x, y}
	t.dirty = true
}

// Matrix returns the composed screen matrix [a, b, c, d, tx, ty].
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func (t *Transform) Matrix() [6]float64 {
	if t.dirty {
		t.matrix = computeTransform(t)
		t.dirty = false
	}
	return t.matrix
}

func computeTransform(t *Transform) [6]float64 {
	sx := t.scale.X
	sy := t.scale.Y

	var sin, cos float64 = 0, 1
	if t.rotation != 0 {
		sin, cos = math.Sincos(-t.rotation * math.Pi / 180)
	}

	// After Scale * Translate(-origin):
	//   a=sx, d=sy, tx=-ox*sx, ty=-oy*sy
	preTx := -t.origin.X * sx
	preTy := -t.origin.Y * sy

	// After Rotate:
	ra := cos * sx
	rb := sin * sx
	rc := -sin * sy
	rd := cos * sy
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	// After Translate(position + offset):
	return [6]float64{
		ra, rb, rc, rd,
		rtx + t.position.X + t.globalOffset.X,
		rty + t.position.Y + t.globalOffset.Y,
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
