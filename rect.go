package rgss

import "image"

// Rect is an integer rectangle that notifies subscribers whenever one of its
// components changes. Sprites use it as their source rect; scripts may share a
// single Rect between several sprites.
//
// A Rect must not be copied after first use: live Connections refer to its
// embedded Signal.
type Rect struct {
	x, y, width, height int
	changed             Signal[struct{}]
}

// NewRect creates a Rect with the given components.
func NewRect(x, y, width, height int) *Rect {
	return &Rect{x: x, y: y, width: width, height: height}
}

// X returns the left edge.
func (r *Rect) X() int { return r.x }

// Y returns the top edge.
func (r *Rect) Y() int { return r.y }

// Width returns the width in pixels.
func (r *Rect) Width() int { return r.width }

// Height returns the height in pixels.
func (r *Rect) Height() int { return r.height }

// SetX sets the left edge.
func (r *Rect) SetX(v int) { r.Set(v, r.y, r.width, r.height) }

// SetY sets the top edge.
func (r *Rect) SetY(v int) { r.Set(r.x, v, r.width, r.height) }

// SetWidth sets the width.
func (r *Rect) SetWidth(v int) { r.Set(r.x, r.y, v, r.height) }

// SetHeight sets the height.
func (r *Rect) SetHeight(v int) { r.Set(r.x, r.y, r.width, v) }

// Set assigns all four components at once and reports whether anything
// changed. Subscribers are notified exactly once, and only on change.
func (r *Rect) Set(x, y, width, height int) bool {
	if r.x == x && r.y == y && r.width == width && r.height == height {
		return false
	}
	r.x, r.y, r.width, r.height = x, y, width, height
	r.changed.Emit(struct{}{})
	return true
}

// SetRect copies the components of other into r. See Set.
func (r *Rect) SetRect(other *Rect) bool {
	return r.Set(other.x, other.y, other.width, other.height)
}

// Empty clears the rect to (0, 0, 0, 0).
func (r *Rect) Empty() {
	r.Set(0, 0, 0, 0)
}

// Changed returns the change notification signal.
func (r *Rect) Changed() *Signal[struct{}] {
	return &r.changed
}

// FloatRect returns the rect as floating point geometry.
func (r *Rect) FloatRect() FloatRect {
	return FloatRect{X: float64(r.x), Y: float64(r.y), Width: float64(r.width), Height: float64(r.height)}
}

// Image returns the rect as an image.Rectangle.
func (r *Rect) Image() image.Rectangle {
	return image.Rect(r.x, r.y, r.x+r.width, r.y+r.height)
}
