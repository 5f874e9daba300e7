package rgss

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Geometry describes where a scene's content lands on screen: the
// screen-space rect it is clipped to and the scroll origin subtracted from
// every element's position.
type Geometry struct {
	Rect             image.Rectangle
	XOrigin, YOrigin int
}

// Element is a drawable that lives in a Scene. The scene calls Draw once per
// frame in z order and OnGeometryChange whenever its geometry changes.
type Element interface {
	Z() int
	Draw(ctx *DrawContext)
	OnGeometryChange(geo Geometry)
}

// DrawContext carries everything an element needs to issue draw calls. It is
// threaded through Scene.Draw rather than held globally.
type DrawContext struct {
	Target   *ebiten.Image
	Pipeline Pipeline
	Blend    *BlendStack
	Stats    *FrameStats
}

// Scene is an ordered collection of elements sharing one Geometry. The screen
// and every Viewport each own a Scene.
type Scene struct {
	geometry Geometry
	elements []Element
	sorted   bool
}

func newScene(geo Geometry) *Scene {
	return &Scene{geometry: geo, sorted: true}
}

// Geometry returns the current geometry.
func (s *Scene) Geometry() Geometry {
	return s.geometry
}

// SetGeometry replaces the geometry and notifies every element. Setting an
// identical geometry is a no-op.
func (s *Scene) SetGeometry(geo Geometry) {
	if s.geometry == geo {
		return
	}
	s.geometry = geo
	for _, e := range s.elements {
		e.OnGeometryChange(geo)
	}
}

// Insert appends e. Elements with equal z draw in insertion order.
func (s *Scene) Insert(e Element) {
	s.elements = append(s.elements, e)
	s.sorted = false
}

// Remove detaches e. No-op if e is not in the scene.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (s *Scene) Remove(e Element) {
	for i, c := range s.elements {
		if c == e {
			copy(s.elements[i:], s.elements[i+1:])
			s.elements[len(s.elements)-1] = nil
			s.elements = s.elements[:len(s.elements)-1]
			return
		}
	}
}

// Reorder marks the draw order stale. Elements call it when their z changes.
func (s *Scene) Reorder() {
	s.sorted = false
}

// Len returns the number of elements.
func (s *Scene) Len() int {
	return len(s.elements)
}

// Elements returns the elements in draw order. The returned slice MUST NOT be
// mutated by the caller.
func (s *Scene) Elements() []Element {
	s.sortElements()
	return s.elements
}

// Draw draws every element in z order.
func (s *Scene) Draw(ctx *DrawContext) {
	s.sortElements()
	for _, e := range s.elements {
		e.Draw(ctx)
	}
}

// sortElements orders elements by z with a stable insertion sort: zero
// allocations, and O(n) in the common already-sorted case.
func (s *Scene) sortElements() {
	if s.sorted {
		return
	}
	for i := 1; i < len(s.elements); i++ {
		key := s.elements[i]
		kz := key.Z()
		j := i - 1
		for j >= 0 && s.elements[j].Z() > kz {
			s.elements[j+1] = s.elements[j]
			j--
		}
		s.elements[j+1] = key
	}
	s.sorted = true
}
