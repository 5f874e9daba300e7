package rgss

import "image"

// updateVisibility decides whether the sprite draws this frame. Transformed
// and waving sprites are not bounds-tested and always count as visible; the
// test may report false positives but never false negatives.
func (s *Sprite) updateVisibility() {
	s.isVisible = false

	if s.bitmap == nil || s.opacity.Value() == 0 {
		return
	}
	if s.wave.active {
		s.isVisible = true
		return
	}
	sc := s.trans.Scale()
	if sc.X != 1 || sc.Y != 1 || s.trans.Rotation() != 0 {
		s.isVisible = true
		return
	}

	pos := s.trans.Position()
	org := s.trans.Origin()
	x := int(pos.X - org.X)
	y := int(pos.Y - org.Y)
	self := image.Rect(x, y, x+s.bitmap.Width(), y+s.bitmap.Height())
	s.isVisible = self.Overlaps(s.sceneRect)
}
