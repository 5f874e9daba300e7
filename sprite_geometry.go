package rgss

// onSrcRectChange rebuilds the base quad from the active source rect. The
// texture rect is flipped when mirrored; the position rect always starts at
// the sprite origin so mirroring never moves the sprite.
func (s *Sprite) onSrcRectChange() {
	r := s.srcRect.current()
	tex := r.FloatRect()
	if s.mirrored {
		tex = tex.HFlipped()
	}
	s.quad.SetTexRect(tex)
	s.quad.SetPosRect(FloatRect{Width: float64(r.Width()), Height: float64(r.Height())})
	s.recomputeBushDepth()
	s.wave.dirty = true
}

// recomputeBushDepth converts the bush depth (screen pixels from the bottom of
// the sprite) into a normalized texture y above which rows are fully opaque.
//
//	tex       = bushDepth/zoomY - (src.y + src.h) + bitmapH
//	effective = 1 - tex/bitmapH
func (s *Sprite) recomputeBushDepth() {
	if s.bitmap == nil {
		return
	}
	r := s.srcRect.current()
	h := float64(s.bitmap.Height())
	tex := float64(s.bushDepth)/s.trans.Scale().Y - float64(r.Y()+r.Height()) + h
	s.efBushDepth = 1 - tex/h
}
