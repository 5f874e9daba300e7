package rgss

// Draw implements Element. It picks the simple shader when no effect is
// active and the effect shader otherwise, then draws the wave quads or the
// base quad with the sprite's blend mode on top of ctx.Blend.
func (s *Sprite) Draw(ctx *DrawContext) {
	if !s.visible || !s.isVisible || s.bitmap == nil {
		return
	}
	if s.flash.emptyFlashing() {
		return
	}

	color := s.color.current()
	tone := s.tone.current()
	mat := s.trans.Matrix()

	renderEffect := color.HasEffect() ||
		tone.HasEffect() ||
		s.opacity.Value() != 255 ||
		s.flash.Flashing() ||
		s.bushDepth != 0

	if renderEffect {
		sh := ctx.Pipeline.SpriteShader()
		sh.Bind()
		sh.SetSpriteMat(mat)
		sh.SetTone(tone.Norm())
		sh.SetOpacity(s.opacity.Norm())
		sh.SetBushDepth(s.efBushDepth)
		sh.SetBushOpacity(s.bushOpacity.Norm())

		// The stronger of color and flash wins outright.
		blend := color.Norm()
		if fc := s.flash.FlashColor(); s.flash.Flashing() && fc.W > blend.W {
			blend = fc
		}
		sh.SetColor(blend)
		ctx.Stats.countDraw(true)
	} else {
		sh := ctx.Pipeline.SimpleSpriteShader()
		sh.Bind()
		sh.SetSpriteMat(mat)
		ctx.Stats.countDraw(false)
	}

	var quads QuadSource = &s.quad
	if s.wave.active {
		quads = &s.wave.quads
		ctx.Stats.countWaveQuads(s.wave.quads.Len())
	}

	ctx.Blend.Push(s.blendMode)
	ctx.Pipeline.DrawQuads(ctx.Target, s.bitmap, quads, ctx.Blend.Top())
	ctx.Blend.Pop()
}
