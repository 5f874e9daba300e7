package rgss

import "image"

// Default attribute values for a new sprite.
const (
	defaultBushOpacity = 128
	defaultOpacity     = 255
)

// Sprite is a bitmap drawn through a transform, with optional color and tone
// effects, a bush fade on its lower rows, a horizontal wave distortion and a
// timed flash. Sprites belong to a Scene (the screen or a Viewport) and are
// prepared and drawn by the Runtime once per frame.
//
// Every mutator only records state and sets dirty flags. Derived geometry is
// resolved at the next prepare.
type Sprite struct {
	rt    *Runtime
	scene *Scene

	bitmap    *Bitmap
	bitmapCon Connection

	srcRect    binding[Rect]
	srcRectCon Connection
	color      binding[Color]
	tone       binding[Tone]

	trans Transform
	quad  Quad
	wave  waveState
	flash Flashable

	mirrored    bool
	bushDepth   int
	efBushDepth float64
	bushOpacity NormValue
	opacity     NormValue
	blendMode   BlendMode

	sceneRect image.Rectangle
	isVisible bool

	z          int
	visible    bool
	prepareCon Connection
	disposed   bool
}

// NewSprite creates a sprite in vp, or in the screen scene when vp is nil.
func (rt *Runtime) NewSprite(vp *Viewport) *Sprite {
	scene := rt.screen
	if vp != nil {
		scene = vp.scene
	}
	s := &Sprite{
		rt:          rt,
		scene:       scene,
		trans:       NewTransform(),
		wave:        newWaveState(),
		bushOpacity: newNormValue(defaultBushOpacity),
		opacity:     newNormValue(defaultOpacity),
		visible:     true,
	}
	s.srcRectCon = s.srcRect.current().Changed().Connect(s.onSrcRectSignal)
	scene.Insert(s)
	s.OnGeometryChange(scene.Geometry())
	s.prepareCon = rt.prepare.Connect(s.onPrepare)
	return s
}

// --- Bitmap ---

// Bitmap returns the bound bitmap, or nil.
func (s *Sprite) Bitmap() *Bitmap { return s.bitmap }

// SetBitmap binds b and resets the source rect to its full extent. A nil
// bitmap unbinds and hides the sprite immediately.
func (s *Sprite) SetBitmap(b *Bitmap) {
	if s.rt.debug() {
		debugCheckDisposed(s, "SetBitmap")
	}
	if s.bitmap == b {
		return
	}
	s.bitmapCon.Disconnect()
	s.bitmap = b
	if b == nil {
		s.isVisible = false
		return
	}
	s.bitmapCon = b.OnDispose(s.onBitmapDisposed)

	// A changed rect recomputes through the change signal. Otherwise the
	// geometry still has to be refreshed for the new bitmap height.
	if !s.srcRect.current().Set(0, 0, b.Width(), b.Height()) {
		s.onSrcRectChange()
	}
	s.wave.dirty = true
}

func (s *Sprite) onBitmapDisposed() {
	Logger().Debug("sprite bitmap disposed", "z", s.z)
	s.bitmap = nil
	s.bitmapCon = Connection{}
	s.wave.dirty = true
	s.isVisible = false
}

// --- Source rect, color, tone ---

// SrcRect returns the active source rect. Mutating it updates the sprite.
func (s *Sprite) SrcRect() *Rect { return s.srcRect.current() }

// SetSrcRect makes r the active source rect. The sprite subscribes to r's
// changes; nil switches back to the sprite's own embedded rect.
func (s *Sprite) SetSrcRect(r *Rect) {
	if s.rt.debug() {
		debugCheckDisposed(s, "SetSrcRect")
	}
	s.srcRectCon.Disconnect()
	s.srcRect.bind(r)
	s.srcRectCon = s.srcRect.current().Changed().Connect(s.onSrcRectSignal)
	s.onSrcRectChange()
}

func (s *Sprite) onSrcRectSignal(struct{}) { s.onSrcRectChange() }

// Color returns the active blend color.
func (s *Sprite) Color() *Color { return s.color.current() }

// SetColor makes c the active blend color; nil restores the embedded one.
func (s *Sprite) SetColor(c *Color) { s.color.bind(c) }

// Tone returns the active tone.
func (s *Sprite) Tone() *Tone { return s.tone.current() }

// SetTone makes t the active tone; nil restores the embedded one.
func (s *Sprite) SetTone(t *Tone) { s.tone.bind(t) }

// Width returns the source rect width.
func (s *Sprite) Width() int { return s.srcRect.current().Width() }

// Height returns the source rect height.
func (s *Sprite) Height() int { return s.srcRect.current().Height() }

// --- Transform ---

// X returns the horizontal position.
func (s *Sprite) X() int { return int(s.trans.Position().X) }

// Y returns the vertical position.
func (s *Sprite) Y() int { return int(s.trans.Position().Y) }

// SetX sets the horizontal position.
func (s *Sprite) SetX(v int) {
	p := s.trans.Position()
	if p.X == float64(v) {
		return
	}
	s.trans.SetPosition(Vec2{float64(v), p.Y})
}

// SetY sets the vertical position. Wave bands are aligned to the screen, so
// this also invalidates wave geometry.
func (s *Sprite) SetY(v int) {
	p := s.trans.Position()
	if p.Y == float64(v) {
		return
	}
	s.trans.SetPosition(Vec2{p.X, float64(v)})
	s.wave.dirty = true
}

// OX returns the horizontal origin.
func (s *Sprite) OX() int { return int(s.trans.Origin().X) }

// OY returns the vertical origin.
func (s *Sprite) OY() int { return int(s.trans.Origin().Y) }

// SetOX sets the horizontal origin.
func (s *Sprite) SetOX(v int) {
	o := s.trans.Origin()
	if o.X == float64(v) {
		return
	}
	s.trans.SetOrigin(Vec2{float64(v), o.Y})
}

// SetOY sets the vertical origin.
func (s *Sprite) SetOY(v int) {
	o := s.trans.Origin()
	if o.Y == float64(v) {
		return
	}
	s.trans.SetOrigin(Vec2{o.X, float64(v)})
}

// ZoomX returns the horizontal scale.
func (s *Sprite) ZoomX() float64 { return s.trans.Scale().X }

// ZoomY returns the vertical scale.
func (s *Sprite) ZoomY() float64 { return s.trans.Scale().Y }

// SetZoomX sets the horizontal scale.
func (s *Sprite) SetZoomX(v float64) {
	sc := s.trans.Scale()
	if sc.X == v {
		return
	}
	s.trans.SetScale(Vec2{v, sc.Y})
}

// SetZoomY sets the vertical scale. Bush depth is expressed in screen pixels,
// so it is recomputed along with the wave bands.
func (s *Sprite) SetZoomY(v float64) {
	sc := s.trans.Scale()
	if sc.Y == v {
		return
	}
	s.trans.SetScale(Vec2{sc.X, v})
	s.recomputeBushDepth()
	s.wave.dirty = true
}

// Angle returns the rotation in degrees.
func (s *Sprite) Angle() float64 { return s.trans.Rotation() }

// SetAngle sets the rotation in degrees.
func (s *Sprite) SetAngle(v float64) {
	if s.trans.Rotation() == v {
		return
	}
	s.trans.SetRotation(v)
}

// --- Appearance ---

// Mirror reports whether the texture is flipped horizontally.
func (s *Sprite) Mirror() bool { return s.mirrored }

// SetMirror flips the texture horizontally without moving the sprite.
func (s *Sprite) SetMirror(v bool) {
	if s.mirrored == v {
		return
	}
	s.mirrored = v
	s.onSrcRectChange()
}

// BushDepth returns the bush depth in screen pixels from the bottom.
func (s *Sprite) BushDepth() int { return s.bushDepth }

// SetBushDepth sets how many bottom rows are drawn at BushOpacity.
func (s *Sprite) SetBushDepth(v int) {
	if s.bushDepth == v {
		return
	}
	s.bushDepth = v
	s.recomputeBushDepth()
}

// BushOpacity returns the opacity of the bush rows (0-255).
func (s *Sprite) BushOpacity() int { return s.bushOpacity.Value() }

// SetBushOpacity sets the bush opacity, clamped to 0-255.
func (s *Sprite) SetBushOpacity(v int) { s.bushOpacity.Set(v) }

// Opacity returns the sprite opacity (0-255).
func (s *Sprite) Opacity() int { return s.opacity.Value() }

// SetOpacity sets the sprite opacity, clamped to 0-255.
func (s *Sprite) SetOpacity(v int) { s.opacity.Set(v) }

// BlendType returns the blend type: 0 normal, 1 add, 2 subtract.
func (s *Sprite) BlendType() int { return int(s.blendMode) }

// SetBlendType sets the blend type. Unknown values select normal blending.
func (s *Sprite) SetBlendType(v int) { s.blendMode = BlendModeFromType(v) }

// Z returns the draw order within the scene.
func (s *Sprite) Z() int { return s.z }

// SetZ sets the draw order. Higher z draws later.
func (s *Sprite) SetZ(v int) {
	if s.z == v {
		return
	}
	s.z = v
	s.scene.Reorder()
}

// Visible reports the user visibility flag.
func (s *Sprite) Visible() bool { return s.visible }

// SetVisible sets the user visibility flag. A hidden sprite is still
// prepared but never drawn.
func (s *Sprite) SetVisible(v bool) { s.visible = v }

// --- Effects ---

// Flash blends c over the sprite, fading out over duration ticks. A nil color
// hides the sprite for the duration instead.
func (s *Sprite) Flash(c *Color, duration int) {
	if s.rt.debug() {
		debugCheckDisposed(s, "Flash")
	}
	s.flash.Flash(c, duration)
}

// Flashing reports whether a flash is in progress.
func (s *Sprite) Flashing() bool { return s.flash.Flashing() }

// Update advances the flash and the wave phase by one tick. Call it once per
// game tick.
func (s *Sprite) Update() {
	if s.rt.debug() {
		debugCheckDisposed(s, "Update")
	}
	s.flash.updateFlash()
	s.advanceWave()
}

// --- Scene ---

// OnGeometryChange implements Element. The scene's screen rect minus its
// scroll origin becomes the offset applied to the transform, and the visible
// region in sprite coordinates becomes the culling rect.
func (s *Sprite) OnGeometryChange(geo Geometry) {
	s.trans.SetGlobalOffset(
		float64(geo.Rect.Min.X-geo.XOrigin),
		float64(geo.Rect.Min.Y-geo.YOrigin),
	)
	s.sceneRect = image.Rect(
		geo.XOrigin, geo.YOrigin,
		geo.XOrigin+geo.Rect.Dx(), geo.YOrigin+geo.Rect.Dy(),
	)
}

func (s *Sprite) onPrepare(struct{}) { s.prepare() }

// prepare resolves dirty wave geometry and then recomputes visibility.
func (s *Sprite) prepare() {
	if s.wave.dirty {
		s.updateWave()
		s.wave.dirty = false
	}
	s.updateVisibility()
	s.rt.stats.countPrepared(s.isVisible)
}

// --- Lifecycle ---

// Dispose detaches the sprite from its bitmap, source rect, scene and the
// prepare broadcast, and releases its wave buffers. It is safe to call twice.
func (s *Sprite) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.bitmapCon.Disconnect()
	s.srcRectCon.Disconnect()
	s.prepareCon.Disconnect()
	s.scene.Remove(s)
	s.bitmap = nil
	s.isVisible = false
	s.wave.quads.Release()
}

// IsDisposed reports whether Dispose has been called.
func (s *Sprite) IsDisposed() bool { return s.disposed }
