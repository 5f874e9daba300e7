package rgss

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll tweens for the viewport origin.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport is a clipped, scrollable region of the screen with its own scene.
// Sprites created in a viewport are positioned relative to its rect minus its
// origin and never draw outside its rect.
type Viewport struct {
	rt     *Runtime
	scene  *Scene
	parent Geometry

	rect    image.Rectangle
	ox, oy  int
	z       int
	visible bool
	scroll  *scrollAnim

	disposed bool
}

// NewViewport creates a viewport covering rect in screen coordinates.
func (rt *Runtime) NewViewport(rect image.Rectangle) *Viewport {
	vp := &Viewport{
		rt:      rt,
		rect:    rect.Canon(),
		visible: true,
	}
	vp.parent = rt.screen.Geometry()
	vp.scene = newScene(vp.geometry())
	rt.screen.Insert(vp)
	rt.viewports = append(rt.viewports, vp)
	Logger().Debug("viewport created", "rect", vp.rect.String())
	return vp
}

// Scene returns the viewport's scene.
func (vp *Viewport) Scene() *Scene { return vp.scene }

// Rect returns the screen rect.
func (vp *Viewport) Rect() image.Rectangle { return vp.rect }

// SetRect moves or resizes the viewport.
func (vp *Viewport) SetRect(r image.Rectangle) {
	r = r.Canon()
	if vp.rect == r {
		return
	}
	vp.rect = r
	vp.scene.SetGeometry(vp.geometry())
}

// OX returns the horizontal scroll origin.
func (vp *Viewport) OX() int { return vp.ox }

// OY returns the vertical scroll origin.
func (vp *Viewport) OY() int { return vp.oy }

// SetOrigin sets the scroll origin. Contents shift by (-ox, -oy).
func (vp *Viewport) SetOrigin(ox, oy int) {
	if vp.ox == ox && vp.oy == oy {
		return
	}
	vp.ox, vp.oy = ox, oy
	vp.scene.SetGeometry(vp.geometry())
}

// ScrollTo animates the origin to (ox, oy) over duration ticks.
func (vp *Viewport) ScrollTo(ox, oy int, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		vp.scroll = nil
		vp.SetOrigin(ox, oy)
		return
	}
	vp.scroll = &scrollAnim{
		tweenX: gween.New(float32(vp.ox), float32(ox), duration, easeFn),
		tweenY: gween.New(float32(vp.oy), float32(oy), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (vp *Viewport) Scrolling() bool { return vp.scroll != nil }

// Z returns the draw order on screen.
func (vp *Viewport) Z() int { return vp.z }

// SetZ sets the draw order on screen.
func (vp *Viewport) SetZ(v int) {
	if vp.z == v {
		return
	}
	vp.z = v
	vp.rt.screen.Reorder()
}

// Visible reports whether the viewport draws.
func (vp *Viewport) Visible() bool { return vp.visible }

// SetVisible shows or hides the viewport and everything in it.
func (vp *Viewport) SetVisible(v bool) { vp.visible = v }

// Update advances the scroll animation by one tick.
func (vp *Viewport) Update() {
	if vp.scroll == nil {
		return
	}
	ox, oy := vp.ox, vp.oy
	if !vp.scroll.doneX {
		val, done := vp.scroll.tweenX.Update(1)
		ox = int(val)
		vp.scroll.doneX = done
	}
	if !vp.scroll.doneY {
		val, done := vp.scroll.tweenY.Update(1)
		oy = int(val)
		vp.scroll.doneY = done
	}
	if vp.scroll.doneX && vp.scroll.doneY {
		vp.scroll = nil
	}
	vp.SetOrigin(ox, oy)
}

// OnGeometryChange implements Element.
func (vp *Viewport) OnGeometryChange(geo Geometry) {
	vp.parent = geo
	vp.scene.SetGeometry(vp.geometry())
}

// Draw implements Element. Contents are clipped to the viewport rect.
func (vp *Viewport) Draw(ctx *DrawContext) {
	if !vp.visible || ctx.Target == nil {
		return
	}
	geo := vp.scene.Geometry()
	clip := geo.Rect.Intersect(ctx.Target.Bounds())
	if clip.Empty() {
		return
	}
	sub := *ctx
	sub.Target = ctx.Target.SubImage(clip).(*ebiten.Image)
	vp.scene.Draw(&sub)
}

// Dispose removes the viewport from the screen. Sprites inside it are left
// alone and stop drawing.
func (vp *Viewport) Dispose() {
	if vp.disposed {
		return
	}
	vp.disposed = true
	vp.rt.screen.Remove(vp)
	for i, v := range vp.rt.viewports {
		if v == vp {
			vp.rt.viewports = append(vp.rt.viewports[:i], vp.rt.viewports[i+1:]...)
			break
		}
	}
}

// IsDisposed reports whether Dispose has been called.
func (vp *Viewport) IsDisposed() bool { return vp.disposed }

// geometry is the rect translated into the parent's coordinates, with this
// viewport's origin.
func (vp *Viewport) geometry() Geometry {
	off := vp.parent.Rect.Min.Sub(image.Pt(vp.parent.XOrigin, vp.parent.YOrigin))
	return Geometry{
		Rect:    vp.rect.Add(off),
		XOrigin: vp.ox,
		YOrigin: vp.oy,
	}
}
