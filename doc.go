// Package rgss is a retained-mode sprite runtime for [Ebitengine] in the
// style of the RPG Maker scripting system.
//
// It provides sprites with color and tone effects, a bush fade, a banded
// horizontal wave distortion and timed flashes, grouped into clipped,
// scrollable viewports and drawn with Kage shaders.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	rt := rgss.NewRuntime(rgss.DefaultRunConfig())
//	bmp := rgss.NewBitmapFromImage(img)
//	sp := rt.NewSprite(nil)
//	sp.SetBitmap(bmp)
//	rt.SetUpdateFunc(func() error { sp.Update(); return nil })
//	rgss.Run(rt)
//
// For full control, call [Runtime.Update] and [Runtime.Render] from your own
// [ebiten.Game].
//
// # Frame model
//
// Each frame runs two ordered phases. During prepare every sprite resolves its
// dirty geometry (the base quad and the wave bands) and decides whether it is
// visible. During draw the screen scene, then each [Viewport], draws its
// elements in z order. Setters only record state and mark it dirty, so any
// number of changes between two frames costs one recompute.
//
// # Sprites
//
// A [Sprite] samples its [Bitmap] through a source [Rect]. The rect, the
// blend [Color] and the [Tone] can each be the sprite's own or an instance
// shared with other sprites; changes to a shared rect reach every sprite
// bound to it. Disposing a bitmap detaches it from every sprite using it.
//
//	sp.SetWaveAmp(4)       // banded horizontal wobble
//	sp.SetBushDepth(12)    // bottom 12 rows at BushOpacity
//	sp.Tone().Set(0, 0, 0, 255)
//	sp.Flash(rgss.NewColor(255, 255, 255, 255), 20)
//
// Sprites pick the simple shader when no effect is active and the effect
// shader otherwise. Drawing goes through a [Pipeline]; [NewEbitenPipeline] is
// the Ebitengine implementation and tests may supply their own.
//
// # Logging
//
// rgss logs nothing by default. Pass a [log/slog] logger to [SetLogger] to
// see lifecycle events and, with [RunConfig.Debug], per-frame stats.
//
// ECS integration is available through the [Donburi] adapter in rgss/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package rgss
