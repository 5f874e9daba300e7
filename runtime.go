package rgss

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Runtime owns the screen scene, the per-frame prepare broadcast and the
// draw pipeline. It implements ebiten.Game.
//
// Each frame runs in two ordered phases: prepare (every sprite resolves dirty
// geometry and recomputes visibility) then draw (read-only with respect to
// sprite state). Everything runs on the Ebitengine game goroutine.
type Runtime struct {
	cfg       RunConfig
	screen    *Scene
	viewports []*Viewport
	prepare   Signal[struct{}]
	pipeline  Pipeline
	blend     BlendStack
	updateFn  func() error
	frame     uint64
	stats     FrameStats
	fps       fpsOverlay
}

// NewRuntime creates a runtime whose screen scene covers cfg.Width by
// cfg.Height. Drawing uses NewEbitenPipeline until SetPipeline is called.
func NewRuntime(cfg RunConfig) *Runtime {
	rt := &Runtime{
		cfg:      cfg,
		pipeline: NewEbitenPipeline(),
	}
	rt.screen = newScene(Geometry{Rect: image.Rect(0, 0, cfg.Width, cfg.Height)})
	return rt
}

// Config returns the configuration the runtime was created with.
func (rt *Runtime) Config() RunConfig { return rt.cfg }

// Screen returns the top-level scene.
func (rt *Runtime) Screen() *Scene { return rt.screen }

// Pipeline returns the active draw pipeline.
func (rt *Runtime) Pipeline() Pipeline { return rt.pipeline }

// SetPipeline replaces the draw pipeline.
func (rt *Runtime) SetPipeline(p Pipeline) { rt.pipeline = p }

// SetUpdateFunc registers fn to run once per tick before viewports advance.
// A non-nil error stops Run and is returned from it.
func (rt *Runtime) SetUpdateFunc(fn func() error) { rt.updateFn = fn }

// Frame returns the number of frames rendered so far.
func (rt *Runtime) Frame() uint64 { return rt.frame }

// Stats returns the stats of the last rendered frame.
func (rt *Runtime) Stats() FrameStats { return rt.stats }

func (rt *Runtime) debug() bool { return rt.cfg.Debug }

// Update implements ebiten.Game.
func (rt *Runtime) Update() error {
	if rt.updateFn != nil {
		if err := rt.updateFn(); err != nil {
			return err
		}
	}
	for _, vp := range rt.viewports {
		vp.Update()
	}
	return nil
}

// Draw implements ebiten.Game.
func (rt *Runtime) Draw(screen *ebiten.Image) {
	rt.Render(screen)
	if rt.cfg.ShowFPS {
		rt.fps.draw(screen, &rt.stats)
	}
}

// Layout implements ebiten.Game. The logical screen size is fixed.
func (rt *Runtime) Layout(_, _ int) (int, int) {
	return rt.cfg.Width, rt.cfg.Height
}

// Prepare broadcasts the prepare phase to every live sprite.
func (rt *Runtime) Prepare() {
	rt.prepare.Emit(struct{}{})
}

// Render runs one frame: prepare, then draw the screen scene into target.
func (rt *Runtime) Render(target *ebiten.Image) {
	rt.stats.reset()
	rt.frame++

	var t0 time.Time
	if rt.cfg.Debug {
		t0 = time.Now()
	}
	rt.Prepare()
	if rt.cfg.Debug {
		rt.stats.PrepareTime = time.Since(t0)
		t0 = time.Now()
	}

	ctx := DrawContext{
		Target:   target,
		Pipeline: rt.pipeline,
		Blend:    &rt.blend,
		Stats:    &rt.stats,
	}
	rt.screen.Draw(&ctx)

	if rt.cfg.Debug {
		rt.stats.DrawTime = time.Since(t0)
	}
	rt.debugLog()
}

// Run opens a window configured by rt's RunConfig and runs the frame loop
// until the window closes or the update func returns an error.
// ebiten.Termination returned from the update func ends the loop cleanly.
func Run(rt *Runtime) error {
	if err := ValidateRunConfig(rt.cfg); err != nil {
		return err
	}
	ebiten.SetWindowTitle(rt.cfg.Title)
	ebiten.SetWindowSize(rt.cfg.Width, rt.cfg.Height)
	ebiten.SetTPS(rt.cfg.TPS)
	Logger().Info("runtime starting",
		"title", rt.cfg.Title,
		"width", rt.cfg.Width,
		"height", rt.cfg.Height,
		"tps", rt.cfg.TPS,
	)
	if err := ebiten.RunGame(rt); err != nil {
		if errors.Is(err, ebiten.Termination) {
			return nil
		}
		return fmt.Errorf("rgss: run: %w", err)
	}
	return nil
}
