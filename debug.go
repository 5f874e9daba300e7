package rgss

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FrameStats holds per-frame timing and draw-call metrics. Counts are always
// collected; timings only in debug mode.
type FrameStats struct {
	PrepareTime time.Duration
	DrawTime    time.Duration

	SpritesPrepared int
	SpritesVisible  int
	SpritesCulled   int

	EffectDraws int // draw calls through the effect shader
	SimpleDraws int // draw calls through the simple shader
	WaveQuads   int
}

// DrawCalls returns the total number of draw calls.
func (fs *FrameStats) DrawCalls() int {
	return fs.EffectDraws + fs.SimpleDraws
}

func (fs *FrameStats) reset() {
	*fs = FrameStats{}
}

func (fs *FrameStats) countPrepared(visible bool) {
	if fs == nil {
		return
	}
	fs.SpritesPrepared++
	if visible {
		fs.SpritesVisible++
	} else {
		fs.SpritesCulled++
	}
}

func (fs *FrameStats) countDraw(effect bool) {
	if fs == nil {
		return
	}
	if effect {
		fs.EffectDraws++
	} else {
		fs.SimpleDraws++
	}
}

func (fs *FrameStats) countWaveQuads(n int) {
	if fs == nil {
		return
	}
	fs.WaveQuads += n
}

// debugLog writes the frame stats to the package logger at debug level every
// StatsInterval frames.
func (rt *Runtime) debugLog() {
	if !rt.cfg.Debug || rt.cfg.StatsInterval <= 0 || rt.frame%uint64(rt.cfg.StatsInterval) != 0 {
		return
	}
	st := rt.stats
	Logger().Debug("frame stats",
		"frame", rt.frame,
		"prepare", st.PrepareTime,
		"draw", st.DrawTime,
		"prepared", st.SpritesPrepared,
		"visible", st.SpritesVisible,
		"culled", st.SpritesCulled,
		"effect_draws", st.EffectDraws,
		"simple_draws", st.SimpleDraws,
		"wave_quads", st.WaveQuads,
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed sprite
// is mutated. Only called in debug mode.
func debugCheckDisposed(s *Sprite, op string) {
	if s.disposed {
		panic(fmt.Sprintf("rgss debug: %s on disposed sprite (z %d)", op, s.z))
	}
}

// fpsOverlay shows FPS, TPS and draw calls in the top-left corner. The text
// is redrawn roughly twice a second.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed int
}

// 120x48 fits "FPS: 60.0\nTPS: 60.0\nDraws: 9999".
const (
	fpsOverlayW = 120
	fpsOverlayH = 48
)

func (o *fpsOverlay) draw(screen *ebiten.Image, stats *FrameStats) {
	if o.img == nil {
		o.img = ebiten.NewImage(fpsOverlayW, fpsOverlayH)
		o.elapsed = ebiten.TPS()
	}
	o.elapsed++
	if o.elapsed >= ebiten.TPS()/2 {
		o.elapsed = 0
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nDraws: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), stats.DrawCalls()))
	}
	screen.DrawImage(o.img, nil)
}
