package rgss

import (
	"fmt"
	"strings"
	"testing"
)

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DisposedSpritePanics(t *testing.T) {
	ops := []struct {
		name string
		call func(*Sprite)
	}{
		{"SetBitmap", func(s *Sprite) { s.SetBitmap(newTestBitmap(1, 1)) }},
		{"SetSrcRect", func(s *Sprite) { s.SetSrcRect(nil) }},
		{"Flash", func(s *Sprite) { s.Flash(nil, 1) }},
		{"Update", func(s *Sprite) { s.Update() }},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			cfg := DefaultRunConfig()
			cfg.Debug = true
			sp := NewRuntime(cfg).NewSprite(nil)
			sp.Dispose()

			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic, got none")
				}
				if msg := fmt.Sprint(r); !strings.Contains(msg, op.name) || !strings.Contains(msg, "disposed") {
					t.Errorf("panic message %q", msg)
				}
			}()
			op.call(sp)
		})
	}
}

func TestReleaseMode_DisposedSpriteNoPanic(t *testing.T) {
	sp := newTestRuntime().NewSprite(nil)
	sp.Dispose()
	sp.Update()
	sp.Flash(nil, 1)
}

func TestDebugMode_Timings(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.Debug = true
	rt := NewRuntime(cfg)
	rt.SetPipeline(newFakePipeline())
	for i := 0; i < 50; i++ {
		newDrawSprite(rt, 8, 8)
	}
	rt.Render(nil)
	st := rt.Stats()
	if st.PrepareTime < 0 || st.DrawTime < 0 {
		t.Errorf("negative timings: %+v", st)
	}
	if st.SimpleDraws != 50 {
		t.Errorf("SimpleDraws = %d, want 50", st.SimpleDraws)
	}
}

func TestFrameStatsNilSafe(t *testing.T) {
	var fs *FrameStats
	fs.countPrepared(true)
	fs.countDraw(true)
	fs.countWaveQuads(3)
}

func TestFrameStatsResetEachFrame(t *testing.T) {
	rt, _ := newDrawRuntime()
	newDrawSprite(rt, 8, 8)
	rt.Render(nil)
	rt.Render(nil)
	if st := rt.Stats(); st.SpritesPrepared != 1 || st.DrawCalls() != 1 {
		t.Errorf("stats accumulated across frames: %+v", st)
	}
}
