package rgss

import (
	"math"
	"testing"
)

// newWaveSprite builds a prepared sprite with the given bitmap size, y and
// wave amplitude.
func newWaveSprite(t *testing.T, w, h, y, amp int) (*Runtime, *Sprite) {
	t.Helper()
	rt, sp := newTestSprite(t, w, h)
	sp.SetY(y)
	sp.SetWaveAmp(amp)
	rt.Prepare()
	return rt, sp
}

func TestWaveQuadCountByAmplitude(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		amp    int
		active bool
		quads  int
	}{
		{"zero", 64, 0, false, 0},
		{"collapse threshold", 64, -32, true, 0},
		{"collapse beyond", 64, -100, true, 0},
		{"just above threshold", 64, -31, true, 1},
		{"odd width threshold", 63, -31, true, 0},
		{"odd width above", 63, -30, true, 1},
		{"small negative", 64, -1, true, 1},
		{"positive", 64, 3, true, 4}, // 32 rows at y=0: 4 full bands
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, sp := newWaveSprite(t, tt.width, 32, 0, tt.amp)
			if sp.wave.active != tt.active {
				t.Errorf("active = %v, want %v", sp.wave.active, tt.active)
			}
			if got := sp.wave.quads.Len(); got != tt.quads {
				t.Errorf("quads = %d, want %d", got, tt.quads)
			}
		})
	}
}

func TestWaveNegativeAmplitudeQuad(t *testing.T) {
	rt, sp := newTestSprite(t, 64, 40)
	sp.SrcRect().Set(0, 6, 64, 20)
	sp.SetWaveAmp(-10)
	rt.Prepare()

	if sp.wave.quads.Len() != 1 {
		t.Fatalf("quads = %d, want 1", sp.wave.quads.Len())
	}
	want := FloatRect{X: 10, Y: 6, Width: 44, Height: 20}
	assertRect(t, "tex", sp.wave.quads.TexRect(0), want)
	assertRect(t, "pos", sp.wave.quads.PosRect(0), want)
}

func TestWaveBandScenario(t *testing.T) {
	// amp 5, default length 180 and speed 360, phase 0, zoom 1, 16 rows at y=3:
	// a 3-row head, one full band and a 5-row tail.
	_, sp := newWaveSprite(t, 32, 16, 3, 5)

	if got := sp.wave.quads.Len(); got != 3 {
		t.Fatalf("quads = %d, want 3", got)
	}
	wantY := []float64{0, 3, 11}
	wantH := []float64{3, 8, 5}
	for i := range wantY {
		tex := sp.wave.quads.TexRect(i)
		if tex.Y != wantY[i] || tex.Height != wantH[i] {
			t.Errorf("band %d: y=%v h=%v, want y=%v h=%v", i, tex.Y, tex.Height, wantY[i], wantH[i])
		}
		if tex.X != 0 || tex.Width != 32 {
			t.Errorf("band %d: x=%v w=%v, want 0/32", i, tex.X, tex.Width)
		}
		pos := sp.wave.quads.PosRect(i)
		wantX := 5 * math.Sin(wantY[i]/180*2*math.Pi)
		assertNear(t, "pos.X", pos.X, wantX)
		if pos.Y != tex.Y || pos.Width != tex.Width || pos.Height != tex.Height {
			t.Errorf("band %d: pos %+v does not match tex %+v", i, pos, tex)
		}
	}
}

func TestWaveQuadCountFormula(t *testing.T) {
	for _, h := range []int{1, 7, 8, 9, 16, 23, 64} {
		for _, y := range []int{-9, -1, 0, 3, 7, 8, 13} {
			_, sp := newWaveSprite(t, 16, h, y, 2)

			first := ((y % 8) + 8) % 8
			chunks, last := 0, 0
			if rest := h - first; rest > 0 {
				chunks, last = rest/8, rest%8
			}
			want := chunks
			if first > 0 {
				want++
			}
			if last > 0 {
				want++
			}
			if got := sp.wave.quads.Len(); got != want {
				t.Errorf("h=%d y=%d: quads = %d, want %d", h, y, got, want)
			}
		}
	}
}

func TestWaveBandsAlignToScreenGrid(t *testing.T) {
	// y=-3 sits 5 rows above the next multiple of 8.
	_, sp := newWaveSprite(t, 16, 16, -3, 2)
	if got := sp.wave.quads.TexRect(0).Height; got != 5 {
		t.Errorf("head band height = %v, want 5", got)
	}
	// y=8 is on the grid: no head band.
	_, sp = newWaveSprite(t, 16, 16, 8, 2)
	if got := sp.wave.quads.Len(); got != 2 {
		t.Errorf("aligned quads = %d, want 2", got)
	}
}

func TestWaveZoomedBands(t *testing.T) {
	rt, sp := newTestSprite(t, 16, 16)
	sp.SetZoomY(2)
	sp.SetWaveAmp(1)
	rt.Prepare()

	// 16 rows at zoom 2 cover 32 screen rows: 4 bands of 8, each sampling 4
	// texture rows.
	if got := sp.wave.quads.Len(); got != 4 {
		t.Fatalf("quads = %d, want 4", got)
	}
	tex := sp.wave.quads.TexRect(1)
	assertRect(t, "band 1", tex, FloatRect{X: 0, Y: 4, Width: 16, Height: 4})
}

func TestWavePhaseShiftsOffsets(t *testing.T) {
	rt, sp := newWaveSprite(t, 16, 8, 0, 4)
	sp.SetWavePhase(90)
	rt.Prepare()
	assertNear(t, "pos.X", sp.wave.quads.PosRect(0).X, 4)
}

func TestWaveWavelength(t *testing.T) {
	rt, sp := newWaveSprite(t, 16, 16, 0, 4)
	sp.SetWaveLength(32)
	rt.Prepare()
	// Band 1 starts at row 8, a quarter wavelength in.
	assertNear(t, "pos.X", sp.wave.quads.PosRect(1).X, 4)
}

func TestWaveAdvance(t *testing.T) {
	tests := []struct {
		speed int
		want  float64
	}{
		{360, 2},
		{180, 1},
		{179, 0},
		{540, 3},
		{-360, -2},
	}
	for _, tt := range tests {
		rt := newTestRuntime()
		sp := rt.NewSprite(nil)
		sp.SetWaveSpeed(tt.speed)
		sp.Update()
		if got := sp.WavePhase(); got != tt.want {
			t.Errorf("speed %d: phase = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

func TestWaveResolvedOncePerPrepare(t *testing.T) {
	rt, sp := newWaveSprite(t, 16, 16, 0, 4)
	if sp.wave.dirty {
		t.Fatal("dirty after prepare")
	}
	sp.Update()
	sp.SetWaveAmp(6)
	if !sp.wave.dirty {
		t.Fatal("not dirty after mutations")
	}
	rt.Prepare()
	if sp.wave.dirty {
		t.Error("dirty after second prepare")
	}
	assertNear(t, "pos.X", sp.wave.quads.PosRect(0).X, 6*math.Sin(2*math.Pi/180))
}

func TestWaveWithoutBitmapKeepsGeometry(t *testing.T) {
	rt, sp := newWaveSprite(t, 16, 16, 0, 4)
	before := sp.wave.quads.Len()
	sp.SetBitmap(nil)
	sp.SetWaveAmp(-1)
	rt.Prepare()
	if sp.wave.quads.Len() != before {
		t.Errorf("quads = %d, want untouched %d", sp.wave.quads.Len(), before)
	}
	if sp.wave.dirty {
		t.Error("dirty not cleared by prepare")
	}
}

func TestWaveDisable(t *testing.T) {
	rt, sp := newWaveSprite(t, 16, 16, 0, 4)
	sp.SetWaveAmp(0)
	rt.Prepare()
	if sp.wave.active || sp.wave.quads.Len() != 0 {
		t.Errorf("active=%v quads=%d after disabling", sp.wave.active, sp.wave.quads.Len())
	}
}

func BenchmarkWaveRebuild(b *testing.B) {
	rt := newTestRuntime()
	sp := rt.NewSprite(nil)
	sp.SetBitmap(newTestBitmap(192, 192))
	sp.SetWaveAmp(8)
	b.ReportAllocs()
	for b.Loop() {
		sp.Update()
		rt.Prepare()
	}
}
