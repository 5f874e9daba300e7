package rgss

import (
	"math"
	"testing"
)

func TestFlashFadesLinearly(t *testing.T) {
	var f Flashable
	f.Flash(NewColor(255, 0, 0, 255), 4)
	if !f.Flashing() {
		t.Fatal("Flashing() = false after Flash")
	}

	want := []float64{0.75, 0.5, 0.25, 0}
	for i, w := range want {
		f.updateFlash()
		if !f.Flashing() {
			t.Fatalf("tick %d: flash ended early", i+1)
		}
		if got := f.FlashColor().W; math.Abs(got-w) > 1e-6 {
			t.Errorf("tick %d: alpha = %v, want %v", i+1, got, w)
		}
	}
	f.updateFlash()
	if f.Flashing() {
		t.Error("flash still running after duration ticks")
	}
}

func TestFlashColorKeepsRGB(t *testing.T) {
	var f Flashable
	f.Flash(NewColor(255, 51, 0, 128), 10)
	f.updateFlash()
	c := f.FlashColor()
	assertNear(t, "r", c.X, 1)
	assertNear(t, "g", c.Y, 0.2)
	assertNear(t, "b", c.Z, 0)
}

func TestFlashEmpty(t *testing.T) {
	var f Flashable
	f.Flash(nil, 2)
	if !f.emptyFlashing() {
		t.Fatal("emptyFlashing() = false")
	}
	f.updateFlash()
	f.updateFlash()
	if !f.emptyFlashing() {
		t.Error("empty flash ended early")
	}
	f.updateFlash()
	if f.Flashing() || f.emptyFlashing() {
		t.Error("empty flash did not end")
	}
}

func TestFlashIgnoresNonPositiveDuration(t *testing.T) {
	var f Flashable
	f.Flash(NewColor(255, 255, 255, 255), 0)
	f.Flash(nil, -3)
	if f.Flashing() {
		t.Error("Flashing() = true for duration < 1")
	}
}

func TestFlashRestart(t *testing.T) {
	var f Flashable
	f.Flash(nil, 5)
	f.updateFlash()
	f.Flash(NewColor(0, 0, 255, 255), 2)
	if f.emptyFlashing() {
		t.Error("color flash did not replace empty flash")
	}
	f.updateFlash()
	if got := f.FlashColor().W; math.Abs(got-0.5) > 1e-6 {
		t.Errorf("alpha = %v, want 0.5", got)
	}
}
