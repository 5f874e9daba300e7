package rgss

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Flashable is the timed flash effect shared by drawables. A flash blends a
// color over the drawable and fades it out linearly over a number of ticks;
// an empty flash (nil color) hides the drawable for that many ticks instead.
//
// The fade is a gween tween advanced by one unit per tick, so it follows the
// game's tick rate rather than wall-clock time.
type Flashable struct {
	flashColor Vec4
	fade       *gween.Tween
	duration   int
	counter    int
	flashing   bool
	emptyFlash bool
}

// Flash starts a flash lasting duration ticks. A nil color starts an empty
// flash. Durations below 1 are ignored.
func (f *Flashable) Flash(c *Color, duration int) {
	if duration < 1 {
		return
	}
	f.flashing = true
	f.duration = duration
	f.counter = 0
	if c == nil {
		f.emptyFlash = true
		f.fade = nil
		return
	}
	f.emptyFlash = false
	f.flashColor = c.Norm()
	f.fade = gween.New(float32(f.flashColor.W), 0, float32(duration), ease.Linear)
}

// updateFlash advances the flash by one tick.
func (f *Flashable) updateFlash() {
	if !f.flashing {
		return
	}
	f.counter++
	if f.counter > f.duration {
		f.flashing = false
		f.emptyFlash = false
		f.fade = nil
		return
	}
	// No color to fade on an empty flash.
	if f.emptyFlash {
		return
	}
	alpha, _ := f.fade.Update(1)
	f.flashColor.W = float64(alpha)
}

// Flashing reports whether a flash is in progress.
func (f *Flashable) Flashing() bool { return f.flashing }

// FlashColor returns the current, partially faded flash color.
func (f *Flashable) FlashColor() Vec4 { return f.flashColor }

// emptyFlashing reports whether an empty flash is hiding the drawable.
func (f *Flashable) emptyFlashing() bool { return f.flashing && f.emptyFlash }
