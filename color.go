package rgss

// Color is a blend color with components in [0, 255]. Alpha controls how
// strongly the color replaces the sprite's own pixels; zero alpha has no
// visible effect.
type Color struct {
	red, green, blue, alpha float64
	norm                    Vec4
}

// NewColor creates a Color. Components are clamped to [0, 255].
func NewColor(r, g, b, a float64) *Color {
	c := &Color{}
	c.Set(r, g, b, a)
	return c
}

// Red returns the red component.
func (c *Color) Red() float64 { return c.red }

// Green returns the green component.
func (c *Color) Green() float64 { return c.green }

// Blue returns the blue component.
func (c *Color) Blue() float64 { return c.blue }

// Alpha returns the alpha component.
func (c *Color) Alpha() float64 { return c.alpha }

// SetRed sets the red component.
func (c *Color) SetRed(v float64) { c.Set(v, c.green, c.blue, c.alpha) }

// SetGreen sets the green component.
func (c *Color) SetGreen(v float64) { c.Set(c.red, v, c.blue, c.alpha) }

// SetBlue sets the blue component.
func (c *Color) SetBlue(v float64) { c.Set(c.red, c.green, v, c.alpha) }

// SetAlpha sets the alpha component.
func (c *Color) SetAlpha(v float64) { c.Set(c.red, c.green, c.blue, v) }

// Set assigns all components, clamping each to [0, 255].
func (c *Color) Set(r, g, b, a float64) {
	c.red = clampRange(r, 0, 255)
	c.green = clampRange(g, 0, 255)
	c.blue = clampRange(b, 0, 255)
	c.alpha = clampRange(a, 0, 255)
	c.norm = Vec4{c.red / 255, c.green / 255, c.blue / 255, c.alpha / 255}
}

// Norm returns the color normalized to [0, 1].
func (c *Color) Norm() Vec4 { return c.norm }

// HasEffect reports whether drawing with this color changes any pixel.
func (c *Color) HasEffect() bool { return c.alpha != 0 }

// Tone shifts the red, green and blue channels by [-255, 255] and desaturates
// toward gray by [0, 255].
type Tone struct {
	red, green, blue, gray float64
	norm                   Vec4
}

// NewTone creates a Tone. Color components are clamped to [-255, 255] and
// gray to [0, 255].
func NewTone(r, g, b, gray float64) *Tone {
	t := &Tone{}
	t.Set(r, g, b, gray)
	return t
}

// Red returns the red shift.
func (t *Tone) Red() float64 { return t.red }

// Green returns the green shift.
func (t *Tone) Green() float64 { return t.green }

// Blue returns the blue shift.
func (t *Tone) Blue() float64 { return t.blue }

// Gray returns the desaturation amount.
func (t *Tone) Gray() float64 { return t.gray }

// SetRed sets the red shift.
func (t *Tone) SetRed(v float64) { t.Set(v, t.green, t.blue, t.gray) }

// SetGreen sets the green shift.
func (t *Tone) SetGreen(v float64) { t.Set(t.red, v, t.blue, t.gray) }

// SetBlue sets the blue shift.
func (t *Tone) SetBlue(v float64) { t.Set(t.red, t.green, v, t.gray) }

// SetGray sets the desaturation amount.
func (t *Tone) SetGray(v float64) { t.Set(t.red, t.green, t.blue, v) }

// Set assigns all components with clamping.
func (t *Tone) Set(r, g, b, gray float64) {
	t.red = clampRange(r, -255, 255)
	t.green = clampRange(g, -255, 255)
	t.blue = clampRange(b, -255, 255)
	t.gray = clampRange(gray, 0, 255)
	t.norm = Vec4{t.red / 255, t.green / 255, t.blue / 255, t.gray / 255}
}

// Norm returns the tone normalized: color shifts in [-1, 1], gray in [0, 1].
func (t *Tone) Norm() Vec4 { return t.norm }

// HasEffect reports whether the tone changes any pixel.
func (t *Tone) HasEffect() bool {
	return t.red != 0 || t.green != 0 || t.blue != 0 || t.gray != 0
}

// NormValue is an integer in [0, 255] with a cached [0, 1] representation for
// shader uniforms.
type NormValue struct {
	value int
	norm  float64
}

func newNormValue(v int) NormValue {
	var n NormValue
	n.Set(v)
	return n
}

// Set clamps v to [0, 255] and refreshes the cached normalized value.
func (n *NormValue) Set(v int) {
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	n.value = v
	n.norm = float64(v) / 255
}

// Value returns the integer value.
func (n NormValue) Value() int { return n.value }

// Norm returns the value divided by 255.
func (n NormValue) Norm() float64 { return n.norm }

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
