package rgss

import "testing"

func TestColorClampAndNorm(t *testing.T) {
	c := NewColor(300, -5, 51, 255)
	if c.Red() != 255 || c.Green() != 0 || c.Blue() != 51 || c.Alpha() != 255 {
		t.Errorf("color = (%v,%v,%v,%v)", c.Red(), c.Green(), c.Blue(), c.Alpha())
	}
	n := c.Norm()
	assertNear(t, "norm.X", n.X, 1)
	assertNear(t, "norm.Y", n.Y, 0)
	assertNear(t, "norm.Z", n.Z, 0.2)
	assertNear(t, "norm.W", n.W, 1)
}

func TestColorHasEffect(t *testing.T) {
	tests := []struct {
		name string
		c    *Color
		want bool
	}{
		{"zero", NewColor(0, 0, 0, 0), false},
		{"rgb only", NewColor(255, 255, 255, 0), false},
		{"alpha", NewColor(0, 0, 0, 1), true},
	}
	for _, tt := range tests {
		if got := tt.c.HasEffect(); got != tt.want {
			t.Errorf("%s: HasEffect() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestColorComponentSetters(t *testing.T) {
	c := NewColor(0, 0, 0, 0)
	c.SetRed(10)
	c.SetGreen(20)
	c.SetBlue(30)
	c.SetAlpha(510)
	if c.Red() != 10 || c.Green() != 20 || c.Blue() != 30 || c.Alpha() != 255 {
		t.Errorf("color = (%v,%v,%v,%v)", c.Red(), c.Green(), c.Blue(), c.Alpha())
	}
	assertNear(t, "norm.W", c.Norm().W, 1)
}

func TestToneClampAndNorm(t *testing.T) {
	tn := NewTone(-300, 300, -51, -10)
	if tn.Red() != -255 || tn.Green() != 255 || tn.Blue() != -51 || tn.Gray() != 0 {
		t.Errorf("tone = (%v,%v,%v,%v)", tn.Red(), tn.Green(), tn.Blue(), tn.Gray())
	}
	n := tn.Norm()
	assertNear(t, "norm.X", n.X, -1)
	assertNear(t, "norm.Y", n.Y, 1)
	assertNear(t, "norm.Z", n.Z, -0.2)
	assertNear(t, "norm.W", n.W, 0)

	tn.SetGray(400)
	if tn.Gray() != 255 {
		t.Errorf("gray = %v, want 255", tn.Gray())
	}
}

func TestToneHasEffect(t *testing.T) {
	tests := []struct {
		name string
		tn   *Tone
		want bool
	}{
		{"zero", NewTone(0, 0, 0, 0), false},
		{"red", NewTone(-1, 0, 0, 0), true},
		{"green", NewTone(0, 1, 0, 0), true},
		{"blue", NewTone(0, 0, 1, 0), true},
		{"gray", NewTone(0, 0, 0, 1), true},
	}
	for _, tt := range tests {
		if got := tt.tn.HasEffect(); got != tt.want {
			t.Errorf("%s: HasEffect() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNormValue(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-1, 0},
		{0, 0},
		{128, 128},
		{255, 255},
		{1000, 255},
	}
	for _, tt := range tests {
		n := newNormValue(tt.in)
		if n.Value() != tt.want {
			t.Errorf("newNormValue(%d).Value() = %d, want %d", tt.in, n.Value(), tt.want)
		}
		assertNear(t, "Norm", n.Norm(), float64(tt.want)/255)
	}
}
