package rgss

import "github.com/hajimehoshi/ebiten/v2"

// Vec2 is a 2D vector used for positions, origins and scales.
type Vec2 struct {
	X, Y float64
}

// Vec4 is a normalized RGBA quadruple with components in [0, 1] (tone
// components may be negative). It is the form colors and tones take when they
// reach a shader uniform.
type Vec4 struct {
	X, Y, Z, W float64
}

// float32s returns v as a [4]float32 suitable for a Kage vec4 uniform.
func (v Vec4) float32s() [4]float32 {
	return [4]float32{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// FloatRect is an axis-aligned rectangle in floating point coordinates. The
// coordinate system has its origin at the top-left, with Y increasing downward.
// Width may be negative for horizontally flipped texture rects.
type FloatRect struct {
	X, Y, Width, Height float64
}

// HFlipped returns the rectangle mirrored around its vertical center line:
// the left edge becomes the right edge and Width is negated.
func (r FloatRect) HFlipped() FloatRect {
	return FloatRect{X: r.X + r.Width, Y: r.Y, Width: -r.Width, Height: r.Height}
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive; destination alpha is preserved
	BlendSubtract                  // destination minus source; destination alpha is preserved
)

// BlendModeFromType converts a scripted blend type (0 normal, 1 add,
// 2 subtract) to a BlendMode. Out-of-range values fall back to BlendNormal.
func BlendModeFromType(t int) BlendMode {
	switch t {
	case 1:
		return BlendAdd
	case 2:
		return BlendSubtract
	default:
		return BlendNormal
	}
}

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
// Sources are premultiplied, so the source factor is always One.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendSubtract:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
			BlendOperationRGB:           ebiten.BlendOperationReverseSubtract,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}
