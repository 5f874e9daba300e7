package rgss

import "github.com/hajimehoshi/ebiten/v2"

// SimpleSpriteShader draws a texture through a matrix with no other effect.
type SimpleSpriteShader interface {
	// Bind makes this shader the one used by the next DrawQuads.
	Bind()
	SetSpriteMat(m [6]float64)
}

// SpriteShader is the effect-capable sprite shader: tone, opacity, blend
// color and bush fade on top of the matrix.
type SpriteShader interface {
	SimpleSpriteShader
	SetTone(tone Vec4)
	SetOpacity(v float64)
	SetBushDepth(v float64)
	SetBushOpacity(v float64)
	SetColor(c Vec4)
}

// Pipeline owns the sprite shaders and submits quads with whichever of them
// was bound last.
type Pipeline interface {
	SpriteShader() SpriteShader
	SimpleSpriteShader() SimpleSpriteShader
	DrawQuads(target *ebiten.Image, tex *Bitmap, quads QuadSource, blend BlendMode)
}

// --- Kage shader source ---
// Ebitengine uses premultiplied alpha; the shader un-premultiplies before
// applying effects and re-premultiplies its output.

const spriteShaderSrc = `//kage:unit pixels
package main

var Tone vec4
var Opacity float
var Color vec4
var BushDepth float
var BushOpacity float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		c.rgb /= c.a
	}
	// Desaturate toward luma by Tone.w, then shift.
	luma := dot(c.rgb, vec3(0.299, 0.587, 0.114))
	c.rgb = mix(c.rgb, vec3(luma), Tone.w)
	c.rgb += Tone.rgb
	c.a *= Opacity
	c.rgb = mix(c.rgb, Color.rgb, Color.a)
	// Rows above BushDepth (normalized texture y) are drawn at full alpha,
	// rows below it at BushOpacity.
	texY := (src.y - imageSrc0Origin().y) / imageSrc0Size().y
	underBush := 0.0
	if texY < BushDepth {
		underBush = 1.0
	}
	c.a *= clamp(BushOpacity+underBush, 0, 1)
	c.rgb = clamp(c.rgb, vec3(0), vec3(1))
	return vec4(c.rgb*c.a, c.a)
}
`

// --- Lazy shader compilation (single-threaded, no sync.Once) ---

var spriteShaderProgram *ebiten.Shader

func ensureSpriteShader() *ebiten.Shader {
	if spriteShaderProgram == nil {
		s, err := ebiten.NewShader([]byte(spriteShaderSrc))
		if err != nil {
			panic("rgss: failed to compile sprite shader: " + err.Error())
		}
		spriteShaderProgram = s
	}
	return spriteShaderProgram
}

// --- EbitenPipeline ---

type boundShader uint8

const (
	boundNone boundShader = iota
	boundSimple
	boundSprite
)

// EbitenPipeline draws sprite quads with Ebitengine. The simple shader maps to
// DrawTriangles32; the effect shader runs a Kage program through
// DrawTrianglesShader32.
type EbitenPipeline struct {
	bound  boundShader
	simple ebitenSimpleShader
	sprite ebitenSpriteShader

	scratch  []ebiten.Vertex // transformed vertex buffer, high-water mark
	triOp    ebiten.DrawTrianglesOptions
	shaderOp ebiten.DrawTrianglesShaderOptions
}

// NewEbitenPipeline creates a pipeline. The Kage program is compiled on the
// first effect draw.
func NewEbitenPipeline() *EbitenPipeline {
	p := &EbitenPipeline{}
	p.simple.p = p
	p.simple.mat = identityTransform
	p.sprite.p = p
	p.sprite.mat = identityTransform
	p.sprite.uniforms = make(map[string]any, 5)
	p.sprite.toneSlice = p.sprite.toneF32[:]
	p.sprite.colorSlice = p.sprite.colorF32[:]
	p.sprite.uniforms["Tone"] = p.sprite.toneSlice
	p.sprite.uniforms["Color"] = p.sprite.colorSlice
	p.sprite.uniforms["Opacity"] = float32(1)
	p.sprite.uniforms["BushDepth"] = float32(0)
	p.sprite.uniforms["BushOpacity"] = float32(1)
	return p
}

// SpriteShader implements Pipeline.
func (p *EbitenPipeline) SpriteShader() SpriteShader { return &p.sprite }

// SimpleSpriteShader implements Pipeline.
func (p *EbitenPipeline) SimpleSpriteShader() SimpleSpriteShader { return &p.simple }

// DrawQuads implements Pipeline. Nothing is drawn when no shader is bound, the
// target is nil or the bitmap has no image.
func (p *EbitenPipeline) DrawQuads(target *ebiten.Image, tex *Bitmap, quads QuadSource, blend BlendMode) {
	if target == nil || tex == nil || tex.Image() == nil || quads.Len() == 0 {
		return
	}
	img := tex.Image()
	origin := img.Bounds().Min
	src := quads.Vertices()

	var mat [6]float64
	switch p.bound {
	case boundSimple:
		mat = p.simple.mat
	case boundSprite:
		mat = p.sprite.mat
	default:
		return
	}

	if cap(p.scratch) < len(src) {
		p.scratch = make([]ebiten.Vertex, len(src))
	}
	dst := p.scratch[:len(src)]
	transformVertices(src, dst, mat, float32(origin.X), float32(origin.Y))

	if p.bound == boundSimple {
		p.triOp.Blend = blend.EbitenBlend()
		target.DrawTriangles32(dst, quads.Indices(), img, &p.triOp)
		return
	}

	p.shaderOp.Images[0] = img
	p.shaderOp.Uniforms = p.sprite.uniforms
	p.shaderOp.Blend = blend.EbitenBlend()
	target.DrawTrianglesShader32(dst, quads.Indices(), ensureSpriteShader(), &p.shaderOp)
	p.shaderOp.Images[0] = nil
}

type ebitenSimpleShader struct {
	p   *EbitenPipeline
	mat [6]float64
}

func (s *ebitenSimpleShader) Bind()                     { s.p.bound = boundSimple }
func (s *ebitenSimpleShader) SetSpriteMat(m [6]float64) { s.mat = m }

type ebitenSpriteShader struct {
	p          *EbitenPipeline
	mat        [6]float64
	uniforms   map[string]any
	toneF32    [4]float32 // persistent buffer
	toneSlice  []float32  // persistent slice header
	colorF32   [4]float32
	colorSlice []float32
}

func (s *ebitenSpriteShader) Bind()                     { s.p.bound = boundSprite }
func (s *ebitenSpriteShader) SetSpriteMat(m [6]float64) { s.mat = m }

// SetTone writes in place; the map already holds the slice header.
func (s *ebitenSpriteShader) SetTone(tone Vec4) { s.toneF32 = tone.float32s() }

func (s *ebitenSpriteShader) SetColor(c Vec4) { s.colorF32 = c.float32s() }

// Scalar float32 boxing is unavoidable with Ebitengine's uniform API.
func (s *ebitenSpriteShader) SetOpacity(v float64)     { s.uniforms["Opacity"] = float32(v) }
func (s *ebitenSpriteShader) SetBushDepth(v float64)   { s.uniforms["BushDepth"] = float32(v) }
func (s *ebitenSpriteShader) SetBushOpacity(v float64) { s.uniforms["BushOpacity"] = float32(v) }
