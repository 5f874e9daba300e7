package rgss

import "github.com/hajimehoshi/ebiten/v2"

// QuadSource is anything the pipeline can draw: local-space vertices (4 per
// quad, SrcX/SrcY in texture pixels) and their triangle indices.
type QuadSource interface {
	Vertices() []ebiten.Vertex
	Indices() []uint32
	Len() int
}

// quadIndices are the two triangles of a quad: TL-TR-BL, TR-BR-BL.
var quadIndices = [6]uint32{0, 1, 2, 1, 3, 2}

// Quad is a single textured rectangle: a texture rect sampled from the
// bitmap and the position rect it is drawn to in sprite-local space.
type Quad struct {
	tex, pos FloatRect
	verts    [4]ebiten.Vertex
}

// TexRect returns the texture rect.
func (q *Quad) TexRect() FloatRect { return q.tex }

// PosRect returns the position rect.
func (q *Quad) PosRect() FloatRect { return q.pos }

// SetTexRect sets the texture rect and updates the vertex UVs.
func (q *Quad) SetTexRect(r FloatRect) {
	q.tex = r
	writeQuadVerts(q.verts[:], q.tex, q.pos)
}

// SetPosRect sets the position rect and updates the vertex positions.
func (q *Quad) SetPosRect(r FloatRect) {
	q.pos = r
	writeQuadVerts(q.verts[:], q.tex, q.pos)
}

// Vertices implements QuadSource.
func (q *Quad) Vertices() []ebiten.Vertex { return q.verts[:] }

// Indices implements QuadSource.
func (q *Quad) Indices() []uint32 { return quadIndices[:] }

// Len implements QuadSource. A Quad always holds exactly one quad.
func (q *Quad) Len() int { return 1 }

// QuadArray is an ordered, resizable sequence of quads. Quads are written with
// SetTexPosRect and become visible to the pipeline on Commit. Buffers grow to
// a high-water mark and are never shrunk.
type QuadArray struct {
	rects []quadRects
	verts []ebiten.Vertex
	inds  []uint32
}

type quadRects struct {
	tex, pos FloatRect
}

// Resize sets the number of quads. New quads are zero-sized until written.
func (a *QuadArray) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if cap(a.rects) < n {
		grown := make([]quadRects, n)
		copy(grown, a.rects)
		a.rects = grown
	}
	old := len(a.rects)
	a.rects = a.rects[:n]
	for i := old; i < n; i++ {
		a.rects[i] = quadRects{}
	}
}

// Len returns the number of quads.
func (a *QuadArray) Len() int { return len(a.rects) }

// SetTexPosRect writes quad i.
func (a *QuadArray) SetTexPosRect(i int, tex, pos FloatRect) {
	a.rects[i] = quadRects{tex: tex, pos: pos}
}

// TexRect returns the texture rect of quad i.
func (a *QuadArray) TexRect(i int) FloatRect { return a.rects[i].tex }

// PosRect returns the position rect of quad i.
func (a *QuadArray) PosRect(i int) FloatRect { return a.rects[i].pos }

// Commit rebuilds the vertex and index buffers from the written quads.
func (a *QuadArray) Commit() {
	n := len(a.rects)
	if cap(a.verts) < n*4 {
		a.verts = make([]ebiten.Vertex, n*4)
	}
	a.verts = a.verts[:n*4]
	if cap(a.inds) < n*6 {
		a.inds = make([]uint32, n*6)
	}
	a.inds = a.inds[:n*6]
	for i, r := range a.rects {
		writeQuadVerts(a.verts[i*4:i*4+4], r.tex, r.pos)
		base := uint32(i * 4)
		for j, idx := range quadIndices {
			a.inds[i*6+j] = base + idx
		}
	}
}

// Vertices implements QuadSource. Reflects the last Commit.
func (a *QuadArray) Vertices() []ebiten.Vertex { return a.verts }

// Indices implements QuadSource. Reflects the last Commit.
func (a *QuadArray) Indices() []uint32 { return a.inds }

// Release drops the buffers. The array is empty afterwards.
func (a *QuadArray) Release() {
	a.rects = nil
	a.verts = nil
	a.inds = nil
}

// writeQuadVerts fills 4 vertices (TL, TR, BL, BR) for one quad. Colors are
// opaque white; tinting happens in the shader.
func writeQuadVerts(dst []ebiten.Vertex, tex, pos FloatRect) {
	lx := [4]float64{pos.X, pos.X + pos.Width, pos.X, pos.X + pos.Width}
	ly := [4]float64{pos.Y, pos.Y, pos.Y + pos.Height, pos.Y + pos.Height}
	sx := [4]float64{tex.X, tex.X + tex.Width, tex.X, tex.X + tex.Width}
	sy := [4]float64{tex.Y, tex.Y, tex.Y + tex.Height, tex.Y + tex.Height}
	for i := 0; i < 4; i++ {
		dst[i] = ebiten.Vertex{
			DstX:   float32(lx[i]),
			DstY:   float32(ly[i]),
			SrcX:   float32(sx[i]),
			SrcY:   float32(sy[i]),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
}

// transformVertices applies an affine transform to src vertex positions,
// writing the result into dst. dst must be at least len(src) in length.
// Texture coordinates are offset by (srcX, srcY), the origin of the bound
// image inside its backing texture.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
func transformVertices(src, dst []ebiten.Vertex, m [6]float64, srcX, srcY float32) {
	for i := range src {
		s := &src[i]
		x, y := transformPoint(m, float64(s.DstX), float64(s.DstY))
		dst[i] = ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   s.SrcX + srcX,
			SrcY:   s.SrcY + srcY,
			ColorR: s.ColorR,
			ColorG: s.ColorG,
			ColorB: s.ColorB,
			ColorA: s.ColorA,
		}
	}
}
