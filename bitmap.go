package rgss

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Bitmap is a texture that sprites sample from. Sprites hold bitmaps without
// owning them; when a bitmap is disposed every sprite bound to it is told
// through OnDispose and drops its reference.
type Bitmap struct {
	image         *ebiten.Image
	width, height int
	disposed      bool
	onDispose     Signal[struct{}]
}

// NewBitmap creates a transparent bitmap of the given size.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		image:  ebiten.NewImage(width, height),
		width:  width,
		height: height,
	}
}

// NewBitmapFromImage wraps an existing image. The bitmap takes ownership:
// Dispose deallocates img.
func NewBitmapFromImage(img *ebiten.Image) *Bitmap {
	b := img.Bounds()
	return &Bitmap{image: img, width: b.Dx(), height: b.Dy()}
}

// Image returns the underlying *ebiten.Image, or nil once disposed.
func (b *Bitmap) Image() *ebiten.Image {
	return b.image
}

// Width returns the width in pixels.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the height in pixels.
func (b *Bitmap) Height() int {
	return b.height
}

// Rect returns the full extent of the bitmap as (0, 0, width, height).
func (b *Bitmap) Rect() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// OnDispose registers fn to run when the bitmap is disposed.
func (b *Bitmap) OnDispose(fn func()) Connection {
	return b.onDispose.Connect(func(struct{}) { fn() })
}

// Dispose notifies subscribers, then deallocates the image. The bitmap must
// not be drawn after calling Dispose. Calling Dispose twice is a no-op.
func (b *Bitmap) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.onDispose.Emit(struct{}{})
	if b.image != nil {
		b.image.Deallocate()
		b.image = nil
	}
}

// IsDisposed returns true if this bitmap has been disposed.
func (b *Bitmap) IsDisposed() bool {
	return b.disposed
}
