// Package render rasterizes the terrain into an RGBA framebuffer.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"voxelspace/internal/core"
)

// ErrInvalidSize is returned for framebuffer dimensions that are not positive.
var ErrInvalidSize = errors.New("render: invalid framebuffer size")

// FrameBuffer is a row-major RGBA8 surface with a per-column horizon
// cursor: the topmost row already claimed by a nearer surface.
type FrameBuffer struct {
	size    core.Size
	pix     []byte
	horizon []int
}

// NewFrameBuffer allocates a w*h framebuffer.
func NewFrameBuffer(w, h int) (*FrameBuffer, error) {
	fb := &FrameBuffer{}
	if err := fb.Resize(w, h); err != nil {
		return nil, err
	}
	return fb, nil
}

// Resize reallocates the surface. Old pixels are not carried over and no
// slice previously returned by Pixels aliases the new surface.
func (fb *FrameBuffer) Resize(w, h int) error {
	size := core.Size{W: w, H: h}
	if !size.Valid() {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	fb.size = size
	fb.pix = make([]byte, size.Area()*4)
	fb.horizon = make([]int, w)
	for x := range fb.horizon {
		fb.horizon[x] = h
	}
	return nil
}

// Size returns the pixel dimensions.
func (fb *FrameBuffer) Size() core.Size { return fb.size }

// Width returns the number of columns.
func (fb *FrameBuffer) Width() int { return fb.size.W }

// Height returns the number of rows.
func (fb *FrameBuffer) Height() int { return fb.size.H }

// Pixels exposes the RGBA8 bytes, row-major, 4 bytes per pixel.
func (fb *FrameBuffer) Pixels() []byte { return fb.pix }

// Horizon returns the occlusion cursor for column x.
func (fb *FrameBuffer) Horizon(x int) int { return fb.horizon[x] }

// Clear fills every pixel with bg and resets every column's cursor to the
// bottom of the surface.
func (fb *FrameBuffer) Clear(bg color.RGBA) {
	fillRGBA(fb.pix, bg)
	for x := range fb.horizon {
		fb.horizon[x] = fb.size.H
	}
}

// WriteColumnSegment paints rows [y0, y1) of column x with a packed color.
// Both bounds are clamped to the surface; an empty range writes nothing.
func (fb *FrameBuffer) WriteColumnSegment(x, y0, y1 int, col uint32) {
	if x < 0 || x >= fb.size.W {
		return
	}
	y0 = max(0, min(y0, fb.size.H))
	y1 = max(0, min(y1, fb.size.H))
	stride := fb.size.W * 4
	for base := y0*stride + x*4; y0 < y1; y0++ {
		putPacked(fb.pix, base, col)
		base += stride
	}
}

// Image returns a copy of the surface as an *image.RGBA.
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.size.W, fb.size.H))
	copy(img.Pix, fb.pix)
	return img
}
