package flint

import (
	"image"
	"image/png"
	"io"
	"unsafe"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/flint/internal/scalar"
)

// Buffer is a 32-bpp ARGB pixel buffer. Pixels are uint32 with alpha
// in the high byte and straight (non-premultiplied) alpha; pixel
// (x, y) lives at Pix()[y*Stride()+x].
//
// The backing storage is 16-byte aligned and the stride is a
// multiple of 4 pixels, which the blit loops rely on.
type Buffer struct {
	pix    []uint32
	w, h   int
	stride int
}

// NewBuffer allocates a zeroed buffer of the given size. The stride
// is the width rounded up to a multiple of 4.
func NewBuffer(w, h int) (*Buffer, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadStride
	}
	stride := scalar.RoundUp4(w)
	return &Buffer{
		pix:    scalar.AlignedUint32(stride * h),
		w:      w,
		h:      h,
		stride: stride,
	}, nil
}

// NewBufferFrom wraps caller-owned pixel storage. The storage must be
// 16-byte aligned, the stride a multiple of 4 pixels, and the slice
// long enough for h rows.
func NewBufferFrom(pix []uint32, w, h, stride int) (*Buffer, error) {
	if w <= 0 || h <= 0 || stride < w || stride%4 != 0 || len(pix) < stride*h {
		return nil, ErrBadStride
	}
	if !scalar.Aligned16(unsafe.Pointer(&pix[0])) {
		return nil, ErrMisalignedBuffer
	}
	return &Buffer{pix: pix, w: w, h: h, stride: stride}, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.w }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.h }

// Stride returns the row stride in pixels.
func (b *Buffer) Stride() int { return b.stride }

// Pix returns the raw pixel storage.
func (b *Buffer) Pix() []uint32 { return b.pix }

// Bounds returns the buffer rectangle.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.w, b.h)
}

// At returns the pixel at (x, y), or 0 outside the buffer.
func (b *Buffer) At(x, y int) uint32 {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return 0
	}
	return b.pix[y*b.stride+x]
}

// Set writes the pixel at (x, y); out-of-bounds writes are dropped.
func (b *Buffer) Set(x, y int, argb uint32) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.pix[y*b.stride+x] = argb
}

// Clear fills the whole buffer with one color.
func (b *Buffer) Clear(argb uint32) {
	for y := 0; y < b.h; y++ {
		row := b.pix[y*b.stride : y*b.stride+b.w]
		for i := range row {
			row[i] = argb
		}
	}
}

// Image converts the buffer to a stdlib image.RGBA.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.w, b.h))
	for y := 0; y < b.h; y++ {
		src := b.pix[y*b.stride : y*b.stride+b.w]
		dst := img.Pix[y*img.Stride:]
		for x, p := range src {
			dst[x*4+0] = uint8(p >> 16)
			dst[x*4+1] = uint8(p >> 8)
			dst[x*4+2] = uint8(p)
			dst[x*4+3] = uint8(p >> 24)
		}
	}
	return img
}

// SetFromImage copies img into the buffer, converting to ARGB32. The
// copy covers the intersection of the two bounds.
func (b *Buffer) SetFromImage(img image.Image) {
	r := img.Bounds().Intersect(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cr, cg, cb, ca := img.At(x, y).RGBA()
			b.pix[y*b.stride+x] = (ca>>8)<<24 | (cr>>8)<<16 | (cg>>8)<<8 | cb>>8
		}
	}
}

// ScaleTo resizes the buffer's contents into dst with bilinear
// filtering.
func (b *Buffer) ScaleTo(dst *Buffer) {
	out := image.NewRGBA(image.Rect(0, 0, dst.w, dst.h))
	xdraw.ApproxBiLinear.Scale(out, out.Bounds(), b.Image(), b.Bounds(), xdraw.Src, nil)
	dst.SetFromImage(out)
}

// WritePNG encodes the buffer as PNG.
func (b *Buffer) WritePNG(w io.Writer) error {
	return png.Encode(w, b.Image())
}
