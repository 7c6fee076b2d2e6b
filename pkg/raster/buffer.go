// Package raster provides the RGB24 pixel buffer shared by all stages.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// BytesPerPixel is the size of one RGB24 sample.
const BytesPerPixel = 3

// ErrInvalidSize is returned when a buffer cannot be allocated for the requested geometry.
var ErrInvalidSize = errors.New("raster: invalid buffer size")

// Buffer is an interleaved RGB24 raster.
// Rows may be padded: Stride is the number of bytes from one row to the next
// and is always at least Width*3. Row offsets must be computed with Stride.
type Buffer struct {
	Width  int
	Height int
	Stride int
	Pix    []byte
}

// New allocates a zeroed buffer with rows padded to a multiple of align bytes.
// An align of 0 or 1 produces tightly packed rows.
func New(width, height, align int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	stride := AlignStride(width*BytesPerPixel, align)
	return &Buffer{
		Width:  width,
		Height: height,
		Stride: stride,
		Pix:    make([]byte, stride*height),
	}, nil
}

// AlignStride rounds rowBytes up to the next multiple of align.
func AlignStride(rowBytes, align int) int {
	if align <= 1 {
		return rowBytes
	}
	return (rowBytes + align - 1) / align * align
}

// Offset returns the index in Pix of the red sample of pixel (x, y).
func (b *Buffer) Offset(x, y int) int {
	return y*b.Stride + x*BytesPerPixel
}

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Set writes an RGB triple. Out-of-bounds coordinates are ignored.
func (b *Buffer) Set(x, y int, r, g, bl uint8) {
	if !b.InBounds(x, y) {
		return
	}
	i := b.Offset(x, y)
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
}

// At returns the RGB triple of pixel (x, y), or zeros when out of bounds.
func (b *Buffer) At(x, y int) (r, g, bl uint8) {
	if !b.InBounds(x, y) {
		return 0, 0, 0
	}
	i := b.Offset(x, y)
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2]
}

// Row returns the width*3 bytes of row y without padding.
func (b *Buffer) Row(y int) []byte {
	start := y * b.Stride
	return b.Pix[start : start+b.Width*BytesPerPixel]
}

// Fill sets every pixel to the given color. Padding bytes are left untouched.
func (b *Buffer) Fill(r, g, bl uint8) {
	for y := 0; y < b.Height; y++ {
		row := b.Row(y)
		for i := 0; i < len(row); i += BytesPerPixel {
			row[i] = r
			row[i+1] = g
			row[i+2] = bl
		}
	}
}

// Clone returns a deep copy that shares no memory with b.
func (b *Buffer) Clone() *Buffer {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{
		Width:  b.Width,
		Height: b.Height,
		Stride: b.Stride,
		Pix:    pix,
	}
}

// Equal reports whether both buffers have the same geometry and pixel bytes.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.Width != o.Width || b.Height != o.Height {
		return false
	}
	for y := 0; y < b.Height; y++ {
		br, or := b.Row(y), o.Row(y)
		for i := range br {
			if br[i] != or[i] {
				return false
			}
		}
	}
	return true
}

// ToImage copies the buffer into an *image.RGBA for encoders that need image.Image.
func (b *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			r, g, bl := b.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: bl, A: 255})
		}
	}
	return img
}
