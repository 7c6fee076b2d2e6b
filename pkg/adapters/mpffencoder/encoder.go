// Package mpffencoder writes and reads MPFF still frames.
//
// An MPFF file is a fixed 14-byte header followed by uncompressed RGB24
// rows without padding:
//
//	offset  size  field
//	0       4     magic "MPFF"
//	4       1     version (1)
//	5       1     pixel format (1 = RGB24)
//	6       4     width, little endian
//	10      4     height, little endian
//	14      w*h*3 pixel rows, top to bottom
package mpffencoder

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/user/bouncer/pkg/ports"
	"github.com/user/bouncer/pkg/raster"
)

const (
	// Extension is the file extension of MPFF frames.
	Extension = ".mpff"

	// HeaderSize is the size of the MPFF header in bytes.
	HeaderSize = 14

	version      = 1
	formatRGB24  = 1
	maxDimension = 1 << 16
)

var magic = []byte("MPFF")

var (
	// ErrInvalidFrame is returned when a frame cannot be encoded.
	ErrInvalidFrame = errors.New("mpffencoder: invalid frame")

	// ErrBadMagic is returned when data does not start with the MPFF magic.
	ErrBadMagic = errors.New("mpffencoder: not an MPFF file")

	// ErrUnsupported is returned for unknown versions or pixel formats.
	ErrUnsupported = errors.New("mpffencoder: unsupported version or pixel format")

	// ErrTruncated is returned when pixel data is shorter than the header declares.
	ErrTruncated = errors.New("mpffencoder: truncated data")
)

// Encoder implements ports.FrameEncoder for MPFF.
type Encoder struct{}

// New creates a new Encoder.
func New() *Encoder {
	return &Encoder{}
}

// Extension returns ".mpff".
func (e *Encoder) Extension() string {
	return Extension
}

// Encode serializes one frame. Row padding in the buffer is dropped.
func (e *Encoder) Encode(frame *raster.Buffer) ([]byte, error) {
	if frame == nil {
		return nil, fmt.Errorf("%w: nil frame", ErrInvalidFrame)
	}
	if frame.Width <= 0 || frame.Height <= 0 || frame.Width >= maxDimension || frame.Height >= maxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidFrame, frame.Width, frame.Height)
	}
	if frame.Stride < frame.Width*raster.BytesPerPixel || len(frame.Pix) < frame.Stride*frame.Height {
		return nil, fmt.Errorf("%w: stride %d, %d bytes for %dx%d", ErrInvalidFrame, frame.Stride, len(frame.Pix), frame.Width, frame.Height)
	}

	var buf bytes.Buffer
	buf.Grow(HeaderSize + frame.Width*frame.Height*raster.BytesPerPixel)

	buf.Write(magic)
	buf.WriteByte(version)
	buf.WriteByte(formatRGB24)
	binary.Write(&buf, binary.LittleEndian, uint32(frame.Width))
	binary.Write(&buf, binary.LittleEndian, uint32(frame.Height))

	for y := 0; y < frame.Height; y++ {
		buf.Write(frame.Row(y))
	}

	return buf.Bytes(), nil
}

// Decode parses an MPFF file into a packed buffer.
func Decode(data []byte) (*raster.Buffer, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d byte header", ErrTruncated, len(data))
	}
	if !bytes.Equal(data[:4], magic) {
		return nil, ErrBadMagic
	}
	if data[4] != version || data[5] != formatRGB24 {
		return nil, fmt.Errorf("%w: version %d, format %d", ErrUnsupported, data[4], data[5])
	}

	w := binary.LittleEndian.Uint32(data[6:10])
	h := binary.LittleEndian.Uint32(data[10:14])
	if w == 0 || h == 0 || w >= maxDimension || h >= maxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrUnsupported, w, h)
	}
	width, height := int(w), int(h)

	pix := data[HeaderSize:]
	if need := width * height * raster.BytesPerPixel; len(pix) < need {
		return nil, fmt.Errorf("%w: %d of %d pixel bytes", ErrTruncated, len(pix), need)
	}

	buf, err := raster.New(width, height, 1)
	if err != nil {
		return nil, err
	}
	copy(buf.Pix, pix)

	return buf, nil
}

// Ensure Encoder implements ports.FrameEncoder
var _ ports.FrameEncoder = (*Encoder)(nil)
