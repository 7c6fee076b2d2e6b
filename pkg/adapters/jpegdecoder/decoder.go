// Package jpegdecoder provides a JPEG image decoder.
package jpegdecoder

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/user/bouncer/pkg/ports"
)

// ErrDecode is returned when the JPEG stream cannot be decoded.
var ErrDecode = errors.New("jpegdecoder: decode failed")

// Decoder implements ports.ImageDecoder for baseline and progressive JPEG.
type Decoder struct{}

// New creates a new Decoder.
func New() *Decoder {
	return &Decoder{}
}

// DecodeImage decodes the primary image of a JPEG file.
// Trailing data after the first EOI, such as MPF secondary images, is ignored.
func (d *Decoder) DecodeImage(data []byte) (image.Image, error) {
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// Ensure Decoder implements ports.ImageDecoder
var _ ports.ImageDecoder = (*Decoder)(nil)
