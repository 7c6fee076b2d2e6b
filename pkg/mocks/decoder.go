package mocks

import (
	"image"

	"github.com/user/bouncer/pkg/ports"
)

// ImageDecoder is a mock implementation of ports.ImageDecoder.
type ImageDecoder struct {
	DecodeImageFunc func(data []byte) (image.Image, error)

	// Recorded calls for verification
	DecodeCalls int
}

func (m *ImageDecoder) DecodeImage(data []byte) (image.Image, error) {
	m.DecodeCalls++
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewYCbCr(image.Rect(0, 0, 16, 16), image.YCbCrSubsampleRatio420), nil
}

var _ ports.ImageDecoder = (*ImageDecoder)(nil)
