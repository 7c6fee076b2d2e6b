package ports

import (
	"image"
)

// ImageDecoder abstracts still-image decoding.
type ImageDecoder interface {
	// DecodeImage decodes a complete compressed image held in memory.
	DecodeImage(data []byte) (image.Image, error)
}
