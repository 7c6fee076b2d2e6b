package ports

import (
	"github.com/user/bouncer/pkg/raster"
)

// FrameEncoder abstracts per-frame image encoding.
type FrameEncoder interface {
	// Encode encodes one RGB24 frame. A nil payload with a nil error means
	// the encoder produced no output for this frame.
	Encode(frame *raster.Buffer) ([]byte, error)

	// Extension returns the file extension of the encoded format, including the dot.
	Extension() string
}
