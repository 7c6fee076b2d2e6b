package mocks

import (
	"github.com/user/bouncer/pkg/ports"
	"github.com/user/bouncer/pkg/raster"
)

// FrameEncoder is a mock implementation of ports.FrameEncoder.
type FrameEncoder struct {
	EncodeFunc func(frame *raster.Buffer) ([]byte, error)
	Ext        string

	// Recorded calls for verification
	EncodeCalls []EncodeCall
}

// EncodeCall records a call to Encode.
type EncodeCall struct {
	Width  int
	Height int
	Frame  *raster.Buffer
}

func (m *FrameEncoder) Encode(frame *raster.Buffer) ([]byte, error) {
	m.EncodeCalls = append(m.EncodeCalls, EncodeCall{Width: frame.Width, Height: frame.Height, Frame: frame})
	if m.EncodeFunc != nil {
		return m.EncodeFunc(frame)
	}
	return []byte("frame"), nil
}

func (m *FrameEncoder) Extension() string {
	if m.Ext != "" {
		return m.Ext
	}
	return ".mpff"
}

var _ ports.FrameEncoder = (*FrameEncoder)(nil)
