// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/bouncer/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveProbeJSON does nothing.
func (s *Sink) SaveProbeJSON(data []byte) error {
	return nil
}

// SaveMotionJSON does nothing.
func (s *Sink) SaveMotionJSON(data []byte) error {
	return nil
}

// SaveBaseFrame does nothing.
func (s *Sink) SaveBaseFrame(img image.Image) error {
	return nil
}

// SaveTrajectory does nothing.
func (s *Sink) SaveTrajectory(img image.Image) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
