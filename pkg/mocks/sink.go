package mocks

import (
	"image"
	"sync"

	"github.com/user/bouncer/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	ProbeJSON  []byte
	MotionJSON []byte
	BaseFrame  image.Image
	Trajectory image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{enabled: enabled}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveProbeJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProbeJSON = data
	return nil
}

func (m *DebugSink) SaveMotionJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MotionJSON = data
	return nil
}

func (m *DebugSink) SaveBaseFrame(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BaseFrame = img
	return nil
}

func (m *DebugSink) SaveTrajectory(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Trajectory = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)

// NullSink is a no-op implementation of ports.DebugSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool                        { return false }
func (m *NullSink) SaveProbeJSON(data []byte) error      { return nil }
func (m *NullSink) SaveMotionJSON(data []byte) error     { return nil }
func (m *NullSink) SaveBaseFrame(img image.Image) error  { return nil }
func (m *NullSink) SaveTrajectory(img image.Image) error { return nil }

var _ ports.DebugSink = (*NullSink)(nil)
