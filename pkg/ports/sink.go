package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveProbeJSON saves the JPEG probe result as JSON.
	SaveProbeJSON(data []byte) error

	// SaveMotionJSON saves the planned sphere centers as JSON.
	SaveMotionJSON(data []byte) error

	// SaveBaseFrame saves the converted background frame.
	SaveBaseFrame(img image.Image) error

	// SaveTrajectory saves the trajectory chart.
	SaveTrajectory(img image.Image) error
}
