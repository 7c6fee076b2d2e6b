package pipeline

import (
	"image"

	"github.com/user/bouncer/pkg/raster"
)

// DefaultFrameCount is the number of frames produced per run.
const DefaultFrameCount = 300

// MaxPixels bounds the pixel count of the input image and the base frame.
const MaxPixels = 1 << 28

// =============================================================================
// Probe Stage Types
// =============================================================================

// ProbeInput names the JPEG file to inspect.
type ProbeInput struct {
	Path string
}

// ProbeResult describes the primary image of a JPEG file.
type ProbeResult struct {
	Path         string   `json:"path"`
	Width        int      `json:"width"`
	Height       int      `json:"height"`
	Components   int      `json:"components"`
	Precision    int      `json:"precision"`
	Progressive  bool     `json:"progressive"`
	MultiPicture bool     `json:"multi_picture"` // MPF file with secondary images
	Markers      []string `json:"markers"`       // segment markers up to SOS
	Data         []byte   `json:"-"`             // whole file contents
}

// =============================================================================
// Decode Stage Types
// =============================================================================

// DecodeInput contains the compressed image to decode.
type DecodeInput struct {
	Probe ProbeResult
}

// DecodeResult contains the decoded primary image.
type DecodeResult struct {
	Image image.Image
}

// =============================================================================
// Convert Stage Types
// =============================================================================

// ConvertInput contains parameters for RGB24 conversion.
type ConvertInput struct {
	Image       image.Image
	StrideAlign int // row alignment in bytes (0 or 1 = packed)
}

// ConvertResult contains the base frame.
type ConvertResult struct {
	Base *raster.Buffer
}

// =============================================================================
// Trajectory Stage Types
// =============================================================================

// TrajectoryInput contains the planned sphere centers.
type TrajectoryInput struct {
	FrameWidth  int
	FrameHeight int
	Radius      int
	Centers     []int
}

// TrajectoryResult contains the rendered chart.
type TrajectoryResult struct {
	Image image.Image
}

// =============================================================================
// Sequence Stage Types
// =============================================================================

// SequenceInput contains parameters for frame generation.
type SequenceInput struct {
	Base       *raster.Buffer // read-only background frame
	FrameCount int            // defaults to DefaultFrameCount when <= 0
	OutputDir  string
}

// SequenceResult reports which frames were written.
type SequenceResult struct {
	Written  []string     // paths of written files, in frame order
	Bytes    int64        // total size of written files
	Skipped  []int        // frames the encoder produced no output for
	Failures []FrameError // frames that failed to encode or write
	Radius   int
	Centers  []int // sphere center y per frame
}

// FrameError records a non-fatal failure for one frame.
type FrameError struct {
	Index int
	Name  string
	Err   error
}
