package summarizer

import "time"

// Summary contains all data collected during a run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Input image
	Input InputInfo

	// Run settings
	Settings Settings

	// Frame output
	Output OutputInfo
}

// InputInfo describes the source JPEG.
type InputInfo struct {
	Path         string
	Width        int
	Height       int
	Components   int
	Progressive  bool
	MultiPicture bool
}

// Settings contains the run configuration.
type Settings struct {
	OutputDir   string
	StrideAlign int
	FrameCount  int
	Encoder     string
}

// OutputInfo contains information about the written frames.
type OutputInfo struct {
	Radius       int
	Stride       int
	Written      int
	Skipped      int
	FailedFrames []string
	TotalBytes   int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput sets input image information.
func (b *Builder) WithInput(input InputInfo) *Builder {
	b.summary.Input = input
	return b
}

// WithSettings sets run settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithOutput sets frame output information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
