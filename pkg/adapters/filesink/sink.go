// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/bouncer/pkg/ports"
)

// Sink saves debug output to files under a base directory.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new Sink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveProbeJSON saves the JPEG probe result as probe.json.
func (s *Sink) SaveProbeJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "probe.json"), data)
}

// SaveMotionJSON saves the planned sphere centers as motion.json.
func (s *Sink) SaveMotionJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "motion.json"), data)
}

// SaveBaseFrame saves the converted background as base.png.
func (s *Sink) SaveBaseFrame(img image.Image) error {
	return s.savePNG("base.png", img)
}

// SaveTrajectory saves the trajectory chart as trajectory.png.
func (s *Sink) SaveTrajectory(img image.Image) error {
	return s.savePNG("trajectory.png", img)
}

func (s *Sink) savePNG(name string, img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, name), data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
