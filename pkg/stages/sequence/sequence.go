// Package sequence implements the frame sequencer: it renders the bouncing
// sphere over copies of the base frame and writes one file per frame.
package sequence

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/user/bouncer/pkg/geometry"
	"github.com/user/bouncer/pkg/motion"
	"github.com/user/bouncer/pkg/pipeline"
	"github.com/user/bouncer/pkg/ports"
	"github.com/user/bouncer/pkg/sphere"
)

// ErrNoBase is returned when the sequencer is run without a base frame.
var ErrNoBase = errors.New("sequence: no base frame")

// FrameName returns the output file name of frame index.
func FrameName(index int, ext string) string {
	return fmt.Sprintf("frame%03d%s", index, ext)
}

// Stage produces the frame sequence.
type Stage struct {
	encoder ports.FrameEncoder
	fs      ports.FileSystem
	logger  ports.Logger
}

// NewStage creates a new sequence stage.
func NewStage(encoder ports.FrameEncoder, fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		encoder: encoder,
		fs:      fs,
		logger:  logger.WithComponent("sequence"),
	}
}

// Execute renders and writes FrameCount frames in order. The base buffer is
// never modified. Per-frame encode and write failures are logged and
// recorded in the result; the sequence continues. Cancellation is checked
// between frames.
func (s *Stage) Execute(ctx context.Context, input pipeline.SequenceInput) (pipeline.SequenceResult, error) {
	result := pipeline.SequenceResult{}

	base := input.Base
	if base == nil {
		return result, pipeline.ResourceError("sequence", ErrNoBase)
	}

	count := input.FrameCount
	if count <= 0 {
		count = pipeline.DefaultFrameCount
	}

	radius := motion.RadiusFor(base.Height)
	ctrl := motion.NewController(base.Height, radius)
	cx := base.Width / 2
	ext := s.encoder.Extension()

	result.Radius = radius
	result.Centers = make([]int, 0, count)

	s.logger.Debug("Rendering %d frames, radius %d", count, radius)

	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		frame := base.Clone()
		y := ctrl.Next()
		result.Centers = append(result.Centers, y)
		sphere.Render(frame, geometry.Point{X: cx, Y: y}, radius)

		name := FrameName(i, ext)
		s.logger.Debug("Frame %d: center y=%d", i, y)

		data, err := s.encoder.Encode(frame)
		if err != nil {
			s.logger.Warn("Could not encode %s: %s", name, err.Error())
			result.Failures = append(result.Failures, pipeline.FrameError{
				Index: i,
				Name:  name,
				Err:   pipeline.EncodeError("encode frame", err),
			})
			continue
		}
		if data == nil {
			s.logger.Debug("Encoder produced no output for %s", name)
			result.Skipped = append(result.Skipped, i)
			continue
		}

		path := filepath.Join(input.OutputDir, name)
		if err := s.fs.WriteFile(path, data); err != nil {
			s.logger.Warn("Could not write %s: %s", path, err.Error())
			result.Failures = append(result.Failures, pipeline.FrameError{
				Index: i,
				Name:  name,
				Err:   pipeline.EncodeError("write frame", err),
			})
			continue
		}
		result.Written = append(result.Written, path)
		result.Bytes += int64(len(data))
	}

	return result, nil
}
