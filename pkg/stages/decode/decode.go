// Package decode implements the JPEG decoding stage.
package decode

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/bouncer/pkg/pipeline"
	"github.com/user/bouncer/pkg/ports"
)

// ErrTooLarge is returned when the probed frame header exceeds pipeline.MaxPixels.
var ErrTooLarge = errors.New("decode: image too large")

// Stage decodes the probed JPEG into an image.
type Stage struct {
	decoder ports.ImageDecoder
	logger  ports.Logger
}

// NewStage creates a new decode stage.
func NewStage(decoder ports.ImageDecoder, logger ports.Logger) *Stage {
	return &Stage{
		decoder: decoder,
		logger:  logger.WithComponent("decode"),
	}
}

// Execute decodes the primary image of the probed file.
func (s *Stage) Execute(ctx context.Context, input pipeline.DecodeInput) (pipeline.DecodeResult, error) {
	result := pipeline.DecodeResult{}

	if len(input.Probe.Data) == 0 {
		return result, pipeline.InputError("decode", fmt.Errorf("%s: no data", input.Probe.Path))
	}

	if w, h := input.Probe.Width, input.Probe.Height; w > 0 && h > 0 && w > pipeline.MaxPixels/h {
		return result, pipeline.ResourceError("decode", fmt.Errorf("%s: %w: %dx%d", input.Probe.Path, ErrTooLarge, w, h))
	}

	s.logger.Debug("Decoding image")

	img, err := s.decoder.DecodeImage(input.Probe.Data)
	if err != nil {
		return result, pipeline.InputError("decode", fmt.Errorf("%s: %w", input.Probe.Path, err))
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return result, pipeline.InputError("decode", fmt.Errorf("%s: decoded image is empty", input.Probe.Path))
	}

	s.logger.Debug("Decoded %dx%d image", b.Dx(), b.Dy())
	if input.Probe.Width != 0 && (b.Dx() != input.Probe.Width || b.Dy() != input.Probe.Height) {
		s.logger.Warn("Decoded size %dx%d differs from probed size %dx%d",
			b.Dx(), b.Dy(), input.Probe.Width, input.Probe.Height)
	}

	result.Image = img
	return result, nil
}
