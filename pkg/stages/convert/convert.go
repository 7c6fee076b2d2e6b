// Package convert implements the RGB24 conversion stage.
package convert

import (
	"context"
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/user/bouncer/pkg/pipeline"
	"github.com/user/bouncer/pkg/ports"
	"github.com/user/bouncer/pkg/raster"
)

// MaxPixels bounds the size of the base frame.
const MaxPixels = pipeline.MaxPixels

// ErrTooLarge is returned when the decoded image exceeds MaxPixels.
var ErrTooLarge = errors.New("convert: image too large")

// Stage converts a decoded image into an RGB24 base frame of the same size.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new convert stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("convert"),
	}
}

// Execute converts the image, padding rows to input.StrideAlign bytes.
func (s *Stage) Execute(ctx context.Context, input pipeline.ConvertInput) (pipeline.ConvertResult, error) {
	result := pipeline.ConvertResult{}

	if input.Image == nil {
		return result, pipeline.InputError("convert", errors.New("no image"))
	}
	if input.StrideAlign < 0 {
		return result, pipeline.ArgumentError("convert", fmt.Errorf("negative stride alignment %d", input.StrideAlign))
	}

	b := input.Image.Bounds()
	if b.Dx() > 0 && b.Dy() > 0 && b.Dx() > MaxPixels/b.Dy() {
		return result, pipeline.ResourceError("convert", fmt.Errorf("%w: %dx%d", ErrTooLarge, b.Dx(), b.Dy()))
	}

	s.logger.Debug("Converting to RGB24 (stride alignment %d)", input.StrideAlign)

	base, err := raster.New(b.Dx(), b.Dy(), input.StrideAlign)
	if err != nil {
		return result, pipeline.ResourceError("convert", err)
	}

	CopyRGB(base, toRGBA(input.Image))

	s.logger.Debug("Base frame ready: %dx%d, stride %d", base.Width, base.Height, base.Stride)

	result.Base = base
	return result, nil
}

// toRGBA returns img as an *image.RGBA anchored at the origin.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// CopyRGB copies the color channels of src into dst, dropping alpha.
// src must be at least as large as dst.
func CopyRGB(dst *raster.Buffer, src *image.RGBA) {
	for y := 0; y < dst.Height; y++ {
		row := dst.Row(y)
		in := src.Pix[y*src.Stride:]
		for x := 0; x < dst.Width; x++ {
			row[x*3] = in[x*4]
			row[x*3+1] = in[x*4+1]
			row[x*3+2] = in[x*4+2]
		}
	}
}
