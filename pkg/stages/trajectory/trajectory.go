// Package trajectory implements the debug chart of the planned sphere motion.
package trajectory

import (
	"context"
	"errors"
	"image"
	"image/color"

	"github.com/user/bouncer/pkg/pipeline"
	"github.com/user/bouncer/pkg/ports"
)

// Chart layout constants.
const (
	Margin          = 20
	FrameSpacing    = 2
	MaxPlotHeight   = 400
	lineWidth       = 2.0
	boundLineWidth  = 1.0
	bounceDotRadius = 3
)

var (
	backgroundColor = color.White
	boundsColor     = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	pathColor       = color.RGBA{R: 255, A: 255}
	bounceColor     = color.Black
)

// ErrNoCenters is returned when there is nothing to plot.
var ErrNoCenters = errors.New("trajectory: no centers")

// Stage plots sphere center y against frame index.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new trajectory stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("trajectory"),
	}
}

// Execute draws the chart. The vertical axis is the frame's y axis, scaled
// down so the plot is at most MaxPlotHeight pixels tall.
func (s *Stage) Execute(ctx context.Context, input pipeline.TrajectoryInput) (pipeline.TrajectoryResult, error) {
	result := pipeline.TrajectoryResult{}

	if len(input.Centers) == 0 || input.FrameHeight <= 0 {
		return result, ErrNoCenters
	}

	s.logger.Debug("Plotting trajectory of %d frames", len(input.Centers))

	scale := 1.0
	if input.FrameHeight > MaxPlotHeight {
		scale = float64(MaxPlotHeight) / float64(input.FrameHeight)
	}
	plotW := (len(input.Centers) - 1) * FrameSpacing
	plotH := int(float64(input.FrameHeight) * scale)
	toY := func(y int) int {
		return Margin + int(float64(y)*scale)
	}

	canvas := s.renderer.CreateCanvas(plotW+2*Margin, plotH+2*Margin, backgroundColor)
	canvas.DrawRectStroke(Margin, Margin, plotW, plotH, bounceColor, boundLineWidth)

	top := toY(input.Radius)
	bottom := toY(input.FrameHeight - input.Radius)
	canvas.DrawLine(Margin, top, Margin+plotW, top, boundsColor, boundLineWidth)
	canvas.DrawLine(Margin, bottom, Margin+plotW, bottom, boundsColor, boundLineWidth)

	points := make([]image.Point, len(input.Centers))
	for i, y := range input.Centers {
		points[i] = image.Pt(Margin+i*FrameSpacing, toY(y))
	}
	canvas.DrawPolyline(points, pathColor, lineWidth)

	for _, i := range Bounces(input.Centers) {
		canvas.DrawCircle(points[i].X, points[i].Y, bounceDotRadius, bounceColor)
	}

	result.Image = canvas.ToImage()
	return result, nil
}

// Bounces returns the indices at which the direction of travel reverses.
func Bounces(centers []int) []int {
	var out []int
	for i := 1; i+1 < len(centers); i++ {
		before := centers[i] - centers[i-1]
		after := centers[i+1] - centers[i]
		if before*after < 0 {
			out = append(out, i)
		}
	}
	return out
}
