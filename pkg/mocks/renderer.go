package mocks

import (
	"image"
	"image/color"

	"github.com/user/bouncer/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)

	// Canvases created by CreateCanvas when no override is set
	Canvases []*Canvas
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	c := &Canvas{width: width, height: height}
	m.Canvases = append(m.Canvases, c)
	return c
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas is a mock implementation of ports.Canvas.
type Canvas struct {
	width  int
	height int
	img    *image.RGBA

	// Recorded calls for verification
	Polylines [][]image.Point
	Circles   []image.Point
	Lines     int
	Rects     int
}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) { m.Rects++ }

func (m *Canvas) DrawRectStroke(x, y, w, h int, c color.Color, strokeWidth float64) { m.Rects++ }

func (m *Canvas) DrawLine(x1, y1, x2, y2 int, c color.Color, width float64) { m.Lines++ }

func (m *Canvas) DrawPolyline(points []image.Point, c color.Color, width float64) {
	m.Polylines = append(m.Polylines, append([]image.Point(nil), points...))
}

func (m *Canvas) DrawCircle(x, y, radius int, c color.Color) {
	m.Circles = append(m.Circles, image.Pt(x, y))
}

func (m *Canvas) ToImage() image.Image {
	if m.img != nil {
		return m.img
	}
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

var _ ports.Canvas = (*Canvas)(nil)
