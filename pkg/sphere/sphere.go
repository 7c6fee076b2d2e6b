// Package sphere draws the bouncing ball into an RGB24 buffer.
package sphere

import (
	"github.com/user/bouncer/pkg/geometry"
	"github.com/user/bouncer/pkg/raster"
)

// Shade returns the green and blue level for a fill pixel at distance d
// from the center: 255 at the center, falling linearly towards 0 at radius.
func Shade(d float64, radius int) uint8 {
	return uint8(255 - 255*d/float64(radius))
}

// Render draws a red sphere shaded from white at the center to pure red at
// the edge, outlined by a black ring between radius and radius+1.
// Pixels at distance >= radius+1 keep their value. The buffer is modified
// in place and nothing outside its pixel area is touched.
func Render(buf *raster.Buffer, center geometry.Point, radius int) {
	if buf == nil || radius < 0 {
		return
	}
	outer := radius + 1

	// Only the bounding box of the outer circle can change.
	x0, x1 := clamp(center.X-outer, 0, buf.Width), clamp(center.X+outer+1, 0, buf.Width)
	y0, y1 := clamp(center.Y-outer, 0, buf.Height), clamp(center.Y+outer+1, 0, buf.Height)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := geometry.Point{X: x, Y: y}
			if !geometry.InCircle(p, center, outer) {
				continue
			}
			i := buf.Offset(x, y)
			if !geometry.InCircle(p, center, radius) {
				buf.Pix[i] = 0
				buf.Pix[i+1] = 0
				buf.Pix[i+2] = 0
				continue
			}
			s := Shade(geometry.Distance(p, center), radius)
			buf.Pix[i] = 255
			buf.Pix[i+1] = s
			buf.Pix[i+2] = s
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
