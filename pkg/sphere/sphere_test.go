package sphere

import (
	"testing"

	"github.com/user/bouncer/pkg/geometry"
	"github.com/user/bouncer/pkg/raster"
)

func newBuffer(t *testing.T, w, h, align int) *raster.Buffer {
	t.Helper()
	buf, err := raster.New(w, h, align)
	if err != nil {
		t.Fatalf("raster.New: %v", err)
	}
	buf.Fill(10, 200, 30)
	return buf
}

func TestRender_RegionsByDistance(t *testing.T) {
	buf := newBuffer(t, 80, 60, 1)
	center := geometry.Point{X: 40, Y: 30}
	radius := 12

	Render(buf, center, radius)

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			d := geometry.Distance(geometry.Point{X: x, Y: y}, center)
			r, g, b := buf.At(x, y)
			switch {
			case d < float64(radius):
				want := Shade(d, radius)
				if r != 255 || g != want || b != want {
					t.Fatalf("fill (%d,%d) d=%.2f: got (%d,%d,%d), want (255,%d,%d)", x, y, d, r, g, b, want, want)
				}
			case d < float64(radius+1):
				if r != 0 || g != 0 || b != 0 {
					t.Fatalf("border (%d,%d) d=%.2f: got (%d,%d,%d), want black", x, y, d, r, g, b)
				}
			default:
				if r != 10 || g != 200 || b != 30 {
					t.Fatalf("background (%d,%d) d=%.2f: got (%d,%d,%d)", x, y, d, r, g, b)
				}
			}
		}
	}
}

func TestRender_CenterIsWhite(t *testing.T) {
	buf := newBuffer(t, 21, 21, 1)
	Render(buf, geometry.Point{X: 10, Y: 10}, 5)

	r, g, b := buf.At(10, 10)
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("expected white center, got (%d,%d,%d)", r, g, b)
	}
}

func TestShade_Monotonic(t *testing.T) {
	radius := 48
	prev := Shade(0, radius)
	if prev != 255 {
		t.Fatalf("expected 255 at the center, got %d", prev)
	}
	for d := 0.0; d < float64(radius); d += 0.25 {
		s := Shade(d, radius)
		if s > prev {
			t.Fatalf("shade increased at d=%.2f: %d > %d", d, s, prev)
		}
		prev = s
	}
	if last := Shade(float64(radius)-0.01, radius); last > 1 {
		t.Errorf("expected shade near 0 at the edge, got %d", last)
	}
}

func TestRender_RespectsStride(t *testing.T) {
	buf := newBuffer(t, 30, 30, 64)
	for y := 0; y < buf.Height; y++ {
		for i := buf.Width * 3; i < buf.Stride; i++ {
			buf.Pix[y*buf.Stride+i] = 0xAB
		}
	}

	Render(buf, geometry.Point{X: 29, Y: 15}, 8)

	for y := 0; y < buf.Height; y++ {
		for i := buf.Width * 3; i < buf.Stride; i++ {
			if buf.Pix[y*buf.Stride+i] != 0xAB {
				t.Fatalf("padding byte %d of row %d was overwritten", i, y)
			}
		}
	}
	r, _, _ := buf.At(29, 15)
	if r != 255 {
		t.Errorf("expected fill at the right edge, got red %d", r)
	}
}

func TestRender_ClipsAtEdges(t *testing.T) {
	tests := []geometry.Point{
		{X: 0, Y: 0},
		{X: 19, Y: 19},
		{X: -5, Y: 10},
		{X: 10, Y: 30},
		{X: 100, Y: 100},
	}

	for _, center := range tests {
		buf := newBuffer(t, 20, 20, 1)
		Render(buf, center, 6) // must not panic
	}
}

func TestRender_ZeroRadiusDrawsBorderOnly(t *testing.T) {
	buf := newBuffer(t, 5, 5, 1)
	Render(buf, geometry.Point{X: 2, Y: 2}, 0)

	r, g, b := buf.At(2, 2)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("expected black center for radius 0, got (%d,%d,%d)", r, g, b)
	}
	r, _, _ = buf.At(3, 2)
	if r != 10 {
		t.Errorf("expected neighbour untouched, got red %d", r)
	}
}

func TestRender_MatchesByteAddressedReference(t *testing.T) {
	buf := newBuffer(t, 64, 48, 1)
	ref := buf.Clone()
	center := geometry.Point{X: 32, Y: 20}
	radius := 48 / 10

	Render(buf, center, radius)
	renderByteAddressed(ref, center.X, center.Y, radius)

	if !buf.Equal(ref) {
		t.Error("pixel-space renderer differs from the byte-addressed reference")
	}
}

// renderByteAddressed walks every byte column with x in byte units, the way
// the frame format is laid out in memory.
func renderByteAddressed(buf *raster.Buffer, cx, cy, radius int) {
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width*3; x += 3 {
			i := y*buf.Stride + x
			if geometry.InByteCircle(x, y, cx*3, cy, radius+1) {
				buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2] = 0, 0, 0
			}
			if geometry.InByteCircle(x, y, cx*3, cy, radius) {
				d := geometry.ByteDistance(x, y, cx*3, cy)
				buf.Pix[i] = 255
				buf.Pix[i+1] = uint8(255 - 255*d/float64(radius))
				buf.Pix[i+2] = uint8(255 - 255*d/float64(radius))
			}
		}
	}
}
