package geometry

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Point
		want float64
	}{
		{Point{0, 0}, Point{0, 0}, 0},
		{Point{0, 0}, Point{3, 4}, 5},
		{Point{3, 4}, Point{0, 0}, 5},
		{Point{-2, 1}, Point{1, 5}, 5},
		{Point{10, 10}, Point{10, 17}, 7},
	}

	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestInCircle_CenterAlwaysInside(t *testing.T) {
	for _, c := range []Point{{0, 0}, {5, 9}, {-3, 200}, {640, 480}} {
		for r := 1; r < 50; r++ {
			if !InCircle(c, c, r) {
				t.Fatalf("center %v not inside radius %d", c, r)
			}
		}
	}
}

func TestInCircle_BoundaryExcluded(t *testing.T) {
	c := Point{10, 10}
	if InCircle(Point{15, 10}, c, 5) {
		t.Error("point at exactly the radius must be outside")
	}
	if !InCircle(Point{14, 10}, c, 5) {
		t.Error("point at radius-1 must be inside")
	}
	if InCircle(Point{13, 14}, c, 5) {
		t.Error("3-4-5 point must be outside radius 5")
	}
}

func TestInCircle_ZeroRadius(t *testing.T) {
	c := Point{1, 1}
	if InCircle(c, c, 0) {
		t.Error("nothing is inside a zero radius circle")
	}
}

func TestByteDistance_MatchesPixelSpace(t *testing.T) {
	c := Point{17, 23}
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			p := Point{x, y}
			want := Distance(p, c)
			got := ByteDistance(x*3, y, c.X*3, c.Y)
			if math.Abs(got-want) > 1e-12 {
				t.Fatalf("(%d,%d): byte distance %v, pixel distance %v", x, y, got, want)
			}
		}
	}
}

func TestByteDistance_DividesOnlyX(t *testing.T) {
	if got := ByteDistance(9, 0, 0, 0); got != 3 {
		t.Errorf("expected x offset 9 bytes to be 3 pixels, got %v", got)
	}
	if got := ByteDistance(0, 9, 0, 0); got != 9 {
		t.Errorf("expected y offset to be used as-is, got %v", got)
	}
	// Integer division truncates toward zero.
	if got := ByteDistance(5, 0, 0, 0); got != 1 {
		t.Errorf("expected truncated offset 1, got %v", got)
	}
}

func TestInByteCircle(t *testing.T) {
	if !InByteCircle(30, 10, 30, 10, 1) {
		t.Error("center must be inside")
	}
	if InByteCircle(45, 10, 30, 10, 5) {
		t.Error("5 pixels away must be outside radius 5")
	}
	if !InByteCircle(42, 10, 30, 10, 5) {
		t.Error("4 pixels away must be inside radius 5")
	}
}
