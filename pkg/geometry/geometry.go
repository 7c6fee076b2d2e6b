// Package geometry classifies pixels against a circle.
package geometry

import "math"

// Point is an integer pixel coordinate.
type Point struct {
	X int
	Y int
}

// Distance returns the Euclidean distance between a and b in pixel space.
func Distance(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// InCircle reports whether p lies strictly inside the circle of the given
// radius around c. A pixel exactly at distance radius is outside.
func InCircle(p, c Point, radius int) bool {
	return Distance(p, c) < float64(radius)
}

// ByteDistance is Distance for byte-addressed x coordinates: ax and bx are
// byte offsets within an RGB24 row and are divided by 3 (integer division)
// before squaring. ay and by are rows and used as-is.
// Callers must pass x values from the same space.
func ByteDistance(ax, ay, bx, by int) float64 {
	dx := float64((ax - bx) / 3)
	dy := float64(ay - by)
	return math.Sqrt(dx*dx + dy*dy)
}

// InByteCircle is InCircle over ByteDistance.
func InByteCircle(px, py, cx, cy, radius int) bool {
	return ByteDistance(px, py, cx, cy) < float64(radius)
}
