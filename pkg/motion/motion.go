// Package motion simulates the vertical bounce of the sphere.
package motion

// Step is the vertical distance travelled per frame, in pixels.
const Step = 5

// Advance moves y one step up (ascending) or down. It has no side effects.
func Advance(y int, ascending bool) int {
	if ascending {
		return y - Step
	}
	return y + Step
}

// Bounds holds the vertical range the center may occupy before bouncing.
type Bounds struct {
	Top    int
	Bottom int
}

// BoundsFor returns the bounce range for a frame of the given height and a
// sphere of the given radius: radius .. height-radius.
func BoundsFor(height, radius int) Bounds {
	return Bounds{Top: radius, Bottom: height - radius}
}

// Bounce returns the direction to use after the center moved to y.
// Crossing the top makes the sphere descend, crossing the bottom makes it
// ascend; otherwise the direction is kept. Both bounds are checked.
func (b Bounds) Bounce(y int, ascending bool) bool {
	if y < b.Top {
		ascending = false
	}
	if y > b.Bottom {
		ascending = true
	}
	return ascending
}

// RadiusFor returns the fixed sphere radius for a frame height.
func RadiusFor(height int) int {
	return height / 10
}

// Controller owns the motion state of one run.
type Controller struct {
	y         int
	ascending bool
	bounds    Bounds
}

// NewController starts at the vertical midpoint, descending.
func NewController(height, radius int) *Controller {
	return &Controller{
		y:         height / 2,
		ascending: false,
		bounds:    BoundsFor(height, radius),
	}
}

// Next advances one frame, applies the bounce policy to the new position
// and returns it.
func (c *Controller) Next() int {
	c.y = Advance(c.y, c.ascending)
	c.ascending = c.bounds.Bounce(c.y, c.ascending)
	return c.y
}

// Y returns the current center.
func (c *Controller) Y() int {
	return c.y
}

// Ascending reports the direction the next step will take.
func (c *Controller) Ascending() bool {
	return c.ascending
}

// Trajectory returns the centers of the first n frames for a frame height.
func Trajectory(height, n int) []int {
	c := NewController(height, RadiusFor(height))
	ys := make([]int, n)
	for i := range ys {
		ys[i] = c.Next()
	}
	return ys
}
