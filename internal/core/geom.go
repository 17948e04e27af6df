// Package core provides the platform-neutral types shared by the simulation
// and its frontends: geometry, input frames, the draw and audio surfaces, the
// millisecond clock and the terminal cell buffer.
// It has no UI dependencies so game logic stays testable in isolation.
package core

// Rect is an axis-aligned rectangle in world or screen units.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether r and other overlap.
// Intervals are open: rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks the rectangle by dx on the left and right and dy on the top
// and bottom.
func (r Rect) Inset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// InscribedCircle approximates the rectangle by a circle centered on it with
// radius half of its smaller side.
func (r Rect) InscribedCircle() Circle {
	cx, cy := r.Center()
	return Circle{X: cx, Y: cy, R: Min(r.W, r.H) / 2}
}

// Circle is a circle given by its center and radius.
type Circle struct {
	X, Y int // Center
	R    int // Radius
}

// Intersects reports whether two circles overlap or touch.
func (c Circle) Intersects(other Circle) bool {
	dx := c.X - other.X
	dy := c.Y - other.Y
	sum := c.R + other.R
	return dx*dx+dy*dy <= sum*sum
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
