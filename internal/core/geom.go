// Package core provides fundamental types and utilities for the puzzle platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an axis-aligned screen region used for layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// SplitLeft cuts a column of width w off the left side.
// The remainder is separated by gap columns.
func (r Rect) SplitLeft(w, gap int) (left, rest Rect) {
	w = Clamp(w, 0, r.W)
	left = Rect{X: r.X, Y: r.Y, W: w, H: r.H}
	restX := Min(r.X+w+gap, r.Right())
	rest = Rect{X: restX, Y: r.Y, W: r.Right() - restX, H: r.H}
	return left, rest
}

// SplitTop cuts a band of height h off the top.
func (r Rect) SplitTop(h int) (top, rest Rect) {
	h = Clamp(h, 0, r.H)
	top = Rect{X: r.X, Y: r.Y, W: r.W, H: h}
	rest = Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
	return top, rest
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
