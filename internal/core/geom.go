// Package core provides fundamental types and utilities for the game.
// It has no external dependencies (especially no Bubble Tea) so that the
// simulation and the presentation logic stay pure and testable.
package core

// Rect is an axis-aligned rectangle in logical canvas units or screen cells.
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

// HitTest reports whether the point (x, y) lies on or inside the rectangle.
// Edges are inclusive on all four sides, so a click exactly on the border
// of a shape or a button still counts.
func (r Rect) HitTest(x, y int) bool {
	return x >= r.X && y >= r.Y && x <= r.Right() && y <= r.Bottom()
}

// Scale maps the rectangle from one coordinate space into another.
// Both spaces share the origin; sx and sy are target/source ratios.
// Non-empty rectangles never scale below one unit.
func (r Rect) Scale(sx, sy float64) Rect {
	out := Rect{
		X: int(float64(r.X) * sx),
		Y: int(float64(r.Y) * sy),
		W: int(float64(r.W)*sx + 0.5),
		H: int(float64(r.H)*sy + 0.5),
	}
	if r.W > 0 && out.W < 1 {
		out.W = 1
	}
	if r.H > 0 && out.H < 1 {
		out.H = 1
	}
	return out
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
