// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies on Bubble Tea so that game logic stays
// pure and testable.
package core

// Rect is an axis-aligned box in screen cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Span is a closed horizontal interval in logical canvas pixels.
type Span struct {
	Start, End float64
}

// NewSpan returns the span [start, end].
func NewSpan(start, end float64) Span {
	return Span{Start: start, End: end}
}

// StrictlyContains reports whether v lies inside the span, endpoints excluded.
func (s Span) StrictlyContains(v float64) bool {
	return v > s.Start && v < s.End
}

// EndpointInside reports whether either endpoint of other falls strictly
// inside s. A span fully covering s does not count.
func (s Span) EndpointInside(other Span) bool {
	return s.StrictlyContains(other.Start) || s.StrictlyContains(other.End)
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
