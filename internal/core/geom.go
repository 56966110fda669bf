// Package core provides fundamental types and utilities shared by the runner
// simulation and the terminal platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Box is an axis-aligned bounding box in logical (world) coordinates.
//
// Boxes are baseline-anchored: Y is the BOTTOM edge and the box extends
// upward to Y-H. Every collision test in the runner goes through this
// convention, so entities that store a top-left position convert explicitly
// when they build their hit box.
type Box struct {
	X, Y float64 // Left edge, bottom edge (baseline)
	W, H float64 // Width and height
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y - b.H
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Hit reports whether two baseline-anchored boxes overlap.
// All comparisons are strict: boxes that merely touch do not hit.
func (b Box) Hit(o Box) bool {
	return b.X < o.X+o.W &&
		b.X+b.W > o.X &&
		b.Y-b.H < o.Y &&
		b.Y > o.Y-o.H
}

// Widen returns a copy grown by dx on both horizontal sides.
func (b Box) Widen(dx float64) Box {
	return Box{X: b.X - dx, Y: b.Y, W: b.W + 2*dx, H: b.H}
}

// Lerp moves from toward to by fraction t of the remaining distance.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Rect is a top-left anchored block of screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clip returns the part of r inside a width x height screen.
// The result has zero size when nothing is visible.
func (r Rect) Clip(width, height int) Rect {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.Right(), width), min(r.Bottom(), height)
	return Rect{X: x0, Y: y0, W: max(0, x1-x0), H: max(0, y1-y0)}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}
