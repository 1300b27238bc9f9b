package model

import "math"

// Rect represents an axis-aligned rectangle in page coordinates
// (origin bottom-left, Y increasing upward).
type Rect struct {
	X      float64 // Left
	Y      float64 // Bottom (PDF coordinate system)
	Width  float64
	Height float64
}

// NewRect creates a rectangle from its origin and size
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// NewRectFromBounds creates a rectangle from its minimum and maximum corners
func NewRectFromBounds(minX, minY, maxX, maxY float64) Rect {
	return Rect{
		X:      math.Min(minX, maxX),
		Y:      math.Min(minY, maxY),
		Width:  math.Abs(maxX - minX),
		Height: math.Abs(maxY - minY),
	}
}

// Left returns the left edge X coordinate
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the bottom edge Y coordinate
func (r Rect) Bottom() float64 {
	return r.Y
}

// Top returns the top edge Y coordinate
func (r Rect) Top() float64 {
	return r.Y + r.Height
}

// Union returns the smallest rectangle containing both rectangles
func (r Rect) Union(other Rect) Rect {
	return NewRectFromBounds(
		math.Min(r.Left(), other.Left()),
		math.Min(r.Bottom(), other.Bottom()),
		math.Max(r.Right(), other.Right()),
		math.Max(r.Top(), other.Top()),
	)
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// IsEmpty returns true if the rectangle has zero area
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}
