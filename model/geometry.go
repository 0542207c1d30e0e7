package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect represents a rectangle on the authoring canvas. The origin is the
// top-left corner and Y grows downward.
type Rect struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewRect creates a rectangle from coordinates
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Top returns the top edge Y coordinate
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the bottom edge Y coordinate
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Contains checks if a point is inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Intersects checks if two rectangles intersect
func (r Rect) Intersects(other Rect) bool {
	return !(r.Right() < other.Left() ||
		r.Left() > other.Right() ||
		r.Bottom() < other.Top() ||
		r.Top() > other.Bottom())
}

// Union returns the smallest rectangle covering both rectangles
func (r Rect) Union(other Rect) Rect {
	x := math.Min(r.Left(), other.Left())
	y := math.Min(r.Top(), other.Top())
	right := math.Max(r.Right(), other.Right())
	bottom := math.Max(r.Bottom(), other.Bottom())

	return Rect{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Inset shrinks the rectangle by a margin on all sides. The result never has
// negative dimensions.
func (r Rect) Inset(margin float64) Rect {
	return Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  math.Max(0, r.Width-2*margin),
		Height: math.Max(0, r.Height-2*margin),
	}
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// IsEmpty returns true if the rectangle has zero area
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}
