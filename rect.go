package shapes

// Rect represents an axis-aligned rectangle as a top-left corner plus size.
// Width and height may be negative only transiently during construction;
// drawing code normalizes.
type Rect struct {
	X, Y, Width, Height float32
}

// R is a convenience function to create a Rect.
func R(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.Height
}

// IsZero returns true if the rectangle has zero area at the origin.
func (r Rect) IsZero() bool {
	return r == Rect{}
}
