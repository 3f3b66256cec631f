package entity

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Contains - reports whether the point lies inside the rectangle.
// The right and bottom edges are exclusive, so adjacent rectangles never both contain a point.
func (that Rect) Contains(x, y float32) bool {
	return x >= that.X && x < that.X+that.Width &&
		y >= that.Y && y < that.Y+that.Height
}

func (that Rect) Area() float32 {
	return that.Width * that.Height
}
