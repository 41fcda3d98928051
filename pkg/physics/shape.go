// pkg/physics/shape.go
package physics

// Rect is an axis-aligned rectangle described by its centre.
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// RectFromCorner builds a Rect from its top-left corner and size.
func RectFromCorner(corner Vector2D, width, height float64) Rect {
	return Rect{
		Center: Vector2D{X: corner.X + width/2, Y: corner.Y + height/2},
		Width:  width,
		Height: height,
	}
}

// HalfExtents returns half the width and half the height.
func (r Rect) HalfExtents() Vector2D {
	return Vector2D{X: r.Width / 2, Y: r.Height / 2}
}

// Corner returns the top-left corner.
func (r Rect) Corner() Vector2D {
	return r.Center.Sub(r.HalfExtents())
}

// Contains checks if a point is inside the rectangle
func (r Rect) Contains(point Vector2D) bool {
	h := r.HalfExtents()
	return point.X >= r.Center.X-h.X &&
		point.X <= r.Center.X+h.X &&
		point.Y >= r.Center.Y-h.Y &&
		point.Y <= r.Center.Y+h.Y
}

// Circle is a circular region.
type Circle struct {
	Center Vector2D
	Radius float64
}

// Overlaps checks if two circles intersect
func (c Circle) Overlaps(other Circle) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}
