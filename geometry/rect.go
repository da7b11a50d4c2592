package geometry

// Rect is an axis-aligned rectangle described by its center.
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

func NewRect(center Vector2D, width, height float64) Rect {
	return Rect{Center: center, Width: width, Height: height}
}

func (r Rect) Left() float64 {
	return r.Center.X - r.Width/2
}

func (r Rect) Right() float64 {
	return r.Center.X + r.Width/2
}

func (r Rect) Top() float64 {
	return r.Center.Y - r.Height/2
}

func (r Rect) Bottom() float64 {
	return r.Center.Y + r.Height/2
}

// Intersects reports a strict overlap on both axes; touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	return r.Right() > other.Left() &&
		r.Bottom() > other.Top() &&
		r.Left() < other.Right() &&
		r.Top() < other.Bottom()
}
