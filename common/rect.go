package common

// Rect is an integer axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether r and other share at least one pixel. Rectangles
// that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// Contains reports whether the point lies strictly inside r. Menu buttons use
// strict bounds so the border pixel belongs to no button.
func (r Rect) Contains(x, y int) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Offset returns r translated by (-dx, -dy), e.g. from world to camera space.
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W, H: r.H}
}
