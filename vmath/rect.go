package vmath

// Rect is an axis-aligned rectangle defined by Min (top-left) and Max
// (bottom-right) corners. Y grows downward (screen convention).
type Rect struct {
	Min, Max Vec2
}

// NewRect builds a rect from two corner coordinates, normalizing order
func NewRect(x0, y0, x1, y1 float64) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{Min: Vec2{X: x0, Y: y0}, Max: Vec2{X: x1, Y: y1}}
}

// RectFromPoints returns the bounding rect of two points
func RectFromPoints(a, b Vec2) Rect {
	return NewRect(a.X, a.Y, b.X, b.Y)
}

// RectFromCenterSize builds a rect centered at c with the given size
func RectFromCenterSize(c, size Vec2) Rect {
	half := size.Scale(0.5)
	return Rect{Min: c.Sub(half), Max: c.Add(half)}
}

// Width returns the horizontal extent
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Size returns width and height as a vector
func (r Rect) Size() Vec2 {
	return Vec2{X: r.Width(), Y: r.Height()}
}

// Center returns the midpoint
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Intersects reports whether the rects overlap (closed bounds)
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Contains reports whether p lies inside the rect (closed bounds)
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// SquareProportions returns a vector with smallest dimension 1 and the other
// dimension the aspect ratio, so the unit square maps undistorted into the rect
func (r Rect) SquareProportions() Vec2 {
	w, h := r.Width(), r.Height()
	if w > h {
		return Vec2{X: w / h, Y: 1}
	}
	return Vec2{X: 1, Y: h / w}
}
