package vmath

// RectTransform maps points from one rect's coordinate space to another's.
// Used to project the logical viewport (centered on the clock origin) onto
// screen pixels.
type RectTransform struct {
	scaleX, scaleY float64
	offX, offY     float64
}

// NewRectTransform builds the affine map taking from onto to
func NewRectTransform(from, to Rect) RectTransform {
	sx := to.Width() / from.Width()
	sy := to.Height() / from.Height()
	return RectTransform{
		scaleX: sx,
		scaleY: sy,
		offX:   to.Min.X - from.Min.X*sx,
		offY:   to.Min.Y - from.Min.Y*sy,
	}
}

// Apply maps p from the source space to the target space
func (t RectTransform) Apply(p Vec2) Vec2 {
	return Vec2{
		X: p.X*t.scaleX + t.offX,
		Y: p.Y*t.scaleY + t.offY,
	}
}
