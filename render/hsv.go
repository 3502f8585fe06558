package render

import colorful "github.com/lucasb-eyer/go-colorful"

// LerpHSV interpolates between two colors through HSV space, taking the
// shortest hue arc. Alpha is interpolated linearly since HSV carries none.
func LerpHSV(a, b RGBA, t float64) RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}

	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	mixed := ca.BlendHsv(cb, t).Clamped()

	return RGBA{
		R: clamp(mixed.R * 255),
		G: clamp(mixed.G * 255),
		B: clamp(mixed.B * 255),
		A: Lerp(a, b, t).A,
	}
}

// Hue returns the HSV hue of the color in degrees [0, 360)
func Hue(c RGBA) float64 {
	cc := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, _, _ := cc.Hsv()
	return h
}
