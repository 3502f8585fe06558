package render

// clamp converts float to uint8 with saturation and round-to-nearest
func clamp(v float64) uint8 {
	v += 0.5
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Scale multiplies the color channels by factor (0.0-1.0), rounding to the
// nearest 8-bit value. Alpha is preserved.
func Scale(c RGBA, factor float64) RGBA {
	return RGBA{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
		A: c.A,
	}
}

// Lerp linearly interpolates all four channels
// t=0 returns a, t=1 returns b
func Lerp(a, b RGBA, t float64) RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGBA{
		R: clamp(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: clamp(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: clamp(float64(a.B) + t*float64(int(b.B)-int(a.B))),
		A: clamp(float64(a.A) + t*float64(int(b.A)-int(a.A))),
	}
}

// Blend composites src over dst using the given alpha (0.0-1.0)
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(dst, src RGBA, alpha float64) RGBA {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return dst
	}

	inv := 1.0 - alpha
	return RGBA{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
		A: dst.A,
	}
}

// Max returns the per-channel maximum, used when branches cross on the
// rasterized canvas so the brighter generation wins
func Max(a, b RGBA) RGBA {
	return RGBA{
		R: max(a.R, b.R),
		G: max(a.G, b.G),
		B: max(a.B, b.B),
		A: max(a.A, b.A),
	}
}

// Luminance returns perceived brightness using Rec. 601 luma coefficients
// Formula: Y = R*0.299 + G*0.587 + B*0.114, scaled to 0.0-1.0
func Luminance(c RGBA) float64 {
	return (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / (1000 * 255)
}
