package clock

import "github.com/lixenwraith/fractal-clock/render"

// Luminance decay starts at 0.7 and the schedule ends once the 8-bit scale
// would round to zero, whichever comes before the depth budget
const (
	startLuminance = 0.7
	minLuminance   = 0.5 / 255.0
)

// computeSchedule builds the per-depth color sequence into dst (reusing its
// backing array). The decaying luminance accumulator governs schedule length
// in both modes; rainbow mode takes its colors from an HSV interpolation
// between the configured endpoints instead of the scaled branch color.
func computeSchedule(cfg *Config, dst []render.RGBA) []render.RGBA {
	dst = dst[:0]
	luminance := startLuminance

	for depth := 0; depth < cfg.Depth; depth++ {
		luminance *= cfg.LuminanceFactor
		if luminance < minLuminance {
			break
		}

		var color render.RGBA
		if cfg.RainbowMode {
			t := float64(depth) / float64(max(cfg.Depth, 1))
			color = render.LerpHSV(cfg.RainbowStart, cfg.RainbowEnd, t)
		} else {
			color = render.Scale(cfg.BranchColor, luminance)
		}
		dst = append(dst, color)
	}
	return dst
}
