package clock

import "github.com/lixenwraith/fractal-clock/render"

// Config holds every user-tunable parameter of the clock. All fields are
// independently settable; hosts persist the whole blob between sessions.
type Config struct {
	Paused                bool        `toml:"paused"`
	Zoom                  float64     `toml:"zoom"`
	StartLineWidth        float64     `toml:"start_line_width"`
	Depth                 int         `toml:"depth"`
	LengthFactor          float64     `toml:"length_factor"`
	LuminanceFactor       float64     `toml:"luminance_factor"`
	WidthFactor           float64     `toml:"width_factor"`
	BranchColor           render.RGBA `toml:"branch_color"`
	HandColor             render.RGBA `toml:"hand_color"`
	RainbowMode           bool        `toml:"rainbow_mode"`
	RainbowStart          render.RGBA `toml:"rainbow_start"`
	RainbowEnd            render.RGBA `toml:"rainbow_end"`
	Fullscreen            bool        `toml:"fullscreen"`
	TransparentBackground bool        `toml:"transparent_background"`
	TickSound             bool        `toml:"tick_sound"`
}

// MaxDepth is the deepest fractal expansion hosts should offer.
// Node count doubles per level, so this bounds per-frame work at ~2M nodes.
const MaxDepth = 20

// DefaultConfig returns the out-of-the-box parameter set
func DefaultConfig() Config {
	return Config{
		Paused:                false,
		Zoom:                  0.5,
		StartLineWidth:        5.0,
		Depth:                 15,
		LengthFactor:          0.75,
		LuminanceFactor:       1.0,
		WidthFactor:           0.75,
		BranchColor:           render.NewRGB(115, 186, 37),
		HandColor:             render.White,
		RainbowMode:           true,
		RainbowStart:          render.Red,
		RainbowEnd:            render.Blue,
		Fullscreen:            false,
		TransparentBackground: true,
		TickSound:             false,
	}
}

// scheduleEquals reports whether two configs would produce the same depth
// color schedule. Used to decide when a config swap dirties the schedule.
func (c Config) scheduleEquals(o Config) bool {
	return c.Depth == o.Depth &&
		c.LengthFactor == o.LengthFactor &&
		c.LuminanceFactor == o.LuminanceFactor &&
		c.BranchColor == o.BranchColor &&
		c.RainbowMode == o.RainbowMode &&
		c.RainbowStart == o.RainbowStart &&
		c.RainbowEnd == o.RainbowEnd
}
