package render

import "fmt"

// RGBA is a 24-bit color with an 8-bit alpha channel
type RGBA struct {
	R, G, B, A uint8
}

// Predefined colors
var (
	Black = RGBA{0, 0, 0, 255}
	White = RGBA{255, 255, 255, 255}
	Red   = RGBA{255, 0, 0, 255}
	Blue  = RGBA{0, 0, 255, 255}
)

// NewRGB returns an opaque color
func NewRGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// Equal returns true if all channels match
func (c RGBA) Equal(other RGBA) bool {
	return c == other
}

// MarshalText encodes the color as #rrggbbaa for TOML/JSON round-trips
func (c RGBA) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)), nil
}

// UnmarshalText decodes #rrggbb or #rrggbbaa; missing alpha defaults to opaque
func (c *RGBA) UnmarshalText(text []byte) error {
	s := string(text)
	var r, g, b, a uint8
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return fmt.Errorf("parse color %q: %w", s, err)
		}
		a = 255
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return fmt.Errorf("parse color %q: %w", s, err)
		}
	default:
		return fmt.Errorf("parse color %q: want #rrggbb or #rrggbbaa", s)
	}
	*c = RGBA{R: r, G: g, B: b, A: a}
	return nil
}
