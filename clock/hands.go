package clock

import (
	"math"

	"github.com/lixenwraith/fractal-clock/vmath"
)

// Hand periods in seconds and the fixed hour hand length in logical units
const (
	secondPeriod   = 60.0
	minutePeriod   = 3600.0
	hourPeriod     = 43200.0
	hourHandLength = 0.5
)

// Hand is one clock indicator: a length, an angle, and the resulting
// displacement vector from the clock center to the hand tip.
type Hand struct {
	Length float64
	Angle  float64
	Vec    vmath.Vec2
}

func newHand(length, angle float64) Hand {
	return Hand{
		Length: length,
		Angle:  angle,
		Vec:    vmath.Angled(angle).Scale(length),
	}
}

// handAngle maps elapsed time within a period to a clock angle: zero elapsed
// points straight up (-π/2 in screen convention) and sweeps clockwise
func handAngle(timeOfDay, period float64) float64 {
	frac := math.Mod(timeOfDay, period) / period
	return 2*math.Pi*frac - math.Pi/2
}

// Hands derives the second, minute and hour hands (in that order) from a
// time-of-day sample. Pure function of its inputs; stable under wraparound.
func Hands(timeOfDay, lengthFactor float64) [3]Hand {
	return [3]Hand{
		newHand(lengthFactor, handAngle(timeOfDay, secondPeriod)),
		newHand(lengthFactor, handAngle(timeOfDay, minutePeriod)),
		newHand(hourHandLength, handAngle(timeOfDay, hourPeriod)),
	}
}

// handRotors derives the two branch generators. The hour hand supplies the
// reference frame only; each free hand becomes a rotation into its
// orientation relative to the hour hand (flipped by π) scaled by its length.
func handRotors(hands [3]Hand) [2]vmath.Rotor {
	second, minute, hour := hands[0], hands[1], hands[2]
	rotor := func(h Hand) vmath.Rotor {
		return vmath.NewRotor(h.Angle-hour.Angle+math.Pi, h.Length)
	}
	return [2]vmath.Rotor{rotor(second), rotor(minute)}
}
