package clock

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandsAtMidnight(t *testing.T) {
	hands := Hands(0, 0.75)

	// All three hands point straight up at t=0
	for i, h := range hands {
		assert.InDelta(t, -math.Pi/2, h.Angle, 1e-12, "hand %d angle", i)
		assert.InDelta(t, 0, h.Vec.X, 1e-12, "hand %d x", i)
	}

	assert.InDelta(t, -0.75, hands[0].Vec.Y, 1e-12)
	assert.InDelta(t, -0.75, hands[1].Vec.Y, 1e-12)
	assert.InDelta(t, -0.5, hands[2].Vec.Y, 1e-12)
}

func TestHandsDeterministic(t *testing.T) {
	a := Hands(12345.678, 0.8)
	b := Hands(12345.678, 0.8)
	require.Equal(t, a, b)
}

func TestHandsQuarterPeriods(t *testing.T) {
	tests := []struct {
		name      string
		timeOfDay float64
		hand      int
		wantAngle float64
	}{
		{"15s points right", 15, 0, 0},
		{"30s points down", 30, 0, math.Pi / 2},
		{"45s points left", 45, 0, math.Pi},
		{"15min points right", 900, 1, 0},
		{"3h points right", 3 * 3600, 2, 0},
		{"6h points down", 6 * 3600, 2, math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hands := Hands(tt.timeOfDay, 0.75)
			got := hands[tt.hand].Angle
			// Angles are equivalent modulo 2π
			diff := math.Mod(got-tt.wantAngle+3*math.Pi, 2*math.Pi) - math.Pi
			assert.InDelta(t, 0, diff, 1e-9)
		})
	}
}

func TestHandsWraparound(t *testing.T) {
	// The second hand just before midnight must nearly coincide with the
	// hand at midnight; no discontinuity at the day boundary
	before := Hands(86399.9999, 0.75)
	after := Hands(0, 0.75)

	assert.InDelta(t, after[0].Vec.X, before[0].Vec.X, 1e-3)
	assert.InDelta(t, after[0].Vec.Y, before[0].Vec.Y, 1e-3)
}

func TestHandRotorsScaleAndAngle(t *testing.T) {
	hands := Hands(15, 0.75) // second hand at angle 0, hour near -π/2
	rotors := handRotors(hands)

	// Rotor scale equals the generating hand's length
	assert.InDelta(t, hands[0].Length, rotors[0].Scale(), 1e-12)
	assert.InDelta(t, hands[1].Length, rotors[1].Scale(), 1e-12)
}

func TestHandRotorsAtMidnight(t *testing.T) {
	// At t=0 all hands share one angle, so each rotor reduces to a π
	// rotation scaled by the hand length: applying it to a vector flips and
	// shrinks it
	hands := Hands(0, 0.75)
	rotors := handRotors(hands)

	v := hands[0].Vec
	flipped := rotors[0].Apply(v)
	assert.InDelta(t, -v.X*0.75, flipped.X, 1e-12)
	assert.InDelta(t, -v.Y*0.75, flipped.Y, 1e-12)
}
