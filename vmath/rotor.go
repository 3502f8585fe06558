package vmath

import "math"

// Rotor is a combined rotation+scale operator on Vec2.
// Applying it rotates a vector by the construction angle and multiplies its
// length by the construction scale. Composition of rotors is commutative.
type Rotor struct {
	C, S float64 // scale*cos(angle), scale*sin(angle)
}

// NewRotor builds a rotor for the given angle (radians) and scale factor
func NewRotor(angle, scale float64) Rotor {
	return Rotor{
		C: scale * math.Cos(angle),
		S: scale * math.Sin(angle),
	}
}

// Apply rotates and scales v
func (r Rotor) Apply(v Vec2) Vec2 {
	return Vec2{
		X: r.C*v.X - r.S*v.Y,
		Y: r.S*v.X + r.C*v.Y,
	}
}

// Compose returns a rotor equivalent to applying r then o
func (r Rotor) Compose(o Rotor) Rotor {
	return Rotor{
		C: r.C*o.C - r.S*o.S,
		S: r.S*o.C + r.C*o.S,
	}
}

// Scale returns the scale factor baked into the rotor
func (r Rotor) Scale() float64 {
	return math.Hypot(r.C, r.S)
}
