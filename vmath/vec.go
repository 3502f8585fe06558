package vmath

import "math"

// Vec2 is a 2D vector or point in logical/screen space
type Vec2 struct {
	X, Y float64
}

// Angled returns a unit vector rotated by angle radians
// Angle 0 points along +X; positive angles rotate toward +Y (screen-down convention)
func Angled(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by factor
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Magnitude returns the Euclidean length
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dot returns the dot product v·o
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Angle returns the angle of the vector in radians, in (-π, π]
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
