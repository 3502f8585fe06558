package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngled(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  Vec2
	}{
		{"right", 0, Vec2{1, 0}},
		{"down", math.Pi / 2, Vec2{0, 1}},
		{"up", -math.Pi / 2, Vec2{0, -1}},
		{"left", math.Pi, Vec2{-1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Angled(tt.angle)
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
		})
	}
}

func TestRotorMatchesRotateThenScale(t *testing.T) {
	v := Vec2{X: 0.3, Y: -0.8}
	angle := 1.234
	scale := 0.75

	rotated := Vec2{
		X: v.X*math.Cos(angle) - v.Y*math.Sin(angle),
		Y: v.X*math.Sin(angle) + v.Y*math.Cos(angle),
	}.Scale(scale)

	got := NewRotor(angle, scale).Apply(v)
	assert.InDelta(t, rotated.X, got.X, 1e-12)
	assert.InDelta(t, rotated.Y, got.Y, 1e-12)
}

func TestRotorScaleShrinksMagnitude(t *testing.T) {
	v := Vec2{X: 1, Y: 0}
	r := NewRotor(0.5, 0.75)

	// Each application multiplies magnitude by the scale factor
	mag := v.Magnitude()
	for i := 0; i < 5; i++ {
		v = r.Apply(v)
		mag *= 0.75
		assert.InDelta(t, mag, v.Magnitude(), 1e-12)
	}
}

func TestRotorCompose(t *testing.T) {
	a := NewRotor(0.4, 0.9)
	b := NewRotor(-1.1, 0.5)
	v := Vec2{X: -0.2, Y: 0.7}

	sequential := b.Apply(a.Apply(v))
	composed := a.Compose(b).Apply(v)

	assert.InDelta(t, sequential.X, composed.X, 1e-12)
	assert.InDelta(t, sequential.Y, composed.Y, 1e-12)
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(5, 5, 15, 15), true},
		{"contained", NewRect(2, 2, 4, 4), true},
		{"touching edge", NewRect(10, 0, 20, 10), true},
		{"disjoint right", NewRect(11, 0, 20, 10), false},
		{"disjoint below", NewRect(0, 11, 10, 20), false},
		{"degenerate point inside", RectFromPoints(Vec2{3, 3}, Vec2{3, 3}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base))
		})
	}
}

func TestRectFromPointsNormalizesOrder(t *testing.T) {
	r := RectFromPoints(Vec2{5, 1}, Vec2{2, 7})
	assert.Equal(t, Vec2{2, 1}, r.Min)
	assert.Equal(t, Vec2{5, 7}, r.Max)
}

func TestSquareProportions(t *testing.T) {
	wide := NewRect(0, 0, 800, 600)
	assert.InDelta(t, 800.0/600.0, wide.SquareProportions().X, 1e-12)
	assert.InDelta(t, 1.0, wide.SquareProportions().Y, 1e-12)

	tall := NewRect(0, 0, 600, 800)
	assert.InDelta(t, 1.0, tall.SquareProportions().X, 1e-12)
	assert.InDelta(t, 800.0/600.0, tall.SquareProportions().Y, 1e-12)
}

func TestRectTransform(t *testing.T) {
	from := RectFromCenterSize(Vec2{}, Vec2{X: 4, Y: 2})
	to := NewRect(0, 0, 400, 200)
	tr := NewRectTransform(from, to)

	center := tr.Apply(Vec2{})
	require.InDelta(t, 200.0, center.X, 1e-9)
	require.InDelta(t, 100.0, center.Y, 1e-9)

	corner := tr.Apply(Vec2{X: -2, Y: -1})
	assert.InDelta(t, 0.0, corner.X, 1e-9)
	assert.InDelta(t, 0.0, corner.Y, 1e-9)

	opposite := tr.Apply(Vec2{X: 2, Y: 1})
	assert.InDelta(t, 400.0, opposite.X, 1e-9)
	assert.InDelta(t, 200.0, opposite.Y, 1e-9)
}
