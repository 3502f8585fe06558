package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/fractal-clock/clock"
	"github.com/lixenwraith/fractal-clock/render"
	"github.com/lixenwraith/fractal-clock/vmath"
)

func TestCanvasDoublesVerticalResolution(t *testing.T) {
	c := newCanvas(80, 24)
	assert.Equal(t, 80, c.width)
	assert.Equal(t, 48, c.height)

	clip := c.clipRect()
	assert.Equal(t, 80.0, clip.Width())
	assert.Equal(t, 48.0, clip.Height())
}

func TestCanvasDrawSegmentPlotsLine(t *testing.T) {
	c := newCanvas(10, 5)
	c.clear(render.Black)

	green := render.NewRGB(0, 255, 0)
	c.drawSegment(clock.Segment{
		A:     vmath.Vec2{X: 0, Y: 0},
		B:     vmath.Vec2{X: 9, Y: 9},
		Color: green,
		Width: 1,
	})

	// Diagonal endpoints are lit
	assert.Equal(t, green, c.pix[0])
	assert.Equal(t, green, c.pix[9*c.width+9])

	// Something between them is lit too
	lit := 0
	for _, p := range c.pix {
		if p != render.Black {
			lit++
		}
	}
	assert.GreaterOrEqual(t, lit, 10)
}

func TestCanvasDrawSegmentClipsOutOfBounds(t *testing.T) {
	c := newCanvas(10, 5)
	c.clear(render.Black)

	// Must not panic on segments reaching outside the pixel grid
	c.drawSegment(clock.Segment{
		A:     vmath.Vec2{X: -20, Y: -3},
		B:     vmath.Vec2{X: 40, Y: 12},
		Color: render.White,
		Width: 3,
	})
}

func TestCanvasAlphaBlendsAgainstBackground(t *testing.T) {
	c := newCanvas(4, 2)
	c.clear(render.Black)

	c.drawSegment(clock.Segment{
		A:     vmath.Vec2{X: 1, Y: 1},
		B:     vmath.Vec2{X: 1, Y: 1},
		Color: render.RGBA{200, 100, 50, 128},
		Width: 1,
	})

	got := c.pix[1*c.width+1]
	require.NotEqual(t, render.Black, got)
	// Half-alpha over black lands near half brightness
	assert.InDelta(t, 100, int(got.R), 2)
	assert.InDelta(t, 50, int(got.G), 2)
}

func TestCanvasResizeResetsBuffer(t *testing.T) {
	c := newCanvas(10, 5)
	c.drawSegment(clock.Segment{A: vmath.Vec2{X: 2, Y: 2}, B: vmath.Vec2{X: 2, Y: 2}, Color: render.White, Width: 1})

	c.resize(20, 10)
	assert.Equal(t, 20*20, len(c.pix))
	for _, p := range c.pix {
		assert.Equal(t, render.RGBA{}, p)
	}
}

func TestCanvasResizeFloorsAtOne(t *testing.T) {
	c := newCanvas(0, -3)
	assert.Equal(t, 1, c.cells)
	assert.Equal(t, 1, c.rows)
}
