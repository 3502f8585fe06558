package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fractal-clock/clock"
	"github.com/lixenwraith/fractal-clock/render"
	"github.com/lixenwraith/fractal-clock/vmath"
)

// canvas rasterizes engine segments into an RGB pixel buffer blitted to the
// terminal with half-block characters: each cell carries two vertical pixels
// (upper via foreground, lower via background), doubling vertical resolution.
type canvas struct {
	cells  int // terminal columns
	rows   int // terminal rows
	width  int // pixel grid width (== cells)
	height int // pixel grid height (== rows * 2)
	pix    []render.RGBA
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{}
	c.resize(cols, rows)
	return c
}

func (c *canvas) resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c.cells = cols
	c.rows = rows
	c.width = cols
	c.height = rows * 2
	c.pix = make([]render.RGBA, c.width*c.height)
}

// clear resets every pixel to the background color
func (c *canvas) clear(bg render.RGBA) {
	for i := range c.pix {
		c.pix[i] = bg
	}
}

// clipRect returns the pixel-space clip rectangle handed to the engine
func (c *canvas) clipRect() vmath.Rect {
	return vmath.NewRect(0, 0, float64(c.width), float64(c.height))
}

// plot composites a color onto one pixel. The segment alpha blends against
// the existing pixel; crossing branches keep the brighter channel.
func (c *canvas) plot(x, y int, col render.RGBA) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := y*c.width + x
	blended := render.Blend(c.pix[i], col, float64(col.A)/255.0)
	c.pix[i] = render.Max(c.pix[i], blended)
}

// drawSegment rasterizes one line with Bresenham's algorithm. Width beyond
// one pixel is approximated by plotting the 4-neighborhood; terminal cells
// are too coarse for proper stroke geometry.
func (c *canvas) drawSegment(s clock.Segment) {
	x0, y0 := int(s.A.X), int(s.A.Y)
	x1, y1 := int(s.B.X), int(s.B.Y)
	thick := s.Width >= 2.0

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.plot(x0, y0, s.Color)
		if thick {
			c.plot(x0+1, y0, s.Color)
			c.plot(x0, y0+1, s.Color)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// blit writes the pixel buffer to the screen as half-block cells
func (c *canvas) blit(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cells; col++ {
			upper := c.pix[(row*2)*c.width+col]
			lower := c.pix[(row*2+1)*c.width+col]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(upper.R), int32(upper.G), int32(upper.B))).
				Background(tcell.NewRGBColor(int32(lower.R), int32(lower.G), int32(lower.B)))
			screen.SetContent(col, row, '▀', nil, style)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
