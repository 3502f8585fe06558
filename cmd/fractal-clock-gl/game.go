package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/fractal-clock/audio"
	"github.com/lixenwraith/fractal-clock/clock"
	"github.com/lixenwraith/fractal-clock/vmath"
)

// game drives the engine from ebiten's Update/Draw loop
type game struct {
	engine      *clock.Engine
	ticker      *audio.Ticker
	audioFailed bool
	showHelp    bool
}

func newGame(cfg clock.Config) *game {
	g := &game{engine: clock.New(cfg, nil)}
	if cfg.TickSound {
		g.initAudio()
	}
	return g
}

func (g *game) initAudio() {
	if g.ticker != nil || g.audioFailed {
		return
	}
	t, err := audio.NewTicker()
	if err != nil {
		g.audioFailed = true
		return
	}
	g.ticker = t
}

func (g *game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	g.engine.Advance()
	if g.engine.Config().TickSound {
		g.ticker.Tick(g.engine.TimeOfDay())
	}

	ebiten.SetFullscreen(g.engine.Config().Fullscreen)
	return nil
}

func (g *game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	cfg := g.engine.Config()
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		cfg.Paused = !cfg.Paused
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		cfg.Zoom = clampFloat(cfg.Zoom+0.05, 0.01, 1.0)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		cfg.Zoom = clampFloat(cfg.Zoom-0.05, 0.01, 1.0)
	case inpututil.IsKeyJustPressed(ebiten.KeyD) && shift:
		cfg.Depth = clampInt(cfg.Depth+1, 0, clock.MaxDepth)
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		cfg.Depth = clampInt(cfg.Depth-1, 0, clock.MaxDepth)
	case inpututil.IsKeyJustPressed(ebiten.KeyL) && shift:
		cfg.LengthFactor = clampFloat(cfg.LengthFactor+0.05, 0, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		cfg.LengthFactor = clampFloat(cfg.LengthFactor-0.05, 0, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyU) && shift:
		cfg.LuminanceFactor = clampFloat(cfg.LuminanceFactor+0.05, 0, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		cfg.LuminanceFactor = clampFloat(cfg.LuminanceFactor-0.05, 0, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyW) && shift:
		cfg.WidthFactor = clampFloat(cfg.WidthFactor+0.05, 0, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		cfg.WidthFactor = clampFloat(cfg.WidthFactor-0.05, 0, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		cfg.RainbowMode = !cfg.RainbowMode
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		cfg.TickSound = !cfg.TickSound
		if cfg.TickSound {
			g.initAudio()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		cfg.Fullscreen = !cfg.Fullscreen
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		cfg.TransparentBackground = !cfg.TransparentBackground
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.showHelp = !g.showHelp
	case inpututil.IsKeyJustPressed(ebiten.Key0):
		paused := cfg.Paused
		cfg = clock.DefaultConfig()
		cfg.Paused = paused
	}

	g.engine.SetConfig(cfg)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	cfg := g.engine.Config()
	if !cfg.TransparentBackground {
		screen.Fill(backgroundFill)
	}

	bounds := screen.Bounds()
	clip := vmath.NewRect(0, 0, float64(bounds.Dx()), float64(bounds.Dy()))

	for _, seg := range g.engine.Render(clip) {
		width := float32(seg.Width)
		if width < 1 {
			width = 1
		}
		vector.StrokeLine(screen,
			float32(seg.A.X), float32(seg.A.Y),
			float32(seg.B.X), float32(seg.B.Y),
			width,
			color.RGBA{R: seg.Color.R, G: seg.Color.G, B: seg.Color.B, A: seg.Color.A},
			true)
	}

	msg := fmt.Sprintf("%s  %d lines  %s/frame", g.engine.TimeString(), g.engine.LineCount(), g.engine.PaintTime().Round(10*time.Microsecond))
	if cfg.Paused {
		msg += "  PAUSED"
	}
	if g.showHelp {
		msg += helpText
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	return outsideWidth, outsideHeight
}

const helpText = "\nspace pause  -/+ zoom  d/D depth  l/L length  u/U luminance  w/W width\nr rainbow  t tick  f fullscreen  b background  0 reset  q quit"

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
