package main

import (
	"fmt"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fractal-clock/audio"
	"github.com/lixenwraith/fractal-clock/clock"
	"github.com/lixenwraith/fractal-clock/render"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// app owns the terminal screen, the engine and the frame loop
type app struct {
	screen  tcell.Screen
	canvas  *canvas
	engine  *clock.Engine
	ticker  *audio.Ticker
	logger  *charmlog.Logger
	cfgPath string

	showOverlay bool
	audioFailed bool
}

func newApp(cfg clock.Config, cfgPath string, logger *charmlog.Logger) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	cols, rows := screen.Size()
	a := &app{
		screen:  screen,
		canvas:  newCanvas(cols, rows),
		engine:  clock.New(cfg, nil),
		logger:  logger,
		cfgPath: cfgPath,
	}

	if cfg.TickSound {
		a.initAudio()
	}

	logger.Debug("started", "cols", cols, "rows", rows, "config", cfgPath)
	return a, nil
}

// initAudio is non-fatal; the clock runs silently if the speaker fails
func (a *app) initAudio() {
	if a.ticker != nil || a.audioFailed {
		return
	}
	t, err := audio.NewTicker()
	if err != nil {
		a.audioFailed = true
		a.logger.Warn("audio init failed", "err", err)
		return
	}
	a.ticker = t
}

func (a *app) cleanup() {
	a.ticker.Close()
	a.screen.Fini()
}

func (a *app) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			a.engine.Advance()
			if a.engine.Config().TickSound {
				a.ticker.Tick(a.engine.TimeOfDay())
			}
			a.draw()
		}
	}
}

func (a *app) draw() {
	a.canvas.clear(render.Black)
	for _, seg := range a.engine.Render(a.canvas.clipRect()) {
		a.canvas.drawSegment(seg)
	}
	a.canvas.blit(a.screen)

	a.drawStatus()
	if a.showOverlay {
		a.drawOverlay()
	}
	a.screen.Show()
}

func (a *app) drawStatus() {
	cfg := a.engine.Config()
	status := fmt.Sprintf(" %s | %d lines | %s/frame", a.engine.TimeString(), a.engine.LineCount(), a.engine.PaintTime().Round(10*time.Microsecond))
	if cfg.Paused {
		status += " | PAUSED"
	}
	a.drawText(0, a.canvas.rows-1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack))
}

func (a *app) drawOverlay() {
	cfg := a.engine.Config()
	lines := []string{
		" settings (tab to close) ",
		fmt.Sprintf(" [space] paused      %v", cfg.Paused),
		fmt.Sprintf(" [-/+]   zoom        %.2f", cfg.Zoom),
		fmt.Sprintf(" [d/D]   depth       %d", cfg.Depth),
		fmt.Sprintf(" [l/L]   length      %.2f", cfg.LengthFactor),
		fmt.Sprintf(" [u/U]   luminance   %.2f", cfg.LuminanceFactor),
		fmt.Sprintf(" [w/W]   width       %.2f", cfg.WidthFactor),
		fmt.Sprintf(" [r]     rainbow     %v", cfg.RainbowMode),
		fmt.Sprintf(" [t]     tick sound  %v", cfg.TickSound),
		" [0]     reset defaults",
		" [q]     quit",
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(26, 27, 38))
	for i, line := range lines {
		a.drawText(1, 1+i, line, style)
	}
}

func (a *app) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

// handleEvent processes one input or resize event; returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyTab {
			a.showOverlay = !a.showOverlay
			return true
		}
		if ev.Key() == tcell.KeyRune {
			return a.handleRune(ev.Rune())
		}

	case *tcell.EventResize:
		cols, rows := a.screen.Size()
		a.canvas.resize(cols, rows)
		a.screen.Sync()
	}
	return true
}

func (a *app) handleRune(r rune) bool {
	cfg := a.engine.Config()

	switch r {
	case 'q':
		return false
	case ' ':
		cfg.Paused = !cfg.Paused
	case '+', '=':
		cfg.Zoom = clampFloat(cfg.Zoom+0.05, 0.01, 1.0)
	case '-':
		cfg.Zoom = clampFloat(cfg.Zoom-0.05, 0.01, 1.0)
	case 'd':
		cfg.Depth = clampInt(cfg.Depth-1, 0, clock.MaxDepth)
	case 'D':
		cfg.Depth = clampInt(cfg.Depth+1, 0, clock.MaxDepth)
	case 'l':
		cfg.LengthFactor = clampFloat(cfg.LengthFactor-0.05, 0, 1)
	case 'L':
		cfg.LengthFactor = clampFloat(cfg.LengthFactor+0.05, 0, 1)
	case 'u':
		cfg.LuminanceFactor = clampFloat(cfg.LuminanceFactor-0.05, 0, 1)
	case 'U':
		cfg.LuminanceFactor = clampFloat(cfg.LuminanceFactor+0.05, 0, 1)
	case 'w':
		cfg.WidthFactor = clampFloat(cfg.WidthFactor-0.05, 0, 1)
	case 'W':
		cfg.WidthFactor = clampFloat(cfg.WidthFactor+0.05, 0, 1)
	case 'r':
		cfg.RainbowMode = !cfg.RainbowMode
	case 't':
		cfg.TickSound = !cfg.TickSound
		if cfg.TickSound {
			a.initAudio()
		}
	case '0':
		paused := cfg.Paused
		cfg = clock.DefaultConfig()
		cfg.Paused = paused
	default:
		return true
	}

	a.engine.SetConfig(cfg)
	return true
}

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
