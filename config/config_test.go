package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/fractal-clock/clock"
	"github.com/lixenwraith/fractal-clock/render"
	"github.com/lixenwraith/fractal-clock/vmath"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, clock.DefaultConfig(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fractal-clock", "config.toml")

	cfg := clock.DefaultConfig()
	cfg.Paused = true
	cfg.Zoom = 0.33
	cfg.Depth = 7
	cfg.LengthFactor = 0.6
	cfg.LuminanceFactor = 0.85
	cfg.WidthFactor = 0.5
	cfg.BranchColor = render.NewRGB(200, 30, 180)
	cfg.HandColor = render.RGBA{R: 10, G: 20, B: 30, A: 200}
	cfg.RainbowMode = false
	cfg.RainbowStart = render.NewRGB(1, 2, 3)
	cfg.RainbowEnd = render.RGBA{R: 4, G: 5, B: 6, A: 7}
	cfg.Fullscreen = true
	cfg.TransparentBackground = false
	cfg.TickSound = true

	require.NoError(t, Save(path, cfg))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestLoadCorruptFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("zoom = [not toml"), 0o644))

	cfg, err := Load(path)
	assert.Error(t, err)
	// Defaults still come back so the caller can keep running
	assert.Equal(t, clock.DefaultConfig(), cfg)
}

func TestRoundTripPreservesRenderOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	clip := vmath.NewRect(0, 0, 640, 480)
	at := time.Date(2026, 8, 28, 9, 41, 30, 0, time.Local)

	cfg := clock.DefaultConfig()
	cfg.Paused = true
	cfg.Depth = 6
	cfg.LuminanceFactor = 0.9
	cfg.RainbowMode = true

	before := clock.New(cfg, clockwork.NewFakeClockAt(at))
	want := append([]clock.Segment(nil), before.Render(clip)...)

	require.NoError(t, Save(path, cfg))
	restored, err := Load(path)
	require.NoError(t, err)

	after := clock.New(restored, clockwork.NewFakeClockAt(at))
	got := append([]clock.Segment(nil), after.Render(clip)...)

	assert.Equal(t, want, got)
}
