package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/fractal-clock/clock"
	"github.com/lixenwraith/fractal-clock/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fractal-clock-gl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath     string
		startPaused bool
	)

	cmd := &cobra.Command{
		Use:          "fractal-clock-gl",
		Short:        "Animated fractal clock in a desktop window",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfgPath, startPaused)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file path (default: user config dir)")
	cmd.Flags().BoolVar(&startPaused, "paused", false, "start with the animation paused")

	return cmd
}

func run(cfgPath string, startPaused bool) error {
	if cfgPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		cfgPath = p
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		cfg = clock.DefaultConfig()
	}
	if startPaused {
		cfg.Paused = true
	}

	g := newGame(cfg)

	ebiten.SetWindowTitle("Fractal Clock")
	ebiten.SetWindowSize(1280, 800)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	ebiten.SetFullscreen(cfg.Fullscreen)

	opts := &ebiten.RunGameOptions{ScreenTransparent: cfg.TransparentBackground}
	if err := ebiten.RunGameWithOptions(g, opts); err != nil {
		return err
	}

	return config.Save(cfgPath, g.engine.Config())
}

// backgroundFill is used when the transparent background is disabled
var backgroundFill = color.RGBA{R: 10, G: 10, B: 14, A: 255}
