package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/fractal-clock/clock"
	"github.com/lixenwraith/fractal-clock/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fractal-clock: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath     string
		debug       bool
		startPaused bool
	)

	cmd := &cobra.Command{
		Use:          "fractal-clock",
		Short:        "Animated fractal clock in the terminal",
		Long:         "fractal-clock renders three analog clock hands whose tips recursively spawn scaled, rotated copies of themselves, producing a self-similar branching pattern animated in real time.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfgPath, debug, startPaused)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file path (default: user config dir)")
	cmd.Flags().BoolVar(&debug, "debug", false, "write debug logs to logs/fractal-clock.log")
	cmd.Flags().BoolVar(&startPaused, "paused", false, "start with the animation paused")

	return cmd
}

func run(cfgPath string, debug, startPaused bool) error {
	if cfgPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		cfgPath = p
	}

	logger, logFile := setupLogging(debug)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		// A corrupt config should not brick the clock; fall back to defaults
		logger.Warn("config load failed, using defaults", "err", err)
		cfg = clock.DefaultConfig()
	}
	if startPaused {
		cfg.Paused = true
	}

	app, err := newApp(cfg, cfgPath, logger)
	if err != nil {
		return err
	}
	defer app.cleanup()

	app.run()

	if err := config.Save(cfgPath, app.engine.Config()); err != nil {
		logger.Warn("config save failed", "err", err)
	}
	return nil
}
