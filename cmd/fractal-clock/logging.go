package main

import (
	"io"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
)

const (
	logDir      = "logs"
	logFileName = "fractal-clock.log"
)

// setupLogging routes debug logs to a file so they never corrupt the
// terminal canvas. Without --debug all output is discarded.
func setupLogging(debug bool) (*charmlog.Logger, *os.File) {
	if !debug {
		return charmlog.New(io.Discard), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return charmlog.New(io.Discard), nil
	}

	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return charmlog.New(io.Discard), nil
	}

	logger := charmlog.NewWithOptions(f, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           charmlog.DebugLevel,
	})
	return logger, f
}
