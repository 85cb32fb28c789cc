// Package logging sets up the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a text slog.Logger writing to w, at debug level when
// debug is set. Passing nil for w defaults to stderr.
func New(w io.Writer, debug bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
