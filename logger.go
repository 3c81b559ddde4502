package ggboard

import (
	"log/slog"

	"github.com/gogpu/ggboard/internal/logging"
)

// SetLogger configures the logger for ggboard and all its sub-packages.
// By default, ggboard produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by ggboard:
//   - [slog.LevelDebug]: per-frame and per-batch summaries
//   - [slog.LevelInfo]: replaced drawables, unknown ids in remove and change
//   - [slog.LevelWarn]: rejected batches, drawables skipped by a render pass
//
// Example:
//
//	ggboard.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by ggboard.
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Get()
}
