package genji

import (
	"log/slog"

	"github.com/genji-engine/genji/internal/logging"
)

// SetLogger configures the logger for genji and all its sub-packages.
// By default, genji produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by genji:
//   - [slog.LevelDebug]: internal diagnostics (draw counts, buffer sizes)
//   - [slog.LevelInfo]: important lifecycle events (window created, shaders compiled)
//   - [slog.LevelWarn]: non-fatal issues (audio playback failure, missing glyphs)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	genji.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	genji.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// Logger returns the current logger used by genji.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
