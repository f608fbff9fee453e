package csscolor

import (
	"log/slog"

	"github.com/kovidgoyal/csscolor/internal/logging"
)

// SetLogger configures the logger for csscolor and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
// SetLogger is safe for concurrent use.
//
// Records are emitted at [slog.LevelDebug] when a channel value is clamped
// during construction. For example:
//
//	csscolor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the logger currently in use.
func Logger() *slog.Logger {
	return logging.Logger()
}
