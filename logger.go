package tinykit

import (
	"log/slog"

	"github.com/gogpu/tinykit/internal/logx"
)

// SetLogger configures the logger for tinykit and all its sub-packages.
// By default, tinykit produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// tinykit only logs at [slog.LevelDebug]: values ignored by a set because
// they are outside its domain, ring elements overwritten by PushForce, and
// color temperature estimates clamped to the supported range.
//
// Example:
//
//	tinykit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logx.SetLogger(l)
}

// Logger returns the current logger used by tinykit.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logx.Logger()
}
