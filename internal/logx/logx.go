// Package logx holds the logger shared by all tinykit packages.
//
// The root package exposes SetLogger and Logger; leaf packages log through
// this package so they never import the root.
package logx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled is always false, which is what
// the Enabled guard at tinykit log sites checks.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// NewNop returns the silent default logger.
func NewNop() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr is never nil after init.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(NewNop())
}

// Logger returns the current logger.
func Logger() *slog.Logger { return loggerPtr.Load() }

// SetLogger replaces the current logger. A nil logger restores the
// silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = NewNop()
	}
	loggerPtr.Store(l)
}

// Enabled reports whether the current logger accepts records at level.
// Hot paths check it before building attributes so a disabled logger
// costs no allocations.
func Enabled(level slog.Level) bool {
	return loggerPtr.Load().Enabled(context.Background(), level)
}
