package svg

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silent drops every record. Enabled reports false, so
// callers never format the message.
type silent struct{}

func (silent) Enabled(context.Context, slog.Level) bool  { return false }
func (silent) Handle(context.Context, slog.Record) error { return nil }
func (silent) WithAttrs([]slog.Attr) slog.Handler        { return silent{} }
func (silent) WithGroup(string) slog.Handler             { return silent{} }

var current atomic.Pointer[slog.Logger]

func init() { current.Store(slog.New(silent{})) }

// SetLogger routes the diagnostics of the document builders
// (this package and scene) to `l`. Documents are built silently
// until it is called, and a nil `l` switches logging off again.
//
// Debug records report canvas flips and saved files.
// Warn records report scene entries skipped in WarnErrorMode.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(silent{})
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger.
// It may be used from several goroutines.
func Logger() *slog.Logger { return current.Load() }
