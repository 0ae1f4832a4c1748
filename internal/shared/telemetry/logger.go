// Package telemetry emits structured JSON log lines for the resume builder.
// It is a thin facade over log/slog so call sites stay one-liners with a
// message and a field map.
package telemetry

import (
	"log/slog"
	"os"
	"sync/atomic"
)

var base atomic.Pointer[slog.Logger]

func init() {
	base.Store(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

// SetLogger swaps the backing logger. Tests use this to capture output.
func SetLogger(l *slog.Logger) {
	if l != nil {
		base.Store(l)
	}
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	base.Load().Info(msg, attrs(fields)...)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	base.Load().Warn(msg, attrs(fields)...)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	base.Load().Error(msg, attrs(fields)...)
}

func attrs(fields map[string]any) []any {
	out := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		out = append(out, slog.Any(k, v))
	}
	return out
}
