// Package log provides structured logging for matrixgen.
//
// A Logger interface backed by Go's stdlib slog keeps the generator
// testable: components take a Logger via functional options and fall back
// to the process-global default. Diagnostic output always goes to stderr
// so that step outputs on stdout stay machine-readable.
//
// Verbosity levels:
//   - ERROR (--quiet): errors only
//   - WARN (default): warnings
//   - DEBUG (--verbose): per-target resolution detail
package log

import (
	"io"
	"log/slog"
	"sync"
)

// Logger is the interface for structured logging.
// Methods match slog's signature for easy integration.
type Logger interface {
	// Debug logs at DEBUG level. Use for per-target resolution detail,
	// information only useful for troubleshooting a manifest.
	Debug(msg string, args ...any)

	// Info logs at INFO level. Use for operational context.
	Info(msg string, args ...any)

	// Warn logs at WARN level. Use for suspicious but non-fatal input,
	// like a manifest version that is not valid semver.
	Warn(msg string, args ...any)

	// Error logs at ERROR level. Use for failures that abort the run.
	Error(msg string, args ...any)

	// With returns a Logger that includes the given key-value pairs in
	// all subsequent entries.
	With(args ...any) Logger
}

type slogLogger struct {
	l *slog.Logger
}

// New creates a Logger backed by slog with the given handler.
func New(h slog.Handler) Logger {
	return &slogLogger{l: slog.New(h)}
}

// NewText creates a Logger writing human-readable lines to w, showing
// records at or above level. This is what the CLI installs as the default
// after parsing verbosity flags.
func NewText(w io.Writer, level slog.Level) Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}

type noopLogger struct{}

// NewNoop returns a Logger that discards all output.
func NewNoop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) With(...any) Logger   { return noopLogger{} }

var (
	defaultLogger Logger = noopLogger{}
	defaultMu     sync.RWMutex
)

// Default returns the global logger configured at startup.
// Returns a noop logger if SetDefault has not been called.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the global logger. Called once from main() after the
// verbosity flags are parsed.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
