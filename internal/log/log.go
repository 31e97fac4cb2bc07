// Package log provides the logging infrastructure for the story server.
//
// It wraps log/slog behind small factory functions:
//   - New / NewWithWriter create configured text or JSON loggers
//   - NewWithFile additionally tees output into a log file, matching the
//     server's historical console-plus-file logging
//   - NewNop discards everything (tests only)
//
// Loggers are injected via constructors, not globals; components add context
// with logger.With("component", ...).
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is a type alias for *slog.Logger. Components accept log.Logger as a
// dependency and keep full access to the slog ecosystem.
type Logger = *slog.Logger

// Config defines logger configuration options.
type Config struct {
	// Level sets the minimum log level. Default: slog.LevelInfo
	Level slog.Level

	// JSON enables JSON format output. Default: false (text format)
	JSON bool

	// AddSource adds source file information to log entries. Default: false
	AddSource bool
}

// ParseLevel maps a configuration string ("debug", "info", "warn", "error",
// case-insensitive) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// New creates a logger writing to os.Stderr.
func New(cfg Config) Logger {
	return NewWithWriter(os.Stderr, cfg)
}

// NewWithWriter creates a logger that writes to the given writer. Useful for
// tests that want to inspect output.
func NewWithWriter(w io.Writer, cfg Config) Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// NewWithFile creates a logger that writes to both os.Stderr and the named
// file (created if absent, appended to otherwise). The returned closer owns
// the file handle; callers close it on shutdown.
func NewWithFile(path string, cfg Config) (Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return NewWithWriter(io.MultiWriter(os.Stderr, f), cfg), f, nil
}

// NewNop creates a logger that discards all output. Tests only; production
// code always uses New, NewWithWriter, or NewWithFile.
func NewNop() Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
