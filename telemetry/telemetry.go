// Package telemetry provides the decoder's structured, rotating-file
// logger: a thin wrapper over log/slog backed by a lumberjack.Logger, in
// the style of the ambient logger most service-shaped repos in this
// module's lineage carry alongside their core algorithm.
//
// A nil *Logger is safe to call Debug/Info/Warn/Error on: every method
// degrades to a no-op (Debug/Info) or to the package-level slog default
// (Warn/Error), so decoder and match code can hold an optional Logger
// field without a nil check at every call site.
package telemetry

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps a *slog.Logger whose output goes through a rotating file
// writer.
type Logger struct {
	*slog.Logger
	rotator *lumberjack.Logger
}

// Options configures New.
type Options struct {
	// Filename is the rotating log file's path. Empty disables file
	// rotation and logs to stderr via slog's default handler instead.
	Filename string
	// MaxSizeMB is the size, in megabytes, a log file may reach before
	// it is rotated.
	MaxSizeMB int
	// MaxBackups is how many rotated files are kept.
	MaxBackups int
	// MaxAgeDays is how many days a rotated file is kept.
	MaxAgeDays int
	// Level sets the minimum level that is logged.
	Level slog.Level
}

// DefaultOptions mirrors a conservative non-server logging profile: modest
// file size, a single backup, no age-based eviction.
func DefaultOptions(filename string) Options {
	return Options{
		Filename:   filename,
		MaxSizeMB:  32,
		MaxBackups: 1,
		Level:      slog.LevelInfo,
	}
}

// New builds a Logger writing JSON-structured records through a rotating
// file, per opts. If opts.Filename is empty, it logs to the process's
// default slog handler instead (useful for tests and short-lived CLIs).
func New(opts Options) *Logger {
	if opts.Filename == "" {
		return &Logger{Logger: slog.Default()}
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}

	handler := slog.NewJSONHandler(rotator, &slog.HandlerOptions{Level: opts.Level})
	return &Logger{Logger: slog.New(handler), rotator: rotator}
}

// Close flushes and closes the underlying rotating file, if any.
func (l *Logger) Close() error {
	if l == nil || l.rotator == nil {
		return nil
	}
	return l.rotator.Close()
}

// Debug is a nil-safe wrapper: a nil Logger discards debug records
// instead of panicking.
func (l *Logger) Debug(msg string, args ...any) {
	if l != nil && l.Logger != nil {
		l.Logger.Debug(msg, args...)
	}
}

// Info is a nil-safe wrapper; see Debug.
func (l *Logger) Info(msg string, args ...any) {
	if l != nil && l.Logger != nil {
		l.Logger.Info(msg, args...)
	}
}

// Warn logs through the wrapped logger, or the package-level slog default
// if l is nil, so warnings are never silently dropped.
func (l *Logger) Warn(msg string, args ...any) {
	if l == nil || l.Logger == nil {
		slog.Warn(msg, args...)
		return
	}
	l.Logger.Warn(msg, args...)
}

// Error logs through the wrapped logger, or the package-level slog
// default if l is nil; see Warn.
func (l *Logger) Error(msg string, args ...any) {
	if l == nil || l.Logger == nil {
		slog.Error(msg, args...)
		return
	}
	l.Logger.Error(msg, args...)
}

// With returns a Logger that annotates every record with args, sharing
// the same rotator.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...), rotator: l.rotator}
}
