package pkg

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Component identifies a subsystem for log filtering.
type Component string

// Component identifiers.
const (
	ComponentStr   Component = "str"
	ComponentFrame Component = "frame"
	ComponentCLI   Component = "cli"
)

// LogFormat specifies the output format for logging.
type LogFormat int

// Log format options.
const (
	LogFormatText LogFormat = iota // Text format (default)
	LogFormatJSON                  // JSON format
)

var (
	// DefaultLogger is the logger used by the package-level Log functions.
	DefaultLogger *slog.Logger

	// logLevel controls the minimum log level.
	logLevel = new(slog.LevelVar)

	// logOutput is where SetLogFormat points new default loggers.
	logOutput io.Writer = os.Stderr

	// logMutex protects logger configuration.
	logMutex sync.RWMutex
)

func init() {
	logLevel.Set(slog.LevelWarn)
	DefaultLogger = slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

// SetLogLevel sets the minimum log level for all library logging.
func SetLogLevel(level slog.Level) {
	logMutex.Lock()
	defer logMutex.Unlock()
	logLevel.Set(level)
}

// GetLogLevel returns the current minimum log level.
func GetLogLevel() slog.Level {
	logMutex.RLock()
	defer logMutex.RUnlock()
	return logLevel.Level()
}

// ParseLogLevel converts a level name (debug, info, warn, error) to a
// [slog.Level]. Unknown names yield [slog.LevelWarn] and false.
func ParseLogLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelWarn, false
	}
}

// SetLogger replaces the default logger with a custom logger.
func SetLogger(logger *slog.Logger) {
	logMutex.Lock()
	defer logMutex.Unlock()
	DefaultLogger = logger
}

// SetLogOutput configures the default logger to write to w in the given
// format, using the current log level.
func SetLogOutput(w io.Writer, format LogFormat) {
	logMutex.Lock()
	defer logMutex.Unlock()
	logOutput = w
	DefaultLogger = newHandlerLogger(w, format, &slog.HandlerOptions{Level: logLevel})
}

// SetLogFormat configures the default logger to use the specified format.
// The logger keeps its current output and level.
func SetLogFormat(format LogFormat) {
	logMutex.Lock()
	defer logMutex.Unlock()
	DefaultLogger = newHandlerLogger(logOutput, format, &slog.HandlerOptions{Level: logLevel})
}

// NewLogger creates a new text logger writing to the given writer.
func NewLogger(w io.Writer, opts *slog.HandlerOptions) *slog.Logger {
	if opts == nil {
		opts = &slog.HandlerOptions{Level: logLevel}
	}
	return newHandlerLogger(w, LogFormatText, opts)
}

// NewJSONLogger creates a new JSON logger writing to the given writer.
func NewJSONLogger(w io.Writer, opts *slog.HandlerOptions) *slog.Logger {
	if opts == nil {
		opts = &slog.HandlerOptions{Level: logLevel}
	}
	return newHandlerLogger(w, LogFormatJSON, opts)
}

func newHandlerLogger(w io.Writer, format LogFormat, opts *slog.HandlerOptions) *slog.Logger {
	if format == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// LogEnabled reports whether a record at level would be emitted. Callers on
// hot paths use it to skip building attributes.
func LogEnabled(level slog.Level) bool {
	return current().Enabled(context.Background(), level)
}

// LogDebug logs a debug message with the given component.
func LogDebug(component Component, msg string, args ...any) {
	logAt(slog.LevelDebug, component, msg, args)
}

// LogInfo logs an info message with the given component.
func LogInfo(component Component, msg string, args ...any) {
	logAt(slog.LevelInfo, component, msg, args)
}

// LogWarn logs a warning message with the given component.
func LogWarn(component Component, msg string, args ...any) {
	logAt(slog.LevelWarn, component, msg, args)
}

// LogError logs an error message with the given component.
func LogError(component Component, msg string, args ...any) {
	logAt(slog.LevelError, component, msg, args)
}

func current() *slog.Logger {
	logMutex.RLock()
	defer logMutex.RUnlock()
	return DefaultLogger
}

func logAt(level slog.Level, component Component, msg string, args []any) {
	logger := current()
	if !logger.Enabled(context.Background(), level) {
		return
	}
	logger.Log(context.Background(), level, msg,
		append([]any{"component", string(component)}, args...)...)
}
