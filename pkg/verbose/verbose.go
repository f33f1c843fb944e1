// Package verbose provides debug logging for westupdate.
//
// Logging is off by default and is switched on by the --verbose flag. Messages
// are written through a zap logger with a console encoder to stderr, so they
// never mix with the key=value result lines on stdout.
package verbose

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
	logger            = zap.NewNop()
)

// Enable turns on verbose logging.
//
// The logger is rebuilt against the current writer, so messages logged after
// Enable returns are visible.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
	logger = newLogger(writer)
}

// Disable turns off verbose logging and replaces the logger with a no-op one.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
	logger = zap.NewNop()
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// A nil writer is ignored. When logging is already enabled the logger is
// rebuilt so subsequent messages go to the new writer.
//
// Parameters:
//   - w: The io.Writer to use for output
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		return
	}
	writer = w
	if enabled {
		logger = newLogger(w)
	}
}

// Logger returns the current logger. It is a no-op logger while verbose
// logging is disabled.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs a message with structured fields at debug level.
//
// Parameters:
//   - msg: The message to log
//   - fields: Structured context, e.g. zap.String("repo_path", key)
func Debug(msg string, fields ...zap.Field) {
	Logger().Debug(msg, fields...)
}

// Printf logs a formatted debug message.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Arguments to format into the string
func Printf(format string, args ...any) {
	Logger().Sugar().Debugf(format, args...)
}

// Infof logs a formatted informational message.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Arguments to format into the string
func Infof(format string, args ...any) {
	Logger().Sugar().Infof(format, args...)
}

// Sync flushes buffered log entries. Errors from syncing a terminal are not
// meaningful and are dropped.
func Sync() {
	_ = Logger().Sync()
}

// newLogger builds a console logger at debug level without timestamps or
// caller info, writing to w.
func newLogger(w io.Writer) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
