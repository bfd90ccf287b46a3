// Package debug provides conditional debug logging for picbook.
//
// Debug logging is enabled by setting the PICBOOK_DEBUG environment variable
// or by passing --debug:
//
//	PICBOOK_DEBUG=1 picbook
//
// The TUI owns the terminal, so set PICBOOK_DEBUG_FILE to send the log to a
// file instead of stderr:
//
//	PICBOOK_DEBUG=1 PICBOOK_DEBUG_FILE=/tmp/picbook.log picbook
//
// When disabled (default), all debug functions are no-ops.
package debug

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	enabled bool
	logger  *zap.SugaredLogger
)

func init() {
	if os.Getenv("PICBOOK_DEBUG") != "" {
		SetEnabled(true)
	}
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	return enabled
}

// SetEnabled turns debug logging on or off, building the logger on first use.
func SetEnabled(e bool) {
	enabled = e
	if e && logger == nil {
		logger = newLogger()
	}
}

// SetOutput enables logging to w. Mostly useful in tests.
func SetOutput(w io.Writer) {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	logger = zap.New(core).Named("picbook").Sugar()
	enabled = true
}

func newLogger() *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if path := os.Getenv("PICBOOK_DEBUG_FILE"); path != "" {
		cfg.OutputPaths = []string{path}
	}

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewExample()
	}
	return l.Named("picbook").Sugar()
}

// Log writes a debug message if debug logging is enabled.
// Uses printf-style formatting.
func Log(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Debugf(format, args...)
}

// LogTiming writes a timing message if debug logging is enabled.
func LogTiming(name string, d time.Duration) {
	if !enabled {
		return
	}
	logger.Debugw("timing", "op", name, "took", d)
}

// LogIf writes a debug message only if the condition is true.
func LogIf(cond bool, format string, args ...any) {
	if !enabled || !cond {
		return
	}
	logger.Debugf(format, args...)
}

// LogEnterExit logs function entry and exit with timing.
//
//	func myFunc() {
//	    defer debug.LogEnterExit("myFunc")()
//	}
func LogEnterExit(name string) func() {
	if !enabled {
		return func() {}
	}
	logger.Debugf("-> %s", name)
	start := time.Now()
	return func() {
		logger.Debugf("<- %s (%v)", name, time.Since(start))
	}
}

// Dump logs a value with its type.
func Dump(name string, v any) {
	if !enabled {
		return
	}
	logger.Debugf("%s: %T = %+v", name, v, v)
}

// Sync flushes buffered log entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
