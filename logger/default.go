package logger

import (
	"fmt"
	"os"

	"github.com/mordilloSan/go-console-logger/platform"
)

// std is the package default logger used by the package-level functions.
var std = New(DefaultConfig())

// DefaultConfig returns the configuration of the package default logger:
// the detected platform plus the LOGGER_* environment variables.
func DefaultConfig() Config {
	cfg := Config{Platform: platform.Detect()}
	envCfg, err := LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
	}
	return envCfg.Apply(cfg)
}

// Init reconfigures the package default logger in place. Handles obtained
// from NewScoped before the call follow the new configuration.
func Init(config Config) {
	std.Reconfigure(config)
}

// Default returns the package default logger.
func Default() *Logger {
	return std
}

// NewScoped returns a handle bound to scope that shares the default logger's level.
func NewScoped(scope string) *Logger {
	return Default().Scoped(scope)
}

// SetLevel sets the level shared by the default logger and every handle scoped from it.
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// Trace logs args at trace level on the default logger.
func Trace(args ...any) { Default().Log(TraceLevel, args...) }

// Debug logs args at debug level on the default logger.
func Debug(args ...any) { Default().Log(DebugLevel, args...) }

// Info logs args at info level on the default logger.
func Info(args ...any) { Default().Log(InfoLevel, args...) }

// Warn logs args at warn level on the default logger.
func Warn(args ...any) { Default().Log(WarnLevel, args...) }

// Error logs args at error level on the default logger.
func Error(args ...any) { Default().Log(ErrorLevel, args...) }

// Tracef logs a formatted trace message on the default logger.
func Tracef(format string, v ...any) { Default().logf(TraceLevel, format, v...) }

// Debugf logs a formatted debug message on the default logger.
func Debugf(format string, v ...any) { Default().logf(DebugLevel, format, v...) }

// Infof logs a formatted informational message on the default logger.
func Infof(format string, v ...any) { Default().logf(InfoLevel, format, v...) }

// Warnf logs a formatted warning message on the default logger.
func Warnf(format string, v ...any) { Default().logf(WarnLevel, format, v...) }

// Errorf logs a formatted error message on the default logger.
func Errorf(format string, v ...any) { Default().logf(ErrorLevel, format, v...) }
