package logger

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/mordilloSan/go-console-logger/platform"
)

// Config defines options for New and Init.
type Config struct {
	// Platform describes the host. The zero value is a server host with no build mode and no colours.
	// Default: zero Descriptor for New, platform.Detect() for the package default
	Platform platform.Descriptor
	// Console receives rendered calls.
	// Default: nil (devtools console on js, stdout elsewhere)
	Console Console
	// Encoder serializes Object arguments.
	// Default: nil (JSONEncoder)
	Encoder ObjectEncoder
	// Level is the initial minimum level name; it goes through SetLevel, so the production guard applies.
	// Default: "" (debug for development builds, info otherwise)
	Level string
	// Timestamp prefixes every call with [M/D/YYYY HH:MM:SS].
	// Default: false
	Timestamp bool
	// Clock supplies the timestamp.
	// Default: nil (time.Now)
	Clock func() time.Time
	// ErrorHandler receives console write failures.
	// Default: nil (failures are dropped)
	ErrorHandler func(error)
}

// core is the state shared by a logger and every handle scoped from it.
type core struct {
	filter    *Filter
	renderer  renderer
	console   Console
	encoder   ObjectEncoder
	clock     func() time.Time
	timestamp bool
	onError   func(error)
}

// Logger is a log handle. Handles created by Scoped share the core of their
// parent, so SetLevel and Reconfigure on any of them reach all of them.
// Thread-safe for concurrent use.
type Logger struct {
	core  *atomic.Pointer[core]
	scope string
}

// New creates an unscoped logger with its own filter state.
func New(config Config) *Logger {
	l := &Logger{core: new(atomic.Pointer[core])}
	l.core.Store(newCore(config))
	return l
}

// Reconfigure replaces the configuration of l and of every handle scoped from it.
// The level is reset from config.
func (l *Logger) Reconfigure(config Config) {
	l.core.Store(newCore(config))
}

func newCore(config Config) *core {
	c := &core{
		filter:    NewFilter(config.Platform),
		renderer:  selectRenderer(config.Platform),
		console:   config.Console,
		encoder:   config.Encoder,
		clock:     config.Clock,
		timestamp: config.Timestamp,
		onError:   config.ErrorHandler,
	}
	if c.console == nil {
		c.console = defaultConsole()
	}
	if c.encoder == nil {
		c.encoder = JSONEncoder{}
	}
	if c.clock == nil {
		c.clock = time.Now
	}
	if level, ok := ParseLevel(config.Level); ok {
		c.filter.SetLevel(level)
	}
	return c
}

// Scoped returns a handle bound to scope. It shares the level of l, so
// SetLevel on either affects both. An empty scope renders no scope badge.
func (l *Logger) Scoped(scope string) *Logger {
	return &Logger{core: l.core, scope: scope}
}

// Scope returns the scope label, or "" for an unscoped handle.
func (l *Logger) Scope() string {
	return l.scope
}

// SetLevel sets the shared minimum level. Trace and debug are ignored in production builds.
func (l *Logger) SetLevel(level Level) {
	l.core.Load().filter.SetLevel(level)
}

// Level returns the shared minimum level.
func (l *Logger) Level() Level {
	return l.core.Load().filter.Level()
}

// Enabled reports whether a call at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return l.core.Load().filter.ShouldEmit(level)
}

// Log writes args at level. Calls below the current level, or at an unknown level, are dropped.
func (l *Logger) Log(level Level, args ...any) {
	c := l.core.Load()
	if !c.filter.ShouldEmit(level) {
		return
	}

	r := record{
		level:   level,
		scope:   l.scope,
		message: formatMessage(c.encoder, args),
	}
	if c.timestamp {
		r.timestamp = c.clock().Format(timestampLayout)
	}

	if err := c.console.Log(c.renderer.render(r)...); err != nil && c.onError != nil {
		c.onError(err)
	}
}

// Trace logs args at trace level.
func (l *Logger) Trace(args ...any) { l.Log(TraceLevel, args...) }

// Debug logs args at debug level.
func (l *Logger) Debug(args ...any) { l.Log(DebugLevel, args...) }

// Info logs args at info level.
func (l *Logger) Info(args ...any) { l.Log(InfoLevel, args...) }

// Warn logs args at warn level.
func (l *Logger) Warn(args ...any) { l.Log(WarnLevel, args...) }

// Error logs args at error level.
func (l *Logger) Error(args ...any) { l.Log(ErrorLevel, args...) }

// logf formats only when level passes the filter.
func (l *Logger) logf(level Level, format string, v ...any) {
	if !l.Enabled(level) {
		return
	}
	l.Log(level, fmt.Sprintf(format, v...))
}

// Tracef logs a trace message formatted with fmt.Sprintf.
func (l *Logger) Tracef(format string, v ...any) { l.logf(TraceLevel, format, v...) }

// Debugf logs a debug message formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...any) { l.logf(DebugLevel, format, v...) }

// Infof logs an informational message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) { l.logf(InfoLevel, format, v...) }

// Warnf logs a warning message formatted with fmt.Sprintf.
func (l *Logger) Warnf(format string, v ...any) { l.logf(WarnLevel, format, v...) }

// Errorf logs an error message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) { l.logf(ErrorLevel, format, v...) }
