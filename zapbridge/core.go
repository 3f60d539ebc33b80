package zapbridge

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mordilloSan/go-console-logger/logger"
)

// core is a zapcore.Core that writes entries through a *logger.Logger.
type core struct {
	log    *logger.Logger
	fields []zapcore.Field
}

// NewCore returns a zapcore.Core backed by log.
//
//nolint:ireturn // Returning zapcore.Core is intended for zap integration.
func NewCore(log *logger.Logger) zapcore.Core {
	return &core{log: log}
}

// New returns a zap.Logger backed by log.
func New(log *logger.Logger, options ...zap.Option) *zap.Logger {
	return zap.New(NewCore(log), options...)
}

// LevelOf maps a zap level to a console logger level. Levels above error
// collapse to error; levels below debug map to trace.
func LevelOf(l zapcore.Level) logger.Level {
	switch {
	case l < zapcore.DebugLevel:
		return logger.TraceLevel
	case l == zapcore.DebugLevel:
		return logger.DebugLevel
	case l == zapcore.InfoLevel:
		return logger.InfoLevel
	case l == zapcore.WarnLevel:
		return logger.WarnLevel
	default:
		return logger.ErrorLevel
	}
}

// Enabled delegates to the shared level of the wrapped logger.
func (c *core) Enabled(l zapcore.Level) bool {
	return c.log.Enabled(LevelOf(l))
}

// With returns a core that adds fields to every entry.
//
//nolint:ireturn // Returning zapcore.Core is intended for zap integration.
func (c *core) With(fields []zapcore.Field) zapcore.Core {
	all := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	all = append(all, c.fields...)
	all = append(all, fields...)
	return &core{log: c.log, fields: all}
}

// Check adds the core to the checked entry when its level passes the filter.
//
//nolint:gocritic // AddCore requires ent to be passed by value.
func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry message followed by its fields as one object.
//
//nolint:gocritic // zapcore.Core requires ent to be passed by value.
func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	log := c.log
	if ent.LoggerName != "" {
		log = log.Scoped(ent.LoggerName)
	}

	args := []any{ent.Message}
	if len(c.fields)+len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range c.fields {
			f.AddTo(enc)
		}
		for _, f := range fields {
			f.AddTo(enc)
		}
		args = append(args, logger.AsObject(enc.Fields))
	}

	log.Log(LevelOf(ent.Level), args...)
	return nil
}

// Sync is a no-op; every write goes straight to the console.
func (c *core) Sync() error {
	return nil
}
