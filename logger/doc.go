// Package logger provides a leveled, scope-aware console logger with
// host-appropriate styling.
//
// # Console Output
//
// The rendering strategy follows the platform.Descriptor the logger is built with:
//
//   - sandboxed workers get plain text: [INFO] message
//   - browsers get devtools %c directives, so level and scope render as coloured badges
//   - everything else gets ANSI badges (bold, coloured background), or the same
//     segments without escapes when the terminal does not support colour
//
// Exactly one console call is made per log call that passes the level filter.
//
// # Levels
//
// trace < debug < info < warn < error. Development builds start at debug,
// everything else at info. Production builds refuse SetLevel(TraceLevel)
// and SetLevel(DebugLevel) so a deployment cannot be left in verbose mode.
//
// # Scopes
//
// A scoped handle prefixes its output with a grey badge. It shares the level
// of the logger it came from:
//
//	db := logger.NewScoped("db")
//	db.Info("connected to", host)
//	logger.SetLevel(logger.WarnLevel) // also silences db.Info
//
// # Messages
//
// Arguments are joined with single spaces. Maps, slices and structs are
// serialized as indented JSON (or YAML, see Config.Encoder) on their own lines:
//
//	logger.Info("request", map[string]any{"path": "/api/users", "status": 200})
//
// # Usage
//
// The package default logger detects the platform and honours LOGGER_LEVEL,
// LOGGER_TIMESTAMP and LOGGER_ENCODING. Replace it once at startup if needed:
//
//	logger.Init(logger.DefaultConfig())
//	logger.Infof("server started on port %d", 8080)
//
// Independent loggers for tests or libraries:
//
//	log := logger.New(logger.Config{Console: logger.NewWriterConsole(&buf)})
package logger
