// Package platform classifies the runtime host once and describes its
// output capabilities.
//
// It is the only place that looks at ambient state: build tags select the
// host (js is a browser, wasip1 is a sandboxed worker, anything else is a
// server process), environment variables select the build mode and colour
// support. The result is an immutable Descriptor that callers inject into
// the logger.
//
// # Environment
//
//	LOGGER_RUNTIME  browser | worker | server (overrides the build-tag host)
//	APP_ENV         development | dev | production | prod
//	NO_COLOR        disables ANSI colours when set
//	FORCE_COLOR     enables ANSI colours even when stdout is not a terminal
//	TERM=dumb       disables ANSI colours
//	JOURNAL_STREAM  set by systemd; disables ANSI colours
//
// BuildMode can be injected at link time and takes precedence over APP_ENV:
//
//	go build -ldflags "-X github.com/mordilloSan/go-console-logger/platform.BuildMode=production"
package platform
