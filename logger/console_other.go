//go:build !js

package logger

import "github.com/mordilloSan/go-console-logger/platform"

func defaultConsole() Console {
	return NewWriterConsole(platform.Stdout())
}
