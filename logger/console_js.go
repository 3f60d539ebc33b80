//go:build js

package logger

import "syscall/js"

// browserConsole forwards calls to the devtools console.log so %c directives are styled.
type browserConsole struct {
	console js.Value
}

func (c browserConsole) Log(args ...any) error {
	c.console.Call("log", args...)
	return nil
}

func defaultConsole() Console {
	return browserConsole{console: js.Global().Get("console")}
}
