package logger

import (
	"fmt"
	"io"
	"sync"
)

// Console receives the arguments of one rendered log call.
type Console interface {
	Log(args ...any) error
}

// ConsoleFunc adapts a function to the Console interface.
type ConsoleFunc func(args ...any) error

// Log implements Console.
func (f ConsoleFunc) Log(args ...any) error {
	return f(args...)
}

// WriterConsole writes each call as one space-separated line.
// Thread-safe for concurrent use.
type WriterConsole struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterConsole returns a Console writing to w.
func NewWriterConsole(w io.Writer) *WriterConsole {
	return &WriterConsole{w: w}
}

// Log implements Console.
func (c *WriterConsole) Log(args ...any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := fmt.Fprintln(c.w, args...)
	return err
}
