//go:build js

package platform

import (
	"io"
	"os"
)

const currentHost = hostBrowser

func stdoutIsTerminal() bool { return false }

// Stdout returns the process stdout.
func Stdout() io.Writer {
	return os.Stdout
}
