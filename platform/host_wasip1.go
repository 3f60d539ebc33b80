//go:build wasip1

package platform

import (
	"io"
	"os"
)

const currentHost = hostWorker

func stdoutIsTerminal() bool { return false }

// Stdout returns the process stdout.
func Stdout() io.Writer {
	return os.Stdout
}
