//go:build !js && !wasip1

package platform

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const currentHost = hostServer

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Stdout returns the process stdout. On Windows consoles ANSI sequences are translated.
func Stdout() io.Writer {
	return colorable.NewColorableStdout()
}
