package platform

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
)

// BuildMode is the build mode injected at link time ("development" or "production").
// When empty, APP_ENV decides.
var BuildMode = ""

// ErrInvalidEnvironment is returned by Parse when an environment variable holds an unknown value.
var ErrInvalidEnvironment = errors.New("environment variables not valid")

// Descriptor describes the host the logger runs on. It is computed once and never changes.
type Descriptor struct {
	// Browser is true when output goes to a browser devtools console.
	Browser bool
	// SandboxedWorker is true inside a sandboxed worker that cannot render styles.
	SandboxedWorker bool
	// Production is true for production builds.
	Production bool
	// Development is true for development builds.
	Development bool
	// ANSIColor is true when a server host may emit ANSI escape sequences.
	ANSIColor bool
}

// SupportsRichOutput reports whether styled output (CSS or ANSI) may be used at all.
func (d Descriptor) SupportsRichOutput() bool {
	return !d.SandboxedWorker
}

type host int

const (
	hostServer host = iota
	hostBrowser
	hostWorker
)

type environment struct {
	Runtime       string `env:"LOGGER_RUNTIME"`
	Mode          string `env:"APP_ENV"`
	NoColor       string `env:"NO_COLOR"`
	ForceColor    string `env:"FORCE_COLOR"`
	Term          string `env:"TERM"`
	JournalStream string `env:"JOURNAL_STREAM"`
}

var (
	detectOnce sync.Once
	detected   Descriptor
)

// Detect classifies the current process. The first call reads the environment;
// later calls return the same Descriptor. Unknown values fall back to the
// build-tag host with no build mode.
func Detect() Descriptor {
	detectOnce.Do(func() {
		var vars environment
		if err := env.Parse(&vars); err != nil {
			vars = environment{}
		}
		detected, _ = resolve(vars, currentHost, stdoutIsTerminal())
	})
	return detected
}

// Parse builds a Descriptor from an explicit set of environment variables.
// Stdout is assumed not to be a terminal, so ANSIColor needs FORCE_COLOR.
func Parse(environ map[string]string) (Descriptor, error) {
	var vars environment
	if err := env.ParseWithOptions(&vars, env.Options{Environment: environ}); err != nil {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrInvalidEnvironment, err.Error())
	}
	return resolve(vars, currentHost, false)
}

func resolve(vars environment, h host, terminal bool) (Descriptor, error) {
	var invalid []string

	switch strings.ToLower(strings.TrimSpace(vars.Runtime)) {
	case "":
	case "browser":
		h = hostBrowser
	case "worker", "sandbox":
		h = hostWorker
	case "server":
		h = hostServer
	default:
		invalid = append(invalid, "LOGGER_RUNTIME must be one of browser, worker, server")
	}

	d := Descriptor{
		Browser:         h == hostBrowser,
		SandboxedWorker: h == hostWorker,
	}

	mode := BuildMode
	if mode == "" {
		mode = vars.Mode
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "development", "dev":
		d.Development = true
	case "production", "prod":
		d.Production = true
	}

	if h == hostServer {
		d.ANSIColor = colorEnabled(vars, terminal)
	}

	if len(invalid) > 0 {
		return d, fmt.Errorf("%w: %s", ErrInvalidEnvironment, strings.Join(invalid, ", "))
	}
	return d, nil
}

func colorEnabled(vars environment, terminal bool) bool {
	if vars.ForceColor != "" && vars.ForceColor != "0" {
		return true
	}
	if vars.NoColor != "" || vars.JournalStream != "" || vars.Term == "dumb" {
		return false
	}
	return terminal
}
