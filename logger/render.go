package logger

import (
	"github.com/mordilloSan/go-console-logger/platform"
)

// timestampLayout matches a local "M/D/YYYY HH:MM:SS" clock.
const timestampLayout = "1/2/2006 15:04:05"

// record is one filtered call ready for rendering.
type record struct {
	level     Level
	scope     string
	message   string
	timestamp string
}

// renderer turns a record into the arguments of a single console call.
type renderer interface {
	render(r record) []any
}

// selectRenderer picks plain output when styling is unsupported,
// CSS directives in browsers and ANSI badges everywhere else.
func selectRenderer(d platform.Descriptor) renderer {
	switch {
	case !d.SupportsRichOutput():
		return plainRenderer{}
	case d.Browser:
		return browserRenderer{}
	default:
		return ansiRenderer{color: d.ANSIColor}
	}
}

type plainRenderer struct{}

func (plainRenderer) render(r record) []any {
	args := make([]any, 0, 4)
	if r.timestamp != "" {
		args = append(args, "["+r.timestamp+"]")
	}
	args = append(args, "["+r.level.Label()+"]")
	if r.scope != "" {
		args = append(args, "["+r.scope+"]")
	}
	return append(args, r.message)
}

type browserRenderer struct{}

func (browserRenderer) render(r record) []any {
	format := "%c" + r.level.Label()
	var styles []any
	if r.timestamp != "" {
		// The timestamp is its own %s substitution ahead of the styled label.
		format = "%s " + format
		styles = append(styles, "["+r.timestamp+"]")
	}
	styles = append(styles, cssLabel(BackgroundColor(r.level), TextColor(r.level)))
	if r.scope != "" {
		format += "%c %c" + r.scope
		styles = append(styles, "", cssLabel(ColorNeutral, ColorWhite))
	}
	args := append([]any{format}, styles...)
	return append(args, r.message)
}

type ansiRenderer struct {
	color bool
}

func (a ansiRenderer) render(r record) []any {
	args := make([]any, 0, 4)
	if r.timestamp != "" {
		args = append(args, "["+r.timestamp+"]")
	}
	return append(args,
		ansiLabel(BackgroundColor(r.level), TextColor(r.level), r.level.Label(), a.color),
		ansiLabel(ColorNeutral, ColorWhite, r.scope, a.color),
		r.message,
	)
}
