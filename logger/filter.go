package logger

import (
	"sync/atomic"

	"github.com/mordilloSan/go-console-logger/platform"
)

// Filter holds the current minimum level shared by a logger and all of its scoped handles.
// It is safe for concurrent use; concurrent SetLevel calls are last-write-wins.
type Filter struct {
	level      atomic.Int32
	production bool
}

// NewFilter returns a filter starting at debug for development builds and info otherwise.
func NewFilter(d platform.Descriptor) *Filter {
	f := &Filter{production: d.Production}
	f.level.Store(int32(initialLevel(d)))
	return f
}

func initialLevel(d platform.Descriptor) Level {
	if d.Development {
		return DebugLevel
	}
	return InfoLevel
}

// SetLevel changes the minimum level. Production builds ignore requests for
// trace or debug, and unknown levels are ignored everywhere.
func (f *Filter) SetLevel(l Level) {
	if !l.Valid() {
		return
	}
	if f.production && (l == TraceLevel || l == DebugLevel) {
		return
	}
	f.level.Store(int32(l))
}

// Level returns the current minimum level.
func (f *Filter) Level() Level {
	return Level(f.level.Load())
}

// ShouldEmit reports whether a call at level l passes the filter.
// Unknown levels never pass.
func (f *Filter) ShouldEmit(l Level) bool {
	return l.Valid() && l >= f.Level()
}
