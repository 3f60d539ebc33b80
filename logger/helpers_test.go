package logger

import (
	"sync"
	"time"

	"github.com/mordilloSan/go-console-logger/platform"
)

// recorder is a Console that keeps every call.
type recorder struct {
	mu    sync.Mutex
	calls [][]any
}

func (r *recorder) Log(args ...any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, args)
	return nil
}

func (r *recorder) Calls() [][]any {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([][]any(nil), r.calls...)
}

// message returns the final argument (the message) of call i.
func (r *recorder) message(i int) any {
	calls := r.Calls()
	return calls[i][len(calls[i])-1]
}

var fixedTime = time.Date(2026, time.January, 2, 15, 4, 5, 0, time.Local)

func newTestLogger(d platform.Descriptor) (*Logger, *recorder) {
	rec := &recorder{}
	return New(Config{Platform: d, Console: rec}), rec
}
