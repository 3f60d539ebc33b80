package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mordilloSan/go-console-logger/platform"
)

// TestConcurrency_ScopedLoggers verifies that concurrent handles never interleave lines.
func TestConcurrency_ScopedLoggers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(Config{Platform: platform.Descriptor{SandboxedWorker: true}, Console: NewWriterConsole(&buf)})

	const numGoroutines = 200
	const messagesPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			scoped := log.Scoped("worker")
			for j := 0; j < messagesPerGoroutine; j++ {
				scoped.Infof("goroutine-%d-info-%d", id, j)
				scoped.Warn("goroutine", id, "warn", j)
				scoped.Error("goroutine", id, "error", j)
				scoped.Debug("filtered")
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, numGoroutines*messagesPerGoroutine*3)

	for i, line := range lines {
		hasLevelTag := strings.HasPrefix(line, "[INFO] [worker] goroutine-") ||
			strings.HasPrefix(line, "[WARN] [worker] goroutine ") ||
			strings.HasPrefix(line, "[ERROR] [worker] goroutine ")
		if !hasLevelTag {
			t.Fatalf("line %d appears garbled: %q", i, line)
		}
	}
}

// TestConcurrency_SetLevelRace verifies that level changes racing with log calls
// always leave the filter at one of the requested levels.
func TestConcurrency_SetLevelRace(t *testing.T) {
	t.Parallel()

	log, rec := newTestLogger(platform.Descriptor{})
	requested := []Level{InfoLevel, WarnLevel, ErrorLevel}

	const numGoroutines = 50
	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			log.SetLevel(requested[id%len(requested)])
		}(i)
		go func(id int) {
			defer wg.Done()
			log.Scoped("race").Error("error", id)
		}(i)
	}
	wg.Wait()

	assert.Contains(t, requested, log.Level())
	assert.Len(t, rec.Calls(), numGoroutines)
}
