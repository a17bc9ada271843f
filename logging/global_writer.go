package logging

import (
	"io"
	"os"
	"sync"
)

// globalWriter is an io.Writer that delegates to an underlying writer,
// which can be swapped at runtime in a thread-safe manner.
type globalWriter struct {
	mu sync.RWMutex
	w  io.Writer
}

// Write implements the io.Writer interface.
func (gw *globalWriter) Write(p []byte) (n int, err error) {
	gw.mu.RLock()
	defer gw.mu.RUnlock()
	return gw.w.Write(p)
}

// Set changes the underlying writer.
func (gw *globalWriter) Set(w io.Writer) {
	gw.mu.Lock()
	defer gw.mu.Unlock()
	gw.w = w
}

var defaultGlobalWriter = &globalWriter{w: os.Stderr}

// SetGlobalOutput sets the terminal destination of every logger's stderr
// sink. The TUI points it at io.Discard while the alternate screen is up and
// restores it with the returned function.
func SetGlobalOutput(w io.Writer) (restore func()) {
	defaultGlobalWriter.mu.Lock()
	prev := defaultGlobalWriter.w
	defaultGlobalWriter.w = w
	defaultGlobalWriter.mu.Unlock()
	return func() { defaultGlobalWriter.Set(prev) }
}

// GetGlobalOutput returns the singleton instance of the global writer.
func GetGlobalOutput() io.Writer {
	return defaultGlobalWriter
}
