package console

import (
	"io"
	"sync"
)

// SyncWriter serialises writes from the session loop and the signal
// handler onto one output.
type SyncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSyncWriter wraps w.
func NewSyncWriter(w io.Writer) *SyncWriter {
	return &SyncWriter{w: w}
}

// Write writes p while holding the lock.
func (s *SyncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Do runs fn with exclusive access to the underlying writer, so a
// multi-line message is not interleaved with other output.
func (s *SyncWriter) Do(fn func(w io.Writer)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.w)
}
