package flushio

import (
	"bufio"
	"io"
	"sync"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

var discardWriteFlusher WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher returns w itself when it already flushes, a no-op flushing
// wrapper around in-memory buffers, and a bufio.Writer otherwise.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == nil || w == io.Discard {
		return discardWriteFlusher
	}
	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// bytes.Buffer, strings.Builder
	type buffer interface {
		io.Writer
		Len() int
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// Serial hands out exclusive access to a WriteFlusher one batch at a time,
// flushing after each batch, so that concurrent producers never interleave.
type Serial struct {
	mu sync.Mutex
	wf WriteFlusher
}

// NewSerial wraps w as by NewWriteFlusher.
func NewSerial(w io.Writer) *Serial {
	return &Serial{wf: NewWriteFlusher(w)}
}

// Batch calls emit with the exclusive writer, then flushes whatever it wrote.
// An emit error skips the flush.
func (s *Serial) Batch(emit func(w io.Writer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := emit(s.wf); err != nil {
		return err
	}
	return s.wf.Flush()
}
