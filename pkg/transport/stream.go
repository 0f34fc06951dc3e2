package transport

import (
	"io"
	"sync"
	"sync/atomic"
)

// DefaultStreamBuffer is the number of input bytes a Stream holds before its
// pump goroutine waits for the consumer.
const DefaultStreamBuffer = 256

// Stream turns a blocking io.Reader into a non-blocking Reader. A pump
// goroutine reads from the source and queues bytes on a bounded channel; Get
// only ever polls that channel.
type Stream struct {
	ch      chan byte
	done    chan struct{}
	once    sync.Once
	drained atomic.Bool

	mu  sync.Mutex
	err error
}

// NewStream starts pumping r. A buffer below 1 selects DefaultStreamBuffer.
func NewStream(r io.Reader, buffer int) *Stream {
	if buffer < 1 {
		buffer = DefaultStreamBuffer
	}
	s := &Stream{
		ch:   make(chan byte, buffer),
		done: make(chan struct{}),
	}
	go s.pump(r)
	return s
}

func (s *Stream) pump(r io.Reader) {
	defer close(s.ch)

	var buf [64]byte
	for {
		n, err := r.Read(buf[:])
		for _, b := range buf[:n] {
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
		if err != nil {
			s.mu.Lock()
			s.err = err
			s.mu.Unlock()
			return
		}
	}
}

// Get returns a queued byte without waiting.
func (s *Stream) Get() (byte, bool) {
	select {
	case b, ok := <-s.ch:
		if !ok {
			s.drained.Store(true)
			return 0, false
		}
		return b, true
	default:
		return 0, false
	}
}

// Ended reports whether the source has failed or hit EOF and every queued
// byte has been consumed.
func (s *Stream) Ended() bool {
	return s.drained.Load()
}

// Err returns the error that stopped the pump, once the stream has ended.
// io.EOF is reported as nil.
func (s *Stream) Err() error {
	if !s.Ended() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Close stops the pump. The source itself is not closed; a pump blocked in
// Read returns once the owner closes the source.
func (s *Stream) Close() {
	s.once.Do(func() { close(s.done) })
}

// StreamWriter adapts an io.Writer to Writer. Write errors are remembered
// and later bytes are dropped.
type StreamWriter struct {
	w   io.Writer
	one [1]byte
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// Put writes b unless an earlier write failed.
func (sw *StreamWriter) Put(b byte) {
	if sw.err != nil {
		return
	}
	sw.one[0] = b
	if _, err := sw.w.Write(sw.one[:]); err != nil {
		sw.err = err
	}
}

// Err returns the first write error.
func (sw *StreamWriter) Err() error {
	return sw.err
}
