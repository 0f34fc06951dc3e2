// Package transport holds the byte-level boundary between the shell engine
// and whatever stream carries the terminal: a UART, a pseudo-terminal, the
// process's own stdin/stdout or an in-memory script.
package transport

// Reader supplies one input byte on demand. Get must never block; ok is false
// when no byte is available right now.
type Reader interface {
	Get() (b byte, ok bool)
}

// Writer accepts one output byte at a time. There is no backpressure
// contract: an implementation either delivers the byte or drops it.
type Writer interface {
	Put(b byte)
}

// ReaderFunc adapts a plain function to the Reader interface.
type ReaderFunc func() (byte, bool)

// Get calls f.
func (f ReaderFunc) Get() (byte, bool) { return f() }

// WriterFunc adapts a plain function to the Writer interface.
type WriterFunc func(byte)

// Put calls f(b).
func (f WriterFunc) Put(b byte) { f(b) }

// WriteString pushes s through w and returns the number of bytes written.
func WriteString(w Writer, s string) int {
	for i := 0; i < len(s); i++ {
		w.Put(s[i])
	}
	return len(s)
}

// WriteBytes pushes p through w and returns the number of bytes written.
func WriteBytes(w Writer, p []byte) int {
	for _, b := range p {
		w.Put(b)
	}
	return len(p)
}

// Repeat writes b n times.
func Repeat(w Writer, b byte, n int) {
	for ; n > 0; n-- {
		w.Put(b)
	}
}
