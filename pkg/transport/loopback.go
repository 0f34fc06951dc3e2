package transport

import "bytes"

// Loopback is an in-memory transport. Input is queued with Feed and consumed
// by Get; everything written with Put is kept for inspection. It is meant for
// tests and for scripting an engine without a real terminal.
type Loopback struct {
	in  []byte
	pos int
	out bytes.Buffer
}

// NewLoopback creates a loopback with input already queued.
func NewLoopback(input string) *Loopback {
	l := &Loopback{}
	l.Feed(input)
	return l
}

// Feed queues more input bytes.
func (l *Loopback) Feed(s string) {
	if l.pos == len(l.in) {
		l.in = l.in[:0]
		l.pos = 0
	}
	l.in = append(l.in, s...)
}

// Get returns the next queued byte.
func (l *Loopback) Get() (byte, bool) {
	if l.pos >= len(l.in) {
		return 0, false
	}
	b := l.in[l.pos]
	l.pos++
	return b, true
}

// Pending reports how many queued input bytes have not been read yet.
func (l *Loopback) Pending() int {
	return len(l.in) - l.pos
}

// Put records an output byte.
func (l *Loopback) Put(b byte) {
	l.out.WriteByte(b)
}

// Output returns everything written so far.
func (l *Loopback) Output() string {
	return l.out.String()
}

// TakeOutput returns everything written so far and clears the record.
func (l *Loopback) TakeOutput() string {
	s := l.out.String()
	l.out.Reset()
	return s
}
