package vt100

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feedAll(d *Decoder, input string) []Event {
	var events []Event
	for i := 0; i < len(input); i++ {
		if ev, ok := d.Feed(input[i]); ok {
			events = append(events, ev)
		}
	}
	return events
}

func TestDecoder_NormalState(t *testing.T) {
	tests := []struct {
		name  string
		input byte
		want  Event
		ok    bool
	}{
		{"carriage return submits", CR, Key(Submit), true},
		{"line feed submits", LF, Key(Submit), true},
		{"backspace", BS, Key(Backspace), true},
		{"delete acts as backspace", DEL, Key(Backspace), true},
		{"space is printable", SP, Insert(' '), true},
		{"tilde is printable", '~', Insert('~'), true},
		{"letter", 'a', Insert('a'), true},
		{"tab is ignored", HT, Event{}, false},
		{"bell is ignored", BEL, Event{}, false},
		{"ctrl-c is ignored by default", ETX, Event{}, false},
		{"high byte is ignored", 0xC3, Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder()
			ev, ok := d.Feed(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, ev)
			assert.Equal(t, Normal, d.State())
		})
	}
}

func TestDecoder_ArrowKeys(t *testing.T) {
	tests := []struct {
		final byte
		want  Kind
	}{
		{ArrowUp, HistoryPrev},
		{ArrowDown, HistoryNext},
		{ArrowRight, MoveRight},
		{ArrowLeft, MoveLeft},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			d := NewDecoder()

			_, ok := d.Feed(ESC)
			assert.False(t, ok)
			assert.Equal(t, EscapeSeen, d.State())

			_, ok = d.Feed('[')
			assert.False(t, ok)
			assert.Equal(t, EscapeBracketSeen, d.State())

			ev, ok := d.Feed(tt.final)
			assert.True(t, ok)
			assert.Equal(t, Key(tt.want), ev)
			assert.Equal(t, Normal, d.State())
		})
	}
}

func TestDecoder_UpArrowYieldsExactlyOneEvent(t *testing.T) {
	d := NewDecoder()
	events := feedAll(d, "\x1b[A")
	assert.Equal(t, []Event{Key(HistoryPrev)}, events)
	assert.Equal(t, Normal, d.State())
}

func TestDecoder_MalformedSequences(t *testing.T) {
	t.Run("printable after lone escape is dropped", func(t *testing.T) {
		d := NewDecoder()
		events := feedAll(d, "\x1bx")
		assert.Empty(t, events)
		assert.Equal(t, Normal, d.State())

		// The decoder is usable again straight away.
		assert.Equal(t, []Event{Insert('y')}, feedAll(d, "y"))
	})

	t.Run("unknown final byte is dropped", func(t *testing.T) {
		d := NewDecoder()
		events := feedAll(d, "\x1b[Z")
		assert.Empty(t, events)
		assert.Equal(t, Normal, d.State())
	})

	t.Run("delete key sequence leaks its terminator", func(t *testing.T) {
		// ESC [ 3 ~ is not an arrow key: the '3' aborts the sequence and
		// the '~' is an ordinary printable byte again.
		d := NewDecoder()
		events := feedAll(d, "\x1b[3~")
		assert.Equal(t, []Event{Insert('~')}, events)
	})

	t.Run("escape after escape aborts", func(t *testing.T) {
		d := NewDecoder()
		events := feedAll(d, "\x1b\x1b[A")
		assert.Equal(t, []Event{Insert('['), Insert('A')}, events)
	})
}

func TestDecoder_ControlBindings(t *testing.T) {
	d := NewDecoder(
		WithControl(ETX, Cancel),
		WithControl(EOT, DeleteForward),
		WithControl(CR, Cancel),         // fixed meaning, ignored
		WithControl(HT, InsertChar),     // not bindable, ignored
		WithControl('a', DeleteForward), // not a control byte, ignored
	)

	assert.Equal(t, []Event{Key(Cancel)}, feedAll(d, "\x03"))
	assert.Equal(t, []Event{Key(DeleteForward)}, feedAll(d, "\x04"))
	assert.Equal(t, []Event{Key(Submit)}, feedAll(d, "\r"))
	assert.Empty(t, feedAll(d, "\t"))
	assert.Equal(t, []Event{Insert('a')}, feedAll(d, "a"))
}

func TestDecoder_Reset(t *testing.T) {
	d := NewDecoder()
	d.Feed(ESC)
	d.Feed('[')
	d.Reset()
	assert.Equal(t, Normal, d.State())
	assert.Equal(t, []Event{Insert('A')}, feedAll(d, "A"))
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "InsertChar(q)", Insert('q').String())
	assert.Equal(t, "HistoryPrev", Key(HistoryPrev).String())
	assert.Equal(t, "Unknown", Kind(200).String())
	assert.Equal(t, "EscapeBracketSeen", EscapeBracketSeen.String())
}
