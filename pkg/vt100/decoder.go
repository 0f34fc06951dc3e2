package vt100

// State is the decoder's position inside an escape sequence.
type State uint8

const (
	Normal State = iota
	EscapeSeen
	EscapeBracketSeen
)

func (s State) String() string {
	switch s {
	case Normal:
		return "Normal"
	case EscapeSeen:
		return "EscapeSeen"
	case EscapeBracketSeen:
		return "EscapeBracketSeen"
	default:
		return "Unknown"
	}
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithControl binds an otherwise ignored control byte (0x00-0x1F) to an
// event. ESC, CR, LF and BS keep their fixed meaning and cannot be rebound;
// InsertChar cannot be bound either.
func WithControl(b byte, k Kind) Option {
	return func(d *Decoder) {
		if b > US || k == none || k == InsertChar || k > Cancel {
			return
		}
		switch b {
		case ESC, CR, LF, BS:
			return
		}
		d.controls[b] = k
	}
}

// Decoder is a three-state machine turning bytes into edit events. The zero
// value is ready to use and binds no extra control bytes.
type Decoder struct {
	state    State
	controls [US + 1]Kind
}

// NewDecoder builds a decoder with the given options applied.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Feed advances the machine by one byte. ok is false when the byte produced
// no event: it started or continued a sequence, ended a malformed one, or
// was an unbound control byte.
func (d *Decoder) Feed(b byte) (ev Event, ok bool) {
	switch d.state {
	case EscapeSeen:
		if b == '[' {
			d.state = EscapeBracketSeen
			return Event{}, false
		}
		d.state = Normal
		return Event{}, false

	case EscapeBracketSeen:
		d.state = Normal
		switch b {
		case ArrowUp:
			return Key(HistoryPrev), true
		case ArrowDown:
			return Key(HistoryNext), true
		case ArrowRight:
			return Key(MoveRight), true
		case ArrowLeft:
			return Key(MoveLeft), true
		}
		return Event{}, false
	}

	switch {
	case b == ESC:
		d.state = EscapeSeen
		return Event{}, false
	case b == CR || b == LF:
		return Key(Submit), true
	case b == BS || b == DEL:
		return Key(Backspace), true
	case b >= SP && b < DEL:
		return Insert(b), true
	case b <= US && d.controls[b] != none:
		return Key(d.controls[b]), true
	}
	return Event{}, false
}

// State returns the current machine state.
func (d *Decoder) State() State {
	return d.state
}

// Reset abandons any partial sequence.
func (d *Decoder) Reset() {
	d.state = Normal
}
