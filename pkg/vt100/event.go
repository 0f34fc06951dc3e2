// Package vt100 decodes the raw bytes a VT100-style terminal sends into
// line-editing events. Only printable ASCII, CR/LF, BS/DEL and the four
// arrow-key sequences (ESC [ A..D) are recognised.
package vt100

// ASCII control bytes the decoder and the line editor care about.
const (
	NUL = 0x00
	ETX = 0x03 // Ctrl-C
	EOT = 0x04 // Ctrl-D
	BEL = 0x07
	BS  = 0x08
	HT  = 0x09
	LF  = 0x0A
	CR  = 0x0D
	ESC = 0x1B
	US  = 0x1F
	SP  = 0x20
	DEL = 0x7F
)

// Final bytes of the arrow-key sequences.
const (
	ArrowUp    = 'A'
	ArrowDown  = 'B'
	ArrowRight = 'C'
	ArrowLeft  = 'D'
)

// Kind identifies an edit event.
type Kind uint8

const (
	none Kind = iota
	InsertChar
	Backspace
	DeleteForward
	MoveLeft
	MoveRight
	HistoryPrev
	HistoryNext
	Submit
	Cancel
)

var kindNames = [...]string{
	none:          "None",
	InsertChar:    "InsertChar",
	Backspace:     "Backspace",
	DeleteForward: "DeleteForward",
	MoveLeft:      "MoveLeft",
	MoveRight:     "MoveRight",
	HistoryPrev:   "HistoryPrev",
	HistoryNext:   "HistoryNext",
	Submit:        "Submit",
	Cancel:        "Cancel",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Event is a decoded edit action. Char is only meaningful for InsertChar.
type Event struct {
	Kind Kind
	Char byte
}

// Insert builds an InsertChar event.
func Insert(c byte) Event {
	return Event{Kind: InsertChar, Char: c}
}

// Key builds an event without a payload.
func Key(k Kind) Event {
	return Event{Kind: k}
}

func (e Event) String() string {
	if e.Kind == InsertChar {
		return "InsertChar(" + string(rune(e.Char)) + ")"
	}
	return e.Kind.String()
}
