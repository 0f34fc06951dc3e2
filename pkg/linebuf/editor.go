package linebuf

import (
	"github.com/kcaldas/microshell/pkg/history"
	"github.com/kcaldas/microshell/pkg/transport"
	"github.com/kcaldas/microshell/pkg/vt100"
)

// eraseLine is the VT100 "erase to end of line" sequence.
const eraseLine = "\x1b[K"

// Action tells the caller what an applied event means for the line as a
// whole.
type Action uint8

const (
	// ActionNone means the line is still being edited.
	ActionNone Action = iota
	// ActionSubmit means the line is complete and ready to dispatch.
	ActionSubmit
	// ActionCancel means the line was abandoned.
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionSubmit:
		return "submit"
	case ActionCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Option configures an Editor.
type Option func(*Editor)

// WithBell makes the editor ring the terminal bell when a key is rejected
// because the line is full.
func WithBell(enabled bool) Option {
	return func(e *Editor) { e.bell = enabled }
}

// Editor applies edit events to a Buffer and renders the change.
type Editor struct {
	buf  *Buffer
	hist *history.Store
	bell bool
}

// NewEditor binds an editor to a buffer and a history store. hist may be
// nil, in which case recall does nothing and submitted lines are not kept.
func NewEditor(buf *Buffer, hist *history.Store, opts ...Option) *Editor {
	e := &Editor{buf: buf, hist: hist}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Buffer returns the line being edited.
func (e *Editor) Buffer() *Buffer {
	return e.buf
}

// Line returns the current line. It aliases the buffer.
func (e *Editor) Line() []byte {
	return e.buf.Bytes()
}

// Reset clears the line and ends history browsing, ready for the next line.
func (e *Editor) Reset() {
	e.buf.Clear()
	if e.hist != nil {
		e.hist.Reset()
	}
}

// Apply performs ev on the line and writes the echo to out.
func (e *Editor) Apply(ev vt100.Event, out transport.Writer) Action {
	b := e.buf

	switch ev.Kind {
	case vt100.InsertChar:
		if !b.Insert(ev.Char) {
			if e.bell {
				out.Put(vt100.BEL)
			}
			return ActionNone
		}
		out.Put(ev.Char)
		e.redrawTail(out, false)

	case vt100.Backspace:
		if !b.DeleteBack() {
			return ActionNone
		}
		out.Put(vt100.BS)
		e.redrawTail(out, true)

	case vt100.DeleteForward:
		if !b.DeleteForward() {
			return ActionNone
		}
		e.redrawTail(out, true)

	case vt100.MoveLeft:
		if b.Left() {
			out.Put(vt100.BS)
		}

	case vt100.MoveRight:
		if b.Right() {
			// Reprinting the byte we step over moves the terminal cursor.
			out.Put(b.data[b.cursor-1])
		}

	case vt100.HistoryPrev, vt100.HistoryNext:
		e.recall(ev.Kind, out)

	case vt100.Submit:
		transport.WriteString(out, "\r\n")
		if e.hist != nil {
			e.hist.Append(b.Bytes())
		}
		return ActionSubmit

	case vt100.Cancel:
		transport.WriteString(out, "^C\r\n")
		e.Reset()
		return ActionCancel
	}

	return ActionNone
}

// redrawTail prints the bytes after the cursor and walks the terminal cursor
// back to where the buffer cursor is. With erase set, the column freed by a
// deletion is blanked first.
func (e *Editor) redrawTail(out transport.Writer, erase bool) {
	tail := e.buf.Tail()
	transport.WriteBytes(out, tail)
	back := len(tail)
	if erase {
		out.Put(' ')
		back++
	}
	transport.Repeat(out, vt100.BS, back)
}

func (e *Editor) recall(k vt100.Kind, out transport.Writer) {
	if e.hist == nil {
		return
	}

	oldCursor := e.buf.cursor
	load := e.hist.Prev
	if k == vt100.HistoryNext {
		load = e.hist.Next
	}
	if !e.buf.fill(load) {
		return
	}

	transport.Repeat(out, vt100.BS, oldCursor)
	transport.WriteBytes(out, e.buf.Bytes())
	transport.WriteString(out, eraseLine)
}
