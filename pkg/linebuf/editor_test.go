package linebuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcaldas/microshell/pkg/history"
	"github.com/kcaldas/microshell/pkg/transport"
	"github.com/kcaldas/microshell/pkg/vt100"
)

func newTestEditor(capacity, depth int, opts ...Option) (*Editor, *transport.Loopback) {
	buf := New(capacity)
	hist := history.NewStore(depth, buf.Cap())
	return NewEditor(buf, hist, opts...), transport.NewLoopback("")
}

func typeText(e *Editor, out transport.Writer, s string) {
	for i := 0; i < len(s); i++ {
		e.Apply(vt100.Insert(s[i]), out)
	}
}

func TestEditor_InsertEchoes(t *testing.T) {
	e, out := newTestEditor(16, 2)

	typeText(e, out, "led")
	assert.Equal(t, "led", out.TakeOutput())
	assert.Equal(t, "led", string(e.Line()))

	// Insert in the middle redraws the tail and walks back over it.
	e.Apply(vt100.Key(vt100.MoveLeft), out)
	e.Apply(vt100.Key(vt100.MoveLeft), out)
	assert.Equal(t, "\b\b", out.TakeOutput())

	e.Apply(vt100.Insert('X'), out)
	assert.Equal(t, "Xed\b\b", out.TakeOutput())
	assert.Equal(t, "lXed", string(e.Line()))
	assert.Equal(t, 2, e.Buffer().Cursor())
}

func TestEditor_FullBufferRejectsInsert(t *testing.T) {
	t.Run("silently without bell", func(t *testing.T) {
		e, out := newTestEditor(3, 1)
		typeText(e, out, "abc")
		assert.Equal(t, "ab", out.TakeOutput())
		assert.Equal(t, "ab", string(e.Line()))
	})

	t.Run("with bell", func(t *testing.T) {
		e, out := newTestEditor(3, 1, WithBell(true))
		typeText(e, out, "abc")
		assert.Equal(t, "ab\a", out.TakeOutput())
		assert.Equal(t, "ab", string(e.Line()))
	})
}

func TestEditor_Backspace(t *testing.T) {
	e, out := newTestEditor(16, 2)
	typeText(e, out, "abc")
	out.TakeOutput()

	e.Apply(vt100.Key(vt100.MoveLeft), out)
	out.TakeOutput()

	e.Apply(vt100.Key(vt100.Backspace), out)
	assert.Equal(t, "\bc \b\b", out.TakeOutput())
	assert.Equal(t, "ac", string(e.Line()))
	assert.Equal(t, 1, e.Buffer().Cursor())

	e.Apply(vt100.Key(vt100.Backspace), out)
	e.Apply(vt100.Key(vt100.Backspace), out) // cursor already at 0
	assert.Equal(t, "\bc \b\b", out.TakeOutput())
	assert.Equal(t, "c", string(e.Line()))
}

func TestEditor_DeleteForward(t *testing.T) {
	e, out := newTestEditor(16, 2)
	typeText(e, out, "abc")
	out.TakeOutput()

	// At end of line nothing happens and nothing is echoed.
	e.Apply(vt100.Key(vt100.DeleteForward), out)
	assert.Empty(t, out.TakeOutput())

	e.Apply(vt100.Key(vt100.MoveLeft), out)
	e.Apply(vt100.Key(vt100.MoveLeft), out)
	out.TakeOutput()

	e.Apply(vt100.Key(vt100.DeleteForward), out)
	assert.Equal(t, "c \b\b", out.TakeOutput())
	assert.Equal(t, "ac", string(e.Line()))
	assert.Equal(t, 1, e.Buffer().Cursor())
}

func TestEditor_MoveRightReprintsByte(t *testing.T) {
	e, out := newTestEditor(16, 2)
	typeText(e, out, "ab")
	e.Apply(vt100.Key(vt100.MoveLeft), out)
	e.Apply(vt100.Key(vt100.MoveLeft), out)
	e.Apply(vt100.Key(vt100.MoveLeft), out) // clamped, no echo
	out.TakeOutput()

	e.Apply(vt100.Key(vt100.MoveRight), out)
	assert.Equal(t, "a", out.TakeOutput())
	e.Apply(vt100.Key(vt100.MoveRight), out)
	e.Apply(vt100.Key(vt100.MoveRight), out) // clamped
	assert.Equal(t, "b", out.TakeOutput())
}

func submit(e *Editor, out transport.Writer, line string) Action {
	typeText(e, out, line)
	a := e.Apply(vt100.Key(vt100.Submit), out)
	e.Reset()
	return a
}

func TestEditor_SubmitAndRecall(t *testing.T) {
	e, out := newTestEditor(32, 4)

	assert.Equal(t, ActionSubmit, submit(e, out, "led on"))
	assert.Equal(t, ActionSubmit, submit(e, out, "add 1 2"))
	out.TakeOutput()

	typeText(e, out, "zz")
	out.TakeOutput()

	e.Apply(vt100.Key(vt100.HistoryPrev), out)
	assert.Equal(t, "add 1 2", string(e.Line()))
	assert.Equal(t, 7, e.Buffer().Cursor())
	assert.Equal(t, "\b\badd 1 2\x1b[K", out.TakeOutput())

	e.Apply(vt100.Key(vt100.HistoryPrev), out)
	assert.Equal(t, "led on", string(e.Line()))
	assert.Equal(t, "\b\b\b\b\b\b\bled on\x1b[K", out.TakeOutput())

	// Clamped: no change, no echo.
	e.Apply(vt100.Key(vt100.HistoryPrev), out)
	assert.Equal(t, "led on", string(e.Line()))
	assert.Empty(t, out.TakeOutput())

	e.Apply(vt100.Key(vt100.HistoryNext), out)
	assert.Equal(t, "add 1 2", string(e.Line()))
}

func TestEditor_SubmitEmptyLineSkipsHistory(t *testing.T) {
	buf := New(16)
	hist := history.NewStore(4, buf.Cap())
	e := NewEditor(buf, hist)
	out := transport.NewLoopback("")

	a := e.Apply(vt100.Key(vt100.Submit), out)
	assert.Equal(t, ActionSubmit, a)
	assert.Equal(t, "\r\n", out.TakeOutput())
	assert.Equal(t, 0, hist.Len())
}

func TestEditor_RecallWithEmptyHistoryIsNoop(t *testing.T) {
	e, out := newTestEditor(16, 4)
	typeText(e, out, "abc")
	out.TakeOutput()

	e.Apply(vt100.Key(vt100.HistoryPrev), out)
	e.Apply(vt100.Key(vt100.HistoryNext), out)
	assert.Equal(t, "abc", string(e.Line()))
	assert.Empty(t, out.TakeOutput())
}

func TestEditor_RecallDoesNotCorruptHistory(t *testing.T) {
	buf := New(16)
	hist := history.NewStore(4, buf.Cap())
	e := NewEditor(buf, hist)
	out := transport.NewLoopback("")

	submit(e, out, "led on")
	e.Apply(vt100.Key(vt100.HistoryPrev), out)
	e.Apply(vt100.Key(vt100.Backspace), out)
	e.Apply(vt100.Insert('X'), out)
	require.Equal(t, "led oX", string(e.Line()))

	assert.Equal(t, []string{"led on"}, hist.Entries())
}

func TestEditor_Cancel(t *testing.T) {
	buf := New(16)
	hist := history.NewStore(4, buf.Cap())
	e := NewEditor(buf, hist)
	out := transport.NewLoopback("")

	typeText(e, out, "oops")
	out.TakeOutput()

	a := e.Apply(vt100.Key(vt100.Cancel), out)
	assert.Equal(t, ActionCancel, a)
	assert.Equal(t, "^C\r\n", out.TakeOutput())
	assert.Empty(t, e.Line())
	assert.Equal(t, 0, hist.Len())
}

func TestEditor_NilHistory(t *testing.T) {
	e := NewEditor(New(8), nil)
	out := transport.NewLoopback("")

	typeText(e, out, "ab")
	e.Apply(vt100.Key(vt100.HistoryPrev), out)
	assert.Equal(t, ActionSubmit, e.Apply(vt100.Key(vt100.Submit), out))
	assert.Equal(t, "ab", string(e.Line()))
}
