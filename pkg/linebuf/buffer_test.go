package linebuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_InsertWithinCapacity(t *testing.T) {
	b := New(8) // seven usable bytes
	accepted := 0
	for _, c := range []byte("abcdefghij") {
		if b.Insert(c) {
			accepted++
		}
	}

	assert.Equal(t, 7, accepted)
	assert.Equal(t, 7, b.Len())
	assert.Equal(t, 7, b.Cursor())
	assert.Equal(t, "abcdefg", b.String())
	assert.True(t, b.Full())
}

func TestBuffer_InsertMidLine(t *testing.T) {
	b := New(16)
	b.Set([]byte("ac"))
	b.Left()
	assert.True(t, b.Insert('b'))
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, 2, b.Cursor())
	assert.Equal(t, "c", string(b.Tail()))
}

func TestBuffer_Deletes(t *testing.T) {
	t.Run("delete back at start is a noop", func(t *testing.T) {
		b := New(16)
		b.Set([]byte("abc"))
		for b.Left() {
		}
		assert.False(t, b.DeleteBack())
		assert.Equal(t, "abc", b.String())
	})

	t.Run("delete forward at end is a noop", func(t *testing.T) {
		b := New(16)
		b.Set([]byte("abc"))
		assert.False(t, b.DeleteForward())
		assert.Equal(t, "abc", b.String())
		assert.Equal(t, 3, b.Cursor())
	})

	t.Run("delete back mid line", func(t *testing.T) {
		b := New(16)
		b.Set([]byte("abcd"))
		b.Left()
		assert.True(t, b.DeleteBack())
		assert.Equal(t, "abd", b.String())
		assert.Equal(t, 2, b.Cursor())
	})

	t.Run("delete forward keeps the cursor", func(t *testing.T) {
		b := New(16)
		b.Set([]byte("abcd"))
		b.Left()
		b.Left()
		assert.True(t, b.DeleteForward())
		assert.Equal(t, "abd", b.String())
		assert.Equal(t, 2, b.Cursor())
	})
}

func TestBuffer_CursorClamps(t *testing.T) {
	b := New(16)
	assert.False(t, b.Left())
	assert.False(t, b.Right())

	b.Set([]byte("x"))
	assert.False(t, b.Right())
	assert.True(t, b.Left())
	assert.False(t, b.Left())
	assert.Equal(t, 0, b.Cursor())
}

func TestBuffer_SetTruncates(t *testing.T) {
	b := New(4)
	b.Set([]byte("abcdef"))
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, 3, b.Cursor())

	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cursor())
}

func TestBuffer_TinyCapacity(t *testing.T) {
	b := New(0)
	assert.Equal(t, 0, b.Cap())
	assert.False(t, b.Insert('a'))
	assert.Equal(t, "", b.String())
}
