// Package linebuf implements the editable input line: a fixed-capacity byte
// buffer with a cursor, and an Editor that applies decoded key events to it
// while echoing the visible result back to the terminal.
package linebuf

// Buffer is a fixed-capacity line with a cursor. One byte of the capacity is
// reserved, mirroring a C string terminator, so at most Cap() bytes are ever
// stored. Invariant: 0 <= cursor <= length <= Cap().
type Buffer struct {
	data   []byte
	length int
	cursor int
}

// New allocates a buffer of capacity bytes. Capacities below 1 are raised to
// 1, which leaves no room for input.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{data: make([]byte, capacity)}
}

// Cap returns how many bytes the line can hold.
func (b *Buffer) Cap() int { return len(b.data) - 1 }

// Len returns the logical line length.
func (b *Buffer) Len() int { return b.length }

// Cursor returns the cursor index.
func (b *Buffer) Cursor() int { return b.cursor }

// Full reports whether another insert would be rejected.
func (b *Buffer) Full() bool { return b.length >= b.Cap() }

// Bytes returns the line contents. The slice aliases the buffer and is only
// valid until the next edit.
func (b *Buffer) Bytes() []byte { return b.data[:b.length] }

// String returns a copy of the line.
func (b *Buffer) String() string { return string(b.data[:b.length]) }

// Tail returns the bytes from the cursor to the end of the line.
func (b *Buffer) Tail() []byte { return b.data[b.cursor:b.length] }

// Insert places c at the cursor, shifting the tail right.
func (b *Buffer) Insert(c byte) bool {
	if b.Full() {
		return false
	}
	copy(b.data[b.cursor+1:b.length+1], b.data[b.cursor:b.length])
	b.data[b.cursor] = c
	b.length++
	b.cursor++
	return true
}

// DeleteBack removes the byte before the cursor.
func (b *Buffer) DeleteBack() bool {
	if b.cursor == 0 {
		return false
	}
	copy(b.data[b.cursor-1:], b.data[b.cursor:b.length])
	b.length--
	b.cursor--
	return true
}

// DeleteForward removes the byte under the cursor.
func (b *Buffer) DeleteForward() bool {
	if b.cursor == b.length {
		return false
	}
	copy(b.data[b.cursor:], b.data[b.cursor+1:b.length])
	b.length--
	return true
}

// Left moves the cursor one byte left.
func (b *Buffer) Left() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	return true
}

// Right moves the cursor one byte right.
func (b *Buffer) Right() bool {
	if b.cursor == b.length {
		return false
	}
	b.cursor++
	return true
}

// Set replaces the line with p, truncated to Cap(), and puts the cursor at
// the end.
func (b *Buffer) Set(p []byte) {
	b.length = copy(b.data[:b.Cap()], p)
	b.cursor = b.length
}

// fill lets fn write directly into the usable area and adopts the length it
// reports. Used to recall history without an intermediate copy.
func (b *Buffer) fill(fn func(dst []byte) (int, bool)) bool {
	n, ok := fn(b.data[:b.Cap()])
	if !ok {
		return false
	}
	b.length = n
	b.cursor = n
	return true
}

// Clear empties the line.
func (b *Buffer) Clear() {
	b.length = 0
	b.cursor = 0
}
