package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(Terminal, []string) Status { return Success }

func TestRegistry(t *testing.T) {
	t.Run("new registry is empty", func(t *testing.T) {
		r := NewRegistry(5, 16)
		assert.Equal(t, 0, r.Len())
		assert.Equal(t, 5, r.Cap())
		assert.Empty(t, r.Entries())
	})

	t.Run("register and lookup", func(t *testing.T) {
		r := NewRegistry(5, 16)
		require.NoError(t, r.Register("led", ProgramFunc(noop)))

		p, ok := r.Lookup("led")
		assert.True(t, ok)
		assert.NotNil(t, p)

		_, ok = r.Lookup("LED")
		assert.False(t, ok, "lookup is case sensitive")
		_, ok = r.Lookup("le")
		assert.False(t, ok, "lookup is exact")
	})

	t.Run("registration order is kept", func(t *testing.T) {
		r := NewRegistry(5, 16)
		for _, name := range []string{"zeta", "alpha", "mid"} {
			require.NoError(t, r.Register(name, ProgramFunc(noop)))
		}
		assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Names())

		entries := r.Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, "alpha", entries[1].Name)
	})

	t.Run("registration beyond capacity fails and leaves table unchanged", func(t *testing.T) {
		const capacity = 3
		r := NewRegistry(capacity, 16)
		for _, name := range []string{"a", "b", "c"} {
			require.NoError(t, r.Register(name, ProgramFunc(noop)))
		}

		err := r.Register("d", ProgramFunc(noop))
		assert.ErrorIs(t, err, ErrRegistryFull)
		assert.Equal(t, capacity, r.Len())
		assert.Equal(t, []string{"a", "b", "c"}, r.Names())
		_, ok := r.Lookup("d")
		assert.False(t, ok)
	})

	t.Run("duplicate names shadow later entries", func(t *testing.T) {
		r := NewRegistry(4, 16)
		first := &mockProgram{}
		second := &mockProgram{}
		require.NoError(t, r.Register("dup", first))
		require.NoError(t, r.Register("dup", second))

		assert.Equal(t, 2, r.Len())
		p, ok := r.Lookup("dup")
		require.True(t, ok)
		assert.Same(t, first, p)
	})

	t.Run("invalid registrations", func(t *testing.T) {
		r := NewRegistry(4, 4)

		assert.ErrorIs(t, r.Register("", ProgramFunc(noop)), ErrInvalidName)
		assert.ErrorIs(t, r.Register("toolong", ProgramFunc(noop)), ErrInvalidName)
		assert.ErrorIs(t, r.Register("a b", ProgramFunc(noop)), ErrInvalidName)
		assert.ErrorIs(t, r.Register("a\tb", ProgramFunc(noop)), ErrInvalidName)
		assert.ErrorIs(t, r.Register("ok", nil), ErrNilProgram)
		assert.Equal(t, 0, r.Len())
	})

	t.Run("unregister all clears the table", func(t *testing.T) {
		r := NewRegistry(2, 16)
		require.NoError(t, r.Register("a", ProgramFunc(noop)))
		require.NoError(t, r.Register("b", ProgramFunc(noop)))

		r.UnregisterAll()
		assert.Equal(t, 0, r.Len())
		assert.Equal(t, 2, r.Cap())
		_, ok := r.Lookup("a")
		assert.False(t, ok)

		// The freed capacity is usable again.
		require.NoError(t, r.Register("c", ProgramFunc(noop)))
		require.NoError(t, r.Register("d", ProgramFunc(noop)))
	})

	t.Run("entries are a copy", func(t *testing.T) {
		r := NewRegistry(2, 16)
		require.NoError(t, r.Register("a", ProgramFunc(noop)))
		entries := r.Entries()
		entries[0].Name = "changed"
		assert.Equal(t, []string{"a"}, r.Names())
	})
}

func TestCodesAndStatus(t *testing.T) {
	names := []string{"ARGCOUNT", "OUTOFRANGE", "VALUE", "ACTION", "PARSE", "STORAGE", "IO"}
	for i, want := range names {
		assert.Equal(t, want, ErrorCode(i).String())
	}
	assert.Equal(t, "UNKNOWN", ErrorCode(99).String())
	assert.Equal(t, "UNKNOWN", ErrorCode(-1).String())

	assert.Equal(t, "io-pending", IOPending.String())
	assert.Equal(t, 0, int(Success))
	assert.Equal(t, 1, int(Failure))
	assert.Equal(t, -1, int(IOPending))
}
