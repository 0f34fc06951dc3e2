package commands

import (
	"errors"
	"fmt"
)

var (
	ErrRegistryFull = errors.New("command registry is full")
	ErrInvalidName  = errors.New("invalid command name")
	ErrNilProgram   = errors.New("program is nil")
)

// Entry binds a name to a program.
type Entry struct {
	Name    string
	Program Program
}

// Registry is a fixed-capacity command table kept in registration order.
//
// Names are not deduplicated: registering a name twice appends a second
// entry that Lookup never reaches, because the first match wins.
type Registry struct {
	entries []Entry
	maxName int
}

// NewRegistry creates a table for at most capacity commands whose names are
// at most maxName bytes long. A maxName of zero or less means no limit.
func NewRegistry(capacity, maxName int) *Registry {
	if capacity < 0 {
		capacity = 0
	}
	return &Registry{
		entries: make([]Entry, 0, capacity),
		maxName: maxName,
	}
}

// Register appends a command. The table is left unchanged on error.
func (r *Registry) Register(name string, p Program) error {
	if p == nil {
		return fmt.Errorf("%w: %q", ErrNilProgram, name)
	}
	if err := r.validateName(name); err != nil {
		return err
	}
	if len(r.entries) == cap(r.entries) {
		return fmt.Errorf("%w: cannot register %q, capacity is %d", ErrRegistryFull, name, cap(r.entries))
	}

	r.entries = append(r.entries, Entry{Name: name, Program: p})
	return nil
}

func (r *Registry) validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if r.maxName > 0 && len(name) > r.maxName {
		return fmt.Errorf("%w: %q is longer than %d bytes", ErrInvalidName, name, r.maxName)
	}
	for i := 0; i < len(name); i++ {
		if c := name[i]; c <= ' ' || c >= 0x7F {
			return fmt.Errorf("%w: %q contains a blank or non-printable byte", ErrInvalidName, name)
		}
	}
	return nil
}

// Lookup returns the first program registered under name.
func (r *Registry) Lookup(name string) (Program, bool) {
	for _, e := range r.entries {
		if e.Name == name {
			return e.Program, true
		}
	}
	return nil, false
}

// UnregisterAll empties the table. Programs are only referenced, so there is
// nothing to tear down.
func (r *Registry) UnregisterAll() {
	clear(r.entries)
	r.entries = r.entries[:0]
}

// Entries returns a copy of the table in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Name
	}
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Cap returns the table capacity.
func (r *Registry) Cap() int {
	return cap(r.entries)
}
