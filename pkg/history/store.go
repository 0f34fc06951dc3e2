// Package history keeps the lines a user has submitted so they can be
// recalled with the arrow keys.
package history

// Store is a fixed ring of submitted lines. Every slot is allocated up front
// with the line width; appending overwrites the oldest slot once the ring is
// full. Recall only ever copies out of the ring.
type Store struct {
	slots [][]byte
	lens  []int
	width int

	head  int // next slot to write
	count int
	nav   int // -1 when not browsing, else age of the selected line (0 == newest)
}

// NewStore allocates depth slots of width bytes each. A depth of zero
// disables history: appends are dropped and recall never succeeds.
func NewStore(depth, width int) *Store {
	if depth < 0 {
		depth = 0
	}
	if width < 0 {
		width = 0
	}
	s := &Store{
		slots: make([][]byte, depth),
		lens:  make([]int, depth),
		width: width,
		nav:   -1,
	}
	for i := range s.slots {
		s.slots[i] = make([]byte, width)
	}
	return s
}

// Append records a copy of line and stops browsing. Empty lines are not
// recorded and lines wider than a slot are truncated.
func (s *Store) Append(line []byte) {
	s.nav = -1
	if len(s.slots) == 0 || len(line) == 0 {
		return
	}

	n := copy(s.slots[s.head], line)
	s.lens[s.head] = n
	s.head = (s.head + 1) % len(s.slots)
	if s.count < len(s.slots) {
		s.count++
	}
}

// Prev selects the next older line and copies it into dst. Browsing starts at
// the newest line. ok is false when the store is empty or the oldest line is
// already selected.
func (s *Store) Prev(dst []byte) (n int, ok bool) {
	next := s.nav + 1
	if next >= s.count {
		return 0, false
	}
	s.nav = next
	return s.copyOut(dst), true
}

// Next selects the next newer line and copies it into dst. ok is false when
// not browsing or the newest line is already selected.
func (s *Store) Next(dst []byte) (n int, ok bool) {
	if s.nav <= 0 {
		return 0, false
	}
	s.nav--
	return s.copyOut(dst), true
}

func (s *Store) copyOut(dst []byte) int {
	i := s.slotFor(s.nav)
	return copy(dst, s.slots[i][:s.lens[i]])
}

// slotFor maps an age (0 == newest) to a slot index.
func (s *Store) slotFor(age int) int {
	depth := len(s.slots)
	return ((s.head-1-age)%depth + depth) % depth
}

// Reset stops browsing without touching the stored lines.
func (s *Store) Reset() {
	s.nav = -1
}

// Len returns the number of stored lines.
func (s *Store) Len() int {
	return s.count
}

// Cap returns the number of slots.
func (s *Store) Cap() int {
	return len(s.slots)
}

// Entries returns copies of the stored lines, oldest first.
func (s *Store) Entries() []string {
	out := make([]string, 0, s.count)
	for age := s.count - 1; age >= 0; age-- {
		i := s.slotFor(age)
		out = append(out, string(s.slots[i][:s.lens[i]]))
	}
	return out
}
