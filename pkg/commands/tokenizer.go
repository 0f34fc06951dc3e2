package commands

// Tokenizer splits submitted lines into argv. It works on a private scratch
// copy of the line so the caller's buffer is never modified.
type Tokenizer struct {
	scratch []byte
	argv    []string
}

// NewTokenizer sizes the scratch copy for lines of up to width bytes and the
// argument vector for maxArgs entries (at least one).
func NewTokenizer(width, maxArgs int) *Tokenizer {
	if width < 0 {
		width = 0
	}
	if maxArgs < 1 {
		maxArgs = 1
	}
	return &Tokenizer{
		scratch: make([]byte, width),
		argv:    make([]string, 0, maxArgs),
	}
}

// Split tokenizes line on runs of spaces and tabs. Once all but the last
// slot are taken, the last slot receives the rest of the line with trailing
// blanks removed.
//
// The returned slice is reused by the next call.
func (t *Tokenizer) Split(line []byte) []string {
	argv := t.argv[:0]
	n := copy(t.scratch, line)
	src := t.scratch[:n]

	i := 0
	for {
		for i < n && isBlank(src[i]) {
			i++
		}
		if i >= n {
			break
		}

		end := i
		if len(argv) == cap(argv)-1 {
			end = n
			for end > i && isBlank(src[end-1]) {
				end--
			}
		} else {
			for end < n && !isBlank(src[end]) {
				end++
			}
		}
		argv = append(argv, string(src[i:end]))
		i = end
	}

	t.argv = argv
	return argv
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
