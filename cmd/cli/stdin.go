package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/kcaldas/microshell/pkg/transport"
)

// isTerminal reports whether f is an interactive terminal rather than a pipe
// or redirect.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// stdioPort is the shell's transport over this process's stdin and stdout.
// When stdin is a terminal it is put in raw mode, since the shell echoes and
// edits the line itself.
type stdioPort struct {
	*transport.Stream
	*transport.StreamWriter

	restore func() error
}

func openStdio() (*stdioPort, error) {
	p := &stdioPort{
		StreamWriter: transport.NewWriter(os.Stdout),
		restore:      func() error { return nil },
	}

	if isTerminal(os.Stdin) {
		fd := int(os.Stdin.Fd())
		state, err := term.MakeRaw(fd)
		if err != nil {
			return nil, err
		}
		p.restore = func() error { return term.Restore(fd, state) }
	}

	p.Stream = transport.NewStream(os.Stdin, transport.DefaultStreamBuffer)
	return p, nil
}

// Err returns the first write error, or the error that ended the input.
func (p *stdioPort) Err() error {
	if err := p.StreamWriter.Err(); err != nil {
		return err
	}
	return p.Stream.Err()
}

// Close stops reading and gives the terminal back its original mode.
func (p *stdioPort) Close() error {
	p.Stream.Close()
	return p.restore()
}
