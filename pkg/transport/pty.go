package transport

import (
	"fmt"
	"os"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// PTY exposes the engine on a pseudo-terminal so any terminal program can
// attach to it the way it would attach to a device's serial line, e.g.
// `screen /dev/pts/7`.
type PTY struct {
	*Stream
	*StreamWriter

	master *os.File
	slave  *os.File
}

// OpenPTY allocates a pseudo-terminal pair. The slave side is switched to raw
// mode because the engine does its own echo and line editing.
func OpenPTY(buffer int) (*PTY, error) {
	master, slave, err := pty.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open pty: %w", err)
	}

	if _, err := term.MakeRaw(int(slave.Fd())); err != nil {
		master.Close()
		slave.Close()
		return nil, fmt.Errorf("failed to set pty raw mode: %w", err)
	}

	return &PTY{
		Stream:       NewStream(master, buffer),
		StreamWriter: NewWriter(master),
		master:       master,
		slave:        slave,
	}, nil
}

// Name returns the device path a terminal program should open.
func (p *PTY) Name() string {
	return p.slave.Name()
}

// Slave returns the slave end of the pair.
func (p *PTY) Slave() *os.File {
	return p.slave
}

// Err returns the first write error, or the error that ended the input.
func (p *PTY) Err() error {
	if err := p.StreamWriter.Err(); err != nil {
		return err
	}
	return p.Stream.Err()
}

// Close releases both ends of the pair.
func (p *PTY) Close() error {
	p.Stream.Close()
	serr := p.slave.Close()
	if err := p.master.Close(); err != nil {
		return err
	}
	return serr
}
