package transport

import (
	"fmt"

	"go.bug.st/serial"
)

// DefaultBaudRate matches the usual UART console speed.
const DefaultBaudRate = 115200

// Serial attaches the engine to a serial port, 8N1.
type Serial struct {
	*Stream
	*StreamWriter

	port serial.Port
	name string
}

// OpenSerial opens the named port. A baud rate of 0 selects DefaultBaudRate.
func OpenSerial(name string, baud int, buffer int) (*Serial, error) {
	if baud == 0 {
		baud = DefaultBaudRate
	}

	port, err := serial.Open(name, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", name, err)
	}

	return &Serial{
		Stream:       NewStream(port, buffer),
		StreamWriter: NewWriter(port),
		port:         port,
		name:         name,
	}, nil
}

// Name returns the port the transport was opened on.
func (s *Serial) Name() string {
	return s.name
}

// Err returns the first write error, or the error that ended the input.
func (s *Serial) Err() error {
	if err := s.StreamWriter.Err(); err != nil {
		return err
	}
	return s.Stream.Err()
}

// Close stops the pump and closes the port.
func (s *Serial) Close() error {
	s.Stream.Close()
	return s.port.Close()
}
