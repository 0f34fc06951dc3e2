package history

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// DefaultFileName is the history file kept in the home directory.
const DefaultFileName = ".microshell_history"

// File keeps submitted lines on disk so a host-side shell can seed its Store
// from the previous session. It stores one line per row, oldest first.
type File struct {
	path string
	max  int
}

// NewFile creates a history file handle keeping at most max lines. A max of
// zero or less keeps everything.
func NewFile(path string, max int) *File {
	return &File{path: path, max: max}
}

// DefaultFilePath returns ~/.microshell_history.
func DefaultFilePath() (string, error) {
	return homedir.Expand("~/" + DefaultFileName)
}

// Path returns the file location.
func (f *File) Path() string {
	return f.path
}

// Load returns the stored lines, oldest first. A missing file yields no
// lines and no error.
func (f *File) Load() ([]string, error) {
	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), "\r"); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	return f.trim(lines), nil
}

// Save replaces the file with lines. The new content is written next to the
// file and renamed over it.
func (f *File) Save(lines []string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, line := range f.trim(lines) {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write history file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}

func (f *File) trim(lines []string) []string {
	if f.max > 0 && len(lines) > f.max {
		return lines[len(lines)-f.max:]
	}
	return lines
}
