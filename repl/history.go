package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// HistoryFileName is the name of the history file within the user's home
// directory.
const HistoryFileName = ".lispedit_history"

// DefaultHistoryFile returns the path of the history file in the user's home
// directory.
func DefaultHistoryFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find home dir: %w", err)
	}
	return filepath.Join(home, HistoryFileName), nil
}

type historyReader interface {
	ReadHistory(r io.Reader) (int, error)
}

// History persists the lines entered in a session. All its operations are
// best effort: a missing file is not an error.
type History struct {
	path string
}

// NewHistory creates a history backed by the file at path. An empty path
// disables persistence.
func NewHistory(path string) *History {
	return &History{path: path}
}

// Path returns the file the history is kept in.
func (h *History) Path() string {
	return h.path
}

// Load reads previous lines into the line editor.
func (h *History) Load(dst historyReader) (int, error) {
	if h.path == "" {
		return 0, nil
	}

	f, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()

	return dst.ReadHistory(f)
}

// Append adds a line to the end of the history file.
func (h *History) Append(line string) error {
	if h.path == "" {
		return nil
	}

	f, err := os.OpenFile(h.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(f, line); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
