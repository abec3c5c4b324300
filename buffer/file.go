package buffer

import (
	"fmt"
	"os"
	"strings"
)

// Storage reads and writes whole documents by name.
type Storage interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
}

// DiskStorage stores documents as files on the local filesystem.
type DiskStorage struct{}

func (DiskStorage) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (DiskStorage) WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, 0644)
}

// SplitLines normalizes CRLF line endings and splits content on '\n'.
// The result always has at least one line.
func SplitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// Load replaces the document with the contents of name. On error the
// buffer is left untouched.
func (b *Buffer) Load(s Storage, name string) error {
	data, err := s.ReadFile(name)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	b.Lines = SplitLines(string(data))
	b.Path = name
	b.Cursor = Cursor{}
	b.ScrollY = 0
	b.MarkSaved()
	return nil
}

// Save writes the document to b.Path, lines joined by '\n' with no
// trailing newline added.
func (b *Buffer) Save(s Storage) error {
	if b.Path == "" {
		return fmt.Errorf("save: no file name")
	}
	if err := s.WriteFile(b.Path, []byte(b.currentSnapshot())); err != nil {
		return fmt.Errorf("save %s: %w", b.Path, err)
	}
	b.MarkSaved()
	return nil
}
