package pipe

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StdinPath selects standard input as the source.
const StdinPath = "-"

// Source is an open data source with a known (possibly unknown: -1) size.
type Source struct {
	io.ReadCloser
	Name string
	Size int64
}

// OpenSource opens the file at path for reading, or standard input when path
// is StdinPath (size -1).
func OpenSource(path string) (*Source, error) {
	if path == StdinPath {
		return &Source{ReadCloser: io.NopCloser(os.Stdin), Name: "stdin", Size: -1}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	return &Source{ReadCloser: file, Name: stat.Name(), Size: stat.Size()}, nil
}

// Sink is an open data destination.
type Sink struct {
	io.WriteCloser
	Name string
}

// CreateSink creates the file at path for writing, creating parent
// directories as needed. An empty path discards everything written.
func CreateSink(path string) (*Sink, error) {
	if path == "" {
		return &Sink{WriteCloser: nopWriteCloser{io.Discard}, Name: "discard"}, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create sink: %w", err)
	}

	return &Sink{WriteCloser: file, Name: path}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
