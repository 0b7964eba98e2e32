package view

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Source is the byte store a viewport windows over. bytes.Reader
// satisfies it, which is what the tests use.
type Source interface {
	io.ReaderAt
	Size() int64
}

// FileSource serves a regular file. The size is taken once at open;
// a file that grows underneath keeps its original extent until
// reopened.
type FileSource struct {
	f    *os.File
	size int64
	name string
}

// OpenFile opens path read-only and records its size.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("view: open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("view: stat %s: %w", path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	return &FileSource{f: f, size: info.Size(), name: filepath.Base(path)}, nil
}

func (s *FileSource) ReadAt(p []byte, off int64) (int, error) {
	return s.f.ReadAt(p, off)
}

func (s *FileSource) Size() int64 { return s.size }

// Name returns the base name of the opened file.
func (s *FileSource) Name() string { return s.name }

func (s *FileSource) Close() error { return s.f.Close() }
