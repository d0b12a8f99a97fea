package source

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// File reads a local file.
type File struct {
	path string

	mu   sync.Mutex
	f    *os.File
	size int64
}

// NewFile returns a Reader for the file at path. The file is not opened
// until Open is called.
func NewFile(path string) *File {
	return &File{path: path}
}

// Name returns the file path.
func (s *File) Name() string { return s.path }

// Open opens the file and reports its size.
func (s *File) Open(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.f != nil {
		return s.size, nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return 0, fmt.Errorf("stat file: %w", err)
	}
	if stat.IsDir() {
		f.Close()
		return 0, fmt.Errorf("open file: %s is a directory", s.path)
	}

	s.f = f
	s.size = stat.Size()
	return s.size, nil
}

// Read returns up to length bytes at position.
func (s *File) Read(ctx context.Context, length int, position int64) ([]byte, error) {
	s.mu.Lock()
	f, size := s.f, s.size
	s.mu.Unlock()

	if f == nil {
		return nil, fmt.Errorf("read %s: file not open", s.path)
	}
	return readAt(ctx, f, size, length, position)
}

// Close closes the file. It is safe to call on an unopened File.
func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}
