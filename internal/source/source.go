// Package source provides types.Reader implementations for local files,
// HTTP range requests and in-memory data.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go4.org/readerutil"
)

// ReaderAt adapts a readerutil.SizeReaderAt (bytes.Reader,
// io.SectionReader, readerutil.NewMultiReaderAt, ...) to types.Reader.
type ReaderAt struct {
	r    readerutil.SizeReaderAt
	name string
}

// NewReaderAt returns a Reader over r. name appears in error messages.
func NewReaderAt(r readerutil.SizeReaderAt, name string) *ReaderAt {
	return &ReaderAt{r: r, name: name}
}

// Name returns the name given to NewReaderAt.
func (s *ReaderAt) Name() string { return s.name }

// Open reports the size of the underlying data.
func (s *ReaderAt) Open(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.r.Size(), nil
}

// Read returns up to length bytes at position.
func (s *ReaderAt) Read(ctx context.Context, length int, position int64) ([]byte, error) {
	return readAt(ctx, s.r, s.r.Size(), length, position)
}

// Close is a no-op; the caller owns the underlying reader.
func (s *ReaderAt) Close() error { return nil }

// readAt reads a clamped range from ra. Reads past size return a short
// buffer rather than io.EOF.
func readAt(ctx context.Context, ra io.ReaderAt, size int64, length int, position int64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if position < 0 {
		return nil, fmt.Errorf("negative position %d", position)
	}
	if length <= 0 || position >= size {
		return []byte{}, nil
	}
	if rem := size - position; int64(length) > rem {
		length = int(rem)
	}

	buf := make([]byte, length)
	n, err := ra.ReadAt(buf, position)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:n], nil
}
