package types

import (
	"context"
	"log/slog"
)

// Reader provides random access to a resource by byte range.
//
// Implementations exist for local files, HTTP range requests and in-memory
// buffers. A Reader is owned by a single parse at a time, but Read may be
// called concurrently within that parse once Open has returned.
type Reader interface {
	// Open prepares the resource and reports its size in bytes.
	Open(ctx context.Context) (int64, error)

	// Read returns up to length bytes starting at position. When the resource
	// ends early a short buffer is returned without error; only genuine I/O
	// failures are reported as errors.
	Read(ctx context.Context, length int, position int64) ([]byte, error)

	// Close releases the resource. It is safe to call on an unopened Reader.
	Close() error
}

// SourceName returns a printable name for r, used in error messages.
func SourceName(r Reader) string {
	if n, ok := r.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "<reader>"
}

// ReadRange performs one range read, wrapping failures in a ReadError.
func ReadRange(ctx context.Context, r Reader, length int, position int64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if length <= 0 {
		return nil, nil
	}
	if position < 0 {
		position = 0
	}

	buf, err := r.Read(ctx, length, position)
	if err != nil {
		return nil, &ReadError{
			Path:   SourceName(r),
			Op:     "read",
			Offset: position,
			Length: length,
			Err:    err,
		}
	}
	if len(buf) > length {
		buf = buf[:length]
	}
	return buf, nil
}

// DefaultMaxTagSize bounds single reads of tag bodies and item payloads.
const DefaultMaxTagSize = 64 << 20

// Config carries parse settings from the public options to the format parsers.
type Config struct {
	Logger *slog.Logger

	// ExtendedMP4Fields decodes every known ilst item instead of the
	// title/date/artist/album/tracknumber/comment core set.
	ExtendedMP4Fields bool

	// MaxTagSize caps the ID3v2 body and per-item MP4 payload reads (0 = default).
	MaxTagSize int
}

// Log returns the configured logger or one that discards everything.
func (c Config) Log() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// TagLimit returns the effective MaxTagSize.
func (c Config) TagLimit() int {
	if c.MaxTagSize <= 0 {
		return DefaultMaxTagSize
	}
	return c.MaxTagSize
}
