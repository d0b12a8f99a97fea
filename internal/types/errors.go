package types

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTag is returned when a resource carries neither an ID3v1 nor an ID3v2 tag.
	ErrNoTag = errors.New("no ID3 tag found")

	// ErrUnsupportedFrame marks frames using compression, encryption,
	// unsynchronisation or grouping. Such frames are skipped.
	ErrUnsupportedFrame = errors.New("unsupported frame flags")

	// ErrInvalidEncoding marks a frame whose text encoding selector is not 0-3.
	ErrInvalidEncoding = errors.New("invalid text encoding")
)

// OutOfBoundsError is returned when attempting to read beyond buffer bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size || e.Offset < 0 {
		return fmt.Sprintf("%s: offset %d out of bounds (size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// UnsupportedFormatError is returned when the resource is neither ID3-tagged nor MPEG-4.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// CorruptedFileError is returned when file structure is invalid.
type CorruptedFileError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	return fmt.Sprintf("%s: corrupted file at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// DuplicateAtomError is returned when an MPEG-4 item list carries the same
// metadata atom twice. The parse is aborted; no partial result is returned.
type DuplicateAtomError struct {
	Path   string
	Atom   string
	Offset int64
}

func (e *DuplicateAtomError) Error() string {
	return fmt.Sprintf("%s: duplicate atom %q at offset %d, aborting", e.Path, e.Atom, e.Offset)
}

// ReadError wraps a failure reported by a Reader.
type ReadError struct {
	Path   string
	Op     string // "open", "read"
	Offset int64
	Length int
	Err    error
}

func (e *ReadError) Error() string {
	if e.Op == "read" {
		return fmt.Sprintf("%s: read %d bytes at offset %d: %v", e.Path, e.Length, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings indicate problems that don't prevent metadata extraction but
// may indicate corrupted or unusual data. Examples include:
//   - Frames using unsupported flags (compression, encryption)
//   - Unknown text encoding selectors
//   - Unsynchronised ID3v2 tags, which are skipped entirely
//   - Truncated MP4 data blocks
type Warning struct {
	// Stage where the warning occurred
	Stage string // "id3v1", "id3v2", "mp4"

	// Warning message
	Message string

	// Offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
