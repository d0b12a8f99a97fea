package audiotags

import (
	"errors"

	"github.com/simonhull/audiotags/internal/types"
)

// OutOfBoundsError is an alias to types.OutOfBoundsError.
type OutOfBoundsError = types.OutOfBoundsError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
type UnsupportedFormatError = types.UnsupportedFormatError

// CorruptedFileError is an alias to types.CorruptedFileError.
type CorruptedFileError = types.CorruptedFileError

// DuplicateAtomError is an alias to types.DuplicateAtomError.
type DuplicateAtomError = types.DuplicateAtomError

// ReadError is an alias to types.ReadError.
type ReadError = types.ReadError

// Warning is an alias to types.Warning.
type Warning = types.Warning

var (
	// ErrNoTag is returned by ReadID3 when neither an ID3v1 nor an ID3v2 tag is present.
	ErrNoTag = types.ErrNoTag

	// ErrUnsupportedFrame marks ID3v2 frames skipped for compression,
	// encryption, unsynchronisation or grouping flags.
	ErrUnsupportedFrame = types.ErrUnsupportedFrame

	// ErrInvalidEncoding marks ID3v2 frames skipped for an unknown text encoding.
	ErrInvalidEncoding = types.ErrInvalidEncoding

	// ErrStrictParsing is wrapped by errors returned under WithStrictParsing.
	ErrStrictParsing = errors.New("strict parsing failed")
)
