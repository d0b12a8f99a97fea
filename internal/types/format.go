package types

import (
	"context"
	"slices"
)

// Format represents the detected tag container format.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatID3 represents MP3 streams with ID3v1 and/or ID3v2 tags.
	FormatID3
	// FormatMP4 represents MPEG-4 files (M4A, M4B, MP4) with ilst metadata.
	FormatMP4
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatID3:
		return "ID3"
	case FormatMP4:
		return "MP4"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatID3:
		return []string{".mp3"}
	case FormatMP4:
		return []string{".m4a", ".m4b", ".mp4", ".m4p"}
	default:
		return nil
	}
}

// mp4Brands are ftyp major brands accepted as MPEG-4 audio containers.
var mp4Brands = []string{"M4A ", "M4B ", "M4P ", "mp41", "mp42", "isom", "iso2", "dash"}

// DetectFormat determines the tag format by examining magic bytes.
//
// The leading bytes identify ID3v2 ("ID3"), MPEG audio frame sync and
// MPEG-4 ("ftyp"). Resources matching none of these are checked for a
// trailing ID3v1 "TAG" block.
func DetectFormat(ctx context.Context, r Reader, size int64) (Format, error) {
	name := SourceName(r)
	if size < 4 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   name,
			Reason: "file too small",
		}
	}

	magic, err := ReadRange(ctx, r, 12, 0)
	if err != nil {
		return FormatUnknown, err
	}
	if len(magic) < 4 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   name,
			Reason: "failed to read file header",
		}
	}

	if string(magic[:3]) == "ID3" {
		return FormatID3, nil
	}

	// MP3 frame sync (11 set bits) catches streams without an ID3v2 tag
	if magic[0] == 0xFF && (magic[1]&0xE0) == 0xE0 {
		return FormatID3, nil
	}

	if len(magic) >= 12 && string(magic[4:8]) == "ftyp" {
		if slices.Contains(mp4Brands, string(magic[8:12])) {
			return FormatMP4, nil
		}
		return FormatUnknown, &UnsupportedFormatError{
			Path:   name,
			Reason: "unsupported file brand " + string(magic[8:12]),
		}
	}

	if size >= 128 {
		tail, err := ReadRange(ctx, r, 3, size-128)
		if err != nil {
			return FormatUnknown, err
		}
		if string(tail) == "TAG" {
			return FormatID3, nil
		}
	}

	return FormatUnknown, &UnsupportedFormatError{
		Path:   name,
		Reason: "unsupported file format",
	}
}
