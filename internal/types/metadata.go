// Package types provides core data structures for audio tag metadata.
//
// This package defines the ID3 and MPEG-4 tag records, the Reader contract
// and the error types shared by the format parsers.
package types

// Metadata is the format-agnostic result of an auto-detected parse.
//
// Exactly one of ID3 and MP4 is set, matching Format.
type Metadata struct {
	// Detected format
	Format Format

	// Size of the resource in bytes
	Size int64

	Title  string
	Album  string
	Artist string
	Year   string

	ID3 *ID3Tag
	MP4 *MP4Tags

	// Warnings encountered during parsing (non-fatal issues)
	Warnings []Warning
}

// FromID3 builds Metadata from a merged ID3 tag.
func FromID3(tag *ID3Tag, size int64) *Metadata {
	return &Metadata{
		Format:   FormatID3,
		Size:     size,
		Title:    tag.Title,
		Album:    tag.Album,
		Artist:   tag.Artist,
		Year:     tag.Year,
		ID3:      tag,
		Warnings: tag.Warnings,
	}
}

// FromMP4 builds Metadata from decoded MP4 tags.
func FromMP4(tags *MP4Tags, size int64) *Metadata {
	return &Metadata{
		Format:   FormatMP4,
		Size:     size,
		Title:    tags.Title,
		Album:    tags.Album,
		Artist:   tags.Artist,
		Year:     tags.Year,
		MP4:      tags,
		Warnings: tags.Warnings,
	}
}
