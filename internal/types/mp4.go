package types

import (
	"fmt"
	"strings"
)

// IntPair is the value of trkn/disk atoms: number and total.
type IntPair struct {
	Number int
	Total  int
}

// String renders the pair as "N/M".
func (p IntPair) String() string {
	return fmt.Sprintf("%d/%d", p.Number, p.Total)
}

// Cover is the value of a covr data block.
type Cover struct {
	Data   []byte
	Format string // "JPEG", "PNG", "BMP", ...
}

// MIME returns the MIME type matching Format, or "" if unknown.
func (c Cover) MIME() string {
	switch c.Format {
	case "JPEG":
		return "image/jpeg"
	case "PNG":
		return "image/png"
	case "GIF":
		return "image/gif"
	case "BMP":
		return "image/bmp"
	default:
		return ""
	}
}

// DataBlock is one "data" (or freeform "mean"/"name") block of an ilst item.
type DataBlock struct {
	Type   string // block type, usually "data"
	Flags  uint32 // version/flags word; low 24 bits are the data type code
	Index  int    // position within the item
	Length uint32 // declared block length, header included
	Raw    []byte // payload bytes handed to the extractor
	Value  any    // decoded payload
}

// MP4Field is one decoded ilst item.
type MP4Field struct {
	Name   string // human name ("title", "musicbrainz_trackid")
	Atom   string // atom name ("\xa9nam", "----:com.apple.iTunes:ASIN")
	Blocks []DataBlock
}

// Value returns the decoded value for single-block items, or a slice of
// values when the item carries several blocks.
func (f MP4Field) Value() any {
	switch len(f.Blocks) {
	case 0:
		return nil
	case 1:
		return f.Blocks[0].Value
	}
	values := make([]any, len(f.Blocks))
	for i, b := range f.Blocks {
		values[i] = b.Value
	}
	return values
}

// String renders the field value as text.
func (f MP4Field) String() string {
	switch v := f.Value().(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, "; ")
	default:
		return fmt.Sprint(v)
	}
}

// MP4Tags holds metadata decoded from moov/udta/meta/ilst.
type MP4Tags struct {
	Title   string
	Artist  string
	Album   string
	Comment string
	Date    string
	Year    string // year component of Date
	Track   string // "N/M"

	// Fields maps human names to decoded items.
	Fields map[string]MP4Field

	// Warnings encountered during parsing (non-fatal issues)
	Warnings []Warning
}

// Covers returns all cover images found in the covr item.
func (t *MP4Tags) Covers() []Cover {
	if t == nil {
		return nil
	}
	f, ok := t.Fields["cover"]
	if !ok {
		return nil
	}
	var covers []Cover
	for _, b := range f.Blocks {
		if c, ok := b.Value.(Cover); ok {
			covers = append(covers, c)
		}
	}
	return covers
}
