package types

import "fmt"

// FrameValue is the decoded payload of an ID3v2 frame: Text, Image or Private.
// A nil FrameValue means the frame decoded to no value (for example a
// numeric genre outside the genre table).
type FrameValue interface {
	frameValue()
}

// Text is the value of text, URL and comment frames.
type Text string

func (Text) frameValue() {}

// Private is the value of a PRIV frame.
type Private struct {
	Identifier string
	Data       []byte
}

func (Private) frameValue() {}

// Frame is one decoded ID3v2 frame.
type Frame struct {
	ID    string     // 3- or 4-character frame ID ("TIT2", "TT2")
	Name  string     // semantic name ("title", "artist", "image")
	Value FrameValue // nil when the frame carries no usable value
}

// Text returns the frame's value as a string, or "" if it is not textual.
func (f Frame) Text() string {
	if t, ok := f.Value.(Text); ok {
		return string(t)
	}
	return ""
}

// ID3v1 is the fixed 128-byte trailing tag.
type ID3v1 struct {
	Title    string
	Artist   string
	Album    string
	Year     string
	Comment  string
	Genre    string
	Track    int    // valid only when HasTrack
	HasTrack bool   // ID3v1.1 layout
	Version  string // "1.0" or "1.1"
}

// ID3v2 is a leading ID3v2.2/2.3/2.4 tag.
type ID3v2 struct {
	Major byte
	Minor byte

	// Frames in file order, including images.
	Frames []Frame

	// Images collected from APIC/PIC frames.
	Images []Image

	// Values maps semantic frame names to the last value seen for them.
	Values map[string]FrameValue

	Title  string
	Album  string
	Artist string
	Year   string
}

// Version returns the tag version, e.g. "2.4.0".
func (t *ID3v2) Version() string {
	return fmt.Sprintf("2.%d.%d", t.Major, t.Minor)
}

// Get returns the textual value stored under a semantic name.
func (t *ID3v2) Get(name string) string {
	if t == nil {
		return ""
	}
	if v, ok := t.Values[name].(Text); ok {
		return string(v)
	}
	return ""
}

// ID3Tag merges an ID3v1 and an ID3v2 tag.
//
// Title, Album and Artist prefer the v2 value and fall back to v1. Year is
// always taken from v1, even when the v2 tag carries TYER/TYE.
type ID3Tag struct {
	Title  string
	Album  string
	Artist string
	Year   string

	V1 *ID3v1
	V2 *ID3v2

	// Warnings encountered during parsing (non-fatal issues)
	Warnings []Warning
}

// Images returns the pictures of the v2 tag, if any.
func (t *ID3Tag) Images() []Image {
	if t == nil || t.V2 == nil {
		return nil
	}
	return t.V2.Images
}
