package types

import "fmt"

// Image is a picture embedded in an ID3v2 APIC (or v2.2 PIC) frame.
//
// Data begins immediately after the description's terminator.
type Image struct {
	// Role of the picture (front cover, artist photo, ...)
	Type ImageType

	// MIME type as declared by the frame ("image/jpeg"), may be empty
	MIME string

	// Description of the picture, may be empty
	Description string

	// Image binary data
	Data []byte
}

func (Image) frameValue() {}

// ImageType categorizes the purpose of an embedded picture.
//
// Values follow the ID3v2 APIC picture type byte.
// See: https://id3.org/id3v2.4.0-frames (APIC frame)
type ImageType int

const (
	ImageOther ImageType = iota
	ImageFileIcon
	ImageIcon
	ImageCoverFront
	ImageCoverBack
	ImageLeaflet
	ImageMedia
	ImageArtistLead
	ImageArtist
	ImageConductor
	ImageBand
	ImageComposer
	ImageWriter
	ImageLocation
	ImageDuringRecording
	ImageDuringPerformance
	ImageScreen
	ImageFish
	ImageIllustration
	ImageLogoBand
	ImageLogoPublisher
)

var imageTypeNames = [...]string{
	"other",
	"file-icon",
	"icon",
	"cover-front",
	"cover-back",
	"leaflet",
	"media",
	"artist-lead",
	"artist",
	"conductor",
	"band",
	"composer",
	"writer",
	"location",
	"during-recording",
	"during-performance",
	"screen",
	"fish",
	"illustration",
	"logo-band",
	"logo-publisher",
}

// ImageTypeFromByte maps an APIC picture type byte to an ImageType.
// Values outside the table map to ImageOther.
func ImageTypeFromByte(b byte) ImageType {
	if int(b) >= len(imageTypeNames) {
		return ImageOther
	}
	return ImageType(b)
}

// String returns the role name, e.g. "cover-front".
func (t ImageType) String() string {
	if t < 0 || int(t) >= len(imageTypeNames) {
		return imageTypeNames[ImageOther]
	}
	return imageTypeNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t ImageType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// String returns a human-readable description of the image.
//
// Example output: "cover-front (image/jpeg, 245KB)"
func (i Image) String() string {
	mime := i.MIME
	if mime == "" {
		mime = "unknown"
	}
	return fmt.Sprintf("%s (%s, %s)", i.Type, mime, formatSize(len(i.Data)))
}

// formatSize formats byte size in human-readable form.
func formatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}
