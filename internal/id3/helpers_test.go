package id3

import (
	"context"
	"errors"
	"unicode/utf16"

	"github.com/simonhull/audiotags/internal/binary"
)

// frameV3 builds a v2.3 frame with a plain big-endian size.
func frameV3(id string, payload []byte) []byte {
	n := len(payload)
	out := []byte(id)
	out = append(out, byte(n>>24), byte(n>>16), byte(n>>8), byte(n), 0, 0)
	return append(out, payload...)
}

// frameV4 builds a v2.4 frame with a synchsafe size and the given flags.
func frameV4(id string, flags [2]byte, payload []byte) []byte {
	size := binary.EncodeSynchsafe(uint32(len(payload)))
	out := []byte(id)
	out = append(out, size[:]...)
	out = append(out, flags[:]...)
	return append(out, payload...)
}

// frameV2 builds a v2.2 frame: 3-byte ID, 3-byte size.
func frameV2(id string, payload []byte) []byte {
	n := len(payload)
	out := []byte(id)
	out = append(out, byte(n>>16), byte(n>>8), byte(n))
	return append(out, payload...)
}

// text builds an encoded text payload.
func text(enc byte, s string) []byte {
	switch enc {
	case encodingUTF16BOM:
		return append([]byte{enc, 0xFF, 0xFE}, utf16LE(s)...)
	case encodingUTF16BE:
		return append([]byte{enc}, utf16BE(s)...)
	default:
		return append([]byte{enc}, s...)
	}
}

func utf16LE(s string) []byte {
	var out []byte
	for _, u := range utf16.Encode([]rune(s)) {
		out = append(out, byte(u), byte(u>>8))
	}
	return out
}

func utf16BE(s string) []byte {
	var out []byte
	for _, u := range utf16.Encode([]rune(s)) {
		out = append(out, byte(u>>8), byte(u))
	}
	return out
}

// tagV2 builds an ID3v2 tag of the given version around frames, followed by
// padding bytes.
func tagV2(major, flags byte, ext []byte, padding int, frames ...[]byte) []byte {
	var body []byte
	body = append(body, ext...)
	for _, f := range frames {
		body = append(body, f...)
	}
	body = append(body, make([]byte, padding)...)

	size := binary.EncodeSynchsafe(uint32(len(body)))
	out := []byte{'I', 'D', '3', major, 0, flags}
	out = append(out, size[:]...)
	return append(out, body...)
}

// v1Block builds a 128-byte ID3v1 tag. A track of 0 writes a v1.0 block
// whose comment fills all 30 bytes.
func v1Block(title, artist, album, year, comment string, track, genre byte) []byte {
	b := make([]byte, V1Size)
	copy(b, "TAG")
	copy(b[3:33], title)
	copy(b[33:63], artist)
	copy(b[63:93], album)
	copy(b[93:97], year)
	if track > 0 {
		copy(b[97:125], comment)
		b[125] = 0
		b[126] = track
	} else {
		copy(b[97:127], comment)
	}
	b[127] = genre
	return b
}

// audio returns filler standing in for the MPEG stream between the tags.
func audio(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = 0xAA
	}
	return b
}

// failingReader fails every read.
type failingReader struct{ size int64 }

var errDisk = errors.New("disk on fire")

func (r failingReader) Open(context.Context) (int64, error) { return r.size, nil }

func (r failingReader) Read(context.Context, int, int64) ([]byte, error) {
	return nil, errDisk
}

func (r failingReader) Close() error { return nil }
