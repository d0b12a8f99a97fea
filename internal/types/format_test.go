package types_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/simonhull/audiotags/internal/source"
	"github.com/simonhull/audiotags/internal/types"
)

func detect(t *testing.T, data []byte) (types.Format, error) {
	t.Helper()
	r := source.NewBytes(data)
	size, err := r.Open(context.Background())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return types.DetectFormat(context.Background(), r, size)
}

// ftyp creates a minimal ftyp atom with the given major brand.
func ftyp(brand string) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint32(24))
	buf.WriteString("ftyp")
	buf.WriteString(brand)
	binary.Write(buf, binary.BigEndian, uint32(0))
	buf.WriteString(brand)
	buf.WriteString("isom")
	return buf.Bytes()
}

func TestDetectFormat_ID3v2(t *testing.T) {
	data := []byte("ID3\x04\x00\x00\x00\x00\x00\x00")

	format, err := detect(t, data)
	if err != nil {
		t.Fatalf("DetectFormat() error = %v", err)
	}
	if format != types.FormatID3 {
		t.Errorf("DetectFormat() = %v, want FormatID3", format)
	}
}

func TestDetectFormat_FrameSync(t *testing.T) {
	data := bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x00}, 8)

	format, err := detect(t, data)
	if err != nil {
		t.Fatalf("DetectFormat() error = %v", err)
	}
	if format != types.FormatID3 {
		t.Errorf("DetectFormat() = %v, want FormatID3", format)
	}
}

func TestDetectFormat_TrailingV1(t *testing.T) {
	data := make([]byte, 300)
	copy(data[300-128:], "TAG")

	format, err := detect(t, data)
	if err != nil {
		t.Fatalf("DetectFormat() error = %v", err)
	}
	if format != types.FormatID3 {
		t.Errorf("DetectFormat() = %v, want FormatID3", format)
	}
}

func TestDetectFormat_MP4Brands(t *testing.T) {
	for _, brand := range []string{"M4A ", "M4B ", "mp42", "isom"} {
		t.Run(brand, func(t *testing.T) {
			format, err := detect(t, ftyp(brand))
			if err != nil {
				t.Fatalf("DetectFormat() error = %v", err)
			}
			if format != types.FormatMP4 {
				t.Errorf("DetectFormat() = %v, want FormatMP4", format)
			}
		})
	}
}

func TestDetectFormat_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too small", []byte{0x00, 0x00}},
		{"ogg", append([]byte("OggS"), make([]byte, 40)...)},
		{"flac", []byte("fLaC\x00\x00\x00\x00")},
		{"unknown brand", ftyp("qt  ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := detect(t, tt.data)
			if format != types.FormatUnknown {
				t.Errorf("DetectFormat() = %v, want FormatUnknown", format)
			}
			var unsupported *types.UnsupportedFormatError
			if !errors.As(err, &unsupported) {
				t.Errorf("expected UnsupportedFormatError, got %T", err)
			}
		})
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format types.Format
		want   string
		ext    int
	}{
		{types.FormatID3, "ID3", 1},
		{types.FormatMP4, "MP4", 4},
		{types.FormatUnknown, "Unknown", 0},
	}
	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := len(tt.format.Extensions()); got != tt.ext {
			t.Errorf("%v: %d extensions, want %d", tt.format, got, tt.ext)
		}
	}
}
