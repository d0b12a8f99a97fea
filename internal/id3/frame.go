// Package id3 decodes ID3v1 and ID3v2 (2.2, 2.3, 2.4) tags.
package id3

import (
	"errors"
	"fmt"

	"github.com/simonhull/audiotags/internal/binary"
	"github.com/simonhull/audiotags/internal/genre"
	"github.com/simonhull/audiotags/internal/types"
)

var (
	errAPICNoMIMETerm = errors.New("APIC MIME type not null-terminated")
	errAPICTruncated  = errors.New("APIC frame truncated after MIME type")
)

// frameHeaderSize is the v2.3/v2.4 frame header: ID(4) size(4) flags(2).
const frameHeaderSize = 10

// DecodeFrame decodes one frame. buf holds the frame header and payload.
//
// A nil frame with a nil error means the frame ID is not in the frame table
// and the frame was ignored. Frames using unsupported flags or an unknown
// text encoding return an error wrapping ErrUnsupportedFrame or
// ErrInvalidEncoding; truncated frames return an OutOfBoundsError.
func DecodeFrame(buf []byte, major, minor byte) (*types.Frame, error) {
	if major < 3 {
		return decodeLegacyFrame(buf)
	}

	v := binary.NewView(buf, "frame")

	id, err := v.String(binary.Exact(4), 0, binary.Raw)
	if err != nil {
		return nil, err
	}

	// Second flag byte: compression, encryption, unsynchronisation, grouping
	formatFlags, err := v.Uint8(9)
	if err != nil {
		return nil, err
	}
	if formatFlags != 0 {
		return nil, fmt.Errorf("frame %s (flags 0x%02x): %w", id, formatFlags, types.ErrUnsupportedFrame)
	}

	name, ok := frameNames[id]
	if !ok {
		return nil, nil
	}

	frame := &types.Frame{ID: id, Name: name}

	switch {
	case id[0] == 'T':
		frame.Value, err = decodeTextFrame(v, id)
	case id[0] == 'W':
		var url string
		url, err = v.String(binary.Rest(), frameHeaderSize, binary.UTF8)
		frame.Value = types.Text(url)
	case id == "COMM":
		frame.Value, err = decodeCommentFrame(v, frameHeaderSize)
	case id == "PRIV":
		frame.Value, err = decodePrivateFrame(v)
	case id == "APIC":
		frame.Value, err = decodePictureFrame(v)
	}
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", id, err)
	}

	return frame, nil
}

// decodeTextFrame parses standard text frames (TIT2, TPE1, TALB, etc.)
// Format: [encoding][text]
func decodeTextFrame(v binary.View, id string) (types.FrameValue, error) {
	enc, err := v.Uint8(frameHeaderSize)
	if err != nil {
		return nil, err
	}

	text, err := decodeString(v, binary.Rest(), frameHeaderSize+1, enc)
	if err != nil {
		return nil, err
	}

	if id == "TCON" {
		return genreValue(text), nil
	}
	return types.Text(text), nil
}

// genreValue resolves a purely numeric genre to its name. Numbers outside
// the genre table yield no value.
func genreValue(text string) types.FrameValue {
	n, numeric := genre.Numeric(text)
	if !numeric {
		return types.Text(text)
	}
	name, ok := genre.Name(n)
	if !ok {
		return nil
	}
	return types.Text(name)
}

// decodeCommentFrame parses comment frames (COMM, COM)
// Format: [encoding][language(3)][short description\0][text]
//
// start is the offset of the encoding byte.
func decodeCommentFrame(v binary.View, start int) (types.FrameValue, error) {
	enc, err := v.Uint8(start)
	if err != nil {
		return nil, err
	}
	if !validEncoding(enc) {
		return nil, fmt.Errorf("encoding %d: %w", enc, types.ErrInvalidEncoding)
	}

	// Skip language (3 bytes)
	descStart := start + 4
	rest, err := v.Tail(descStart)
	if err != nil {
		return nil, err
	}

	textStart := descStart
	wide := wideEncoding(enc)
	if idx := binary.IndexTerminator(rest, wide); idx >= 0 {
		textStart += idx + binary.TerminatorSize(wide)
	}
	// No terminator: treat everything after the language as the comment

	text, err := decodeString(v, binary.Rest(), textStart, enc)
	if err != nil {
		return nil, err
	}
	return types.Text(text), nil
}

// decodePrivateFrame parses PRIV frames.
// Format: [owner identifier\0][binary data]
func decodePrivateFrame(v binary.View) (types.FrameValue, error) {
	payload, err := v.Tail(frameHeaderSize)
	if err != nil {
		return nil, err
	}

	idx := binary.IndexTerminator(payload, false)
	if idx < 0 {
		owner, err := v.String(binary.Rest(), frameHeaderSize, binary.UTF8)
		return types.Private{Identifier: owner}, err
	}

	owner, err := v.String(binary.Exact(idx), frameHeaderSize, binary.UTF8)
	if err != nil {
		return nil, err
	}
	return types.Private{
		Identifier: owner,
		Data:       payload[idx+1:],
	}, nil
}

// decodePictureFrame parses an APIC (Attached Picture) frame.
// Format:
//
//	[1 byte]              Text encoding
//	[null-terminated]     MIME type
//	[1 byte]              Picture type
//	[terminated]          Description (NUL, or NUL NUL for UTF-16)
//	[remaining]           Picture data
func decodePictureFrame(v binary.View) (types.FrameValue, error) {
	enc, err := v.Uint8(frameHeaderSize)
	if err != nil {
		return nil, err
	}
	if !validEncoding(enc) {
		return nil, fmt.Errorf("encoding %d: %w", enc, types.ErrInvalidEncoding)
	}

	// MIME type is always ISO-8859-1
	mimeStart := frameHeaderSize + 1
	rest, err := v.Tail(mimeStart)
	if err != nil {
		return nil, err
	}
	mimeLen := binary.IndexTerminator(rest, false)
	if mimeLen < 0 {
		return nil, errAPICNoMIMETerm
	}
	mime, err := v.String(binary.Exact(mimeLen), mimeStart, binary.Raw)
	if err != nil {
		return nil, err
	}

	typeOffset := mimeStart + mimeLen + 1
	pictureType, err := v.Uint8(typeOffset)
	if err != nil {
		return nil, errAPICTruncated
	}

	desc, data, err := splitDescription(v, typeOffset+1, enc)
	if err != nil {
		return nil, err
	}

	return types.Image{
		Type:        types.ImageTypeFromByte(pictureType),
		MIME:        mime,
		Description: desc,
		Data:        data,
	}, nil
}

// splitDescription decodes the terminated description starting at off and
// returns it with the bytes that follow its terminator. The terminator is
// two aligned NUL bytes for UTF-16 encodings and one NUL otherwise. Without
// a terminator the description is empty and all bytes are data.
func splitDescription(v binary.View, off int, enc byte) (string, []byte, error) {
	rest, err := v.Tail(off)
	if err != nil {
		return "", nil, err
	}

	wide := wideEncoding(enc)
	n := binary.IndexTerminator(rest, wide)
	if n < 0 {
		return "", rest, nil
	}

	desc, err := decodeString(v, binary.Exact(n), off, enc)
	if err != nil {
		return "", nil, err
	}
	return desc, rest[n+binary.TerminatorSize(wide):], nil
}

// decodeString decodes text according to an ID3v2 encoding selector.
func decodeString(v binary.View, span binary.Span, off int, enc byte) (string, error) {
	switch enc {
	case encodingLatin1, encodingUTF8:
		return v.String(span, off, binary.UTF8)
	case encodingUTF16BOM:
		return v.UTF16String(span, off, true)
	case encodingUTF16BE:
		return v.UTF16String(span, off, false)
	default:
		return "", fmt.Errorf("encoding %d: %w", enc, types.ErrInvalidEncoding)
	}
}
