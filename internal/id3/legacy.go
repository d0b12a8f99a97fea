package id3

import (
	"fmt"
	"strings"

	"github.com/simonhull/audiotags/internal/binary"
	"github.com/simonhull/audiotags/internal/types"
)

// legacyHeaderSize is the ID3v2.2 frame header: ID(3) size(3).
const legacyHeaderSize = 6

// decodeLegacyFrame decodes an ID3v2.2 frame. v2.2 frames carry no flags.
func decodeLegacyFrame(buf []byte) (*types.Frame, error) {
	v := binary.NewView(buf, "frame")

	id, err := v.String(binary.Exact(3), 0, binary.Raw)
	if err != nil {
		return nil, err
	}

	name, ok := frameNames[id]
	if !ok {
		return nil, nil
	}

	frame := &types.Frame{ID: id, Name: name}

	switch {
	case id[0] == 'T':
		frame.Value, err = decodeLegacyText(v, id)
	case id[0] == 'W':
		// URL frames have no encoding byte
		var url string
		url, err = v.String(binary.Rest(), legacyHeaderSize, binary.UTF8)
		frame.Value = types.Text(url)
	case id == "COM":
		frame.Value, err = decodeCommentFrame(v, legacyHeaderSize)
	case id == "PIC":
		frame.Value, err = decodeLegacyPicture(v)
	}
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", id, err)
	}

	return frame, nil
}

// decodeLegacyText reads a v2.2 text frame: [encoding][text]. Only
// ISO-8859-1 (0) and UCS-2 with a byte order mark (1) are defined in 2.2;
// other selectors are read as single-byte text.
func decodeLegacyText(v binary.View, id string) (types.FrameValue, error) {
	enc, err := v.Uint8(legacyHeaderSize)
	if err != nil {
		return nil, err
	}

	var text string
	if enc == encodingUTF16BOM {
		text, err = v.UTF16String(binary.Rest(), legacyHeaderSize+1, true)
	} else {
		text, err = v.String(binary.Rest(), legacyHeaderSize+1, binary.UTF8)
	}
	if err != nil {
		return nil, err
	}

	if id == "TCO" {
		return genreValue(text), nil
	}
	return types.Text(text), nil
}

// decodeLegacyPicture parses a PIC frame.
// Format:
//
//	[1 byte]          Text encoding
//	[3 bytes]         Image format ("JPG", "PNG")
//	[1 byte]          Picture type
//	[terminated]      Description
//	[remaining]       Picture data
func decodeLegacyPicture(v binary.View) (types.FrameValue, error) {
	enc, err := v.Uint8(legacyHeaderSize)
	if err != nil {
		return nil, err
	}

	format, err := v.String(binary.Exact(3), legacyHeaderSize+1, binary.Raw)
	if err != nil {
		return nil, err
	}

	pictureType, err := v.Uint8(legacyHeaderSize + 4)
	if err != nil {
		return nil, err
	}

	// Only 0 and 1 are defined for v2.2; anything else reads as single-byte.
	if enc != encodingUTF16BOM {
		enc = encodingLatin1
	}
	desc, data, err := splitDescription(v, legacyHeaderSize+5, enc)
	if err != nil {
		return nil, err
	}

	return types.Image{
		Type:        types.ImageTypeFromByte(pictureType),
		MIME:        "image/" + strings.ToLower(format),
		Description: desc,
		Data:        data,
	}, nil
}
