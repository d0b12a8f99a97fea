package mp4

import (
	"errors"
	"fmt"

	"github.com/simonhull/audiotags/internal/binary"
	"github.com/simonhull/audiotags/internal/genre"
	"github.com/simonhull/audiotags/internal/types"
)

// dataTypes names the well-known MPEG-4 data type codes (low 24 bits of the
// data block flags).
var dataTypes = map[uint32]string{
	0:   "IMPLICIT",
	1:   "UTF8",
	2:   "UTF16",
	3:   "SJIS",
	6:   "HTML",
	7:   "XML",
	8:   "UUID",
	9:   "ISRC",
	10:  "MI3P",
	12:  "GIF",
	13:  "JPEG",
	14:  "PNG",
	15:  "URL",
	16:  "DURATION",
	17:  "DATETIME",
	18:  "GENRED",
	21:  "INTEGER",
	24:  "RIAAPA",
	25:  "UPC",
	27:  "BMP",
	255: "UNDEFINED",
}

const (
	dataTypeUTF16 = 2
)

// DataTypeName returns the name of a data type code, or "" if unknown.
func DataTypeName(code uint32) string {
	return dataTypes[code&0xFFFFFF]
}

var errEmptyPayload = errors.New("empty payload")

// extractor decodes the payload of one data block. flags is the block's
// version/flags word.
type extractor func(v binary.View, flags uint32) (any, error)

// extractorFor selects the typed reader for an atom name. Unknown names
// read as text.
func extractorFor(atom string) extractor {
	switch atom {
	case "tvsn", "tves", "cnID", "sfID", "atID", "geID", "cmID":
		return readUint32
	case "tmpo":
		return readInt
	case "stik", "rtng", "akID":
		return readByte
	case "plID":
		return readUint64
	case "cpil", "pgap", "pcst", "hdvd":
		return readBool
	case "trkn", "disk":
		return readIntPair
	case "gnre":
		return readGenre
	case "covr":
		return readCover
	default:
		return readText
	}
}

func readUint32(v binary.View, _ uint32) (any, error) {
	return v.Uint32(0)
}

// readInt reads a signed big-endian integer. tmpo is usually stored in two
// bytes; four-byte values are accepted too.
func readInt(v binary.View, _ uint32) (any, error) {
	if v.Len() == 2 {
		u, err := v.Uint16(0)
		return int32(int16(u)), err
	}
	return v.Int32(0)
}

func readByte(v binary.View, _ uint32) (any, error) {
	return v.Uint8(0)
}

func readUint64(v binary.View, _ uint32) (any, error) {
	return v.Uint64(0)
}

func readBool(v binary.View, _ uint32) (any, error) {
	if v.Len() == 0 {
		return false, nil
	}
	b, err := v.Uint8(0)
	return b != 0, err
}

// readIntPair reads trkn/disk:
//
//	[2 bytes] reserved
//	[2 bytes] number
//	[2 bytes] total
//	[2 bytes] reserved (trkn only)
func readIntPair(v binary.View, _ uint32) (any, error) {
	number, err := v.Uint16(2)
	if err != nil {
		return nil, err
	}
	total, err := v.Uint16(4)
	if err != nil {
		return nil, err
	}
	return types.IntPair{Number: int(number), Total: int(total)}, nil
}

// readGenre resolves a gnre index. iTunes stores the ID3 genre index plus
// one; indexes outside the table decode to no value.
func readGenre(v binary.View, _ uint32) (any, error) {
	idx, err := v.Uint16(0)
	if err != nil {
		return nil, err
	}
	name, ok := genre.Name(int(idx) - 1)
	if !ok {
		return nil, nil
	}
	return name, nil
}

func readCover(v binary.View, flags uint32) (any, error) {
	data, err := v.Bytes(0, v.Len())
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errEmptyPayload
	}
	return types.Cover{Data: data, Format: DataTypeName(flags)}, nil
}

func readText(v binary.View, flags uint32) (any, error) {
	if flags&0xFFFFFF == dataTypeUTF16 {
		return v.UTF16String(binary.Rest(), 0, false)
	}
	return v.String(binary.Rest(), 0, binary.UTF8)
}

// decodeBlocks splits an item payload into data blocks. Each block is
//
//	[4 bytes] length, header included
//	[4 bytes] type ("data", or "mean"/"name" in freeform items)
//	[4 bytes] version + flags
//	[4 bytes] locale ("data" blocks only)
//	[...]     payload
//
// The first two blocks of a freeform item have no locale field.
func decodeBlocks(payload []byte, freeform bool, extract extractor) ([]types.DataBlock, []error) {
	var (
		blocks []types.DataBlock
		errs   []error
	)

	v := binary.NewView(payload, "ilst item")
	for pos, index := 0, 0; pos+8 <= len(payload); index++ {
		length, _ := v.Uint32(pos)
		name, _ := v.Bytes(pos+4, 4)

		if length < 12 || int64(pos)+int64(length) > int64(len(payload)) {
			errs = append(errs, fmt.Errorf("data block %d: invalid length %d at offset %d", index, length, pos))
			break
		}
		flags, _ := v.Uint32(pos + 8)

		pad := 16
		if freeform && index < 2 {
			pad = 12
		}
		end := pos + int(length)
		start := min(pos+pad, end)

		block := types.DataBlock{
			Type:   string(name),
			Flags:  flags,
			Index:  index,
			Length: length,
			Raw:    payload[start:end],
		}

		fn := extract
		if freeform && index < 2 {
			fn = readText
		}
		value, err := fn(binary.NewView(block.Raw, string(name)), flags)
		if err != nil {
			errs = append(errs, fmt.Errorf("data block %d: %w", index, err))
		} else {
			block.Value = value
		}

		blocks = append(blocks, block)
		pos = end
	}

	return blocks, errs
}
