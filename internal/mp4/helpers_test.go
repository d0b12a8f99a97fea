package mp4

import (
	"bytes"
	"encoding/binary"
)

// atom creates a test atom with given type and payload parts.
func atom(name string, parts ...[]byte) []byte {
	payload := bytes.Join(parts, nil)

	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint32(8+len(payload)))
	buf.WriteString(name)
	buf.Write(payload)
	return buf.Bytes()
}

func u32(n uint32) []byte {
	return binary.BigEndian.AppendUint32(nil, n)
}

func u16(n uint16) []byte {
	return binary.BigEndian.AppendUint16(nil, n)
}

func u64(n uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, n)
}

// data builds a "data" block: type code, locale, payload.
func data(typeCode uint32, payload []byte) []byte {
	return atom("data", u32(typeCode), u32(0), payload)
}

// textItem builds an ilst item holding one UTF-8 data block.
func textItem(name, value string) []byte {
	return atom(name, data(1, []byte(value)))
}

// freeform builds a "----" item with mean, name and one text data block.
func freeform(mean, name, value string) []byte {
	return atom("----",
		atom("mean", u32(0), []byte(mean)),
		atom("name", u32(0), []byte(name)),
		data(1, []byte(value)),
	)
}

// trackPair builds a trkn payload.
func trackPair(number, total uint16) []byte {
	return bytes.Join([][]byte{u16(0), u16(number), u16(total), u16(0)}, nil)
}

// m4a builds a minimal file: ftyp, moov/udta/meta/ilst holding items, mdat.
func m4a(items ...[]byte) []byte {
	ftyp := atom("ftyp", []byte("M4A "), u32(0), []byte("M4A mp42isom"))
	hdlr := atom("hdlr", make([]byte, 25))
	ilst := atom("ilst", items...)
	meta := atom("meta", u32(0), hdlr, ilst)
	moov := atom("moov", atom("mvhd", make([]byte, 100)), atom("udta", meta))
	mdat := atom("mdat", make([]byte, 64))
	return bytes.Join([][]byte{ftyp, moov, mdat}, nil)
}
