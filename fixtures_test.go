package audiotags_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// id3Frame encodes a v2.3 frame with a Latin-1 text payload.
func id3Frame(id, text string) []byte {
	payload := append([]byte{0}, text...)
	buf := &bytes.Buffer{}
	buf.WriteString(id)
	binary.Write(buf, binary.BigEndian, uint32(len(payload)))
	buf.Write([]byte{0, 0})
	buf.Write(payload)
	return buf.Bytes()
}

// id3Tag builds an ID3v2.3 tag around frames.
func id3Tag(flags byte, frames ...[]byte) []byte {
	body := bytes.Join(frames, nil)
	n := len(body)
	return append([]byte{
		'I', 'D', '3', 3, 0, flags,
		byte(n >> 21 & 0x7F), byte(n >> 14 & 0x7F), byte(n >> 7 & 0x7F), byte(n & 0x7F),
	}, body...)
}

// id3v1 builds a 128-byte ID3v1.1 block.
func id3v1(title, artist, album, year string) []byte {
	b := make([]byte, 128)
	copy(b, "TAG")
	copy(b[3:33], title)
	copy(b[33:63], artist)
	copy(b[63:93], album)
	copy(b[93:97], year)
	b[126] = 1
	b[127] = 17
	return b
}

// mp3File returns a v2 tag, 256 bytes of frame-sync audio and a v1 tag.
func mp3File() []byte {
	audio := bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x00}, 64)
	data := id3Tag(0,
		id3Frame("TIT2", "Song Title"),
		id3Frame("TPE1", "Some Artist"),
		id3Frame("TYER", "1999"),
	)
	data = append(data, audio...)
	return append(data, id3v1("Old Title", "Old Artist", "Old Album", "2001")...)
}

func box(name string, parts ...[]byte) []byte {
	body := bytes.Join(parts, nil)
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint32(8+len(body)))
	buf.WriteString(name)
	buf.Write(body)
	return buf.Bytes()
}

func dataBlock(typeCode uint32, payload []byte) []byte {
	head := make([]byte, 8)
	binary.BigEndian.PutUint32(head, typeCode)
	return box("data", head, payload)
}

// m4aFile builds ftyp + moov/udta/meta/ilst with the given items.
func m4aFile(items ...[]byte) []byte {
	hdlr := box("hdlr", make([]byte, 8), []byte("mdir"), make([]byte, 13))
	ilst := box("ilst", items...)
	meta := box("meta", make([]byte, 4), hdlr, ilst)
	moov := box("moov", box("mvhd", make([]byte, 100)), box("udta", meta))
	ftyp := box("ftyp", []byte("M4A "), make([]byte, 4), []byte("M4A isom"))
	return bytes.Join([][]byte{ftyp, moov, box("mdat", make([]byte, 64))}, nil)
}

func m4aTagged() []byte {
	return m4aFile(
		box("\xa9nam", dataBlock(1, []byte("Chapter One"))),
		box("\xa9ART", dataBlock(1, []byte("Narrator"))),
		box("\xa9alb", dataBlock(1, []byte("The Book"))),
		box("\xa9day", dataBlock(1, []byte("2015-06-01"))),
		box("trkn", dataBlock(0, []byte{0, 0, 0, 3, 0, 9, 0, 0})),
		box("covr", dataBlock(13, []byte{0xFF, 0xD8, 0xFF, 0xE0})),
	)
}

func writeTemp(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
