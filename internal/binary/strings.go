package binary

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Span selects how many bytes a string read covers.
type Span struct {
	n    int
	rest bool
}

// Exact covers exactly n bytes.
func Exact(n int) Span {
	return Span{n: n}
}

// Rest covers everything from the read offset to the end of the buffer.
func Rest() Span {
	return Span{rest: true}
}

// StringMode selects how single-byte strings are decoded.
type StringMode int

const (
	// UTF8 decodes bytes as UTF-8, falling back to ISO-8859-1 when the
	// bytes are not valid UTF-8.
	UTF8 StringMode = iota

	// Raw preserves every byte as one rune (ISO-8859-1). Used for
	// identifiers like "TAG" and "ID3" where byte equality matters.
	Raw
)

// region resolves span at off into a sub-slice of the buffer.
func (v View) region(span Span, off int, what string) ([]byte, error) {
	if span.rest {
		if err := v.check(off, 0, what); err != nil {
			return nil, err
		}
		return v.buf[off:], nil
	}
	if err := v.check(off, span.n, what); err != nil {
		return nil, err
	}
	return v.buf[off : off+span.n], nil
}

// String reads a single-byte string covering span at off. Reading stops
// early at the first NUL byte.
func (v View) String(span Span, off int, mode StringMode) (string, error) {
	b, err := v.region(span, off, "string")
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return decodeSingleByte(b, mode), nil
}

func decodeSingleByte(b []byte, mode StringMode) string {
	if len(b) == 0 {
		return ""
	}
	if mode == UTF8 && utf8.Valid(b) {
		return string(b)
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

// UTF16String reads a UTF-16 string covering span at off.
//
// Code units are big-endian unless useBOM is set and the first unit is the
// byte-swapped mark 0xFFFE, which switches to little-endian. A leading mark
// is consumed either way. Reading stops at the first 0x0000 code unit;
// surrogate pairs are reassembled.
func (v View) UTF16String(span Span, off int, useBOM bool) (string, error) {
	b, err := v.region(span, off, "UTF-16 string")
	if err != nil {
		return "", err
	}

	endian := unicode.BigEndian
	if useBOM && len(b) >= 2 {
		switch {
		case b[0] == 0xFF && b[1] == 0xFE:
			endian = unicode.LittleEndian
			b = b[2:]
		case b[0] == 0xFE && b[1] == 0xFF:
			b = b[2:]
		}
	}

	if i := IndexTerminator(b, true); i >= 0 {
		b = b[:i]
	}
	if len(b)%2 != 0 {
		b = b[:len(b)-1]
	}
	if len(b) == 0 {
		return "", nil
	}

	out, err := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// IndexTerminator returns the index of the first string terminator in b:
// a NUL byte, or an aligned pair of NUL bytes when wide is set. It returns
// -1 when b holds no terminator.
func IndexTerminator(b []byte, wide bool) int {
	if !wide {
		return bytes.IndexByte(b, 0)
	}
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return i
		}
	}
	return -1
}

// TerminatorSize returns the terminator width for single-byte or wide text.
func TerminatorSize(wide bool) int {
	if wide {
		return 2
	}
	return 1
}
