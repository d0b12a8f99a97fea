// Package binary provides bounds-checked readers over fixed byte buffers.
package binary

import (
	"encoding/binary"
	"fmt"

	"github.com/simonhull/audiotags/internal/types"
)

// View wraps a byte buffer with bounds checking and helpful error messages.
//
// A View never mutates the underlying buffer. Slices returned by Bytes
// share memory with it.
type View struct {
	buf  []byte
	name string
}

// NewView creates a View over buf. name identifies the buffer in errors.
func NewView(buf []byte, name string) View {
	return View{buf: buf, name: name}
}

// Len returns the buffer length.
func (v View) Len() int {
	return len(v.buf)
}

// check verifies that n bytes are available at off.
func (v View) check(off, n int, what string) error {
	if off < 0 || n < 0 || off > len(v.buf) || off+n > len(v.buf) {
		return &types.OutOfBoundsError{
			Path:   v.name,
			What:   what,
			Offset: int64(off),
			Length: n,
			Size:   int64(len(v.buf)),
		}
	}
	return nil
}

// Bytes returns the n bytes at off without copying.
func (v View) Bytes(off, n int) ([]byte, error) {
	if err := v.check(off, n, "bytes"); err != nil {
		return nil, err
	}
	return v.buf[off : off+n], nil
}

// Tail returns everything from off to the end of the buffer.
func (v View) Tail(off int) ([]byte, error) {
	if err := v.check(off, 0, "tail"); err != nil {
		return nil, err
	}
	return v.buf[off:], nil
}

// Uint8 reads one byte.
func (v View) Uint8(off int) (uint8, error) {
	return ReadEndian[uint8](v, off, BigEndian)
}

// Uint16 reads a big-endian uint16.
func (v View) Uint16(off int) (uint16, error) {
	return ReadEndian[uint16](v, off, BigEndian)
}

// Uint32 reads a big-endian uint32.
func (v View) Uint32(off int) (uint32, error) {
	return ReadEndian[uint32](v, off, BigEndian)
}

// Uint64 reads a big-endian uint64.
func (v View) Uint64(off int) (uint64, error) {
	return ReadEndian[uint64](v, off, BigEndian)
}

// Int32 reads a big-endian two's complement int32.
func (v View) Int32(off int) (int32, error) {
	u, err := v.Uint32(off)
	return int32(u), err
}

// Uint24 reads a 3-byte unsigned integer.
//
// Legacy ID3v2.2 frame sizes are big-endian.
func (v View) Uint24(off int, endian Endianness) (uint32, error) {
	if err := v.check(off, 3, "uint24"); err != nil {
		return 0, err
	}
	b := v.buf[off : off+3]
	if endian == LittleEndian {
		return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16, nil
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

// SynchsafeUint32 decodes a 4-byte synchsafe integer (7 bits per byte).
// The top bit of each byte is ignored, not validated.
func (v View) SynchsafeUint32(off int) (uint32, error) {
	if err := v.check(off, 4, "synchsafe uint32"); err != nil {
		return 0, err
	}
	return DecodeSynchsafe(v.buf[off : off+4]), nil
}

// DecodeSynchsafe decodes a synchsafe integer (7 bits per byte)
// ID3v2 uses 7-bit encoding where bit 7 is always 0
func DecodeSynchsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// EncodeSynchsafe encodes n (< 2^28) as a synchsafe integer.
func EncodeSynchsafe(n uint32) [4]byte {
	return [4]byte{
		byte(n>>21) & 0x7F,
		byte(n>>14) & 0x7F,
		byte(n>>7) & 0x7F,
		byte(n) & 0x7F,
	}
}

// ReadEndian reads a numeric value of type T at off with the given byte order.
//
// Example:
//
//	size, err := binary.ReadEndian[uint32](v, 0, binary.BigEndian)
func ReadEndian[T uint8 | uint16 | uint32 | uint64](v View, off int, endian Endianness) (T, error) {
	var zero T
	var size int

	// Determine size based on type
	switch any(zero).(type) {
	case uint8:
		size = 1
	case uint16:
		size = 2
	case uint32:
		size = 4
	case uint64:
		size = 8
	}

	if err := v.check(off, size, fmt.Sprintf("uint%d", size*8)); err != nil {
		return zero, err
	}
	buf := v.buf[off : off+size]

	var order binary.ByteOrder = binary.BigEndian
	if endian == LittleEndian {
		order = binary.LittleEndian
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(buf[0])
	case uint16:
		val = T(order.Uint16(buf))
	case uint32:
		val = T(order.Uint32(buf))
	case uint64:
		val = T(order.Uint64(buf))
	}

	return val, nil
}
