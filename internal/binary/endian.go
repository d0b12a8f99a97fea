package binary

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: MP4/M4A atoms, ID3v2 sizes, UTF-16 without BOM.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: UTF-16 text carrying an FF FE byte-order mark.
	LittleEndian
)

// ReadLE reads a numeric value of type T at off using little-endian byte order.
//
// This is a convenience wrapper for ReadEndian with LittleEndian.
func ReadLE[T uint8 | uint16 | uint32 | uint64](v View, off int) (T, error) {
	return ReadEndian[T](v, off, LittleEndian)
}

// ReadBE reads a numeric value of type T at off using big-endian byte order.
//
// Example:
//
//	atomSize, err := binary.ReadBE[uint32](v, 0)
func ReadBE[T uint8 | uint16 | uint32 | uint64](v View, off int) (T, error) {
	return ReadEndian[T](v, off, BigEndian)
}
