package binary

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLE(t *testing.T) {
	buf := &bytes.Buffer{}

	// uint16: 0x0201 (little-endian) = 513 (decimal)
	binary.Write(buf, binary.LittleEndian, uint16(513))

	// uint32: 0x04030201 (little-endian) = 67305985 (decimal)
	binary.Write(buf, binary.LittleEndian, uint32(67305985))

	// uint64: 0x0807060504030201 (little-endian)
	binary.Write(buf, binary.LittleEndian, uint64(578437695752307201))

	v := NewView(buf.Bytes(), "le.bin")

	tests := []struct {
		readFunc func() (uint64, error)
		name     string
		want     uint64
	}{
		{
			name: "uint16 little-endian",
			want: 513,
			readFunc: func() (uint64, error) {
				val, err := ReadLE[uint16](v, 0)
				return uint64(val), err
			},
		},
		{
			name: "uint32 little-endian",
			want: 67305985,
			readFunc: func() (uint64, error) {
				val, err := ReadLE[uint32](v, 2)
				return uint64(val), err
			},
		},
		{
			name: "uint64 little-endian",
			want: 578437695752307201,
			readFunc: func() (uint64, error) {
				val, err := ReadLE[uint64](v, 6)
				return val, err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.readFunc()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadBE(t *testing.T) {
	data := []byte{0x00, 0x00, 0x01, 0x00, 0x6D, 0x6F, 0x6F, 0x76}
	v := NewView(data, "be.bin")

	size, err := ReadBE[uint32](v, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(256), size)

	typ, err := ReadBE[uint32](v, 4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x6D6F6F76), typ) // "moov"
}

func TestReadEndian_BothOrders(t *testing.T) {
	v := NewView([]byte{0x12, 0x34}, "pair.bin")

	be, err := ReadEndian[uint16](v, 0, BigEndian)
	require.NoError(t, err)
	le, err := ReadEndian[uint16](v, 0, LittleEndian)
	require.NoError(t, err)

	assert.Equal(t, uint16(0x1234), be)
	assert.Equal(t, uint16(0x3412), le)
}

func TestReadEndian_OutOfBounds(t *testing.T) {
	v := NewView([]byte{0x01, 0x02, 0x03}, "short.bin")

	_, err := ReadLE[uint32](v, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "short.bin")

	_, err = ReadBE[uint16](v, 2)
	require.Error(t, err)
}
