package source

import "bytes"

// NewBytes returns a Reader over an in-memory buffer.
func NewBytes(data []byte) *ReaderAt {
	return NewReaderAt(bytes.NewReader(data), "<bytes>")
}
