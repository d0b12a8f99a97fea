package audiotags

import (
	"net/http"

	"go4.org/readerutil"

	"github.com/simonhull/audiotags/internal/source"
)

// NewFileReader returns a Reader over a local file. The file is opened by
// Open and closed by Close.
func NewFileReader(path string) Reader {
	return source.NewFile(path)
}

// NewHTTPReader returns a Reader issuing HTTP range requests against url.
// A nil client uses http.DefaultClient.
func NewHTTPReader(url string, client *http.Client) Reader {
	return source.NewHTTP(url, client)
}

// NewBytesReader returns a Reader over an in-memory buffer.
func NewBytesReader(data []byte) Reader {
	return source.NewBytes(data)
}

// NewReaderAt adapts any sized io.ReaderAt (such as *bytes.Reader,
// *io.SectionReader or *strings.Reader). name appears in error messages.
func NewReaderAt(r readerutil.SizeReaderAt, name string) Reader {
	return source.NewReaderAt(r, name)
}
