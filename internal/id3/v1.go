package id3

import (
	"strings"

	"github.com/simonhull/audiotags/internal/binary"
	"github.com/simonhull/audiotags/internal/genre"
	"github.com/simonhull/audiotags/internal/types"
)

// V1Size is the length of the trailing ID3v1 block.
const V1Size = 128

// ID3v1 layout
//
//	0   "TAG"
//	3   title   (30)
//	33  artist  (30)
//	63  album   (30)
//	93  year    (4)
//	97  comment (30, or 28 + 0x00 + track in v1.1)
//	127 genre index
const (
	v1TitleOffset   = 3
	v1ArtistOffset  = 33
	v1AlbumOffset   = 63
	v1YearOffset    = 93
	v1CommentOffset = 97
	v1ZeroByte      = 125
	v1TrackByte     = 126
	v1GenreByte     = 127
)

// ParseV1 decodes a 128-byte ID3v1 block. It returns nil when buf is not an
// ID3v1 tag.
func ParseV1(buf []byte) *types.ID3v1 {
	if len(buf) < V1Size {
		return nil
	}
	v := binary.NewView(buf[:V1Size], "ID3v1")

	magic, err := v.String(binary.Exact(3), 0, binary.Raw)
	if err != nil || magic != "TAG" {
		return nil
	}

	field := func(off, n int) string {
		s, _ := v.String(binary.Exact(n), off, binary.UTF8)
		return strings.TrimSpace(s)
	}

	tag := &types.ID3v1{
		Title:   field(v1TitleOffset, 30),
		Artist:  field(v1ArtistOffset, 30),
		Album:   field(v1AlbumOffset, 30),
		Year:    field(v1YearOffset, 4),
		Version: "1.0",
	}

	// v1.1 steals the last two comment bytes for a zero marker and a track
	if buf[v1ZeroByte] == 0 {
		tag.Comment = field(v1CommentOffset, 28)
		tag.Track = int(buf[v1TrackByte])
		tag.HasTrack = true
		tag.Version = "1.1"
	} else {
		tag.Comment = field(v1CommentOffset, 30)
	}

	if name, ok := genre.Name(int(buf[v1GenreByte])); ok {
		tag.Genre = name
	}

	return tag
}
