package mp4

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/audiotags/internal/source"
	"github.com/simonhull/audiotags/internal/types"
)

func parseBytes(t *testing.T, b []byte, extended bool) (*types.MP4Tags, error) {
	t.Helper()
	cfg := types.Config{ExtendedMP4Fields: extended}
	return Parse(context.Background(), source.NewBytes(b), int64(len(b)), cfg)
}

func TestParse_Title(t *testing.T) {
	tags, err := parseBytes(t, m4a(textItem("\xa9nam", "Track")), false)
	require.NoError(t, err)

	assert.Equal(t, "Track", tags.Title)
	require.Contains(t, tags.Fields, "title")

	f := tags.Fields["title"]
	assert.Equal(t, "\xa9nam", f.Atom)
	require.Len(t, f.Blocks, 1)
	assert.Equal(t, "data", f.Blocks[0].Type)
	assert.Equal(t, "UTF8", DataTypeName(f.Blocks[0].Flags))
	assert.Equal(t, "Track", f.Value())
	assert.Empty(t, tags.Warnings)
}

func TestParse_CoreFields(t *testing.T) {
	tags, err := parseBytes(t, m4a(
		textItem("\xa9ART", "Artist"),
		textItem("\xa9alb", "Album"),
		textItem("\xa9cmt", "Nice"),
		textItem("\xa9day", "2005-03-14T08:00:00Z"),
		atom("trkn", data(0, trackPair(3, 12))),
		textItem("\xa9wrt", "Composer"),
	), false)
	require.NoError(t, err)

	assert.Equal(t, "Artist", tags.Artist)
	assert.Equal(t, "Album", tags.Album)
	assert.Equal(t, "Nice", tags.Comment)
	assert.Equal(t, "2005-03-14T08:00:00Z", tags.Date)
	assert.Equal(t, "2005", tags.Year)
	assert.Equal(t, "3/12", tags.Track)
	assert.Equal(t, types.IntPair{Number: 3, Total: 12}, tags.Fields["tracknumber"].Value())
	assert.NotContains(t, tags.Fields, "composer", "composer is not a core field")
}

func TestParse_Duplicate(t *testing.T) {
	tags, err := parseBytes(t, m4a(
		textItem("\xa9nam", "One"),
		textItem("\xa9nam", "Two"),
	), false)
	assert.Nil(t, tags, "no partial result")

	var dup *types.DuplicateAtomError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "\xa9nam", dup.Atom)
}

func TestParse_DuplicateUninterestingIgnored(t *testing.T) {
	tags, err := parseBytes(t, m4a(
		textItem("\xa9wrt", "One"),
		textItem("\xa9wrt", "Two"),
		textItem("\xa9nam", "Title"),
	), false)
	require.NoError(t, err)
	assert.Equal(t, "Title", tags.Title)
}

func TestParse_NoIlst(t *testing.T) {
	b := bytes.Join([][]byte{
		atom("ftyp", []byte("M4A "), u32(0)),
		atom("moov", atom("mvhd", make([]byte, 100))),
	}, nil)

	tags, err := parseBytes(t, b, false)
	require.NoError(t, err)
	require.NotNil(t, tags)
	assert.Empty(t, tags.Fields)
	assert.Empty(t, tags.Title)
}

func TestParse_MultipleBlocks(t *testing.T) {
	tags, err := parseBytes(t, m4a(
		atom("\xa9ART", data(1, []byte("First")), data(1, []byte("Second"))),
	), false)
	require.NoError(t, err)

	f := tags.Fields["artist"]
	require.Len(t, f.Blocks, 2)
	assert.Equal(t, 1, f.Blocks[1].Index)
	assert.Equal(t, []any{"First", "Second"}, f.Value())
	assert.Equal(t, "First; Second", tags.Artist)
}

func TestParse_Extended(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	png := []byte{0x89, 'P', 'N', 'G'}

	tags, err := parseBytes(t, m4a(
		atom("covr", data(13, jpeg), data(14, png)),
		atom("tmpo", data(21, u16(120))),
		atom("cpil", data(21, []byte{1})),
		atom("pgap", data(21, []byte{0})),
		// gnre stores the ID3 genre index plus one: 18 is "Rock" (17), not "Reggae".
		atom("gnre", data(0, u16(18))),
		atom("stik", data(21, []byte{1})),
		atom("tvsn", data(21, u32(4))),
		atom("plID", data(21, u64(1<<40+7))),
		atom("disk", data(0, trackPair(1, 2)[:6])),
		textItem("\xa9wrt", "Composer"),
		textItem("soar", "Beatles, The"),
		freeform("com.apple.iTunes", "MusicBrainz Track Id", "b1a9c0e9-d987-4042-ae91-78d6a3267d69"),
		freeform("com.apple.iTunes", "LABEL", "Parlophone"),
		freeform("com.example", "Custom", "ignored"),
	), true)
	require.NoError(t, err)
	assert.Empty(t, tags.Warnings)

	covers := tags.Covers()
	require.Len(t, covers, 2)
	assert.Equal(t, "JPEG", covers[0].Format)
	assert.Equal(t, "image/jpeg", covers[0].MIME())
	assert.Equal(t, jpeg, covers[0].Data)
	assert.Equal(t, "PNG", covers[1].Format)

	assert.Equal(t, int32(120), tags.Fields["bpm"].Value())
	assert.Equal(t, true, tags.Fields["compilation"].Value())
	assert.Equal(t, false, tags.Fields["gapless"].Value())
	assert.Equal(t, "Rock", tags.Fields["standardgenre"].Value(), "gnre is one-based")
	assert.Equal(t, uint8(1), tags.Fields["mediatype"].Value())
	assert.Equal(t, uint32(4), tags.Fields["tvseason"].Value())
	assert.Equal(t, uint64(1<<40+7), tags.Fields["playlistid"].Value())
	assert.Equal(t, types.IntPair{Number: 1, Total: 2}, tags.Fields["discnumber"].Value())
	assert.Equal(t, "Composer", tags.Fields["composer"].String())
	assert.Equal(t, "Beatles, The", tags.Fields["artistsort"].String())

	mbid := tags.Fields["musicbrainz_trackid"]
	assert.Equal(t, "----:com.apple.iTunes:MusicBrainz Track Id", mbid.Atom)
	require.Len(t, mbid.Blocks, 1, "mean and name blocks are not part of the value")
	assert.Equal(t, "b1a9c0e9-d987-4042-ae91-78d6a3267d69", mbid.String())
	assert.Equal(t, "Parlophone", tags.Fields["label"].String())

	assert.NotContains(t, tags.Fields, "----:com.example:Custom")
}

func TestParse_FreeformDuplicate(t *testing.T) {
	_, err := parseBytes(t, m4a(
		freeform("com.apple.iTunes", "ASIN", "B000002UAL"),
		freeform("com.apple.iTunes", "ASIN", "B000002UAM"),
	), true)

	var dup *types.DuplicateAtomError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "----:com.apple.iTunes:ASIN", dup.Atom)
}

func TestParse_GenreOutOfRange(t *testing.T) {
	tags, err := parseBytes(t, m4a(atom("gnre", data(0, u16(0)))), true)
	require.NoError(t, err)
	assert.Nil(t, tags.Fields["standardgenre"].Value())
}

func TestParse_UTF16Text(t *testing.T) {
	tags, err := parseBytes(t, m4a(atom("\xa9nam", data(2, []byte{0x00, 'H', 0x00, 'i'}))), false)
	require.NoError(t, err)
	assert.Equal(t, "Hi", tags.Title)
}

func TestParse_MalformedBlock(t *testing.T) {
	bad := bytes.Join([][]byte{u32(200), []byte("data"), u32(1)}, nil)
	tags, err := parseBytes(t, m4a(
		atom("\xa9nam", bad),
		textItem("\xa9ART", "Artist"),
	), false)
	require.NoError(t, err)

	assert.Equal(t, "Artist", tags.Artist)
	require.Len(t, tags.Warnings, 1)
	assert.Contains(t, tags.Warnings[0].Message, "invalid length")
}

func TestParse_ShortPayload(t *testing.T) {
	tags, err := parseBytes(t, m4a(atom("trkn", data(0, []byte{0, 0, 0}))), false)
	require.NoError(t, err)
	assert.Empty(t, tags.Track)
	require.Len(t, tags.Warnings, 1)
}

func TestParse_ItemLimit(t *testing.T) {
	b := m4a(textItem("\xa9nam", "A title that is longer than the limit"))
	tags, err := Parse(context.Background(), source.NewBytes(b), int64(len(b)), types.Config{MaxTagSize: 16})
	require.NoError(t, err)
	assert.Empty(t, tags.Title)
	require.Len(t, tags.Warnings, 1)
	assert.Contains(t, tags.Warnings[0].Message, "exceeds limit")
}

type failingReader struct{}

var errNetwork = errors.New("connection reset")

func (failingReader) Open(context.Context) (int64, error) { return 1024, nil }
func (failingReader) Read(context.Context, int, int64) ([]byte, error) {
	return nil, errNetwork
}
func (failingReader) Close() error { return nil }

func TestParse_ReadError(t *testing.T) {
	_, err := Parse(context.Background(), failingReader{}, 1024, types.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errNetwork)
}

func TestYearOf(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2005-03-14T08:00:00Z", "2005"},
		{"2005-03-14T08:00:00+02:00", "2005"},
		{"1999-12-31", "1999"},
		{"1999-12", "1999"},
		{"1999", "1999"},
		{"2001 (remaster)", "2001"},
		{"circa 2001", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, yearOf(tt.in), "input %q", tt.in)
	}
}

func TestNames(t *testing.T) {
	atomName, ok := AtomName("title")
	assert.True(t, ok)
	assert.Equal(t, "\xa9nam", atomName)

	human, ok := HumanName("----:com.apple.iTunes:MusicBrainz Album Id")
	assert.True(t, ok)
	assert.Equal(t, "musicbrainz_albumid", human)

	_, ok = HumanName("zzzz")
	assert.False(t, ok)

	for human, a := range atomNames {
		back, ok := HumanName(a)
		assert.True(t, ok, human)
		assert.Equal(t, human, back, "atom names are unique")
	}
}

func TestParserRegistered(t *testing.T) {
	b := m4a(textItem("\xa9nam", "Registered"))
	md, err := (&parser{}).Parse(context.Background(), source.NewBytes(b), int64(len(b)), types.Config{})
	require.NoError(t, err)
	assert.Equal(t, types.FormatMP4, md.Format)
	assert.Equal(t, "Registered", md.Title)
	require.NotNil(t, md.MP4)
}
