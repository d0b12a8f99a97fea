package id3

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/audiotags/internal/binary"
	"github.com/simonhull/audiotags/internal/types"
)

// ID3v2 tag header flags
const (
	flagUnsynchronisation = 0x80
	flagExtendedHeader    = 0x40
)

const (
	v2HeaderSize = 10
	// v2PrefixSize covers the tag header and the extended header size field.
	v2PrefixSize = 14
)

// Parse reads the ID3v1 and ID3v2 tags of r and merges them.
//
// Both tags are read concurrently. Title, album and artist prefer the v2
// value; year always comes from v1. Parse returns types.ErrNoTag when
// neither tag is present. Read failures are fatal; problems inside a tag
// are recorded as warnings and the affected frame is skipped.
func Parse(ctx context.Context, r types.Reader, size int64, cfg types.Config) (*types.ID3Tag, error) {
	log := cfg.Log().With(slog.String("source", types.SourceName(r)))

	var (
		v1       *types.ID3v1
		v2       *types.ID3v2
		warnings []types.Warning
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		v1, err = readV1(gctx, r, size)
		return err
	})
	g.Go(func() error {
		var err error
		v2, warnings, err = readV2(gctx, r, size, cfg.TagLimit(), log)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if v1 == nil && v2 == nil {
		return nil, types.ErrNoTag
	}

	tag := &types.ID3Tag{V1: v1, V2: v2, Warnings: warnings}
	if v2 != nil {
		tag.Title = v2.Title
		tag.Album = v2.Album
		tag.Artist = v2.Artist
	}
	if v1 != nil {
		tag.Title = cmp.Or(tag.Title, v1.Title)
		tag.Album = cmp.Or(tag.Album, v1.Album)
		tag.Artist = cmp.Or(tag.Artist, v1.Artist)
		tag.Year = v1.Year
	}

	log.Debug("id3 tag parsed",
		slog.Bool("v1", v1 != nil),
		slog.Bool("v2", v2 != nil),
		slog.Int("warnings", len(warnings)))

	return tag, nil
}

// readV1 reads the trailing 128 bytes. Resources shorter than that carry no
// v1 tag.
func readV1(ctx context.Context, r types.Reader, size int64) (*types.ID3v1, error) {
	if size < V1Size {
		return nil, nil
	}
	buf, err := types.ReadRange(ctx, r, V1Size, size-V1Size)
	if err != nil {
		return nil, err
	}
	return ParseV1(buf), nil
}

// v2Header is the decoded 10-byte tag header plus the extended header size.
type v2Header struct {
	major    byte
	minor    byte
	flags    byte
	bodySize uint32 // bytes following the 10-byte header
	skip     uint32 // extended header bytes at the start of the body
}

// parseV2Header decodes the tag prefix. ok is false when the prefix is not an
// ID3v2 header this package understands.
func parseV2Header(buf []byte) (h v2Header, ok bool) {
	if len(buf) < v2HeaderSize || string(buf[:3]) != "ID3" || buf[3] > 4 {
		return h, false
	}

	v := binary.NewView(buf, "ID3v2 header")
	h.major, h.minor, h.flags = buf[3], buf[4], buf[5]
	h.bodySize, _ = v.SynchsafeUint32(6)

	// The extended header size occupies bytes 10..13, right after the tag header.
	if h.flags&flagExtendedHeader != 0 && h.major >= 3 {
		if h.major == 3 {
			// v2.3: plain size excluding the size field itself
			if n, err := v.Uint32(v2HeaderSize); err == nil {
				h.skip = n + 4
			}
		} else if n, err := v.SynchsafeUint32(v2HeaderSize); err == nil {
			h.skip = n
		}
	}
	return h, true
}

// readV2 reads and walks the leading ID3v2 tag.
func readV2(ctx context.Context, r types.Reader, size int64, limit int, log *slog.Logger) (*types.ID3v2, []types.Warning, error) {
	prefix, err := types.ReadRange(ctx, r, v2PrefixSize, 0)
	if err != nil {
		return nil, nil, err
	}

	h, ok := parseV2Header(prefix)
	if !ok {
		return nil, nil, nil
	}

	var warnings []types.Warning
	warn := func(offset int64, format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		log.Debug("id3v2: "+msg, slog.Int64("offset", offset))
		warnings = append(warnings, types.Warning{Stage: "id3v2", Message: msg, Offset: offset})
	}

	if h.flags&flagUnsynchronisation != 0 {
		warn(5, "unsynchronised tag v2.%d.%d skipped", h.major, h.minor)
		return nil, warnings, nil
	}

	start := int64(v2HeaderSize) + int64(h.skip)
	length := int64(h.bodySize) - int64(h.skip)
	if rem := size - start; length > rem {
		length = rem
	}
	if length > int64(limit) {
		warn(start, "tag body of %d bytes truncated to %d", length, limit)
		length = int64(limit)
	}

	log.Debug("id3v2 header",
		slog.String("version", fmt.Sprintf("2.%d.%d", h.major, h.minor)),
		slog.Uint64("size", uint64(h.bodySize)),
		slog.Uint64("extended", uint64(h.skip)))

	var body []byte
	if length > 0 {
		body, err = types.ReadRange(ctx, r, int(length), start)
		if err != nil {
			return nil, nil, err
		}
	}

	tag := &types.ID3v2{
		Major:  h.major,
		Minor:  h.minor,
		Values: make(map[string]types.FrameValue),
	}
	walkFrames(body, tag, func(pos int, err error) {
		warn(start+int64(pos), "%v", err)
	})

	tag.Title = tag.Get("title")
	tag.Album = tag.Get("album")
	tag.Artist = tag.Get("artist")
	tag.Year = tag.Get("year")

	return tag, warnings, nil
}

// walkFrames decodes every frame of body into tag. Scanning stops at the
// first position that does not start with a valid frame ID (padding).
func walkFrames(body []byte, tag *types.ID3v2, onError func(pos int, err error)) {
	headerSize := frameHeaderSize
	if tag.Major < 3 {
		headerSize = legacyHeaderSize
	}

	v := binary.NewView(body, "ID3v2 body")
	for pos := 0; pos+headerSize <= len(body); {
		if !validFrameID(body[pos : pos+3]) {
			return
		}

		var n int
		switch {
		case tag.Major < 3:
			size, _ := v.Uint24(pos+3, binary.BigEndian)
			n = int(size)
		case tag.Major == 3:
			size, _ := v.Uint32(pos + 4)
			n = int(size)
		default:
			size, _ := v.SynchsafeUint32(pos + 4)
			n = int(size)
		}

		end := pos + headerSize + n
		if n < 0 || end > len(body) || end < pos {
			onError(pos, fmt.Errorf("frame %q size %d exceeds tag body", body[pos:pos+3], n))
			end = len(body)
		}

		frame, err := DecodeFrame(body[pos:end], tag.Major, tag.Minor)
		switch {
		case err != nil:
			onError(pos, err)
		case frame != nil:
			tag.Frames = append(tag.Frames, *frame)
			if img, ok := frame.Value.(types.Image); ok {
				tag.Images = append(tag.Images, img)
			} else {
				tag.Values[frame.Name] = frame.Value
			}
		}

		pos = end
	}
}

// validFrameID reports whether id consists of A-Z and 0-9 only.
func validFrameID(id []byte) bool {
	for _, c := range id {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
