package mp4

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/simonhull/audiotags/internal/types"
)

// ilstPath locates the iTunes metadata item list.
var ilstPath = []string{"moov", "udta", "meta", "ilst"}

// Parse walks the atom tree of r and decodes the ilst items of interest.
//
// A resource without moov/udta/meta/ilst yields empty tags, not an error.
// An item appearing twice aborts the parse with a *types.DuplicateAtomError.
func Parse(ctx context.Context, r types.Reader, size int64, cfg types.Config) (*types.MP4Tags, error) {
	log := cfg.Log().With(slog.String("source", types.SourceName(r)))

	atoms, warnings, err := Walk(ctx, r, size, log)
	if err != nil {
		return nil, err
	}

	tags := &types.MP4Tags{
		Fields:   make(map[string]types.MP4Field),
		Warnings: warnings,
	}

	ilst := Find(atoms, ilstPath...)
	if ilst == nil {
		log.Debug("no ilst atom found")
		return tags, nil
	}

	c := &collector{
		r:      r,
		log:    log,
		limit:  cfg.TagLimit(),
		wanted: wantedFields(cfg.ExtendedMP4Fields),
		tags:   tags,
		seen:   make(map[string]int64),
	}
	for _, item := range ilst.Children {
		if err := c.collect(ctx, item); err != nil {
			return nil, err
		}
	}

	postProcess(tags)
	return tags, nil
}

// wantedFields returns the set of human names to decode.
func wantedFields(extended bool) map[string]bool {
	wanted := make(map[string]bool, len(atomNames))
	if extended {
		for human := range atomNames {
			wanted[human] = true
		}
		return wanted
	}
	for _, human := range coreFields {
		wanted[human] = true
	}
	return wanted
}

// collector decodes ilst items into MP4Tags.
type collector struct {
	r      types.Reader
	log    *slog.Logger
	limit  int
	wanted map[string]bool
	tags   *types.MP4Tags
	seen   map[string]int64 // atom key -> offset of first occurrence
}

func (c *collector) warn(offset int64, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.log.Debug("mp4: "+msg, slog.Int64("offset", offset))
	c.tags.Warnings = append(c.tags.Warnings, types.Warning{Stage: "mp4", Message: msg, Offset: offset})
}

// collect decodes one ilst item if it is of interest.
func (c *collector) collect(ctx context.Context, item *Atom) error {
	freeform := item.Name == "----"

	// Non-freeform items can be filtered before their payload is read.
	human, known := humanNames[item.Name]
	if !freeform && (!known || !c.wanted[human]) {
		return nil
	}

	size := item.DataSize()
	if size > int64(c.limit) {
		c.warn(item.Offset, "item %q of %d bytes exceeds limit of %d, skipped", item.Name, size, c.limit)
		return nil
	}

	payload, err := types.ReadRange(ctx, c.r, int(size), item.DataOffset())
	if err != nil {
		return err
	}

	blocks, errs := decodeBlocks(payload, freeform, extractorFor(item.Name))
	for _, err := range errs {
		c.warn(item.Offset, "item %q: %v", item.Name, err)
	}

	key := item.Name
	if freeform {
		if len(blocks) < 2 {
			c.warn(item.Offset, "freeform item without mean/name blocks")
			return nil
		}
		mean, _ := blocks[0].Value.(string)
		name, _ := blocks[1].Value.(string)
		key = "----:" + mean + ":" + name
		blocks = blocks[2:]

		human, known = humanNames[key]
		if !known || !c.wanted[human] {
			return nil
		}
	}

	if first, dup := c.seen[key]; dup {
		c.log.Debug("duplicate atom",
			slog.String("atom", key),
			slog.Int64("first", first),
			slog.Int64("offset", item.Offset))
		return &types.DuplicateAtomError{
			Path:   types.SourceName(c.r),
			Atom:   key,
			Offset: item.Offset,
		}
	}
	c.seen[key] = item.Offset

	c.tags.Fields[human] = types.MP4Field{Name: human, Atom: key, Blocks: blocks}
	c.log.Debug("ilst item",
		slog.String("field", human),
		slog.Int("blocks", len(blocks)))
	return nil
}

// postProcess fills the convenience fields from the decoded items.
func postProcess(tags *types.MP4Tags) {
	text := func(human string) string {
		f, ok := tags.Fields[human]
		if !ok {
			return ""
		}
		return strings.TrimSpace(f.String())
	}

	tags.Title = text("title")
	tags.Artist = text("artist")
	tags.Album = text("album")
	tags.Comment = text("comment")
	tags.Date = text("date")
	tags.Year = yearOf(tags.Date)

	if f, ok := tags.Fields["tracknumber"]; ok {
		if p, ok := f.Value().(types.IntPair); ok {
			tags.Track = p.String()
		}
	}
}

// dateLayouts are the ©day formats seen in the wild, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"2006",
}

// yearOf extracts the year component of a ©day value. Values that do not
// parse as a date fall back to their leading four digits.
func yearOf(date string) string {
	if date == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return fmt.Sprintf("%04d", t.Year())
		}
	}
	if len(date) >= 4 && isDigits(date[:4]) {
		return date[:4]
	}
	return ""
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}
