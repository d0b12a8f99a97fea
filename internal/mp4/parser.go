package mp4

import (
	"context"

	"github.com/simonhull/audiotags/internal/registry"
	"github.com/simonhull/audiotags/internal/types"
)

// parser implements the registry.FormatParser interface
type parser struct{}

// Parse parses the ilst metadata of r.
func (p *parser) Parse(ctx context.Context, r types.Reader, size int64, cfg types.Config) (*types.Metadata, error) {
	tags, err := Parse(ctx, r, size, cfg)
	if err != nil {
		return nil, err
	}
	return types.FromMP4(tags, size), nil
}

// init registers the MP4 parser
func init() {
	registry.Register(types.FormatMP4, &parser{})
}
