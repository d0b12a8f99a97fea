package id3

import (
	"context"

	"github.com/simonhull/audiotags/internal/registry"
	"github.com/simonhull/audiotags/internal/types"
)

// parser implements the registry.FormatParser interface
type parser struct{}

// Parse parses the ID3 tags of r.
func (p *parser) Parse(ctx context.Context, r types.Reader, size int64, cfg types.Config) (*types.Metadata, error) {
	tag, err := Parse(ctx, r, size, cfg)
	if err != nil {
		return nil, err
	}
	return types.FromID3(tag, size), nil
}

// init registers the ID3 parser
func init() {
	registry.Register(types.FormatID3, &parser{})
}
