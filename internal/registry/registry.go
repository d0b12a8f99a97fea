// Package registry maps detected formats to their tag parsers.
package registry

import (
	"context"
	"sync"

	"github.com/simonhull/audiotags/internal/types"
)

// FormatParser is the interface all format parsers implement.
type FormatParser interface {
	// Parse reads the tags of an opened reader of the given size.
	Parse(ctx context.Context, r types.Reader, size int64, cfg types.Config) (*types.Metadata, error)
}

// ParserFunc adapts a function to FormatParser.
type ParserFunc func(ctx context.Context, r types.Reader, size int64, cfg types.Config) (*types.Metadata, error)

// Parse calls f.
func (f ParserFunc) Parse(ctx context.Context, r types.Reader, size int64, cfg types.Config) (*types.Metadata, error) {
	return f(ctx, r, size, cfg)
}

var (
	mu      sync.RWMutex
	parsers = make(map[types.Format]FormatParser)
)

// Register registers a parser for a format, replacing any earlier one.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, parser FormatParser) {
	mu.Lock()
	defer mu.Unlock()
	parsers[format] = parser
}

// Get returns the parser for a given format.
// Returns nil if no parser is registered for the format.
func Get(format types.Format) FormatParser {
	mu.RLock()
	defer mu.RUnlock()
	return parsers[format]
}
