package audiotags

import (
	"context"

	"github.com/simonhull/audiotags/internal/types"
)

// Format is an alias to types.Format.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatID3     = types.FormatID3
	FormatMP4     = types.FormatMP4
)

// DetectFormat inspects the magic bytes of an opened reader of the given size.
func DetectFormat(ctx context.Context, r Reader, size int64) (Format, error) {
	return types.DetectFormat(ctx, r, size)
}
