package audiotags

import (
	"github.com/simonhull/audiotags/internal/types"
)

// Reader is an alias to types.Reader.
type Reader = types.Reader

// Metadata is an alias to types.Metadata.
type Metadata = types.Metadata

// ID3 records.
type (
	ID3Tag     = types.ID3Tag
	ID3v1      = types.ID3v1
	ID3v2      = types.ID3v2
	Frame      = types.Frame
	FrameValue = types.FrameValue
	Text       = types.Text
	Private    = types.Private
	Image      = types.Image
	ImageType  = types.ImageType
)

// MP4 records.
type (
	MP4Tags   = types.MP4Tags
	MP4Field  = types.MP4Field
	DataBlock = types.DataBlock
	IntPair   = types.IntPair
	Cover     = types.Cover
)

// Picture types most callers look for.
const (
	ImageOther      = types.ImageOther
	ImageCoverFront = types.ImageCoverFront
	ImageCoverBack  = types.ImageCoverBack
	ImageArtist     = types.ImageArtist
)
