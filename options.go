package audiotags

import (
	"log/slog"
	"net/http"

	"github.com/simonhull/audiotags/internal/types"
)

// Option configures behavior when reading tags.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	md, err := audiotags.Open(ctx, "song.m4a",
//	    audiotags.WithStrictParsing(),
//	    audiotags.WithExtendedMP4Fields(),
//	)
type Option func(*options)

// options holds configuration for a read.
type options struct {
	logger         *slog.Logger
	strictParsing  bool // Fail on any warning
	ignoreWarnings bool // Suppress all warnings
	extendedMP4    bool // Decode every known ilst item
	httpClient     *http.Client
	maxTagSize     int // Cap on tag body / item reads (0 = default)
}

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.DiscardHandler),
	}
}

func newOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// config returns the parser configuration derived from o.
func (o *options) config() types.Config {
	return types.Config{
		Logger:            o.logger,
		ExtendedMP4Fields: o.extendedMP4,
		MaxTagSize:        o.maxTagSize,
	}
}

// WithLogger sets the logger used for parse diagnostics.
//
// Frame and atom decoding is logged at Debug level; reader close failures
// at Warn. The default logger discards everything.
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	md, err := audiotags.Open(ctx, "song.mp3", audiotags.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, audiotags continues parsing when it encounters issues like
// compressed frames or invalid text encodings, returning warnings alongside
// the parsed data. With strict parsing enabled, the first warning is
// returned as an error wrapping ErrStrictParsing.
func WithStrictParsing() Option {
	return func(o *options) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Example:
//
//	md, err := audiotags.Open(ctx, "song.mp3", audiotags.WithIgnoreWarnings())
//	// md.Warnings will always be empty
func WithIgnoreWarnings() Option {
	return func(o *options) {
		o.ignoreWarnings = true
	}
}

// WithExtendedMP4Fields decodes every known ilst item (cover art, sort
// keys, MusicBrainz identifiers, ...) instead of the core set of title,
// date, artist, album, track number and comment.
func WithExtendedMP4Fields() Option {
	return func(o *options) {
		o.extendedMP4 = true
	}
}

// WithHTTPClient sets the client used by OpenURL. Default is http.DefaultClient.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithMaxTagSize caps the size of a single ID3v2 tag body or MP4 item
// payload read, in bytes. Larger tags are truncated and larger items are
// skipped, each with a warning.
//
// Default is 64 MiB.
func WithMaxTagSize(bytes int) Option {
	return func(o *options) {
		o.maxTagSize = bytes
	}
}
