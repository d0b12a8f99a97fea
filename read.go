package audiotags

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/audiotags/internal/id3"
	"github.com/simonhull/audiotags/internal/mp4"
	"github.com/simonhull/audiotags/internal/registry"
	"github.com/simonhull/audiotags/internal/types"
)

// withReader opens r, runs fn with the reported size and closes r on every
// path. Close failures are logged and never replace the result.
func withReader[T any](ctx context.Context, r Reader, o *options, fn func(size int64) (T, error)) (T, error) {
	var zero T

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	defer func() {
		if err := r.Close(); err != nil {
			o.logger.Warn("close failed",
				slog.String("source", types.SourceName(r)),
				slog.Any("error", err))
		}
	}()

	size, err := r.Open(ctx)
	if err != nil {
		return zero, &ReadError{Path: types.SourceName(r), Op: "open", Err: err}
	}

	return fn(size)
}

// checkWarnings applies the strict and ignore options to warnings. It
// returns the warnings to keep.
func checkWarnings(o *options, warnings []Warning) ([]Warning, error) {
	if o.strictParsing && len(warnings) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrStrictParsing, warnings[0])
	}
	if o.ignoreWarnings {
		return nil, nil
	}
	return warnings, nil
}

// ReadID3 reads the ID3v1 and ID3v2 tags of r and returns the merged record.
//
// The returned error is ErrNoTag when neither tag is present.
//
// Example:
//
//	tag, err := audiotags.ReadID3(ctx, audiotags.NewFileReader("song.mp3"))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(tag.Title, tag.V2.Version())
func ReadID3(ctx context.Context, r Reader, opts ...Option) (*ID3Tag, error) {
	o := newOptions(opts)
	return withReader(ctx, r, o, func(size int64) (*ID3Tag, error) {
		tag, err := id3.Parse(ctx, r, size, o.config())
		if err != nil {
			return nil, err
		}
		if tag.Warnings, err = checkWarnings(o, tag.Warnings); err != nil {
			return nil, err
		}
		return tag, nil
	})
}

// ReadMP4 decodes the iTunes metadata items of an MPEG-4 resource.
//
// A resource without moov/udta/meta/ilst yields empty tags. An item that
// appears twice returns a *DuplicateAtomError and no tags.
func ReadMP4(ctx context.Context, r Reader, opts ...Option) (*MP4Tags, error) {
	o := newOptions(opts)
	return withReader(ctx, r, o, func(size int64) (*MP4Tags, error) {
		tags, err := mp4.Parse(ctx, r, size, o.config())
		if err != nil {
			return nil, err
		}
		if tags.Warnings, err = checkWarnings(o, tags.Warnings); err != nil {
			return nil, err
		}
		return tags, nil
	})
}

// Read detects the format of r and parses it with the matching parser.
func Read(ctx context.Context, r Reader, opts ...Option) (*Metadata, error) {
	o := newOptions(opts)
	return withReader(ctx, r, o, func(size int64) (*Metadata, error) {
		format, err := types.DetectFormat(ctx, r, size)
		if err != nil {
			return nil, err
		}

		parser := registry.Get(format)
		if parser == nil {
			return nil, &UnsupportedFormatError{
				Path:   types.SourceName(r),
				Reason: "no parser registered for " + format.String(),
			}
		}

		o.logger.Debug("parsing",
			slog.String("source", types.SourceName(r)),
			slog.String("format", format.String()),
			slog.Int64("size", size))

		md, err := parser.Parse(ctx, r, size, o.config())
		if err != nil {
			return nil, err
		}

		warnings, err := checkWarnings(o, md.Warnings)
		if err != nil {
			return nil, err
		}
		md.Warnings = warnings
		if md.ID3 != nil {
			md.ID3.Warnings = warnings
		}
		if md.MP4 != nil {
			md.MP4.Warnings = warnings
		}
		return md, nil
	})
}

// Open reads the metadata of a local file.
//
// Example:
//
//	md, err := audiotags.Open(ctx, "song.mp3")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(md.Title)
func Open(ctx context.Context, path string, opts ...Option) (*Metadata, error) {
	return Read(ctx, NewFileReader(path), opts...)
}

// OpenURL reads the metadata of a remote resource with HTTP range requests.
//
// The server must report Content-Length on HEAD. Servers ignoring Range are
// tolerated at the cost of transferring the leading bytes.
func OpenURL(ctx context.Context, url string, opts ...Option) (*Metadata, error) {
	o := newOptions(opts)
	return Read(ctx, NewHTTPReader(url, o.httpClient), opts...)
}

// OpenMany reads multiple files concurrently.
//
// Files are processed in parallel with a concurrency limit of runtime.NumCPU().
// Results are returned in the same order as the input paths.
//
// If any file fails, OpenMany cancels the remaining work and returns the
// first error encountered. Partial results are discarded.
//
// Example:
//
//	results, err := audiotags.OpenMany(ctx, []string{"song1.mp3", "song2.m4a"})
//	if err != nil {
//	    return err
//	}
//	for _, md := range results {
//	    fmt.Println(md.Title)
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*Metadata, error) {
	if len(paths) == 0 {
		return []*Metadata{}, nil
	}

	results := make([]*Metadata, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			md, err := Open(gctx, path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = md
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
