// Package audiotags reads ID3 and MPEG-4 metadata over random-access readers.
//
// audiotags extracts title, artist, album, year, embedded images and
// free-form items from MP3 streams (ID3v1, ID3v1.1, ID3v2.2, ID3v2.3,
// ID3v2.4) and from M4A/M4B/MP4 files (iTunes "ilst" atoms). All access to
// the underlying data goes through the Reader interface, so local files,
// HTTP range requests and in-memory buffers are handled the same way.
//
// # Quick Start
//
// Reading metadata from a local file:
//
//	md, err := audiotags.Open(ctx, "song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s - %s (%s)\n", md.Artist, md.Title, md.Year)
//
// Reading a remote file with byte-range requests:
//
//	md, err := audiotags.OpenURL(ctx, "https://example.com/track.m4a")
//
// # Format-specific Access
//
// ReadID3 and ReadMP4 return the full format-specific records:
//
//	tag, err := audiotags.ReadID3(ctx, audiotags.NewFileReader("song.mp3"))
//	if errors.Is(err, audiotags.ErrNoTag) {
//		// neither ID3v1 nor ID3v2 present
//	}
//	for _, img := range tag.Images() {
//		os.WriteFile("cover.jpg", img.Data, 0o644)
//	}
//
// The merged ID3 record prefers ID3v2 values for title, album and artist
// and falls back to ID3v1. The year always comes from ID3v1; the ID3v2
// year frame is available as tag.V2.Year.
//
//	tags, err := audiotags.ReadMP4(ctx, r, audiotags.WithExtendedMP4Fields())
//	for name, field := range tags.Fields {
//		fmt.Printf("%s: %s\n", name, field)
//	}
//
// # Readers
//
// A Reader is opened before parsing and closed afterwards on every path,
// including failures. Close errors are logged and otherwise ignored.
//
// # Error Handling
//
// audiotags distinguishes between fatal errors and warnings:
//
//   - Fatal errors stop the parse: reader failures (*ReadError), unknown
//     formats (*UnsupportedFormatError) and MP4 items that appear twice
//     (*DuplicateAtomError).
//   - Warnings describe skipped data: frames with compression or
//     encryption flags, unknown text encodings, unsynchronised ID3v2 tags,
//     malformed atom lengths.
//
// WithStrictParsing turns the first warning into an error and
// WithIgnoreWarnings discards them.
//
// # Logging
//
// Parsers log through log/slog. Pass a logger with WithLogger to see frame
// and atom level debug output; the default logger discards everything.
package audiotags
