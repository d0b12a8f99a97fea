package audiotags_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/simonhull/audiotags"
)

// BenchmarkOpen measures reading a single local file.
func BenchmarkOpen(b *testing.B) {
	for _, tt := range []struct {
		name string
		data []byte
	}{
		{"id3", mp3File()},
		{"mp4", m4aTagged()},
	} {
		b.Run(tt.name, func(b *testing.B) {
			path := writeTemp(b, "bench", tt.data)
			ctx := context.Background()

			b.ReportAllocs()
			for b.Loop() {
				if _, err := audiotags.Open(ctx, path); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkReadBytes measures parsing without file I/O.
func BenchmarkReadBytes(b *testing.B) {
	data := m4aTagged()
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := audiotags.Read(ctx, audiotags.NewBytesReader(data), audiotags.WithExtendedMP4Fields()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkOpenMany measures OpenMany scalability.
func BenchmarkOpenMany(b *testing.B) {
	for _, n := range []int{1, 5, 10, 20, 50} {
		b.Run(fmt.Sprintf("%02d_files", n), func(b *testing.B) {
			paths := make([]string, n)
			for i := range paths {
				paths[i] = writeTemp(b, fmt.Sprintf("song%d.mp3", i), mp3File())
			}
			ctx := context.Background()

			b.ReportAllocs()
			for b.Loop() {
				if _, err := audiotags.OpenMany(ctx, paths); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkDetectFormat measures format detection performance.
func BenchmarkDetectFormat(b *testing.B) {
	r := audiotags.NewBytesReader(m4aTagged())
	ctx := context.Background()
	size, err := r.Open(ctx)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := audiotags.DetectFormat(ctx, r, size); err != nil {
			b.Fatal(err)
		}
	}
}
