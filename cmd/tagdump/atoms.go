package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/encoding/charmap"

	"github.com/simonhull/audiotags"
	"github.com/simonhull/audiotags/internal/mp4"
)

// dumpAtoms prints the atom tree of r.
func dumpAtoms(ctx context.Context, w io.Writer, r audiotags.Reader, target string) error {
	size, err := r.Open(ctx)
	if err != nil {
		return err
	}
	defer r.Close()

	atoms, warnings, err := mp4.Walk(ctx, r, size, slog.New(slog.DiscardHandler))
	if err != nil {
		return err
	}

	heading.Fprintf(w, "%s\n", target)
	printAtoms(w, atoms, 0)
	for _, warn := range warnings {
		warning.Fprintf(w, "warning: %s\n", warn)
	}
	return nil
}

func printAtoms(w io.Writer, atoms []*mp4.Atom, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, a := range atoms {
		name := atomName(a.Name)
		if a.IsContainer() {
			name = container.Sprint(name)
		}
		fmt.Fprintf(w, "%s%s (size: %d, offset: %d)\n", indent, name, a.Length, a.Offset)
		printAtoms(w, a.Children, depth+1)
	}
}

// atomName renders a raw four-byte atom name, so "\xa9nam" prints as "©nam".
func atomName(raw string) string {
	s, err := charmap.ISO8859_1.NewDecoder().String(raw)
	if err != nil {
		return fmt.Sprintf("%q", raw)
	}
	return s
}

var container = color.New(color.FgCyan)
