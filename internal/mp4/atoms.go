// Package mp4 walks the MPEG-4 atom tree and decodes iTunes-style
// metadata items from moov/udta/meta/ilst.
package mp4

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/simonhull/audiotags/internal/binary"
	"github.com/simonhull/audiotags/internal/types"
)

// maxDepth bounds container recursion on malformed or hostile files.
const maxDepth = 16

// containers lists atoms whose payload is a sequence of child atoms, with
// the number of preamble bytes to skip before the first child.
var containers = map[string]int{
	"moov": 0, // Movie container
	"udta": 0, // User data
	"mdia": 0, // Media container
	"meta": 4, // Metadata container (version + flags)
	"ilst": 0, // iTunes metadata list
	"stbl": 0, // Sample table
	"minf": 0, // Media information
	"moof": 0, // Movie fragment
	"traf": 0, // Track fragment
	"trak": 0, // Track container
	"stsd": 8, // Sample descriptions (version + flags + entry count)
}

// Atom represents an MP4 atom (box).
type Atom struct {
	Name       string // 4-character type code, raw bytes ("\xa9nam")
	Length     uint64 // Total size including header
	Offset     int64  // Position in the resource
	HeaderSize int    // 8, or 16 with a 64-bit extended size
	Children   []*Atom
}

// IsContainer returns true if this atom type can contain other atoms
func (a *Atom) IsContainer() bool {
	_, ok := containers[a.Name]
	return ok
}

// DataOffset returns the offset where the atom's payload starts
func (a *Atom) DataOffset() int64 {
	return a.Offset + int64(a.HeaderSize)
}

// DataSize returns the size of the atom's payload (excluding header)
func (a *Atom) DataSize() int64 {
	if a.Length < uint64(a.HeaderSize) {
		return 0
	}
	return int64(a.Length) - int64(a.HeaderSize)
}

// End returns the offset just past the atom.
func (a *Atom) End() int64 {
	return a.Offset + int64(a.Length)
}

// ReadAtomHeader reads the atom header at off. It returns nil when fewer
// than 8 bytes remain, which ends the enclosing sequence.
//
// A 32-bit length of 1 announces a 64-bit extended length. A length of 0
// means the atom runs to the end of its parent; the caller resolves it.
func ReadAtomHeader(ctx context.Context, r types.Reader, off int64) (*Atom, error) {
	buf, err := types.ReadRange(ctx, r, 16, off)
	if err != nil {
		return nil, err
	}
	if len(buf) < 8 {
		return nil, nil
	}

	v := binary.NewView(buf, types.SourceName(r))
	size32, _ := v.Uint32(0)
	name, _ := v.Bytes(4, 4)

	atom := &Atom{
		Name:       string(name),
		Length:     uint64(size32),
		Offset:     off,
		HeaderSize: 8,
	}

	// Handle extended size (size == 1 means 64-bit size follows)
	if size32 == 1 {
		size64, err := v.Uint64(8)
		if err != nil {
			return nil, fmt.Errorf("atom %q at offset %d: truncated extended size: %w", atom.Name, off, err)
		}
		atom.Length = size64
		atom.HeaderSize = 16
	}

	return atom, nil
}

// walker builds the atom tree and collects warnings.
type walker struct {
	r        types.Reader
	log      *slog.Logger
	warnings []types.Warning
}

func (w *walker) warn(offset int64, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	w.log.Debug("mp4: "+msg, slog.Int64("offset", offset))
	w.warnings = append(w.warnings, types.Warning{Stage: "mp4", Message: msg, Offset: offset})
}

// children reads the atoms in [start, end), recursing into containers.
func (w *walker) children(ctx context.Context, start, end int64, depth int) ([]*Atom, error) {
	var atoms []*Atom

	for off := start; off < end; {
		atom, err := ReadAtomHeader(ctx, w.r, off)
		if err != nil {
			return nil, err
		}
		if atom == nil {
			break
		}

		switch {
		case atom.Length == 0:
			atom.Length = uint64(end - off)
		case atom.Length < uint64(atom.HeaderSize):
			w.warn(off, "atom %q has invalid length %d", atom.Name, atom.Length)
			return atoms, nil
		}

		truncated := false
		if atom.Length > uint64(end-off) {
			w.warn(off, "atom %q length %d exceeds enclosing range of %d bytes", atom.Name, atom.Length, end-off)
			atom.Length = uint64(end - off)
			truncated = true
		}

		if skip, ok := containers[atom.Name]; ok {
			if depth >= maxDepth {
				w.warn(off, "atom %q nested deeper than %d levels, not expanded", atom.Name, maxDepth)
			} else {
				atom.Children, err = w.children(ctx, atom.DataOffset()+int64(skip), atom.End(), depth+1)
				if err != nil {
					return nil, err
				}
			}
		}

		w.log.Debug("atom",
			slog.String("name", atom.Name),
			slog.Int64("offset", atom.Offset),
			slog.Uint64("length", atom.Length),
			slog.Int("depth", depth))

		atoms = append(atoms, atom)
		if truncated {
			break
		}
		off = atom.End()
	}

	return atoms, nil
}

// Walk reads the atom tree of r, whose size is known, starting at offset 0.
// Malformed lengths end the affected sequence with a warning.
func Walk(ctx context.Context, r types.Reader, size int64, log *slog.Logger) ([]*Atom, []types.Warning, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	w := &walker{r: r, log: log}
	atoms, err := w.children(ctx, 0, size, 0)
	if err != nil {
		return nil, nil, err
	}
	return atoms, w.warnings, nil
}

// Find follows path through the tree and returns the atom at its end, or
// nil if any segment is missing.
func Find(atoms []*Atom, path ...string) *Atom {
	var found *Atom
	for _, name := range path {
		found = nil
		for _, a := range atoms {
			if a.Name == name {
				found = a
				break
			}
		}
		if found == nil {
			return nil
		}
		atoms = found.Children
	}
	return found
}
