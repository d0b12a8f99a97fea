package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/audiotags"
)

var (
	heading = color.New(color.FgWhite, color.Bold)
	label   = color.New(color.FgGreen)
	warning = color.New(color.FgYellow)
)

// report is the YAML shape of one dumped resource.
type report struct {
	Source   string            `yaml:"source"`
	Format   string            `yaml:"format"`
	Size     int64             `yaml:"size"`
	Title    string            `yaml:"title,omitempty"`
	Artist   string            `yaml:"artist,omitempty"`
	Album    string            `yaml:"album,omitempty"`
	Year     string            `yaml:"year,omitempty"`
	Version  string            `yaml:"id3v2_version,omitempty"`
	Fields   map[string]string `yaml:"fields,omitempty"`
	Images   []string          `yaml:"images,omitempty"`
	Warnings []string          `yaml:"warnings,omitempty"`
}

func newReport(source string, md *audiotags.Metadata) report {
	rep := report{
		Source: source,
		Format: md.Format.String(),
		Size:   md.Size,
		Title:  md.Title,
		Artist: md.Artist,
		Album:  md.Album,
		Year:   md.Year,
		Fields: make(map[string]string),
	}

	if tag := md.ID3; tag != nil {
		if tag.V2 != nil {
			rep.Version = tag.V2.Version()
			for name, v := range tag.V2.Values {
				if t, ok := v.(audiotags.Text); ok {
					rep.Fields[name] = string(t)
				}
			}
		}
		if tag.V1 != nil {
			rep.Fields["v1_version"] = tag.V1.Version
			if tag.V1.Genre != "" {
				rep.Fields["v1_genre"] = tag.V1.Genre
			}
		}
		for _, img := range tag.Images() {
			rep.Images = append(rep.Images, img.String())
		}
	}

	if tags := md.MP4; tags != nil {
		for name, f := range tags.Fields {
			if name == "cover" {
				continue
			}
			rep.Fields[name] = f.String()
		}
		for _, c := range tags.Covers() {
			rep.Images = append(rep.Images, fmt.Sprintf("cover (%s, %dB)", c.Format, len(c.Data)))
		}
	}

	for _, w := range md.Warnings {
		rep.Warnings = append(rep.Warnings, w.String())
	}
	return rep
}

func writeYAML(w io.Writer, source string, md *audiotags.Metadata) error {
	out, err := yaml.Marshal(newReport(source, md))
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if _, err := fmt.Fprintf(w, "---\n%s", out); err != nil {
		return err
	}
	return nil
}

func writeText(w io.Writer, source string, md *audiotags.Metadata) {
	rep := newReport(source, md)

	heading.Fprintf(w, "%s", rep.Source)
	fmt.Fprintf(w, " [%s, %d bytes]\n", rep.Format, rep.Size)
	if rep.Version != "" {
		field(w, "id3v2", rep.Version)
	}
	field(w, "title", rep.Title)
	field(w, "artist", rep.Artist)
	field(w, "album", rep.Album)
	field(w, "year", rep.Year)

	for _, name := range slices.Sorted(maps.Keys(rep.Fields)) {
		switch name {
		case "title", "artist", "album":
			continue
		}
		field(w, name, rep.Fields[name])
	}
	for _, img := range rep.Images {
		field(w, "image", img)
	}
	for _, msg := range rep.Warnings {
		warning.Fprintf(w, "  warning: %s\n", msg)
	}
}

func field(w io.Writer, name, value string) {
	if value == "" {
		return
	}
	label.Fprintf(w, "  %-16s", name+":")
	fmt.Fprintf(w, " %s\n", value)
}
