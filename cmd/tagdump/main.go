// Command tagdump prints the ID3 or MP4 metadata of local files and URLs.
//
// Usage:
//
//	tagdump [flags] <file-or-url>...
//
// With -atoms, MP4 inputs are printed as an atom tree instead, which is
// useful to confirm what the parser can actually reach.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/simonhull/audiotags"
)

type config struct {
	output   string
	atoms    bool
	extended bool
	strict   bool
	debug    bool
	noColor  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg config

	fs := flag.NewFlagSet("tagdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.output, "o", "text", "output format: text or yaml")
	fs.BoolVar(&cfg.atoms, "atoms", false, "dump the MP4 atom tree")
	fs.BoolVar(&cfg.extended, "extended", false, "decode every known MP4 item")
	fs.BoolVar(&cfg.strict, "strict", false, "fail on the first warning")
	fs.BoolVar(&cfg.debug, "debug", false, "log parser diagnostics to stderr")
	fs.BoolVar(&cfg.noColor, "no-color", false, "disable colored output")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: tagdump [flags] <file-or-url>...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	if cfg.output != "text" && cfg.output != "yaml" {
		fmt.Fprintf(stderr, "unknown output format %q\n", cfg.output)
		return 2
	}

	if cfg.noColor || !isTerminal(stdout) {
		color.NoColor = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []audiotags.Option{audiotags.WithLogger(newLogger(stderr, cfg.debug))}
	if cfg.extended {
		opts = append(opts, audiotags.WithExtendedMP4Fields())
	}
	if cfg.strict {
		opts = append(opts, audiotags.WithStrictParsing())
	}

	status := 0
	for _, target := range fs.Args() {
		if err := dump(ctx, stdout, target, cfg, opts); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", target, err)
			status = 1
		}
	}
	return status
}

func dump(ctx context.Context, w io.Writer, target string, cfg config, opts []audiotags.Option) error {
	r := newReader(target)

	if cfg.atoms {
		return dumpAtoms(ctx, w, r, target)
	}

	md, err := audiotags.Read(ctx, r, opts...)
	if err != nil {
		return err
	}

	if cfg.output == "yaml" {
		return writeYAML(w, target, md)
	}
	writeText(w, target, md)
	return nil
}

func newReader(target string) audiotags.Reader {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return audiotags.NewHTTPReader(target, nil)
	}
	return audiotags.NewFileReader(target)
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
