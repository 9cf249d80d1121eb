package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// convertFlags holds all CLI flags.
type convertFlags struct {
	output      string
	config      string
	pageSize    string
	orientation string
	margin      float64
	breakBefore string
	quiet       bool
	verbose     bool
	version     bool
}

// parseFlags parses command-line arguments and returns the flags plus the
// positional input arguments.
func parseFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}

	fs := flag.NewFlagSet("mdpress", flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() { printUsage(os.Stderr) }

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
	fs.StringVar(&f.breakBefore, "break-before", "", "start a new page before headings, e.g. h1,h2")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the CLI usage text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: mdpress [flags] <input>...

Convert restricted Markdown files to styled PDF documents.

Inputs may be files, directories (searched recursively for .md and
.markdown files), or glob patterns such as 'docs/**/*.md'.

Flags:
  -o, --output string        output file or directory
  -c, --config string        config file name or path
  -p, --page-size string     page size: letter, a4, legal (default letter)
      --orientation string   page orientation: portrait, landscape (default portrait)
      --margin float         page margin in inches, 0.25 to 3.0 (default 1.0)
      --break-before string  start a new page before headings, e.g. h1,h2
  -q, --quiet                only show errors
  -v, --verbose              show detailed timing
      --version              print version and exit

Examples:
  mdpress README.md
  mdpress -o out/ docs/
  mdpress -p a4 --break-before h2 'notes/**/*.md'
`)
}
