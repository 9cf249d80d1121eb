package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hmarchal/mdpress"
	"github.com/hmarchal/mdpress/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrNoFilesFound     = errors.New("no markdown files found")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrInvalidBreakName = errors.New("invalid --break-before value")
)

// File permission constants.
const (
	dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, inputs []string, flags *convertFlags, env *Environment) error {
	if len(inputs) == 0 {
		printUsage(env.Stderr)
		return ErrNoInput
	}

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Build converter options; CLI flags override config values.
	pageData, err := buildPageSettings(flags, cfg)
	if err != nil {
		return err
	}
	breakLevels, err := buildBreakLevels(flags, cfg)
	if err != nil {
		return err
	}

	var opts []mdpress.Option
	if pageData != nil {
		opts = append(opts, mdpress.WithPageSettings(pageData))
	}
	if len(breakLevels) > 0 {
		opts = append(opts, mdpress.WithBreakBefore(breakLevels...))
	}

	conv, err := mdpress.NewConverter(opts...)
	if err != nil {
		return err
	}

	if err := applyStyleOverrides(conv.Styles(), cfg.Styles); err != nil {
		return err
	}

	// Discover files to convert
	outputDir := resolveOutputDir(flags.output, cfg)
	files, err := discoverFiles(inputs, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: %s", ErrNoFilesFound, strings.Join(inputs, ", "))
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Converting %d file(s)...\n", len(files))
	}

	results := convertAll(ctx, conv, files)

	failedCount := printResults(results, flags.quiet, flags.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}
	return nil
}

// convertAll processes files one at a time, in order. A failed file is
// recorded and the batch continues.
func convertAll(ctx context.Context, conv *mdpress.Converter, files []FileToConvert) []ConversionResult {
	results := make([]ConversionResult, 0, len(files))
	for _, f := range files {
		start := time.Now()
		out, err := convertOne(ctx, conv, f)
		results = append(results, ConversionResult{
			InputPath:  f.InputPath,
			OutputPath: out,
			Err:        err,
			Duration:   time.Since(start),
		})
	}
	return results
}

// convertOne ensures the output directory exists and converts one file.
func convertOne(ctx context.Context, conv *mdpress.Converter, f FileToConvert) (string, error) {
	if dir := filepath.Dir(f.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
	}
	return conv.ConvertFile(ctx, f.InputPath, f.OutputPath)
}

// printResults writes per-file outcomes and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}

// resolveOutputDir determines the output location from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.Dir
}

// buildPageSettings creates mdpress.PageSettings from flags and config.
// Returns nil when neither sets anything, leaving library defaults in place.
func buildPageSettings(flags *convertFlags, cfg *config.Config) (*mdpress.PageSettings, error) {
	hasFlags := flags.pageSize != "" || flags.orientation != "" || flags.margin > 0
	hasConfig := cfg.Page.Size != "" || cfg.Page.Orientation != "" || cfg.Page.Margin > 0

	if !hasFlags && !hasConfig {
		return nil, nil
	}

	ps := &mdpress.PageSettings{
		Size:        cfg.Page.Size,
		Orientation: cfg.Page.Orientation,
		Margin:      cfg.Page.Margin,
	}

	// CLI flags override config
	if flags.pageSize != "" {
		ps.Size = flags.pageSize
	}
	if flags.orientation != "" {
		ps.Orientation = flags.orientation
	}
	if flags.margin > 0 {
		ps.Margin = flags.margin
	}

	// Apply defaults for anything still unset; NewConverter validates.
	if ps.Size == "" {
		ps.Size = mdpress.PageSizeLetter
	}
	if ps.Orientation == "" {
		ps.Orientation = mdpress.OrientationPortrait
	}
	if ps.Margin == 0 {
		ps.Margin = mdpress.DefaultMargin
	}

	return ps, nil
}

// buildBreakLevels resolves the page-break heading levels. The CLI flag
// replaces the config list entirely when set.
func buildBreakLevels(flags *convertFlags, cfg *config.Config) ([]int, error) {
	if flags.breakBefore == "" {
		return cfg.Breaks.Before, nil
	}
	return parseBreakBefore(flags.breakBefore)
}

// parseBreakBefore parses "--break-before=h1,h2" into heading levels.
func parseBreakBefore(value string) ([]int, error) {
	var levels []int
	for _, p := range strings.Split(strings.ToLower(value), ",") {
		switch strings.TrimSpace(p) {
		case "h1":
			levels = append(levels, 1)
		case "h2":
			levels = append(levels, 2)
		case "h3":
			levels = append(levels, 3)
		default:
			return nil, fmt.Errorf("%w: %q (must be h1, h2, or h3)", ErrInvalidBreakName, p)
		}
	}
	return levels, nil
}

// applyStyleOverrides pushes config style tweaks into the registry.
// Unknown kind names surface as the registry's error.
func applyStyleOverrides(reg *mdpress.StyleRegistry, styles map[string]config.StyleConfig) error {
	for name, sc := range styles {
		o := mdpress.StyleOverride{
			Family:      sc.Family,
			Size:        sc.Size,
			Bold:        sc.Bold,
			Italic:      sc.Italic,
			Underline:   sc.Underline,
			Color:       sc.Color,
			Fill:        sc.Fill,
			Leading:     sc.Leading,
			LeftIndent:  sc.LeftIndent,
			SpaceBefore: sc.SpaceBefore,
			SpaceAfter:  sc.SpaceAfter,
		}
		if err := reg.Override(mdpress.Kind(name), o); err != nil {
			return fmt.Errorf("config styles: %w", err)
		}
	}
	return nil
}
