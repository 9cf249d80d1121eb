package mdpress

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hmarchal/mdpress/internal/fileutil"
	"github.com/hmarchal/mdpress/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ flowBuilder   = (*documentBuilder)(nil)
	_ renderBackend = (*fpdfRenderer)(nil)
)

// flowBuilder turns classified blocks into backend-ready flow primitives.
type flowBuilder interface {
	Build(blocks []pipeline.Block) ([]FlowPrimitive, error)
}

// renderBackend paginates flow primitives and produces the PDF artifact.
type renderBackend interface {
	Render(flow []FlowPrimitive, page *PageSettings) ([]byte, error)
}

// Converter runs the markdown-to-PDF pipeline: classify lines into
// blocks, build styled flow primitives, render pages.
//
// A Converter may be reused across any number of conversions and its
// style registry tweaked between them, but at most one conversion may be
// in flight per Converter: styles are read without locking by contract.
type Converter struct {
	cfg      converterConfig
	styles   *StyleRegistry
	builder  flowBuilder
	renderer renderBackend
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithPageSettings, WithStyles,
// WithBreakBefore).
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{page: DefaultPageSettings()},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.styles == nil {
		c.styles = NewStyleRegistry()
	}
	if err := c.cfg.page.Validate(); err != nil {
		return nil, err
	}
	for _, level := range c.cfg.breakBefore {
		if level < 1 || level > 3 {
			return nil, fmt.Errorf("%w: %d (must be 1-3)", ErrInvalidBreakLevel, level)
		}
	}

	c.builder = newDocumentBuilder(c.styles, c.cfg.breakBefore)
	c.renderer = newFpdfRenderer()
	return c, nil
}

// Styles returns the converter's style registry for per-kind overrides.
func (c *Converter) Styles() *StyleRegistry {
	return c.styles
}

// Convert runs the full pipeline on in-memory markdown and returns the
// PDF bytes. The context is checked between pipeline stages. If the
// document does not open with a level-1 heading and input.Title is set,
// a title heading is prepended.
func (c *Converter) Convert(ctx context.Context, input Input) (*Result, error) {
	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}
	page := input.Page
	if page == nil {
		page = c.cfg.page
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blocks := pipeline.Classify(pipeline.SplitLines(input.Markdown))
	if input.Title != "" && !leadsWithTitle(blocks) {
		title := pipeline.Block{Kind: pipeline.BlockHeading, Level: 1, Text: input.Title}
		blocks = append([]pipeline.Block{title}, blocks...)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	flow, err := c.builder.Build(blocks)
	if err != nil {
		return nil, fmt.Errorf("building document flow: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf, err := c.renderer.Render(flow, page)
	if err != nil {
		return nil, err
	}
	return &Result{PDF: pdf}, nil
}

// ConvertFile reads a markdown file and writes the PDF artifact,
// returning the output path. An empty outputPath derives it from
// inputPath with the extension replaced by .pdf. A missing input wraps
// ErrInputNotFound; a failed artifact write wraps ErrRenderFailed.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath string) (string, error) {
	content, err := os.ReadFile(inputPath) // #nosec G304 -- caller-provided path
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return "", fmt.Errorf("reading %s: %w", inputPath, err)
	}

	if outputPath == "" {
		outputPath = fileutil.ReplaceExt(inputPath, ".pdf")
	}

	result, err := c.Convert(ctx, Input{
		Markdown: string(content),
		Title:    fileutil.TitleFromPath(inputPath),
	})
	if err != nil {
		return "", err
	}

	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(outputPath, result.PDF, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return outputPath, nil
}

// ConvertFiles converts each input sequentially, best effort: one file's
// failure is recorded in its FileResult and never aborts the rest.
// Outputs land next to their inputs unless outputDir is set.
func (c *Converter) ConvertFiles(ctx context.Context, inputPaths []string, outputDir string) []FileResult {
	results := make([]FileResult, 0, len(inputPaths))
	for _, in := range inputPaths {
		var out string
		if outputDir != "" {
			out = filepath.Join(outputDir, fileutil.ReplaceExt(filepath.Base(in), ".pdf"))
		}
		written, err := c.ConvertFile(ctx, in, out)
		results = append(results, FileResult{InputPath: in, OutputPath: written, Err: err})
	}
	return results
}

// leadsWithTitle reports whether the document opens with an H1.
func leadsWithTitle(blocks []pipeline.Block) bool {
	return len(blocks) > 0 && blocks[0].Kind == pipeline.BlockHeading && blocks[0].Level == 1
}
