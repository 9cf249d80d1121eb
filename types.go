package mdpress

import (
	"fmt"
	"strings"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 1.0
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Input contains conversion parameters.
type Input struct {
	Markdown string        // Markdown content (required)
	Title    string        // Fallback title when the document has no leading H1 (optional)
	Page     *PageSettings // Page settings (optional, nil = converter default)
}

// Result holds the outcome of a conversion.
type Result struct {
	PDF []byte
}

// FileResult holds the outcome of one file in a batch conversion.
type FileResult struct {
	InputPath  string
	OutputPath string
	Err        error
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	page        *PageSettings
	breakBefore []int
}

// WithPageSettings sets the default page settings used when Input.Page is nil.
func WithPageSettings(p *PageSettings) Option {
	return func(c *Converter) {
		c.cfg.page = p
	}
}

// WithStyles replaces the converter's style registry. The caller keeps
// ownership and may override individual styles between conversions, but
// must not mutate styles while a conversion is in flight.
func WithStyles(reg *StyleRegistry) Option {
	return func(c *Converter) {
		c.styles = reg
	}
}

// WithBreakBefore starts a new page before headings of the given levels
// (1-3). No levels means no forced page breaks, the default.
func WithBreakBefore(levels ...int) Option {
	return func(c *Converter) {
		c.cfg.breakBefore = levels
	}
}
