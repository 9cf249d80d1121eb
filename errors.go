package mdpress

import "errors"

// Sentinel errors for library operations.
//
// ErrInputNotFound and ErrRenderFailed are deliberately distinct so batch
// callers can tell "bad input" from "bad output location" with errors.Is.
var (
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrInputNotFound    = errors.New("input file not found")
	ErrUnknownStyleKind = errors.New("unknown style kind")
	ErrRenderFailed     = errors.New("PDF rendering failed")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Converter option validation errors.
	ErrInvalidBreakLevel = errors.New("invalid page-break heading level")
)
