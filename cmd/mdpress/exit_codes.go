package main

import (
	"errors"
	"os"

	"github.com/hmarchal/mdpress"
	"github.com/hmarchal/mdpress/internal/config"
)

// Exit codes for the mdpress CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitRender  = 4 // PDF rendering or artifact write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render errors (exit 4)
	if errors.Is(err, mdpress.ErrRenderFailed) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdpress.ErrInputNotFound) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoFilesFound) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, mdpress.ErrEmptyMarkdown) ||
		errors.Is(err, mdpress.ErrInvalidPageSize) ||
		errors.Is(err, mdpress.ErrInvalidOrientation) ||
		errors.Is(err, mdpress.ErrInvalidMargin) ||
		errors.Is(err, mdpress.ErrInvalidBreakLevel) ||
		errors.Is(err, mdpress.ErrUnknownStyleKind) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidBreakName) {
		return ExitUsage
	}

	return ExitGeneral
}
