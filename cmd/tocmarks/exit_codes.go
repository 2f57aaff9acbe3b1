package main

import (
	"errors"
	"os"

	tocmarks "github.com/alnah/go-tocmarks"
	"github.com/alnah/go-tocmarks/internal/assets"
	"github.com/alnah/go-tocmarks/internal/config"
	"github.com/alnah/go-tocmarks/internal/yamlutil"
)

// Exit codes for the tocmarks CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Bookmark file written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, patterns or template
	ExitIO      = 3 // Input not readable, output not writable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, yamlutil.ErrInputTooLarge) ||
		errors.Is(err, tocmarks.ErrInvalidPattern) ||
		errors.Is(err, tocmarks.ErrInvalidMarker) ||
		errors.Is(err, tocmarks.ErrTemplateParse) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) {
		return ExitUsage
	}

	return ExitGeneral
}
