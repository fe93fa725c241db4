package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	blogsite "github.com/alnah/go-blogsite"
	"github.com/alnah/go-blogsite/internal/assets"
	"github.com/alnah/go-blogsite/internal/config"
	"github.com/alnah/go-blogsite/internal/dateutil"
	"github.com/alnah/go-blogsite/internal/fileutil"
)

// Exit codes for the blogsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site built
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Posts directory, body file, output or static assets
	ExitContent = 4 // Malformed metadata, date, or Markdown
	ExitRender  = 5 // Layout loading, parsing or execution
)

// exitCodeFor returns the appropriate exit code for an error.
// Content is checked before I/O because a missing metadata file is reported
// as a metadata failure wrapping os.ErrNotExist.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if errors.Is(err, blogsite.ErrMetadataDecode) ||
		errors.Is(err, blogsite.ErrDateParse) ||
		errors.Is(err, blogsite.ErrMarkdown) ||
		errors.Is(err, blogsite.ErrDuplicateIdentifier) ||
		errors.Is(err, blogsite.ErrEmptyIdentifier) {
		return ExitContent
	}

	// Render errors (exit 5)
	if errors.Is(err, blogsite.ErrRender) ||
		errors.Is(err, blogsite.ErrInvalidOutputName) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, blogsite.ErrDirectoryAccess) ||
		errors.Is(err, blogsite.ErrContentRead) ||
		errors.Is(err, blogsite.ErrAssetCopy) ||
		errors.Is(err, blogsite.ErrOutputClean) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrInvalidLayoutName) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, fileutil.ErrExtensionEmpty) ||
		errors.Is(err, fileutil.ErrExtensionNoDot) ||
		errors.Is(err, fileutil.ErrExtensionPathTraversal) ||
		errors.Is(err, flag.ErrHelp) ||
		errors.Is(err, ErrUnexpectedArgs) {
		return ExitUsage
	}

	return ExitGeneral
}
