package blogsite

import (
	"errors"
	"fmt"
)

// Sentinel errors for build operations. Every one of them aborts a build.
var (
	ErrDirectoryAccess     = errors.New("cannot access posts directory")
	ErrEmptyIdentifier     = errors.New("empty post identifier")
	ErrDuplicateIdentifier = errors.New("duplicate post identifier")
	ErrMetadataDecode      = errors.New("failed to decode post metadata")
	ErrContentRead         = errors.New("failed to read post content")
	ErrMarkdown            = errors.New("markdown conversion failed")
	ErrDateParse           = errors.New("invalid post date")
	ErrRender              = errors.New("page rendering failed")
	ErrInvalidOutputName   = errors.New("invalid output name")
	ErrAssetCopy           = errors.New("failed to copy static assets")
	ErrOutputClean         = errors.New("failed to clean output directory")
)

// Build stages reported by PostError.
const (
	StageMetadata = "metadata"
	StageContent  = "content"
	StageMarkdown = "markdown"
	StageDate     = "date"
	StageRender   = "render"
)

// PostError reports which post failed and at which stage.
// The wrapped error carries one of the sentinels above.
type PostError struct {
	ID    string
	Stage string
	Err   error
}

func (e *PostError) Error() string {
	return fmt.Sprintf("post %q: %s: %v", e.ID, e.Stage, e.Err)
}

func (e *PostError) Unwrap() error { return e.Err }

func postErr(id, stage string, err error) error {
	return &PostError{ID: id, Stage: stage, Err: err}
}
