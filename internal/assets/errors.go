package assets

import "errors"

// Sentinel errors for layout operations.
var (
	// ErrLayoutNotFound indicates the requested layout does not exist.
	ErrLayoutNotFound = errors.New("layout not found")

	// ErrInvalidLayoutName indicates the name contains path separators,
	// dots or traversal sequences.
	ErrInvalidLayoutName = errors.New("invalid layout name")

	// ErrInvalidBasePath indicates the configured layouts path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrLayoutRead indicates an I/O error occurred while reading a layout file.
	ErrLayoutRead = errors.New("failed to read layout")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
