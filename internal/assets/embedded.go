package assets

import (
	"embed"
	"fmt"
)

//go:embed layouts/*.html
var layouts embed.FS

// EmbeddedLoader loads the built-in layouts.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadLayout loads a built-in layout by name.
func (e *EmbeddedLoader) LoadLayout(name string) (string, error) {
	if err := ValidateLayoutName(name); err != nil {
		return "", err
	}

	content, err := layouts.ReadFile("layouts/" + name + LayoutExt)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrLayoutNotFound, name)
	}
	return string(content), nil
}

var _ LayoutLoader = (*EmbeddedLoader)(nil)
