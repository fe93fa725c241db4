package assets

import "errors"

// LayoutResolver combines a custom loader with the embedded layouts.
// Custom layouts win; a layout missing from the custom directory falls back
// to the embedded one. Validation and I/O errors never fall back.
type LayoutResolver struct {
	custom   LayoutLoader // nil if no custom path configured
	embedded LayoutLoader
}

// NewLayoutResolver creates a LayoutResolver.
// An empty customBasePath uses embedded layouts only.
func NewLayoutResolver(customBasePath string) (*LayoutResolver, error) {
	r := &LayoutResolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}
	return r, nil
}

// LoadLayout loads a layout, trying the custom loader first if configured.
func (r *LayoutResolver) LoadLayout(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadLayout(name)
	}

	content, err := r.custom.LoadLayout(name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrLayoutNotFound) {
		return "", err
	}
	return r.embedded.LoadLayout(name)
}

var _ LayoutLoader = (*LayoutResolver)(nil)
