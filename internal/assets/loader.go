package assets

// Built-in layout names.
const (
	PostLayout  = "post"
	IndexLayout = "index"
)

// LayoutExt is the file extension of layout files.
const LayoutExt = ".html"

// LayoutLoader defines the contract for loading page layouts.
type LayoutLoader interface {
	// LoadLayout loads a layout by name (without the .html extension).
	// Returns ErrLayoutNotFound if the layout doesn't exist.
	// Returns ErrInvalidLayoutName if the name contains invalid characters.
	LoadLayout(name string) (string, error)
}
