package blogsite

import (
	"html/template"
	"time"
)

// RequiredMetadataKeys lists the metadata keys every post must define.
var RequiredMetadataKeys = []string{"title", "url", "time", "image", "image_contribution", "intro"}

// Post is one blog entry assembled from a metadata file and a Markdown body
// sharing the same base name.
type Post struct {
	// ID is the shared base name of the post's files and its output page name.
	ID                string `toml:"-"`
	Title             string `toml:"title"`
	URL               string `toml:"url"`
	Time              string `toml:"time"` // YYYY-MM-DD
	Image             string `toml:"image"`
	ImageContribution string `toml:"image_contribution"`
	Intro             string `toml:"intro"`

	// Content is nil until the body has been converted and annotated.
	Content *string `toml:"-"`

	// Publish is nil when the metadata does not set it; nil means visible.
	Publish *bool `toml:"publish"`
}

// ShouldPublish reports whether the post is visible. Only an explicit
// publish = false hides a post.
func (p *Post) ShouldPublish() bool {
	return p.Publish == nil || *p.Publish
}

// SortKey returns the post date as a comparable timestamp.
func (p *Post) SortKey() (time.Time, error) {
	return NormalizeDate(p.Time)
}

// ContentHTML returns the converted body for use in layouts.
func (p *Post) ContentHTML() template.HTML {
	if p.Content == nil {
		return ""
	}
	return template.HTML(*p.Content) // #nosec G203 -- produced by goldmark without raw HTML passthrough
}

// IndexView is the ordered list of published posts, most recent first.
type IndexView []*Post

// IDs returns the post identifiers in display order.
func (v IndexView) IDs() []string {
	ids := make([]string, len(v))
	for i, p := range v {
		ids[i] = p.ID
	}
	return ids
}
