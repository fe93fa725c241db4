package pipeline

import "strings"

// TagClass pairs a bare tag name with the class list to add to it.
type TagClass struct {
	Tag   string // e.g. "h1"
	Class string // e.g. "title bigtext primary-text"
}

// HTMLAnnotator rewrites converted HTML before it is stored on a post.
type HTMLAnnotator interface {
	Annotate(html string) string
}

// ClassAnnotator replaces every literal bare opening tag (<h1>, <p>) with
// a variant carrying a class attribute. Matching is exact substring, so tags
// that already have attributes are left alone. Rules run once, in order.
type ClassAnnotator struct {
	rules []TagClass
}

// NewClassAnnotator creates a ClassAnnotator. Rules with an empty tag or
// class are dropped.
func NewClassAnnotator(rules ...TagClass) *ClassAnnotator {
	a := &ClassAnnotator{}
	for _, r := range rules {
		if r.Tag == "" || r.Class == "" {
			continue
		}
		a.rules = append(a.rules, r)
	}
	return a
}

// Annotate applies each rule to html.
func (a *ClassAnnotator) Annotate(html string) string {
	for _, r := range a.rules {
		html = strings.ReplaceAll(html, "<"+r.Tag+">", `<`+r.Tag+` class="`+r.Class+`">`)
	}
	return html
}
