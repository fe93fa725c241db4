package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultHighlightStyle is the chroma style used when highlighting is on
// and no style is configured.
const DefaultHighlightStyle = "github"

// ConverterOption configures a GoldmarkConverter.
type ConverterOption func(*converterConfig)

type converterConfig struct {
	gfm            bool
	highlight      bool
	highlightStyle string
}

// WithGFM enables GitHub Flavored Markdown (tables, strikethrough,
// autolinks, task lists).
func WithGFM(enabled bool) ConverterOption {
	return func(c *converterConfig) { c.gfm = enabled }
}

// WithHighlighting enables chroma syntax highlighting for fenced code blocks.
// An empty style selects DefaultHighlightStyle.
func WithHighlighting(enabled bool, style string) ConverterOption {
	return func(c *converterConfig) {
		c.highlight = enabled
		c.highlightStyle = style
	}
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark.
// With no options it follows plain CommonMark, and raw HTML in the source
// is omitted from the output.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter.
func NewGoldmarkConverter(opts ...ConverterOption) *GoldmarkConverter {
	var cfg converterConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var exts []goldmark.Extender
	if cfg.gfm {
		exts = append(exts, extension.GFM)
	}
	if cfg.highlight {
		style := cfg.highlightStyle
		if style == "" {
			style = DefaultHighlightStyle
		}
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(style),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // stylesheet lives in static assets
			),
		))
	}

	return &GoldmarkConverter{md: goldmark.New(goldmark.WithExtensions(exts...))}
}

// ToHTML converts Markdown content to an HTML fragment.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}
