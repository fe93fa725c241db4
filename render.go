package blogsite

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alnah/go-blogsite/internal/dateutil"
	"github.com/alnah/go-blogsite/internal/fileutil"
	"github.com/alnah/go-blogsite/internal/logfields"
)

// PageRenderer renders a named layout with data into an output page.
type PageRenderer interface {
	// Generate writes the page named output. Fails with ErrRender or
	// ErrInvalidOutputName.
	Generate(ctx context.Context, layout, output string, data any) error
}

// LayoutLoader returns the source of a layout by name.
type LayoutLoader interface {
	LoadLayout(name string) (string, error)
}

// Site holds site-wide values exposed to layouts through the site function.
type Site struct {
	Title   string
	BaseURL string
	// DateFormat is a dateutil format or preset; empty selects the default.
	DateFormat string
}

// TemplateRenderer renders html/template layouts into files under an output
// directory. Parsed layouts are cached. Not safe for concurrent use.
type TemplateRenderer struct {
	loader    LayoutLoader
	outputDir string
	ext       string
	site      Site
	funcs     template.FuncMap
	cache     map[string]*template.Template
	logger    *slog.Logger
}

// NewTemplateRenderer creates a TemplateRenderer writing <outputDir>/<name><ext>.
func NewTemplateRenderer(loader LayoutLoader, outputDir, ext string, site Site, logger *slog.Logger) *TemplateRenderer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &TemplateRenderer{
		loader:    loader,
		outputDir: outputDir,
		ext:       ext,
		site:      site,
		cache:     make(map[string]*template.Template),
		logger:    logger,
	}
	r.funcs = template.FuncMap{
		"site":  func() Site { return r.site },
		"date":  r.formatDate,
		"link":  r.link,
		"asset": r.asset,
	}
	return r
}

// Generate renders layout with data and writes the result as output.
func (r *TemplateRenderer) Generate(ctx context.Context, layout, output string, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateOutputName(output); err != nil {
		return err
	}

	tmpl, err := r.lookup(layout)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("%w: executing layout %q: %w", ErrRender, layout, err)
	}

	path := filepath.Join(r.outputDir, output+r.ext)
	if err := fileutil.WriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrRender, path, err)
	}
	r.logger.Info("wrote page", logfields.Template(layout), logfields.Output(path))
	return nil
}

func (r *TemplateRenderer) lookup(layout string) (*template.Template, error) {
	if tmpl, ok := r.cache[layout]; ok {
		return tmpl, nil
	}
	src, err := r.loader.LoadLayout(layout)
	if err != nil {
		return nil, fmt.Errorf("%w: loading layout %q: %w", ErrRender, layout, err)
	}
	tmpl, err := template.New(layout).Funcs(r.funcs).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing layout %q: %w", ErrRender, layout, err)
	}
	r.cache[layout] = tmpl
	return tmpl, nil
}

func (r *TemplateRenderer) formatDate(raw string) (string, error) {
	t, err := NormalizeDate(raw)
	if err != nil {
		return "", err
	}
	return dateutil.Format(t, r.site.DateFormat)
}

// link returns the URL of the page named name.
func (r *TemplateRenderer) link(name string) string {
	return r.asset(name + r.ext)
}

// asset returns the URL of a file copied from the static directory.
func (r *TemplateRenderer) asset(path string) string {
	path = strings.TrimLeft(path, "/")
	if r.site.BaseURL == "" {
		return path
	}
	return strings.TrimRight(r.site.BaseURL, "/") + "/" + path
}

// validateOutputName rejects names that would escape the output directory.
func validateOutputName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidOutputName, name)
	case strings.ContainsAny(name, `/\`+"\x00"):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidOutputName, name)
	}
	return nil
}
