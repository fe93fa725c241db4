package blogsite

import (
	"log/slog"

	"github.com/alnah/go-blogsite/internal/assets"
	"github.com/alnah/go-blogsite/internal/config"
)

// Option configures a Generator.
type Option func(*Generator)

// Defaults for a Generator created without options. They match the defaults
// of the site configuration file.
const (
	DefaultPostsDir    = config.DefaultPostsDir
	DefaultMetadataExt = config.DefaultMetadataExt
	DefaultBodyExt     = config.DefaultBodyExt
	DefaultOutputDir   = config.DefaultOutputDir
	DefaultOutputExt   = config.DefaultOutputExt
	DefaultStaticDir   = config.DefaultStaticDir
	DefaultPostLayout  = assets.PostLayout
	DefaultIndexLayout = assets.IndexLayout
	DefaultIndexOutput = config.DefaultIndexOutput
	DefaultH1Class     = config.DefaultH1Class
	DefaultPClass      = config.DefaultPClass
)

type generatorConfig struct {
	postsDir       string
	metadataExt    string
	bodyExt        string
	outputDir      string
	outputExt      string
	staticDir      string
	layoutsDir     string
	postLayout     string
	indexLayout    string
	indexOutput    string
	h1Class        string
	pClass         string
	gfm            bool
	highlight      bool
	highlightStyle string
	clean          bool
	site           Site
}

func defaultGeneratorConfig() generatorConfig {
	return generatorConfig{
		postsDir:    DefaultPostsDir,
		metadataExt: DefaultMetadataExt,
		bodyExt:     DefaultBodyExt,
		outputDir:   DefaultOutputDir,
		outputExt:   DefaultOutputExt,
		staticDir:   DefaultStaticDir,
		postLayout:  DefaultPostLayout,
		indexLayout: DefaultIndexLayout,
		indexOutput: DefaultIndexOutput,
		h1Class:     DefaultH1Class,
		pClass:      DefaultPClass,
	}
}

// WithPostsDir sets the directory holding metadata and body files.
func WithPostsDir(dir string) Option {
	return func(g *Generator) { g.cfg.postsDir = dir }
}

// WithExtensions sets the metadata and body file extensions, dot included.
func WithExtensions(metadataExt, bodyExt string) Option {
	return func(g *Generator) {
		g.cfg.metadataExt = metadataExt
		g.cfg.bodyExt = bodyExt
	}
}

// WithOutputDir sets the directory receiving rendered pages.
func WithOutputDir(dir string) Option {
	return func(g *Generator) { g.cfg.outputDir = dir }
}

// WithOutputExtension sets the extension of rendered pages.
func WithOutputExtension(ext string) Option {
	return func(g *Generator) { g.cfg.outputExt = ext }
}

// WithStaticDir sets the directory copied verbatim into the output.
// An empty dir disables copying.
func WithStaticDir(dir string) Option {
	return func(g *Generator) { g.cfg.staticDir = dir }
}

// WithLayoutsDir sets a directory whose layouts override the embedded ones.
func WithLayoutsDir(dir string) Option {
	return func(g *Generator) { g.cfg.layoutsDir = dir }
}

// WithLayouts sets the post and index layout names and the index page name.
func WithLayouts(post, index, indexOutput string) Option {
	return func(g *Generator) {
		g.cfg.postLayout = post
		g.cfg.indexLayout = index
		g.cfg.indexOutput = indexOutput
	}
}

// WithClasses sets the class lists added to <h1> and <p>.
// An empty list leaves that tag untouched.
func WithClasses(h1, p string) Option {
	return func(g *Generator) {
		g.cfg.h1Class = h1
		g.cfg.pClass = p
	}
}

// WithGFM enables GitHub Flavored Markdown extensions.
func WithGFM(enabled bool) Option {
	return func(g *Generator) { g.cfg.gfm = enabled }
}

// WithHighlighting enables class-based syntax highlighting of code blocks.
func WithHighlighting(enabled bool, style string) Option {
	return func(g *Generator) {
		g.cfg.highlight = enabled
		g.cfg.highlightStyle = style
	}
}

// WithCleanOutput removes the output directory before pages are written.
func WithCleanOutput(enabled bool) Option {
	return func(g *Generator) { g.cfg.clean = enabled }
}

// WithSite sets the values exposed to layouts.
func WithSite(site Site) Option {
	return func(g *Generator) { g.cfg.site = site }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithContentStore replaces the filesystem store.
func WithContentStore(store ContentStore) Option {
	return func(g *Generator) { g.store = store }
}

// WithMetadataCodec replaces the TOML codec.
func WithMetadataCodec(codec MetadataCodec) Option {
	return func(g *Generator) { g.codec = codec }
}

// WithMarkdownRenderer replaces the goldmark converter.
func WithMarkdownRenderer(md MarkdownRenderer) Option {
	return func(g *Generator) { g.markdown = md }
}

// WithPageRenderer replaces the template renderer.
func WithPageRenderer(r PageRenderer) Option {
	return func(g *Generator) { g.renderer = r }
}
