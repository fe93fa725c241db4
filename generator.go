package blogsite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-blogsite/internal/assets"
	"github.com/alnah/go-blogsite/internal/dateutil"
	"github.com/alnah/go-blogsite/internal/fileutil"
	"github.com/alnah/go-blogsite/internal/logfields"
	"github.com/alnah/go-blogsite/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ ContentStore     = (*DirStore)(nil)
	_ MetadataCodec    = (*TOMLCodec)(nil)
	_ MarkdownRenderer = (*pipeline.GoldmarkConverter)(nil)
	_ PageRenderer     = (*TemplateRenderer)(nil)
	_ LayoutLoader     = (*assets.LayoutResolver)(nil)
)

// Result summarizes a successful build.
type Result struct {
	// Posts lists the rendered posts in index order.
	Posts IndexView
	// Skipped lists identifiers of posts with publish = false.
	Skipped []string
	// Pages lists output names in the order they were written.
	Pages    []string
	Duration time.Duration
}

// Generator builds a site from a posts directory.
// Create with NewGenerator and run with Build.
type Generator struct {
	cfg       generatorConfig
	logger    *slog.Logger
	store     ContentStore
	codec     MetadataCodec
	markdown  MarkdownRenderer
	renderer  PageRenderer
	collector *postCollector
}

// NewGenerator creates a Generator. Options are validated here so that
// configuration mistakes surface before any file is touched.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{cfg: defaultGeneratorConfig()}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.New(slog.DiscardHandler)
	}
	if err := g.cfg.validate(); err != nil {
		return nil, err
	}

	if g.store == nil {
		g.store = NewDirStore(g.cfg.staticDir, g.cfg.outputDir, g.logger)
	}
	if g.codec == nil {
		g.codec = &TOMLCodec{Logger: g.logger}
	}
	if g.markdown == nil {
		g.markdown = pipeline.NewGoldmarkConverter(
			pipeline.WithGFM(g.cfg.gfm),
			pipeline.WithHighlighting(g.cfg.highlight, g.cfg.highlightStyle),
		)
	}
	if g.renderer == nil {
		resolver, err := assets.NewLayoutResolver(g.cfg.layoutsDir)
		if err != nil {
			return nil, fmt.Errorf("layouts: %w", err)
		}
		g.renderer = NewTemplateRenderer(resolver, g.cfg.outputDir, g.cfg.outputExt, g.cfg.site, g.logger)
	}

	asm := &postAssembler{
		store:        g.store,
		codec:        g.codec,
		preprocessor: &pipeline.SourcePreprocessor{},
		markdown:     g.markdown,
		annotator: pipeline.NewClassAnnotator(
			pipeline.TagClass{Tag: "h1", Class: g.cfg.h1Class},
			pipeline.TagClass{Tag: "p", Class: g.cfg.pClass},
		),
		postsDir:    g.cfg.postsDir,
		metadataExt: g.cfg.metadataExt,
		bodyExt:     g.cfg.bodyExt,
		logger:      g.logger,
	}
	g.collector = &postCollector{
		store:       g.store,
		assembler:   asm,
		postsDir:    g.cfg.postsDir,
		metadataExt: g.cfg.metadataExt,
		logger:      g.logger,
	}
	return g, nil
}

func (c *generatorConfig) validate() error {
	if c.postsDir == "" {
		return fmt.Errorf("%w: empty posts directory", ErrDirectoryAccess)
	}
	for _, ext := range []string{c.metadataExt, c.bodyExt, c.outputExt} {
		if err := fileutil.ValidateExtension(ext); err != nil {
			return err
		}
	}
	if c.metadataExt == c.bodyExt {
		return fmt.Errorf("metadata and body extensions must differ: %q", c.metadataExt)
	}
	if err := validateOutputName(c.indexOutput); err != nil {
		return err
	}
	for _, name := range []string{c.postLayout, c.indexLayout} {
		if err := assets.ValidateLayoutName(name); err != nil {
			return err
		}
	}
	if err := dateutil.Validate(c.site.DateFormat); err != nil {
		return fmt.Errorf("site date format: %w", err)
	}
	if c.staticDir != "" {
		inside, err := fileutil.IsWithin(c.staticDir, c.outputDir)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrAssetCopy, err)
		}
		if inside {
			return fmt.Errorf("%w: output directory %q is inside static directory %q", ErrAssetCopy, c.outputDir, c.staticDir)
		}
	}
	if c.clean {
		return checkCleanable(c.outputDir, c.postsDir, c.staticDir, c.layoutsDir)
	}
	return nil
}

// Collect discovers, assembles, filters and sorts posts without writing.
func (g *Generator) Collect(ctx context.Context) (*Collection, error) {
	return g.collector.Collect(ctx)
}

// Build runs the whole pipeline: collect, render every post, render the
// index and copy static assets. The first error aborts the build. Every post
// is assembled and dated before the first page is written.
func (g *Generator) Build(ctx context.Context) (*Result, error) {
	start := time.Now()

	col, err := g.collector.Collect(ctx)
	if err != nil {
		return nil, err
	}

	if g.cfg.clean {
		if err := g.cleanOutput(); err != nil {
			return nil, err
		}
	}

	res := &Result{Posts: col.Posts, Skipped: col.Skipped}
	for _, post := range col.Posts {
		if err := g.renderer.Generate(ctx, g.cfg.postLayout, post.ID, post); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, postErr(post.ID, StageRender, err)
		}
		res.Pages = append(res.Pages, post.ID)
	}

	if err := g.renderer.Generate(ctx, g.cfg.indexLayout, g.cfg.indexOutput, col.Posts); err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}
	res.Pages = append(res.Pages, g.cfg.indexOutput)

	if err := g.store.CopyStaticAssets(ctx); err != nil {
		return nil, err
	}

	res.Duration = time.Since(start)
	g.logger.Info("build complete",
		logfields.Count(len(res.Posts)),
		slog.Int("skipped", len(res.Skipped)),
		logfields.DurationMS(res.Duration.Milliseconds()))
	return res, nil
}

func (g *Generator) cleanOutput() error {
	if err := os.RemoveAll(g.cfg.outputDir); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrOutputClean, g.cfg.outputDir, err)
	}
	g.logger.Debug("cleaned output directory", logfields.Path(g.cfg.outputDir))
	return nil
}

// checkCleanable refuses to clean dir when removing it would delete the
// working directory, the home directory or any of the source directories.
// Empty sources are ignored.
func checkCleanable(dir string, sources ...string) error {
	cleaned := filepath.Clean(dir)
	if dir == "" || cleaned == "." || cleaned == string(filepath.Separator) {
		return fmt.Errorf("%w: refusing to clean %q", ErrOutputClean, dir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		if inside, _ := fileutil.IsWithin(cleaned, home); inside {
			return fmt.Errorf("%w: refusing to clean %q, it contains the home directory", ErrOutputClean, dir)
		}
	}
	for _, src := range sources {
		if src == "" {
			continue
		}
		inside, err := fileutil.IsWithin(cleaned, src)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOutputClean, err)
		}
		if inside {
			return fmt.Errorf("%w: refusing to clean %q, it contains %q", ErrOutputClean, dir, src)
		}
	}
	return nil
}
