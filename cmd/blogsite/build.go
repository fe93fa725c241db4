package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	flag "github.com/spf13/pflag"

	blogsite "github.com/alnah/go-blogsite"
	"github.com/alnah/go-blogsite/internal/assets"
	"github.com/alnah/go-blogsite/internal/config"
	"github.com/alnah/go-blogsite/internal/fileutil"
	"github.com/alnah/go-blogsite/internal/hints"
	"github.com/alnah/go-blogsite/internal/logfields"
)

// ErrUnexpectedArgs indicates positional arguments were given to a command
// that takes none.
var ErrUnexpectedArgs = errors.New("unexpected arguments")

// defaultConfigName is searched when neither --config nor BLOGSITE_CONFIG is set.
// Unlike an explicit name, a missing default config is not an error.
const defaultConfigName = "blogsite"

// siteSession is what build and check share once flags and config are resolved.
type siteSession struct {
	cfg    *config.Config
	logger *slog.Logger
	gen    *blogsite.Generator
	quiet  bool
}

// setupSite parses flags, resolves configuration and creates the generator.
// It returns an exit code when the command must stop.
func setupSite(name string, args []string, usage func(io.Writer), env *Environment) (*siteSession, int) {
	flags, positional, err := parseSiteFlags(name, args, usage, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return nil, ExitUsage
	}
	if len(positional) > 0 {
		fmt.Fprintf(env.Stderr, "error: %v: %v\n", ErrUnexpectedArgs, positional)
		usage(env.Stderr)
		return nil, ExitUsage
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	setMaxProcs(logger, flags.common.verbose)
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Environ(), env.Stderr)
	}

	cfg, err := resolveConfig(flags, loadEnvConfig(env.Getenv), logger)
	if err != nil {
		reportError(env.Stderr, err, nil)
		return nil, exitCodeFor(err)
	}

	gen, err := newGenerator(cfg, logger)
	if err != nil {
		reportError(env.Stderr, err, cfg)
		return nil, exitCodeFor(err)
	}
	return &siteSession{cfg: cfg, logger: logger, gen: gen, quiet: flags.common.quiet}, ExitSuccess
}

// resolveConfig loads the config file and layers env vars and flags on top.
func resolveConfig(flags *siteCmdFlags, env *envConfig, logger *slog.Logger) (*config.Config, error) {
	name := flags.common.config
	if name == "" {
		name = env.ConfigPath
	}

	var cfg *config.Config
	switch {
	case name != "":
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	default:
		loaded, err := config.LoadConfig(defaultConfigName)
		switch {
		case err == nil:
			cfg = loaded
		case errors.Is(err, config.ErrConfigNotFound):
			logger.Debug("no config file, using defaults")
			cfg = config.DefaultConfig()
		default:
			return nil, err
		}
	}

	applyEnvConfig(env, cfg)
	mergeFlags(&flags.site, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newGenerator maps a resolved config onto generator options.
func newGenerator(cfg *config.Config, logger *slog.Logger) (*blogsite.Generator, error) {
	layoutsDir := cfg.Layouts.Dir
	if !fileutil.DirExists(layoutsDir) {
		logger.Debug("no layouts directory, using embedded layouts", logfields.Path(layoutsDir))
		layoutsDir = ""
	}

	return blogsite.NewGenerator(
		blogsite.WithLogger(logger),
		blogsite.WithSite(blogsite.Site{
			Title:      cfg.Site.Title,
			BaseURL:    cfg.Site.BaseURL,
			DateFormat: cfg.Site.DateFormat,
		}),
		blogsite.WithPostsDir(cfg.Content.PostsDir),
		blogsite.WithExtensions(cfg.Content.MetadataExt, cfg.Content.BodyExt),
		blogsite.WithLayoutsDir(layoutsDir),
		blogsite.WithLayouts(cfg.Layouts.Post, cfg.Layouts.Index, cfg.Layouts.IndexOutput),
		blogsite.WithStaticDir(cfg.Static.Dir),
		blogsite.WithOutputDir(cfg.Output.Dir),
		blogsite.WithOutputExtension(cfg.Output.Extension),
		blogsite.WithCleanOutput(cfg.Output.Clean),
		blogsite.WithClasses(config.EffectiveClass(cfg.Markup.H1Class), config.EffectiveClass(cfg.Markup.PClass)),
		blogsite.WithGFM(cfg.Markup.GFM),
		blogsite.WithHighlighting(cfg.Markup.Highlight, cfg.Markup.HighlightStyle),
	)
}

// runBuildCmd runs the build command.
func runBuildCmd(args []string, env *Environment) int {
	s, code := setupSite("build", args, printBuildUsage, env)
	if s == nil {
		return code
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	res, err := s.gen.Build(ctx)
	if err != nil {
		reportError(env.Stderr, err, s.cfg)
		return exitCodeFor(err)
	}

	if !s.quiet {
		fmt.Fprintf(env.Stdout, "built %d posts (%d skipped) into %s in %s\n",
			len(res.Posts), len(res.Skipped), s.cfg.Output.Dir, res.Duration.Round(time.Millisecond))
	}
	return ExitSuccess
}

// reportError prints err with a hint for common failures.
// cfg may be nil when configuration itself failed.
func reportError(w io.Writer, err error, cfg *config.Config) {
	fmt.Fprintf(w, "error: %v%s\n", err, hintFor(err, cfg))
}

func hintFor(err error, cfg *config.Config) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		var searched []string
		if dir, uerr := os.UserConfigDir(); uerr == nil {
			searched = append(searched, filepath.Join(dir, "go-blogsite", defaultConfigName+".yaml"))
		}
		return hints.ForConfigNotFound(searched)
	case cfg == nil:
		return ""
	case errors.Is(err, blogsite.ErrDirectoryAccess):
		return hints.ForPostsDirectory(cfg.Content.PostsDir)
	case errors.Is(err, blogsite.ErrContentRead) && errors.Is(err, os.ErrNotExist):
		var pe *blogsite.PostError
		if errors.As(err, &pe) {
			return hints.ForMissingBody(pe.ID, cfg.Content.BodyExt)
		}
	case errors.Is(err, blogsite.ErrDateParse):
		return hints.ForDateFormat()
	case errors.Is(err, blogsite.ErrMetadataDecode):
		return hints.ForMetadata(blogsite.RequiredMetadataKeys)
	case errors.Is(err, assets.ErrLayoutNotFound):
		var pe *blogsite.PostError
		if errors.As(err, &pe) {
			return hints.ForLayoutNotFound(cfg.Layouts.Post)
		}
		return hints.ForLayoutNotFound(cfg.Layouts.Index)
	case errors.Is(err, blogsite.ErrRender) && errors.Is(err, os.ErrPermission):
		return hints.ForOutputDirectory()
	}
	return ""
}
