package main

import (
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-blogsite/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds path overrides. Empty strings mean "not given".
type siteFlags struct {
	posts    string
	output   string
	layouts  string
	static   string
	clean    bool
	cleanSet bool
}

// siteCmdFlags holds all flags for build and check.
type siteCmdFlags struct {
	common commonFlags
	site   siteFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-post details")
}

// addSiteFlags adds path override flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.posts, "posts", "", "posts directory")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.layouts, "layouts", "", "custom layouts directory")
	fs.StringVar(&f.static, "static", "", "static assets directory")
	fs.BoolVar(&f.clean, "clean", false, "remove the output directory before building")
}

// parseSiteFlags parses flags for the named command and returns positional args.
func parseSiteFlags(name string, args []string, usage func(io.Writer), stderr io.Writer) (*siteCmdFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &siteCmdFlags{}

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)

	fs.Usage = func() { usage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.site.cleanSet = fs.Changed("clean")

	return f, fs.Args(), nil
}

// mergeFlags applies explicitly given flags on top of cfg.
func mergeFlags(f *siteFlags, cfg *config.Config) {
	setIfNotEmpty(&cfg.Content.PostsDir, f.posts)
	setIfNotEmpty(&cfg.Output.Dir, f.output)
	setIfNotEmpty(&cfg.Layouts.Dir, f.layouts)
	setIfNotEmpty(&cfg.Static.Dir, f.static)
	if f.cleanSet {
		cfg.Output.Clean = f.clean
	}
}
