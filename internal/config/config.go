package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-blogsite/internal/assets"
	"github.com/alnah/go-blogsite/internal/codec"
	"github.com/alnah/go-blogsite/internal/dateutil"
	"github.com/alnah/go-blogsite/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength = 200
	MaxURLLength   = 2048 // Browser limit
	MaxPathLength  = 4096
	MaxClassLength = 200
	MaxStyleLength = 50
)

// DisableClass turns off annotation for a tag when used as its class list.
const DisableClass = "none"

// Defaults matching the conventional site layout.
const (
	DefaultSiteTitle   = "Blog"
	DefaultPostsDir    = "data/posts"
	DefaultMetadataExt = ".toml"
	DefaultBodyExt     = ".md"
	DefaultLayoutsDir  = "templates"
	DefaultIndexOutput = "index"
	DefaultStaticDir   = "static"
	DefaultOutputDir   = "public"
	DefaultOutputExt   = ".html"
	DefaultH1Class     = "title bigtext primary-text"
	DefaultPClass      = "text"
)

// Config holds all configuration for a site build.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Layouts LayoutsConfig `yaml:"layouts"`
	Static  StaticConfig  `yaml:"static"`
	Output  OutputConfig  `yaml:"output"`
	Markup  MarkupConfig  `yaml:"markup"`
}

// SiteConfig holds values exposed to layouts.
type SiteConfig struct {
	Title      string `yaml:"title"`
	BaseURL    string `yaml:"baseURL"`    // Prefix for links; empty = relative links
	DateFormat string `yaml:"dateFormat"` // Display format or preset (iso, long, ...)
}

// ContentConfig locates post sources.
type ContentConfig struct {
	PostsDir    string `yaml:"postsDir"`
	MetadataExt string `yaml:"metadataExt"` // e.g. ".toml"
	BodyExt     string `yaml:"bodyExt"`     // e.g. ".md"
}

// LayoutsConfig selects page layouts.
type LayoutsConfig struct {
	Dir         string `yaml:"dir"`         // Custom layouts; missing dir = embedded only
	Post        string `yaml:"post"`        // Layout for each post
	Index       string `yaml:"index"`       // Layout for the listing page
	IndexOutput string `yaml:"indexOutput"` // Output name of the listing page
}

// StaticConfig locates static assets copied verbatim into the output.
type StaticConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig defines where pages are written.
type OutputConfig struct {
	Dir       string `yaml:"dir"`
	Extension string `yaml:"extension"`
	Clean     bool   `yaml:"clean"` // Remove Dir before building
}

// MarkupConfig tunes the Markdown transform.
type MarkupConfig struct {
	H1Class        string `yaml:"h1Class"` // "none" disables
	PClass         string `yaml:"pClass"`  // "none" disables
	GFM            bool   `yaml:"gfm"`
	Highlight      bool   `yaml:"highlight"`
	HighlightStyle string `yaml:"highlightStyle"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills every empty field with its default.
func (c *Config) ApplyDefaults() {
	setDefault(&c.Site.Title, DefaultSiteTitle)
	setDefault(&c.Site.DateFormat, dateutil.DefaultDateFormat)
	setDefault(&c.Content.PostsDir, DefaultPostsDir)
	setDefault(&c.Content.MetadataExt, DefaultMetadataExt)
	setDefault(&c.Content.BodyExt, DefaultBodyExt)
	setDefault(&c.Layouts.Dir, DefaultLayoutsDir)
	setDefault(&c.Layouts.Post, assets.PostLayout)
	setDefault(&c.Layouts.Index, assets.IndexLayout)
	setDefault(&c.Layouts.IndexOutput, DefaultIndexOutput)
	setDefault(&c.Static.Dir, DefaultStaticDir)
	setDefault(&c.Output.Dir, DefaultOutputDir)
	setDefault(&c.Output.Extension, DefaultOutputExt)
	setDefault(&c.Markup.H1Class, DefaultH1Class)
	setDefault(&c.Markup.PClass, DefaultPClass)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// EffectiveClass returns the class list for annotation, or "" when disabled.
func EffectiveClass(class string) string {
	if strings.EqualFold(class, DisableClass) {
		return ""
	}
	return class
}

// Validate checks values that would otherwise fail late in a build.
// Called automatically by LoadConfig; callers that build Config by hand
// should call ApplyDefaults first.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"site.title", c.Site.Title, MaxTitleLength},
		{"site.baseURL", c.Site.BaseURL, MaxURLLength},
		{"content.postsDir", c.Content.PostsDir, MaxPathLength},
		{"layouts.dir", c.Layouts.Dir, MaxPathLength},
		{"static.dir", c.Static.Dir, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"markup.h1Class", c.Markup.H1Class, MaxClassLength},
		{"markup.pClass", c.Markup.PClass, MaxClassLength},
		{"markup.highlightStyle", c.Markup.HighlightStyle, MaxStyleLength},
	}
	for _, chk := range checks {
		if err := validateFieldLength(chk.name, chk.value, chk.max); err != nil {
			return err
		}
	}

	if err := fileutil.ValidateExtension(c.Content.MetadataExt); err != nil {
		return fmt.Errorf("%w: content.metadataExt: %v", ErrInvalidField, err)
	}
	if err := fileutil.ValidateExtension(c.Content.BodyExt); err != nil {
		return fmt.Errorf("%w: content.bodyExt: %v", ErrInvalidField, err)
	}
	if c.Content.MetadataExt == c.Content.BodyExt {
		return fmt.Errorf("%w: content.metadataExt and content.bodyExt must differ (both %q)", ErrInvalidField, c.Content.BodyExt)
	}
	if err := fileutil.ValidateExtension(c.Output.Extension); err != nil {
		return fmt.Errorf("%w: output.extension: %v", ErrInvalidField, err)
	}

	if err := assets.ValidateLayoutName(c.Layouts.Post); err != nil {
		return fmt.Errorf("%w: layouts.post: %v", ErrInvalidField, err)
	}
	if err := assets.ValidateLayoutName(c.Layouts.Index); err != nil {
		return fmt.Errorf("%w: layouts.index: %v", ErrInvalidField, err)
	}
	if c.Layouts.IndexOutput == "" || fileutil.IsFilePath(c.Layouts.IndexOutput) || strings.Contains(c.Layouts.IndexOutput, "..") {
		return fmt.Errorf("%w: layouts.indexOutput: %q must be a plain name", ErrInvalidField, c.Layouts.IndexOutput)
	}

	if err := dateutil.Validate(c.Site.DateFormat); err != nil {
		return fmt.Errorf("%w: site.dateFormat: %v", ErrInvalidField, err)
	}

	return c.validateDirs()
}

// validateDirs checks how the output directory sits relative to the sources.
// Static assets are copied into the output, so the output must not be inside
// them. With output.clean set, no source may be inside the output either.
func (c *Config) validateDirs() error {
	out := filepath.Clean(c.Output.Dir)
	if out == filepath.Clean(c.Content.PostsDir) {
		return fmt.Errorf("%w: output.dir must not be the posts directory", ErrInvalidField)
	}
	if c.Static.Dir != "" {
		inside, err := fileutil.IsWithin(c.Static.Dir, c.Output.Dir)
		if err != nil {
			return fmt.Errorf("%w: output.dir: %v", ErrInvalidField, err)
		}
		if inside {
			return fmt.Errorf("%w: output.dir %q must not be inside static.dir %q", ErrInvalidField, c.Output.Dir, c.Static.Dir)
		}
	}

	if !c.Output.Clean {
		return nil
	}
	if out == "." || out == string(filepath.Separator) {
		return fmt.Errorf("%w: output.clean refuses to remove %q", ErrInvalidField, c.Output.Dir)
	}
	sources := []struct {
		name string
		dir  string
	}{
		{"content.postsDir", c.Content.PostsDir},
		{"static.dir", c.Static.Dir},
		{"layouts.dir", c.Layouts.Dir},
	}
	for _, src := range sources {
		if src.dir == "" {
			continue
		}
		inside, err := fileutil.IsWithin(c.Output.Dir, src.dir)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidField, src.name, err)
		}
		if inside {
			return fmt.Errorf("%w: output.clean refuses to remove %q, it contains %s %q", ErrInvalidField, c.Output.Dir, src.name, src.dir)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if !isBlankYAML(data) {
		if err := codec.UnmarshalYAMLStrict(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// isBlankYAML reports whether data holds nothing but whitespace and comments.
func isBlankYAML(data []byte) bool {
	for line := range strings.Lines(string(data)) {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			return false
		}
	}
	return true
}

// resolveConfigPath searches for a config file by name.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-blogsite/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		local := name + ext
		if fileutil.FileExists(local) {
			return local, nil
		}
		tried = append(tried, local)
	}

	if userDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			p := filepath.Join(userDir, "go-blogsite", name+ext)
			if fileutil.FileExists(p) {
				return p, nil
			}
			tried = append(tried, p)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
