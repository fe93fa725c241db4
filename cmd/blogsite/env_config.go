package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-blogsite/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // BLOGSITE_CONFIG
	Title      string // BLOGSITE_TITLE
	BaseURL    string // BLOGSITE_BASE_URL
	PostsDir   string // BLOGSITE_POSTS_DIR
	LayoutsDir string // BLOGSITE_LAYOUTS_DIR
	StaticDir  string // BLOGSITE_STATIC_DIR
	OutputDir  string // BLOGSITE_OUTPUT_DIR
	Clean      *bool  // BLOGSITE_CLEAN; nil when unset or invalid
}

const envPrefix = "BLOGSITE_"

// knownEnvVars lists valid BLOGSITE_* environment variables.
var knownEnvVars = map[string]bool{
	"BLOGSITE_CONFIG":      true,
	"BLOGSITE_TITLE":       true,
	"BLOGSITE_BASE_URL":    true,
	"BLOGSITE_POSTS_DIR":   true,
	"BLOGSITE_LAYOUTS_DIR": true,
	"BLOGSITE_STATIC_DIR":  true,
	"BLOGSITE_OUTPUT_DIR":  true,
	"BLOGSITE_CLEAN":       true,
}

// loadEnvConfig reads every recognized BLOGSITE_* variable through getenv.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("BLOGSITE_CONFIG"),
		Title:      getenv("BLOGSITE_TITLE"),
		BaseURL:    getenv("BLOGSITE_BASE_URL"),
		PostsDir:   getenv("BLOGSITE_POSTS_DIR"),
		LayoutsDir: getenv("BLOGSITE_LAYOUTS_DIR"),
		StaticDir:  getenv("BLOGSITE_STATIC_DIR"),
		OutputDir:  getenv("BLOGSITE_OUTPUT_DIR"),
	}
	if v := getenv("BLOGSITE_CLEAN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Clean = &b
		}
	}
	return cfg
}

// warnUnknownEnvVars reports unrecognized BLOGSITE_* variables, which are
// usually typos.
func warnUnknownEnvVars(environ []string, w io.Writer) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config file values with set variables.
// CLI flags are applied afterwards, giving flags > env > file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setIfNotEmpty(&cfg.Site.Title, env.Title)
	setIfNotEmpty(&cfg.Site.BaseURL, env.BaseURL)
	setIfNotEmpty(&cfg.Content.PostsDir, env.PostsDir)
	setIfNotEmpty(&cfg.Layouts.Dir, env.LayoutsDir)
	setIfNotEmpty(&cfg.Static.Dir, env.StaticDir)
	setIfNotEmpty(&cfg.Output.Dir, env.OutputDir)
	if env.Clean != nil {
		cfg.Output.Clean = *env.Clean
	}
}

func setIfNotEmpty(field *string, value string) {
	if value != "" {
		*field = value
	}
}
