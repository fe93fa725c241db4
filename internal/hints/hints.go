// Package hints provides actionable error hints for common build failures.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/blog.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-blogsite") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForPostsDirectory returns a hint for a missing posts directory.
func ForPostsDirectory(dir string) string {
	return format("create " + dir + " or set content.postsDir / --posts")
}

// ForMissingBody returns a hint for a post whose body file is missing.
func ForMissingBody(id, bodyExt string) string {
	return format("every metadata file needs a body file named " + id + bodyExt)
}

// ForDateFormat returns a hint for an unparseable post time.
func ForDateFormat() string {
	return format(`post time must be a bare date like "2021-06-15" (no time of day or offset)`)
}

// ForMetadata returns a hint for metadata decode failures.
func ForMetadata(required []string) string {
	if len(required) == 0 {
		return ""
	}
	return format("required keys: " + strings.Join(required, ", "))
}

// ForLayoutNotFound returns hints for a missing layout.
func ForLayoutNotFound(name string) string {
	return format("add " + name + ".html to the layouts directory or use a built-in layout (post, index)")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
