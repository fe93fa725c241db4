package hints

import (
	"strings"
	"testing"
)

func TestHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"config not found generic", ForConfigNotFound(nil), "--config"},
		{
			"config not found suggests user dir",
			ForConfigNotFound([]string{"blog.yaml", "/home/u/.config/go-blogsite/blog.yaml"}),
			"create /home/u/.config/go-blogsite/blog.yaml",
		},
		{"posts directory", ForPostsDirectory("data/posts"), "create data/posts"},
		{"missing body", ForMissingBody("hello", ".md"), "hello.md"},
		{"date format", ForDateFormat(), "2021-06-15"},
		{"metadata", ForMetadata([]string{"title", "time"}), "title, time"},
		{"layout", ForLayoutNotFound("archive"), "archive.html"},
		{"output dir", ForOutputDirectory(), "writable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.got, "\n  hint: ") {
				t.Errorf("hint %q missing prefix", tt.got)
			}
			if !strings.Contains(tt.got, tt.want) {
				t.Errorf("hint %q should contain %q", tt.got, tt.want)
			}
		})
	}
}

func TestForMetadata_Empty(t *testing.T) {
	t.Parallel()

	if got := ForMetadata(nil); got != "" {
		t.Errorf("ForMetadata(nil) = %q, want empty", got)
	}
}
