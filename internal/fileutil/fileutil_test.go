package fileutil_test

// Notes:
// - CopyFile close error branch: not tested because forcing a close failure
//   on a regular file is platform-specific.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-blogsite/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{name: "toml", extension: ".toml"},
		{name: "markdown", extension: ".md"},
		{name: "empty", extension: "", wantErr: fileutil.ErrExtensionEmpty},
		{name: "missing dot", extension: "toml", wantErr: fileutil.ErrExtensionNoDot},
		{name: "dot only", extension: ".", wantErr: fileutil.ErrExtensionNoDot},
		{name: "forward slash", extension: "../etc/passwd", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "backslash", extension: ".a\\b", wantErr: fileutil.ErrExtensionPathTraversal},
		{name: "null byte", extension: ".md\x00", wantErr: fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFileExists / TestDirExists - Path probes
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Error("FileExists(file) = false, want true")
	}
	if fileutil.FileExists(dir) {
		t.Error("FileExists(dir) = true, want false")
	}
	if fileutil.FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true, want false")
	}
	if !fileutil.DirExists(dir) {
		t.Error("DirExists(dir) = false, want true")
	}
	if fileutil.DirExists(file) {
		t.Error("DirExists(file) = true, want false")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"blog":           false,
		"my-site":        false,
		"./blog.yaml":    true,
		"/etc/blog.yaml": true,
		"C:\\blog.yaml":  true,
		"configs/blog":   true,
	}
	for in, want := range tests {
		if got := fileutil.IsFilePath(in); got != want {
			t.Errorf("IsFilePath(%q) = %v, want %v", in, got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestIsWithin - Directory containment
// ---------------------------------------------------------------------------

func TestIsWithin(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	tests := []struct {
		name string
		dir  string
		path string
		want bool
	}{
		{"same directory", base, base, true},
		{"child", base, filepath.Join(base, "posts"), true},
		{"grandchild", base, filepath.Join(base, "a", "b"), true},
		{"unclean spelling", base, filepath.Join(base, "a", "..", "b"), true},
		{"sibling", filepath.Join(base, "public"), filepath.Join(base, "static"), false},
		{"parent", filepath.Join(base, "public"), base, false},
		{"dot-prefixed sibling", filepath.Join(base, "out"), filepath.Join(base, "out..x"), false},
		{"name prefix only", filepath.Join(base, "pub"), filepath.Join(base, "public"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.IsWithin(tt.dir, tt.path)
			if err != nil {
				t.Fatalf("IsWithin() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsWithin(%q, %q) = %v, want %v", tt.dir, tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteFile - Writes with parent creation
// ---------------------------------------------------------------------------

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "deeper", "index.html")
	if err := fileutil.WriteFile(path, []byte("<p>hi</p>")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<p>hi</p>" {
		t.Errorf("content = %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestCopyDir - Recursive static asset copy
// ---------------------------------------------------------------------------

func TestCopyDir(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "public")

	mustWrite(t, filepath.Join(src, "style.css"), "body{}")
	mustWrite(t, filepath.Join(src, "img", "logo.svg"), "<svg/>")
	if err := os.MkdirAll(filepath.Join(src, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := fileutil.CopyDir(src, dst); err != nil {
		t.Fatalf("CopyDir() error = %v", err)
	}

	for rel, want := range map[string]string{
		"style.css":    "body{}",
		"img/logo.svg": "<svg/>",
	} {
		got, err := os.ReadFile(filepath.Join(dst, filepath.FromSlash(rel)))
		if err != nil {
			t.Errorf("reading %s: %v", rel, err)
			continue
		}
		if string(got) != want {
			t.Errorf("%s = %q, want %q", rel, got, want)
		}
	}
	if !fileutil.DirExists(filepath.Join(dst, "empty")) {
		t.Error("empty directory not recreated")
	}
}

func TestCopyDir_MissingSource(t *testing.T) {
	t.Parallel()

	err := fileutil.CopyDir(filepath.Join(t.TempDir(), "nope"), t.TempDir())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("CopyDir() error = %v, want os.ErrNotExist", err)
	}
}

func TestCopyDir_DestinationInsideSource(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := filepath.Join(src, "public")
	mustWrite(t, filepath.Join(src, "style.css"), "body{}")
	mustWrite(t, filepath.Join(dst, "index.html"), "<html/>")

	if err := fileutil.CopyDir(src, dst); err != nil {
		t.Fatalf("CopyDir() error = %v", err)
	}

	if got, err := os.ReadFile(filepath.Join(dst, "style.css")); err != nil || string(got) != "body{}" {
		t.Errorf("style.css = %q, %v; want %q", got, err, "body{}")
	}
	if fileutil.DirExists(filepath.Join(dst, "public")) {
		t.Error("destination was copied into itself")
	}
}

func TestCopyFile_Overwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	mustWrite(t, src, "new")
	mustWrite(t, dst, "old content that is longer")

	if err := fileutil.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}
	got, _ := os.ReadFile(dst)
	if string(got) != "new" {
		t.Errorf("dst = %q, want %q", got, "new")
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
