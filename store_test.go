package blogsite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// ---------------------------------------------------------------------------
// TestDirStore_ListEntries
// ---------------------------------------------------------------------------

func TestDirStore_ListEntries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.toml"), "")
	writeFile(t, filepath.Join(dir, "a.md"), "")
	writeFile(t, filepath.Join(dir, "README"), "")
	writeFile(t, filepath.Join(dir, "archive.tar.gz"), "")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o750); err != nil {
		t.Fatal(err)
	}

	got, err := NewDirStore("", "", nil).ListEntries(context.Background(), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Entry{
		{Name: "README"},
		{Name: "a", Extension: ".md"},
		{Name: "archive.tar", Extension: ".gz"},
		{Name: "b", Extension: ".toml"},
		{Name: "sub", IsDir: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListEntries() = %+v, want %+v", got, want)
	}
}

func TestDirStore_ListEntries_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := NewDirStore("", "", nil).ListEntries(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrDirectoryAccess) {
		t.Errorf("error = %v, want ErrDirectoryAccess", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want it to wrap os.ErrNotExist", err)
	}
}

// ---------------------------------------------------------------------------
// TestDirStore_CopyStaticAssets
// ---------------------------------------------------------------------------

func TestDirStore_CopyStaticAssets(t *testing.T) {
	t.Parallel()

	t.Run("copies tree", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		static := filepath.Join(root, "static")
		out := filepath.Join(root, "public")
		writeFile(t, filepath.Join(static, "style.css"), "body{}")
		writeFile(t, filepath.Join(static, "img", "a.png"), "png")

		if err := NewDirStore(static, out, nil).CopyStaticAssets(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for rel, want := range map[string]string{"style.css": "body{}", "img/a.png": "png"} {
			got, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(rel)))
			if err != nil {
				t.Fatalf("reading %s: %v", rel, err)
			}
			if string(got) != want {
				t.Errorf("%s = %q, want %q", rel, got, want)
			}
		}
	})

	t.Run("missing static dir is skipped", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		err := NewDirStore(filepath.Join(root, "none"), filepath.Join(root, "public"), nil).CopyStaticAssets(context.Background())
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		if err := NewDirStore("", t.TempDir(), nil).CopyStaticAssets(context.Background()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := NewDirStore(t.TempDir(), t.TempDir(), nil).CopyStaticAssets(ctx)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}
