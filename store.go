package blogsite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-blogsite/internal/fileutil"
	"github.com/alnah/go-blogsite/internal/logfields"
)

// Entry is one item of a directory listing.
type Entry struct {
	// Name is the base name without its extension.
	Name string
	// Extension includes the leading dot, or is empty.
	Extension string
	IsDir     bool
}

// ContentStore gives the build read access to post sources and copies the
// static assets into the output tree.
type ContentStore interface {
	// ListEntries lists dir. Fails with ErrDirectoryAccess.
	ListEntries(ctx context.Context, dir string) ([]Entry, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// CopyStaticAssets copies static assets into the output. Fails with ErrAssetCopy.
	CopyStaticAssets(ctx context.Context) error
}

// DirStore is a ContentStore backed by the local filesystem.
type DirStore struct {
	staticDir string
	outputDir string
	logger    *slog.Logger
}

// NewDirStore creates a DirStore copying staticDir into outputDir.
// An empty staticDir disables asset copying.
func NewDirStore(staticDir, outputDir string, logger *slog.Logger) *DirStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DirStore{staticDir: staticDir, outputDir: outputDir, logger: logger}
}

// ListEntries returns the entries of dir in lexical order.
func (s *DirStore) ListEntries(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryAccess, dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		ext := filepath.Ext(name)
		entries = append(entries, Entry{
			Name:      strings.TrimSuffix(name, ext),
			Extension: ext,
			IsDir:     de.IsDir(),
		})
	}
	return entries, nil
}

// ReadFile reads path from disk.
func (s *DirStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path) // #nosec G304 -- path is built from the configured posts directory
}

// CopyStaticAssets mirrors the static directory into the output directory.
// A missing static directory is not an error.
func (s *DirStore) CopyStaticAssets(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.staticDir == "" {
		return nil
	}
	if !fileutil.DirExists(s.staticDir) {
		s.logger.Debug("no static directory, skipping asset copy", logfields.Path(s.staticDir))
		return nil
	}
	if err := fileutil.CopyDir(s.staticDir, s.outputDir); err != nil {
		return fmt.Errorf("%w: %w", ErrAssetCopy, err)
	}
	s.logger.Info("copied static assets", logfields.Path(s.staticDir), logfields.Output(s.outputDir))
	return nil
}
