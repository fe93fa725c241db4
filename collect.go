package blogsite

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/alnah/go-blogsite/internal/logfields"
)

// Collection is the outcome of collecting posts.
type Collection struct {
	// Posts holds published posts, most recent first.
	Posts IndexView
	// Skipped holds identifiers with publish = false, in discovery order.
	Skipped []string
}

// postCollector discovers post identifiers and turns them into a sorted IndexView.
type postCollector struct {
	store       ContentStore
	assembler   *postAssembler
	postsDir    string
	metadataExt string
	logger      *slog.Logger
}

// Discover lists the posts directory and returns one identifier per metadata
// file, in listing order. Directories, other extensions and files with an
// empty base name are ignored.
func (c *postCollector) Discover(ctx context.Context) ([]string, error) {
	entries, err := c.store.ListEntries(ctx, c.postsDir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(entries))
	var ids []string
	for _, e := range entries {
		if e.IsDir || e.Extension != c.metadataExt || e.Name == "" {
			continue
		}
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateIdentifier, e.Name)
		}
		seen[e.Name] = struct{}{}
		ids = append(ids, e.Name)
	}
	c.logger.Debug("discovered posts", logfields.Path(c.postsDir), logfields.Count(len(ids)))
	return ids, nil
}

type sortedPost struct {
	post *Post
	key  time.Time
}

// Collect assembles every discovered post, drops unpublished ones and sorts
// the rest by date, newest first. Posts sharing a date keep discovery order.
// Any assembly or date failure aborts the whole collection.
func (c *postCollector) Collect(ctx context.Context) (*Collection, error) {
	ids, err := c.Discover(ctx)
	if err != nil {
		return nil, err
	}

	col := &Collection{}
	items := make([]sortedPost, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		post, err := c.assembler.Assemble(ctx, id)
		if err != nil {
			c.logger.Debug("assembly failed", logfields.Post(id), logfields.Error(err))
			return nil, err
		}
		if !post.ShouldPublish() {
			c.logger.Info("not publishing", logfields.Post(id), logfields.Stage("filter"))
			col.Skipped = append(col.Skipped, id)
			continue
		}
		key, err := post.SortKey()
		if err != nil {
			return nil, postErr(id, StageDate, err)
		}
		items = append(items, sortedPost{post: post, key: key})
	}

	slices.SortStableFunc(items, func(a, b sortedPost) int {
		return b.key.Compare(a.key)
	})

	col.Posts = make(IndexView, len(items))
	for i, it := range items {
		col.Posts[i] = it.post
	}
	return col, nil
}
