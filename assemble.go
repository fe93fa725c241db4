package blogsite

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/alnah/go-blogsite/internal/logfields"
	"github.com/alnah/go-blogsite/internal/pipeline"
)

// MarkdownRenderer converts a Markdown body into an HTML fragment.
type MarkdownRenderer interface {
	ToHTML(ctx context.Context, md string) (string, error)
}

// postAssembler builds a complete Post from its metadata and body files.
type postAssembler struct {
	store        ContentStore
	codec        MetadataCodec
	preprocessor pipeline.MarkdownPreprocessor
	markdown     MarkdownRenderer
	annotator    pipeline.HTMLAnnotator
	postsDir     string
	metadataExt  string
	bodyExt      string
	logger       *slog.Logger
}

// Assemble reads, decodes and converts the post id.
//
// The metadata file is read first, so a post with neither file fails on
// metadata. Errors are *PostError values naming id and the failing stage.
func (a *postAssembler) Assemble(ctx context.Context, id string) (*Post, error) {
	if id == "" {
		return nil, ErrEmptyIdentifier
	}
	log := a.logger.With(logfields.Post(id))

	metaPath := filepath.Join(a.postsDir, id+a.metadataExt)
	log.Info("parsing metadata", logfields.Path(metaPath))
	raw, err := a.store.ReadFile(ctx, metaPath)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, postErr(id, StageMetadata, fmt.Errorf("%w: %s: %w", ErrMetadataDecode, metaPath, err))
	}
	post, err := a.codec.Decode(id, raw)
	if err != nil {
		return nil, postErr(id, StageMetadata, fmt.Errorf("%s: %w", metaPath, err))
	}

	bodyPath := filepath.Join(a.postsDir, id+a.bodyExt)
	body, err := a.store.ReadFile(ctx, bodyPath)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, postErr(id, StageContent, fmt.Errorf("%w: %s: %w", ErrContentRead, bodyPath, err))
	}

	md := a.preprocessor.PreprocessMarkdown(string(body))
	html, err := a.markdown.ToHTML(ctx, md)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, postErr(id, StageMarkdown, fmt.Errorf("%w: %w", ErrMarkdown, err))
	}

	html = a.annotator.Annotate(html)
	post.Content = &html
	log.Debug("assembled post", logfields.Path(bodyPath))
	return post, nil
}
