package blogsite

import (
	"fmt"
	"log/slog"

	"github.com/alnah/go-blogsite/internal/codec"
	"github.com/alnah/go-blogsite/internal/logfields"
)

// MetadataCodec decodes the raw metadata of the post id.
type MetadataCodec interface {
	// Decode fails with ErrMetadataDecode.
	Decode(id string, raw []byte) (*Post, error)
}

// TOMLCodec decodes TOML metadata. All of RequiredMetadataKeys must be
// present; unknown keys are logged and ignored.
type TOMLCodec struct {
	Logger *slog.Logger
}

// Decode parses raw into a Post whose ID is id.
func (c *TOMLCodec) Decode(id string, raw []byte) (*Post, error) {
	post := &Post{}
	res, err := codec.DecodeTOML(raw, post, RequiredMetadataKeys...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMetadataDecode, err)
	}
	post.ID = id

	if len(res.Undecoded) > 0 && c.Logger != nil {
		c.Logger.Debug("ignoring unknown metadata keys",
			logfields.Post(id), slog.Any("keys", res.Undecoded))
	}
	return post, nil
}
