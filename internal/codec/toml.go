package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrMissingKey indicates a required top-level key is absent from a TOML document.
var ErrMissingKey = errors.New("codec: missing required key")

// TOMLResult reports what a TOML decode saw beyond the destination struct.
type TOMLResult struct {
	// Undecoded lists keys present in the input with no matching field.
	Undecoded []string
}

// DecodeTOML decodes TOML into v and verifies that every key in required
// is defined at the top level of the document.
// Unknown keys are not an error; they are returned in TOMLResult.Undecoded.
func DecodeTOML(data []byte, v any, required ...string) (*TOMLResult, error) {
	if err := validateInput(data, v); err != nil {
		return nil, err
	}

	md, err := toml.Decode(string(data), v)
	if err != nil {
		return nil, fmt.Errorf("codec: toml: %w", err)
	}

	var missing []string
	for _, key := range required {
		if !md.IsDefined(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, strings.Join(missing, ", "))
	}

	res := &TOMLResult{}
	for _, k := range md.Undecoded() {
		res.Undecoded = append(res.Undecoded, k.String())
	}
	return res, nil
}
