// Package codec wraps the structured-text decoders used by the site:
// YAML for the site configuration and TOML for per-post metadata.
// Callers never import the underlying libraries directly, so either one can
// be swapped without touching them.
package codec

import (
	"errors"
	"fmt"
)

// MaxInputSize limits decoder input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("codec: nil or empty data")
	ErrNilDestination = errors.New("codec: nil destination pointer")
	ErrInputTooLarge  = errors.New("codec: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}
