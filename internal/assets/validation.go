package assets

import (
	"fmt"
	"strings"
)

// ValidateLayoutName checks that a layout name is safe for use as a filename.
func ValidateLayoutName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidLayoutName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidLayoutName, name)
	}
	return nil
}
