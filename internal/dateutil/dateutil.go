// Package dateutil converts user-friendly date layouts (YYYY, MMMM, DD, ...)
// into Go time layouts for display formatting in page templates.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when no display format is configured.
const DefaultDateFormat = "YYYY-MM-DD"

// dateTokens maps user-friendly tokens to Go time layout components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseDateFormat converts a user-friendly format string to a Go time layout.
// Text inside brackets is kept literally: "[Posted] MMM D" -> "Posted Jan 2".
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	b.Grow(len(format) + 10)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		n := matchToken(format[i:], &b)
		if n == 0 {
			b.WriteByte(format[i])
			n = 1
		}
		i += n
	}

	return b.String(), nil
}

// matchToken writes the Go layout for the longest token prefixing s
// and returns its length, or 0 when s starts with a literal.
func matchToken(s string, b *strings.Builder) int {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			b.WriteString(t.goFmt)
			return len(t.token)
		}
	}
	return 0
}

// ResolveFormat maps a preset name (case-insensitive) to its format and
// returns any other value unchanged. Empty input yields DefaultDateFormat.
func ResolveFormat(format string) string {
	if format == "" {
		return DefaultDateFormat
	}
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		return preset
	}
	return format
}

// Format renders t using a user-friendly format or preset name.
func Format(t time.Time, format string) (string, error) {
	layout, err := ParseDateFormat(ResolveFormat(format))
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// Validate reports whether format can be used with Format.
func Validate(format string) error {
	_, err := ParseDateFormat(ResolveFormat(format))
	return err
}
