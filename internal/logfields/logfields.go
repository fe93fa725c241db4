// Package logfields holds the canonical slog attribute keys used across the build.
package logfields

import "log/slog"

// Canonical log field names shared by the library and the CLI.
const (
	KeyPost     = "post"
	KeyStage    = "stage"
	KeyPath     = "path"
	KeyTemplate = "template"
	KeyOutput   = "output"
	KeyCount    = "count"
	KeyDuration = "duration_ms"
	KeyError    = "error"
)

// Attribute helpers, one per key, so call sites never spell a key by hand.
func Post(id string) slog.Attr       { return slog.String(KeyPost, id) }
func Stage(name string) slog.Attr    { return slog.String(KeyStage, name) }
func Path(p string) slog.Attr        { return slog.String(KeyPath, p) }
func Template(name string) slog.Attr { return slog.String(KeyTemplate, name) }
func Output(name string) slog.Attr   { return slog.String(KeyOutput, name) }
func Count(n int) slog.Attr          { return slog.Int(KeyCount, n) }
func DurationMS(ms int64) slog.Attr  { return slog.Int64(KeyDuration, ms) }

// Error renders err as a string attribute; a nil error gives an empty value.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
