package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyLocale     = "locale"
	KeyPath       = "path"
	KeyTemplate   = "template"
	KeyFile       = "file"
	KeyStrategy   = "strategy"
	KeyCollection = "collection"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Locale(l string) slog.Attr       { return slog.String(KeyLocale, l) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Template(t string) slog.Attr     { return slog.String(KeyTemplate, t) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Strategy(s string) slog.Attr     { return slog.String(KeyStrategy, s) }
func Collection(c string) slog.Attr   { return slog.String(KeyCollection, c) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
