// Package logfields defines canonical log field names to avoid drift across packages.
package logfields

import "log/slog"

const (
	KeyBuildID    = "build_id"
	KeyPage       = "page"
	KeySource     = "source"
	KeyPath       = "path"
	KeyURL        = "url"
	KeyCommit     = "commit"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr { return slog.String(KeyBuildID, id) }
func Page(p string) slog.Attr     { return slog.String(KeyPage, p) }
func Source(s string) slog.Attr   { return slog.String(KeySource, s) }
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func URL(u string) slog.Attr      { return slog.String(KeyURL, u) }
func Commit(c string) slog.Attr   { return slog.String(KeyCommit, c) }

func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
