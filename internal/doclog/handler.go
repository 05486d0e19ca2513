// Package doclog configures log/slog the way MacroPower-x/log configures
// it: a single CreateHandler selecting between a JSON and a text handler,
// driven by CLI-facing level/format values. The asciidoc core package
// itself never imports this package — parsing is a pure function per the
// concurrency model, so only cmd/ logs anything; the include resolver
// reports skipped files as diagnostics.
package doclog

import (
	"io"
	"log/slog"
)

// Format selects the slog.Handler CreateHandler builds.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// CreateHandler builds a slog.Handler writing to w at the given level, in
// either text or JSON form.
func CreateHandler(w io.Writer, level slog.Level, format Format) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

// ParseLevel maps the --log-level flag's string value to a slog.Level,
// defaulting to Info on an unrecognized value.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat maps the --log-format flag's string value to a Format,
// defaulting to text on an unrecognized value.
func ParseFormat(s string) Format {
	if s == "json" {
		return FormatJSON
	}

	return FormatText
}
