// Package logging builds the process logger. Output goes to stderr because
// stdout carries the protocol stream.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output formats accepted by Options.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// redacted replaces the value of any attribute in sensitiveKeys.
const redacted = "[REDACTED]"

var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"token":         {},
	"auth_token":    {},
	"authorization": {},
}

// Options configures NewLogger. Zero values select info level, JSON output
// and stderr.
type Options struct {
	Level     string
	Format    string
	Writer    io.Writer
	Component string
}

// NewLogger returns a logger for opts. Credential-bearing attributes are
// always redacted.
func NewLogger(opts Options) *slog.Logger {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}
	level, _ := ParseLevel(opts.Level)
	handlerOpts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   level <= slog.LevelDebug,
		ReplaceAttr: redact,
	}

	var h slog.Handler
	if format, _ := ParseFormat(opts.Format); format == FormatText {
		h = slog.NewTextHandler(writer, handlerOpts)
	} else {
		h = slog.NewJSONHandler(writer, handlerOpts)
	}

	lg := slog.New(h)
	if c := strings.TrimSpace(opts.Component); c != "" {
		lg = Component(lg, c)
	}

	return lg
}

// Component derives a child logger tagged with name.
func Component(lg *slog.Logger, name string) *slog.Logger {
	return lg.With("component", name)
}

// ParseLevel maps a level name to a slog level. Unknown names yield info
// and false; the empty string is info and true.
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// ParseFormat normalizes a format name. Unknown names yield FormatJSON and
// false; the empty string is FormatJSON and true.
func ParseFormat(format string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		return FormatJSON, true
	case FormatText, "logfmt":
		return FormatText, true
	default:
		return FormatJSON, false
	}
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if _, ok := sensitiveKeys[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, redacted)
	}

	return a
}
