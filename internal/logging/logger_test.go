package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec), buf.String())

	return rec
}

func TestNewLogger_DefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger(Options{Level: "debug", Writer: &buf, Component: "server"})
	lg.Debug("boot", "k", "v")

	rec := decodeLine(t, &buf)
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "server", rec["component"])
	assert.Equal(t, "v", rec["k"])
	assert.Contains(t, rec, "source")
}

func TestNewLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger(Options{Format: "text", Writer: &buf, Component: "client"})
	lg.Info("ready", "space", "team")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "component=client")
	assert.Contains(t, out, "space=team")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNewLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger(Options{Level: "warn", Writer: &buf})
	lg.Info("hidden")
	lg.Warn("shown")

	out := strings.TrimSpace(buf.String())
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.NotContains(t, out, "component")
	assert.NotContains(t, out, "source")
}

func TestNewLogger_RedactsCredentials(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger(Options{Writer: &buf})
	lg.Info("login", "username", "admin", "password", "hunter2", "Token", "abc")

	rec := decodeLine(t, &buf)
	assert.Equal(t, "admin", rec["username"])
	assert.Equal(t, "[REDACTED]", rec["password"])
	assert.Equal(t, "[REDACTED]", rec["Token"])
	assert.NotContains(t, buf.String(), "hunter2")
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	Component(NewLogger(Options{Writer: &buf}), "dispatcher").Info("x")
	assert.Equal(t, "dispatcher", decodeLine(t, &buf)["component"])
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in    string
		level slog.Level
		ok    bool
	}{
		{"", slog.LevelInfo, true},
		{"DEBUG", slog.LevelDebug, true},
		{" info ", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"trace", slog.LevelInfo, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			level, ok := ParseLevel(tc.in)
			assert.Equal(t, tc.level, level)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in     string
		format string
		ok     bool
	}{
		{"", FormatJSON, true},
		{"JSON", FormatJSON, true},
		{"text", FormatText, true},
		{"logfmt", FormatText, true},
		{"yaml", FormatJSON, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			format, ok := ParseFormat(tc.in)
			assert.Equal(t, tc.format, format)
			assert.Equal(t, tc.ok, ok)
		})
	}
}
