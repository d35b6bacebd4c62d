package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_ConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Output: &buf})
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("candidate chosen", "name", "Revolver")
	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "candidate chosen")
	require.Contains(t, out, "name=Revolver")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "JSON", Output: &buf})
	require.NoError(t, err)
	logger.Warn("skipping unreadable path", "path", "/music/locked")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "WARN", rec["level"])
	require.Equal(t, "/music/locked", rec["path"])
}

func TestNew_BadFormat(t *testing.T) {
	_, err := New(Options{Format: "xml"})
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, l)
	l, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, l)
	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestDiscard(t *testing.T) {
	require.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}
