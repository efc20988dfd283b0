package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, slog.LevelInfo))

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.With("component", "web").WithGroup("req").Warn("slow", "ms", 250)
	out := buf.String()
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "slow")
	assert.Contains(t, out, "component")
	assert.Contains(t, out, "req.ms")
	assert.Contains(t, out, "250")
}

func TestNewHandlerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, "json", slog.LevelDebug))
	log.Debug("converted", "runes", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "converted", rec["msg"])
	assert.Equal(t, float64(3), rec["runes"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
