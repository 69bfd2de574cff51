package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerFormatsModuleAndAttrs(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, nil))

	logger.Info("linked program", slog.String("module", "shaders"), slog.Int("id", 3))

	line := out.String()
	assert.Contains(t, line, "INFO [shaders] linked program id=3\n")
	assert.NotContains(t, line, "\033[")
}

func TestHandlerWithAttrs(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, nil)).With(slog.String("module", "runner"))

	logger.Warn("reload failed", slog.String("sample", "cube"))
	assert.Contains(t, out.String(), "WARN [runner] reload failed sample=cube")
}

func TestHandlerLevelFilter(t *testing.T) {
	var out bytes.Buffer
	opts := &Options{HandlerOptions: slog.HandlerOptions{Level: slog.LevelWarn}}
	logger := slog.New(NewHandler(&out, opts))

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Error("shown")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "ERROR shown")
}

func TestHandlerColour(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, &Options{Colour: true}))

	logger.Error("boom")
	assert.Contains(t, out.String(), "\033[91mERROR \033[0m")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}
