package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"TextSidekick/internal/config"
)

func TestLevelFromString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelError, levelFromString("ERROR"))
	assert.Equal(t, slog.LevelWarn, levelFromString(" warning "))
	assert.Equal(t, slog.LevelInfo, levelFromString("info"))
	assert.Equal(t, slog.LevelDebug, levelFromString(""))
}

func TestNewWithWriterFiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWithWriter(config.LoggingConfig{Level: "warn"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown", "component", "test")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "component=test")
}

func TestWriterFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, os.Stderr, writerFor(config.LoggingConfig{}))

	path := filepath.Join(t.TempDir(), "sidekick.log")
	w := writerFor(config.LoggingConfig{File: path, MaxSizeMB: 1})
	file, ok := w.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, path, file.Filename)

	logger := NewWithWriter(config.LoggingConfig{Level: "debug"}, file)
	logger.Debug("to file")
	require.NoError(t, file.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "to file")
}

func TestNewReturnsCloser(t *testing.T) {
	t.Parallel()

	logger, closer := New(config.LoggingConfig{Level: "error"})
	require.NotNil(t, logger)
	require.NoError(t, closer.Close())

	path := filepath.Join(t.TempDir(), "sidekick.log")
	logger, closer = New(config.LoggingConfig{Level: "info", File: path, MaxSizeMB: 1})
	logger.Info("rotated record")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "rotated record")
}
