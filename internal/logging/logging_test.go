package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestLevelFromVerbosity(t *testing.T) {
	cases := []struct {
		v    int
		want slog.Level
	}{
		{-2, LevelSilent},
		{0, LevelSilent},
		{1, slog.LevelError},
		{2, slog.LevelWarn},
		{DefaultVerbosity, slog.LevelInfo},
		{4, slog.LevelDebug},
		{9, slog.LevelDebug},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LevelFromVerbosity(tc.v), "verbosity %d", tc.v)
	}
}

func TestMultiHandler(t *testing.T) {
	var info, debug bytes.Buffer
	h := NewMultiHandler(
		NewConsoleHandler(&info, slog.LevelInfo, true),
		NewConsoleHandler(&debug, slog.LevelDebug, true),
	)
	logger := slog.New(h).With("summoner", "rekkles")

	logger.Debug("polling")
	logger.Info("match started", "match", 42)

	assert.NotContains(t, info.String(), "polling")
	assert.Contains(t, info.String(), "match started")
	assert.Contains(t, info.String(), "summoner=rekkles")
	assert.Contains(t, debug.String(), "polling")
	assert.Contains(t, debug.String(), "match=42")
}

func TestSetupLogger_TUIWritesFileOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	logger, err := SetupLogger(path, slog.LevelInfo, true)
	require.NoError(t, err)
	t.Cleanup(func() { CloseFile() })

	logger.Info("hello", "k", "v")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "k=v")
}
