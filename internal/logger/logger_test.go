package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/UnendingLoop/minigrep/internal/config"
	"github.com/UnendingLoop/minigrep/internal/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "minigrep.log")

	log, err := logger.New(config.LogConfig{Level: "debug", File: path, MaxSize: 1})
	require.NoError(t, err)

	log.Info("search finished", zap.Int("matches", 2))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"search finished"`)
	require.Contains(t, string(data), `"matches":2`)
}

func TestNewLevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minigrep.log")

	log, err := logger.New(config.LogConfig{Level: "warn", File: path})
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "dropped")
	require.Contains(t, string(data), "kept")
}

func TestNewNop(t *testing.T) {
	log, err := logger.New(config.LogConfig{})
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zap.ErrorLevel))
}

func TestNewBadLevel(t *testing.T) {
	_, err := logger.New(config.LogConfig{Level: "loud", Console: true})
	require.ErrorContains(t, err, "invalid log level")
}
