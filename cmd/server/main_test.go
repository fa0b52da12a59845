package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestLoadDotEnvIgnoresMissingDefault(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	assert.NoError(t, loadDotEnv(""))
}

func TestLoadDotEnvReportsMissingExplicitFile(t *testing.T) {
	assert.Error(t, loadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestLoadDotEnvDoesNotOverrideProcessEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("FOOT_TEST_KEEP=file\nFOOT_TEST_NEW=file\n"), 0o600))
	t.Setenv("FOOT_TEST_KEEP", "process")
	t.Setenv("FOOT_TEST_NEW", "")
	os.Unsetenv("FOOT_TEST_NEW")

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "process", os.Getenv("FOOT_TEST_KEEP"))
	assert.Equal(t, "file", os.Getenv("FOOT_TEST_NEW"))
}

func TestLoggerHonorsLevelFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	require.NoError(t, loadDotEnv(path))
	logger := newLogger()
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug), "LOG_LEVEL from the env file must reach the logger")
}
