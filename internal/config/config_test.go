package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStatsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultProvider, cfg.Provider)
	assert.Equal(t, defaultFootstatsURL, cfg.Footstats.BaseURL)
	assert.Empty(t, cfg.Footstats.Token)
	assert.Equal(t, defaultFootstatsZone, cfg.Footstats.Timezone)
	assert.Equal(t, defaultFootstatsTimeout, cfg.Footstats.Timeout)
	assert.Equal(t, "Índice", cfg.Stats.MetaCategory)
	assert.NotEmpty(t, cfg.Stats.Excluded)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, defaultServiceName, cfg.Metrics.ServiceName)
	assert.Equal(t, defaultExportInterval, cfg.Metrics.ExportInterval)
}

func TestMetricsTelemetryCarriesSettings(t *testing.T) {
	t.Setenv(envOtelEndpoint, "collector:4318")
	t.Setenv(envOtelVersion, "1.2.3")
	t.Setenv(envOtelInterval, "30s")
	t.Setenv(envMetricsPort, "9191")

	tc := loadMetrics().Telemetry()
	assert.Equal(t, "collector:4318", tc.OtlpEndpoint)
	assert.Equal(t, "1.2.3", tc.ServiceVersion)
	assert.Equal(t, "9191", tc.Port)
	assert.Equal(t, 30*time.Second, tc.ExportInterval)
	assert.True(t, tc.Enabled)
	assert.True(t, tc.OtlpInsecure)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "footstats")
	t.Setenv(envFootstatsURL, "http://example.com/api")
	t.Setenv(envFootstatsToken, "secret-token")
	t.Setenv(envFootstatsWait, "3s")
	t.Setenv(envMetricsOn, "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "footstats", cfg.Provider)
	assert.Equal(t, "http://example.com/api", cfg.Footstats.BaseURL)
	assert.Equal(t, "secret-token", cfg.Footstats.Token)
	assert.Equal(t, 3*time.Second, cfg.Footstats.Timeout)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadInvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv(envFootstatsWait, "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, defaultFootstatsTimeout, cfg.Footstats.Timeout)
}

func TestLoadStatsFromFile(t *testing.T) {
	t.Setenv(envStatsFile, writeStatsFile(t, "meta_category: Indice Geral\nexcluded:\n  - Posse de Bola\n  - Escanteios\n"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Indice Geral", cfg.Stats.MetaCategory)
	assert.Equal(t, []string{"Posse de Bola", "Escanteios"}, cfg.Stats.Excluded)

	set := cfg.Stats.Exclusions()
	assert.True(t, set.Contains("escanteios"))
	assert.True(t, set.Contains("Indice Geral"))
	assert.False(t, set.Contains("Cartão Amarelo"))
}

func TestLoadStatsEmptyFileListMeansNoExclusions(t *testing.T) {
	t.Setenv(envStatsFile, writeStatsFile(t, "excluded: []\n"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Stats.Excluded)
	assert.False(t, cfg.Stats.Exclusions().Contains("Posse de Bola"), "only the meta category is excluded")
	assert.Equal(t, 1, cfg.Stats.Exclusions().Len())
}

func TestLoadStatsEnvOverridesFile(t *testing.T) {
	t.Setenv(envStatsExcluded, " Passes ,, Cruzamentos ")
	t.Setenv(envStatsMeta, "Index")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Passes", "Cruzamentos"}, cfg.Stats.Excluded)
	assert.Equal(t, "Index", cfg.Stats.MetaCategory)
}

func TestLoadStatsMissingFileFails(t *testing.T) {
	t.Setenv(envStatsFile, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadStatsInvalidYAMLFails(t *testing.T) {
	t.Setenv(envStatsFile, writeStatsFile(t, "excluded: [unterminated"))

	_, err := Load()
	assert.Error(t, err)
}
