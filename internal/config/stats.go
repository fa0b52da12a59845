package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/foot-analises/foot-stats-service/internal/stats"
)

// StatsConfig lists the fundamentals that never appear in comparisons.
type StatsConfig struct {
	MetaCategory string   `yaml:"meta_category"`
	Excluded     []string `yaml:"excluded"`
}

// Exclusions builds the matcher used by the aggregator.
func (c StatsConfig) Exclusions() stats.ExclusionSet {
	return stats.NewExclusionSet(c.Excluded, c.MetaCategory)
}

// loadStats layers defaults, then the YAML file, then env overrides.
// A blank STATS_EXCLUDED is treated as unset; STATS_EXCLUDED="," clears the list.
func loadStats() (StatsConfig, error) {
	cfg := StatsConfig{
		MetaCategory: stats.DefaultMetaCategory,
		Excluded:     append([]string(nil), stats.DefaultExcluded...),
	}

	if path := os.Getenv(envStatsFile); path != "" {
		fromFile, err := readStatsFile(path)
		if err != nil {
			return StatsConfig{}, err
		}
		if fromFile.MetaCategory != "" {
			cfg.MetaCategory = fromFile.MetaCategory
		}
		if fromFile.Excluded != nil {
			cfg.Excluded = fromFile.Excluded
		}
	}

	if excluded, ok := listEnv(envStatsExcluded); ok {
		cfg.Excluded = excluded
	}
	cfg.MetaCategory = envOrDefault(envStatsMeta, cfg.MetaCategory)
	return cfg, nil
}

func readStatsFile(path string) (StatsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StatsConfig{}, fmt.Errorf("failed to read stats file: %w", err)
	}
	var cfg StatsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StatsConfig{}, fmt.Errorf("failed to parse stats file: %w", err)
	}
	return cfg, nil
}
