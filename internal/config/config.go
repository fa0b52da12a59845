package config

import "fmt"

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	Provider  string
	Footstats FootstatsConfig
	Stats     StatsConfig
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// It only fails when an explicitly configured stats file cannot be read.
func Load() (Config, error) {
	stats, err := loadStats()
	if err != nil {
		return Config{}, fmt.Errorf("load stats config: %w", err)
	}
	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		Provider:  envOrDefault(envProvider, defaultProvider),
		Footstats: loadFootstats(),
		Stats:     stats,
		Metrics:   loadMetrics(),
	}, nil
}
