package config

import "time"

// FootstatsConfig controls how we talk to the Footstats API.
type FootstatsConfig struct {
	BaseURL  string
	Token    string
	Timeout  time.Duration
	Timezone string
}

func loadFootstats() FootstatsConfig {
	return FootstatsConfig{
		BaseURL:  envOrDefault(envFootstatsURL, defaultFootstatsURL),
		Token:    envOrDefault(envFootstatsToken, ""),
		Timeout:  durationEnvOrDefault(envFootstatsWait, defaultFootstatsTimeout),
		Timezone: envOrDefault(envFootstatsZone, defaultFootstatsZone),
	}
}
