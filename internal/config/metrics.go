package config

import (
	"time"

	"github.com/foot-analises/foot-stats-service/internal/metrics"
)

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled        bool
	Port           string
	ServiceName    string
	ServiceVersion string
	OtlpEndpoint   string
	OtlpInsecure   bool
	ExportInterval time.Duration
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:        boolEnvOrDefault(envMetricsOn, true),
		Port:           envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:    envOrDefault(envOtelService, defaultServiceName),
		ServiceVersion: envOrDefault(envOtelVersion, ""),
		OtlpEndpoint:   envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure:   boolEnvOrDefault(envOtelInsecure, true),
		ExportInterval: durationEnvOrDefault(envOtelInterval, defaultExportInterval),
	}
}

// Telemetry converts the settings into the exporter configuration.
func (c MetricsConfig) Telemetry() metrics.TelemetryConfig {
	return metrics.TelemetryConfig{
		Enabled:        c.Enabled,
		Port:           c.Port,
		ServiceName:    c.ServiceName,
		ServiceVersion: c.ServiceVersion,
		OtlpEndpoint:   c.OtlpEndpoint,
		OtlpInsecure:   c.OtlpInsecure,
		ExportInterval: c.ExportInterval,
	}
}
