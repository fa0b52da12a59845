package config

import "time"

const (
	envPort           = "PORT"
	envProvider       = "PROVIDER"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envOtelVersion    = "OTEL_SERVICE_VERSION"
	envOtelInterval   = "METRICS_EXPORT_INTERVAL"
	envFootstatsURL   = "FOOTSTATS_BASE_URL"
	envFootstatsToken = "FOOTSTATS_TOKEN"
	envFootstatsWait  = "FOOTSTATS_TIMEOUT"
	envFootstatsZone  = "FOOTSTATS_TIMEZONE"
	envStatsFile      = "STATS_CONFIG_FILE"
	envStatsExcluded  = "STATS_EXCLUDED"
	envStatsMeta      = "STATS_META_CATEGORY"

	defaultPort        = "4000"
	defaultProvider    = "fixture"
	defaultMetricsPort = "9090"
	defaultServiceName = "foot-stats-service"

	defaultExportInterval = 15 * time.Second

	defaultFootstatsURL  = "https://apifutebol.footstats.com.br/3.1"
	defaultFootstatsZone = "America/Sao_Paulo"
	// Upstream ranking payloads for a full competition can take several seconds.
	defaultFootstatsTimeout = 15 * time.Second
)
