package server

import (
	"log/slog"
	"strings"

	"github.com/foot-analises/foot-stats-service/internal/config"
	"github.com/foot-analises/foot-stats-service/internal/logging"
	"github.com/foot-analises/foot-stats-service/internal/providers"
	"github.com/foot-analises/foot-stats-service/internal/providers/fixture"
	"github.com/foot-analises/foot-stats-service/internal/providers/footstats"
)

const (
	providerFixture   = "fixture"
	providerFootstats = "footstats"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch strings.ToLower(cfg.Provider) {
	case providerFixture, "":
		return fixture.New()
	case providerFootstats:
		return footstats.NewClient(footstats.Config{
			BaseURL:  cfg.Footstats.BaseURL,
			Token:    cfg.Footstats.Token,
			Timeout:  cfg.Footstats.Timeout,
			Timezone: cfg.Footstats.Timezone,
		})
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}
