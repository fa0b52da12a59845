package server

import (
	"log/slog"

	"github.com/foot-analises/foot-stats-service/internal/config"
	"github.com/foot-analises/foot-stats-service/internal/metrics"
	"github.com/foot-analises/foot-stats-service/internal/providers"
)

// providerFactory assembles the configured provider behind the instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: recorder}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return f.wrap(selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(base providers.DataProvider) providers.DataProvider {
	return providers.NewInstrumentedProvider(base, providerName(base), f.logger, f.metrics)
}
