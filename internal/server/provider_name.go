package server

import (
	"github.com/foot-analises/foot-stats-service/internal/providers"
	"github.com/foot-analises/foot-stats-service/internal/providers/fixture"
	"github.com/foot-analises/foot-stats-service/internal/providers/footstats"
)

// providerName labels provider metrics and logs. It follows the concrete
// type so an unknown configured name is not reported as-is.
func providerName(provider providers.DataProvider) string {
	switch provider.(type) {
	case *footstats.Client:
		return providerFootstats
	case *fixture.Provider:
		return providerFixture
	case nil:
		return "provider"
	default:
		return "custom"
	}
}
