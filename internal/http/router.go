package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/foot-analises/foot-stats-service/internal/http/handlers"
	"github.com/foot-analises/foot-stats-service/internal/http/middleware"
	"github.com/foot-analises/foot-stats-service/internal/metrics"
)

// NewRouter registers the API routes and wraps them with request logging and metrics.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)

	get := func(path string, fn nethttp.HandlerFunc) {
		r.HandleFunc(path, fn).Methods(nethttp.MethodGet)
	}
	get("/health", handler.Health)
	get("/ready", handler.Ready)
	get("/competitions", handler.Competitions)
	get("/competitions/{id}/rounds", handler.Rounds)
	get("/competitions/{id}/rounds/{number}", handler.Round)
	get("/competitions/{id}/ranking", handler.Ranking)
	get("/competitions/{id}/teams/{teamId}", handler.Team)
	get("/competitions/{id}/teams/{teamId}/stats", handler.TeamStats)
	get("/competitions/{id}/teams/{teamId}/record", handler.TeamRecord)
	get("/competitions/{id}/compare", handler.Compare)
	get("/competitions/{id}/predict", handler.Predict)
	get("/competitions/{id}/fundamentals/{fid}/players", handler.PlayerFundamentals)
	get("/matches/{id}/lineup", handler.Lineup)
	get("/matches/{id}/fundamentals", handler.MatchFundamentals)

	return middleware.LoggingMiddleware(logger, recorder, r)
}
