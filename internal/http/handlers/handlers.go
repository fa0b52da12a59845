package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/foot-analises/foot-stats-service/internal/app/analysis"
	"github.com/foot-analises/foot-stats-service/internal/logging"
)

var errInvalidID = errors.New("invalid id")

// Handler serves the analysis endpoints.
type Handler struct {
	svc    *analysis.Service
	logger *slog.Logger
	ready  func(context.Context) error
}

// NewHandler constructs a Handler. ready may be nil, meaning always ready.
func NewHandler(svc *analysis.Service, logger *slog.Logger, ready func(context.Context) error) *Handler {
	return &Handler{svc: svc, logger: logger, ready: ready}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		if err := h.ready(r.Context()); err != nil {
			writeError(w, r, http.StatusServiceUnavailable, err.Error(), h.logger)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Competitions lists competitions by category.
func (h *Handler) Competitions(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.Competitions(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, cats, h.logger)
}

// Rounds lists the rounds of a competition.
func (h *Handler) Rounds(w http.ResponseWriter, r *http.Request) {
	compID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	rounds, err := h.svc.Rounds(r.Context(), compID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, rounds, h.logger)
}

// Round returns one round by number, or the current one for "current".
func (h *Handler) Round(w http.ResponseWriter, r *http.Request) {
	compID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	if mux.Vars(r)["number"] == "current" {
		round, err := h.svc.CurrentRound(r.Context(), compID)
		if err != nil {
			writeServiceError(w, r, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, round, h.logger)
		return
	}
	number, ok := h.pathID(w, r, "number")
	if !ok {
		return
	}
	round, err := h.svc.Round(r.Context(), compID, number)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, round, h.logger)
}

// Ranking returns the raw favorable/unfavorable fundamentals.
func (h *Handler) Ranking(w http.ResponseWriter, r *http.Request) {
	compID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	ranking, err := h.svc.Ranking(r.Context(), compID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, ranking, h.logger)
}

// Team returns a team's identity as listed in the competition ranking.
func (h *Handler) Team(w http.ResponseWriter, r *http.Request) {
	compID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	teamID, ok := h.pathID(w, r, "teamId")
	if !ok {
		return
	}
	team, err := h.svc.Team(r.Context(), compID, teamID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, team, h.logger)
}

// TeamRecord returns a team's results over the played rounds.
func (h *Handler) TeamRecord(w http.ResponseWriter, r *http.Request) {
	compID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	teamID, ok := h.pathID(w, r, "teamId")
	if !ok {
		return
	}
	record, err := h.svc.TeamRecord(r.Context(), compID, teamID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, record, h.logger)
}

// TeamStats returns one team's resolved stat rows.
func (h *Handler) TeamStats(w http.ResponseWriter, r *http.Request) {
	compID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	teamID, ok := h.pathID(w, r, "teamId")
	if !ok {
		return
	}
	rows, err := h.svc.TeamStats(r.Context(), compID, teamID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, rows, h.logger)
}

// Compare returns the side-by-side comparison of ?home= and ?away=.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	compID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	home, away, ok := h.fixtureTeams(w, r)
	if !ok {
		return
	}
	rows, err := h.svc.CompareTeams(r.Context(), compID, home, away)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, rows, h.logger)
}

// Predict returns outcome probabilities for ?home= hosting ?away=.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	compID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	home, away, ok := h.fixtureTeams(w, r)
	if !ok {
		return
	}
	pred, err := h.svc.Predict(r.Context(), compID, home, away)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, pred, h.logger)
}

// PlayerFundamentals lists per-player values, optionally filtered by ?player= or ?team=.
func (h *Handler) PlayerFundamentals(w http.ResponseWriter, r *http.Request) {
	compID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	fundamentalID, ok := h.pathID(w, r, "fid")
	if !ok {
		return
	}
	var filter analysis.PlayerFilter
	q := r.URL.Query()
	for key, dst := range map[string]*int{"player": &filter.PlayerID, "team": &filter.TeamID} {
		raw := q.Get(key)
		if raw == "" {
			continue
		}
		id, err := parseID(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid "+key+" id", h.logger)
			return
		}
		*dst = id
	}
	players, err := h.svc.PlayerFundamentals(r.Context(), compID, fundamentalID, filter)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, players, h.logger)
}

// Lineup returns the paired lineup of a match.
func (h *Handler) Lineup(w http.ResponseWriter, r *http.Request) {
	matchID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	lineup, err := h.svc.Lineup(r.Context(), matchID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served lineup",
		slog.Int(logging.FieldMatch, matchID),
		slog.Int(logging.FieldCount, len(lineup.Starters)),
	)
	writeJSON(w, http.StatusOK, lineup, h.logger)
}

// MatchFundamentals returns per-player actions of a match by half.
func (h *Handler) MatchFundamentals(w http.ResponseWriter, r *http.Request) {
	matchID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := h.svc.MatchFundamentals(r.Context(), matchID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, out, h.logger)
}

// NotFound answers unknown routes with the JSON error body.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := parseID(mux.Vars(r)[name])
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid "+name, h.logger)
		return 0, false
	}
	return id, true
}

// fixtureTeams reads the ?home= and ?away= team ids.
func (h *Handler) fixtureTeams(w http.ResponseWriter, r *http.Request) (home, away int, ok bool) {
	q := r.URL.Query()
	home, errHome := parseID(q.Get("home"))
	away, errAway := parseID(q.Get("away"))
	if errHome != nil || errAway != nil {
		writeError(w, r, http.StatusBadRequest, "home and away must be positive team ids", h.logger)
		return 0, 0, false
	}
	return home, away, true
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
