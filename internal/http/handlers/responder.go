package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/foot-analises/foot-stats-service/internal/app/analysis"
	"github.com/foot-analises/foot-stats-service/internal/http/requestutil"
	"github.com/foot-analises/foot-stats-service/internal/lineups"
	"github.com/foot-analises/foot-stats-service/internal/logging"
	"github.com/foot-analises/foot-stats-service/internal/providers"
	"github.com/foot-analises/foot-stats-service/internal/stats"
)

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, errorBody{Error: message, RequestID: requestutil.RequestID(r)}, logger)
}

// writeServiceError maps a service error onto a status code and message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status, message := statusForError(err)
	if status >= http.StatusInternalServerError {
		logging.Error(loggerFromContext(r, logger), "request failed", err, slog.Int(logging.FieldStatusCode, status))
	}
	writeError(w, r, status, message, logger)
}

func statusForError(err error) (int, string) {
	if _, ok := providers.AsRateLimitError(err); ok {
		return http.StatusTooManyRequests, "upstream rate limited"
	}
	switch {
	case errors.Is(err, analysis.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, stats.ErrMisaligned):
		return http.StatusConflict, err.Error()
	case errors.Is(err, lineups.ErrOutOfRange):
		return http.StatusUnprocessableEntity, err.Error()
	}
	if _, ok := providers.AsStatusError(err); ok {
		return http.StatusBadGateway, "upstream failure"
	}
	return http.StatusBadGateway, "upstream unavailable"
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
