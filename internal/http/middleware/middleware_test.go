package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foot-analises/foot-stats-service/internal/http/requestutil"
	"github.com/foot-analises/foot-stats-service/internal/logging"
	"github.com/foot-analises/foot-stats-service/internal/metrics"
	"github.com/foot-analises/foot-stats-service/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestIDAndLogger(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		assert.Equal(t, "abc-123", requestutil.RequestID(r))
		logging.FromContext(r.Context(), nil).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/competitions/10/ranking", nil)
	req.Header.Set(requestutil.HeaderRequestID, "abc-123")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, rec, next), req)

	assert.True(t, nextCalled)
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	assert.Equal(t, "abc-123", rr.Header().Get(requestutil.HeaderRequestID))
	out := buf.String()
	assert.Contains(t, out, "inside handler")
	assert.Contains(t, out, "request_id=abc-123")
	assert.Contains(t, out, "status_code=418")
}

func TestLoggingMiddlewareGeneratesRequestIDWhenMissing(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, requestutil.RequestID(r))
	})

	rr := testutil.Serve(LoggingMiddleware(nil, nil, next), http.MethodGet, "/health", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.NotEmpty(t, rr.Header().Get(requestutil.HeaderRequestID))
}

func TestLoggingMiddlewareWarnsOnServerErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	testutil.Serve(LoggingMiddleware(logger, nil, next), http.MethodGet, "/matches/1/lineup", nil)

	assert.Contains(t, buf.String(), "level=WARN")
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/health", "/health"},
		{"/competitions/10/teams/1001/stats", "/competitions/:id/teams/:id/stats"},
		{"/matches/501/lineup?x=1", "/matches/:id/lineup"},
		{"/matches/501/fundamentals", "/matches/:id/fundamentals"},
		{"/competitions/10/rounds/current", "/competitions/:id/rounds/current"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizePath(tt.in), "normalizePath(%q)", tt.in)
	}
}

func TestLoggingMiddlewareExportsNormalizedPath(t *testing.T) {
	rec, scrape := testutil.NewExportingRecorder(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	testutil.Serve(LoggingMiddleware(nil, rec, next), http.MethodGet, "/matches/9001/lineup", nil)

	out := scrape()
	assert.Contains(t, out, `path="/matches/:id/lineup"`)
	assert.NotContains(t, out, "9001", "match id stripped from labels")
}
