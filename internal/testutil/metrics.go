package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foot-analises/foot-stats-service/internal/metrics"
)

// NewExportingRecorder returns a recorder backed by the Prometheus exporter
// and a scrape function returning the exposition text.
func NewExportingRecorder(t *testing.T) (*metrics.Recorder, func() string) {
	t.Helper()
	rec, handler, shutdown, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("metrics setup: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	return rec, func() string {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		return rr.Body.String()
	}
}
