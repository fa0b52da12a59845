package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	require.NoError(t, err)
	assert.NotNil(t, rec)
	assert.Nil(t, handler)
	assert.NotNil(t, shutdown)
}

func TestSetupEnabledExportsTransformMetrics(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "foot-stats-service",
	})
	require.NoError(t, err)
	require.NotNil(t, handler)
	defer func() { _ = shutdown(context.Background()) }()

	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordProviderAttempt("footstats", time.Millisecond, nil)
	rec.RecordRateLimit("footstats", time.Second)
	rec.RecordTransform(TransformCompare, 14, time.Millisecond, nil)
	rec.RecordTransform(TransformLineup, 0, time.Millisecond, errors.New("short roster"))
	rec.RecordTransform(TransformPredict, 4, time.Millisecond, nil)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	for _, name := range []string{"footstats_transform_runs_total", "footstats_transform_failures_total", "footstats_provider_attempts_total", "footstats_http_requests_total"} {
		assert.Contains(t, body, name)
	}
	assert.Contains(t, body, `transform="predict"`)
}

func TestSetupPropagatesReaderErrors(t *testing.T) {
	orig := promReaderFactory
	t.Cleanup(func() { promReaderFactory = orig })
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry failure")
	}

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	assert.Error(t, err)
}

func TestSetupPassesExportIntervalToOTLPReader(t *testing.T) {
	orig := otlpReaderFactory
	t.Cleanup(func() { otlpReaderFactory = orig })

	var gotEndpoint string
	var gotInterval time.Duration
	otlpReaderFactory = func(ctx context.Context, endpoint string, insecure bool, interval time.Duration) (sdkmetric.Reader, error) {
		gotEndpoint, gotInterval = endpoint, interval
		return sdkmetric.NewManualReader(), nil
	}

	_, _, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:        true,
		ServiceVersion: "test",
		OtlpEndpoint:   "collector:4318",
	})
	require.NoError(t, err)
	defer func() { _ = shutdown(context.Background()) }()

	assert.Equal(t, "collector:4318", gotEndpoint)
	assert.Equal(t, defaultExportInterval, gotInterval)
}

func TestSetupWrapsOTLPAndInstrumentErrors(t *testing.T) {
	origOTLP, origInst := otlpReaderFactory, instrumentFactory
	t.Cleanup(func() { otlpReaderFactory, instrumentFactory = origOTLP, origInst })

	otlpReaderFactory = func(context.Context, string, bool, time.Duration) (sdkmetric.Reader, error) {
		return nil, errors.New("dial failure")
	}
	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "otlp exporter")

	otlpReaderFactory = origOTLP
	instrumentFactory = func(metric.MeterProvider) (*otelInstruments, error) {
		return nil, errors.New("bad instrument")
	}
	_, _, _, err = Setup(context.Background(), TelemetryConfig{Enabled: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics instruments")
}
