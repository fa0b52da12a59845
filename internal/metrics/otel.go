package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const (
	defaultServiceName    = "foot-stats-service"
	defaultExportInterval = 15 * time.Second
	metricPrefix          = "footstats_"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled        bool
	Port           string
	ServiceName    string
	ServiceVersion string
	OtlpEndpoint   string
	OtlpInsecure   bool
	ExportInterval time.Duration
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}
	if cfg.ExportInterval <= 0 {
		cfg.ExportInterval = defaultExportInterval
	}

	readers, promHandler, err := buildReaders(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	attrs := []attribute.KeyValue{semconv.ServiceName(cfg.ServiceName)}
	if cfg.ServiceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersion(cfg.ServiceVersion))
	}
	res, err := resource.New(ctx, resource.WithAttributes(attrs...))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("metrics resource: %w", err)
	}

	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	for _, r := range readers {
		opts = append(opts, sdkmetric.WithReader(r))
	}
	provider := sdkmetric.NewMeterProvider(opts...)

	inst, err := instrumentFactory(provider)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, nil, fmt.Errorf("metrics instruments: %w", err)
	}
	return newRecorder(inst), promHandler, provider.Shutdown, nil
}

// buildReaders returns the Prometheus pull reader and, when an endpoint is
// configured, an OTLP push reader.
func buildReaders(ctx context.Context, cfg TelemetryConfig) ([]sdkmetric.Reader, http.Handler, error) {
	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, fmt.Errorf("prometheus exporter: %w", err)
	}
	readers := []sdkmetric.Reader{promReader}
	if cfg.OtlpEndpoint == "" {
		return readers, promHandler, nil
	}
	otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure, cfg.ExportInterval)
	if err != nil {
		return nil, nil, fmt.Errorf("otlp exporter: %w", err)
	}
	return append(readers, otlpReader), promHandler, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool, interval time.Duration) (sdkmetric.Reader, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exp, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(interval)), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	exp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return exp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}), nil
}

type otelInstruments struct {
	ctx context.Context

	requests       metric.Int64Counter
	requestLatency metric.Float64Histogram

	providerAttempts metric.Int64Counter
	providerErrors   metric.Int64Counter
	providerLatency  metric.Float64Histogram
	rateLimitHits    metric.Int64Counter
	retryAfter       metric.Float64Histogram

	transformRuns     metric.Int64Counter
	transformFailures metric.Int64Counter
	transformRows     metric.Int64Histogram
	transformLatency  metric.Float64Histogram
}

// instrumentSet creates instruments on one meter and keeps the first error,
// so construction reads as a flat list.
type instrumentSet struct {
	meter metric.Meter
	err   error
}

func (s *instrumentSet) counter(name, desc string) metric.Int64Counter {
	c, err := s.meter.Int64Counter(metricPrefix+name, metric.WithDescription(desc))
	s.keep(err)
	return c
}

func (s *instrumentSet) histogram(name, desc string) metric.Float64Histogram {
	h, err := s.meter.Float64Histogram(metricPrefix+name, metric.WithDescription(desc))
	s.keep(err)
	return h
}

func (s *instrumentSet) intHistogram(name, desc string) metric.Int64Histogram {
	h, err := s.meter.Int64Histogram(metricPrefix+name, metric.WithDescription(desc))
	s.keep(err)
	return h
}

func (s *instrumentSet) keep(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	set := &instrumentSet{meter: provider.Meter(defaultServiceName)}
	inst := &otelInstruments{
		ctx: context.Background(),

		requests:       set.counter("http_requests_total", "HTTP requests served"),
		requestLatency: set.histogram("http_request_duration_ms", "HTTP request latency in milliseconds"),

		providerAttempts: set.counter("provider_attempts_total", "Upstream stats provider calls"),
		providerErrors:   set.counter("provider_errors_total", "Failed upstream stats provider calls"),
		providerLatency:  set.histogram("provider_duration_ms", "Upstream call latency in milliseconds"),
		rateLimitHits:    set.counter("provider_rate_limit_hits_total", "Upstream 429 responses"),
		retryAfter:       set.histogram("provider_retry_after_ms", "Retry-After advertised by the upstream"),

		transformRuns:     set.counter("transform_runs_total", "Aggregation and lineup builds"),
		transformFailures: set.counter("transform_failures_total", "Builds rejected by misalignment or short rosters"),
		transformRows:     set.intHistogram("transform_rows", "Rows produced per build"),
		transformLatency:  set.histogram("transform_duration_ms", "Build latency in milliseconds"),
	}
	if set.err != nil {
		return nil, set.err
	}
	return inst, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.recordCounter(o.requests, 1, attrs...)
	o.recordHistogram(o.requestLatency, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.recordCounter(o.providerAttempts, 1, attrs...)
	o.recordHistogram(o.providerLatency, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.providerErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordRateLimit(provider string, retryAfter time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.recordCounter(o.rateLimitHits, 1, attrs...)
	if retryAfter > 0 {
		o.recordHistogram(o.retryAfter, float64(retryAfter.Milliseconds()), attrs...)
	}
}

func (o *otelInstruments) recordTransform(name string, rows int, duration time.Duration, err error) {
	if o == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrTransform, name),
		attribute.String(AttrOutcome, outcome),
	}
	o.recordCounter(o.transformRuns, 1, attrs...)
	o.recordHistogram(o.transformLatency, float64(duration.Microseconds())/1000, attrs...)
	if err != nil {
		o.recordCounter(o.transformFailures, 1, attrs[:1]...)
		return
	}
	o.transformRows.Record(o.ctx, int64(rows), metric.WithAttributes(attrs[:1]...))
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
