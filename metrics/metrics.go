// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	promclient "github.com/prometheus/client_golang/prometheus"
)

// DefaultDurationBuckets are histogram boundaries for compile and match
// durations in seconds. Pattern operations are fast, so the buckets cover
// hundreds of nanoseconds up to ten milliseconds.
var DefaultDurationBuckets = []float64{
	0.0000001, 0.0000005, 0.000001, 0.000005, 0.00001,
	0.00005, 0.0001, 0.0005, 0.001, 0.01,
}

// EventType represents the severity of an internal operational event.
type EventType int

const (
	// EventError indicates an error event (e.g., failed to export metrics).
	EventError EventType = iota
	// EventWarning indicates a warning event.
	EventWarning
	// EventInfo indicates an informational event.
	EventInfo
	// EventDebug indicates a debug event.
	EventDebug
)

// Event represents an internal operational event from the metrics package.
// Events are used to report errors, warnings, and informational messages
// about the metrics system's operation.
type Event struct {
	Type    EventType
	Message string
	Args    []any // slog-style key-value pairs
}

// EventHandler processes internal operational events from the metrics package.
// Implementations can log events, send them to monitoring systems, or take
// custom actions based on event type.
type EventHandler func(Event)

// DefaultEventHandler returns an EventHandler that logs events to the provided
// slog.Logger.
//
// If logger is nil, returns a no-op handler that discards all events.
func DefaultEventHandler(logger *slog.Logger) EventHandler {
	if logger == nil {
		return func(Event) {}
	}

	return func(e Event) {
		switch e.Type {
		case EventError:
			logger.Error(e.Message, e.Args...)
		case EventWarning:
			logger.Warn(e.Message, e.Args...)
		case EventInfo:
			logger.Info(e.Message, e.Args...)
		case EventDebug:
			logger.Debug(e.Message, e.Args...)
		}
	}
}

// Provider represents the available metrics providers.
type Provider string

const (
	// PrometheusProvider uses the Prometheus exporter for metrics (default).
	PrometheusProvider Provider = "prometheus"
	// OTLPProvider uses the OTLP HTTP exporter for metrics.
	OTLPProvider Provider = "otlp"
	// StdoutProvider uses the stdout exporter for metrics (development/testing).
	StdoutProvider Provider = "stdout"
)

// Recorder records pattern compile and match metrics through OpenTelemetry.
// It implements the MetricsRecorder interface expected by the pathmatch
// package. All methods are safe for concurrent use.
//
// By default, this package does NOT set the global OpenTelemetry meter
// provider. Use [WithGlobalMeterProvider] if you want global registration.
// This allows multiple Recorder instances to coexist in the same process.
type Recorder struct {
	meter              metric.Meter
	meterProvider      metric.MeterProvider
	prometheusHandler  http.Handler
	prometheusRegistry *promclient.Registry
	eventHandler       EventHandler

	compileDuration metric.Float64Histogram
	compileCount    metric.Int64Counter
	matchDuration   metric.Float64Histogram
	matchCount      metric.Int64Counter

	durationBuckets []float64

	serviceName    string
	serviceVersion string
	otlpEndpoint   string
	exportInterval time.Duration

	// Pre-computed attribute sets, one per outcome combination. Computed
	// once during initialization so the hot path never allocates.
	compileAttrs [2][2]metric.MeasurementOption // [cacheHit][failed]
	matchAttrs   [2][2]metric.MeasurementOption // [cacheHit][matched]

	provider            Provider
	enabled             bool
	customMeterProvider bool
	registerGlobal      bool
}

// NewRecorder creates a new [Recorder] with the given options.
// Returns an error if the metrics provider fails to initialize.
// For a version that panics on error, use [MustNewRecorder].
//
// By default, this function does NOT set the global OpenTelemetry meter
// provider. Use [WithGlobalMeterProvider] to register it as the global
// default. Keeping registration opt-in makes it easier to embed pathmatch
// into binaries that already manage their own meter provider.
func NewRecorder(opts ...Option) (*Recorder, error) {
	r := newDefaultRecorder()

	for _, opt := range opts {
		opt(r)
	}

	if err := r.initializeProvider(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	return r, nil
}

// MustNewRecorder is like [NewRecorder] but panics on error.
// Intended for program initialization where a broken metrics setup
// should abort startup.
func MustNewRecorder(opts ...Option) *Recorder {
	r, err := NewRecorder(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// newDefaultRecorder creates a Recorder with default values.
func newDefaultRecorder() *Recorder {
	return &Recorder{
		enabled:         true,
		serviceName:     "pathmatch",
		serviceVersion:  "1.0.0",
		provider:        PrometheusProvider,
		exportInterval:  30 * time.Second,
		durationBuckets: DefaultDurationBuckets,
	}
}

// initializeInstruments creates the OpenTelemetry instruments and
// pre-computes the attribute sets used on the hot path.
func (r *Recorder) initializeInstruments() error {
	var err error

	r.compileDuration, err = r.meter.Float64Histogram(
		"pathmatch_compile_duration_seconds",
		metric.WithDescription("Time spent compiling path patterns"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(r.durationBuckets...),
	)
	if err != nil {
		return fmt.Errorf("failed to create compile duration histogram: %w", err)
	}

	r.compileCount, err = r.meter.Int64Counter(
		"pathmatch_compile_total",
		metric.WithDescription("Total number of pattern compilations"),
	)
	if err != nil {
		return fmt.Errorf("failed to create compile counter: %w", err)
	}

	r.matchDuration, err = r.meter.Float64Histogram(
		"pathmatch_match_duration_seconds",
		metric.WithDescription("Time spent matching paths against patterns"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(r.durationBuckets...),
	)
	if err != nil {
		return fmt.Errorf("failed to create match duration histogram: %w", err)
	}

	r.matchCount, err = r.meter.Int64Counter(
		"pathmatch_match_total",
		metric.WithDescription("Total number of match attempts"),
	)
	if err != nil {
		return fmt.Errorf("failed to create match counter: %w", err)
	}

	serviceAttrs := []attribute.KeyValue{
		attribute.String("service.name", r.serviceName),
		attribute.String("service.version", r.serviceVersion),
	}

	cacheValues := [2]string{"miss", "hit"}
	for hit := range 2 {
		for failed := range 2 {
			outcome := "ok"
			if failed == 1 {
				outcome = "error"
			}
			attrs := append([]attribute.KeyValue{
				attribute.String("cache", cacheValues[hit]),
				attribute.String("outcome", outcome),
			}, serviceAttrs...)
			r.compileAttrs[hit][failed] = metric.WithAttributeSet(attribute.NewSet(attrs...))
		}
		for matched := range 2 {
			attrs := append([]attribute.KeyValue{
				attribute.String("cache", cacheValues[hit]),
				attribute.Bool("matched", matched == 1),
			}, serviceAttrs...)
			r.matchAttrs[hit][matched] = metric.WithAttributeSet(attribute.NewSet(attrs...))
		}
	}

	return nil
}

// Handler returns the HTTP handler serving Prometheus metrics, or nil if the
// Prometheus provider is not in use. Mount it wherever your application
// serves operational endpoints:
//
//	http.Handle("/metrics", rec.Handler())
func (r *Recorder) Handler() http.Handler {
	return r.prometheusHandler
}

// MeterProvider returns the underlying OpenTelemetry meter provider.
// Useful when other instrumentation in the process should share it.
func (r *Recorder) MeterProvider() metric.MeterProvider {
	return r.meterProvider
}

// Shutdown flushes pending metrics and releases provider resources.
// Recorders built with [WithMeterProvider] are not shut down here; the
// owner of the provider manages its lifecycle.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r.customMeterProvider {
		return nil
	}
	if sd, ok := r.meterProvider.(interface{ Shutdown(context.Context) error }); ok {
		return sd.Shutdown(ctx)
	}
	return nil
}

func (r *Recorder) emitError(msg string, args ...any) {
	if r.eventHandler != nil {
		r.eventHandler(Event{Type: EventError, Message: msg, Args: args})
	}
}

func (r *Recorder) emitDebug(msg string, args ...any) {
	if r.eventHandler != nil {
		r.eventHandler(Event{Type: EventDebug, Message: msg, Args: args})
	}
}
