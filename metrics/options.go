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
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Option defines functional options for Recorder configuration.
type Option func(*Recorder)

// WithPrometheus selects the Prometheus provider (the default). Metrics are
// collected in a private registry; serve them with [Recorder.Handler].
//
// Example:
//
//	rec, err := metrics.NewRecorder(metrics.WithPrometheus())
//	http.Handle("/metrics", rec.Handler())
func WithPrometheus() Option {
	return func(r *Recorder) {
		r.provider = PrometheusProvider
	}
}

// WithOTLP selects the OTLP HTTP provider, pushing metrics to the collector
// at endpoint. An "http://" prefix selects an insecure connection; endpoints
// without a scheme default to TLS. An empty endpoint falls back to the
// standard OTEL_EXPORTER_OTLP_ENDPOINT environment configuration.
func WithOTLP(endpoint string) Option {
	return func(r *Recorder) {
		r.provider = OTLPProvider
		r.otlpEndpoint = endpoint
	}
}

// WithStdout selects the stdout provider, which periodically dumps metrics
// to standard output. Intended for development and testing.
func WithStdout() Option {
	return func(r *Recorder) {
		r.provider = StdoutProvider
	}
}

// WithMeterProvider supplies a custom OpenTelemetry [metric.MeterProvider].
// Provider options ([WithPrometheus], [WithOTLP], [WithStdout]) are ignored
// since you are managing the provider yourself, and [Recorder.Shutdown]
// becomes a no-op.
//
// Example:
//
//	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
//	rec, err := metrics.NewRecorder(metrics.WithMeterProvider(mp))
//	defer mp.Shutdown(context.Background())
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(r *Recorder) {
		r.meterProvider = provider
		r.customMeterProvider = true
	}
}

// WithGlobalMeterProvider registers the meter provider as the global
// OpenTelemetry meter provider via otel.SetMeterProvider().
// By default meter providers are not registered globally, so multiple
// metrics configurations can coexist in the same process.
func WithGlobalMeterProvider() Option {
	return func(r *Recorder) {
		r.registerGlobal = true
	}
}

// WithServiceName sets the service.name attribute attached to all metrics.
func WithServiceName(name string) Option {
	return func(r *Recorder) {
		r.serviceName = name
	}
}

// WithServiceVersion sets the service.version attribute attached to all metrics.
func WithServiceVersion(version string) Option {
	return func(r *Recorder) {
		r.serviceVersion = version
	}
}

// WithExportInterval sets the export interval for the OTLP and stdout
// providers. The Prometheus provider is pull-based and ignores it.
func WithExportInterval(interval time.Duration) Option {
	return func(r *Recorder) {
		r.exportInterval = interval
	}
}

// WithDurationBuckets sets custom histogram bucket boundaries for the compile
// and match duration histograms. Buckets are specified in seconds. If not
// set, [DefaultDurationBuckets] is used.
func WithDurationBuckets(buckets ...float64) Option {
	return func(r *Recorder) {
		r.durationBuckets = buckets
	}
}

// WithEventHandler sets a custom handler for internal operational events.
func WithEventHandler(handler EventHandler) Option {
	return func(r *Recorder) {
		r.eventHandler = handler
	}
}

// WithLogger routes internal operational events to the provided slog.Logger.
// Shorthand for WithEventHandler(DefaultEventHandler(logger)).
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		r.eventHandler = DefaultEventHandler(logger)
	}
}

// WithoutMetrics disables metric recording entirely. The Recorder's methods
// become no-ops; no provider is initialized.
func WithoutMetrics() Option {
	return func(r *Recorder) {
		r.enabled = false
	}
}
