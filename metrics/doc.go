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

// Package metrics provides OpenTelemetry-backed recording of pattern compile
// and match operations for the pathmatch package.
//
// A [Recorder] satisfies the MetricsRecorder interface consumed by
// pathmatch. It exposes compile and match duration histograms along with
// total counters, attributed by cache outcome and match result.
//
// # Quick Start
//
//	rec, err := metrics.NewRecorder(
//	    metrics.WithPrometheus(),
//	    metrics.WithServiceName("my-service"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rec.Shutdown(context.Background())
//
//	http.Handle("/metrics", rec.Handler())
//
//	m := pathmatch.New(pathmatch.WithMetricsRecorder(rec))
//
// # Providers
//
// Three built-in providers are available:
//
//   - [WithPrometheus] collects metrics in a private Prometheus registry,
//     served through [Recorder.Handler] (default)
//   - [WithOTLP] pushes metrics to an OTLP HTTP collector
//   - [WithStdout] periodically dumps metrics to standard output
//
// Alternatively, [WithMeterProvider] plugs the Recorder into a meter
// provider you manage yourself.
//
// # Global State
//
// By default no global OpenTelemetry state is touched, so multiple Recorder
// instances can coexist in one process. Opt in to global registration with
// [WithGlobalMeterProvider].
//
// # Operational Events
//
// Internal errors and informational messages are reported through an
// [EventHandler] rather than a hardwired logger. Route them to slog with
// [WithLogger], or install a custom handler with [WithEventHandler].
package metrics
