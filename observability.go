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

package pathmatch

import "time"

// MetricsRecorder receives timing and outcome signals from the matcher.
//
// The matcher functions correctly whether metrics are collected or not; the
// recorder is purely observational and must never influence matching.
// The metrics subpackage provides an OpenTelemetry-backed implementation
// with Prometheus, OTLP and stdout providers:
//
//	rec, _ := metrics.NewRecorder(metrics.WithPrometheus())
//	m := pathmatch.New(pathmatch.WithMetricsRecorder(rec))
//
// Thread safety: all methods must be safe for concurrent use; the matcher
// calls them from every goroutine that compiles or matches.
type MetricsRecorder interface {
	// RecordCompile is called once per Compile call with the elapsed time,
	// whether the pattern came from the compile cache, and the compile error
	// (nil on success).
	RecordCompile(elapsed time.Duration, cacheHit bool, err error)

	// RecordMatch is called once per Match call with the elapsed time, the
	// outcome, and whether the result came from the match-result cache.
	RecordMatch(elapsed time.Duration, matched, cacheHit bool)
}

// nopMetrics is the recorder used when none is configured.
type nopMetrics struct{}

func (nopMetrics) RecordCompile(time.Duration, bool, error) {}
func (nopMetrics) RecordMatch(time.Duration, bool, bool)    {}
