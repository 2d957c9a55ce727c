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
	"time"
)

// RecordCompile records a single pattern compilation. cacheHit reports
// whether the compiled pattern was served from the compile cache, and err
// is the compilation error, if any.
//
// Implements the pathmatch MetricsRecorder interface.
func (r *Recorder) RecordCompile(elapsed time.Duration, cacheHit bool, err error) {
	if !r.enabled {
		return
	}

	attrs := r.compileAttrs[boolIndex(cacheHit)][boolIndex(err != nil)]
	ctx := context.Background()

	r.compileDuration.Record(ctx, elapsed.Seconds(), attrs)
	r.compileCount.Add(ctx, 1, attrs)
}

// RecordMatch records a single match attempt. matched reports whether the
// path satisfied the pattern, and cacheHit whether the result was served
// from the match cache.
//
// Implements the pathmatch MetricsRecorder interface.
func (r *Recorder) RecordMatch(elapsed time.Duration, matched, cacheHit bool) {
	if !r.enabled {
		return
	}

	attrs := r.matchAttrs[boolIndex(cacheHit)][boolIndex(matched)]
	ctx := context.Background()

	r.matchDuration.Record(ctx, elapsed.Seconds(), attrs)
	r.matchCount.Add(ctx, 1, attrs)
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
