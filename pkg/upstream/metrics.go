// Copyright (c) 2026, Fineswap.  All rights reserved.
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

package upstream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Release source lookup metrics
	upstreamLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vertag_upstream_lookup_duration_seconds",
			Help:    "Duration of upstream version lookups in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	upstreamLookups = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vertag_upstream_lookups_total",
			Help: "Total number of upstream version lookups",
		},
	)
	upstreamTagFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vertag_upstream_tag_fallbacks_total",
			Help: "Total number of lookups that fell back to tag scanning",
		},
	)
	upstreamFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vertag_upstream_failures_total",
			Help: "Total number of failed upstream version lookups",
		},
	)
)
