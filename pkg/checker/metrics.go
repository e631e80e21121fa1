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

package checker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog check metrics
	checkDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vertag_check_duration_seconds",
			Help:    "Time taken to check a complete catalog",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	checkTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vertag_checks_total",
			Help: "Total number of catalog check attempts",
		},
		[]string{"status"}, // success or error
	)

	checkComponentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vertag_check_components_total",
			Help: "Total number of per-component check outcomes",
		},
		[]string{"state"}, // current, older, newer, unknown
	)

	checkOutdatedCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vertag_check_outdated_components",
			Help: "Number of outdated components in the last check",
		},
	)

	// Watcher refresh metrics
	watcherRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vertag_watcher_refresh_total",
			Help: "Total number of scheduled catalog refresh attempts",
		},
		[]string{"status"}, // success or error
	)

	watcherLastRefresh = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vertag_watcher_last_refresh_timestamp_seconds",
			Help: "Unix timestamp of the last successful catalog refresh",
		},
	)
)
