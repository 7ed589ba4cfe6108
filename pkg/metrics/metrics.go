// Licensed to the Strata project under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. The Strata project licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics exposes the engine's Prometheus collectors. Embedders call
// Register with their registry; nothing is registered implicitly.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	strataNamespace = "strata"

	querySubsystem    = "query"
	fragmentSubsystem = "fragment"

	datatypeLabelName = "datatype"
)

// buckets involves durations in milliseconds,
// [1ms, 2ms, 4ms, 8ms, 16ms, 32ms, 64ms, 128ms, 256ms, 512ms, 1.024s, 2.048s, 4.096s, 8.192s, 16.384s, 32.768s, 65.536s]
var buckets = prometheus.ExponentialBuckets(1, 2, 17)

var (
	// QueryRangesAddedTotal counts ranges accepted by subarray dimensions.
	QueryRangesAddedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: strataNamespace,
			Subsystem: querySubsystem,
			Name:      "ranges_added_total",
			Help:      "Total number of ranges added to subarray dimensions",
		}, []string{
			datatypeLabelName,
		},
	)

	// QueryRangesCoalescedTotal counts added ranges absorbed into their
	// predecessor instead of extending the list.
	QueryRangesCoalescedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: strataNamespace,
			Subsystem: querySubsystem,
			Name:      "ranges_coalesced_total",
			Help:      "Total number of added ranges merged into the previous range",
		}, []string{
			datatypeLabelName,
		},
	)

	// QuerySortRangesLatency tracks per-dimension range sort latency.
	QuerySortRangesLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: strataNamespace,
			Subsystem: querySubsystem,
			Name:      "sort_ranges_latency",
			Help:      "Latency in milliseconds of sorting one dimension's ranges",
			Buckets:   buckets,
		}, []string{
			datatypeLabelName,
		},
	)

	// ComputePoolSize reports the worker count of the shared compute pool.
	ComputePoolSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: strataNamespace,
			Subsystem: querySubsystem,
			Name:      "compute_pool_size",
			Help:      "Worker count of the shared compute pool",
		},
	)

	// FragmentsSelectedTotal counts fragments kept by query selection.
	FragmentsSelectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: strataNamespace,
			Subsystem: fragmentSubsystem,
			Name:      "selected_total",
			Help:      "Total number of fragments overlapping a query subarray",
		},
	)

	// FragmentsPrunedTotal counts fragments discarded by query selection.
	FragmentsPrunedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: strataNamespace,
			Subsystem: fragmentSubsystem,
			Name:      "pruned_total",
			Help:      "Total number of fragments pruned before read",
		},
	)
)

// RegisterQuery registers the query path collectors.
func RegisterQuery(registry *prometheus.Registry) {
	registry.MustRegister(QueryRangesAddedTotal)
	registry.MustRegister(QueryRangesCoalescedTotal)
	registry.MustRegister(QuerySortRangesLatency)
	registry.MustRegister(ComputePoolSize)
}

// RegisterFragment registers the fragment selection collectors.
func RegisterFragment(registry *prometheus.Registry) {
	registry.MustRegister(FragmentsSelectedTotal)
	registry.MustRegister(FragmentsPrunedTotal)
}

// Register registers every engine collector.
func Register(registry *prometheus.Registry) {
	RegisterQuery(registry)
	RegisterFragment(registry)
}
