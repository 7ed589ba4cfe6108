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

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	registry := prometheus.NewRegistry()
	assert.NotPanics(t, func() {
		Register(registry)
	})

	QueryRangesAddedTotal.WithLabelValues("INT32").Inc()
	QuerySortRangesLatency.WithLabelValues("INT32").Observe(3)
	ComputePoolSize.Set(8)
	FragmentsSelectedTotal.Add(2)

	families, err := registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)

	names := make(map[string]struct{}, len(families))
	for _, f := range families {
		names[f.GetName()] = struct{}{}
	}
	assert.Contains(t, names, "strata_query_ranges_added_total")
	assert.Contains(t, names, "strata_query_sort_ranges_latency")
	assert.Contains(t, names, "strata_query_compute_pool_size")
	assert.Contains(t, names, "strata_fragment_selected_total")
}
