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

package fragment

import (
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/strata-db/strata/internal/domain"
	"github.com/strata-db/strata/internal/subarray"
	"github.com/strata-db/strata/pkg/log"
	"github.com/strata-db/strata/pkg/metrics"
)

// SelectFragments prunes a fragment list for one query. A fragment survives
// when its timestamp range intersects the open window and, on every
// dimension carrying explicit ranges, its non-empty domain intersects at
// least one of them. Fragments with malformed metadata are pruned.
func SelectFragments(sa *subarray.Subarray, frags []*Info, openStart, openEnd uint64) []*Info {
	selected := lo.Filter(frags, func(f *Info, _ int) bool {
		return intersectsQuery(sa, f, openStart, openEnd)
	})

	metrics.FragmentsSelectedTotal.Add(float64(len(selected)))
	metrics.FragmentsPrunedTotal.Add(float64(len(frags) - len(selected)))
	return selected
}

func intersectsQuery(sa *subarray.Subarray, f *Info, openStart, openEnd uint64) bool {
	if f.ID.TimestampStart > openEnd || f.ID.TimestampEnd < openStart {
		return false
	}
	if len(f.NonEmptyDomain) != int(sa.DimNum()) {
		log.Warn("pruning fragment with mismatched non-empty domain",
			zap.String("fragment", f.ID.Name()),
			zap.Int("got", len(f.NonEmptyDomain)),
			zap.Uint32("want", sa.DimNum()))
		return false
	}
	for d := uint32(0); d < sa.DimNum(); d++ {
		// Default dimensions select the whole domain, everything written
		// intersects them.
		if sa.IsDefault(d) {
			continue
		}
		if f.NonEmptyDomain[d].Empty() {
			return false
		}
		dim := sa.Domain().Dimension(d)
		hit := lo.SomeBy(sa.GetRanges(d), func(r domain.Range) bool {
			return dim.Overlaps(r, f.NonEmptyDomain[d])
		})
		if !hit {
			return false
		}
	}
	return true
}
