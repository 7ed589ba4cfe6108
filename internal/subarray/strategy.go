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

package subarray

import (
	"bytes"

	"golang.org/x/exp/constraints"

	"github.com/strata-db/strata/internal/domain"
	"github.com/strata-db/strata/pkg/datatype"
	"github.com/strata-db/strata/pkg/util/conc"
	"github.com/strata-db/strata/pkg/util/serr"
)

// integral covers the fixed-width integer representations a range can hold.
type integral interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// floating covers the floating-point representations.
type floating interface {
	float32 | float64
}

// addFunc inserts one range into the accumulated list and returns the new
// list. Resolved once at construction per datatype and coalesce policy.
type addFunc func(ranges []domain.Range, r domain.Range) []domain.Range

// sortFunc orders the accumulated list in place on the given pool. Resolved
// once at construction per datatype.
type sortFunc func(pool *conc.Pool[any], ranges []domain.Range) error

// basicAdd always appends.
func basicAdd(ranges []domain.Range, r domain.Range) []domain.Range {
	return append(ranges, r)
}

// coalescingAdd merges a new range into the last entry when the two are
// contiguous: last.end+1 == new.start, guarded against overflow at the type
// maximum. Only the last entry is inspected, the list is assumed to grow in
// ascending order. Out-of-order inserts stay separate until an explicit
// sort, which does not merge.
func coalescingAdd[T integral](maxVal T) addFunc {
	return func(ranges []domain.Range, r domain.Range) []domain.Range {
		if len(ranges) == 0 {
			return append(ranges, r)
		}
		last := &ranges[len(ranges)-1]
		if lastEnd := domain.RangeEnd[T](*last); lastEnd != maxVal && lastEnd+1 == domain.RangeStart[T](r) {
			domain.SetEnd(last, domain.RangeEnd[T](r))
			return ranges
		}
		return append(ranges, r)
	}
}

// rangeLess orders [aStart,aEnd] before [bStart,bEnd] ascending by start,
// ties broken by ascending end.
func rangeLess[T constraints.Ordered](aStart, aEnd, bStart, bEnd T) bool {
	if aStart != bStart {
		return aStart < bStart
	}
	return aEnd < bEnd
}

// numericSort orders by the typed start bound, ties by end, in parallel on
// the pool.
func numericSort[T domain.Scalar]() sortFunc {
	return func(pool *conc.Pool[any], ranges []domain.Range) error {
		if len(ranges) < 2 {
			return nil
		}
		return conc.ParallelSort(pool, ranges, func(a, b domain.Range) bool {
			return rangeLess(
				domain.RangeStart[T](a), domain.RangeEnd[T](a),
				domain.RangeStart[T](b), domain.RangeEnd[T](b))
		})
	}
}

// stringSort orders lexicographically by the start bytes, ties by the end
// bytes.
func stringSort() sortFunc {
	return func(pool *conc.Pool[any], ranges []domain.Range) error {
		if len(ranges) < 2 {
			return nil
		}
		return conc.ParallelSort(pool, ranges, func(a, b domain.Range) bool {
			if c := bytes.Compare(a.StartBytes(), b.StartBytes()); c != 0 {
				return c < 0
			}
			return bytes.Compare(a.EndBytes(), b.EndBytes()) < 0
		})
	}
}

// unsortableSort rejects every sort attempt, the datatype has no defined
// ordering. It fails even on lists that would not need reordering.
func unsortableSort(dt datatype.Datatype) sortFunc {
	return func(_ *conc.Pool[any], _ []domain.Range) error {
		return serr.WrapErrDatatypeUnsortable(dt.String())
	}
}
