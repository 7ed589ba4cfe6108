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
	"math"

	"github.com/strata-db/strata/internal/domain"
	"github.com/strata-db/strata/pkg/datatype"
	"github.com/strata-db/strata/pkg/util/conc"
)

// RangeManager accumulates the selected ranges for one dimension of one
// query. Implementations are not safe for concurrent mutation, the owning
// subarray serializes calls per dimension.
type RangeManager interface {
	// AddRangeUnsafe inserts a range under the resolved add policy. Bounds
	// and width validation against the dimension happen upstream, this
	// method trusts the caller.
	AddRangeUnsafe(r domain.Range)
	// GetRange returns the range at index i. i must be below NumRanges.
	GetRange(i uint64) domain.Range
	// GetRanges returns the accumulated ranges. The slice is owned by the
	// manager, callers must not modify it and must not hold it across
	// mutations.
	GetRanges() []domain.Range
	NumRanges() uint64
	IsEmpty() bool
	// IsDefault reports whether the dimension is still implicitly the whole
	// domain. It turns false on the first AddRangeUnsafe and never back.
	IsDefault() bool
	// IsSet reports whether at least one explicit range has been stored.
	IsSet() bool
	// IsUnary reports whether exactly one single-point range is stored.
	IsUnary() bool
	// AllowsMultipleRanges reports the configured multiplicity policy.
	// Enforcement is the caller's, layouts that restrict to one range
	// check before adding.
	AllowsMultipleRanges() bool
	// SortRanges orders the list under the resolved sort policy on the
	// given pool. Errors when the datatype has no ordering.
	SortRanges(pool *conc.Pool[any]) error
}

// RangeSubset is the concrete RangeManager. Both policies are resolved to
// plain functions at construction, no per-insert dispatch.
type RangeSubset struct {
	bounds        domain.Range
	isDefault     bool
	allowMultiple bool
	ranges        []domain.Range
	add           addFunc
	sort          sortFunc
}

var _ RangeManager = (*RangeSubset)(nil)

func newSubset(bounds domain.Range, isDefault, allowMultiple bool, add addFunc, sort sortFunc) *RangeSubset {
	s := &RangeSubset{
		bounds:        bounds,
		isDefault:     isDefault,
		allowMultiple: allowMultiple,
		add:           add,
		sort:          sort,
	}
	if isDefault {
		// Default state holds exactly the full range.
		s.ranges = []domain.Range{bounds}
	}
	return s
}

func newIntegerSubset[T integral](bounds domain.Range, isDefault, allowMultiple, coalesce bool, maxVal T) *RangeSubset {
	add := basicAdd
	if coalesce {
		add = coalescingAdd(maxVal)
	}
	return newSubset(bounds, isDefault, allowMultiple, add, numericSort[T]())
}

// newFloatSubset ignores the coalesce flag, floating-point adjacency is
// ill-defined so float ranges are only ever appended.
func newFloatSubset[T floating](bounds domain.Range, isDefault, allowMultiple bool) *RangeSubset {
	return newSubset(bounds, isDefault, allowMultiple, basicAdd, numericSort[T]())
}

func newStringSubset(bounds domain.Range, isDefault, allowMultiple bool) *RangeSubset {
	return newSubset(bounds, isDefault, allowMultiple, basicAdd, stringSort())
}

// newCharSubset coalesces like int8 but cannot sort, char dimensions carry
// opaque bytes with no meaningful order.
func newCharSubset(bounds domain.Range, isDefault, allowMultiple, coalesce bool) *RangeSubset {
	add := basicAdd
	if coalesce {
		add = coalescingAdd[int8](math.MaxInt8)
	}
	return newSubset(bounds, isDefault, allowMultiple, add, unsortableSort(datatype.Char))
}

func (s *RangeSubset) AddRangeUnsafe(r domain.Range) {
	if s.isDefault {
		s.ranges = s.ranges[:0]
		s.isDefault = false
	}
	s.ranges = s.add(s.ranges, r)
}

func (s *RangeSubset) GetRange(i uint64) domain.Range {
	return s.ranges[i]
}

func (s *RangeSubset) GetRanges() []domain.Range {
	return s.ranges
}

func (s *RangeSubset) NumRanges() uint64 {
	return uint64(len(s.ranges))
}

func (s *RangeSubset) IsEmpty() bool {
	return len(s.ranges) == 0
}

func (s *RangeSubset) IsDefault() bool {
	return s.isDefault
}

func (s *RangeSubset) IsSet() bool {
	return !s.isDefault && len(s.ranges) > 0
}

func (s *RangeSubset) IsUnary() bool {
	return len(s.ranges) == 1 && s.ranges[0].Unary()
}

func (s *RangeSubset) AllowsMultipleRanges() bool {
	return s.allowMultiple
}

func (s *RangeSubset) SortRanges(pool *conc.Pool[any]) error {
	return s.sort(pool, s.ranges)
}
