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

// Package subarray normalizes a query's per-dimension range constraints
// into canonical, type-dispatched range lists and computes the flattened
// range addressing the read path iterates.
package subarray

import (
	"context"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/strata-db/strata/internal/compute"
	"github.com/strata-db/strata/internal/domain"
	"github.com/strata-db/strata/pkg/log"
	"github.com/strata-db/strata/pkg/metrics"
	"github.com/strata-db/strata/pkg/util/conc"
	"github.com/strata-db/strata/pkg/util/paramtable"
	"github.com/strata-db/strata/pkg/util/serr"
)

// Layout fixes the iteration order of result cells and flattened ranges.
type Layout uint8

const (
	// RowMajor varies the last dimension fastest.
	RowMajor Layout = iota
	// ColMajor varies the first dimension fastest.
	ColMajor
	// GlobalOrder follows the on-disk tile order and admits at most one
	// range per dimension.
	GlobalOrder
	// Unordered leaves the result order unspecified.
	Unordered
)

func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	case GlobalOrder:
		return "global-order"
	case Unordered:
		return "unordered"
	default:
		return fmt.Sprintf("LAYOUT(%d)", uint8(l))
	}
}

// Subarray is the selected sub-region of one query: one range accumulator
// per dimension plus the result layout. Not safe for concurrent mutation,
// one goroutine builds up a query's constraints.
type Subarray struct {
	domain   *domain.Domain
	layout   Layout
	coalesce bool
	subsets  []RangeManager
}

// Option configures a Subarray at construction.
type Option func(*Subarray)

// WithLayout sets the result layout. Default is Unordered.
func WithLayout(l Layout) Option {
	return func(sa *Subarray) {
		sa.layout = l
	}
}

// WithCoalesce overrides the configured coalesce-on-add policy.
func WithCoalesce(coalesce bool) Option {
	return func(sa *Subarray) {
		sa.coalesce = coalesce
	}
}

// New builds a subarray covering the whole domain: every dimension starts
// in the default whole-domain state. The coalesce policy defaults from
// config (query.coalesceRanges).
func New(dom *domain.Domain, opts ...Option) *Subarray {
	paramtable.Init()
	sa := &Subarray{
		domain:   dom,
		layout:   Unordered,
		coalesce: paramtable.Get().QueryCfg.CoalesceRanges.GetAsBool(),
	}
	for _, opt := range opts {
		opt(sa)
	}
	sa.subsets = make([]RangeManager, 0, dom.DimNum())
	for _, dim := range dom.Dimensions() {
		sa.subsets = append(sa.subsets, NewRangeSubset(dim.Type, dim.Domain, true, sa.coalesce))
	}
	return sa
}

// Domain returns the domain the subarray selects from.
func (sa *Subarray) Domain() *domain.Domain {
	return sa.domain
}

// Layout returns the configured result layout.
func (sa *Subarray) Layout() Layout {
	return sa.layout
}

// DimNum returns the number of dimensions.
func (sa *Subarray) DimNum() uint32 {
	return sa.domain.DimNum()
}

// AddRange validates a range and inserts it on the given dimension. This is
// the checked path upstream of RangeManager.AddRangeUnsafe: dimension index,
// bound order, byte width and domain containment are verified here, and
// global-order layouts are held to a single range per dimension.
func (sa *Subarray) AddRange(dimIdx uint32, r domain.Range) error {
	if dimIdx >= sa.domain.DimNum() {
		return serr.WrapErrDimensionNotFound(dimIdx)
	}
	dim := sa.domain.Dimension(dimIdx)
	if err := dim.CheckRange(r); err != nil {
		return err
	}
	subset := sa.subsets[dimIdx]
	if sa.layout == GlobalOrder && subset.IsSet() {
		return serr.WrapErrRangeNumLimitExceeded(subset.NumRanges()+1, 1,
			"global-order layout admits one range per dimension")
	}
	before, wasDefault := subset.NumRanges(), subset.IsDefault()
	subset.AddRangeUnsafe(r)

	metrics.QueryRangesAddedTotal.WithLabelValues(dim.Type.String()).Inc()
	if !wasDefault && subset.NumRanges() == before {
		metrics.QueryRangesCoalescedTotal.WithLabelValues(dim.Type.String()).Inc()
	}
	return nil
}

// AddRangeByName resolves the dimension by name before AddRange.
func (sa *Subarray) AddRangeByName(name string, r domain.Range) error {
	dimIdx, ok := sa.domain.FindDimension(name)
	if !ok {
		return serr.WrapErrDimensionNotFound(name)
	}
	return sa.AddRange(dimIdx, r)
}

// AddDimensionRange is typed sugar over AddRange for fixed-width dimensions.
func AddDimensionRange[T domain.Scalar](sa *Subarray, dimIdx uint32, start, end T) error {
	return sa.AddRange(dimIdx, domain.NewRange(start, end))
}

// AddStringRange is sugar over AddRange for string dimensions.
func (sa *Subarray) AddStringRange(dimIdx uint32, start, end string) error {
	return sa.AddRange(dimIdx, domain.NewStringRange(start, end))
}

// NumRanges returns the range count on one dimension.
func (sa *Subarray) NumRanges(dimIdx uint32) uint64 {
	return sa.subsets[dimIdx].NumRanges()
}

// GetRange returns range i of one dimension. Panics when i is out of range.
func (sa *Subarray) GetRange(dimIdx uint32, i uint64) domain.Range {
	return sa.subsets[dimIdx].GetRange(i)
}

// GetRanges returns one dimension's ranges. The slice is owned by the
// subarray and must not be modified.
func (sa *Subarray) GetRanges(dimIdx uint32) []domain.Range {
	return sa.subsets[dimIdx].GetRanges()
}

// IsDefault reports whether a dimension still selects its whole domain.
func (sa *Subarray) IsDefault(dimIdx uint32) bool {
	return sa.subsets[dimIdx].IsDefault()
}

// IsSet reports whether a dimension carries explicit ranges.
func (sa *Subarray) IsSet(dimIdx uint32) bool {
	return sa.subsets[dimIdx].IsSet()
}

// IsUnary reports whether every dimension selects a single point.
func (sa *Subarray) IsUnary() bool {
	return lo.EveryBy(sa.subsets, func(s RangeManager) bool {
		return s.IsUnary()
	})
}

// RangeNum returns the flattened count of per-dimension range combinations,
// erroring when the product overflows uint64.
func (sa *Subarray) RangeNum() (uint64, error) {
	num := uint64(1)
	for _, s := range sa.subsets {
		hi, lo64 := bits.Mul64(num, s.NumRanges())
		if hi != 0 {
			return 0, serr.WrapErrSubarrayInvalid("range combination count overflows uint64")
		}
		num = lo64
	}
	return num, nil
}

// GetRangeCoords decomposes a flattened range index into per-dimension
// range indexes in the layout's iteration order. Column-major varies the
// first dimension fastest; every other layout decomposes row-major.
func (sa *Subarray) GetRangeCoords(flatIdx uint64) ([]uint64, error) {
	total, err := sa.RangeNum()
	if err != nil {
		return nil, err
	}
	if flatIdx >= total {
		return nil, serr.WrapErrParameterInvalid(
			fmt.Sprintf("range index below %d", total),
			strconv.FormatUint(flatIdx, 10))
	}
	coords := make([]uint64, len(sa.subsets))
	if sa.layout == ColMajor {
		for i := range sa.subsets {
			n := sa.subsets[i].NumRanges()
			coords[i] = flatIdx % n
			flatIdx /= n
		}
	} else {
		for i := len(sa.subsets) - 1; i >= 0; i-- {
			n := sa.subsets[i].NumRanges()
			coords[i] = flatIdx % n
			flatIdx /= n
		}
	}
	return coords, nil
}

// GetRangeByCoords returns the per-dimension ranges addressed by coords.
func (sa *Subarray) GetRangeByCoords(coords []uint64) ([]domain.Range, error) {
	if len(coords) != len(sa.subsets) {
		return nil, serr.WrapErrDimensionMismatch(len(sa.subsets), len(coords), "coordinate arity")
	}
	out := make([]domain.Range, len(coords))
	for i, c := range coords {
		if c >= sa.subsets[i].NumRanges() {
			return nil, serr.WrapErrParameterInvalid(
				fmt.Sprintf("range index below %d on dimension %d", sa.subsets[i].NumRanges(), i),
				strconv.FormatUint(c, 10))
		}
		out[i] = sa.subsets[i].GetRange(c)
	}
	return out, nil
}

// CellNum returns the number of result cells the addressed range
// combination covers. Dimensions without a countable extent (real and
// string types) drive the result to MaxUint64, and integral products
// saturate there on overflow.
func (sa *Subarray) CellNum(coords []uint64) (uint64, error) {
	ranges, err := sa.GetRangeByCoords(coords)
	if err != nil {
		return 0, err
	}
	cells := uint64(1)
	for i, r := range ranges {
		hi, lo64 := bits.Mul64(cells, sa.domain.Dimension(uint32(i)).RangeCellNum(r))
		if hi != 0 {
			return math.MaxUint64, nil
		}
		cells = lo64
	}
	return cells, nil
}

// SortRanges sorts every dimension's range list, dimensions in parallel,
// each dimension's comparison sort on pool. A nil pool borrows the process
// compute pool. Returns the first failure, dimensions without an ordering
// always fail.
func (sa *Subarray) SortRanges(ctx context.Context, pool *conc.Pool[any]) error {
	if pool == nil {
		pool = compute.GetComputePool()
	}
	g, ctx := errgroup.WithContext(ctx)
	for i, subset := range sa.subsets {
		i, subset := i, subset
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dim := sa.domain.Dimension(uint32(i))
			start := time.Now()
			if err := subset.SortRanges(pool); err != nil {
				log.Warn("failed to sort dimension ranges",
					log.FieldDimension(uint32(i)),
					log.FieldDatatype(dim.Type.String()),
					zap.Error(err))
				return err
			}
			metrics.QuerySortRangesLatency.
				WithLabelValues(dim.Type.String()).
				Observe(float64(time.Since(start).Milliseconds()))
			return nil
		})
	}
	return g.Wait()
}
