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

package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strata-db/strata/pkg/datatype"
	"github.com/strata-db/strata/pkg/util/serr"
)

func intDim(name string, lo, hi int32) Dimension {
	return Dimension{Name: name, Type: datatype.Int32, Domain: NewRange(lo, hi)}
}

func TestCheckRange(t *testing.T) {
	d := intDim("rows", 0, 100)

	assert.NoError(t, d.CheckRange(NewRange[int32](10, 20)))
	assert.NoError(t, d.CheckRange(NewRange[int32](0, 100)))

	err := d.CheckRange(NewRange[int32](20, 10))
	assert.ErrorIs(t, err, serr.ErrRangeInvalid)

	err = d.CheckRange(NewRange[int32](90, 101))
	assert.ErrorIs(t, err, serr.ErrRangeOutOfBounds)
	err = d.CheckRange(NewRange[int32](-1, 5))
	assert.ErrorIs(t, err, serr.ErrRangeOutOfBounds)

	err = d.CheckRange(NewRange[int64](10, 20))
	assert.ErrorIs(t, err, serr.ErrDimensionMismatch)

	err = d.CheckRange(NewStringRange("a", "b"))
	assert.ErrorIs(t, err, serr.ErrParameterInvalid)

	err = d.CheckRange(Range{})
	assert.ErrorIs(t, err, serr.ErrParameterInvalid)
}

func TestCheckRangeString(t *testing.T) {
	d := Dimension{Name: "key", Type: datatype.StringASCII}

	assert.NoError(t, d.CheckRange(NewStringRange("aa", "zz")))
	assert.NoError(t, d.CheckRange(NewStringRange("cat", "cat")))

	err := d.CheckRange(NewStringRange("zz", "aa"))
	assert.ErrorIs(t, err, serr.ErrRangeInvalid)

	err = d.CheckRange(NewRange[uint8](1, 2))
	assert.ErrorIs(t, err, serr.ErrParameterInvalid)
}

func TestCheckRangeDatetime(t *testing.T) {
	// Datetime dimensions store int64 ticks regardless of resolution.
	d := Dimension{Name: "ts", Type: datatype.DateTimeMS, Domain: NewRange[int64](0, 1_700_000_000_000)}
	assert.NoError(t, d.CheckRange(NewRange[int64](100, 200)))
	assert.ErrorIs(t, d.CheckRange(NewRange[int32](100, 200)), serr.ErrDimensionMismatch)
}

func TestOverlaps(t *testing.T) {
	d := intDim("rows", 0, 1000)

	assert.True(t, d.Overlaps(NewRange[int32](1, 10), NewRange[int32](5, 20)))
	assert.True(t, d.Overlaps(NewRange[int32](5, 20), NewRange[int32](1, 10)))
	// Closed intervals touch at a shared endpoint.
	assert.True(t, d.Overlaps(NewRange[int32](1, 10), NewRange[int32](10, 20)))
	assert.False(t, d.Overlaps(NewRange[int32](1, 10), NewRange[int32](11, 20)))

	s := Dimension{Name: "key", Type: datatype.StringUTF8}
	assert.True(t, s.Overlaps(NewStringRange("aa", "cc"), NewStringRange("bb", "dd")))
	assert.False(t, s.Overlaps(NewStringRange("aa", "cc"), NewStringRange("cd", "dd")))
}

func TestRangeCellNum(t *testing.T) {
	i8 := Dimension{Name: "d", Type: datatype.Int8}
	assert.EqualValues(t, 256, i8.RangeCellNum(NewRange[int8](-128, 127)))
	assert.EqualValues(t, 1, i8.RangeCellNum(NewRange[int8](5, 5)))

	i64 := Dimension{Name: "d", Type: datatype.Int64}
	assert.EqualValues(t, uint64(math.MaxUint64),
		i64.RangeCellNum(NewRange[int64](math.MinInt64, math.MaxInt64)))
	assert.EqualValues(t, 11, i64.RangeCellNum(NewRange[int64](-5, 5)))

	u64 := Dimension{Name: "d", Type: datatype.Uint64}
	assert.EqualValues(t, uint64(math.MaxUint64),
		u64.RangeCellNum(NewRange[uint64](0, math.MaxUint64)))
	assert.EqualValues(t, uint64(math.MaxUint64),
		u64.RangeCellNum(NewRange[uint64](1, math.MaxUint64)))

	ts := Dimension{Name: "d", Type: datatype.TimeNS}
	assert.EqualValues(t, 1001, ts.RangeCellNum(NewRange[int64](0, 1000)))

	f := Dimension{Name: "d", Type: datatype.Float32}
	assert.EqualValues(t, uint64(math.MaxUint64), f.RangeCellNum(NewRange[float32](0, 1)))

	s := Dimension{Name: "d", Type: datatype.StringASCII}
	assert.EqualValues(t, uint64(math.MaxUint64), s.RangeCellNum(NewStringRange("a", "b")))
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "[-3, 14]", FormatRange(datatype.Int16, NewRange[int16](-3, 14)))
	assert.Equal(t, "[0.5, 2.5]", FormatRange(datatype.Float64, NewRange[float64](0.5, 2.5)))
	assert.Equal(t, `["ax", "bird"]`, FormatRange(datatype.StringUTF8, NewStringRange("ax", "bird")))
	assert.Equal(t, "[]", FormatRange(datatype.Int32, Range{}))
}

func TestNewDomain(t *testing.T) {
	dom, err := NewDomain(
		intDim("rows", 0, 99),
		Dimension{Name: "cols", Type: datatype.Uint64, Domain: NewRange[uint64](0, 9)},
		Dimension{Name: "key", Type: datatype.StringASCII},
	)
	require.NoError(t, err)
	assert.EqualValues(t, 3, dom.DimNum())
	assert.Equal(t, "cols", dom.Dimension(1).Name)
	assert.Len(t, dom.Dimensions(), 3)

	idx, ok := dom.FindDimension("key")
	assert.True(t, ok)
	assert.EqualValues(t, 2, idx)
	_, ok = dom.FindDimension("missing")
	assert.False(t, ok)
}

func TestNewDomainRejects(t *testing.T) {
	_, err := NewDomain()
	assert.ErrorIs(t, err, serr.ErrParameterInvalid)

	_, err = NewDomain(Dimension{Type: datatype.Int32, Domain: NewRange[int32](0, 1)})
	assert.ErrorIs(t, err, serr.ErrParameterInvalid)

	_, err = NewDomain(intDim("a", 0, 9), intDim("a", 0, 9))
	assert.ErrorIs(t, err, serr.ErrParameterInvalid)

	// Fixed-width dimensions need domain bounds.
	_, err = NewDomain(Dimension{Name: "rows", Type: datatype.Int32})
	assert.Error(t, err)

	// String dimensions are unbounded.
	_, err = NewDomain(Dimension{Name: "key", Type: datatype.StringUTF8, Domain: NewStringRange("a", "z")})
	assert.ErrorIs(t, err, serr.ErrParameterInvalid)

	_, err = NewDomain(Dimension{Name: "rows", Type: datatype.Datatype(200), Domain: NewRange[int32](0, 1)})
	assert.ErrorIs(t, err, serr.ErrDatatypeInvalid)

	// Reversed domain bounds.
	_, err = NewDomain(intDim("rows", 9, 0))
	assert.ErrorIs(t, err, serr.ErrRangeInvalid)
}
