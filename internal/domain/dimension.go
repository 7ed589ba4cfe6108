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
	"fmt"
	"math"
	"strconv"

	"github.com/strata-db/strata/pkg/datatype"
	"github.com/strata-db/strata/pkg/util/serr"
)

// scalarKind is the physical representation class behind a datatype tag.
// Every datetime and time resolution shares the int64 representation, CHAR
// maps to int8 and ANY to uint8.
type scalarKind uint8

const (
	kindInt8 scalarKind = iota
	kindInt16
	kindInt32
	kindInt64
	kindUint8
	kindUint16
	kindUint32
	kindUint64
	kindFloat32
	kindFloat64
	kindBytes
)

func kindOf(dt datatype.Datatype) scalarKind {
	switch {
	case dt == datatype.Char:
		return kindInt8
	case dt == datatype.Any:
		return kindUint8
	case dt.IsString():
		return kindBytes
	case dt.IsDateTime() || dt.IsTime():
		return kindInt64
	}
	switch dt {
	case datatype.Int8:
		return kindInt8
	case datatype.Int16:
		return kindInt16
	case datatype.Int32:
		return kindInt32
	case datatype.Int64:
		return kindInt64
	case datatype.Uint8:
		return kindUint8
	case datatype.Uint16:
		return kindUint16
	case datatype.Uint32:
		return kindUint32
	case datatype.Uint64:
		return kindUint64
	case datatype.Float32:
		return kindFloat32
	case datatype.Float64:
		return kindFloat64
	default:
		panic(fmt.Sprintf("unexpected datatype %v", dt))
	}
}

// Dimension describes one axis of an array domain.
type Dimension struct {
	Name string
	Type datatype.Datatype
	// Domain bounds all ranges on this dimension. Empty for string
	// dimensions, which are unbounded.
	Domain Range
}

// CheckRange validates a range against the dimension: bound order for every
// type, stored width and domain containment for fixed-width types.
func (d Dimension) CheckRange(r Range) error {
	if r.Empty() {
		return serr.WrapErrParameterInvalidMsg("empty range on dimension %s", d.Name)
	}
	if kindOf(d.Type) == kindBytes {
		if !r.VarSized() {
			return serr.WrapErrParameterInvalidMsg("fixed-width range on string dimension %s", d.Name)
		}
		if r.StartStr() > r.EndStr() {
			return serr.WrapErrRangeInvalid(r.StartStr(), r.EndStr())
		}
		return nil
	}
	if r.VarSized() {
		return serr.WrapErrParameterInvalidMsg("variable-sized range on dimension %s", d.Name)
	}
	if want := 2 * int(d.Type.Size()); want != int(r.Size()) {
		return serr.WrapErrDimensionMismatch(
			strconv.Itoa(want), strconv.FormatUint(r.Size(), 10),
			"range byte width on dimension "+d.Name)
	}
	switch kindOf(d.Type) {
	case kindInt8:
		return checkFixedRange[int8](d, r)
	case kindInt16:
		return checkFixedRange[int16](d, r)
	case kindInt32:
		return checkFixedRange[int32](d, r)
	case kindInt64:
		return checkFixedRange[int64](d, r)
	case kindUint8:
		return checkFixedRange[uint8](d, r)
	case kindUint16:
		return checkFixedRange[uint16](d, r)
	case kindUint32:
		return checkFixedRange[uint32](d, r)
	case kindUint64:
		return checkFixedRange[uint64](d, r)
	case kindFloat32:
		return checkFixedRange[float32](d, r)
	case kindFloat64:
		return checkFixedRange[float64](d, r)
	default:
		panic(fmt.Sprintf("unexpected datatype %v", d.Type))
	}
}

func checkFixedRange[T Scalar](d Dimension, r Range) error {
	start, end := RangeStart[T](r), RangeEnd[T](r)
	if start > end {
		return serr.WrapErrRangeInvalid(formatScalar(start), formatScalar(end))
	}
	if d.Domain.Empty() {
		return nil
	}
	if start < RangeStart[T](d.Domain) || end > RangeEnd[T](d.Domain) {
		return serr.WrapErrRangeOutOfBounds(
			FormatRange(d.Type, r), FormatRange(d.Type, d.Domain))
	}
	return nil
}

// Overlaps reports whether two ranges on this dimension intersect. Both
// ranges are assumed valid for the dimension.
func (d Dimension) Overlaps(a, b Range) bool {
	switch kindOf(d.Type) {
	case kindInt8:
		return overlaps[int8](a, b)
	case kindInt16:
		return overlaps[int16](a, b)
	case kindInt32:
		return overlaps[int32](a, b)
	case kindInt64:
		return overlaps[int64](a, b)
	case kindUint8:
		return overlaps[uint8](a, b)
	case kindUint16:
		return overlaps[uint16](a, b)
	case kindUint32:
		return overlaps[uint32](a, b)
	case kindUint64:
		return overlaps[uint64](a, b)
	case kindFloat32:
		return overlaps[float32](a, b)
	case kindFloat64:
		return overlaps[float64](a, b)
	case kindBytes:
		return a.StartStr() <= b.EndStr() && b.StartStr() <= a.EndStr()
	default:
		panic(fmt.Sprintf("unexpected datatype %v", d.Type))
	}
}

func overlaps[T Scalar](a, b Range) bool {
	return RangeStart[T](a) <= RangeEnd[T](b) && RangeStart[T](b) <= RangeEnd[T](a)
}

// RangeCellNum returns the number of cells a range covers on this dimension.
// Only integral types have a countable extent; real and string dimensions
// report MaxUint64. Integral extents saturate at MaxUint64 on overflow.
func (d Dimension) RangeCellNum(r Range) uint64 {
	switch kindOf(d.Type) {
	case kindInt8:
		return signedExtent(int64(RangeStart[int8](r)), int64(RangeEnd[int8](r)))
	case kindInt16:
		return signedExtent(int64(RangeStart[int16](r)), int64(RangeEnd[int16](r)))
	case kindInt32:
		return signedExtent(int64(RangeStart[int32](r)), int64(RangeEnd[int32](r)))
	case kindInt64:
		return signedExtent(RangeStart[int64](r), RangeEnd[int64](r))
	case kindUint8:
		return unsignedExtent(uint64(RangeStart[uint8](r)), uint64(RangeEnd[uint8](r)))
	case kindUint16:
		return unsignedExtent(uint64(RangeStart[uint16](r)), uint64(RangeEnd[uint16](r)))
	case kindUint32:
		return unsignedExtent(uint64(RangeStart[uint32](r)), uint64(RangeEnd[uint32](r)))
	case kindUint64:
		return unsignedExtent(RangeStart[uint64](r), RangeEnd[uint64](r))
	default:
		return math.MaxUint64
	}
}

func signedExtent(start, end int64) uint64 {
	// end >= start holds for validated ranges, the difference always fits
	// in uint64.
	n := uint64(end) - uint64(start)
	if n == math.MaxUint64 {
		return math.MaxUint64
	}
	return n + 1
}

func unsignedExtent(start, end uint64) uint64 {
	n := end - start
	if n == math.MaxUint64 {
		return math.MaxUint64
	}
	return n + 1
}

// FormatRange renders a range with bounds typed per dt, for logs and errors.
func FormatRange(dt datatype.Datatype, r Range) string {
	if r.Empty() {
		return "[]"
	}
	switch kindOf(dt) {
	case kindInt8:
		return formatFixed[int8](r)
	case kindInt16:
		return formatFixed[int16](r)
	case kindInt32:
		return formatFixed[int32](r)
	case kindInt64:
		return formatFixed[int64](r)
	case kindUint8:
		return formatFixed[uint8](r)
	case kindUint16:
		return formatFixed[uint16](r)
	case kindUint32:
		return formatFixed[uint32](r)
	case kindUint64:
		return formatFixed[uint64](r)
	case kindFloat32:
		return formatFixed[float32](r)
	case kindFloat64:
		return formatFixed[float64](r)
	case kindBytes:
		return fmt.Sprintf("[%q, %q]", r.StartStr(), r.EndStr())
	default:
		panic(fmt.Sprintf("unexpected datatype %v", dt))
	}
}

func formatFixed[T Scalar](r Range) string {
	return fmt.Sprintf("[%s, %s]", formatScalar(RangeStart[T](r)), formatScalar(RangeEnd[T](r)))
}

func formatScalar[T Scalar](v T) string {
	switch v := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%d", v)
	}
}

// Domain is an ordered set of dimensions with unique names.
type Domain struct {
	dims    []Dimension
	indexes map[string]uint32
}

// NewDomain validates the dimensions and builds a domain. Fixed-width
// dimensions must carry well-formed bounds, string dimensions must not.
func NewDomain(dims ...Dimension) (*Domain, error) {
	if len(dims) == 0 {
		return nil, serr.WrapErrParameterInvalid("at least one dimension", "none")
	}
	indexes := make(map[string]uint32, len(dims))
	for i, d := range dims {
		if d.Name == "" {
			return nil, serr.WrapErrParameterInvalidMsg("dimension %d has no name", i)
		}
		if !d.Type.IsValid() {
			return nil, serr.WrapErrDatatypeInvalid(d.Type, "dimension "+d.Name)
		}
		if _, ok := indexes[d.Name]; ok {
			return nil, serr.WrapErrParameterInvalidMsg("duplicate dimension name %s", d.Name)
		}
		if kindOf(d.Type) == kindBytes {
			if !d.Domain.Empty() {
				return nil, serr.WrapErrParameterInvalidMsg(
					"string dimension %s cannot carry domain bounds", d.Name)
			}
		} else if err := d.CheckRange(d.Domain); err != nil {
			return nil, err
		}
		indexes[d.Name] = uint32(i)
	}
	cp := make([]Dimension, len(dims))
	copy(cp, dims)
	return &Domain{dims: cp, indexes: indexes}, nil
}

// DimNum returns the number of dimensions.
func (dom *Domain) DimNum() uint32 {
	return uint32(len(dom.dims))
}

// Dimension returns the dimension at idx. Panics when idx is out of range.
func (dom *Domain) Dimension(idx uint32) Dimension {
	return dom.dims[idx]
}

// Dimensions returns the dimensions in order. The slice is owned by the
// domain and must not be modified.
func (dom *Domain) Dimensions() []Dimension {
	return dom.dims
}

// FindDimension resolves a dimension index by name.
func (dom *Domain) FindDimension(name string) (uint32, bool) {
	idx, ok := dom.indexes[name]
	return idx, ok
}
