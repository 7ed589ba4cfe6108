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

// Package domain holds the dimension model shared by the query and fragment
// layers: closed per-dimension ranges in their byte representation, and the
// typed helpers that validate and compare them per datatype.
package domain

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Scalar enumerates the fixed-width cell types a Range can carry.
type Scalar interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Range is a closed interval over one dimension, stored in wire form.
// Fixed-width ranges hold the start and end scalars back to back in one
// buffer; variable-sized ranges hold two byte strings split by startSize.
// The zero value is the empty range.
type Range struct {
	data      []byte
	startSize uint64
	varSized  bool
}

// NewRange builds a fixed-width range [start, end].
func NewRange[T Scalar](start, end T) Range {
	buf := make([]byte, 0, 2*sizeOfScalar[T]())
	buf = appendScalar(buf, start)
	buf = appendScalar(buf, end)
	return Range{data: buf}
}

// NewBytesRange builds a variable-sized range [start, end] over byte strings.
func NewBytesRange(start, end []byte) Range {
	data := make([]byte, 0, len(start)+len(end))
	data = append(data, start...)
	data = append(data, end...)
	return Range{data: data, startSize: uint64(len(start)), varSized: true}
}

// NewStringRange builds a variable-sized range [start, end] over strings.
func NewStringRange(start, end string) Range {
	return NewBytesRange([]byte(start), []byte(end))
}

// NewRangeFromBytes builds a fixed-width range from its wire form: two
// scalars of equal width back to back. Panics on an odd-sized buffer.
func NewRangeFromBytes(data []byte) Range {
	if len(data)%2 != 0 {
		panic(fmt.Sprintf("fixed range buffer of %d bytes cannot split into two scalars", len(data)))
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return Range{data: cp}
}

// Empty reports whether the range holds no data at all.
func (r Range) Empty() bool {
	return len(r.data) == 0
}

// VarSized reports whether the range bounds are byte strings.
func (r Range) VarSized() bool {
	return r.varSized
}

// Size returns the total byte size of both bounds.
func (r Range) Size() uint64 {
	return uint64(len(r.data))
}

// Unary reports whether the range covers exactly one value, start == end.
func (r Range) Unary() bool {
	if r.Empty() {
		return false
	}
	return bytes.Equal(r.StartBytes(), r.EndBytes())
}

// Equal reports whether two ranges have identical bounds and layout.
func (r Range) Equal(o Range) bool {
	return r.varSized == o.varSized &&
		r.startSize == o.startSize &&
		bytes.Equal(r.data, o.data)
}

// String renders the raw bounds for logs. The range does not know its
// datatype, typed rendering lives in FormatRange.
func (r Range) String() string {
	if r.Empty() {
		return "[empty]"
	}
	if r.varSized {
		return fmt.Sprintf("[%q, %q]", r.StartStr(), r.EndStr())
	}
	return fmt.Sprintf("[0x%x, 0x%x]", r.StartBytes(), r.EndBytes())
}

// StartBytes returns the raw start bound. The slice aliases the range
// storage and must not be modified.
func (r Range) StartBytes() []byte {
	if r.varSized {
		return r.data[:r.startSize]
	}
	return r.data[:len(r.data)/2]
}

// EndBytes returns the raw end bound. The slice aliases the range storage
// and must not be modified.
func (r Range) EndBytes() []byte {
	if r.varSized {
		return r.data[r.startSize:]
	}
	return r.data[len(r.data)/2:]
}

// StartStr returns the start bound of a variable-sized range.
func (r Range) StartStr() string {
	return string(r.StartBytes())
}

// EndStr returns the end bound of a variable-sized range.
func (r Range) EndStr() string {
	return string(r.EndBytes())
}

// RangeStart reads the typed start bound of a fixed-width range. Panics when
// the range is variable-sized or T does not match the stored width, a typed
// read through the wrong instantiation is a caller bug.
func RangeStart[T Scalar](r Range) T {
	checkTypedRead[T](r)
	return scalarAt[T](r.data)
}

// RangeEnd reads the typed end bound of a fixed-width range. Same contract
// as RangeStart.
func RangeEnd[T Scalar](r Range) T {
	checkTypedRead[T](r)
	return scalarAt[T](r.data[len(r.data)/2:])
}

// SetEnd overwrites the end bound of a fixed-width range in place.
func SetEnd[T Scalar](r *Range, end T) {
	checkTypedRead[T](*r)
	r.data = appendScalar(r.data[:len(r.data)/2], end)
}

func checkTypedRead[T Scalar](r Range) {
	if r.varSized {
		panic("typed read of a variable-sized range")
	}
	if want := 2 * sizeOfScalar[T](); want != len(r.data) {
		panic(fmt.Sprintf("range holds %d bytes, typed access needs %d", len(r.data), want))
	}
}

func sizeOfScalar[T Scalar]() int {
	var v T
	switch any(v).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	default:
		return 8
	}
}

func appendScalar[T Scalar](buf []byte, v T) []byte {
	switch v := any(v).(type) {
	case int8:
		return append(buf, byte(v))
	case uint8:
		return append(buf, v)
	case int16:
		return binary.LittleEndian.AppendUint16(buf, uint16(v))
	case uint16:
		return binary.LittleEndian.AppendUint16(buf, v)
	case int32:
		return binary.LittleEndian.AppendUint32(buf, uint32(v))
	case uint32:
		return binary.LittleEndian.AppendUint32(buf, v)
	case int64:
		return binary.LittleEndian.AppendUint64(buf, uint64(v))
	case uint64:
		return binary.LittleEndian.AppendUint64(buf, v)
	case float32:
		return binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	case float64:
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	default:
		panic("unreachable scalar type")
	}
}

func scalarAt[T Scalar](b []byte) T {
	var v T
	switch p := any(&v).(type) {
	case *int8:
		*p = int8(b[0])
	case *uint8:
		*p = b[0]
	case *int16:
		*p = int16(binary.LittleEndian.Uint16(b))
	case *uint16:
		*p = binary.LittleEndian.Uint16(b)
	case *int32:
		*p = int32(binary.LittleEndian.Uint32(b))
	case *uint32:
		*p = binary.LittleEndian.Uint32(b)
	case *int64:
		*p = int64(binary.LittleEndian.Uint64(b))
	case *uint64:
		*p = binary.LittleEndian.Uint64(b)
	case *float32:
		*p = math.Float32frombits(binary.LittleEndian.Uint32(b))
	case *float64:
		*p = math.Float64frombits(binary.LittleEndian.Uint64(b))
	}
	return v
}
