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
	"fmt"
	"math"

	"github.com/strata-db/strata/internal/domain"
	"github.com/strata-db/strata/pkg/datatype"
)

// NewRangeSubset builds a range accumulator for one dimension. isDefault
// seeds the whole-domain state, coalesce requests contiguous-merge on add
// for integral datatypes.
func NewRangeSubset(dt datatype.Datatype, fullRange domain.Range, isDefault, coalesce bool) RangeManager {
	return makeSubset(dt, fullRange, isDefault, true, coalesce)
}

// NewDefaultRangeManager builds a Default-state manager holding exactly the
// domain bounds.
func NewDefaultRangeManager(dt datatype.Datatype, bounds domain.Range) RangeManager {
	return makeSubset(dt, bounds, true, false, false)
}

// NewRangeManager builds an Explicit-state manager with the requested
// multiplicity and coalesce policies and an empty range list.
func NewRangeManager(dt datatype.Datatype, bounds domain.Range, allowMultiple, coalesce bool) RangeManager {
	return makeSubset(dt, bounds, false, allowMultiple, coalesce)
}

// makeSubset dispatches the datatype tag to the concrete instantiation.
// Every datetime and time resolution shares the int64 instantiation, all
// string encodings share the byte-string one, ANY is opaque uint8 and CHAR
// is int8 with sorting disabled. The enumeration is closed, an unhandled
// tag is a configuration fault and panics.
func makeSubset(dt datatype.Datatype, bounds domain.Range, isDefault, allowMultiple, coalesce bool) RangeManager {
	switch dt {
	case datatype.Int8:
		return newIntegerSubset[int8](bounds, isDefault, allowMultiple, coalesce, math.MaxInt8)
	case datatype.Int16:
		return newIntegerSubset[int16](bounds, isDefault, allowMultiple, coalesce, math.MaxInt16)
	case datatype.Int32:
		return newIntegerSubset[int32](bounds, isDefault, allowMultiple, coalesce, math.MaxInt32)
	case datatype.Int64:
		return newIntegerSubset[int64](bounds, isDefault, allowMultiple, coalesce, math.MaxInt64)
	case datatype.Uint8:
		return newIntegerSubset[uint8](bounds, isDefault, allowMultiple, coalesce, math.MaxUint8)
	case datatype.Uint16:
		return newIntegerSubset[uint16](bounds, isDefault, allowMultiple, coalesce, math.MaxUint16)
	case datatype.Uint32:
		return newIntegerSubset[uint32](bounds, isDefault, allowMultiple, coalesce, math.MaxUint32)
	case datatype.Uint64:
		return newIntegerSubset[uint64](bounds, isDefault, allowMultiple, coalesce, math.MaxUint64)
	case datatype.Float32:
		return newFloatSubset[float32](bounds, isDefault, allowMultiple)
	case datatype.Float64:
		return newFloatSubset[float64](bounds, isDefault, allowMultiple)
	case datatype.Char:
		return newCharSubset(bounds, isDefault, allowMultiple, coalesce)
	case datatype.StringASCII, datatype.StringUTF8, datatype.StringUTF16,
		datatype.StringUTF32, datatype.StringUCS2, datatype.StringUCS4:
		return newStringSubset(bounds, isDefault, allowMultiple)
	case datatype.DateTimeYear, datatype.DateTimeMonth, datatype.DateTimeWeek,
		datatype.DateTimeDay, datatype.DateTimeHR, datatype.DateTimeMin,
		datatype.DateTimeSec, datatype.DateTimeMS, datatype.DateTimeUS,
		datatype.DateTimeNS, datatype.DateTimePS, datatype.DateTimeFS,
		datatype.DateTimeAS:
		return newIntegerSubset[int64](bounds, isDefault, allowMultiple, coalesce, math.MaxInt64)
	case datatype.TimeHR, datatype.TimeMin, datatype.TimeSec, datatype.TimeMS,
		datatype.TimeUS, datatype.TimeNS, datatype.TimePS, datatype.TimeFS,
		datatype.TimeAS:
		return newIntegerSubset[int64](bounds, isDefault, allowMultiple, coalesce, math.MaxInt64)
	case datatype.Any:
		return newIntegerSubset[uint8](bounds, isDefault, allowMultiple, coalesce, math.MaxUint8)
	default:
		panic(fmt.Sprintf("unhandled datatype %v in range manager factory", dt))
	}
}
