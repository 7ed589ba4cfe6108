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

// Package datatype defines the closed set of physical cell datatypes the
// engine stores and queries. The set is closed: every dispatch site in the
// engine switches exhaustively over these tags and treats an unknown tag as
// a fatal configuration error.
package datatype

import (
	"fmt"

	"github.com/strata-db/strata/pkg/util/serr"
)

// Datatype tags the physical type of a single cell value.
type Datatype uint8

const (
	Int8 Datatype = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	// Char is a single-byte character cell. It behaves as a signed
	// integral type for range arithmetic but has no defined sort order.
	Char
	StringASCII
	StringUTF8
	StringUTF16
	StringUTF32
	StringUCS2
	StringUCS4
	DateTimeYear
	DateTimeMonth
	DateTimeWeek
	DateTimeDay
	DateTimeHR
	DateTimeMin
	DateTimeSec
	DateTimeMS
	DateTimeUS
	DateTimeNS
	DateTimePS
	DateTimeFS
	DateTimeAS
	TimeHR
	TimeMin
	TimeSec
	TimeMS
	TimeUS
	TimeNS
	TimePS
	TimeFS
	TimeAS
	// Any is an untyped byte cell, handled as uint8.
	Any
)

var datatypeNames = map[Datatype]string{
	Int8:          "INT8",
	Int16:         "INT16",
	Int32:         "INT32",
	Int64:         "INT64",
	Uint8:         "UINT8",
	Uint16:        "UINT16",
	Uint32:        "UINT32",
	Uint64:        "UINT64",
	Float32:       "FLOAT32",
	Float64:       "FLOAT64",
	Char:          "CHAR",
	StringASCII:   "STRING_ASCII",
	StringUTF8:    "STRING_UTF8",
	StringUTF16:   "STRING_UTF16",
	StringUTF32:   "STRING_UTF32",
	StringUCS2:    "STRING_UCS2",
	StringUCS4:    "STRING_UCS4",
	DateTimeYear:  "DATETIME_YEAR",
	DateTimeMonth: "DATETIME_MONTH",
	DateTimeWeek:  "DATETIME_WEEK",
	DateTimeDay:   "DATETIME_DAY",
	DateTimeHR:    "DATETIME_HR",
	DateTimeMin:   "DATETIME_MIN",
	DateTimeSec:   "DATETIME_SEC",
	DateTimeMS:    "DATETIME_MS",
	DateTimeUS:    "DATETIME_US",
	DateTimeNS:    "DATETIME_NS",
	DateTimePS:    "DATETIME_PS",
	DateTimeFS:    "DATETIME_FS",
	DateTimeAS:    "DATETIME_AS",
	TimeHR:        "TIME_HR",
	TimeMin:       "TIME_MIN",
	TimeSec:       "TIME_SEC",
	TimeMS:        "TIME_MS",
	TimeUS:        "TIME_US",
	TimeNS:        "TIME_NS",
	TimePS:        "TIME_PS",
	TimeFS:        "TIME_FS",
	TimeAS:        "TIME_AS",
	Any:           "ANY",
}

var datatypeValues = make(map[string]Datatype, len(datatypeNames))

func init() {
	for dt, name := range datatypeNames {
		datatypeValues[name] = dt
	}
}

func (d Datatype) String() string {
	if name, ok := datatypeNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DATATYPE(%d)", uint8(d))
}

// Parse resolves the canonical upper-case name of a datatype tag.
func Parse(name string) (Datatype, error) {
	dt, ok := datatypeValues[name]
	if !ok {
		return 0, serr.WrapErrParameterInvalid("a known datatype name", name)
	}
	return dt, nil
}

// Size returns the size in bytes of a single cell value. Variable-length
// string types report the size of one code unit.
func (d Datatype) Size() uint64 {
	switch d {
	case Int8, Uint8, Char, Any, StringASCII, StringUTF8:
		return 1
	case Int16, Uint16, StringUTF16, StringUCS2:
		return 2
	case Int32, Uint32, Float32, StringUTF32, StringUCS4:
		return 4
	case Int64, Uint64, Float64:
		return 8
	}
	if d.IsDateTime() || d.IsTime() {
		return 8
	}
	return 0
}

// IsValid reports whether d is one of the defined tags.
func (d Datatype) IsValid() bool {
	_, ok := datatypeNames[d]
	return ok
}

// IsInteger reports whether d is one of the eight fixed-width integer types.
// Char and Any are excluded even though they are stored as integral bytes.
func (d Datatype) IsInteger() bool {
	switch d {
	case Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64:
		return true
	}
	return false
}

// IsReal reports whether d is a floating-point type.
func (d Datatype) IsReal() bool {
	return d == Float32 || d == Float64
}

// IsString reports whether d is one of the variable-length string encodings.
func (d Datatype) IsString() bool {
	switch d {
	case StringASCII, StringUTF8, StringUTF16, StringUTF32, StringUCS2, StringUCS4:
		return true
	}
	return false
}

// IsDateTime reports whether d is a datetime resolution. Datetime values are
// stored as int64 counts of the resolution unit since the epoch.
func (d Datatype) IsDateTime() bool {
	return d >= DateTimeYear && d <= DateTimeAS
}

// IsTime reports whether d is a time-of-day resolution, stored as int64.
func (d Datatype) IsTime() bool {
	return d >= TimeHR && d <= TimeAS
}

// All returns every defined tag in declaration order.
func All() []Datatype {
	all := make([]Datatype, 0, len(datatypeNames))
	for d := Int8; d <= Any; d++ {
		all = append(all, d)
	}
	return all
}
