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

package datatype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatatypeNames(t *testing.T) {
	all := All()
	assert.Len(t, all, 40)

	for _, dt := range all {
		assert.True(t, dt.IsValid())
		name := dt.String()
		assert.NotContains(t, name, "DATATYPE(")

		parsed, err := Parse(name)
		assert.NoError(t, err)
		assert.Equal(t, dt, parsed)
	}

	assert.Equal(t, "DATETIME_YEAR", DateTimeYear.String())
	assert.Equal(t, "TIME_US", TimeUS.String())
	assert.Equal(t, "STRING_ASCII", StringASCII.String())

	_, err := Parse("VARCHAR")
	assert.Error(t, err)
	assert.False(t, Datatype(200).IsValid())
}

func TestDatatypeSize(t *testing.T) {
	cases := []struct {
		dt   Datatype
		size uint64
	}{
		{Int8, 1},
		{Uint64, 8},
		{Float32, 4},
		{Char, 1},
		{Any, 1},
		{StringASCII, 1},
		{StringUTF16, 2},
		{StringUCS4, 4},
		{DateTimeNS, 8},
		{TimeHR, 8},
	}
	for _, c := range cases {
		assert.Equal(t, c.size, c.dt.Size(), c.dt.String())
	}
}

func TestDatatypeClasses(t *testing.T) {
	assert.True(t, Uint32.IsInteger())
	assert.False(t, Char.IsInteger())
	assert.False(t, Any.IsInteger())
	assert.False(t, DateTimeDay.IsInteger())

	assert.True(t, Float64.IsReal())
	assert.False(t, Int64.IsReal())

	assert.True(t, StringUCS2.IsString())
	assert.False(t, Char.IsString())

	assert.True(t, DateTimeAS.IsDateTime())
	assert.False(t, TimeAS.IsDateTime())
	assert.True(t, TimeAS.IsTime())
	assert.False(t, DateTimeAS.IsTime())

	// Every tag lands in exactly one dispatch class.
	for _, dt := range All() {
		classes := 0
		for _, in := range []bool{
			dt.IsInteger(), dt.IsReal(), dt.IsString(),
			dt.IsDateTime(), dt.IsTime(),
			dt == Char, dt == Any,
		} {
			if in {
				classes++
			}
		}
		assert.Equal(t, 1, classes, dt.String())
	}
}
