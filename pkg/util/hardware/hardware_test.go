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

package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCPUNum(t *testing.T) {
	assert.Greater(t, GetCPUNum(), 0)
}

func TestGetMemoryCount(t *testing.T) {
	total := GetMemoryCount()
	used := GetUsedMemoryCount()
	free := GetFreeMemoryCount()
	assert.Greater(t, total, uint64(0))
	assert.LessOrEqual(t, used, total)
	assert.LessOrEqual(t, free, total)
}
