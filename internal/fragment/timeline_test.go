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

package fragment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tsInfo(start, end uint64) *Info {
	return &Info{ID: NewID(start, end, 1)}
}

func TestTimelineOpenAt(t *testing.T) {
	tl := NewTimeline()
	a := tsInfo(1, 5)
	b := tsInfo(3, 8)
	c := tsInfo(10, 12)
	tl.Insert(b)
	tl.Insert(c)
	tl.Insert(a)
	assert.Equal(t, 3, tl.Len())

	open := tl.OpenAt(4, 6)
	require.Len(t, open, 2)
	assert.Same(t, a, open[0])
	assert.Same(t, b, open[1])

	assert.Empty(t, tl.OpenAt(9, 9))

	all := tl.OpenAt(0, 100)
	require.Len(t, all, 3)
	assert.Same(t, a, all[0])
	assert.Same(t, b, all[1])
	assert.Same(t, c, all[2])

	late := tl.OpenAt(12, 20)
	require.Len(t, late, 1)
	assert.Same(t, c, late[0])
}

func TestTimelineVisitEarlyStop(t *testing.T) {
	tl := NewTimeline()
	tl.Insert(tsInfo(1, 5))
	tl.Insert(tsInfo(2, 6))
	tl.Insert(tsInfo(3, 7))

	visited := 0
	tl.VisitOpen(0, 100, func(*Info) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

func TestTimelineRemove(t *testing.T) {
	tl := NewTimeline()
	a := tsInfo(1, 5)
	b := tsInfo(3, 8)
	tl.Insert(a)
	tl.Insert(b)

	assert.True(t, tl.Remove(b))
	assert.Equal(t, 1, tl.Len())
	assert.False(t, tl.Remove(b))

	open := tl.OpenAt(0, 100)
	require.Len(t, open, 1)
	assert.Same(t, a, open[0])
}
