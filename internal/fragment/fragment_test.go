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
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strata-db/strata/pkg/util/serr"
)

func TestFragmentNameRoundTrip(t *testing.T) {
	id := NewID(100, 200, 14)
	name := id.Name()
	assert.True(t, strings.HasPrefix(name, "__100_200_"))
	assert.True(t, strings.HasSuffix(name, "_14"))

	parsed, err := ParseName(name)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseNameRejects(t *testing.T) {
	u := "00112233445566778899aabbccddeeff"
	cases := []string{
		"",
		"frag_1_2_" + u + "_1",
		"__1_2_" + u,
		"__a_2_" + u + "_1",
		"__1_b_" + u + "_1",
		"__5_2_" + u + "_1",
		"__1_2_zz12_1",
		"__1_2_" + u + "_x",
	}
	for _, name := range cases {
		_, err := ParseName(name)
		assert.ErrorIs(t, err, serr.ErrFragmentNameInvalid, name)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	first := &Info{ID: NewID(1, 5, 1)}
	second := &Info{ID: NewID(6, 9, 1)}

	require.NoError(t, r.Add(first))
	require.NoError(t, r.Add(second))
	assert.Equal(t, 2, r.Len())

	err := r.Add(first)
	assert.ErrorIs(t, err, serr.ErrParameterInvalid)
	err = r.Add(nil)
	assert.ErrorIs(t, err, serr.ErrParameterInvalid)

	got, err := r.Get(first.ID.Name())
	require.NoError(t, err)
	assert.Same(t, first, got)

	_, err = r.Get("__1_2_00112233445566778899aabbccddeeff_1")
	assert.ErrorIs(t, err, serr.ErrFragmentNotFound)

	listed, err := r.ListFragments(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Same(t, first, listed[0])
	assert.Same(t, second, listed[1])

	require.NoError(t, r.Remove(first.ID.Name()))
	assert.Equal(t, 1, r.Len())
	err = r.Remove(first.ID.Name())
	assert.ErrorIs(t, err, serr.ErrFragmentNotFound)
}

func TestRegistryListCanceled(t *testing.T) {
	r := NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.ListFragments(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
