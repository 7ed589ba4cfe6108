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

package conc

import (
	"sort"
)

// Inputs shorter than this sort sequentially; the split/merge overhead only
// pays off past a few thousand elements.
const parallelSortMinLen = 1 << 10

// ParallelSort sorts data in ascending order of less, running chunk sorts
// and merge rounds on the pool workers. The calling goroutine blocks until
// the sort completes. Callers must not invoke ParallelSort from a task
// already running on the same pool, the merge rounds would starve.
func ParallelSort[T any](pool *Pool[any], data []T, less func(a, b T) bool) error {
	n := len(data)
	if pool == nil || pool.Cap() <= 1 || n < parallelSortMinLen {
		sort.Slice(data, func(i, j int) bool { return less(data[i], data[j]) })
		return nil
	}

	chunkSize := (n + pool.Cap() - 1) / pool.Cap()
	futures := make([]*Future[any], 0, pool.Cap())
	for start := 0; start < n; start += chunkSize {
		chunk := data[start:min(start+chunkSize, n)]
		futures = append(futures, pool.Submit(func() (any, error) {
			sort.Slice(chunk, func(i, j int) bool { return less(chunk[i], chunk[j]) })
			return nil, nil
		}))
	}
	if err := BlockOnAll(futures...); err != nil {
		return err
	}

	buf := make([]T, n)
	src, dst := data, buf
	for width := chunkSize; width < n; width *= 2 {
		futures = futures[:0]
		for start := 0; start < n; start += 2 * width {
			mid := min(start+width, n)
			end := min(start+2*width, n)
			a, b, out := src[start:mid], src[mid:end], dst[start:end]
			futures = append(futures, pool.Submit(func() (any, error) {
				mergeSorted(a, b, out, less)
				return nil, nil
			}))
		}
		if err := BlockOnAll(futures...); err != nil {
			return err
		}
		src, dst = dst, src
	}

	if &src[0] != &data[0] {
		copy(data, src)
	}
	return nil
}

// mergeSorted merges the sorted runs a and b into out, which must hold
// len(a)+len(b) elements.
func mergeSorted[T any](a, b, out []T, less func(a, b T) bool) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if less(b[j], a[i]) {
			out[k] = b[j]
			j++
		} else {
			out[k] = a[i]
			i++
		}
		k++
	}
	k += copy(out[k:], a[i:])
	copy(out[k:], b[j:])
}
