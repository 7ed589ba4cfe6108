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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/strata-db/strata/pkg/util/serr"
)

func TestPoolSubmit(t *testing.T) {
	pool := NewDefaultPool[any]()
	defer pool.Release()

	wg := sync.WaitGroup{}
	futures := make([]*Future[any], 0, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		res := i
		future := pool.Submit(func() (any, error) {
			defer wg.Done()
			time.Sleep(time.Millisecond)
			return res, nil
		})
		futures = append(futures, future)
	}
	wg.Wait()

	assert.NoError(t, BlockOnAll(futures...))
	for i, future := range futures {
		res, err := future.Await()
		assert.NoError(t, err)
		assert.Equal(t, i, res)
	}
	assert.Equal(t, 0, pool.Running())
}

func TestPoolConcealPanic(t *testing.T) {
	pool := NewPool[any](2, WithConcealPanic(true))
	defer pool.Release()

	future := pool.Submit(func() (any, error) {
		panic("mocked panic")
	})
	err := future.Err()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}

func TestPoolResize(t *testing.T) {
	cpuNum := 4
	pool := NewPool[any](cpuNum)
	defer pool.Release()

	assert.Equal(t, cpuNum, pool.Cap())
	assert.NoError(t, pool.Resize(cpuNum*2))
	assert.Equal(t, cpuNum*2, pool.Cap())

	err := pool.Resize(0)
	assert.ErrorIs(t, err, serr.ErrParameterInvalid)

	preAllocated := NewPool[any](cpuNum, WithPreAlloc(true))
	defer preAllocated.Release()
	err = preAllocated.Resize(cpuNum * 2)
	assert.ErrorIs(t, err, serr.ErrInternal)
}

func TestPoolRelease(t *testing.T) {
	pool := NewPool[any](2)
	pool.Release()
	assert.True(t, pool.IsClosed())
}

func TestWarmupPool(t *testing.T) {
	pool := NewPool[any](4, WithPreAlloc(true))
	defer pool.Release()

	warmed := atomicCounter{}
	WarmupPool(pool, warmed.inc)
	assert.Equal(t, pool.Cap(), warmed.get())
}

type atomicCounter struct {
	mu sync.Mutex
	n  int
}

func (c *atomicCounter) inc() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
}

func (c *atomicCounter) get() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}
