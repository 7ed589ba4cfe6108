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

// Package compute owns the process-wide pool CPU-bound work runs on. The
// range core never creates pools of its own, it borrows this one whenever
// the caller does not supply a pool.
package compute

import (
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/strata-db/strata/pkg/log"
	"github.com/strata-db/strata/pkg/metrics"
	"github.com/strata-db/strata/pkg/util/conc"
	"github.com/strata-db/strata/pkg/util/hardware"
	"github.com/strata-db/strata/pkg/util/paramtable"
)

var (
	p        atomic.Pointer[conc.Pool[any]]
	initOnce sync.Once
)

// InitComputePool builds the compute pool from config, sized to the logical
// CPU count when the configured size is zero. Safe to call more than once.
func InitComputePool() {
	initOnce.Do(func() {
		paramtable.Init()
		size := paramtable.Get().QueryCfg.ComputePoolSize.GetAsInt()
		if size <= 0 {
			size = hardware.GetCPUNum()
		}
		pool := conc.NewPool[any](size,
			conc.WithPreAlloc(true),
			conc.WithDisablePurge(true),
		)
		conc.WarmupPool(pool, func() {})

		metrics.ComputePoolSize.Set(float64(size))
		log.Info("initialized compute pool",
			log.FieldComponent("compute"), zap.Int("size", size))
		p.Store(pool)
	})
}

// GetComputePool returns the singleton compute pool, initializing it on
// first use.
func GetComputePool() *conc.Pool[any] {
	InitComputePool()
	return p.Load()
}
