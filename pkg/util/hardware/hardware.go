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

// Package hardware probes the host resources used to size worker pools.
package hardware

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/mem"
	"go.uber.org/zap"

	"github.com/strata-db/strata/pkg/log"
)

// GetCPUNum returns the number of logical CPUs usable by the current process.
func GetCPUNum() int {
	cur := runtime.GOMAXPROCS(0)
	if cur <= 0 {
		cur = runtime.NumCPU()
	}
	return cur
}

// GetMemoryCount returns the total physical memory in bytes, or 0 when the
// probe fails.
func GetMemoryCount() uint64 {
	stats, err := mem.VirtualMemory()
	if err != nil {
		log.Warn("failed to get memory count", zap.Error(err))
		return 0
	}
	return stats.Total
}

// GetUsedMemoryCount returns the memory in use in bytes, or 0 when the probe
// fails.
func GetUsedMemoryCount() uint64 {
	stats, err := mem.VirtualMemory()
	if err != nil {
		log.Warn("failed to get used memory count", zap.Error(err))
		return 0
	}
	return stats.Used
}

// GetFreeMemoryCount returns the available memory in bytes.
func GetFreeMemoryCount() uint64 {
	total := GetMemoryCount()
	used := GetUsedMemoryCount()
	if used > total {
		return 0
	}
	return total - used
}
