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

package paramtable

import (
	"sync"

	"github.com/strata-db/strata/pkg/log"
)

var params ComponentParam

// Init loads the process-wide param table once.
func Init() {
	params.Init()
}

// Get returns the process-wide param table. Call Init first.
func Get() *ComponentParam {
	return &params
}

// ComponentParam is used to quickly and easily access all components'
// configurations.
type ComponentParam struct {
	once      sync.Once
	baseTable BaseTable

	QueryCfg queryConfig
	LogCfg   logConfig
}

// Init initialize once
func (p *ComponentParam) Init() {
	p.once.Do(func() {
		p.init()
	})
}

func (p *ComponentParam) init() {
	p.baseTable.init()

	p.QueryCfg.init(&p.baseTable)
	p.LogCfg.init(&p.baseTable)
}

// Save sets an override visible to every config item.
func (p *ComponentParam) Save(key, value string) error {
	return p.baseTable.Save(key, value)
}

// /////////////////////////////////////////////////////////////////////////////
// --- query ---
type queryConfig struct {
	ComputePoolSize ParamItem `refreshable:"false"`
	CoalesceRanges  ParamItem `refreshable:"true"`
}

func (p *queryConfig) init(base *BaseTable) {
	p.ComputePoolSize = ParamItem{
		Key:          "query.computePoolSize",
		Version:      "0.1.0",
		DefaultValue: "0",
		Doc:          "Worker count of the shared compute pool, 0 means the number of logical CPUs",
		Export:       true,
	}
	p.ComputePoolSize.Init(base)

	p.CoalesceRanges = ParamItem{
		Key:          "query.coalesceRanges",
		Version:      "0.1.0",
		DefaultValue: "true",
		Doc:          "Merge adjacent integral ranges added to a subarray dimension",
		Export:       true,
	}
	p.CoalesceRanges.Init(base)
}

// /////////////////////////////////////////////////////////////////////////////
// --- log ---
type logConfig struct {
	Level      ParamItem `refreshable:"false"`
	Format     ParamItem `refreshable:"false"`
	Filename   ParamItem `refreshable:"false"`
	MaxSize    ParamItem `refreshable:"false"`
	MaxAge     ParamItem `refreshable:"false"`
	MaxBackups ParamItem `refreshable:"false"`
}

func (p *logConfig) init(base *BaseTable) {
	p.Level = ParamItem{
		Key:          "log.level",
		Version:      "0.1.0",
		DefaultValue: "info",
		Doc:          "One of debug, info, warn, error, fatal",
		Export:       true,
	}
	p.Level.Init(base)

	p.Format = ParamItem{
		Key:          "log.format",
		Version:      "0.1.0",
		DefaultValue: "text",
		Doc:          "text or json",
		Export:       true,
	}
	p.Format.Init(base)

	p.Filename = ParamItem{
		Key:          "log.file.filename",
		Version:      "0.1.0",
		DefaultValue: "",
		Doc:          "Log file path, empty logs to stdout",
		Export:       true,
	}
	p.Filename.Init(base)

	p.MaxSize = ParamItem{
		Key:          "log.file.maxSize",
		Version:      "0.1.0",
		DefaultValue: "300",
		Doc:          "MB per rotated file",
		Export:       true,
	}
	p.MaxSize.Init(base)

	p.MaxAge = ParamItem{
		Key:          "log.file.maxAge",
		Version:      "0.1.0",
		DefaultValue: "10",
		Doc:          "Days to retain rotated files",
		Export:       true,
	}
	p.MaxAge.Init(base)

	p.MaxBackups = ParamItem{
		Key:          "log.file.maxBackups",
		Version:      "0.1.0",
		DefaultValue: "20",
		Export:       true,
	}
	p.MaxBackups.Init(base)
}

// Build assembles the logger configuration described by the table.
func (p *logConfig) Build() *log.Config {
	return &log.Config{
		Level:  p.Level.GetValue(),
		Format: p.Format.GetValue(),
		File: log.FileLogConfig{
			Filename:   p.Filename.GetValue(),
			MaxSize:    p.MaxSize.GetAsInt(),
			MaxDays:    p.MaxAge.GetAsInt(),
			MaxBackups: p.MaxBackups.GetAsInt(),
		},
	}
}
