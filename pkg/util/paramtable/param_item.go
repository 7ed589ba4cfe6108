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
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// ParamItem is a single named configuration entry with a typed read surface.
type ParamItem struct {
	Key          string
	Version      string
	Doc          string
	DefaultValue string
	FallbackKeys []string
	PanicIfEmpty bool
	Export       bool

	Formatter func(originValue string) string

	table *BaseTable
}

// Init binds the item to its table. Must be called before any Get.
func (pi *ParamItem) Init(base *BaseTable) {
	pi.table = base
	if pi.PanicIfEmpty && pi.GetValue() == "" {
		panic(fmt.Sprintf("config item %s is empty", pi.Key))
	}
}

func (pi *ParamItem) get() string {
	ret, err := pi.table.Load(pi.Key)
	if err != nil {
		for _, key := range pi.FallbackKeys {
			if v, ferr := pi.table.Load(key); ferr == nil {
				ret, err = v, nil
				break
			}
		}
	}
	if err != nil {
		ret = pi.DefaultValue
	}
	if pi.Formatter != nil {
		ret = pi.Formatter(ret)
	}
	return ret
}

// GetValue returns the resolved string value of the item.
func (pi *ParamItem) GetValue() string {
	return pi.get()
}

// GetAsStrings splits the value on commas, dropping empty entries.
func (pi *ParamItem) GetAsStrings() []string {
	parts := strings.Split(pi.GetValue(), ",")
	ret := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ret = append(ret, p)
		}
	}
	return ret
}

func (pi *ParamItem) GetAsBool() bool {
	return cast.ToBool(pi.GetValue())
}

func (pi *ParamItem) GetAsInt() int {
	return cast.ToInt(pi.GetValue())
}

func (pi *ParamItem) GetAsInt32() int32 {
	return cast.ToInt32(pi.GetValue())
}

func (pi *ParamItem) GetAsInt64() int64 {
	return cast.ToInt64(pi.GetValue())
}

func (pi *ParamItem) GetAsUint64() uint64 {
	return cast.ToUint64(pi.GetValue())
}

func (pi *ParamItem) GetAsFloat() float64 {
	return cast.ToFloat64(pi.GetValue())
}

// GetAsDuration reads the value as a count of unit.
func (pi *ParamItem) GetAsDuration(unit time.Duration) time.Duration {
	return time.Duration(cast.ToInt64(pi.GetValue())) * unit
}
