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

package log

import "go.uber.org/zap"

const (
	FieldNameComponent = "component"
	FieldNameDatatype  = "datatype"
	FieldNameDimension = "dimension"
)

// FieldComponent returns a zap field with the component name.
func FieldComponent(component string) zap.Field {
	return zap.String(FieldNameComponent, component)
}

// FieldDatatype returns a zap field with the datatype name.
func FieldDatatype(datatype string) zap.Field {
	return zap.String(FieldNameDatatype, datatype)
}

// FieldDimension returns a zap field with a dimension index.
func FieldDimension(dim uint32) zap.Field {
	return zap.Uint32(FieldNameDimension, dim)
}
