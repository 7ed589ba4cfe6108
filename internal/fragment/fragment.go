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

// Package fragment defines the contract the range core requires from the
// storage layer: immutable fragment identity and metadata, fragment
// enumeration, a timestamp timeline, and subarray-driven pruning.
package fragment

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/strata-db/strata/internal/domain"
	"github.com/strata-db/strata/pkg/util/serr"
)

// ID identifies one immutable fragment: the inclusive timestamp range its
// writes carry, a random component making concurrent writers collision-free,
// and the format version it was written with.
type ID struct {
	TimestampStart uint64
	TimestampEnd   uint64
	UUID           uuid.UUID
	Version        uint32
}

// NewID mints a fragment ID for the given timestamp range and format
// version.
func NewID(start, end uint64, version uint32) ID {
	return ID{
		TimestampStart: start,
		TimestampEnd:   end,
		UUID:           uuid.New(),
		Version:        version,
	}
}

// Name renders the canonical fragment name,
// __<t1>_<t2>_<uuid hex>_<version>.
func (id ID) Name() string {
	return fmt.Sprintf("__%d_%d_%s_%d",
		id.TimestampStart, id.TimestampEnd,
		hex.EncodeToString(id.UUID[:]), id.Version)
}

func (id ID) String() string {
	return id.Name()
}

// ParseName decodes a canonical fragment name back into an ID.
func ParseName(name string) (ID, error) {
	trimmed, ok := strings.CutPrefix(name, "__")
	if !ok {
		return ID{}, serr.WrapErrFragmentNameInvalid(name, "missing __ prefix")
	}
	parts := strings.Split(trimmed, "_")
	if len(parts) != 4 {
		return ID{}, serr.WrapErrFragmentNameInvalid(name, "want __<t1>_<t2>_<uuid>_<version>")
	}
	start, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return ID{}, serr.WrapErrFragmentNameInvalid(name, "bad start timestamp")
	}
	end, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return ID{}, serr.WrapErrFragmentNameInvalid(name, "bad end timestamp")
	}
	if end < start {
		return ID{}, serr.WrapErrFragmentNameInvalid(name, "timestamp range reversed")
	}
	u, err := uuid.Parse(parts[2])
	if err != nil {
		return ID{}, serr.WrapErrFragmentNameInvalid(name, "bad uuid")
	}
	version, err := strconv.ParseUint(parts[3], 10, 32)
	if err != nil {
		return ID{}, serr.WrapErrFragmentNameInvalid(name, "bad format version")
	}
	return ID{
		TimestampStart: start,
		TimestampEnd:   end,
		UUID:           u,
		Version:        uint32(version),
	}, nil
}

// Info is the query-visible metadata of one fragment.
type Info struct {
	ID ID
	// Dense marks fragments written in dense layout.
	Dense bool
	// NonEmptyDomain holds one range per array dimension bounding the
	// cells the fragment actually wrote.
	NonEmptyDomain []domain.Range
}

// Lister enumerates the fragments of one array. The storage layer
// implements it over its catalog, Registry is the in-memory form.
type Lister interface {
	ListFragments(ctx context.Context) ([]*Info, error)
}
