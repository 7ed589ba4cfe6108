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
	"sync"

	"github.com/strata-db/strata/pkg/util/serr"
)

// Registry is the in-memory fragment catalog, safe for concurrent use.
// Fragments are immutable, the registry only ever adds and removes whole
// entries.
type Registry struct {
	mu    sync.RWMutex
	frags map[string]*Info
	order []string
}

var _ Lister = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		frags: make(map[string]*Info),
	}
}

// Add registers a fragment. Registering the same fragment name twice is an
// error, fragments are immutable.
func (r *Registry) Add(info *Info) error {
	if info == nil {
		return serr.WrapErrParameterInvalidMsg("nil fragment info")
	}
	name := info.ID.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.frags[name]; ok {
		return serr.WrapErrParameterInvalidMsg("fragment %s already registered", name)
	}
	r.frags[name] = info
	r.order = append(r.order, name)
	return nil
}

// Get resolves a fragment by its canonical name.
func (r *Registry) Get(name string) (*Info, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.frags[name]
	if !ok {
		return nil, serr.WrapErrFragmentNotFound(name)
	}
	return info, nil
}

// Remove drops a fragment, the consolidation hook.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.frags[name]; !ok {
		return serr.WrapErrFragmentNotFound(name)
	}
	delete(r.frags, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of registered fragments.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.frags)
}

// ListFragments returns the fragments in registration order.
func (r *Registry) ListFragments(ctx context.Context) ([]*Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Info, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.frags[name])
	}
	return out, nil
}
