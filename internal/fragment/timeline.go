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
	"bytes"
	"sync"

	"github.com/google/btree"
)

type timelineItem struct {
	info *Info
}

func (it timelineItem) Less(than btree.Item) bool {
	a, b := it.info.ID, than.(timelineItem).info.ID
	if a.TimestampStart != b.TimestampStart {
		return a.TimestampStart < b.TimestampStart
	}
	if a.TimestampEnd != b.TimestampEnd {
		return a.TimestampEnd < b.TimestampEnd
	}
	if c := bytes.Compare(a.UUID[:], b.UUID[:]); c != 0 {
		return c < 0
	}
	return a.Version < b.Version
}

// Timeline orders fragments by the timestamp range they cover, for
// open-at-time visibility queries. Safe for concurrent use.
type Timeline struct {
	sync.RWMutex
	tree *btree.BTree
}

func NewTimeline() *Timeline {
	return &Timeline{tree: btree.New(2)}
}

func (tl *Timeline) Insert(info *Info) {
	tl.Lock()
	defer tl.Unlock()
	tl.tree.ReplaceOrInsert(timelineItem{info})
}

func (tl *Timeline) Remove(info *Info) bool {
	tl.Lock()
	defer tl.Unlock()
	return tl.tree.Delete(timelineItem{info}) != nil
}

func (tl *Timeline) Len() int {
	tl.RLock()
	defer tl.RUnlock()
	return tl.tree.Len()
}

// VisitOpen walks fragments whose timestamp range intersects [start, end]
// in timeline order, stopping when visit returns false. The walk cuts off
// once fragment start timestamps pass the window.
func (tl *Timeline) VisitOpen(start, end uint64, visit func(*Info) bool) {
	tl.RLock()
	defer tl.RUnlock()
	tl.tree.Ascend(func(item btree.Item) bool {
		info := item.(timelineItem).info
		if info.ID.TimestampStart > end {
			return false
		}
		if info.ID.TimestampEnd >= start {
			return visit(info)
		}
		return true
	})
}

// OpenAt collects the fragments visible in the window [start, end].
func (tl *Timeline) OpenAt(start, end uint64) []*Info {
	var out []*Info
	tl.VisitOpen(start, end, func(info *Info) bool {
		out = append(out, info)
		return true
	})
	return out
}
