// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package zeex

// blockCache is a small bounded FIFO cache of decompressed blocks, kept
// as a slice of keys in insertion order alongside the backing map.
//
// Correctness never depends on cache contents: a miss always falls
// through to decompression. The cache is exclusively owned by one
// Reader and is not safe for concurrent use.
type blockCache struct {
	capacity int
	order    []int64
	blocks   map[int64][]byte
}

// newBlockCache returns a cache bounded to capacity entries.
func newBlockCache(capacity int) *blockCache {
	return &blockCache{
		capacity: capacity,
		blocks:   make(map[int64][]byte),
	}
}

// get returns the cached bytes for block, and whether it was present.
func (c *blockCache) get(block int64) ([]byte, bool) {
	b, ok := c.blocks[block]
	return b, ok
}

// put inserts block unconditionally and evicts the oldest entry if the
// cache is now over capacity. Re-inserting an already-cached block
// updates its value in place without touching insertion order, so it
// does not reset its age.
func (c *blockCache) put(block int64, data []byte) {
	if _, exists := c.blocks[block]; exists {
		c.blocks[block] = data
		return
	}

	c.order = append(c.order, block)
	c.blocks[block] = data

	if len(c.order) > c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.blocks, oldest)
	}
}
