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

import (
	"testing"
)

func TestBlockCacheGetMiss(t *testing.T) {
	t.Parallel()

	c := newBlockCache(2)
	if _, ok := c.get(0); ok {
		t.Error("get on empty cache: got ok=true, want false")
	}
}

func TestBlockCachePutGet(t *testing.T) {
	t.Parallel()

	c := newBlockCache(2)
	c.put(0, []byte("a"))

	got, ok := c.get(0)
	if !ok {
		t.Fatal("get(0): got ok=false, want true")
	}
	if string(got) != "a" {
		t.Errorf("get(0) = %q, want %q", got, "a")
	}
}

// TestBlockCacheEvictsOldest checks the FIFO eviction order and that
// every miss inserts unconditionally, including the first capacity
// insertions.
func TestBlockCacheEvictsOldest(t *testing.T) {
	t.Parallel()

	c := newBlockCache(2)
	c.put(0, []byte("0"))
	c.put(1, []byte("1"))

	if _, ok := c.get(0); !ok {
		t.Fatal("get(0) after 2 puts with capacity 2: got ok=false, want true")
	}

	c.put(2, []byte("2"))

	if _, ok := c.get(0); ok {
		t.Error("get(0) after eviction: got ok=true, want false")
	}
	if _, ok := c.get(1); !ok {
		t.Error("get(1) after eviction: got ok=false, want true")
	}
	if _, ok := c.get(2); !ok {
		t.Error("get(2) after eviction: got ok=false, want true")
	}
}

func TestBlockCacheReinsertDoesNotDuplicateOrder(t *testing.T) {
	t.Parallel()

	c := newBlockCache(2)
	c.put(0, []byte("0"))
	c.put(1, []byte("1"))
	c.put(0, []byte("0-updated"))
	c.put(2, []byte("2"))

	// 0 was refreshed in place, not re-appended to the insertion order,
	// so it is still the oldest entry and is the one evicted.
	if _, ok := c.get(0); ok {
		t.Error("get(0) after eviction: got ok=true, want false")
	}
	got, ok := c.get(1)
	if !ok {
		t.Fatal("get(1): got ok=false, want true")
	}
	if string(got) != "1" {
		t.Errorf("get(1) = %q, want %q", got, "1")
	}
	if _, ok := c.get(2); !ok {
		t.Error("get(2): got ok=false, want true")
	}
}
