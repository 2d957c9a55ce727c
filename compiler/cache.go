// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compiler

import (
	"container/list"
	"sync"
)

// Cache is a capacity-bounded LRU map used for the compiler's pattern cache
// and the matcher's match-result cache.
//
// At capacity, inserting evicts the least-recently-used entry, so the hot
// set stays resident under churn. Eviction affects only performance, never
// correctness: a miss recomputes.
//
// Thread safety: all methods are safe for concurrent use. Both read-modify
// (recency bump) and insert paths take the mutex, so check-then-insert races
// cannot corrupt the map.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*list.Element
	order    *list.List // front = most recently used
	capacity int
}

// cacheEntry is the list element payload.
type cacheEntry[K comparable, V any] struct {
	key   K
	value V
}

// NewCache creates an LRU cache holding at most capacity entries.
// A capacity of zero or less disables the cache: Get always misses and Put
// is a no-op.
func NewCache[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:  make(map[K]*list.Element, max(capacity, 0)),
		order:    list.New(),
		capacity: capacity,
	}
}

// Get returns the cached value for key and bumps its recency.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	if c.capacity <= 0 {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	c.order.MoveToFront(elem)

	return elem.Value.(*cacheEntry[K, V]).value, true
}

// Put stores value under key, evicting the least-recently-used entry when the
// cache is full. Storing an existing key refreshes its value and recency.
func (c *Cache[K, V]) Put(key K, value V) {
	if c.capacity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		elem.Value.(*cacheEntry[K, V]).value = value
		c.order.MoveToFront(elem)

		return
	}

	if c.order.Len() >= c.capacity {
		back := c.order.Back()
		if back != nil {
			evicted := back.Value.(*cacheEntry[K, V])
			delete(c.entries, evicted.key)
			c.order.Remove(back)
		}
	}

	c.entries[key] = c.order.PushFront(&cacheEntry[K, V]{key: key, value: value})
}

// Len returns the current number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}

// Purge drops every cached entry, keeping the configured capacity.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*list.Element, max(c.capacity, 0))
	c.order.Init()
}
