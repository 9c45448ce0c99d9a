package vlist

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// RecencyCache is a bounded set of item indices ordered by how recently they were touched.
// Entries are kept oldest first in the underlying map, so the most recently touched index is its last key.
// Touching past capacity evicts from the front, calling onEvict for each evicted index
type RecencyCache struct {
	entries  *linkedhashmap.Map
	capacity int
	onEvict  func(index int)
}

func NewRecencyCache(capacity int, onEvict func(index int)) *RecencyCache {
	return &RecencyCache{
		entries:  linkedhashmap.New(),
		capacity: max(1, capacity),
		onEvict:  onEvict,
	}
}

// Touch marks index as most recently used and reports whether it was newly inserted
func (c *RecencyCache) Touch(index int) bool {
	if _, found := c.entries.Get(index); found {
		// linkedhashmap keeps the original insertion slot on Put, so re-insert to move it to the back
		c.entries.Remove(index)
		c.entries.Put(index, struct{}{})
		return false
	}
	c.entries.Put(index, struct{}{})
	c.evictOverflow()
	return true
}

func (c *RecencyCache) Contains(index int) bool {
	_, found := c.entries.Get(index)
	return found
}

// SetCapacity changes the bound, evicting immediately if the cache is now over it. Capacity is at least 1
func (c *RecencyCache) SetCapacity(n int) {
	c.capacity = max(1, n)
	c.evictOverflow()
}

func (c *RecencyCache) Capacity() int {
	return c.capacity
}

func (c *RecencyCache) Len() int {
	return c.entries.Size()
}

// Clear drops every entry without calling onEvict
func (c *RecencyCache) Clear() {
	c.entries.Clear()
}

// Minimum returns the smallest cached index
func (c *RecencyCache) Minimum() (int, bool) {
	if c.entries.Empty() {
		return 0, false
	}
	minimum := 0
	first := true
	it := c.entries.Iterator()
	for it.Next() {
		index := it.Key().(int)
		if first || index < minimum {
			minimum = index
			first = false
		}
	}
	return minimum, true
}

// Indices returns the cached indices, most recently touched first
func (c *RecencyCache) Indices() []int {
	keys := c.entries.Keys()
	res := make([]int, len(keys))
	for i := range keys {
		res[len(keys)-1-i] = keys[i].(int)
	}
	return res
}

func (c *RecencyCache) evictOverflow() {
	for c.entries.Size() > c.capacity {
		it := c.entries.Iterator()
		if !it.First() {
			return
		}
		oldest := it.Key().(int)
		c.entries.Remove(oldest)
		if c.onEvict != nil {
			c.onEvict(oldest)
		}
	}
}
