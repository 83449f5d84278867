// eviction.go: capacity-triggered admission policy
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package quickleaf

// evictIfFull evicts the insertion-order eldest entry when the store is
// at capacity and newKey would grow it (spec §4.1 "Eviction tie-break").
// No eviction occurs when newKey already has an entry, since an upsert of
// an existing key never grows the store.
func (c *cacheEngine) evictIfFull(newKey string) {
	if c.store.Has(newKey) {
		return
	}
	if c.store.Len() < c.config.Capacity {
		return
	}

	evicted, ok := c.store.RemoveOldest()
	if !ok {
		return
	}

	c.metrics.RecordEviction()
	c.emit(Event{Kind: EventRemove, Key: evicted.key, Value: evicted.value})
	if c.config.OnEvict != nil {
		c.config.OnEvict(evicted.key, evicted.value)
	}
	c.enqueueDelete(evicted.key)
}
