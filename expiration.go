// expiration.go: lazy and explicit-sweep expiration (spec §4.3)
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package quickleaf

// expireIfNeeded removes key if its entry is logically absent at nowMs,
// emitting Remove and firing OnExpire. Returns the live entry and true if
// the key is present and not expired.
func (c *cacheEngine) expireIfNeeded(key string, nowMs int64) (*entry, bool) {
	e, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	if !e.expired(nowMs) {
		return e, true
	}

	c.store.Remove(key)
	c.metrics.RecordExpiration()
	c.emit(Event{Kind: EventRemove, Key: key, Value: e.value})
	if c.config.OnExpire != nil {
		c.config.OnExpire(key, e.value)
	}
	c.enqueueDelete(key)
	return nil, false
}

// CleanupExpired performs the explicit two-pass sweep (spec §4.3): sample
// Clock once, collect every key that has elapsed its TTL as of that
// sample, then remove each collected key. Returns the count removed.
func (c *cacheEngine) CleanupExpired() int {
	nowMs := c.config.Clock.Now()

	var expiredKeys []string
	for _, key := range c.store.Keys() {
		e, ok := c.store.Get(key)
		if ok && e.expired(nowMs) {
			expiredKeys = append(expiredKeys, key)
		}
	}

	for _, key := range expiredKeys {
		e, ok := c.store.Remove(key)
		if !ok {
			continue
		}
		c.metrics.RecordExpiration()
		c.emit(Event{Kind: EventRemove, Key: key, Value: e.value})
		if c.config.OnExpire != nil {
			c.config.OnExpire(key, e.value)
		}
		c.enqueueDelete(key)
	}

	return len(expiredKeys)
}
