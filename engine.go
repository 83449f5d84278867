// engine.go: the public engine facade (spec §4.1)
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package quickleaf

import (
	"fmt"

	"github.com/agilira/go-timecache"
	"github.com/agilira/quickleaf/persistence"
)

// cacheEngine is the concrete Cache implementation composing the entry
// store, clock, filter, expiration, eviction, events, and optional
// persistence coordinator.
//
// cacheEngine is single-owner (spec §5): all its methods are expected to
// be called from one goroutine at a time. It performs no internal
// locking over its in-memory state; only the persistence worker, which
// never touches the entry store, runs on a separate goroutine.
type cacheEngine struct {
	config  Config
	store   *entryStore
	metrics MetricsCollector

	defaultTTL *int64

	persist *persistence.Coordinator
}

// New constructs a Cache from config. If config.Persistence is set, the
// durable store is opened and scanned for recovery before New returns
// (spec §4.5 "Recovery"); a row that fails to decode is logged and
// skipped, and New fails with PersistenceUnavailable only if every row
// fails to decode or the store cannot be opened/migrated.
func New(config Config) (Cache, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &cacheEngine{
		config:     config,
		store:      newEntryStore(),
		metrics:    config.MetricsCollector,
		defaultTTL: config.DefaultTTL,
	}

	if config.Persistence != nil {
		coord, err := persistence.NewCoordinator(*config.Persistence)
		if err != nil {
			return nil, NewErrPersistenceUnavailable(config.Persistence.Path, err)
		}
		c.persist = coord
		coord.OnWriteError = func(err error) {
			config.Logger.Error("durable write-behind batch failed", "path", config.Persistence.Path, "error", err)
		}

		records, skipped, err := coord.Recover()
		if err != nil {
			coord.Close()
			return nil, NewErrPersistenceUnavailable(config.Persistence.Path, err)
		}
		for _, s := range skipped {
			config.Logger.Warn("durable row failed to decode, skipped", "key", s.Key, "error", s.Err)
		}
		if len(records) == 0 && len(skipped) > 0 {
			coord.Close()
			return nil, NewErrPersistenceUnavailable(config.Persistence.Path,
				fmt.Errorf("all %d recovered rows failed to decode", len(skipped)))
		}

		nowMs := config.Clock.Now()
		for _, r := range records {
			if r.TTLMs != nil {
				elapsed := nowMs - r.CreatedAtMs
				if elapsed > *r.TTLMs {
					continue
				}
			}
			ttl := r.TTLMs
			c.store.Upsert(&entry{key: r.Key, value: r.Value, createdAtMs: r.CreatedAtMs, ttlMs: ttl})
		}
	}

	return c, nil
}

// Insert implements Cache.
func (c *cacheEngine) Insert(key string, value interface{}) {
	c.insert(key, value, c.defaultTTL)
}

// InsertWithTTL implements Cache.
func (c *cacheEngine) InsertWithTTL(key string, value interface{}, ttl int64) {
	c.insert(key, value, &ttl)
}

func (c *cacheEngine) insert(key string, value interface{}, ttl *int64) {
	start := timecache.CachedTimeNano()

	c.evictIfFull(key)

	createdAtMs := c.config.Clock.Now()
	c.store.Upsert(&entry{key: key, value: value, createdAtMs: createdAtMs, ttlMs: ttl})
	c.emit(Event{Kind: EventInsert, Key: key, Value: value})

	if c.persist != nil {
		depth, err := c.persist.EnqueueUpsert(key, value, createdAtMs, ttl)
		if err != nil {
			c.config.Logger.Error("failed to enqueue durable upsert", "key", key, "error", err)
		} else {
			c.metrics.RecordPersistenceQueueDepth(depth)
		}
	}

	if c.metrics != nil {
		c.metrics.RecordInsert(timecache.CachedTimeNano() - start)
	}
}

// Get implements Cache.
func (c *cacheEngine) Get(key string) (interface{}, bool) {
	start := timecache.CachedTimeNano()
	nowMs := c.config.Clock.Now()

	e, ok := c.expireIfNeeded(key, nowMs)
	if c.metrics != nil {
		c.metrics.RecordGet(timecache.CachedTimeNano()-start, ok)
	}
	if !ok {
		return nil, false
	}
	return e.value, true
}

// GetMut implements Cache.
func (c *cacheEngine) GetMut(key string) (*interface{}, bool) {
	start := timecache.CachedTimeNano()
	nowMs := c.config.Clock.Now()
	e, ok := c.expireIfNeeded(key, nowMs)
	if c.metrics != nil {
		c.metrics.RecordGet(timecache.CachedTimeNano()-start, ok)
	}
	if !ok {
		return nil, false
	}
	return &e.value, true
}

// ContainsKey implements Cache.
func (c *cacheEngine) ContainsKey(key string) bool {
	start := timecache.CachedTimeNano()
	nowMs := c.config.Clock.Now()
	_, ok := c.expireIfNeeded(key, nowMs)
	if c.metrics != nil {
		c.metrics.RecordGet(timecache.CachedTimeNano()-start, ok)
	}
	return ok
}

// Remove implements Cache.
func (c *cacheEngine) Remove(key string) error {
	start := timecache.CachedTimeNano()
	e, ok := c.store.Remove(key)
	if !ok {
		return NewErrKeyNotFound(key)
	}

	c.emit(Event{Kind: EventRemove, Key: key, Value: e.value})
	c.enqueueDelete(key)

	if c.metrics != nil {
		c.metrics.RecordRemove(timecache.CachedTimeNano() - start)
	}
	return nil
}

// Clear implements Cache.
func (c *cacheEngine) Clear() {
	c.store.Clear()
	c.emit(Event{Kind: EventClear})
	if c.persist != nil {
		depth := c.persist.EnqueueClear()
		c.metrics.RecordPersistenceQueueDepth(depth)
	}
}

// Len implements Cache.
func (c *cacheEngine) Len() int {
	return c.store.Len()
}

// IsEmpty implements Cache.
func (c *cacheEngine) IsEmpty() bool {
	return c.store.Len() == 0
}

// SetDefaultTTL implements Cache.
func (c *cacheEngine) SetDefaultTTL(ttl *int64) {
	c.defaultTTL = ttl
}

// GetDefaultTTL implements Cache.
func (c *cacheEngine) GetDefaultTTL() *int64 {
	return c.defaultTTL
}

// Close implements Cache.
func (c *cacheEngine) Close() error {
	if c.persist == nil {
		return nil
	}
	return c.persist.Close()
}

// enqueueDelete enqueues a durable delete for key if persistence is
// enabled. A failed write-behind commit is logged by the worker's
// OnWriteError callback (wired in New), never propagated, matching
// spec §4.5's best-effort write-behind contract.
func (c *cacheEngine) enqueueDelete(key string) {
	if c.persist == nil {
		return
	}
	depth := c.persist.EnqueueDelete(key)
	c.metrics.RecordPersistenceQueueDepth(depth)
}
