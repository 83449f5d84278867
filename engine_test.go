// engine_test.go: unit tests for the cache facade
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package quickleaf

import "testing"

func ttlPtr(ms int64) *int64 {
	return &ms
}

func newTestCache(t *testing.T, capacity int, clock Clock) Cache {
	t.Helper()
	c, err := New(Config{Capacity: capacity, Clock: clock})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !c.IsEmpty() {
		t.Error("expected empty cache")
	}
}

func TestNew_InvalidCapacity(t *testing.T) {
	_, err := New(Config{Capacity: -1})
	if err == nil {
		t.Fatal("expected error for negative capacity")
	}
	if !IsConfigError(err) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestNew_InvalidTTL(t *testing.T) {
	badTTL := int64(-5)
	_, err := New(Config{DefaultTTL: &badTTL})
	if err == nil {
		t.Fatal("expected error for negative default TTL")
	}
}

func TestCache_InsertGet(t *testing.T) {
	c := newTestCache(t, 10, newFakeClock())

	c.Insert("user:1", "alice")

	value, found := c.Get("user:1")
	if !found {
		t.Fatal("expected to find user:1")
	}
	if value != "alice" {
		t.Errorf("expected 'alice', got %v", value)
	}

	_, found = c.Get("user:2")
	if found {
		t.Error("expected not to find user:2")
	}
}

func TestCache_InsertUpdate_PreservesPosition(t *testing.T) {
	c := newTestCache(t, 2, newFakeClock())

	c.Insert("a", 1)
	c.Insert("b", 2)
	c.Insert("a", 3) // update, should not move to the back

	v, _ := c.Get("a")
	if v != 3 {
		t.Errorf("expected updated value 3, got %v", v)
	}

	c.Insert("c", 4) // store is full; 'a' is still the insertion-order eldest

	if _, found := c.Get("a"); found {
		t.Error("expected 'a' to have been evicted as the insertion-order eldest despite its update")
	}
	if _, found := c.Get("b"); !found {
		t.Error("expected 'b' to survive the eviction")
	}
}

func TestCache_GetMut(t *testing.T) {
	c := newTestCache(t, 10, newFakeClock())
	c.Insert("counter", 1)

	ptr, found := c.GetMut("counter")
	if !found {
		t.Fatal("expected to find counter")
	}
	*ptr = 2

	v, _ := c.Get("counter")
	if v != 2 {
		t.Errorf("expected mutated value 2, got %v", v)
	}
}

func TestCache_ContainsKey(t *testing.T) {
	c := newTestCache(t, 10, newFakeClock())
	c.Insert("k", "v")

	if !c.ContainsKey("k") {
		t.Error("expected ContainsKey true for present key")
	}
	if c.ContainsKey("missing") {
		t.Error("expected ContainsKey false for absent key")
	}
}

func TestCache_Remove(t *testing.T) {
	c := newTestCache(t, 10, newFakeClock())
	c.Insert("k", "v")

	if err := c.Remove("k"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if c.ContainsKey("k") {
		t.Error("expected key removed")
	}

	err := c.Remove("k")
	if err == nil {
		t.Fatal("expected error removing an absent key")
	}
	if !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestCache_Clear(t *testing.T) {
	c := newTestCache(t, 10, newFakeClock())
	c.Insert("a", 1)
	c.Insert("b", 2)

	c.Clear()

	if !c.IsEmpty() {
		t.Error("expected cache empty after Clear")
	}
	if c.Len() != 0 {
		t.Errorf("expected len 0, got %d", c.Len())
	}
}

func TestCache_Eviction_FIFOByInsertion(t *testing.T) {
	c := newTestCache(t, 2, newFakeClock())

	c.Insert("a", 1)
	c.Insert("b", 2)

	c.Get("a") // access does not affect FIFO-by-insertion eviction order

	c.Insert("c", 3) // capacity reached: 'a' is the insertion-order eldest

	if c.ContainsKey("a") {
		t.Error("expected 'a' evicted despite being recently accessed (FIFO, not LRU)")
	}
	if !c.ContainsKey("b") || !c.ContainsKey("c") {
		t.Error("expected 'b' and 'c' to remain")
	}
}

func TestCache_TTL_LazyExpiration(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(t, 10, clock)

	c.InsertWithTTL("session", "token", 100)

	clock.Advance(50)
	if _, found := c.Get("session"); !found {
		t.Error("expected entry still live before TTL elapses")
	}

	clock.Advance(51) // now 101ms elapsed, strictly past TTL of 100
	if _, found := c.Get("session"); found {
		t.Error("expected entry expired after TTL elapses")
	}
	if c.Len() != 0 {
		t.Error("expected expired entry to be lazily removed from Len()")
	}
}

func TestCache_TTL_EqualBoundaryStillLive(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(t, 10, clock)

	c.InsertWithTTL("k", "v", 100)
	clock.Advance(100) // exactly equal to TTL: still live per strict->  rule

	if _, found := c.Get("k"); !found {
		t.Error("expected entry live when elapsed == ttl (strict greater-than expiration)")
	}
}

func TestCache_DefaultTTL(t *testing.T) {
	clock := newFakeClock()
	defaultTTL := int64(100)
	c, err := New(Config{Capacity: 10, Clock: clock, DefaultTTL: &defaultTTL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c.Insert("k", "v") // no explicit TTL: falls back to default

	clock.Advance(101)
	if _, found := c.Get("k"); found {
		t.Error("expected default TTL to apply to a plain Insert")
	}
}

func TestCache_SetGetDefaultTTL(t *testing.T) {
	c := newTestCache(t, 10, newFakeClock())

	if c.GetDefaultTTL() != nil {
		t.Error("expected nil default TTL initially")
	}

	c.SetDefaultTTL(ttlPtr(500))
	if c.GetDefaultTTL() == nil || *c.GetDefaultTTL() != 500 {
		t.Error("expected default TTL to be updated")
	}

	c.SetDefaultTTL(nil)
	if c.GetDefaultTTL() != nil {
		t.Error("expected default TTL cleared")
	}
}

func TestCache_CleanupExpired(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(t, 10, clock)

	c.InsertWithTTL("expire-soon", "a", 50)
	c.InsertWithTTL("expire-later", "b", 1000)
	c.Insert("never", "c")

	clock.Advance(51)

	removed := c.CleanupExpired()
	if removed != 1 {
		t.Errorf("expected 1 expired entry swept, got %d", removed)
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 entries remaining, got %d", c.Len())
	}
	if c.ContainsKey("expire-soon") {
		t.Error("expected expire-soon removed")
	}
}

func TestCache_OnEvictCallback(t *testing.T) {
	var evictedKey string
	var evictedValue interface{}
	c, err := New(Config{
		Capacity: 1,
		Clock:    newFakeClock(),
		OnEvict: func(key string, value interface{}) {
			evictedKey = key
			evictedValue = value
		},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c.Insert("a", 1)
	c.Insert("b", 2)

	if evictedKey != "a" {
		t.Errorf("expected OnEvict called with 'a', got %q", evictedKey)
	}
	if evictedValue != 1 {
		t.Errorf("expected OnEvict called with value 1, got %v", evictedValue)
	}
}

func TestCache_OnExpireCallback(t *testing.T) {
	clock := newFakeClock()
	var expiredKey string
	c, err := New(Config{
		Capacity: 10,
		Clock:    clock,
		OnExpire: func(key string, value interface{}) {
			expiredKey = key
		},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c.InsertWithTTL("k", "v", 10)
	clock.Advance(11)
	c.Get("k")

	if expiredKey != "k" {
		t.Errorf("expected OnExpire called with 'k', got %q", expiredKey)
	}
}

func TestCache_Close_NoPersistence(t *testing.T) {
	c := newTestCache(t, 10, newFakeClock())
	if err := c.Close(); err != nil {
		t.Errorf("Close() on a cache without persistence should not error, got %v", err)
	}
}
