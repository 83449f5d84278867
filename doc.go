// Package quickleaf provides a bounded, ordered, in-process key/value
// cache with per-entry TTL, filtered/ordered enumeration, change
// notifications, and an optional durable write-behind store.
//
// # Overview
//
// quickleaf is a library, not a service: it is embedded in a single host
// process and has no network protocol of its own. The engine keeps
// entries in insertion order, evicts the oldest entry on overflow, and
// treats TTL-elapsed entries as logically absent even before they are
// physically swept. A single background worker, used only when
// persistence is enabled, writes mutations to an embedded SQLite file so
// a later process can recover the same cache contents.
//
// # Features
//
//   - Bounded capacity with FIFO-by-insertion eviction (not LRU-by-access)
//   - Per-entry TTL with lazy expiration on read plus an explicit CleanupExpired sweep
//   - Filtered, ordered, paginated enumeration via List
//   - Non-blocking Insert/Remove/Clear change notifications
//   - Optional write-behind persistence to a local SQLite file
//   - Structured errors with error codes via go-errors
//
// # Quick Start
//
//	cache, err := quickleaf.New(quickleaf.Config{
//	    Capacity: 10_000,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cache.Close()
//
//	cache.Insert("user:123", "Alice")
//
//	if value, found := cache.Get("user:123"); found {
//	    fmt.Println(value)
//	}
//
// # Per-entry TTL
//
// InsertWithTTL takes an explicit lifetime in milliseconds. A key
// inserted without one falls back to the engine's default TTL, set at
// construction via Config.DefaultTTL or later via SetDefaultTTL:
//
//	cache.InsertWithTTL("session:abc", token, 30_000)
//
// # Enumeration
//
// List returns entries in lexicographic byte order, independent of
// insertion order, with optional filtering and pagination:
//
//	pairs, err := cache.List(quickleaf.ListOptions{
//	    Filter:     quickleaf.StartsWith("user:"),
//	    Order:      quickleaf.Ascending,
//	    StartAfter: "user:2",
//	    Limit:      10,
//	})
//
// # Change notifications
//
// Wiring an EventSink at construction makes Insert/Remove/Clear emit
// Event values. Delivery is best-effort: a full or unattached sink drops
// the event rather than blocking the caller.
//
//	events := make(chan quickleaf.Event, 64)
//	cache, _ := quickleaf.New(quickleaf.Config{
//	    Events: quickleaf.NewChannelEventSink(events),
//	})
//
// # Durable write-behind persistence
//
// Setting Config.Persistence opens (or creates) a local SQLite file and
// recovers any entries left from a prior run before New returns:
//
//	cache, err := quickleaf.New(quickleaf.Config{
//	    Capacity: 10_000,
//	    Persistence: &persistence.Config{
//	        Path: "/var/lib/myapp/cache.db",
//	    },
//	})
//
// Writes are enqueued to an unbounded in-memory queue and applied by a
// dedicated background worker; Insert/Remove/Clear never block on the
// durable commit.
//
// # Concurrency
//
// A Cache is single-owner: its methods are not safe for concurrent use
// by multiple goroutines without external synchronization. Only the
// persistence worker, which never touches the in-memory entry store,
// runs on its own goroutine.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package quickleaf
