// clock.go: monotonic millisecond clock abstraction
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package quickleaf

import (
	"github.com/agilira/go-timecache"
)

// Clock provides the current time in milliseconds for expiration arithmetic.
// Implementations must be monotonically non-decreasing and cheap enough to
// call on every read: the engine calls Now() at most O(1) times per point
// operation and exactly once per CleanupExpired sweep.
type Clock interface {
	// Now returns the current time in milliseconds since the Unix epoch.
	Now() int64
}

// systemClock is the default Clock, backed by go-timecache's cached
// monotonic reads to avoid a syscall on every operation.
type systemClock struct{}

func (systemClock) Now() int64 {
	return timecache.CachedTimeNano() / 1_000_000
}
