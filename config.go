// config.go: configuration for quickleaf
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package quickleaf

import "github.com/agilira/quickleaf/persistence"

// Config holds configuration parameters for the cache.
type Config struct {
	// Capacity is the maximum number of entries the cache can hold.
	// Must not be negative. Zero means DefaultCapacity.
	Capacity int

	// DefaultTTL is the time-to-live, in milliseconds, applied to
	// inserts that do not specify one explicitly. Nil means entries
	// never expire by default.
	DefaultTTL *int64

	// Clock supplies the current time for expiration arithmetic. If
	// nil, a default backed by go-timecache is used.
	Clock Clock

	// Logger is used for debugging and monitoring.
	// If nil, NoOpLogger is used. Default: NoOpLogger.
	Logger Logger

	// MetricsCollector is used for collecting operation metrics (latencies, hit/miss rates).
	// If nil, NoOpMetricsCollector is used (zero overhead). Default: NoOpMetricsCollector.
	// Use this to integrate with Prometheus, DataDog, StatsD, or other monitoring systems.
	MetricsCollector MetricsCollector

	// Events receives Insert/Remove/Clear notifications. If nil, events
	// are simply not emitted (spec: a missing channel is the default).
	Events EventSink

	// Persistence enables the write-behind durable store when non-nil.
	Persistence *persistence.Config

	// OnEvict is called when an entry is evicted from the cache due to
	// capacity. This callback must be fast and non-blocking.
	OnEvict func(key string, value interface{})

	// OnExpire is called when an entry expires (TTL-based removal),
	// whether discovered lazily or by CleanupExpired. This callback
	// must be fast and non-blocking.
	OnExpire func(key string, value interface{})
}

// Validate checks configuration parameters and applies sensible defaults.
// Returns an error only for parameters that cannot be silently normalized
// (a negative Capacity or a negative DefaultTTL).
//
// This method is automatically called by New, so you typically don't need
// to call it manually. However, it's provided as a public API if you want
// to inspect the normalized configuration before creating a cache.
//
// Default values applied:
//   - Capacity: DefaultCapacity (10,000) if == 0
//   - Logger: NoOpLogger{} if nil
//   - Clock: systemClock{} if nil
//   - MetricsCollector: NoOpMetricsCollector{} if nil
func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return NewErrInvalidCapacity(c.Capacity)
	}
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}

	if c.DefaultTTL != nil && *c.DefaultTTL < 0 {
		return NewErrInvalidTTL(*c.DefaultTTL)
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.Clock == nil {
		c.Clock = systemClock{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	if c.Persistence != nil && c.Persistence.Codec == nil {
		c.Persistence.Codec = persistence.GobCodec{}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Capacity:         DefaultCapacity,
		Logger:           NoOpLogger{},
		Clock:            systemClock{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}
