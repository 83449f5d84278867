// Package otelmetrics provides an OpenTelemetry-backed MetricsCollector
// for the quickleaf cache engine.
//
// This package implements the quickleaf.MetricsCollector interface using
// OpenTelemetry, enabling automatic percentile calculation (p50, p95,
// p99) and multi-backend export (Prometheus, Jaeger, DataDog, Grafana).
//
// # Usage
//
//	import (
//	    "github.com/agilira/quickleaf"
//	    "github.com/agilira/quickleaf/internal/otelmetrics"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	collector, _ := otelmetrics.NewCollector(provider)
//
//	cache, _ := quickleaf.New(quickleaf.Config{
//	    Capacity:         10_000,
//	    MetricsCollector: collector,
//	})
//
// # Metrics exposed
//
//   - quickleaf_get_latency_ns: histogram of Get/GetMut/ContainsKey latencies
//   - quickleaf_insert_latency_ns: histogram of Insert/InsertWithTTL latencies
//   - quickleaf_remove_latency_ns: histogram of Remove latencies
//   - quickleaf_get_hits_total / quickleaf_get_misses_total: counters
//   - quickleaf_evictions_total: counter of capacity-triggered evictions
//   - quickleaf_expirations_total: counter of TTL-based removals
//   - quickleaf_persistence_queue_depth: gauge-like histogram of write-behind queue depth
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otelmetrics

import (
	"context"
	"errors"

	"github.com/agilira/quickleaf"
	"go.opentelemetry.io/otel/metric"
)

// Collector implements quickleaf.MetricsCollector using OpenTelemetry.
//
// Thread-safety: safe for concurrent use by multiple goroutines. The
// underlying OTEL instruments are thread-safe and lock-free.
type Collector struct {
	getLatency    metric.Int64Histogram
	insertLatency metric.Int64Histogram
	removeLatency metric.Int64Histogram
	hits          metric.Int64Counter
	misses        metric.Int64Counter
	evictions     metric.Int64Counter
	expirations   metric.Int64Counter
	persistDepth  metric.Int64Histogram
}

// Options configures Collector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/agilira/quickleaf"
	MeterName string
}

// Option is a functional option for configuring Collector.
type Option func(*Options)

// WithMeterName sets a custom meter name, useful when distinguishing
// metrics from multiple cache instances.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewCollector creates a new OpenTelemetry-backed MetricsCollector.
// provider must not be nil.
func NewCollector(provider metric.MeterProvider, opts ...Option) (*Collector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{MeterName: "github.com/agilira/quickleaf"}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	c := &Collector{}

	var err error
	c.getLatency, err = meter.Int64Histogram(
		"quickleaf_get_latency_ns",
		metric.WithDescription("Latency of Get/GetMut/ContainsKey operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	c.insertLatency, err = meter.Int64Histogram(
		"quickleaf_insert_latency_ns",
		metric.WithDescription("Latency of Insert/InsertWithTTL operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	c.removeLatency, err = meter.Int64Histogram(
		"quickleaf_remove_latency_ns",
		metric.WithDescription("Latency of Remove operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	c.hits, err = meter.Int64Counter(
		"quickleaf_get_hits_total",
		metric.WithDescription("Total number of cache hits"),
	)
	if err != nil {
		return nil, err
	}

	c.misses, err = meter.Int64Counter(
		"quickleaf_get_misses_total",
		metric.WithDescription("Total number of cache misses"),
	)
	if err != nil {
		return nil, err
	}

	c.evictions, err = meter.Int64Counter(
		"quickleaf_evictions_total",
		metric.WithDescription("Total number of capacity-triggered evictions"),
	)
	if err != nil {
		return nil, err
	}

	c.expirations, err = meter.Int64Counter(
		"quickleaf_expirations_total",
		metric.WithDescription("Total number of TTL-based expirations"),
	)
	if err != nil {
		return nil, err
	}

	c.persistDepth, err = meter.Int64Histogram(
		"quickleaf_persistence_queue_depth",
		metric.WithDescription("Write-behind queue depth observed after enqueue"),
	)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// RecordGet records a Get/GetMut/ContainsKey operation.
func (c *Collector) RecordGet(latencyNs int64, hit bool) {
	ctx := context.Background()
	c.getLatency.Record(ctx, latencyNs)
	if hit {
		c.hits.Add(ctx, 1)
	} else {
		c.misses.Add(ctx, 1)
	}
}

// RecordInsert records an Insert/InsertWithTTL operation.
func (c *Collector) RecordInsert(latencyNs int64) {
	c.insertLatency.Record(context.Background(), latencyNs)
}

// RecordRemove records an explicit Remove operation.
func (c *Collector) RecordRemove(latencyNs int64) {
	c.removeLatency.Record(context.Background(), latencyNs)
}

// RecordEviction records one capacity-triggered eviction.
func (c *Collector) RecordEviction() {
	c.evictions.Add(context.Background(), 1)
}

// RecordExpiration records one lazy or swept expiration.
func (c *Collector) RecordExpiration() {
	c.expirations.Add(context.Background(), 1)
}

// RecordPersistenceQueueDepth records the write-behind queue depth
// observed immediately after an enqueue.
func (c *Collector) RecordPersistenceQueueDepth(depth int) {
	c.persistDepth.Record(context.Background(), int64(depth))
}

var _ quickleaf.MetricsCollector = (*Collector)(nil)
