// coordinator.go: write-behind persistence coordinator
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package persistence

import (
	"fmt"
	"sync"
)

// Config configures the optional write-behind durable store (spec §4.5).
type Config struct {
	// Path is the filesystem path of the embedded SQL store file. It is
	// created if absent.
	Path string

	// Codec encodes/decodes stored values to/from their durable blob
	// representation. If nil, GobCodec{} is used.
	Codec Codec
}

// Record is one recovered durable entry, decoded back to its in-memory
// value (spec §4.5 "Recovery").
type Record struct {
	Key         string
	Value       interface{}
	CreatedAtMs int64
	TTLMs       *int64
}

// SkipInfo describes one row dropped during recovery because its blob
// failed to decode (spec §7 "CodecFailure").
type SkipInfo struct {
	Key string
	Err error
}

// Coordinator runs the dedicated write-behind worker described in spec
// §4.5: the facade enqueues operations into an unbounded in-memory queue,
// and a single background goroutine is the sole writer to the durable
// store.
type Coordinator struct {
	store *Store
	codec Codec

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []Op
	closed bool
	wg     sync.WaitGroup

	// OnWriteError is called from the worker goroutine when a batch
	// fails to commit. It must not block; the worker does not retry and
	// continues processing subsequent batches (at-most-once best-effort
	// durability).
	OnWriteError func(error)
}

// NewCoordinator opens the durable store at cfg.Path, applies cfg
// defaults, and starts the background worker. The store is ready to
// Recover from immediately; Recover should be called before any Enqueue
// so recovered state precedes new writes.
func NewCoordinator(cfg Config) (*Coordinator, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("persistence: path is required")
	}
	if cfg.Codec == nil {
		cfg.Codec = GobCodec{}
	}

	store, err := Open(cfg.Path)
	if err != nil {
		return nil, err
	}

	c := &Coordinator{store: store, codec: cfg.Codec}
	c.cond = sync.NewCond(&c.mu)
	c.wg.Add(1)
	go c.run()
	return c, nil
}

// Recover reads every durable row and decodes it via the configured
// codec. Rows that fail to decode are reported in skipped rather than
// failing the call (spec §7: "a row that fails to deserialize is logged
// and skipped"). Filtering logically-absent rows by TTL is the caller's
// responsibility, since only the caller has a Clock.
func (c *Coordinator) Recover() (records []Record, skipped []SkipInfo, err error) {
	rows, err := c.store.LoadAll()
	if err != nil {
		return nil, nil, err
	}

	for _, row := range rows {
		value, decErr := c.codec.Decode(row.ValueBlob)
		if decErr != nil {
			skipped = append(skipped, SkipInfo{Key: row.Key, Err: decErr})
			continue
		}
		records = append(records, Record{
			Key:         row.Key,
			Value:       value,
			CreatedAtMs: row.CreatedAtMs,
			TTLMs:       row.TTLMs,
		})
	}
	return records, skipped, nil
}

// Enqueue appends op to the write-behind queue without blocking on the
// durable store. Returns the queue depth immediately after enqueue, for
// metrics reporting.
func (c *Coordinator) Enqueue(op Op) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return len(c.queue)
	}
	c.queue = append(c.queue, op)
	depth := len(c.queue)
	c.cond.Signal()
	return depth
}

// EnqueueUpsert encodes value and enqueues an Upsert operation.
func (c *Coordinator) EnqueueUpsert(key string, value interface{}, createdAtMs int64, ttlMs *int64) (int, error) {
	blob, err := c.codec.Encode(value)
	if err != nil {
		return 0, err
	}
	return c.Enqueue(Op{
		Kind:        OpUpsert,
		Key:         key,
		ValueBlob:   blob,
		CreatedAtMs: createdAtMs,
		TTLMs:       ttlMs,
	}), nil
}

// EnqueueDelete enqueues a Delete operation.
func (c *Coordinator) EnqueueDelete(key string) int {
	return c.Enqueue(Op{Kind: OpDelete, Key: key})
}

// EnqueueClear enqueues a Clear operation.
func (c *Coordinator) EnqueueClear() int {
	return c.Enqueue(Op{Kind: OpClear})
}

// run is the dedicated background worker loop. It dequeues the entire
// pending batch, releases the lock, and applies the batch within a single
// transaction, matching spec §4.5's "dequeues and applies in order within
// a single write transaction per batch".
func (c *Coordinator) run() {
	defer c.wg.Done()
	for {
		c.mu.Lock()
		for len(c.queue) == 0 && !c.closed {
			c.cond.Wait()
		}
		if len(c.queue) == 0 && c.closed {
			c.mu.Unlock()
			return
		}
		batch := c.queue
		c.queue = nil
		c.mu.Unlock()

		if err := c.store.ApplyBatch(batch); err != nil && c.OnWriteError != nil {
			c.OnWriteError(err)
		}
	}
}

// Close drains the queue, stops the worker, and closes the durable store
// handle (spec §4.5 "Shutdown"). Events enqueued before Close returns are
// flushed before the durable store is closed.
func (c *Coordinator) Close() error {
	c.mu.Lock()
	c.closed = true
	c.cond.Broadcast()
	c.mu.Unlock()

	c.wg.Wait()
	return c.store.Close()
}
