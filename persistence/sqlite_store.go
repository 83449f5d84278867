// sqlite_store.go: embedded durable store for write-behind persistence
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package persistence

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// schemaVersion is recorded in the meta table after migration (spec §6).
const schemaVersion = "1"

// Row is one durable record as read back during recovery (spec §4.5
// "Recovery").
type Row struct {
	Key         string
	ValueBlob   []byte
	CreatedAtMs int64
	TTLMs       *int64
}

// OpKind selects the write-behind operation applied to the durable store.
type OpKind int

const (
	// OpUpsert inserts or replaces one row.
	OpUpsert OpKind = iota
	// OpDelete removes one row by key.
	OpDelete
	// OpClear removes every row.
	OpClear
)

// Op is one queued write-behind operation (spec §4.5 "Write path").
type Op struct {
	Kind        OpKind
	Key         string
	ValueBlob   []byte
	CreatedAtMs int64
	TTLMs       *int64
}

// Store is the embedded single-file relational durable store. It is
// exclusively owned by the persistence coordinator's background worker;
// no other goroutine may write to it.
type Store struct {
	db *sql.DB
}

// Open opens (creating if absent) the SQLite file at path and runs its
// migration.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open durable store: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping durable store: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS cache_entries (
		key             TEXT PRIMARY KEY,
		value_blob      BLOB NOT NULL,
		created_at_ms   INTEGER NOT NULL,
		ttl_ms          INTEGER NULL
	);

	CREATE INDEX IF NOT EXISTS idx_created_at ON cache_entries(created_at_ms);

	CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate durable store: %w", err)
	}
	if _, err := s.db.Exec(
		`INSERT OR REPLACE INTO meta(key, value) VALUES ('schema_version', ?)`, schemaVersion,
	); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// ApplyBatch applies ops in order within a single write transaction, the
// shape of the write-behind worker's per-batch commit (spec §4.5
// "Write path").
func (s *Store) ApplyBatch(ops []Op) error {
	if len(ops) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin write-behind batch: %w", err)
	}

	for _, op := range ops {
		switch op.Kind {
		case OpUpsert:
			_, err = tx.Exec(
				`INSERT INTO cache_entries(key, value_blob, created_at_ms, ttl_ms)
				 VALUES (?, ?, ?, ?)
				 ON CONFLICT(key) DO UPDATE SET
					value_blob = excluded.value_blob,
					created_at_ms = excluded.created_at_ms,
					ttl_ms = excluded.ttl_ms`,
				op.Key, op.ValueBlob, op.CreatedAtMs, op.TTLMs,
			)
		case OpDelete:
			_, err = tx.Exec(`DELETE FROM cache_entries WHERE key = ?`, op.Key)
		case OpClear:
			_, err = tx.Exec(`DELETE FROM cache_entries`)
		}
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("apply write-behind op: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit write-behind batch: %w", err)
	}
	return nil
}

// LoadAll reads every row, ordered by created_at_ms ascending then key
// ascending (the insertion-order tiebreak required by spec §4.5
// "Recovery"). Filtering out logically-absent rows is the caller's
// responsibility, since only the caller has a Clock.
func (s *Store) LoadAll() ([]Row, error) {
	rows, err := s.db.Query(
		`SELECT key, value_blob, created_at_ms, ttl_ms FROM cache_entries
		 ORDER BY created_at_ms ASC, key ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("load durable store: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Key, &r.ValueBlob, &r.CreatedAtMs, &r.TTLMs); err != nil {
			return nil, fmt.Errorf("scan durable row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
