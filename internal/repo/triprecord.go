// Package repo contains all database access logic for the Travel Assistant
// API. The trip is persisted as a single JSON document under a fixed key, so
// the repo exposes key-value semantics over one jsonb table. No business
// logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mgagnon/travel-assistant/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each
// test, giving free per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RecordRepo defines the persistence operations for the serialized trip
// record. The store depends on this interface, not the concrete Postgres
// implementation, which allows it to be unit-tested with an in-memory
// double.
type RecordRepo interface {
	// Get returns the JSON document stored under key.
	// Returns domain.ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores data under key, replacing any previous document.
	Set(ctx context.Context, key, data string) error

	// Remove deletes the document under key. Removing an absent key is a
	// no-op, matching key-value erase semantics.
	Remove(ctx context.Context, key string) error
}

// pgRecordRepo is the Postgres implementation of RecordRepo.
type pgRecordRepo struct {
	db db
}

// NewRecordRepo constructs a RecordRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback
// isolation.
func NewRecordRepo(db db) RecordRepo {
	return &pgRecordRepo{db: db}
}

// Get retrieves the document stored under key.
func (r *pgRecordRepo) Get(ctx context.Context, key string) (string, error) {
	const q = `
		SELECT data::text
		FROM trip_records
		WHERE key = @key`

	var data string
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("repo.RecordRepo.Get: %w", domain.ErrNotFound)
		}
		return "", fmt.Errorf("repo.RecordRepo.Get: %w", err)
	}
	return data, nil
}

// Set upserts the document under key. Last writer wins; there is no
// conflict detection, matching the single-writer assumption.
func (r *pgRecordRepo) Set(ctx context.Context, key, data string) error {
	const q = `
		INSERT INTO trip_records (key, data)
		VALUES (@key, @data::jsonb)
		ON CONFLICT (key) DO UPDATE
		SET data = EXCLUDED.data, updated_at = now()`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "data": data}); err != nil {
		return fmt.Errorf("repo.RecordRepo.Set: %w", err)
	}
	return nil
}

// Remove deletes the document under key, succeeding even when it is absent.
func (r *pgRecordRepo) Remove(ctx context.Context, key string) error {
	const q = `DELETE FROM trip_records WHERE key = @key`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": key}); err != nil {
		return fmt.Errorf("repo.RecordRepo.Remove: %w", err)
	}
	return nil
}
