package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// KV is the flat persistence contract the typed repos depend on. Values are
// opaque blobs; the repos layer JSON on top.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Store is the SQLite-backed KV. Store.Update runs a mutation against a
// transactional view so multi-key rewrites (rename migration, friend edges)
// land atomically.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return kvGet(ctx, s.db, key)
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	return kvPut(ctx, s.db, key, value)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return kvDelete(ctx, s.db, key)
}

func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	return kvKeys(ctx, s.db, prefix)
}

// Update runs fn inside a SQL transaction against a KV view of that
// transaction. Returning an error rolls everything back.
func (s *Store) Update(ctx context.Context, fn func(kv KV) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(txStore{tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}

type txStore struct {
	tx *sql.Tx
}

func (t txStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return kvGet(ctx, t.tx, key)
}

func (t txStore) Put(ctx context.Context, key string, value []byte) error {
	return kvPut(ctx, t.tx, key, value)
}

func (t txStore) Delete(ctx context.Context, key string) error {
	return kvDelete(ctx, t.tx, key)
}

func (t txStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	return kvKeys(ctx, t.tx, prefix)
}

func kvGet(ctx context.Context, q querier, key string) ([]byte, bool, error) {
	row := q.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	var value []byte
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, &StorageError{Key: key, Err: err}
	}
	return value, true, nil
}

func kvPut(ctx context.Context, q querier, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return &StorageError{Key: key, Err: err}
	}
	return nil
}

func kvDelete(ctx context.Context, q querier, key string) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return &StorageError{Key: key, Err: err}
	}
	return nil
}

func kvKeys(ctx context.Context, q querier, prefix string) ([]string, error) {
	rows, err := q.QueryContext(ctx, `SELECT key FROM kv WHERE key LIKE ? ORDER BY key ASC`, prefix+"%")
	if err != nil {
		return nil, &StorageError{Key: prefix, Err: err}
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, &StorageError{Key: prefix, Err: err}
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Key: prefix, Err: err}
	}
	return out, nil
}

// getJSON decodes the value under key into v. The bool reports whether the
// key exists.
func getJSON(ctx context.Context, kv KV, key string, v any) (bool, error) {
	data, ok, err := kv.Get(ctx, key)
	if err != nil || !ok {
		return ok, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, &StorageError{Key: key, Err: err}
	}
	return true, nil
}

func putJSON(ctx context.Context, kv KV, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &StorageError{Key: key, Err: err}
	}
	return kv.Put(ctx, key, data)
}
