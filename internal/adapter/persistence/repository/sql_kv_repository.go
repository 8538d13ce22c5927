package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"moap_dashboard/internal/usecase/interfaces"
)

// Dialect holds the statements that differ between SQL engines.
type Dialect struct {
	Name   string
	Create string
	Select string
	Upsert string
	Delete string
}

var (
	SQLiteDialect = Dialect{
		Name: "sqlite",
		Create: `CREATE TABLE IF NOT EXISTS kv_state (
			key TEXT PRIMARY KEY,
			payload BLOB NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		Select: `SELECT payload FROM kv_state WHERE key = ?`,
		Upsert: `INSERT INTO kv_state(key, payload, updated_at) VALUES(?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		Delete: `DELETE FROM kv_state WHERE key = ?`,
	}

	PostgresDialect = Dialect{
		Name: "postgres",
		Create: `CREATE TABLE IF NOT EXISTS kv_state (
			key TEXT PRIMARY KEY,
			payload BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		Select: `SELECT payload FROM kv_state WHERE key = $1`,
		Upsert: `INSERT INTO kv_state(key, payload, updated_at) VALUES($1, $2, $3)
			ON CONFLICT(key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		Delete: `DELETE FROM kv_state WHERE key = $1`,
	}
)

// SQLKV keeps one row per key in the kv_state table.
type SQLKV struct {
	db      *sql.DB
	dialect Dialect
}

var _ interfaces.IKeyValueStore = (*SQLKV)(nil)

// NewSQLKV ensures the kv_state table exists.
func NewSQLKV(ctx context.Context, db *sql.DB, dialect Dialect) (*SQLKV, error) {
	if _, err := db.ExecContext(ctx, dialect.Create); err != nil {
		return nil, fmt.Errorf("create kv_state table (%s): %w", dialect.Name, err)
	}
	return &SQLKV{db: db, dialect: dialect}, nil
}

func (s *SQLKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}
	var payload []byte
	err := s.db.QueryRowContext(ctx, s.dialect.Select, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s: %w", key, err)
	}
	return payload, true, nil
}

func (s *SQLKV) Put(ctx context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if value == nil {
		value = []byte{}
	}
	if _, err := s.db.ExecContext(ctx, s.dialect.Upsert, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *SQLKV) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, s.dialect.Delete, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *SQLKV) Close() error {
	return s.db.Close()
}
