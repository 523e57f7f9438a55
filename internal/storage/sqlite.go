package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/avoronin/authkeep/internal/common"
	"github.com/avoronin/authkeep/internal/dbx"
	"github.com/avoronin/authkeep/internal/migrations"
)

// SQLite is a Store backed by a single sqlite database file.
type SQLite struct {
	db dbx.DBTX
}

// NewSQLite wraps an existing handle. Both *sql.DB and *sql.Tx work.
func NewSQLite(db dbx.DBTX) *SQLite {
	return &SQLite{db: db}
}

// Open opens (or creates) the database at dsn, applies the embedded
// migrations, and returns a ready store.
func Open(ctx context.Context, dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", common.ErrStorage, dsn, err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migrate %s: %v", common.ErrStorage, dsn, err)
	}

	return NewSQLite(db), nil
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Close releases the underlying database handle. It is a no-op for
// transactional views.
func (s *SQLite) Close() error {
	if db, ok := s.db.(*sql.DB); ok {
		return db.Close()
	}
	return nil
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get kv[%s]: %v", common.ErrStorage, key, err)
	}
	return value, nil
}

func (s *SQLite) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("%w: set kv[%s]: %v", common.ErrStorage, key, err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("%w: delete kv[%s]: %v", common.ErrStorage, key, err)
	}
	return nil
}

func (s *SQLite) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv`)
	if err != nil {
		return fmt.Errorf("%w: clear kv: %v", common.ErrStorage, err)
	}
	return nil
}

// Update wraps fn in a transaction when the store holds a *sql.DB. When the
// store is already a transactional view, fn runs against it directly.
func (s *SQLite) Update(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return fn(ctx, s)
	}
	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, NewSQLite(tx))
	})
	if err != nil {
		return err
	}
	return nil
}
