package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultBusyTimeout is how long a statement waits on a locked database.
const DefaultBusyTimeout = 5 * time.Second

type openOptions struct {
	busyTimeout time.Duration
}

// Option tunes the connection made by Open.
type Option func(*openOptions)

// WithBusyTimeout overrides DefaultBusyTimeout. Non-positive values are ignored.
func WithBusyTimeout(d time.Duration) Option {
	return func(o *openOptions) {
		if d > 0 {
			o.busyTimeout = d
		}
	}
}

// dsn builds the go-sqlite3 connection string for the portal database.
func dsn(path string, o openOptions) string {
	q := url.Values{}
	q.Set("_foreign_keys", "on")
	q.Set("_busy_timeout", strconv.FormatInt(o.busyTimeout.Milliseconds(), 10))
	return "file:" + path + "?" + q.Encode()
}

// Open opens the portal's sqlite database at path and checks that it is
// reachable. All access goes through a single connection.
func Open(path string, opts ...Option) (*sql.DB, error) {
	o := openOptions{busyTimeout: DefaultBusyTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	db, err := sql.Open("sqlite3", dsn(path, o))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}

// WithTx runs fn in a transaction bound to ctx. The transaction is rolled
// back when fn fails or ctx is cancelled before commit.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Now is the timestamp stored on portal rows: UTC, whole seconds.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
