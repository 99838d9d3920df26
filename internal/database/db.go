package database

import (
	"context"
	"database/sql"
)

// DB is the single-statement surface the repositories use. Every
// mutation is one atomic statement; the repositories never open
// multi-statement transactions. SQLDB exposes the stdlib handle the
// migration runner needs for transactional schema changes.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	SQLDB() *sql.DB
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
