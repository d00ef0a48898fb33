// Package pgx implements shopauth's storage ports on PostgreSQL.
package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopauth/shopauth"
)

// DB is the slice of the pgxpool API the adapter uses. *pgxpool.Pool
// satisfies it, as does a pgxmock pool in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Adapter struct {
	db DB
}

var _ shopauth.AuthStorage = (*Adapter)(nil)

func New(db DB) *Adapter {
	return &Adapter{
		db: db,
	}
}
