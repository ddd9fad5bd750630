package session

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iota-uz/org-directory/pkg/repo"
)

// Conn is a database session bound to one scope.
// A connection with an open transaction is discarded on Release.
type Conn interface {
	repo.Tx
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Release()
}

type Provider interface {
	Acquire(ctx context.Context) (Conn, error)
}

type PoolProvider struct {
	pool *pgxpool.Pool
}

func NewPoolProvider(pool *pgxpool.Pool) *PoolProvider {
	return &PoolProvider{pool: pool}
}

func (p *PoolProvider) Acquire(ctx context.Context) (Conn, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return conn, nil
}
