// Package sessiontest provides in-process session doubles for tests that run
// services inside a scope without a database.
package sessiontest

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/iota-uz/org-directory/pkg/session"
)

var ErrNoDatabase = errors.New("sessiontest: no database behind fake session")

type Provider struct {
	mu       sync.Mutex
	conns    []*Conn
	AcquireE error
	// CommitE, when set, is returned by Commit on every conn acquired afterwards.
	CommitE  error
}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Acquire(_ context.Context) (session.Conn, error) {
	if p.AcquireE != nil {
		return nil, p.AcquireE
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	c := &Conn{id: len(p.conns) + 1, commitE: p.CommitE}
	p.conns = append(p.conns, c)
	return c, nil
}

func (p *Provider) Conns() []*Conn {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*Conn(nil), p.conns...)
}

// Conn records transaction use. Query methods fail with ErrNoDatabase.
type Conn struct {
	id        int
	released  atomic.Bool
	begun     atomic.Int32
	committed atomic.Int32
	rolled    atomic.Int32
	pending   atomic.Int32
	commitE   error
}

func (c *Conn) ID() int            { return c.id }
func (c *Conn) Released() bool     { return c.released.Load() }
func (c *Conn) Begun() int         { return int(c.begun.Load()) }
func (c *Conn) Committed() int     { return int(c.committed.Load()) }
func (c *Conn) RolledBack() int    { return int(c.rolled.Load()) }
func (c *Conn) PendingWrites() int { return int(c.pending.Load()) }

// Write stands in for an uncommitted statement on this session.
func (c *Conn) Write() {
	c.pending.Add(1)
}

func (c *Conn) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, ErrNoDatabase
}

func (c *Conn) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, ErrNoDatabase
}

func (c *Conn) QueryRow(context.Context, string, ...any) pgx.Row {
	return errRow{}
}

func (c *Conn) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults {
	return nil
}

func (c *Conn) Begin(context.Context) (pgx.Tx, error) {
	c.begun.Add(1)
	return &Tx{conn: c}, nil
}

func (c *Conn) Ping(context.Context) error {
	if c.released.Load() {
		return errors.New("sessiontest: ping on released conn")
	}
	return nil
}

func (c *Conn) Release() {
	c.pending.Store(0)
	c.released.Store(true)
}

type errRow struct{}

func (errRow) Scan(...any) error { return ErrNoDatabase }

// Tx implements only the transaction lifecycle; other pgx.Tx methods panic.
// Begin on a Tx stands in for a savepoint and is counted on the owning Conn.
type Tx struct {
	pgx.Tx
	conn *Conn
	done bool
}

func (t *Tx) Begin(ctx context.Context) (pgx.Tx, error) {
	if t.done {
		return nil, pgx.ErrTxClosed
	}
	return t.conn.Begin(ctx)
}

func (t *Tx) Commit(context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	if t.conn.commitE != nil {
		t.conn.rolled.Add(1)
		t.conn.pending.Store(0)
		return t.conn.commitE
	}
	t.conn.committed.Add(1)
	t.conn.pending.Store(0)
	return nil
}

func (t *Tx) Rollback(context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.conn.rolled.Add(1)
	t.conn.pending.Store(0)
	return nil
}

func (t *Tx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.conn.Exec(ctx, sql, args...)
}

func (t *Tx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return t.conn.Query(ctx, sql, args...)
}

func (t *Tx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.conn.QueryRow(ctx, sql, args...)
}

func (t *Tx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	return t.conn.SendBatch(ctx, b)
}
