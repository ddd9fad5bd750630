package itf

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iota-uz/org-directory/pkg/application"
	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/session"
)

// TestContext builds a migrated database plus a session scope for
// integration tests against Postgres.
type TestContext struct {
	modules []application.Module
	dbName  string
}

func NewTestContext() *TestContext {
	return &TestContext{}
}

func (tc *TestContext) WithModules(modules ...application.Module) *TestContext {
	tc.modules = append(tc.modules, modules...)
	return tc
}

func (tc *TestContext) WithDBName(name string) *TestContext {
	tc.dbName = name
	return tc
}

// Build skips the test when Postgres cannot be reached. Everything the test
// writes happens in one transaction on the scope's session and is rolled
// back on cleanup.
func (tc *TestContext) Build(tb testing.TB) *TestEnvironment {
	tb.Helper()
	if tc.dbName == "" {
		tc.dbName = tb.Name()
	}

	CreateDB(tb, tc.dbName)
	pool := NewPool(tb, DbOpts(tc.dbName))

	ctx := context.Background()
	app, err := SetupApplication(ctx, pool, tc.modules...)
	if err != nil {
		pool.Close()
		tb.Fatal(err)
	}

	registry := app.Sessions()
	scope := registry.Open()
	ctx = composables.WithScope(ctx, scope)
	tx, err := composables.BeginTx(ctx)
	if err != nil {
		registry.Close(scope)
		pool.Close()
		tb.Fatal(err)
	}
	ctx = composables.WithTx(ctx, tx)

	tb.Cleanup(func() {
		if err := tx.Rollback(context.Background()); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			tb.Logf("Warning: failed to rollback transaction: %v", err)
		}
		registry.Close(scope)
		pool.Close()
	})

	return &TestEnvironment{
		Ctx:   ctx,
		Pool:  pool,
		Tx:    tx,
		App:   app,
		Scope: scope,
	}
}

type TestEnvironment struct {
	Ctx   context.Context
	Pool  *pgxpool.Pool
	Tx    pgx.Tx
	App   application.Application
	Scope *session.Scope
}

func (te *TestEnvironment) Service(service interface{}) interface{} {
	return te.App.Service(service)
}

// GetService is a generic helper that retrieves and casts a service
func GetService[T any](te *TestEnvironment) *T {
	var zero T
	return te.App.Service(zero).(*T)
}
