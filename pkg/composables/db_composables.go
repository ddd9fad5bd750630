package composables

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/iota-uz/org-directory/pkg/constants"
	"github.com/iota-uz/org-directory/pkg/repo"
	"github.com/iota-uz/org-directory/pkg/session"
)

var ErrNoScope = errors.New("no session scope found in context")

func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, constants.TxKey, tx)
}

// UseTx resolves the handle repositories run queries on: the transaction in
// progress if there is one, otherwise the current scope's session.
func UseTx(ctx context.Context) (repo.Tx, error) {
	if tx, ok := ctx.Value(constants.TxKey).(pgx.Tx); ok {
		return tx, nil
	}
	scope, err := UseScope(ctx)
	if err != nil {
		return nil, err
	}
	return scope.Session(ctx)
}

func WithScope(ctx context.Context, scope *session.Scope) context.Context {
	return context.WithValue(ctx, constants.ScopeKey, scope)
}

func UseScope(ctx context.Context) (*session.Scope, error) {
	scope, ok := ctx.Value(constants.ScopeKey).(*session.Scope)
	if !ok || scope == nil {
		return nil, ErrNoScope
	}
	return scope, nil
}

// BeginTx starts a transaction on the scope's session, or returns the one already in ctx.
func BeginTx(ctx context.Context) (pgx.Tx, error) {
	if tx, ok := ctx.Value(constants.TxKey).(pgx.Tx); ok {
		return tx.Begin(ctx)
	}
	scope, err := UseScope(ctx)
	if err != nil {
		return nil, err
	}
	conn, err := scope.Session(ctx)
	if err != nil {
		return nil, err
	}
	return conn.Begin(ctx)
}

// InTx runs fn in a transaction on the scope's session. Nested calls use a savepoint.
func InTx(ctx context.Context, fn func(context.Context) error) error {
	tx, err := BeginTx(ctx)
	if err != nil {
		return err
	}

	if err := fn(WithTx(ctx, tx)); err != nil {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			return errors.Join(err, rErr)
		}
		return err
	}
	return tx.Commit(ctx)
}
