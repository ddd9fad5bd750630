package repo

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/iota-uz/org-directory/pkg/serrors"
)

var ErrNotFound = errors.New("record not found")

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// MapError normalizes driver errors: missing rows become ErrNotFound and
// integrity violations become serrors.NotUnique. Anything else is returned as is.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation:
			cause := pgErr.Detail
			if cause == "" {
				cause = pgErr.ConstraintName
			}
			return serrors.Wrap(serrors.NotUnique, err).WithCause("%s", cause)
		}
	}
	return err
}
