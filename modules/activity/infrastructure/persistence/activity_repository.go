package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/iota-uz/org-directory/modules/activity/domain/aggregates/activity"
	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/repo"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

// maxWalk bounds ancestor walks so a corrupted tree cannot loop forever.
const maxWalk = 64

const (
	activityFindQuery = `SELECT sid, name, parent_sid, created_at, updated_at FROM activity.activity`

	activityByNameQuery = activityFindQuery + ` WHERE name = $1 ORDER BY created_at, sid LIMIT 1`

	activityDescendantsQuery = `
		WITH RECURSIVE root AS (
			SELECT sid FROM activity.activity WHERE name = $1 ORDER BY created_at, sid LIMIT 1
		), tree AS (
			SELECT sid FROM root
			UNION
			SELECT a.sid FROM activity.activity a JOIN tree t ON a.parent_sid = t.sid
		)
		SELECT sid FROM tree`

	activityDepthQuery = `
		WITH RECURSIVE ancestors AS (
			SELECT sid, parent_sid, 0 AS depth FROM activity.activity WHERE sid = $1
			UNION ALL
			SELECT a.sid, a.parent_sid, an.depth + 1
			FROM activity.activity a
			JOIN ancestors an ON a.sid = an.parent_sid
			WHERE an.depth < $2
		)
		SELECT COALESCE(MAX(depth), -1) FROM ancestors`

	activityInsertQuery = `
		INSERT INTO activity.activity (sid, name, parent_sid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	activityUpdateQuery = `UPDATE activity.activity SET name = $1, updated_at = $2 WHERE sid = $3`

	activityDeleteQuery = `DELETE FROM activity.activity WHERE sid = $1`
)

type ActivityRepository struct{}

func NewActivityRepository() activity.Repository {
	return &ActivityRepository{}
}

func notFound(format string, args ...any) error {
	return serrors.Wrap(activity.ErrNotFound, repo.ErrNotFound).WithCause(format, args...)
}

func (r *ActivityRepository) GetBySID(ctx context.Context, sid uuid.UUID) (activity.Activity, error) {
	activities, err := r.queryActivities(ctx, activityFindQuery+" WHERE sid = $1", sid)
	if err != nil {
		return activity.Activity{}, err
	}
	if len(activities) == 0 {
		return activity.Activity{}, notFound("sid %s", sid)
	}
	return activities[0], nil
}

func (r *ActivityRepository) GetByName(ctx context.Context, name string) (activity.Activity, error) {
	activities, err := r.queryActivities(ctx, activityByNameQuery, name)
	if err != nil {
		return activity.Activity{}, err
	}
	if len(activities) == 0 {
		return activity.Activity{}, notFound("name %q", name)
	}
	return activities[0], nil
}

func (r *ActivityRepository) GetAll(ctx context.Context) ([]activity.Activity, error) {
	return r.queryActivities(ctx, activityFindQuery+" ORDER BY created_at, sid")
}

func (r *ActivityRepository) GetAllDescendantActivitySIDs(ctx context.Context, activityName string) ([]uuid.UUID, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, activityDescendantsQuery, activityName)
	if err != nil {
		return nil, repo.MapError(err)
	}
	sids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, repo.MapError(err)
	}
	if sids == nil {
		sids = []uuid.UUID{}
	}
	return sids, nil
}

func (r *ActivityRepository) Depth(ctx context.Context, sid uuid.UUID) (int, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var depth int
	if err := tx.QueryRow(ctx, activityDepthQuery, sid, maxWalk).Scan(&depth); err != nil {
		return 0, repo.MapError(err)
	}
	if depth < 0 {
		return 0, notFound("sid %s", sid)
	}
	return depth, nil
}

func (r *ActivityRepository) Create(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return activity.Activity{}, err
	}
	dbActivity := ToDBActivity(a)
	if _, err := tx.Exec(
		ctx,
		activityInsertQuery,
		dbActivity.SID,
		dbActivity.Name,
		dbActivity.ParentSID,
		dbActivity.CreatedAt,
		dbActivity.UpdatedAt,
	); err != nil {
		return activity.Activity{}, repo.MapError(err)
	}
	return r.GetBySID(ctx, a.SID())
}

func (r *ActivityRepository) Update(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return activity.Activity{}, err
	}
	tag, err := tx.Exec(ctx, activityUpdateQuery, a.Name(), a.UpdatedAt(), a.SID())
	if err != nil {
		return activity.Activity{}, repo.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return activity.Activity{}, notFound("sid %s", a.SID())
	}
	return r.GetBySID(ctx, a.SID())
}

func (r *ActivityRepository) Delete(ctx context.Context, sid uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, activityDeleteQuery, sid)
	if err != nil {
		return repo.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("sid %s", sid)
	}
	return nil
}

func (r *ActivityRepository) queryActivities(ctx context.Context, query string, args ...any) ([]activity.Activity, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, repo.MapError(err)
	}
	defer rows.Close()

	var activities []activity.Activity
	for rows.Next() {
		var row Activity
		if err := rows.Scan(&row.SID, &row.Name, &row.ParentSID, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, ToDomainActivity(row))
	}
	if err := rows.Err(); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, repo.MapError(err)
	}
	return activities, nil
}
