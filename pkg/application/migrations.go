package application

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
	"github.com/sirupsen/logrus"
)

var ErrNoPool = errors.New("migrations: no database pool configured")

type MigrationStatus struct {
	Module    string
	Version   int64
	Path      string
	Applied   bool
	AppliedAt time.Time
}

type schema struct {
	module string
	fsys   fs.FS
}

// NewMigrationManager runs each module's goose migrations against its own
// version table, in registration order on the way up and in reverse on the
// way down, so schemas may reference tables of modules registered earlier.
func NewMigrationManager(pool *pgxpool.Pool, logger *logrus.Logger) MigrationManager {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &migrationManager{pool: pool, logger: logger}
}

type migrationManager struct {
	pool    *pgxpool.Pool
	logger  *logrus.Logger
	schemas []schema
}

func (m *migrationManager) RegisterSchema(module string, migrations fs.FS) {
	m.schemas = append(m.schemas, schema{module: module, fsys: migrations})
}

func versionTable(module string) string {
	return fmt.Sprintf("goose_%s_version", module)
}

func (m *migrationManager) withProviders(fn func(s schema, p *goose.Provider) error, reverse bool) error {
	if m.pool == nil {
		return ErrNoPool
	}
	db := stdlib.OpenDBFromPool(m.pool)
	defer db.Close()

	order := make([]schema, len(m.schemas))
	copy(order, m.schemas)
	if reverse {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}
	for _, s := range order {
		provider, err := newProvider(db, s)
		if err != nil {
			return err
		}
		err = fn(s, provider)
		if cErr := provider.Close(); cErr != nil && err == nil {
			err = cErr
		}
		if err != nil {
			return fmt.Errorf("migrations for %s: %w", s.module, err)
		}
	}
	return nil
}

func newProvider(db *sql.DB, s schema) (*goose.Provider, error) {
	store, err := database.NewStore(database.DialectPostgres, versionTable(s.module))
	if err != nil {
		return nil, err
	}
	return goose.NewProvider("", db, s.fsys, goose.WithStore(store))
}

func (m *migrationManager) Run(ctx context.Context) error {
	return m.withProviders(func(s schema, p *goose.Provider) error {
		results, err := p.Up(ctx)
		for _, r := range results {
			m.logger.WithFields(logrus.Fields{
				"module":   s.module,
				"version":  r.Source.Version,
				"duration": r.Duration,
			}).Info("migration applied")
		}
		return err
	}, false)
}

// Rollback reverts every applied migration.
func (m *migrationManager) Rollback(ctx context.Context) error {
	return m.withProviders(func(s schema, p *goose.Provider) error {
		results, err := p.DownTo(ctx, 0)
		for _, r := range results {
			m.logger.WithFields(logrus.Fields{
				"module":  s.module,
				"version": r.Source.Version,
			}).Info("migration rolled back")
		}
		return err
	}, true)
}

func (m *migrationManager) Status(ctx context.Context) ([]MigrationStatus, error) {
	var out []MigrationStatus
	err := m.withProviders(func(s schema, p *goose.Provider) error {
		statuses, err := p.Status(ctx)
		if err != nil {
			return err
		}
		for _, st := range statuses {
			out = append(out, MigrationStatus{
				Module:    s.module,
				Version:   st.Source.Version,
				Path:      st.Source.Path,
				Applied:   st.State == goose.StateApplied,
				AppliedAt: st.AppliedAt,
			})
		}
		return nil
	}, false)
	return out, err
}
