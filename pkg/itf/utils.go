package itf

import (
	"context"
	"crypto/sha256"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iota-uz/org-directory/pkg/application"
	"github.com/iota-uz/org-directory/pkg/configuration"
	"github.com/iota-uz/org-directory/pkg/eventbus"
)

const (
	// PostgreSQL identifiers are capped at 63 bytes.
	maxDBNameLength  = 63
	hashSuffixLength = 9
)

var nonIdent = regexp.MustCompile(`[^a-z0-9_]+`)

func adminConnString() string {
	c := configuration.Use()
	return fmt.Sprintf(
		"host=%s port=%s user=%s dbname=postgres password=%s sslmode=disable",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password,
	)
}

func DbOpts(name string) string {
	c := configuration.Use()
	return fmt.Sprintf(
		"host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		c.Database.Host, c.Database.Port, c.Database.User, sanitizeDBName(name), c.Database.Password,
	)
}

// CreateDB recreates the named database. Without a reachable server the
// calling test is skipped.
func CreateDB(tb testing.TB, name string) {
	tb.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, adminConnString())
	if err != nil {
		tb.Skipf("postgres unavailable: %v", err)
	}
	defer func() {
		if err := conn.Close(context.Background()); err != nil {
			tb.Logf("closing admin connection: %v", err)
		}
	}()

	ident := pgx.Identifier{sanitizeDBName(name)}.Sanitize()
	if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		tb.Fatal(err)
	}
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		tb.Fatal(err)
	}
}

func NewPool(tb testing.TB, dbOpts string) *pgxpool.Pool {
	tb.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	config, err := pgxpool.ParseConfig(dbOpts)
	if err != nil {
		tb.Fatal(err)
	}
	config.MaxConns = 4
	config.MinConns = 1
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		tb.Fatalf("failed to create database pool: %v", err)
	}
	return pool
}

func SetupApplication(ctx context.Context, pool *pgxpool.Pool, mods ...application.Module) (application.Application, error) {
	conf := configuration.Use()
	app := application.New(&application.ApplicationOptions{
		Pool:     pool,
		EventBus: eventbus.NewEventPublisher(conf.Logger()),
		Logger:   conf.Logger(),
	})
	for _, m := range mods {
		if err := m.Register(app); err != nil {
			return nil, fmt.Errorf("register %s: %w", m.Name(), err)
		}
	}
	if err := app.Migrations().Run(ctx); err != nil {
		return nil, err
	}
	return app, nil
}

// sanitizeDBName lowercases a test name into a valid database name, hashing
// the tail of names that would exceed the identifier limit.
func sanitizeDBName(name string) string {
	sanitized := nonIdent.ReplaceAllString(strings.ToLower(name), "_")
	for strings.Contains(sanitized, "__") {
		sanitized = strings.ReplaceAll(sanitized, "__", "_")
	}
	sanitized = strings.Trim(sanitized, "_")
	if sanitized == "" {
		sanitized = "test_db"
	}
	if len(sanitized) <= maxDBNameLength {
		return sanitized
	}
	sum := sha256.Sum256([]byte(name))
	return fmt.Sprintf("%s_%x", sanitized[:maxDBNameLength-hashSuffixLength], sum[:4])
}
