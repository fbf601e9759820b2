// Package testhelper runs a disposable Postgres for integration and e2e
// tests and seeds rows the service itself never inserts.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dawoodjaved5/soventure-project/migrations"
)

const (
	image    = "postgres:17-alpine"
	dbUser   = "soventure"
	dbPass   = "soventure"
	dbName   = "soventure_test"
	bootWait = 2 * time.Minute
)

type sharedDB struct {
	once sync.Once
	dsn  string
	err  error
}

var shared sharedDB

// SetupTestDB returns a pool on a migrated database. The container starts
// once per test binary; each caller gets its own pool, closed on cleanup.
// Tests isolate themselves by seeding fresh user ids.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	shared.once.Do(func() {
		shared.dsn, shared.err = bootDatabase()
	})
	if shared.err != nil {
		t.Fatalf("testhelper: %v", shared.err)
	}

	cfg, err := pgxpool.ParseConfig(shared.dsn)
	if err != nil {
		t.Fatalf("testhelper: parse dsn: %v", err)
	}
	cfg.MaxConns = 4

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		t.Fatalf("testhelper: open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func bootDatabase() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), bootWait)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     dbUser,
				"POSTGRES_PASSWORD": dbPass,
				"POSTGRES_DB":       dbName,
			},
			// The entrypoint restarts postgres once after init, hence two occurrences.
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			).WithDeadline(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", image, err)
	}

	endpoint, err := container.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("resolve endpoint: %w", err)
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", dbUser, dbPass, endpoint, dbName)

	if err := migrate(ctx, dsn); err != nil {
		return "", err
	}
	return dsn, nil
}

func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
