package pgutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"

	"github.com/0xNexuz/Tempocash/pkg/config"
)

const (
	testDatabase = "tempocash_test"
	testUser     = "tempocash"
	testPassword = "tempocash"
)

// RequireDocker skips t unless DOCKER_HOST is set or a local docker socket exists.
func RequireDocker(t *testing.T) {
	t.Helper()
	if os.Getenv("DOCKER_HOST") != "" {
		return
	}
	home, _ := os.UserHomeDir()
	for _, sock := range []string{
		"/var/run/docker.sock",
		home + "/.docker/run/docker.sock",
		home + "/.colima/default/docker.sock",
	} {
		if _, err := os.Stat(sock); err == nil {
			return
		}
	}
	t.Skip("no docker socket found, skipping postgres test")
}

// SetupTestDB starts a throwaway postgres container and connects to it.
// Both are released when t finishes.
func SetupTestDB(t *testing.T) *bun.DB {
	t.Helper()
	RequireDocker(t)
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(testDatabase),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("postgres container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("postgres container port: %v", err)
	}

	db, err := ConnectDB(ctx, &config.DatabaseConfig{
		Host:     host,
		Port:     port.Int(),
		User:     testUser,
		Password: testPassword,
		Database: testDatabase,
	})
	if err != nil {
		t.Fatalf("connect to postgres container: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// AssertTableExists fails t unless table is in the public schema.
func AssertTableExists(t *testing.T, db *bun.DB, table string) {
	t.Helper()
	if !exists(t, db, "information_schema.tables", "table_schema", "table_name", table) {
		t.Errorf("expected table %s to exist", table)
	}
}

// AssertTableNotExists fails t if table is in the public schema.
func AssertTableNotExists(t *testing.T, db *bun.DB, table string) {
	t.Helper()
	if exists(t, db, "information_schema.tables", "table_schema", "table_name", table) {
		t.Errorf("expected table %s to be gone", table)
	}
}

// AssertIndexExists fails t unless index is in the public schema.
func AssertIndexExists(t *testing.T, db *bun.DB, index string) {
	t.Helper()
	if !exists(t, db, "pg_indexes", "schemaname", "indexname", index) {
		t.Errorf("expected index %s to exist", index)
	}
}

// AssertRowCount fails t unless table holds want rows.
func AssertRowCount(t *testing.T, db *bun.DB, table string, want int) {
	t.Helper()
	got, err := db.NewSelect().TableExpr("?", bun.Ident(table)).Count(context.Background())
	if err != nil {
		t.Fatalf("count rows of %s: %v", table, err)
	}
	if got != want {
		t.Errorf("%s: expected %d rows, got %d", table, want, got)
	}
}

func exists(t *testing.T, db *bun.DB, catalog, schemaCol, nameCol, name string) bool {
	t.Helper()
	var found bool
	err := db.NewSelect().
		ColumnExpr("EXISTS (SELECT 1 FROM ? WHERE ? = 'public' AND ? = ?)",
			bun.Safe(catalog), bun.Ident(schemaCol), bun.Ident(nameCol), name).
		Scan(context.Background(), &found)
	if err != nil {
		t.Fatalf("look up %s in %s: %v", name, catalog, err)
	}
	return found
}
