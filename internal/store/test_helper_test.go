package store

import (
	"context"
	"embed"
	"os"
	"testing"

	"github.com/vntrieu/usersvc/internal/database"
)

//go:embed testdata/migrations/*.sql
var fixtureMigrations embed.FS

// setupTestDB lays down the users fixture schema in the database named by
// TEST_DATABASE_URL and empties the table. It skips the test when the variable is unset.
func setupTestDB(t *testing.T) string {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL environment variable is required for database tests")
	}

	ctx := context.Background()
	conn, err := database.Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	defer conn.Close(ctx)

	if err := database.ApplyFixtures(ctx, conn, fixtureMigrations, "testdata/migrations"); err != nil {
		t.Fatalf("apply fixtures: %v", err)
	}
	if _, err := conn.Exec(ctx, "DELETE FROM users"); err != nil {
		t.Fatalf("cleanup users: %v", err)
	}

	return dsn
}

func seedUsers(t *testing.T, dsn string, names ...string) {
	t.Helper()

	ctx := context.Background()
	conn, err := database.Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer conn.Close(ctx)

	for i, name := range names {
		if _, err := conn.Exec(ctx, "INSERT INTO users (id, name) VALUES ($1, $2)", i+1, name); err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
	}
}
