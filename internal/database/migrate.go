package database

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// ApplyFixtures runs the goose migrations in dir of fsys against the database conn points at.
// It is used to lay down test schemas; the service itself never migrates.
func ApplyFixtures(ctx context.Context, conn *pgx.Conn, fsys fs.FS, dir string) error {
	// goose needs a *sql.DB; open a stdlib handle from the same connection config.
	db := stdlib.OpenDB(*conn.Config())
	defer db.Close()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
