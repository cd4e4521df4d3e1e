package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vntrieu/usersvc/internal/database"
)

// Row is one users row as the driver decoded it, in column order.
// The schema belongs to the database; nothing here models it.
type Row []any

// Conn is the part of *pgx.Conn the store needs.
type Conn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close(ctx context.Context) error
}

// Dialer opens a new connection. Every call must return a connection nobody else holds.
type Dialer func(ctx context.Context) (Conn, error)

// DialPostgres returns a Dialer that opens a fresh pgx connection to dsn on each call.
func DialPostgres(dsn string) Dialer {
	return func(ctx context.Context) (Conn, error) {
		conn, err := database.Connect(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}
}

// UserStore reads the users table.
type UserStore struct {
	dial  Dialer
	query string
}

// NewUserStore creates a UserStore that runs query on a connection from dial.
func NewUserStore(dial Dialer, query string) *UserStore {
	return &UserStore{dial: dial, query: query}
}

// ListUsers opens a connection, runs the users query, collects every row and closes the
// connection on every return path. The result is never nil.
func (s *UserStore) ListUsers(ctx context.Context) ([]Row, error) {
	conn, err := s.dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	// WithoutCancel so a cancelled request still releases the connection.
	defer conn.Close(context.WithoutCancel(ctx))

	rows, err := conn.Query(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]Row, 0)
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("list users: read row: %w", err)
		}
		out = append(out, normalizeRow(vals))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return out, nil
}

// normalizeRow rewrites values whose JSON form would be unreadable. pgx decodes uuid
// columns to [16]byte, which encoding/json turns into a number array.
func normalizeRow(vals []any) Row {
	row := make(Row, len(vals))
	for i, v := range vals {
		switch tv := v.(type) {
		case [16]byte:
			row[i] = uuid.UUID(tv).String()
		default:
			row[i] = v
		}
	}
	return row
}
