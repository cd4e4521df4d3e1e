package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usersQuery = "SELECT * FROM users;"

func newMockConn(t *testing.T) pgxmock.PgxConnIface {
	t.Helper()
	mock, err := pgxmock.NewConn(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	return mock
}

func dialMock(mock pgxmock.PgxConnIface) Dialer {
	return func(context.Context) (Conn, error) { return mock, nil }
}

func TestListUsers(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		mock := newMockConn(t)
		mock.ExpectQuery(usersQuery).WillReturnRows(mock.NewRows([]string{"id", "name"}))
		mock.ExpectClose()

		rows, err := NewUserStore(dialMock(mock), usersQuery).ListUsers(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rows in database order", func(t *testing.T) {
		mock := newMockConn(t)
		mock.ExpectQuery(usersQuery).WillReturnRows(
			mock.NewRows([]string{"id", "name"}).
				AddRow(int32(2), "bob").
				AddRow(int32(1), "alice"),
		)
		mock.ExpectClose()

		rows, err := NewUserStore(dialMock(mock), usersQuery).ListUsers(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []Row{{int32(2), "bob"}, {int32(1), "alice"}}, rows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("uuid columns become strings", func(t *testing.T) {
		id := uuid.MustParse("7f1d3c52-5a0e-4d8b-9f3e-2b6c1a4e8d90")
		mock := newMockConn(t)
		mock.ExpectQuery(usersQuery).WillReturnRows(
			mock.NewRows([]string{"id", "name", "deleted_at"}).AddRow([16]byte(id), "carol", nil),
		)
		mock.ExpectClose()

		rows, err := NewUserStore(dialMock(mock), usersQuery).ListUsers(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, Row{id.String(), "carol", nil}, rows[0])
	})

	t.Run("query error closes connection", func(t *testing.T) {
		mock := newMockConn(t)
		mock.ExpectQuery(usersQuery).WillReturnError(errors.New(`relation "users" does not exist`))
		mock.ExpectClose()

		rows, err := NewUserStore(dialMock(mock), usersQuery).ListUsers(context.Background())
		require.Error(t, err)
		assert.Nil(t, rows)
		assert.Contains(t, err.Error(), "list users")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("dial error", func(t *testing.T) {
		dial := func(context.Context) (Conn, error) { return nil, errors.New("no route to host") }

		rows, err := NewUserStore(dial, usersQuery).ListUsers(context.Background())
		require.Error(t, err)
		assert.Nil(t, rows)
		assert.Contains(t, err.Error(), "connect")
	})
}

func TestListUsers_NewConnectionPerCall(t *testing.T) {
	var dials int
	dial := func(context.Context) (Conn, error) {
		dials++
		mock := newMockConn(t)
		mock.ExpectQuery(usersQuery).WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int32(dials)))
		mock.ExpectClose()
		return mock, nil
	}
	s := NewUserStore(dial, usersQuery)

	for i := 1; i <= 3; i++ {
		rows, err := s.ListUsers(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []Row{{int32(i)}}, rows)
	}
	assert.Equal(t, 3, dials)
}
