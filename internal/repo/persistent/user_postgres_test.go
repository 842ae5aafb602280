package persistent

import (
	"context"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/avdeev/courtside-media/internal/entity"
	"github.com/avdeev/courtside-media/pkg/postgres"
	"github.com/avdeev/courtside-media/pkg/types/errs"
)

func newPG(t *testing.T) (*postgres.Postgres, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	pg := &postgres.Postgres{
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		Pool:    mock,
	}
	return pg, mock
}

func TestUserRepo_Create_ReturnsAssignedID(t *testing.T) {
	pg, mock := newPG(t)
	defer mock.Close()
	r := NewUserRepo(pg)
	ctx := context.Background()

	u := &entity.User{Name: "Alice", Age: 30, City: "New York", CreatedAt: time.Now().UTC()}

	mock.ExpectQuery(`INSERT INTO users .+ RETURNING id`).
		WithArgs(u.Name, u.Age, u.City, u.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	require.NoError(t, r.Create(ctx, u))
	require.EqualValues(t, 7, u.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_ListAll_NewestFirst(t *testing.T) {
	pg, mock := newPG(t)
	defer mock.Close()
	r := NewUserRepo(pg)
	ctx := context.Background()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, name, age, city, created_at FROM users ORDER BY created_at DESC, id DESC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "age", "city", "created_at"}).
			AddRow(int64(2), "Bob", 25, "San Francisco", now).
			AddRow(int64(1), "Alice", 30, "New York", now.Add(-time.Minute)))

	users, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.EqualValues(t, 2, users[0].ID)
	require.Equal(t, "Alice", users[1].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByID(t *testing.T) {
	pg, mock := newPG(t)
	defer mock.Close()
	r := NewUserRepo(pg)
	ctx := context.Background()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, name, age, city, created_at FROM users WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "age", "city", "created_at"}).
			AddRow(int64(1), "Alice", 30, "New York", now))

	u, err := r.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Alice", u.Name)

	mock.ExpectQuery(`SELECT id, name, age, city, created_at FROM users WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	_, err = r.GetByID(ctx, 42)
	require.ErrorIs(t, err, errs.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Count(t *testing.T) {
	pg, mock := newPG(t)
	defer mock.Close()
	r := NewUserRepo(pg)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := r.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)

	require.NoError(t, mock.ExpectationsWereMet())
}
