package persistent

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avdeev/courtside-media/internal/entity"
	"github.com/avdeev/courtside-media/pkg/postgres"
	"github.com/avdeev/courtside-media/pkg/types/errs"

	"github.com/Masterminds/squirrel"
)

const (
	// Table
	usersTable = "users"

	// Columns
	idColumn        = "id"
	nameColumn      = "name"
	ageColumn       = "age"
	cityColumn      = "city"
	createdAtColumn = "created_at"
)

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pg *postgres.Postgres) *UserRepo {
	return &UserRepo{pg}
}

func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	sql, args, err := r.Builder.
		Insert(usersTable).
		Columns(
			nameColumn,
			ageColumn,
			cityColumn,
			createdAtColumn,
		).
		Values(
			user.Name,
			user.Age,
			user.City,
			user.CreatedAt,
		).
		Suffix("RETURNING " + idColumn).
		ToSql()
	if err != nil {
		return fmt.Errorf("UserRepo - Create - r.Builder.ToSql: %w", err)
	}

	// Pool / Tx
	executor := r.GetExecutor(ctx)

	err = executor.QueryRow(ctx, sql, args...).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("UserRepo - Create - executor.QueryRow.Scan: %w", err)
	}

	return nil
}

// ListAll returns users newest-first; ties on created_at break on id so the
// order is deterministic.
func (r *UserRepo) ListAll(ctx context.Context) ([]entity.User, error) {
	sql, args, err := r.Builder.
		Select(
			idColumn,
			nameColumn,
			ageColumn,
			cityColumn,
			createdAtColumn,
		).
		From(usersTable).
		OrderBy(createdAtColumn+" DESC", idColumn+" DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("UserRepo - ListAll - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("UserRepo - ListAll - executor.Query: %w", err)
	}
	defer rows.Close()

	var users []entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Age, &u.City, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("UserRepo - ListAll - rows.Scan: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("UserRepo - ListAll - rows.Err: %w", err)
	}

	return users, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	sql, args, err := r.Builder.
		Select(
			idColumn,
			nameColumn,
			ageColumn,
			cityColumn,
			createdAtColumn,
		).
		From(usersTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("UserRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	var u entity.User
	err = executor.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.Name, &u.Age, &u.City, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("UserRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("UserRepo - GetByID - executor.QueryRow.Scan: %w", err)
	}

	return &u, nil
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.Builder.
		Select("COUNT(*)").
		From(usersTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("UserRepo - Count - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	var count int64
	err = executor.QueryRow(ctx, sql, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("UserRepo - Count - executor.QueryRow.Scan: %w", err)
	}

	return count, nil
}
