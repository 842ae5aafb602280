package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avdeev/courtside-media/internal/entity"
	"github.com/avdeev/courtside-media/pkg/types/errs"
)

type fakeUserRepo struct {
	nextID int64
	byID   map[int64]entity.User
	order  []int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[int64]entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.nextID++
	user.ID = f.nextID
	f.byID[user.ID] = *user
	f.order = append(f.order, user.ID)
	return nil
}

func (f *fakeUserRepo) ListAll(_ context.Context) ([]entity.User, error) {
	users := make([]entity.User, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		users = append(users, f.byID[f.order[i]])
	}
	return users, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("fakeUserRepo - GetByID: %w", errs.ErrRecordNotFound)
	}
	return &u, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

func TestCreate_AssignsUniqueMonotonicIDs(t *testing.T) {
	repo := newFakeUserRepo()
	uc := New(repo)
	ctx := context.Background()

	seen := map[int64]bool{}
	var lastCreated entity.User

	for i := 0; i < 5; i++ {
		u, err := uc.Create(ctx, "Alice", 30, "New York")
		require.NoError(t, err)

		require.NotZero(t, u.ID)
		require.False(t, seen[u.ID], "id %d assigned twice", u.ID)
		seen[u.ID] = true

		if i > 0 {
			require.False(t, u.CreatedAt.Before(lastCreated.CreatedAt),
				"created_at must be non-decreasing across sequential creates")
		}
		lastCreated = *u
	}
}

func TestCreate_Validation(t *testing.T) {
	repo := newFakeUserRepo()
	uc := New(repo)
	ctx := context.Background()

	tests := []struct {
		name string
		age  int
		city string
	}{
		{"", 30, "New York"},
		{"   ", 30, "New York"},
		{"Alice", 30, ""},
		{"Alice", -1, "New York"},
	}

	for _, tt := range tests {
		_, err := uc.Create(ctx, tt.name, tt.age, tt.city)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	}

	require.Empty(t, repo.byID, "rejected creates must not reach the repository")
}

func TestGetByID(t *testing.T) {
	repo := newFakeUserRepo()
	uc := New(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, "Bob", 25, "San Francisco")
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Name, got.Name)

	_, err = uc.GetByID(ctx, created.ID+100)
	require.ErrorIs(t, err, errs.ErrRecordNotFound)
}

func TestListAll_And_Count(t *testing.T) {
	repo := newFakeUserRepo()
	uc := New(repo)
	ctx := context.Background()

	for _, name := range []string{"Alice", "Bob", "Charlie"} {
		_, err := uc.Create(ctx, name, 30, "Chicago")
		require.NoError(t, err)
	}

	users, err := uc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "Charlie", users[0].Name, "newest first")

	count, err := uc.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
}
