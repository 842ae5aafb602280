package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avdeev/courtside-media/internal/entity"
	"github.com/avdeev/courtside-media/internal/repo"
	"github.com/avdeev/courtside-media/pkg/types/errs"
)

type UserUseCase struct {
	userRepo repo.UserRepo
}

func New(userRepo repo.UserRepo) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// Create assigns id and created_at server-side; both are immutable afterwards.
func (uc *UserUseCase) Create(ctx context.Context, name string, age int, city string) (*entity.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("UserUseCase - Create - name is required: %w", errs.ErrInvalidArgument)
	}
	if strings.TrimSpace(city) == "" {
		return nil, fmt.Errorf("UserUseCase - Create - city is required: %w", errs.ErrInvalidArgument)
	}
	if age < 0 {
		return nil, fmt.Errorf("UserUseCase - Create - age must not be negative: %w", errs.ErrInvalidArgument)
	}

	user := &entity.User{
		Name:      name,
		Age:       age,
		City:      city,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("UserUseCase - Create - uc.userRepo.Create: %w", err)
	}

	return user, nil
}

func (uc *UserUseCase) ListAll(ctx context.Context) ([]entity.User, error) {
	users, err := uc.userRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("UserUseCase - ListAll - uc.userRepo.ListAll: %w", err)
	}

	return users, nil
}

func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("UserUseCase - GetByID - uc.userRepo.GetByID: %w", err)
	}

	return user, nil
}

func (uc *UserUseCase) Count(ctx context.Context) (int64, error) {
	count, err := uc.userRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("UserUseCase - Count - uc.userRepo.Count: %w", err)
	}

	return count, nil
}
