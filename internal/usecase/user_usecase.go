package usecase

import (
	"context"
	"errors"

	"moap_dashboard/internal/domain/analytics"
	"moap_dashboard/internal/domain/entities"
	"moap_dashboard/internal/usecase/interfaces"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidUserID = errors.New("invalid user id")
)

// IUserUseCase reads the static roster. Users are never created or changed at
// runtime.
type IUserUseCase interface {
	List(ctx context.Context, search string) ([]entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) List(ctx context.Context, search string) ([]entities.User, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.FilterUsers(all, search), nil
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id, ok := normalizeID(id)
	if !ok {
		return entities.User{}, ErrInvalidUserID
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
