package smocks

import (
	"context"

	"github.com/fsdevblog/acortador/internal/models"
	"github.com/stretchr/testify/mock"
)

type URLMock struct {
	mock.Mock
}

func (u *URLMock) Create(ctx context.Context, longURL string, authorID *uint) (*models.URL, error) {
	args := u.Called(ctx, longURL, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.URL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *URLMock) GetAll(ctx context.Context) ([]models.URLWithAuthor, error) {
	args := u.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.URLWithAuthor), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *URLMock) GetOwned(ctx context.Context, id uint, userID uint) (*models.URLWithAuthor, error) {
	args := u.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.URLWithAuthor), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *URLMock) Update(ctx context.Context, id uint, userID uint, longURL string) (*models.URL, error) {
	args := u.Called(ctx, id, userID, longURL)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.URL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *URLMock) Delete(ctx context.Context, id uint, userID uint) error {
	args := u.Called(ctx, id, userID)
	return args.Error(0) //nolint:wrapcheck
}

func (u *URLMock) Resolve(ctx context.Context, shortURL string) (string, error) {
	args := u.Called(ctx, shortURL)
	return args.String(0), args.Error(1) //nolint:wrapcheck
}
