package services

import (
	"context"

	"github.com/fsdevblog/acortador/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go -package=mocks

// URLRepository описывает репозиторий ссылок.
type URLRepository interface {
	// Create вставляет запись и заполняет её ID.
	Create(ctx context.Context, mURL *models.URL) error
	// GetAllWithAuthor возвращает ссылки, у которых есть автор, по убыванию id.
	GetAllWithAuthor(ctx context.Context) ([]models.URLWithAuthor, error)
	// GetWithAuthor возвращает ссылку с именем автора по id.
	GetWithAuthor(ctx context.Context, id uint) (*models.URLWithAuthor, error)
	// GetFirstByShortURL возвращает запись с наименьшим id для короткого кода.
	GetFirstByShortURL(ctx context.Context, shortURL string) (*models.URL, error)
	// Update перезаписывает обе ссылки записи.
	Update(ctx context.Context, id uint, longURL, shortURL string) error
	// Delete удаляет запись.
	Delete(ctx context.Context, id uint) error
}

// UserRepository описывает репозиторий пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
