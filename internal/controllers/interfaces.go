package controllers

import (
	"context"

	"github.com/fsdevblog/acortador/internal/models"
)

type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

// URLManager операции над ссылками, которые нужны контроллерам.
type URLManager interface {
	// Create сохраняет ссылку. authorID nil для анонимной ссылки.
	Create(ctx context.Context, longURL string, authorID *uint) (*models.URL, error)
	GetAll(ctx context.Context) ([]models.URLWithAuthor, error)
	// GetOwned возвращает ссылку только её автору.
	GetOwned(ctx context.Context, id uint, userID uint) (*models.URLWithAuthor, error)
	Update(ctx context.Context, id uint, userID uint, longURL string) (*models.URL, error)
	Delete(ctx context.Context, id uint, userID uint) error
	// Resolve возвращает адрес перенаправления для короткого кода.
	Resolve(ctx context.Context, shortURL string) (string, error)
}

// UserManager регистрация, вход и загрузка пользователя сессии.
type UserManager interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}
