package sql

import (
	"context"

	"github.com/fsdevblog/acortador/internal/models"
	"gorm.io/gorm"
)

// UserRepo репозиторий таблицы `user`.
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo создает репозиторий пользователей.
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create вставляет пользователя. Занятое имя дает repositories.ErrDuplicateKey.
func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	return ConvertErrorType(r.db.WithContext(ctx).Create(user).Error)
}

func (r *UserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, ConvertErrorType(err)
	}
	return &user, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ConvertErrorType(err)
	}
	return &user, nil
}
