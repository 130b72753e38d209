package services

import (
	"context"

	"github.com/fsdevblog/acortador/internal/models"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// UserService регистрация и проверка пользователей.
type UserService struct {
	userRepo   UserRepository
	bcryptCost int
}

// NewUserService создает сервис пользователей. cost <= 0 означает bcrypt.DefaultCost.
func NewUserService(userRepo UserRepository, cost int) *UserService {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &UserService{userRepo: userRepo, bcryptCost: cost}
}

// Register создает пользователя с хешем пароля.
// Возвращает ErrEmptyUsername, ErrEmptyPassword или ErrDuplicateKey если имя занято.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, errors.Wrap(ErrUnknown, err.Error())
	}

	user := models.User{Username: username, Password: string(hash)}
	if createErr := s.userRepo.Create(ctx, &user); createErr != nil {
		return nil, errors.Wrapf(convertRepoErr(createErr), "register user %s", username)
	}
	return &user, nil
}

// Authenticate проверяет имя и пароль.
// Возвращает ErrUserNotFound для неизвестного имени и ErrInvalidPassword для неверного пароля.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		converted := convertRepoErr(err)
		if errors.Is(converted, ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrapf(converted, "authenticate user %s", username)
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); cmpErr != nil {
		return nil, ErrInvalidPassword
	}
	return user, nil
}

// GetByID возвращает пользователя по id.
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(convertRepoErr(err), "user id %d", id)
	}
	return user, nil
}
