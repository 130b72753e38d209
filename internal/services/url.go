package services

import (
	"context"

	"github.com/fsdevblog/acortador/internal/models"
	"github.com/fsdevblog/acortador/internal/repositories"
	"github.com/pkg/errors"
)

// URLService Сервис работает с таблицей `url`.
type URLService struct {
	urlRepo URLRepository
}

func NewURLService(urlRepo URLRepository) *URLService {
	return &URLService{urlRepo: urlRepo}
}

// Create вычисляет короткий код и сохраняет ссылку. authorID nil для анонимных ссылок.
// Проверки на дубликаты нет: одна и та же ссылка может быть сохранена несколько раз.
func (u *URLService) Create(ctx context.Context, longURL string, authorID *uint) (*models.URL, error) {
	if longURL == "" {
		return nil, ErrEmptyLongURL
	}
	mURL := models.URL{
		ShortURL: GenerateShortCode(longURL),
		LongURL:  longURL,
		AuthorID: authorID,
	}
	if err := u.urlRepo.Create(ctx, &mURL); err != nil {
		return nil, errors.Wrap(convertRepoErr(err), "create url")
	}
	return &mURL, nil
}

// GetAll возвращает все ссылки с авторами, сначала новые. Не фильтруется по пользователю.
func (u *URLService) GetAll(ctx context.Context) ([]models.URLWithAuthor, error) {
	urls, err := u.urlRepo.GetAllWithAuthor(ctx)
	if err != nil {
		return nil, errors.Wrap(convertRepoErr(err), "get all urls")
	}
	return urls, nil
}

// GetByID возвращает ссылку с именем автора без проверки владельца.
func (u *URLService) GetByID(ctx context.Context, id uint) (*models.URLWithAuthor, error) {
	mURL, err := u.urlRepo.GetWithAuthor(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(convertRepoErr(err), "url id %d", id)
	}
	return mURL, nil
}

// GetOwned возвращает ссылку, только если её автор userID.
// ErrRecordNotFound если ссылки нет, ErrForbidden если автор другой.
func (u *URLService) GetOwned(ctx context.Context, id uint, userID uint) (*models.URLWithAuthor, error) {
	mURL, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !mURL.IsOwnedBy(userID) {
		return nil, errors.Wrapf(ErrForbidden, "url id %d, user id %d", id, userID)
	}
	return mURL, nil
}

// Update перезаписывает длинную ссылку и пересчитывает короткий код.
func (u *URLService) Update(ctx context.Context, id uint, userID uint, longURL string) (*models.URL, error) {
	mURL, err := u.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if longURL == "" {
		return nil, ErrEmptyLongURL
	}

	shortURL := GenerateShortCode(longURL)
	if updErr := u.urlRepo.Update(ctx, id, longURL, shortURL); updErr != nil {
		return nil, errors.Wrapf(convertRepoErr(updErr), "update url id %d", id)
	}
	return &models.URL{
		ID:       id,
		ShortURL: shortURL,
		LongURL:  longURL,
		AuthorID: mURL.AuthorID,
	}, nil
}

// Delete удаляет ссылку, если её автор userID.
func (u *URLService) Delete(ctx context.Context, id uint, userID uint) error {
	if _, err := u.GetOwned(ctx, id, userID); err != nil {
		return err
	}
	if err := u.urlRepo.Delete(ctx, id); err != nil {
		return errors.Wrapf(convertRepoErr(err), "delete url id %d", id)
	}
	return nil
}

// Resolve находит первую ссылку с данным коротким кодом и возвращает адрес перенаправления.
func (u *URLService) Resolve(ctx context.Context, shortURL string) (string, error) {
	if shortURL == "" {
		return "", ErrEmptyShortURL
	}
	mURL, err := u.urlRepo.GetFirstByShortURL(ctx, shortURL)
	if err != nil {
		return "", errors.Wrapf(convertRepoErr(err), "short url %s", shortURL)
	}
	return RedirectTarget(mURL.LongURL), nil
}

// convertRepoErr переводит ошибку репозитория в ошибку сервиса.
func convertRepoErr(err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return ErrRecordNotFound
	case errors.Is(err, repositories.ErrDuplicateKey):
		return ErrDuplicateKey
	default:
		return errors.Wrap(ErrUnknown, err.Error())
	}
}
