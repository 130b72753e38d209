package sql

import (
	"context"

	"github.com/fsdevblog/acortador/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// URLRepo репозиторий таблицы `url`.
type URLRepo struct {
	db *gorm.DB
}

// NewURLRepo создает репозиторий ссылок.
func NewURLRepo(db *gorm.DB) *URLRepo {
	return &URLRepo{db: db}
}

// Create вставляет запись. ID записывается в mURL.
func (u *URLRepo) Create(ctx context.Context, mURL *models.URL) error {
	if err := u.db.WithContext(ctx).Omit(clause.Associations).Create(mURL).Error; err != nil {
		return ConvertErrorType(err)
	}
	return nil
}

// GetAllWithAuthor возвращает все ссылки, у которых есть автор, вместе с его именем.
// Сначала новые.
func (u *URLRepo) GetAllWithAuthor(ctx context.Context) ([]models.URLWithAuthor, error) {
	var urls []models.URLWithAuthor
	if err := u.withAuthor(ctx).Order("url.id DESC").Find(&urls).Error; err != nil {
		return nil, ConvertErrorType(err)
	}
	return urls, nil
}

// GetWithAuthor возвращает ссылку по id вместе с именем автора.
// Ссылки без автора не находятся.
func (u *URLRepo) GetWithAuthor(ctx context.Context, id uint) (*models.URLWithAuthor, error) {
	var mURL models.URLWithAuthor
	if err := u.withAuthor(ctx).Where("url.id = ?", id).Take(&mURL).Error; err != nil {
		return nil, ConvertErrorType(err)
	}
	return &mURL, nil
}

// GetFirstByShortURL возвращает запись с наименьшим id среди записей с данным коротким кодом.
func (u *URLRepo) GetFirstByShortURL(ctx context.Context, shortURL string) (*models.URL, error) {
	var mURL models.URL
	if err := u.db.WithContext(ctx).Where("short_url = ?", shortURL).First(&mURL).Error; err != nil {
		return nil, ConvertErrorType(err)
	}
	return &mURL, nil
}

// Update перезаписывает длинную ссылку и короткий код записи с данным id.
func (u *URLRepo) Update(ctx context.Context, id uint, longURL, shortURL string) error {
	err := u.db.WithContext(ctx).
		Model(&models.URL{}).
		Where("id = ?", id).
		Updates(map[string]any{"long_url": longURL, "short_url": shortURL}).Error
	return ConvertErrorType(err)
}

// Delete удаляет запись по id.
func (u *URLRepo) Delete(ctx context.Context, id uint) error {
	return ConvertErrorType(u.db.WithContext(ctx).Delete(&models.URL{}, id).Error)
}

// withAuthor строит запрос url JOIN user. Имя таблицы `user` экранируется диалектом.
func (u *URLRepo) withAuthor(ctx context.Context) *gorm.DB {
	return u.db.WithContext(ctx).
		Table(models.URL{}.TableName()).
		Select("url.id, url.short_url, url.long_url, url.author_id, u.username").
		Joins("JOIN ? u ON url.author_id = u.id", clause.Table{Name: models.User{}.TableName()})
}
