package models

// ShortURLLength длина короткого кода ссылки.
const ShortURLLength = 6

// URL структура модели хранения ссылки. Таблица `url`.
type URL struct {
	ID       uint   `gorm:"primaryKey"`
	ShortURL string `gorm:"size:6;not null;index"`
	LongURL  string `gorm:"not null"`
	// AuthorID заполняется только для ссылок, созданных авторизованным пользователем.
	AuthorID *uint `gorm:"index"`
	Author   *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
}

// TableName имя таблицы в бд.
func (URL) TableName() string {
	return "url"
}

// IsOwnedBy проверяет, является ли пользователь с userID автором ссылки.
func (u *URL) IsOwnedBy(userID uint) bool {
	return u.AuthorID != nil && *u.AuthorID == userID
}

// URLWithAuthor ссылка вместе с именем автора (результат join с таблицей `user`).
type URLWithAuthor struct {
	ID       uint
	ShortURL string
	LongURL  string
	AuthorID *uint
	Username string
}

// IsOwnedBy проверяет, является ли пользователь с userID автором ссылки.
func (u URLWithAuthor) IsOwnedBy(userID uint) bool {
	return u.AuthorID != nil && *u.AuthorID == userID
}
