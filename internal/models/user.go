package models

// User зарегистрированный пользователь. Таблица `user`.
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"size:150;not null;uniqueIndex"`
	Password string `gorm:"not null"` // bcrypt хеш
}

// TableName имя таблицы в бд.
func (User) TableName() string {
	return "user"
}
