package services

import (
	"github.com/fsdevblog/acortador/internal/db"
	"github.com/fsdevblog/acortador/internal/repositories/sql"

	"gorm.io/gorm"
)

// Services сервисный слой приложения.
type Services struct {
	URLService  *URLService
	UserService *UserService
	PingService *PingService
}

// Factory собирает сервисы поверх открытого соединения gorm.
func Factory(conn *gorm.DB) *Services {
	return &Services{
		URLService:  NewURLService(sql.NewURLRepo(conn)),
		UserService: NewUserService(sql.NewUserRepo(conn), 0),
		PingService: NewPingService(db.NewPinger(conn)),
	}
}
