package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Pinger проверяет соединение с базой данных, скрытой за gorm.
type Pinger struct {
	conn *gorm.DB
}

func NewPinger(conn *gorm.DB) *Pinger {
	return &Pinger{conn: conn}
}

func (p *Pinger) Ping(ctx context.Context) error {
	sqlDB, err := p.conn.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx) //nolint:wrapcheck
}
