package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/acortador/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// StorageType тип хранилища.
type StorageType string

const (
	StorageTypeSQLite   StorageType = "sqlite"
	StorageTypePostgres StorageType = "postgres"
	StorageTypeMySQL    StorageType = "mysql"
)

// FactoryConfig параметры подключения.
type FactoryConfig struct {
	StorageType StorageType
	DSN         string      // Для sqlite путь к файлу или ":memory:"
	Logger      *zap.Logger // Если nil, запросы не логируются
}

// NewConnectionFactory открывает соединение с выбранным хранилищем и накатывает схему.
func NewConnectionFactory(ctx context.Context, config FactoryConfig) (*gorm.DB, error) {
	if config.DSN == "" {
		return nil, errors.New("dsn is empty")
	}

	var dialector gorm.Dialector
	switch config.StorageType {
	case StorageTypeSQLite:
		dialector = sqlite.Open(sqliteDSN(config.DSN))
	case StorageTypePostgres:
		dialector = postgres.Open(config.DSN)
	case StorageTypeMySQL:
		dialector = mysql.Open(config.DSN)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", config.StorageType)
	}

	gormLogger := gormlogger.Discard
	if config.Logger != nil {
		gormLogger = NewGormLogger(config.Logger.Named("gorm"), gormlogger.Warn)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s database: %w", config.StorageType, err)
	}

	if config.StorageType == StorageTypeSQLite {
		// Одно соединение: для ":memory:" у каждого соединения своя база.
		sqlDB, sqlErr := conn.DB()
		if sqlErr != nil {
			return nil, fmt.Errorf("get sql.DB: %w", sqlErr)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if migrateErr := Migrate(ctx, conn); migrateErr != nil {
		return nil, migrateErr
	}
	return conn, nil
}

// Migrate создает таблицы `user` и `url`, если их нет.
func Migrate(ctx context.Context, conn *gorm.DB) error {
	if err := conn.WithContext(ctx).AutoMigrate(&models.User{}, &models.URL{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// Close закрывает пул соединений.
func Close(conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	if closeErr := sqlDB.Close(); closeErr != nil {
		return fmt.Errorf("close database: %w", closeErr)
	}
	return nil
}

// sqliteDSN включает проверку внешних ключей, она в sqlite выключена по умолчанию.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}
