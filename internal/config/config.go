package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DBType тип хранилища.
type DBType string

const (
	DBTypeSQLite   DBType = "sqlite"
	DBTypePostgres DBType = "postgres"
	DBTypeMySQL    DBType = "mysql"
)

const (
	defaultServerAddress   = "localhost:8080"
	defaultSQLiteDSN       = "acortador.db"
	defaultSessionSecret   = "dev"
	defaultSessionTTL      = 24 * time.Hour
	defaultLanguage        = "es"
	defaultShutdownTimeout = 10 * time.Second
	defaultCertFile        = "certs/cert.pem"
	defaultKeyFile         = "certs/key.pem"
)

type Config struct {
	// Адрес на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS"`
	// Базовый адрес результирующего сокращенного URL. Если пуст, берется адрес из запроса.
	BaseURL string `env:"BASE_URL"`
	// Тип хранилища
	DBType DBType `env:"DB_TYPE"`
	// Строка подключения. Для sqlite путь к файлу.
	DatabaseDSN string `env:"DATABASE_DSN"`
	// Ключ подписи cookie сессии
	SessionSecret string `env:"SESSION_SECRET"`
	// Время жизни сессии
	SessionTTL time.Duration `env:"SESSION_TTL"`
	// Уровень логирования (debug, info, warn, error). Пустой означает значение по окружению.
	LogLevel string `env:"LOG_LEVEL"`
	// Файл логов с ротацией. Пустой означает только stdout.
	LogFile string `env:"LOG_FILE"`
	// Язык сообщений по умолчанию
	DefaultLanguage string `env:"DEFAULT_LANGUAGE"`
	// Запуск HTTPS сервера
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	CertFile    string `env:"CERT_FILE"`
	KeyFile     string `env:"KEY_FILE"`
	// Сколько ждать завершения активных запросов при остановке
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// LoadConfig собирает конфигурацию из флагов args, файла .env и переменных окружения.
// Переменные окружения важнее флагов.
func LoadConfig(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env file: %w", err)
	}

	var envConfig Config
	if err := env.Parse(&envConfig); err != nil {
		return nil, fmt.Errorf("parse ENV config error: %w", err)
	}

	flagsConfig, err := loadFlags(args)
	if err != nil {
		return nil, err
	}

	conf := mergeConfig(&envConfig, flagsConfig)
	if validateErr := conf.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return conf, nil
}

// MustLoadConfig загружает конфигурацию из аргументов командной строки и паникует при ошибке.
func MustLoadConfig() *Config {
	conf, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return conf
}

// Validate проверяет значения конфигурации.
func (c *Config) Validate() error {
	switch c.DBType {
	case DBTypeSQLite, DBTypePostgres, DBTypeMySQL:
	default:
		return fmt.Errorf("unknown DB type `%s`", c.DBType)
	}
	if c.DatabaseDSN == "" {
		return errors.New("database DSN is empty")
	}
	if c.SessionSecret == "" {
		return errors.New("session secret is empty")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", c.SessionTTL)
	}
	if c.BaseURL != "" {
		parsed, err := url.ParseRequestURI(c.BaseURL)
		if err != nil || parsed.Host == "" {
			return fmt.Errorf("invalid base url `%s`", c.BaseURL)
		}
	}
	return nil
}

// loadFlags парсит флаги командной строки.
func loadFlags(args []string) (*Config, error) {
	var flagsConfig Config
	var dbType string

	flags := flag.NewFlagSet("acortador", flag.ContinueOnError)
	flags.StringVar(&flagsConfig.ServerAddress, "a", defaultServerAddress, "Адрес сервера")
	flags.StringVar(&flagsConfig.BaseURL, "b", "", "Базовый адрес сокращенного URL (по умолчанию Scheme://Host запроса)")
	flags.StringVar(&dbType, "t", string(DBTypeSQLite), "Тип хранилища: sqlite, postgres, mysql")
	flags.StringVar(&flagsConfig.DatabaseDSN, "d", defaultSQLiteDSN, "Строка подключения к базе данных")
	flags.StringVar(&flagsConfig.LogLevel, "l", "", "Уровень логирования")
	flags.BoolVar(&flagsConfig.EnableHTTPS, "tls", false, "Запустить HTTPS сервер")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	flagsConfig.DBType = DBType(dbType)
	return &flagsConfig, nil
}

// mergeConfig сливает структуры для env и флагов. Непустое значение из env важнее.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		ServerAddress:   defaultIfBlank(envConfig.ServerAddress, flagsConfig.ServerAddress),
		BaseURL:         defaultIfBlank(envConfig.BaseURL, flagsConfig.BaseURL),
		DBType:          defaultIfBlank(envConfig.DBType, flagsConfig.DBType),
		DatabaseDSN:     defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		SessionSecret:   defaultIfBlank(envConfig.SessionSecret, defaultSessionSecret),
		SessionTTL:      defaultIfBlank(envConfig.SessionTTL, defaultSessionTTL),
		LogLevel:        defaultIfBlank(envConfig.LogLevel, flagsConfig.LogLevel),
		LogFile:         envConfig.LogFile,
		DefaultLanguage: defaultIfBlank(envConfig.DefaultLanguage, defaultLanguage),
		EnableHTTPS:     envConfig.EnableHTTPS || flagsConfig.EnableHTTPS,
		CertFile:        defaultIfBlank(envConfig.CertFile, defaultCertFile),
		KeyFile:         defaultIfBlank(envConfig.KeyFile, defaultKeyFile),
		ShutdownTimeout: defaultIfBlank(envConfig.ShutdownTimeout, defaultShutdownTimeout),
	}
}

func defaultIfBlank[T comparable](value T, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}
