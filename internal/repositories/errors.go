package repositories

import "errors"

// Ошибки уровня репозитория. Репозитории конвертируют в них ошибки драйверов.
var (
	ErrNotFound     = errors.New("[repository]: record not found")
	ErrDuplicateKey = errors.New("[repository]: duplicate key")
	ErrUnknown      = errors.New("[repository]: unknown error")
)
