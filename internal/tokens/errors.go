package tokens

import "errors"

// Ошибки.
var (
	ErrTokenExpired = errors.New("token is expired") // Срок действия токена истек
	ErrInvalidToken = errors.New("invalid token")    // Подпись или содержимое токена некорректны
)
