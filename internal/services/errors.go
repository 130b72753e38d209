package services

import "errors"

var (
	ErrUnknown         = errors.New("[service]: unknown error")
	ErrRecordNotFound  = errors.New("[service]: record not found")
	ErrDuplicateKey    = errors.New("[service]: duplicate key")
	ErrForbidden       = errors.New("[service]: forbidden")
	ErrEmptyLongURL    = errors.New("[service]: long url is empty")
	ErrEmptyShortURL   = errors.New("[service]: short url is empty")
	ErrEmptyUsername   = errors.New("[service]: username is empty")
	ErrEmptyPassword   = errors.New("[service]: password is empty")
	ErrUserNotFound    = errors.New("[service]: user not found")
	ErrInvalidPassword = errors.New("[service]: invalid password")
)
