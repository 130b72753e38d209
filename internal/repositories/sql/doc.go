// Package sql предоставляет реализации репозиториев ссылок и пользователей поверх gorm.
//
// Один и тот же код работает с sqlite, postgres и mysql. Соединение должно быть открыто
// с gorm.Config{TranslateError: true}, тогда ошибки драйверов приводятся к ошибкам gorm,
// а ConvertErrorType превращает их в общие ошибки уровня репозитория:
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - gorm.ErrDuplicatedKey -> repositories.ErrDuplicateKey
//   - другие ошибки -> repositories.ErrUnknown
package sql
