package services

import (
	"crypto/md5" //nolint:gosec
	"encoding/hex"
	"strings"

	"github.com/fsdevblog/acortador/internal/models"
)

const insecureScheme = "http://"

// GenerateShortCode возвращает первые 6 символов hex-представления md5 от длинной ссылки.
// Коллизии не обрабатываются: разные ссылки могут получить один и тот же код.
func GenerateShortCode(longURL string) string {
	hash := md5.Sum([]byte(longURL)) //nolint:gosec
	return hex.EncodeToString(hash[:])[:models.ShortURLLength]
}

// RedirectTarget определяет адрес перенаправления для сохраненной длинной ссылки.
// Если в ссылке нет подстроки "http://", к ней добавляется "https://".
// Проверяется именно вхождение подстроки, а не схема: "https://a.b" тоже получит префикс.
func RedirectTarget(longURL string) string {
	if !strings.Contains(longURL, insecureScheme) {
		return "https://" + longURL
	}
	return longURL
}
