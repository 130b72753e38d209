package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fsdevblog/acortador/internal/controllers/middlewares"
	"github.com/fsdevblog/acortador/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	DefaultRequestTimeout = 3 * time.Second

	// keyParam имя параметра пути: короткий код для перенаправления и id для редактирования.
	keyParam  = "key"
	flashKey  = "flashes"
	loginPath = "/auth/login"
)

// render добавляет к данным шаблона общие поля: текущего пользователя, сообщения и язык.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	user, _ := middlewares.CurrentUser(c)
	data["CurrentUser"] = user
	data["Flashes"] = c.GetStringSlice(flashKey)
	data["Lang"] = currentLang(c)
	c.HTML(status, name, data)
}

// flash добавляет сообщение, которое будет показано в ответе на текущий запрос.
func flash(c *gin.Context, message string) {
	c.Set(flashKey, append(c.GetStringSlice(flashKey), message))
}

// translate переводит сообщение на язык запроса.
func translate(c *gin.Context, messageID string, data map[string]any) string {
	l, ok := middlewares.Localizer(c)
	if !ok {
		return messageID
	}
	return l.T(messageID, data)
}

func currentLang(c *gin.Context) string {
	if l, ok := middlewares.Localizer(c); ok {
		return l.Lang()
	}
	return ""
}

// parseID разбирает числовой id ссылки из пути.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param(keyParam), 10, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidID, c.Param(keyParam))
	}
	return uint(id), nil
}

// requireUser возвращает текущего пользователя. Анонимного посетителя перенаправляет на вход.
func requireUser(c *gin.Context) (*models.User, bool) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return nil, false
	}
	return user, true
}

// firstInvalidField возвращает имя первого поля формы, не прошедшего проверку.
// Пустая строка, если ошибка не связана с проверкой полей.
func firstInvalidField(err error) string {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		return vErrs[0].Field()
	}
	return ""
}

// shortLink формирует абсолютную короткую ссылку.
func shortLink(r *http.Request, baseURL string, shortURL string) string {
	return fmt.Sprintf("%s/%s", linkBase(r, baseURL), shortURL)
}

// linkBase базовый адрес коротких ссылок: из конфигурации или из запроса.
func linkBase(r *http.Request, baseURL string) string {
	if baseURL != "" {
		return strings.TrimRight(baseURL, "/")
	}
	var scheme = "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}
