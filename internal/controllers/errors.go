package controllers

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/acortador/internal/i18n"
	"github.com/fsdevblog/acortador/internal/services"
	"github.com/gin-gonic/gin"
)

// Ошибки.
var (
	ErrInvalidID = errors.New("invalid id") // id в пути не число
)

// handleServiceError отображает страницу ошибки по ошибке сервиса.
// notFoundMsg сообщение для ErrRecordNotFound, уже переведенное.
func handleServiceError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, services.ErrRecordNotFound):
		renderError(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, services.ErrForbidden):
		renderError(c, http.StatusForbidden, translate(c, i18n.MsgURLForbidden, nil))
	default:
		_ = c.Error(err)
		renderError(c, http.StatusInternalServerError, translate(c, i18n.MsgInternal, nil))
	}
}

// renderError отображает страницу ошибки и прерывает цепочку обработчиков.
func renderError(c *gin.Context, status int, message string) {
	render(c, status, tmplError, gin.H{
		"Title":   http.StatusText(status),
		"Status":  status,
		"Message": message,
	})
	c.Abort()
}

// NotFound обработчик несуществующих маршрутов.
func NotFound(c *gin.Context) {
	renderError(c, http.StatusNotFound, translate(c, i18n.MsgNotFound, nil))
}

// MethodNotAllowed обработчик маршрутов с неподдерживаемым методом.
func MethodNotAllowed(c *gin.Context) {
	renderError(c, http.StatusMethodNotAllowed, translate(c, i18n.MsgMethodNotAllowed, nil))
}
