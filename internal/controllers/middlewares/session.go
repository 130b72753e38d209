package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/acortador/internal/models"
	"github.com/fsdevblog/acortador/internal/services"
	"github.com/fsdevblog/acortador/internal/tokens"
	"github.com/gin-gonic/gin"
)

const (
	CurrentUserKey    = "currentUser"
	SessionCookieName = "session"
)

// UserLoader загружает пользователя сессии.
type UserLoader interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// SessionMiddleware читает cookie сессии и кладет текущего пользователя в контекст gin.
// Невалидная cookie или удаленный пользователь не прерывают запрос: посетитель считается анонимным,
// а cookie удаляется.
func SessionMiddleware(jwtSecret []byte, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionCookie, err := c.Request.Cookie(SessionCookieName)
		if err != nil {
			if !errors.Is(err, http.ErrNoCookie) {
				_ = c.Error(fmt.Errorf("session middleware: %w", err))
			}
			c.Next()
			return
		}

		userID, validateErr := tokens.ValidateSessionJWT(sessionCookie.Value, jwtSecret)
		if validateErr != nil {
			_ = c.Error(fmt.Errorf("session middleware: %w", validateErr))
			ClearSessionCookie(c)
			c.Next()
			return
		}

		user, userErr := users.GetByID(c.Request.Context(), userID)
		if userErr != nil {
			_ = c.Error(fmt.Errorf("session middleware: %w", userErr))
			if errors.Is(userErr, services.ErrRecordNotFound) {
				ClearSessionCookie(c)
			}
			c.Next()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// LoginRequired перенаправляет анонимного посетителя на страницу входа.
func LoginRequired(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser возвращает пользователя, загруженного SessionMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

// SetSessionCookie выставляет HttpOnly cookie сессии.
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(ttl.Seconds()), "/", "", secure, true)
}

// ClearSessionCookie удаляет cookie сессии.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}
