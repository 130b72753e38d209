package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/acortador/internal/controllers/middlewares"
	"github.com/fsdevblog/acortador/internal/i18n"
	"github.com/fsdevblog/acortador/internal/services"
	"github.com/fsdevblog/acortador/internal/tokens"
	"github.com/gin-gonic/gin"
)

type registerForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// loginForm без проверок: пустое имя дает "неверное имя пользователя".
type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// AuthController регистрация, вход и выход.
type AuthController struct {
	userService  UserManager
	jwtSecret    []byte
	sessionTTL   time.Duration
	secureCookie bool
}

// NewAuthController создает контроллер авторизации.
//
// Параметры:
//   - userService: сервис пользователей
//   - jwtSecret: ключ подписи cookie сессии
//   - sessionTTL: время жизни сессии
//   - secureCookie: выставлять ли флаг Secure (при HTTPS)
func NewAuthController(userService UserManager, jwtSecret []byte, sessionTTL time.Duration, secureCookie bool) *AuthController {
	return &AuthController{
		userService:  userService,
		jwtSecret:    jwtSecret,
		sessionTTL:   sessionTTL,
		secureCookie: secureCookie,
	}
}

// RegisterForm GET /auth/register.
func (a *AuthController) RegisterForm(ctx *gin.Context) {
	render(ctx, http.StatusOK, tmplRegister, gin.H{"Username": ""})
}

// Register POST /auth/register. После успешной регистрации перенаправляет на вход.
func (a *AuthController) Register(ctx *gin.Context) {
	var form registerForm
	if bindErr := ctx.ShouldBind(&form); bindErr != nil {
		switch firstInvalidField(bindErr) {
		case "Username":
			flash(ctx, translate(ctx, i18n.MsgUsernameRequired, nil))
		case "Password":
			flash(ctx, translate(ctx, i18n.MsgPasswordRequired, nil))
		default:
			_ = ctx.Error(bindErr)
			renderError(ctx, http.StatusBadRequest, translate(ctx, i18n.MsgBadRequest, nil))
			return
		}
		render(ctx, http.StatusOK, tmplRegister, gin.H{"Username": form.Username})
		return
	}

	if _, err := a.userService.Register(ctx, form.Username, form.Password); err != nil {
		if errors.Is(err, services.ErrDuplicateKey) {
			flash(ctx, translate(ctx, i18n.MsgUserExists, map[string]any{"Username": form.Username}))
			render(ctx, http.StatusOK, tmplRegister, gin.H{"Username": form.Username})
			return
		}
		handleServiceError(ctx, err, translate(ctx, i18n.MsgNotFound, nil))
		return
	}
	ctx.Redirect(http.StatusFound, loginPath)
}

// LoginForm GET /auth/login.
func (a *AuthController) LoginForm(ctx *gin.Context) {
	render(ctx, http.StatusOK, tmplLogin, gin.H{"Username": ""})
}

// Login POST /auth/login. Выставляет cookie сессии и перенаправляет на список ссылок.
func (a *AuthController) Login(ctx *gin.Context) {
	var form loginForm
	if bindErr := ctx.ShouldBind(&form); bindErr != nil {
		_ = ctx.Error(bindErr)
		renderError(ctx, http.StatusBadRequest, translate(ctx, i18n.MsgBadRequest, nil))
		return
	}

	user, err := a.userService.Authenticate(ctx, form.Username, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			flash(ctx, translate(ctx, i18n.MsgIncorrectUsername, nil))
		case errors.Is(err, services.ErrInvalidPassword):
			flash(ctx, translate(ctx, i18n.MsgIncorrectPassword, nil))
		default:
			handleServiceError(ctx, err, translate(ctx, i18n.MsgNotFound, nil))
			return
		}
		render(ctx, http.StatusOK, tmplLogin, gin.H{"Username": form.Username})
		return
	}

	token, tokenErr := tokens.GenerateSessionJWT(user.ID, a.sessionTTL, a.jwtSecret)
	if tokenErr != nil {
		_ = ctx.Error(tokenErr)
		renderError(ctx, http.StatusInternalServerError, translate(ctx, i18n.MsgInternal, nil))
		return
	}
	middlewares.SetSessionCookie(ctx, token, a.sessionTTL, a.secureCookie)
	ctx.Redirect(http.StatusFound, myURLsPath)
}

// Logout GET /auth/logout удаляет cookie сессии.
func (a *AuthController) Logout(ctx *gin.Context) {
	middlewares.ClearSessionCookie(ctx)
	ctx.Redirect(http.StatusFound, "/")
}
