package controllers

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/acortador/internal/i18n"
	"github.com/fsdevblog/acortador/internal/services"
	"github.com/gin-gonic/gin"
)

// longURLForm форма с длинной ссылкой. Отсутствующее поле равносильно пустому.
type longURLForm struct {
	LongURL string `form:"long_url" binding:"required"`
}

// ShortURLController главная страница для анонимных посетителей и перенаправление по коротким кодам.
type ShortURLController struct {
	urlService URLManager
	baseURL    string
}

func NewShortURLController(urlService URLManager, baseURL string) *ShortURLController {
	return &ShortURLController{
		urlService: urlService,
		baseURL:    baseURL,
	}
}

// Index GET / форма сокращения.
func (s *ShortURLController) Index(ctx *gin.Context) {
	render(ctx, http.StatusOK, tmplIndexAnonymous, gin.H{"LongURL": "", "ShortURL": ""})
}

// CreateShortURL POST / сохраняет анонимную ссылку и показывает короткий код на той же странице.
func (s *ShortURLController) CreateShortURL(ctx *gin.Context) {
	var form longURLForm
	if bindErr := ctx.ShouldBind(&form); bindErr != nil {
		if firstInvalidField(bindErr) == "" {
			_ = ctx.Error(bindErr)
			renderError(ctx, http.StatusBadRequest, translate(ctx, i18n.MsgBadRequest, nil))
			return
		}
		flash(ctx, translate(ctx, i18n.MsgLongURLRequired, nil))
		s.Index(ctx)
		return
	}

	mURL, err := s.urlService.Create(ctx, form.LongURL, nil)
	if err != nil {
		handleServiceError(ctx, err, translate(ctx, i18n.MsgNotFound, nil))
		return
	}

	render(ctx, http.StatusOK, tmplIndexAnonymous, gin.H{
		"LongURL":   "",
		"ShortURL":  mURL.ShortURL,
		"ShortLink": shortLink(ctx.Request, s.baseURL, mURL.ShortURL),
	})
}

// Redirect GET /:key перенаправляет на длинную ссылку первой записи с данным кодом.
func (s *ShortURLController) Redirect(ctx *gin.Context) {
	code := ctx.Param(keyParam)

	target, err := s.urlService.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, services.ErrEmptyShortURL) {
			flash(ctx, translate(ctx, i18n.MsgLongURLRequired, nil))
			s.Index(ctx)
			return
		}
		handleServiceError(ctx, err, translate(ctx, i18n.MsgShortURLNotFound, map[string]any{"Code": code}))
		return
	}

	ctx.Redirect(http.StatusFound, target)
}
