package controllers

import (
	"net/http"

	"github.com/fsdevblog/acortador/internal/i18n"
	"github.com/fsdevblog/acortador/internal/models"
	"github.com/gin-gonic/gin"
)

const myURLsPath = "/my-urls"

// MyURLsController управление ссылками авторизованного пользователя.
// Все обработчики ожидают middlewares.LoginRequired.
type MyURLsController struct {
	urlService URLManager
	baseURL    string
}

func NewMyURLsController(urlService URLManager, baseURL string) *MyURLsController {
	return &MyURLsController{
		urlService: urlService,
		baseURL:    baseURL,
	}
}

// List GET /my-urls все ссылки (не только пользователя), сначала новые.
func (m *MyURLsController) List(ctx *gin.Context) {
	if _, ok := requireUser(ctx); !ok {
		return
	}

	urls, err := m.urlService.GetAll(ctx)
	if err != nil {
		handleServiceError(ctx, err, translate(ctx, i18n.MsgNotFound, nil))
		return
	}

	render(ctx, http.StatusOK, tmplIndexLogged, gin.H{
		"URLs":     urls,
		"LinkBase": linkBase(ctx.Request, m.baseURL),
	})
}

// CreateForm GET /create.
func (m *MyURLsController) CreateForm(ctx *gin.Context) {
	if _, ok := requireUser(ctx); !ok {
		return
	}
	render(ctx, http.StatusOK, tmplCreate, gin.H{"LongURL": ""})
}

// Create POST /create сохраняет ссылку с автором и перенаправляет на список.
func (m *MyURLsController) Create(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}

	var form longURLForm
	if bindErr := ctx.ShouldBind(&form); bindErr != nil {
		if firstInvalidField(bindErr) == "" {
			_ = ctx.Error(bindErr)
			renderError(ctx, http.StatusBadRequest, translate(ctx, i18n.MsgBadRequest, nil))
			return
		}
		flash(ctx, translate(ctx, i18n.MsgLongURLRequired, nil))
		render(ctx, http.StatusOK, tmplCreate, gin.H{"LongURL": ""})
		return
	}

	authorID := user.ID
	if _, err := m.urlService.Create(ctx, form.LongURL, &authorID); err != nil {
		handleServiceError(ctx, err, translate(ctx, i18n.MsgNotFound, nil))
		return
	}
	ctx.Redirect(http.StatusFound, myURLsPath)
}

// UpdateForm GET /:key/update форма редактирования. Только для автора ссылки.
func (m *MyURLsController) UpdateForm(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	mURL, found := m.ownedURL(ctx, user)
	if !found {
		return
	}
	render(ctx, http.StatusOK, tmplUpdate, gin.H{"URL": mURL, "LongURL": mURL.LongURL})
}

// Update POST /:key/update перезаписывает длинную ссылку и пересчитывает короткий код.
func (m *MyURLsController) Update(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	mURL, found := m.ownedURL(ctx, user)
	if !found {
		return
	}

	var form longURLForm
	if bindErr := ctx.ShouldBind(&form); bindErr != nil {
		if firstInvalidField(bindErr) == "" {
			_ = ctx.Error(bindErr)
			renderError(ctx, http.StatusBadRequest, translate(ctx, i18n.MsgBadRequest, nil))
			return
		}
		flash(ctx, translate(ctx, i18n.MsgUpdateLongURLRequired, nil))
		render(ctx, http.StatusOK, tmplUpdate, gin.H{"URL": mURL, "LongURL": mURL.LongURL})
		return
	}

	if _, err := m.urlService.Update(ctx, mURL.ID, user.ID, form.LongURL); err != nil {
		handleServiceError(ctx, err, translate(ctx, i18n.MsgURLNotFound, map[string]any{"ID": mURL.ID}))
		return
	}
	ctx.Redirect(http.StatusFound, myURLsPath)
}

// Delete POST /:key/delete удаляет ссылку автора.
func (m *MyURLsController) Delete(ctx *gin.Context) {
	user, ok := requireUser(ctx)
	if !ok {
		return
	}
	id, err := parseID(ctx)
	if err != nil {
		renderError(ctx, http.StatusNotFound, translate(ctx, i18n.MsgURLNotFound, map[string]any{"ID": ctx.Param(keyParam)}))
		return
	}

	if delErr := m.urlService.Delete(ctx, id, user.ID); delErr != nil {
		handleServiceError(ctx, delErr, translate(ctx, i18n.MsgURLNotFound, map[string]any{"ID": id}))
		return
	}
	ctx.Redirect(http.StatusFound, myURLsPath)
}

// ownedURL загружает ссылку из пути для её автора. При ошибке ответ уже отправлен.
func (m *MyURLsController) ownedURL(ctx *gin.Context, user *models.User) (*models.URLWithAuthor, bool) {
	id, err := parseID(ctx)
	if err != nil {
		renderError(ctx, http.StatusNotFound, translate(ctx, i18n.MsgURLNotFound, map[string]any{"ID": ctx.Param(keyParam)}))
		return nil, false
	}

	mURL, getErr := m.urlService.GetOwned(ctx, id, user.ID)
	if getErr != nil {
		handleServiceError(ctx, getErr, translate(ctx, i18n.MsgURLNotFound, map[string]any{"ID": id}))
		return nil, false
	}
	return mURL, true
}
