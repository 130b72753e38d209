package middlewares

import (
	"github.com/fsdevblog/acortador/internal/i18n"
	"github.com/gin-gonic/gin"
)

const (
	LocalizerKey  = "localizer"
	LangQueryName = "lang"
)

// LocaleMiddleware выбирает язык ответа по параметру `lang` или заголовку Accept-Language.
func LocaleMiddleware(bundle *i18n.Bundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := bundle.Match(c.Query(LangQueryName), c.GetHeader("Accept-Language"))
		c.Set(LocalizerKey, bundle.Localizer(lang))
		c.Next()
	}
}

// Localizer возвращает локализатор запроса.
func Localizer(c *gin.Context) (*i18n.Localizer, bool) {
	v, exists := c.Get(LocalizerKey)
	if !exists {
		return nil, false
	}
	l, ok := v.(*i18n.Localizer)
	return l, ok
}
