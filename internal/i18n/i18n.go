// Package i18n загружает переводы сообщений для пользователя.
// Файлы переводов встроены в бинарник: locales/active.<lang>.toml.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localesFS embed.FS

// Идентификаторы сообщений.
const (
	MsgLongURLRequired       = "url.long_url_required"
	MsgUpdateLongURLRequired = "url.update_long_url_required"
	MsgURLNotFound           = "url.not_found"
	MsgShortURLNotFound      = "url.short_not_found"
	MsgURLForbidden          = "url.forbidden"
	MsgUsernameRequired      = "auth.username_required"
	MsgPasswordRequired      = "auth.password_required"
	MsgUserExists            = "auth.user_exists"
	MsgIncorrectUsername     = "auth.incorrect_username"
	MsgIncorrectPassword     = "auth.incorrect_password"
	MsgNotFound              = "error.not_found"
	MsgMethodNotAllowed      = "error.method_not_allowed"
	MsgBadRequest            = "error.bad_request"
	MsgInternal              = "error.internal"
)

// Bundle набор переводов и сопоставление языков клиента с доступными.
type Bundle struct {
	bundle  *goi18n.Bundle
	matcher language.Matcher
}

// New загружает все встроенные переводы. defaultLang используется, когда язык клиента не поддерживается.
func New(defaultLang string) (*Bundle, error) {
	defaultTag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("parse default language `%s`: %w", defaultLang, err)
	}

	bundle := goi18n.NewBundle(defaultTag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localesFS, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}

	supported := []language.Tag{defaultTag}
	for _, file := range files {
		mf, loadErr := bundle.LoadMessageFileFS(localesFS, file)
		if loadErr != nil {
			return nil, fmt.Errorf("load locale %s: %w", path.Base(file), loadErr)
		}
		if mf.Tag != defaultTag {
			supported = append(supported, mf.Tag)
		}
	}

	return &Bundle{
		bundle:  bundle,
		matcher: language.NewMatcher(supported),
	}, nil
}

// MustNew аналогичен New, но паникует при ошибке.
func MustNew(defaultLang string) *Bundle {
	b, err := New(defaultLang)
	if err != nil {
		panic(err)
	}
	return b
}

// Match выбирает поддерживаемый язык. Явно заданный язык важнее заголовка Accept-Language.
func (b *Bundle) Match(explicit, acceptLanguage string) string {
	tag, _ := language.MatchStrings(b.matcher, explicit, acceptLanguage)
	base, _ := tag.Base()
	return base.String()
}

// Localizer создает локализатор для языка lang.
func (b *Bundle) Localizer(lang string) *Localizer {
	return &Localizer{localizer: goi18n.NewLocalizer(b.bundle, lang), lang: lang}
}

// Localizer переводит сообщения на выбранный язык.
type Localizer struct {
	localizer *goi18n.Localizer
	lang      string
}

// Lang язык локализатора.
func (l *Localizer) Lang() string {
	return l.lang
}

// T возвращает перевод сообщения. Если перевода нет, возвращается идентификатор.
func (l *Localizer) T(messageID string, data map[string]any) string {
	msg, err := l.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil || strings.TrimSpace(msg) == "" {
		return messageID
	}
	return msg
}
