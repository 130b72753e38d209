package controllers

import (
	"embed"
	"fmt"
	"html/template"
)

// Имена шаблонов.
const (
	tmplIndexAnonymous = "url/index_anonymous.html"
	tmplIndexLogged    = "url/index_logged.html"
	tmplCreate         = "url/create.html"
	tmplUpdate         = "url/update.html"
	tmplLogin          = "auth/login.html"
	tmplRegister       = "auth/register.html"
	tmplError          = "error.html"
)

//go:embed templates
var templatesFS embed.FS

// ParseTemplates разбирает встроенные html шаблоны.
func ParseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html", "templates/*/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}
