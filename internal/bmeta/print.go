package bmeta

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

const defaultBuildMeta = "N/A" // Значение по умолчанию

// Meta сведения о сборке, задаются через -ldflags.
type Meta struct {
	Version string
	Date    string
	Commit  string
}

// New заполняет пустые значения заглушкой N/A.
func New(version, date, commit string) Meta {
	return Meta{
		Version: orDefault(version),
		Date:    orDefault(date),
		Commit:  orDefault(commit),
	}
}

// Print Распечатывает версию, дату и комит сборки.
func (m Meta) Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", m.Version, m.Date, m.Commit)
}

// Fields поля для логгера.
func (m Meta) Fields() []zap.Field {
	return []zap.Field{
		zap.String("version", m.Version),
		zap.String("date", m.Date),
		zap.String("commit", m.Commit),
	}
}

func orDefault(v string) string {
	if v == "" {
		return defaultBuildMeta
	}
	return v
}
