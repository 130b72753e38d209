package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/fsdevblog/acortador/internal/app"
	"github.com/fsdevblog/acortador/internal/bmeta"
	"github.com/fsdevblog/acortador/internal/config"
)

// Задаются при сборке через -ldflags "-X main.buildVersion=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	meta := bmeta.New(buildVersion, buildDate, buildCommit)
	meta.Print(os.Stdout)

	appConf := config.MustLoadConfig()

	a := app.Must(app.New(*appConf))
	defer func() { _ = a.Logger.Sync() }()

	a.Logger.Info("Starting server", append(meta.Fields(),
		zap.String("address", appConf.ServerAddress),
		zap.String("db_type", string(appConf.DBType)),
		zap.Bool("https", appConf.EnableHTTPS),
	)...)
	if err := a.Run(); err != nil {
		a.Logger.Fatal("server stopped with error", zap.Error(err))
	}
}
