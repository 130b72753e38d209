package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/acortador/internal/config"
	"github.com/fsdevblog/acortador/internal/controllers"
	"github.com/fsdevblog/acortador/internal/db"
	"github.com/fsdevblog/acortador/internal/i18n"
	"github.com/fsdevblog/acortador/internal/logs"
	"github.com/fsdevblog/acortador/internal/services"
	"github.com/fsdevblog/acortador/internal/sslcert"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	initTimeout       = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type App struct {
	config     config.Config
	conn       *gorm.DB
	dbServices *services.Services
	Logger     *zap.Logger
}

// New создает логгер, подключается к базе данных и собирает сервисный слой.
func New(appConf config.Config) (*App, error) {
	logger, logErr := logs.New(logs.WithLevel(appConf.LogLevel), logs.WithFile(appConf.LogFile))
	if logErr != nil {
		return nil, fmt.Errorf("init logger: %w", logErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	conn, connErr := db.NewConnectionFactory(ctx, db.FactoryConfig{
		StorageType: db.StorageType(appConf.DBType),
		DSN:         appConf.DatabaseDSN,
		Logger:      logger,
	})
	if connErr != nil {
		return nil, fmt.Errorf("init db connection: %w", connErr)
	}

	return &App{
		config:     appConf,
		conn:       conn,
		dbServices: services.Factory(conn),
		Logger:     logger,
	}, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Run запускает web сервер и блокируется до SIGINT/SIGTERM или ошибки сервера.
// После остановки закрывает соединение с базой данных.
func (a *App) Run() error {
	defer a.closeDB()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bundle, bundleErr := i18n.New(a.config.DefaultLanguage)
	if bundleErr != nil {
		return fmt.Errorf("run app: %w", bundleErr)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router, routerErr := controllers.SetupRouter(controllers.RouterParams{
		URLService:  a.dbServices.URLService,
		UserService: a.dbServices.UserService,
		PingService: a.dbServices.PingService,
		AppConf:     a.config,
		Logger:      a.Logger,
		I18n:        bundle,
		Registry:    registry,
	})
	if routerErr != nil {
		return fmt.Errorf("run app: %w", routerErr)
	}

	server := &http.Server{
		Addr:              a.config.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	if a.config.EnableHTTPS {
		if err := a.ensureCertificate(); err != nil {
			return fmt.Errorf("run app: %w", err)
		}
	}

	errChan := make(chan error, 1)
	go func() {
		var err error
		if a.config.EnableHTTPS {
			err = server.ListenAndServeTLS(a.config.CertFile, a.config.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.Error("server error", zap.Error(serverErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("server shutdown", zap.Error(err))
	}

	return serverErr
}

// ensureCertificate перевыпускает самоподписанный сертификат, если его нет или он просрочен.
func (a *App) ensureCertificate() error {
	hosts := []string{"localhost"}
	if host, _, err := net.SplitHostPort(a.config.ServerAddress); err == nil && host != "" && host != "localhost" {
		hosts = append(hosts, host)
	}

	created, err := sslcert.EnsurePair(a.config.CertFile, a.config.KeyFile, hosts)
	if err != nil {
		return fmt.Errorf("ensure certificate: %w", err)
	}
	if created {
		a.Logger.Info("Generated self-signed certificate",
			zap.String("cert", a.config.CertFile),
			zap.String("key", a.config.KeyFile),
		)
	}
	return nil
}

func (a *App) closeDB() {
	if err := db.Close(a.conn); err != nil {
		a.Logger.Error("close db connection", zap.Error(err))
		return
	}
	a.Logger.Info("Database connection closed")
}
