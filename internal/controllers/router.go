package controllers

import (
	"fmt"

	"github.com/fsdevblog/acortador/internal/config"
	"github.com/fsdevblog/acortador/internal/controllers/middlewares"
	"github.com/fsdevblog/acortador/internal/i18n"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RouterParams зависимости роутера.
type RouterParams struct {
	URLService  URLManager
	UserService UserManager
	PingService ConnectionChecker
	AppConf     config.Config
	Logger      *zap.Logger
	// I18n переводы сообщений. nil означает встроенные переводы с языком AppConf.DefaultLanguage.
	I18n *i18n.Bundle
	// Registry реестр метрик. nil означает новый пустой реестр.
	Registry *prometheus.Registry
}

// SetupRouter собирает gin роутер приложения.
//
// Маршруты:
//   - GET, POST / форма сокращения для анонимных посетителей
//   - GET /:key перенаправление по короткому коду
//   - GET /my-urls, GET|POST /create, GET|POST /:key/update, POST /:key/delete только после входа
//   - GET|POST /auth/register, GET|POST /auth/login, GET /auth/logout
//   - GET /ping, GET /metrics
func SetupRouter(params RouterParams) (*gin.Engine, error) {
	tmpl, err := ParseTemplates()
	if err != nil {
		return nil, err
	}

	bundle := params.I18n
	if bundle == nil {
		bundle, err = i18n.New(params.AppConf.DefaultLanguage)
		if err != nil {
			return nil, fmt.Errorf("setup router: %w", err)
		}
	}
	registry := params.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics := middlewares.NewMetrics(registry)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.ContextWithFallback = true
	r.SetHTMLTemplate(tmpl)

	r.Use(middlewares.LoggerMiddleware(params.Logger))
	r.Use(gin.Recovery())
	r.Use(metrics.Middleware())
	r.Use(middlewares.GzipMiddleware())
	r.Use(middlewares.LocaleMiddleware(bundle))
	r.Use(middlewares.SessionMiddleware([]byte(params.AppConf.SessionSecret), params.UserService))

	r.NoRoute(NotFound)
	r.NoMethod(MethodNotAllowed)

	pingController := NewPingController(params.PingService)
	shortURLController := NewShortURLController(params.URLService, params.AppConf.BaseURL)
	myURLsController := NewMyURLsController(params.URLService, params.AppConf.BaseURL)
	authController := NewAuthController(
		params.UserService,
		[]byte(params.AppConf.SessionSecret),
		params.AppConf.SessionTTL,
		params.AppConf.EnableHTTPS,
	)

	r.GET("/ping", pingController.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		// ответ сжимает GzipMiddleware
		DisableCompression: true,
	})))

	r.GET("/", shortURLController.Index)
	r.POST("/", shortURLController.CreateShortURL)
	r.GET("/:"+keyParam, shortURLController.Redirect)

	auth := r.Group("/auth")
	auth.GET("/register", authController.RegisterForm)
	auth.POST("/register", authController.Register)
	auth.GET("/login", authController.LoginForm)
	auth.POST("/login", authController.Login)
	auth.GET("/logout", authController.Logout)

	private := r.Group("/", middlewares.LoginRequired(loginPath))
	private.GET(myURLsPath, myURLsController.List)
	private.GET("/create", myURLsController.CreateForm)
	private.POST("/create", myURLsController.Create)
	private.GET("/:"+keyParam+"/update", myURLsController.UpdateForm)
	private.POST("/:"+keyParam+"/update", myURLsController.Update)
	private.POST("/:"+keyParam+"/delete", myURLsController.Delete)

	return r, nil
}

// MustSetupRouter аналогичен SetupRouter, но паникует при ошибке.
func MustSetupRouter(params RouterParams) *gin.Engine {
	r, err := SetupRouter(params)
	if err != nil {
		panic(err)
	}
	return r
}

