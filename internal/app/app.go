// Package app wires configuration, storage, services and HTTP routes
// into one runnable application.
package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/uzbeknews/core/internal/config"
	"github.com/uzbeknews/core/internal/database"
	"github.com/uzbeknews/core/internal/middleware"
	"github.com/uzbeknews/core/internal/modules/ai"
	"github.com/uzbeknews/core/internal/modules/auth"
	"github.com/uzbeknews/core/internal/modules/telegram"
	jwtpkg "github.com/uzbeknews/core/internal/pkg/jwt"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	logger *zap.Logger

	ai *ai.Client
	tg *telegram.Publisher
}

// New initializes the application: config → DB → services → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if cfg.JWTSecret != "" {
		jwtpkg.SetSecret(cfg.JWTSecret)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg)))

	a := &App{
		cfg:    cfg,
		router: router,
		db:     db,
		logger: logger,
		ai:     ai.New(cfg.AI, logger),
		tg:     telegram.New(cfg.Telegram, cfg.Site.BaseURL, logger),
	}

	authSvc := auth.NewService(db, logger)
	if err := authSvc.SeedAdmin(cfg.AdminPassword); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	a.registerRoutes(authSvc)
	return a, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown stops the channel-publisher worker. Pending sends resolve
// before the worker exits.
func (a *App) Shutdown() { a.tg.Close() }

func corsConfig(cfg *config.AppConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		c.AllowOrigins = cfg.AllowedOrigins
	} else {
		c.AllowOriginFunc = func(string) bool { return true }
	}
	return c
}
