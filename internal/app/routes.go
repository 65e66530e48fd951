package app

import (
	"github.com/gin-gonic/gin"

	"github.com/uzbeknews/core/internal/middleware"
	"github.com/uzbeknews/core/internal/modules/article"
	"github.com/uzbeknews/core/internal/modules/auth"
	"github.com/uzbeknews/core/internal/modules/dashboard"
	"github.com/uzbeknews/core/internal/modules/publish"
	"github.com/uzbeknews/core/internal/modules/sitemap"
	"github.com/uzbeknews/core/internal/pkg/response"
)

func (a *App) registerRoutes(authSvc *auth.Service) {
	r := a.router
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	articleSvc := article.NewService(a.db)
	publishSvc := publish.NewService(articleSvc, a.tg, a.logger)

	sitemap.RegisterRoutes(&r.RouterGroup, a.db, a.cfg.Site.BaseURL)

	api := r.Group("/api/v1")
	api.GET("/health", a.health)

	article.NewHandler(articleSvc, a.logger).RegisterRoutes(api)
	auth.NewHandler(authSvc).RegisterRoutes(api, authMW)
	publish.NewHandler(articleSvc, publishSvc, a.ai, a.logger).RegisterRoutes(api, authMW)
	dashboard.NewHandler(articleSvc, a.ai, a.tg).RegisterRoutes(api, authMW)
}

func (a *App) health(c *gin.Context) {
	dbOK := true
	if sqlDB, err := a.db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		dbOK = false
	}

	status := gin.H{
		"status": "ok",
		"site":   a.cfg.Site.Name,
		"services": gin.H{
			"database": dbOK,
			"ai":       a.ai.Available(),
			"telegram": a.tg.Enabled(),
		},
	}
	if !dbOK {
		c.JSON(503, status)
		return
	}
	response.OK(c, status)
}
