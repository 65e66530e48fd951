// Package dashboard serves the admin overview: content stats plus the
// live state of the external services the panel depends on.
package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/uzbeknews/core/internal/modules/ai"
	"github.com/uzbeknews/core/internal/modules/article"
	"github.com/uzbeknews/core/internal/modules/telegram"
	"github.com/uzbeknews/core/internal/pkg/response"
)

type Handler struct {
	articles *article.Service
	ai       *ai.Client
	tg       *telegram.Publisher
}

func NewHandler(articles *article.Service, aiClient *ai.Client, tg *telegram.Publisher) *Handler {
	return &Handler{articles: articles, ai: aiClient, tg: tg}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/admin", authMW)
	g.GET("/dashboard", h.overview)
	g.GET("/telegram/channel", h.channel)
}

func (h *Handler) overview(c *gin.Context) {
	stats, err := h.articles.Stats()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"stats": stats,
		"services": gin.H{
			"ai":       h.ai.Available(),
			"telegram": h.tg.Enabled(),
		},
	})
}

func (h *Handler) channel(c *gin.Context) {
	if !h.tg.Enabled() {
		response.ServiceUnavailable(c, "Telegram kanal sozlanmagan")
		return
	}
	info := h.tg.GetChannelInfo(c.Request.Context())
	if info == nil {
		response.ServiceUnavailable(c, "Telegram kanal ma'lumotini olib bo'lmadi")
		return
	}
	response.OK(c, info)
}
