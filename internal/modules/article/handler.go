package article

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/uzbeknews/core/internal/pkg/pagination"
	"github.com/uzbeknews/core/internal/pkg/response"
)

const (
	homeFeaturedLimit = 5
	homeRecentLimit   = 12
	homePopularLimit  = 5
	relatedLimit      = 4
)

// Handler serves the public, published-only read surface.
type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.categories)
	rg.GET("/regions", h.regions)

	a := rg.Group("/articles")
	a.GET("", h.list)
	a.GET("/home", h.home)
	a.GET("/:slug", h.detail)
}

func (h *Handler) list(c *gin.Context) {
	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	lq.PublishedOnly = true

	articles, pag, err := h.svc.List(pagination.FromContext(c), lq)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, ToListItems(articles), pag)
}

// home assembles the landing-page blocks in one round trip.
func (h *Handler) home(c *gin.Context) {
	featured, err := h.svc.Featured(homeFeaturedLimit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	recent, err := h.svc.Recent(homeRecentLimit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	popular, err := h.svc.Popular(homePopularLimit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"featured": ToListItems(featured),
		"recent":   ToListItems(recent),
		"popular":  ToListItems(popular),
	})
}

func (h *Handler) detail(c *gin.Context) {
	a, err := h.svc.GetBySlug(c.Param("slug"), true)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if a == nil {
		response.NotFoundMsg(c, "Maqola topilmadi")
		return
	}

	if err := h.svc.IncrementViews(a.ID); err != nil {
		// A lost counter bump never blocks the read.
		h.log.Warn("view increment failed", zap.Uint("article_id", a.ID), zap.Error(err))
	} else {
		a.Views++
	}

	related, err := h.svc.Related(a, relatedLimit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"article": ToDetail(a, true),
		"related": ToListItems(related),
	})
}

func (h *Handler) categories(c *gin.Context) {
	counts, err := h.svc.CategoryCounts()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, counts)
}

func (h *Handler) regions(c *gin.Context) {
	counts, err := h.svc.RegionCounts()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, counts)
}
