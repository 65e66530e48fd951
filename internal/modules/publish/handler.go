package publish

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/uzbeknews/core/internal/middleware"
	"github.com/uzbeknews/core/internal/modules/ai"
	"github.com/uzbeknews/core/internal/modules/article"
	"github.com/uzbeknews/core/internal/pkg/pagination"
	"github.com/uzbeknews/core/internal/pkg/response"
)

// Handler serves the JWT-protected editorial surface: draft management,
// the submit pipeline and AI-assisted drafting.
type Handler struct {
	articles *article.Service
	svc      *Service
	ai       *ai.Client
	log      *zap.Logger
}

func NewHandler(articles *article.Service, svc *Service, aiClient *ai.Client, log *zap.Logger) *Handler {
	return &Handler{articles: articles, svc: svc, ai: aiClient, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/admin", authMW)

	g.GET("/articles", h.list)
	g.POST("/articles", h.create)
	g.GET("/articles/:id", h.get)
	g.PUT("/articles/:id", h.update)

	g.POST("/generate", h.generate)
}

// list returns every article, drafts included.
func (h *Handler) list(c *gin.Context) {
	var lq article.ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	articles, pag, err := h.articles.List(pagination.FromContext(c), lq)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, article.ToListItems(articles), pag)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	a, err := h.articles.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if a == nil {
		response.NotFoundMsg(c, "Maqola topilmadi")
		return
	}
	response.OK(c, article.ToDetail(a, false))
}

// create runs the full submit pipeline. The store error decides the
// status code; the channel outcome rides along in the body.
func (h *Handler) create(c *gin.Context) {
	var in SubmitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	a, outcome, err := h.svc.Submit(c.Request.Context(), in, middleware.CurrentUserID(c))
	if err != nil {
		writeSubmitError(c, err)
		return
	}
	response.Created(c, gin.H{
		"article":  article.ToDetail(a, false),
		"telegram": outcome,
	})
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var dto article.UpdateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	before, err := h.articles.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if before == nil {
		response.NotFoundMsg(c, "Maqola topilmadi")
		return
	}
	wasPublished := before.Published

	a, err := h.articles.Update(id, &dto)
	if err != nil {
		writeSubmitError(c, err)
		return
	}

	outcome := OutcomeSkipped
	if !wasPublished && a.Published {
		outcome = h.svc.Republish(c.Request.Context(), a)
	}
	response.OK(c, gin.H{
		"article":  article.ToDetail(a, false),
		"telegram": outcome,
	})
}

type generateDTO struct {
	Topic    string `json:"topic" binding:"required"`
	Category string `json:"category"`
	Region   string `json:"region"`
}

// generate produces a complete editable draft: bilingual article body,
// SEO fields and short channel-post text. The channel post is best
// effort; a failure there never sinks the draft.
func (h *Handler) generate(c *gin.Context) {
	var dto generateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	draft, err := h.ai.GenerateArticle(ctx, dto.Topic, dto.Category, dto.Region)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			response.ServiceUnavailable(c, "AI xizmati sozlanmagan")
			return
		}
		h.log.Error("draft generation failed", zap.Error(err))
		response.ServiceUnavailable(c, "AI xizmati hozircha ishlamayapti")
		return
	}

	if draft.TitleRu == "" || draft.ContentRu == "" {
		if tr, err := h.ai.Translate(ctx, draft.TitleUz, draft.ContentUz); err == nil {
			draft.TitleRu = tr.TitleRu
			draft.ContentRu = tr.ContentRu
		}
	}

	channelPost, err := h.ai.GenerateChannelPost(ctx, draft.TitleUz, draft.ContentUz)
	if err != nil {
		h.log.Warn("channel post generation failed, draft returned without it", zap.Error(err))
	}

	response.OK(c, gin.H{
		"draft":        draft,
		"channel_post": channelPost,
	})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "noto'g'ri id")
		return 0, false
	}
	return uint(id), true
}

func writeSubmitError(c *gin.Context, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.UnprocessableEntity(c, verr.Error())
	case errors.Is(err, article.ErrSlugConflict):
		response.Conflict(c, "Bu sarlavha uchun havola allaqachon band")
	case errors.Is(err, article.ErrBadCategory), errors.Is(err, article.ErrBadRegion):
		response.UnprocessableEntity(c, err.Error())
	case errors.Is(err, article.ErrNotFound):
		response.NotFoundMsg(c, "Maqola topilmadi")
	default:
		response.InternalError(c, err)
	}
}
