package article

import (
	"time"

	"github.com/uzbeknews/core/internal/models"
	"github.com/uzbeknews/core/internal/pkg/markdown"
	"github.com/uzbeknews/core/internal/pkg/uzbek"
)

// UpdateArticleDTO is the request body for updating an article.
// All fields are optional; the slug is never patchable.
type UpdateArticleDTO struct {
	TitleUz           *string `json:"title_uz"`
	TitleRu           *string `json:"title_ru"`
	ContentUz         *string `json:"content_uz"`
	ContentRu         *string `json:"content_ru"`
	TelegramContentUz *string `json:"telegram_content_uz"`
	TelegramContentRu *string `json:"telegram_content_ru"`
	MetaTitle         *string `json:"meta_title"`
	MetaDescription   *string `json:"meta_description"`
	Category          *string `json:"category"`
	Region            *string `json:"region"`
	Keywords          *string `json:"keywords"`
	Published         *bool   `json:"published"`
	Featured          *bool   `json:"featured"`
}

// ListQuery holds query params for listing articles.
type ListQuery struct {
	Category      string `form:"category"`
	Region        string `form:"region"`
	Search        string `form:"q"`
	Featured      *bool  `form:"featured"`
	OrderByViews  bool   `form:"popular"`
	PublishedOnly bool   `form:"-"`
}

// ListItem is the compact article shape used in lists and home blocks.
type ListItem struct {
	ID        uint      `json:"id"`
	Slug      string    `json:"slug"`
	TitleUz   string    `json:"title_uz"`
	TitleRu   string    `json:"title_ru,omitempty"`
	Excerpt   string    `json:"excerpt"`
	Category  string    `json:"category"`
	Region    string    `json:"region,omitempty"`
	Featured  bool      `json:"featured"`
	Views     int       `json:"views"`
	Path      string    `json:"path"`
	Created   time.Time `json:"created"`
	CreatedUz string    `json:"created_uz"`
}

func ToListItem(a *models.ArticleModel) ListItem {
	return ListItem{
		ID:        a.ID,
		Slug:      a.Slug,
		TitleUz:   a.TitleUz,
		TitleRu:   a.TitleRu,
		Excerpt:   uzbek.Excerpt(a.ContentUz, 150),
		Category:  a.Category,
		Region:    a.Region,
		Featured:  a.Featured,
		Views:     a.Views,
		Path:      a.PublicPath(),
		Created:   a.CreatedAt,
		CreatedUz: uzbek.FormatDate(a.CreatedAt),
	}
}

func ToListItems(articles []models.ArticleModel) []ListItem {
	items := make([]ListItem, len(articles))
	for i := range articles {
		items[i] = ToListItem(&articles[i])
	}
	return items
}

// DetailResponse is the full article shape for the detail endpoint and
// the admin panel.
type DetailResponse struct {
	ID                uint       `json:"id"`
	Slug              string     `json:"slug"`
	TitleUz           string     `json:"title_uz"`
	TitleRu           string     `json:"title_ru,omitempty"`
	ContentUz         string     `json:"content_uz"`
	ContentRu         string     `json:"content_ru,omitempty"`
	HTMLUz            string     `json:"html_uz,omitempty"`
	HTMLRu            string     `json:"html_ru,omitempty"`
	TelegramContentUz string     `json:"telegram_content_uz,omitempty"`
	TelegramContentRu string     `json:"telegram_content_ru,omitempty"`
	MetaTitle         string     `json:"meta_title,omitempty"`
	MetaDescription   string     `json:"meta_description,omitempty"`
	Category          string     `json:"category"`
	Region            string     `json:"region,omitempty"`
	Keywords          string     `json:"keywords,omitempty"`
	Published         bool       `json:"published"`
	Featured          bool       `json:"featured"`
	Views             int        `json:"views"`
	TelegramViews     int        `json:"telegram_views"`
	TelegramPosted    bool       `json:"telegram_posted"`
	AuthorID          uint       `json:"author_id"`
	Path              string     `json:"path"`
	Created           time.Time  `json:"created"`
	CreatedUz         string     `json:"created_uz"`
	Modified          *time.Time `json:"modified,omitempty"`
}

func ToDetail(a *models.ArticleModel, renderHTML bool) DetailResponse {
	resp := DetailResponse{
		ID:                a.ID,
		Slug:              a.Slug,
		TitleUz:           a.TitleUz,
		TitleRu:           a.TitleRu,
		ContentUz:         a.ContentUz,
		ContentRu:         a.ContentRu,
		TelegramContentUz: a.TelegramContentUz,
		TelegramContentRu: a.TelegramContentRu,
		MetaTitle:         a.MetaTitle,
		MetaDescription:   a.MetaDescription,
		Category:          a.Category,
		Region:            a.Region,
		Keywords:          a.Keywords,
		Published:         a.Published,
		Featured:          a.Featured,
		Views:             a.Views,
		TelegramViews:     a.TelegramViews,
		TelegramPosted:    a.TelegramPosted,
		AuthorID:          a.AuthorID,
		Path:              a.PublicPath(),
		Created:           a.CreatedAt,
		CreatedUz:         uzbek.FormatDate(a.CreatedAt),
	}
	if renderHTML {
		resp.HTMLUz = markdown.Render(a.ContentUz)
		resp.HTMLRu = markdown.Render(a.ContentRu)
	}
	if !a.UpdatedAt.IsZero() && !a.UpdatedAt.Equal(a.CreatedAt) {
		modified := a.UpdatedAt
		resp.Modified = &modified
	}
	return resp
}
