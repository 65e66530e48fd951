package article

import (
	"errors"

	"github.com/uzbeknews/core/internal/config"
	"github.com/uzbeknews/core/internal/models"
	"github.com/uzbeknews/core/internal/pkg/pagination"
	"github.com/uzbeknews/core/internal/pkg/response"
	"github.com/uzbeknews/core/internal/pkg/slugify"
	"gorm.io/gorm"
)

// Store-boundary errors. Callers distinguish them with errors.Is.
var (
	ErrSlugConflict = errors.New("slug already exists")
	ErrNotFound     = errors.New("article not found")
	ErrBadCategory  = errors.New("unknown category")
	ErrBadRegion    = errors.New("unknown region")
)

// Service handles article persistence and queries.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create inserts a new article. The slug is derived from the Uzbek
// title when not supplied, normalized when supplied in a non-URL-safe
// form, and never changes afterwards. A taken slug is reported as
// ErrSlugConflict; no disambiguation suffix is invented.
func (s *Service) Create(a *models.ArticleModel) error {
	if !config.ValidCategory(a.Category) {
		return ErrBadCategory
	}
	if !config.ValidRegion(a.Region) {
		return ErrBadRegion
	}
	switch {
	case a.Slug == "":
		a.Slug = slugify.Make(a.TitleUz)
	case !slugify.Valid(a.Slug):
		a.Slug = slugify.Make(a.Slug)
	}

	var count int64
	if err := s.db.Model(&models.ArticleModel{}).Where("slug = ?", a.Slug).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugConflict
	}

	if err := s.db.Create(a).Error; err != nil {
		// Two concurrent creates can pass the count check; the unique
		// index is the source of truth.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlugConflict
		}
		return err
	}
	return nil
}

// Update patches an article by ID. The slug is deliberately not
// patchable: released URLs must stay resolvable forever.
func (s *Service) Update(id uint, dto *UpdateArticleDTO) (*models.ArticleModel, error) {
	a, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}

	updates := map[string]interface{}{}
	if dto.TitleUz != nil {
		updates["title_uz"] = *dto.TitleUz
	}
	if dto.TitleRu != nil {
		updates["title_ru"] = *dto.TitleRu
	}
	if dto.ContentUz != nil {
		updates["content_uz"] = *dto.ContentUz
	}
	if dto.ContentRu != nil {
		updates["content_ru"] = *dto.ContentRu
	}
	if dto.TelegramContentUz != nil {
		updates["telegram_content_uz"] = *dto.TelegramContentUz
	}
	if dto.TelegramContentRu != nil {
		updates["telegram_content_ru"] = *dto.TelegramContentRu
	}
	if dto.MetaTitle != nil {
		updates["meta_title"] = *dto.MetaTitle
	}
	if dto.MetaDescription != nil {
		updates["meta_description"] = *dto.MetaDescription
	}
	if dto.Category != nil {
		if !config.ValidCategory(*dto.Category) {
			return nil, ErrBadCategory
		}
		updates["category"] = *dto.Category
	}
	if dto.Region != nil {
		if !config.ValidRegion(*dto.Region) {
			return nil, ErrBadRegion
		}
		updates["region"] = *dto.Region
	}
	if dto.Keywords != nil {
		updates["keywords"] = *dto.Keywords
	}
	if dto.Published != nil {
		updates["published"] = *dto.Published
	}
	if dto.Featured != nil {
		updates["featured"] = *dto.Featured
	}

	if len(updates) > 0 {
		if err := s.db.Model(a).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return a, nil
}

// GetBySlug fetches a single article by slug. With publishedOnly set,
// drafts are invisible: this is the only read path the public detail
// page uses.
func (s *Service) GetBySlug(slug string, publishedOnly bool) (*models.ArticleModel, error) {
	var a models.ArticleModel
	tx := s.db.Where("slug = ?", slug)
	if publishedOnly {
		tx = tx.Where("published = ?", true)
	}
	if err := tx.First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// GetByID fetches a single article by ID (drafts included).
func (s *Service) GetByID(id uint) (*models.ArticleModel, error) {
	var a models.ArticleModel
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// List returns a paginated, filtered list of articles.
func (s *Service) List(q pagination.Query, lq ListQuery) ([]models.ArticleModel, response.Pagination, error) {
	tx := s.db.Model(&models.ArticleModel{})

	if lq.PublishedOnly {
		tx = tx.Where("published = ?", true)
	}
	if lq.Category != "" {
		tx = tx.Where("category = ?", lq.Category)
	}
	if lq.Region != "" {
		tx = tx.Where("region = ?", lq.Region)
	}
	if lq.Featured != nil {
		tx = tx.Where("featured = ?", *lq.Featured)
	}
	if lq.Search != "" {
		like := "%" + lq.Search + "%"
		tx = tx.Where(
			"title_uz LIKE ? OR content_uz LIKE ? OR title_ru LIKE ? OR content_ru LIKE ?",
			like, like, like, like,
		)
	}
	if lq.OrderByViews {
		tx = tx.Order("views DESC, created_at DESC")
	} else {
		tx = tx.Order("created_at DESC")
	}

	var articles []models.ArticleModel
	pag, err := pagination.Paginate(tx, q, &articles)
	return articles, pag, err
}

// Featured returns the newest released featured articles.
func (s *Service) Featured(limit int) ([]models.ArticleModel, error) {
	var articles []models.ArticleModel
	err := s.db.Where("published = ? AND featured = ?", true, true).
		Order("created_at DESC").Limit(limit).Find(&articles).Error
	return articles, err
}

// Recent returns the newest released articles.
func (s *Service) Recent(limit int) ([]models.ArticleModel, error) {
	var articles []models.ArticleModel
	err := s.db.Where("published = ?", true).
		Order("created_at DESC").Limit(limit).Find(&articles).Error
	return articles, err
}

// Popular returns released articles by view count.
func (s *Service) Popular(limit int) ([]models.ArticleModel, error) {
	var articles []models.ArticleModel
	err := s.db.Where("published = ?", true).
		Order("views DESC, created_at DESC").Limit(limit).Find(&articles).Error
	return articles, err
}

// Related returns released articles sharing a category with a.
func (s *Service) Related(a *models.ArticleModel, limit int) ([]models.ArticleModel, error) {
	var articles []models.ArticleModel
	err := s.db.Where("category = ? AND id <> ? AND published = ?", a.Category, a.ID, true).
		Order("created_at DESC").Limit(limit).Find(&articles).Error
	return articles, err
}

// NameCount pairs an enum value with its released-article count.
type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// CategoryCounts returns every category with its released-article
// count, zero-count categories included, in canonical order.
func (s *Service) CategoryCounts() ([]NameCount, error) {
	return s.counts("category", config.Categories)
}

// RegionCounts is CategoryCounts for regions.
func (s *Service) RegionCounts() ([]NameCount, error) {
	return s.counts("region", config.Regions)
}

func (s *Service) counts(column string, names []string) ([]NameCount, error) {
	var rows []NameCount
	err := s.db.Model(&models.ArticleModel{}).
		Select(column+" AS name, COUNT(*) AS count").
		Where("published = ?", true).
		Group(column).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int64, len(rows))
	for _, r := range rows {
		byName[r.Name] = r.Count
	}
	out := make([]NameCount, len(names))
	for i, name := range names {
		out[i] = NameCount{Name: name, Count: byName[name]}
	}
	return out, nil
}

// IncrementViews atomically bumps the view counter. A single SQL
// expression keeps concurrent detail reads from losing updates.
func (s *Service) IncrementViews(id uint) error {
	return s.db.Model(&models.ArticleModel{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// MarkTelegramPosted records a successful channel post. Idempotent: the
// flag only ever moves false→true.
func (s *Service) MarkTelegramPosted(id uint) error {
	return s.db.Model(&models.ArticleModel{}).Where("id = ?", id).
		UpdateColumn("telegram_posted", true).Error
}

// Stats summarizes the article table for the admin dashboard.
type Stats struct {
	TotalArticles     int64 `json:"total_articles"`
	PublishedArticles int64 `json:"published_articles"`
	TotalViews        int64 `json:"total_views"`
	TelegramSent      int64 `json:"telegram_sent"`
}

func (s *Service) Stats() (Stats, error) {
	var st Stats
	m := s.db.Model(&models.ArticleModel{})
	if err := m.Count(&st.TotalArticles).Error; err != nil {
		return st, err
	}
	if err := s.db.Model(&models.ArticleModel{}).Where("published = ?", true).Count(&st.PublishedArticles).Error; err != nil {
		return st, err
	}
	if err := s.db.Model(&models.ArticleModel{}).Select("COALESCE(SUM(views), 0)").Scan(&st.TotalViews).Error; err != nil {
		return st, err
	}
	if err := s.db.Model(&models.ArticleModel{}).Where("telegram_posted = ?", true).Count(&st.TelegramSent).Error; err != nil {
		return st, err
	}
	return st, nil
}
