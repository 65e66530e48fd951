package article_test

import (
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/uzbeknews/core/internal/models"
	"github.com/uzbeknews/core/internal/modules/article"
	"github.com/uzbeknews/core/internal/pkg/pagination"
)

func newTestService(t *testing.T) (*article.Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// In-memory sqlite is per-connection; keep the pool at one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.UserModel{}, &models.ArticleModel{}))
	return article.NewService(db), db
}

func newArticle(title string, published bool) *models.ArticleModel {
	return &models.ArticleModel{
		TitleUz:   title,
		ContentUz: "Toshkentda bo'lib o'tgan voqea haqida batafsil ma'lumot.",
		Category:  "Iqtisodiyot",
		Published: published,
	}
}

func TestCreateDerivesSlug(t *testing.T) {
	svc, _ := newTestService(t)

	a := newArticle("Uzum reaches $1B valuation", true)
	require.NoError(t, svc.Create(a))

	assert.Equal(t, "uzum-reaches-1b-valuation", a.Slug)
	assert.Equal(t, "/article/uzum-reaches-1b-valuation", a.PublicPath())
}

func TestCreateNormalizesSuppliedSlug(t *testing.T) {
	svc, _ := newTestService(t)

	a := newArticle("Sarlavha", true)
	a.Slug = "Hello World!"
	require.NoError(t, svc.Create(a))
	assert.Equal(t, "hello-world", a.Slug)

	b := newArticle("Boshqa sarlavha", true)
	b.Slug = "allaqachon-toza-slug"
	require.NoError(t, svc.Create(b))
	assert.Equal(t, "allaqachon-toza-slug", b.Slug)
}

func TestCreateSlugConflict(t *testing.T) {
	svc, db := newTestService(t)

	require.NoError(t, svc.Create(newArticle("Bir xil sarlavha", true)))

	err := svc.Create(newArticle("Bir xil sarlavha", true))
	assert.ErrorIs(t, err, article.ErrSlugConflict)

	var count int64
	db.Model(&models.ArticleModel{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateRejectsUnknownEnums(t *testing.T) {
	svc, _ := newTestService(t)

	a := newArticle("Sarlavha", true)
	a.Category = "Noma'lum"
	assert.ErrorIs(t, svc.Create(a), article.ErrBadCategory)

	b := newArticle("Boshqa sarlavha", true)
	b.Region = "Atlantis"
	assert.ErrorIs(t, svc.Create(b), article.ErrBadRegion)
}

func TestUnpublishedInvisibleToPublicReads(t *testing.T) {
	svc, _ := newTestService(t)

	draft := newArticle("Qoralama maqola", false)
	require.NoError(t, svc.Create(draft))

	got, err := svc.GetBySlug(draft.Slug, true)
	require.NoError(t, err)
	assert.Nil(t, got)

	// The admin read path still sees it.
	got, err = svc.GetBySlug(draft.Slug, false)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, draft.ID, got.ID)

	items, _, err := svc.List(pagination.Query{Page: 1, Size: 10}, article.ListQuery{PublishedOnly: true})
	require.NoError(t, err)
	assert.Empty(t, items)

	items, _, err = svc.List(pagination.Query{Page: 1, Size: 10}, article.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestListSearchCoversBothLanguages(t *testing.T) {
	svc, _ := newTestService(t)

	a := newArticle("Paxta hosili haqida", true)
	a.TitleRu = "Об урожае хлопка"
	require.NoError(t, svc.Create(a))
	require.NoError(t, svc.Create(newArticle("Sport yangiliklari", true)))

	items, _, err := svc.List(pagination.Query{Page: 1, Size: 10},
		article.ListQuery{Search: "хлопка", PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, a.ID, items[0].ID)
}

func TestUpdateNeverTouchesSlug(t *testing.T) {
	svc, _ := newTestService(t)

	a := newArticle("Asl sarlavha", true)
	require.NoError(t, svc.Create(a))
	originalSlug := a.Slug

	newTitle := "Butunlay boshqa sarlavha"
	updated, err := svc.Update(a.ID, &article.UpdateArticleDTO{TitleUz: &newTitle})
	require.NoError(t, err)

	got, err := svc.GetByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, newTitle, got.TitleUz)
	assert.Equal(t, originalSlug, got.Slug)
	assert.Equal(t, originalSlug, updated.Slug)
}

func TestUpdateMissingArticle(t *testing.T) {
	svc, _ := newTestService(t)

	title := "x"
	_, err := svc.Update(999, &article.UpdateArticleDTO{TitleUz: &title})
	assert.ErrorIs(t, err, article.ErrNotFound)
}

func TestIncrementViewsConcurrent(t *testing.T) {
	svc, _ := newTestService(t)

	a := newArticle("Ko'p o'qilgan maqola", true)
	require.NoError(t, svc.Create(a))

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.IncrementViews(a.ID))
		}()
	}
	wg.Wait()

	got, err := svc.GetByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, n, got.Views)
}

func TestMarkTelegramPostedIdempotent(t *testing.T) {
	svc, _ := newTestService(t)

	a := newArticle("Kanalga yuborilgan", true)
	require.NoError(t, svc.Create(a))

	require.NoError(t, svc.MarkTelegramPosted(a.ID))
	require.NoError(t, svc.MarkTelegramPosted(a.ID))

	got, err := svc.GetByID(a.ID)
	require.NoError(t, err)
	assert.True(t, got.TelegramPosted)
}

func TestCategoryCountsIncludeZeroes(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.Create(newArticle("Bitta maqola", true)))
	require.NoError(t, svc.Create(newArticle("Qoralama", false)))

	counts, err := svc.CategoryCounts()
	require.NoError(t, err)
	require.Len(t, counts, 9)

	total := int64(0)
	for _, c := range counts {
		if c.Name == "Iqtisodiyot" {
			assert.Equal(t, int64(1), c.Count)
		}
		total += c.Count
	}
	// Drafts never count.
	assert.Equal(t, int64(1), total)
}

func TestStats(t *testing.T) {
	svc, _ := newTestService(t)

	a := newArticle("Birinchi", true)
	require.NoError(t, svc.Create(a))
	require.NoError(t, svc.Create(newArticle("Ikkinchi", false)))

	require.NoError(t, svc.IncrementViews(a.ID))
	require.NoError(t, svc.IncrementViews(a.ID))
	require.NoError(t, svc.MarkTelegramPosted(a.ID))

	st, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), st.TotalArticles)
	assert.Equal(t, int64(1), st.PublishedArticles)
	assert.Equal(t, int64(2), st.TotalViews)
	assert.Equal(t, int64(1), st.TelegramSent)
}
