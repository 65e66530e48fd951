package telegram_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/uzbeknews/core/internal/models"
	"github.com/uzbeknews/core/internal/modules/telegram"
	"github.com/uzbeknews/core/internal/pkg/uzbek"
)

func sampleArticle() *models.ArticleModel {
	return &models.ArticleModel{
		TitleUz:   "Toshkentda yangi texnopark ochildi",
		ContentUz: "Poytaxtda yangi texnopark o'z faoliyatini boshladi.",
		Slug:      "toshkentda-yangi-texnopark-ochildi",
		Category:  "Texnologiya",
		Published: true,
	}
}

func TestFormatMessageStructure(t *testing.T) {
	a := sampleArticle()
	now := time.Date(2026, time.September, 1, 14, 5, 0, 0, uzbek.Tashkent())

	msg := telegram.FormatMessage(a, "https://uzbeknews.uz/", now)

	assert.True(t, strings.HasPrefix(msg, "💻 <b>Toshkentda yangi texnopark ochildi</b>"))
	assert.Contains(t, msg, a.ContentUz)
	assert.Contains(t, msg, "📅 1-sentabr, 14:05")
	assert.Contains(t, msg, "🏷️ #Texnologiya")
	assert.Contains(t, msg, `<a href="https://uzbeknews.uz/article/toshkentda-yangi-texnopark-ochildi">`)
	assert.True(t, strings.HasSuffix(msg, "#UzbekNews #Uzbekistan #Yangiliklar"))
}

func TestFormatMessageCutsBodyAt200Runes(t *testing.T) {
	a := sampleArticle()
	a.ContentUz = strings.Repeat("ў", 500)

	msg := telegram.FormatMessage(a, "https://uzbeknews.uz", time.Now())

	assert.Contains(t, msg, strings.Repeat("ў", 200)+"...")
	assert.NotContains(t, msg, strings.Repeat("ў", 201))
}

func TestFormatMessagePrefersChannelText(t *testing.T) {
	a := sampleArticle()
	a.TelegramContentUz = "Tahrirlangan kanal matni"
	a.ContentUz = strings.Repeat("x", 500)

	msg := telegram.FormatMessage(a, "https://uzbeknews.uz", time.Now())

	assert.Contains(t, msg, "Tahrirlangan kanal matni")
	assert.NotContains(t, msg, "xxx")
}

func TestFormatMessageEscapesHTML(t *testing.T) {
	a := sampleArticle()
	a.TitleUz = `Reyting: "A" <toifa> & boshqalar`

	msg := telegram.FormatMessage(a, "https://uzbeknews.uz", time.Now())

	assert.Contains(t, msg, "&lt;toifa&gt; &amp; boshqalar")
	assert.NotContains(t, msg, "<toifa>")
}

func TestFormatMessageKeepsApostrophesRaw(t *testing.T) {
	a := sampleArticle()
	a.TitleUz = "O'zbekiston g'alabasi"
	a.ContentUz = "Jamoa o'z o'yinini ko'rsatdi."

	msg := telegram.FormatMessage(a, "https://uzbeknews.uz", time.Now())

	assert.Contains(t, msg, "O'zbekiston g'alabasi")
	assert.Contains(t, msg, "Jamoa o'z o'yinini ko'rsatdi.")
	assert.NotContains(t, msg, "&#39;")
	assert.NotContains(t, msg, "&amp;#39;")
}

func TestCategoryEmoji(t *testing.T) {
	assert.Equal(t, "⚽", telegram.CategoryEmoji("Sport"))
	assert.Equal(t, "🇺🇿", telegram.CategoryEmoji("O'zbekiston yangiliklar"))
	assert.Equal(t, "📰", telegram.CategoryEmoji("Mavjud emas"))
}
