package telegram

import (
	"strings"
	"time"

	"github.com/uzbeknews/core/internal/models"
	"github.com/uzbeknews/core/internal/pkg/uzbek"
)

// htmlEscaper covers the only characters Telegram's HTML parse mode
// requires escaping. Apostrophes stay raw: Uzbek text is full of them.
var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// summaryLimit is the hard cutoff for the body preview in a channel post.
const summaryLimit = 200

// categoryEmoji maps categories to their channel-post symbol.
var categoryEmoji = map[string]string{
	"O'zbekiston yangiliklar":        "🇺🇿",
	"Texnologiya":                    "💻",
	"Iqtisodiyot":                    "📈",
	"Sport":                          "⚽",
	"Madaniyat":                      "🎭",
	"Ta'lim":                         "📚",
	"Sog'liqni saqlash":              "🏥",
	"Markaziy Osiyodagi yangiliklar": "🌍",
	"Jahon yangiliklar":              "🌐",
}

const defaultEmoji = "📰"

// trailingTags is appended to every channel post.
const trailingTags = "#UzbekNews #Uzbekistan #Yangiliklar"

// CategoryEmoji returns the channel symbol for a category, falling back
// to the generic newspaper symbol for unmapped names.
func CategoryEmoji(category string) string {
	if e, ok := categoryEmoji[category]; ok {
		return e
	}
	return defaultEmoji
}

// FormatMessage renders an article into Telegram HTML. Pure: the
// timestamp is passed in so the output is fully determined by its
// arguments.
func FormatMessage(a *models.ArticleModel, baseURL string, now time.Time) string {
	title := htmlEscaper.Replace(a.TitleUz)
	summary := summarize(a)
	link := strings.TrimRight(baseURL, "/") + a.PublicPath()

	var b strings.Builder
	b.WriteString(CategoryEmoji(a.Category))
	b.WriteString(" <b>")
	b.WriteString(title)
	b.WriteString("</b>\n\n")
	b.WriteString(htmlEscaper.Replace(summary))
	b.WriteString("\n\n")
	b.WriteString("📅 ")
	b.WriteString(uzbek.FormatShortDate(now))
	b.WriteString("\n🏷️ ")
	b.WriteString(uzbek.Hashtag(a.Category))
	b.WriteString("\n\n")
	b.WriteString(`<a href="` + link + `">📖 To'liq maqolani o'qish uchun...</a>`)
	b.WriteString("\n\n")
	b.WriteString(trailingTags)
	return b.String()
}

// summarize prefers the pre-rendered channel text; otherwise it takes
// exactly the first summaryLimit runes of the Uzbek body, with an
// ellipsis marker when truncated.
func summarize(a *models.ArticleModel) string {
	if tg := strings.TrimSpace(a.TelegramContentUz); tg != "" {
		return tg
	}
	runes := []rune(a.ContentUz)
	if len(runes) <= summaryLimit {
		return a.ContentUz
	}
	return string(runes[:summaryLimit]) + "..."
}
