package uzbek_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/uzbeknews/core/internal/pkg/uzbek"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, time.September, 1, 14, 5, 0, 0, uzbek.Tashkent())
	assert.Equal(t, "1-sentabr, 2026-yil, 14:05", uzbek.FormatDate(ts))
}

func TestFormatDateConvertsToTashkent(t *testing.T) {
	// 09:05 UTC is 14:05 in Tashkent (UTC+5).
	ts := time.Date(2026, time.September, 1, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "1-sentabr, 2026-yil, 14:05", uzbek.FormatDate(ts))
}

func TestFormatDateZero(t *testing.T) {
	assert.Equal(t, "", uzbek.FormatDate(time.Time{}))
}

func TestFormatShortDate(t *testing.T) {
	ts := time.Date(2026, time.January, 15, 8, 30, 0, 0, uzbek.Tashkent())
	assert.Equal(t, "15-yanvar, 08:30", uzbek.FormatShortDate(ts))
}

func TestExcerptShortContentUntouched(t *testing.T) {
	assert.Equal(t, "Qisqa matn", uzbek.Excerpt("Qisqa matn", 150))
}

func TestExcerptStripsMarkup(t *testing.T) {
	got := uzbek.Excerpt("<p>Toshkent <b>shahri</b></p>", 150)
	assert.Equal(t, "Toshkent shahri", got)
}

func TestExcerptTruncatesAtWordBoundary(t *testing.T) {
	content := strings.Repeat("yangilik ", 40)
	got := uzbek.Excerpt(content, 50)

	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len([]rune(got)), 53)
	assert.False(t, strings.Contains(strings.TrimSuffix(got, "..."), "  "))
}

func TestHashtag(t *testing.T) {
	assert.Equal(t, "#Iqtisodiyot", uzbek.Hashtag("Iqtisodiyot"))
	assert.Equal(t, "#Dunyoyangiliklari", uzbek.Hashtag("Dunyo yangiliklari"))
	assert.Equal(t, "#Sanat", uzbek.Hashtag("San'at"))
	assert.Equal(t, "", uzbek.Hashtag(""))
}
