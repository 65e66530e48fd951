// Package uzbek holds Uzbek-locale text and date helpers shared by the
// public API and the channel publisher.
package uzbek

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var months = [...]string{
	"yanvar", "fevral", "mart", "aprel", "may", "iyun",
	"iyul", "avgust", "sentabr", "oktabr", "noyabr", "dekabr",
}

// tashkent is UTC+5 year-round.
var tashkent = loadTashkent()

func loadTashkent() *time.Location {
	if loc, err := time.LoadLocation("Asia/Tashkent"); err == nil {
		return loc
	}
	return time.FixedZone("UZT", 5*60*60)
}

// Tashkent returns the site's display timezone.
func Tashkent() *time.Location { return tashkent }

// FormatDate renders a timestamp in the Uzbek long form,
// e.g. "1-sentabr, 2026-yil, 14:05".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.In(tashkent)
	return strings.Join([]string{
		strconv.Itoa(t.Day()) + "-" + months[t.Month()-1] + ",",
		strconv.Itoa(t.Year()) + "-yil,",
		t.Format("15:04"),
	}, " ")
}

// FormatShortDate renders the short form used in channel posts,
// e.g. "1-sentabr, 14:05".
func FormatShortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.In(tashkent)
	return strconv.Itoa(t.Day()) + "-" + months[t.Month()-1] + ", " + t.Format("15:04")
}

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// Excerpt strips markup and truncates content to at most length runes,
// cutting at a word boundary with a trailing ellipsis.
func Excerpt(content string, length int) string {
	clean := strings.TrimSpace(htmlTagRe.ReplaceAllString(content, ""))
	runes := []rune(clean)
	if len(runes) <= length {
		return clean
	}
	cut := string(runes[:length])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}

// Hashtag converts a category name into a Telegram hashtag:
// spaces and apostrophes removed, leading '#'.
func Hashtag(category string) string {
	tag := strings.ReplaceAll(category, " ", "")
	tag = strings.ReplaceAll(tag, "'", "")
	tag = strings.ReplaceAll(tag, "’", "")
	if tag == "" {
		return ""
	}
	return "#" + tag
}
