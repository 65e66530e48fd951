// Package sitemap renders the search-engine sitemap over released
// articles.
package sitemap

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/uzbeknews/core/internal/models"
)

func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB, baseURL string) {
	render := func(c *gin.Context) {
		xml, err := build(db, baseURL)
		if err != nil {
			c.String(500, "error generating sitemap")
			return
		}
		c.Header("Content-Type", "application/xml; charset=utf-8")
		c.String(200, xml)
	}
	rg.GET("/sitemap.xml", render)
	rg.GET("/sitemap", render)
}

type sitemapURL struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

func build(db *gorm.DB, baseURL string) (string, error) {
	base := strings.TrimRight(baseURL, "/")

	urls := []sitemapURL{{
		Loc: base, LastMod: time.Now(),
		ChangeFreq: "hourly", Priority: 1.0,
	}}

	var articles []models.ArticleModel
	if err := db.Where("published = ?", true).
		Select("slug, updated_at").
		Order("updated_at DESC").
		Find(&articles).Error; err != nil {
		return "", err
	}
	for i := range articles {
		urls = append(urls, sitemapURL{
			Loc:        base + articles[i].PublicPath(),
			LastMod:    articles[i].UpdatedAt,
			ChangeFreq: "weekly",
			Priority:   0.8,
		})
	}

	return renderXML(urls), nil
}

func renderXML(urls []sitemapURL) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
`)
	for _, u := range urls {
		fmt.Fprintf(&b, `  <url>
    <loc>%s</loc>
    <lastmod>%s</lastmod>
    <changefreq>%s</changefreq>
    <priority>%.1f</priority>
  </url>
`, escapeXML(u.Loc), u.LastMod.Format("2006-01-02"), u.ChangeFreq, u.Priority)
	}
	b.WriteString(`</urlset>`)
	return b.String()
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
