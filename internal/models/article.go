package models

// ArticleModel is a bilingual (Uzbek/Russian) news article.
//
// Slug is immutable once the row is written: it is the canonical public
// identifier surfaced in channel posts and search engines.
type ArticleModel struct {
	Base

	// Multi-language titles. Uzbek is the primary language.
	TitleUz string `json:"title_uz" gorm:"size:200;not null"`
	TitleRu string `json:"title_ru" gorm:"size:200"`

	// Multi-language bodies (markdown).
	ContentUz string `json:"content_uz" gorm:"type:text;not null"`
	ContentRu string `json:"content_ru" gorm:"type:text"`

	// Pre-rendered channel post text per language, filled by the AI
	// generator when available.
	TelegramContentUz string `json:"telegram_content_uz" gorm:"type:text"`
	TelegramContentRu string `json:"telegram_content_ru" gorm:"type:text"`

	// SEO metadata.
	MetaTitle       string `json:"meta_title"       gorm:"size:60"`
	MetaDescription string `json:"meta_description" gorm:"size:155"`
	Slug            string `json:"slug"             gorm:"size:255;uniqueIndex;not null"`

	Category string `json:"category" gorm:"size:50;not null;index"`
	Region   string `json:"region"   gorm:"size:50;index"`
	Keywords string `json:"keywords" gorm:"size:200"`

	Published      bool `json:"published"       gorm:"default:false;index"`
	Featured       bool `json:"featured"        gorm:"default:false"`
	Views          int  `json:"views"           gorm:"default:0"`
	TelegramViews  int  `json:"telegram_views"  gorm:"default:0"`
	TelegramPosted bool `json:"telegram_posted" gorm:"default:false"`

	AuthorID uint       `json:"author_id" gorm:"index;not null"`
	Author   *UserModel `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

func (ArticleModel) TableName() string { return "articles" }

// PublicPath is the canonical site path for a released article.
func (a ArticleModel) PublicPath() string { return "/article/" + a.Slug }
