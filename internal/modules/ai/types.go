package ai

// Draft is a structured bilingual article draft returned by the
// provider. Missing optional fields come back as empty strings.
type Draft struct {
	TitleUz         string `json:"title_uz"`
	TitleRu         string `json:"title_ru"`
	ContentUz       string `json:"content_uz"`
	ContentRu       string `json:"content_ru"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	Keywords        string `json:"keywords"`
}

// Translation is the Russian rendering of Uzbek article content.
type Translation struct {
	TitleRu   string `json:"title_ru"`
	ContentRu string `json:"content_ru"`
}
