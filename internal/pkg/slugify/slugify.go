// Package slugify derives URL-safe identifiers from article titles.
package slugify

import (
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// fallbackPrefix is used when a title has no alphanumeric content at
// all and cannot produce a slug on its own.
const fallbackPrefix = "maqola"

// Make turns a title into a lowercase, hyphen-separated, punctuation-free
// slug. Latin-script Uzbek and Cyrillic Russian titles are transliterated
// to ASCII. The result is always non-empty; uniqueness is the store's
// responsibility.
func Make(title string) string {
	s := slug.Make(strings.TrimSpace(title))
	if s == "" {
		return fallbackPrefix + "-" + uuid.NewString()[:8]
	}
	return s
}

// Valid reports whether s already is a well-formed slug.
func Valid(s string) bool {
	return s != "" && slug.IsSlug(s)
}
