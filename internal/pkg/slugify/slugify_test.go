package slugify_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uzbeknews/core/internal/pkg/slugify"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestMake(t *testing.T) {
	assert.Equal(t, "uzum-reaches-1b-valuation", slugify.Make("Uzum reaches $1B valuation"))
}

func TestMakeShape(t *testing.T) {
	titles := []string{
		"Toshkentda yangi metro bekati ochildi",
		"IT Park rezidentlari soni 1000 dan oshdi",
		"Дорога в Самарканд отремонтирована",
		"  Bo'sh   joylar   ko'p  ",
	}
	for _, title := range titles {
		got := slugify.Make(title)
		assert.Regexp(t, slugShape, got, "title %q", title)
		assert.True(t, slugify.Valid(got))
	}
}

func TestMakeFallbackForUnusableTitle(t *testing.T) {
	got := slugify.Make("!!! ??? ***")
	assert.True(t, strings.HasPrefix(got, "maqola-"), "got %q", got)
	assert.True(t, slugify.Valid(got))
}

func TestMakeFallbackIsUnique(t *testing.T) {
	assert.NotEqual(t, slugify.Make("???"), slugify.Make("???"))
}
