package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopyTranslations(t *testing.T) {
	dst := catalogOf(
		msg("a", "a.js:1", ""),
		msg("b", "a.js:2", "old"),
		msg("c", "a.js:3", "keep"),
		msg("d", "a.js:4", "same"),
	)
	src := catalogOf(
		msg("a", "", "new a"),
		msg("b", "", "new b"),
		msg("c", "", " "),
		msg("d", "", "same"),
		msg("e", "", "unused"),
	)

	assert.Equal(t, 2, CopyTranslations(dst, src))

	a, _ := dst.Get("", "a")
	b, _ := dst.Get("", "b")
	c, _ := dst.Get("", "c")
	assert.Equal(t, []string{"new a"}, a.Str)
	assert.Equal(t, "a.js:1", a.Comments.Reference)
	assert.Equal(t, []string{"new b"}, b.Str)
	assert.Equal(t, []string{"keep"}, c.Str)
	assert.Equal(t, 4, dst.Len())
}

func TestCopyTranslationsDoesNotShareState(t *testing.T) {
	dst := catalogOf(msg("a", "a.js:1", ""))
	src := catalogOf(msg("a", "", "x"))

	CopyTranslations(dst, src)

	from, _ := src.Get("", "a")
	from.Str[0] = "changed"

	to, _ := dst.Get("", "a")
	assert.Equal(t, []string{"x"}, to.Str)
}
