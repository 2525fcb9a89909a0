package catalog

import (
	"slices"
	"strings"
)

// CopyTranslations copies translated values from src into the matching
// messages of dst. Messages of src without any translated value are
// ignored. It returns the number of messages of dst that changed.
func CopyTranslations(dst, src *Catalog) int {
	changed := 0
	for _, m := range dst.Messages() {
		from, ok := src.Get(m.Context, m.ID)
		if !ok || !translated(from) {
			continue
		}
		if slices.Equal(m.Str, from.Str) && m.Comments.Translator == from.Comments.Translator {
			continue
		}

		m.Str = slices.Clone(from.Str)
		m.Comments.Translator = from.Comments.Translator
		changed++
	}
	return changed
}

func translated(m *Message) bool {
	return slices.ContainsFunc(m.Str, func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
}
