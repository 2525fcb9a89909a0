package catalog

import "slices"

// MergeResult is the outcome of merging a fresh catalog into an existing one.
type MergeResult struct {
	Catalog *Catalog
	Added   int
	Updated int
	Deleted int
}

// Merge combines a freshly extracted catalog with an existing one. Messages
// that survive keep their translations, translator comments and flags; the
// rest of each message comes from fresh. A message is updated when its
// references or its plural form changed.
func Merge(existing, fresh *Catalog) MergeResult {
	result := MergeResult{Catalog: New()}

	for _, m := range fresh.Messages() {
		merged := m.Clone()

		old, ok := existing.Get(m.Context, m.ID)
		if !ok {
			result.Added++
			result.Catalog.Put(merged)
			continue
		}

		if m.Comments.Reference != old.Comments.Reference || m.Plural != old.Plural {
			result.Updated++
		}

		merged.Str = slices.Clone(old.Str)
		if old.Comments.Translator != "" {
			merged.Comments.Translator = old.Comments.Translator
		}
		if old.Comments.Flag != "" {
			merged.Comments.Flag = old.Comments.Flag
		}
		result.Catalog.Put(merged)
	}

	for _, m := range existing.Messages() {
		if m.IsHeader() {
			continue
		}
		if _, ok := fresh.Get(m.Context, m.ID); !ok {
			result.Deleted++
		}
	}

	return result
}
