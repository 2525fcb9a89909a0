package catalog

// NormalizePlurals returns a copy of c in which every message has exactly
// one translated value, or n values when it has a plural form. Lists are
// truncated or padded with empty strings.
func NormalizePlurals(c *Catalog, n int) *Catalog {
	if n < 1 {
		n = 1
	}

	out := New()
	for _, m := range c.Messages() {
		want := 1
		if m.Plural != "" {
			want = n
		}

		if len(m.Str) == want {
			out.Put(m)
			continue
		}

		normalized := m.Clone()
		if len(normalized.Str) > want {
			normalized.Str = normalized.Str[:want]
		}
		for len(normalized.Str) < want {
			normalized.Str = append(normalized.Str, "")
		}
		out.Put(normalized)
	}
	return out
}
