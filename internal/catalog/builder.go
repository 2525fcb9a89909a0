package catalog

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/mimecorg/bc-gettext-utils/internal/extract"
	"github.com/mimecorg/bc-gettext-utils/internal/placeholder"
	"github.com/mimecorg/bc-gettext-utils/internal/textutil"
)

// Builder collects extraction records from many files into a catalog.
// It is not safe for concurrent use.
type Builder struct {
	catalog     *Catalog
	formatFlags bool
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithFormatFlags marks new messages with the format flags of their
// placeholders.
func WithFormatFlags() BuilderOption {
	return func(b *Builder) {
		b.formatFlags = true
	}
}

func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{catalog: New()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Catalog returns the catalog built so far.
func (b *Builder) Catalog() *Catalog {
	return b.catalog
}

// Count returns the number of distinct messages.
func (b *Builder) Count() int {
	return b.catalog.Len()
}

// Add drains e and records every message it yields under file. It returns
// the number of records read.
func (b *Builder) Add(file string, e extract.Extractor) int {
	n := 0
	for r := e.Next(); r != nil; r = e.Next() {
		b.AddRecord(file, r)
		n++
	}
	return n
}

// AddRecords records a batch of already extracted records.
func (b *Builder) AddRecords(file string, records []*extract.Record) {
	for _, r := range records {
		b.AddRecord(file, r)
	}
}

// AddRecord records a single extraction. Records with an empty msgid are
// ignored.
func (b *Builder) AddRecord(file string, r *extract.Record) {
	if r.ID == "" {
		return
	}

	ref := fmt.Sprintf("%s:%d", file, r.Line)

	m, ok := b.catalog.Get(r.Context, r.ID)
	if !ok {
		m = &Message{
			Context:  r.Context,
			ID:       r.ID,
			Plural:   r.Plural,
			Str:      []string{""},
			Comments: Comments{Reference: ref},
		}
		if b.formatFlags {
			m.Comments.Flag = placeholder.Flags(placeholder.Detect(r.ID, r.Plural))
		}
		b.catalog.Put(m)

		log.Debug().Str("msgid", textutil.Truncate(r.ID, 60)).Str("msgctxt", r.Context).Str("reference", ref).Msg("New catalog entry")
		return
	}

	if r.Plural != "" && m.Plural == "" {
		m.Plural = r.Plural
	}
	if !slices.Contains(m.References(), ref) {
		m.Comments.Reference += " " + ref
	}
}
