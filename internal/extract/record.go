// Package extract turns token streams into translatable strings.
package extract

// Record is a single translation candidate found in a source file.
type Record struct {
	Line    int
	Context string
	ID      string
	Plural  string
}

// HasContext reports whether the record is disambiguated by a context.
func (r *Record) HasContext() bool {
	return r.Context != ""
}

// IsPlural reports whether the record carries a plural form.
func (r *Record) IsPlural() bool {
	return r.Plural != ""
}

// Extractor produces records one at a time. Next returns nil when the
// stream is exhausted.
type Extractor interface {
	Next() *Record
}

// All drains an extractor.
func All(e Extractor) []*Record {
	var records []*Record
	for r := e.Next(); r != nil; r = e.Next() {
		records = append(records, r)
	}
	return records
}
