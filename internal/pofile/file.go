// Package pofile reads and writes gettext PO files.
package pofile

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mimecorg/bc-gettext-utils/internal/catalog"
)

// Header is one "Name: value" line of the PO header entry.
type Header struct {
	Name  string
	Value string
}

// File is a parsed PO file: the header entry and the message catalog.
type File struct {
	Headers []Header
	// Comments are the translator comments above the header entry.
	Comments string
	Catalog  *catalog.Catalog
}

// New creates an empty file with the given headers.
func New(headers []Header) *File {
	return &File{Headers: headers, Catalog: catalog.New()}
}

// Header returns the value of the named header, matched case-insensitively.
func (f *File) Header(name string) string {
	for _, h := range f.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// SetHeader replaces the named header or appends it.
func (f *File) SetHeader(name, value string) {
	for i, h := range f.Headers {
		if strings.EqualFold(h.Name, name) {
			f.Headers[i].Value = value
			return
		}
	}
	f.Headers = append(f.Headers, Header{Name: name, Value: value})
}

var npluralsRe = regexp.MustCompile(`nplurals\s*=\s*([0-9]+)`)

// NPlurals returns the plural count declared by the Plural-Forms header, or
// zero when there is none.
func (f *File) NPlurals() int {
	m := npluralsRe.FindStringSubmatch(f.Header("Plural-Forms"))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// ReadFile parses the PO file at path.
func ReadFile(path string) (*File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open PO file: %w", err)
	}
	defer in.Close()

	f, err := Parse(in)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	log.Debug().Str("path", path).Int("messages", f.Catalog.Len()).Msg("Read PO file")
	return f, nil
}

// WriteFile writes f to path.
func WriteFile(path string, f *File) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create PO file: %w", err)
	}
	defer out.Close()

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("messages", f.Catalog.Len()).Msg("Wrote PO file")
	return nil
}
