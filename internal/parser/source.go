package parser

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mimecorg/bc-gettext-utils/internal/extract"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SourceParser extracts strings from files of one dialect.
type SourceParser struct {
	dialect extract.Dialect
	opts    extract.Options
}

func NewSourceParser(d extract.Dialect, opts extract.Options) *SourceParser {
	return &SourceParser{dialect: d, opts: opts}
}

// NewParsers returns a parser for every supported dialect.
func NewParsers(opts extract.Options) []Parser {
	return []Parser{
		NewSourceParser(extract.JavaScript, opts),
		NewSourceParser(extract.CSharp, opts),
		NewSourceParser(extract.Vue, opts),
		NewSourceParser(extract.Razor, opts),
		NewSourceParser(extract.XAML, opts),
		NewSourceParser(extract.PHP, opts),
	}
}

func (p *SourceParser) CanParse(ext string) bool {
	d, ok := extract.DialectForExt(ext)
	return ok && d == p.dialect
}

func (p *SourceParser) Parse(filePath string) (*ParseResult, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read %s file: %w", p.dialect, err)
	}

	result := &ParseResult{
		FilePath: filePath,
		Dialect:  p.dialect,
		Records:  p.ParseText(decode(data)),
	}

	log.Debug().Str("file", filePath).Stringer("dialect", p.dialect).Int("strings", len(result.Records)).Msg("Parsed file")
	return result, nil
}

// ParseText extracts strings from source text already in memory.
func (p *SourceParser) ParseText(text string) []*extract.Record {
	return extract.All(extract.New(p.dialect, text, p.opts))
}

// decode strips a byte order mark and normalizes line endings.
func decode(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)
	return strings.ReplaceAll(string(data), "\r\n", "\n")
}
