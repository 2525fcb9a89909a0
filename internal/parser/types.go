package parser

import "github.com/mimecorg/bc-gettext-utils/internal/extract"

// ParseResult holds extraction output for a single file.
type ParseResult struct {
	// FilePath is the path the file was read from.
	FilePath string
	// Dialect is the syntax the file was scanned as.
	Dialect extract.Dialect
	// Records are the translatable strings in source order.
	Records []*extract.Record
}

// Parser is the interface for all source file parsers.
type Parser interface {
	// CanParse returns true if this parser handles the given file extension.
	CanParse(ext string) bool
	// Parse extracts translatable strings from a file.
	Parse(filePath string) (*ParseResult, error)
}
