package filewalker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mimecorg/bc-gettext-utils/internal/parser"
)

// skippedDirs are never descended into.
var skippedDirs = map[string]bool{
	"node_modules": true,
	"bin":          true,
	"obj":          true,
	"vendor":       true,
}

// Walker traverses directories and dispatches files to the correct parser.
type Walker struct {
	parsers []parser.Parser
	base    string
}

// NewWalker creates a Walker. Reference paths are made relative to base;
// an empty base means the working directory.
func NewWalker(base string, parsers []parser.Parser) (*Walker, error) {
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		base = wd
	}
	base, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolve base path: %w", err)
	}
	return &Walker{parsers: parsers, base: base}, nil
}

// FileEntry represents a discovered file ready for processing.
type FileEntry struct {
	Path string
	// Ref is the slash separated path used in "#:" references.
	Ref    string
	Ext    string
	Parser parser.Parser
}

// Walk discovers all supported files under the given roots. A root may be
// a single file, which is included whenever a parser accepts it. Entries
// are sorted by reference path and contain no duplicates.
func (w *Walker) Walk(roots ...string) ([]FileEntry, error) {
	seen := make(map[string]bool)
	var entries []FileEntry

	add := func(path string) {
		if seen[path] {
			return
		}
		if entry, ok := w.entry(path); ok {
			seen[path] = true
			entries = append(entries, entry)
		}
	}

	for _, root := range roots {
		root, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("resolve root path: %w", err)
		}

		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat root: %w", err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("Error walking path")
				return nil
			}

			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			add(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk directory: %w", err)
		}
	}

	slices.SortFunc(entries, func(a, b FileEntry) int {
		return strings.Compare(a.Ref, b.Ref)
	})

	log.Info().Int("count", len(entries)).Strs("roots", roots).Msg("Discovered files")
	return entries, nil
}

func skipDir(name string) bool {
	return skippedDirs[name] || strings.HasPrefix(name, ".")
}

func (w *Walker) entry(path string) (FileEntry, bool) {
	ext := strings.ToLower(filepath.Ext(path))

	for _, p := range w.parsers {
		if p.CanParse(ext) {
			return FileEntry{
				Path:   path,
				Ref:    w.ref(path),
				Ext:    ext,
				Parser: p,
			}, true
		}
	}
	return FileEntry{}, false
}

// ref makes path relative to the base directory when it lies below it.
func (w *Walker) ref(path string) string {
	rel, err := filepath.Rel(w.base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// ParseFile parses a single file using the appropriate parser.
func (w *Walker) ParseFile(entry FileEntry) (*parser.ParseResult, error) {
	return entry.Parser.Parse(entry.Path)
}
