package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mimecorg/bc-gettext-utils/internal/catalog"
	"github.com/mimecorg/bc-gettext-utils/internal/config"
	"github.com/mimecorg/bc-gettext-utils/internal/extract"
	"github.com/mimecorg/bc-gettext-utils/internal/filewalker"
	"github.com/mimecorg/bc-gettext-utils/internal/parser"
	"github.com/mimecorg/bc-gettext-utils/internal/pofile"
	"github.com/mimecorg/bc-gettext-utils/internal/worker"
)

const (
	formatPO   = "po"
	formatJSON = "json"
	formatTSV  = "tsv"
)

// extractRequest holds everything the extract command needs once flags and
// environment have been resolved.
type extractRequest struct {
	Paths    []string
	Base     string
	Output   string
	Format   string
	Merge    string
	NPlurals int
	// DefaultNPlurals applies when neither NPlurals nor a Plural-Forms
	// header is set.
	DefaultNPlurals int
	Language        string
	Project         string
	FormatFlags     bool
	Workers         int
	Options         extract.Options
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [paths...]",
		Short: "Extract translatable strings into a catalog",
		Long: `Walks the given files and directories, extracts translatable strings from
every supported source file and writes a PO, JSON or TSV catalog. With --merge
the translations of an existing PO file are kept.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := setupContext()
			defer cancel()

			req, err := extractRequestFrom(cmd, args, config.Load())
			if err != nil {
				return err
			}
			return runExtract(ctx, req)
		},
	}

	f := cmd.Flags()
	f.StringP("output", "o", "messages.po", "Output file")
	f.String("format", "", "Output format: po, json or tsv (default: by output extension)")
	f.StringP("merge", "m", "", "Existing PO file whose translations are kept")
	f.String("base", "", "Directory that references are relative to (default: working directory)")
	f.Int("nplurals", 0, "Number of plural forms (default: from the merged file, the language or GETTEXT_NPLURALS)")
	f.String("language", "", "Catalog language, e.g. pl_PL")
	f.String("project", "", "Project-Id-Version header")
	f.Bool("format-flags", false, "Mark new messages with placeholder format flags")
	f.IntP("workers", "w", 0, "Number of files parsed in parallel")
	f.String("keyword", "", "Keyword of simple translation calls")
	f.String("keyword-context", "", "Keyword of calls with a context")
	f.String("keyword-plural", "", "Keyword of calls with a plural form")
	f.String("keyword-context-plural", "", "Keyword of calls with a context and a plural form")
	f.Bool("reverse-context", false, "Context is the last argument of context plural calls")

	return cmd
}

// extractRequestFrom applies the command flags on top of cfg.
func extractRequestFrom(cmd *cobra.Command, args []string, cfg *config.Config) (extractRequest, error) {
	f := cmd.Flags()

	if f.Changed("keyword") {
		cfg.Keyword, _ = f.GetString("keyword")
	}
	if f.Changed("keyword-context") {
		cfg.KeywordContext, _ = f.GetString("keyword-context")
	}
	if f.Changed("keyword-plural") {
		cfg.KeywordPlural, _ = f.GetString("keyword-plural")
	}
	if f.Changed("keyword-context-plural") {
		cfg.KeywordContextPlural, _ = f.GetString("keyword-context-plural")
	}
	if f.Changed("reverse-context") {
		cfg.ReverseContext, _ = f.GetBool("reverse-context")
	}
	if f.Changed("language") {
		cfg.Language, _ = f.GetString("language")
	}
	if f.Changed("project") {
		cfg.Project, _ = f.GetString("project")
	}
	if f.Changed("format-flags") {
		cfg.FormatFlags, _ = f.GetBool("format-flags")
	}
	if f.Changed("workers") {
		cfg.WorkerCount, _ = f.GetInt("workers")
	}

	req := extractRequest{
		Paths:           args,
		Language:        cfg.Language,
		Project:         cfg.Project,
		FormatFlags:     cfg.FormatFlags,
		Workers:         cfg.WorkerCount,
		Options:         cfg.ExtractOptions(),
		DefaultNPlurals: cfg.NPlurals,
	}
	if len(req.Paths) == 0 {
		req.Paths = []string{"."}
	}

	req.Output, _ = f.GetString("output")
	req.Merge, _ = f.GetString("merge")
	req.Base, _ = f.GetString("base")
	if f.Changed("nplurals") {
		req.NPlurals, _ = f.GetInt("nplurals")
	}

	format, _ := f.GetString("format")
	var err error
	if req.Format, err = formatFor(req.Output, format); err != nil {
		return extractRequest{}, err
	}
	if req.Merge != "" && req.Format != formatPO {
		return extractRequest{}, fmt.Errorf("--merge requires PO output, got %s", req.Format)
	}
	return req, nil
}

// formatFor resolves the output format from the flag or the file extension.
func formatFor(output, format string) (string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".json":
			return formatJSON, nil
		case ".tsv":
			return formatTSV, nil
		default:
			return formatPO, nil
		}
	}

	switch format = strings.ToLower(format); format {
	case formatPO, formatJSON, formatTSV:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

// runExtract handles the `extract` command.
func runExtract(ctx context.Context, req extractRequest) error {
	fresh, err := buildCatalog(ctx, req)
	if err != nil {
		return err
	}

	file, err := prepareFile(fresh, req)
	if err != nil {
		return err
	}

	if err := writeCatalog(file, req.Output, req.Format); err != nil {
		return err
	}

	log.Info().
		Int("messages", file.Catalog.Len()).
		Str("output", req.Output).
		Str("format", req.Format).
		Msg("Extraction complete")
	return nil
}

// buildCatalog walks the request paths and extracts every file in parallel.
// Files are added to the catalog in path order so the result does not
// depend on scheduling.
func buildCatalog(ctx context.Context, req extractRequest) (*catalog.Catalog, error) {
	w, err := filewalker.NewWalker(req.Base, parser.NewParsers(req.Options))
	if err != nil {
		return nil, err
	}

	entries, err := w.Walk(req.Paths...)
	if err != nil {
		return nil, fmt.Errorf("walk input paths: %w", err)
	}

	log.Info().Int("files", len(entries)).Msg("Starting extraction")

	parsePool := worker.NewPool[filewalker.FileEntry, *parser.ParseResult](req.Workers,
		func(ctx context.Context, entry filewalker.FileEntry) (*parser.ParseResult, error) {
			return w.ParseFile(entry)
		},
	)
	parseResults := parsePool.Execute(ctx, entries)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	var builderOpts []catalog.BuilderOption
	if req.FormatFlags {
		builderOpts = append(builderOpts, catalog.WithFormatFlags())
	}
	builder := catalog.NewBuilder(builderOpts...)

	failed := 0
	for _, pr := range parseResults {
		if pr.Err != nil {
			log.Error().Err(pr.Err).Str("file", pr.Input.Path).Msg("Parse failed")
			failed++
			continue
		}
		builder.AddRecords(pr.Input.Ref, pr.Result.Records)
	}

	log.Info().
		Int("files", len(entries)).
		Int("failed", failed).
		Int("messages", builder.Count()).
		Msg("Extracted messages")

	return builder.Catalog(), nil
}

// prepareFile merges fresh into the existing catalog, when requested, and
// normalizes the plural forms.
func prepareFile(fresh *catalog.Catalog, req extractRequest) (*pofile.File, error) {
	lang, err := pofile.ParseLanguage(req.Language)
	if req.Language != "" && err != nil {
		return nil, err
	}

	file := pofile.New(pofile.DefaultHeaders(req.Project, lang))
	file.Catalog = fresh

	if req.Merge != "" {
		existing, err := pofile.ReadFile(req.Merge)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Warn().Str("path", req.Merge).Msg("Merge file not found, creating a new catalog")
		case err != nil:
			return nil, err
		default:
			result := catalog.Merge(existing.Catalog, fresh)
			log.Info().
				Int("added", result.Added).
				Int("updated", result.Updated).
				Int("deleted", result.Deleted).
				Msg("Merged catalog")

			existing.Catalog = result.Catalog
			file = existing
			if req.Language != "" {
				file.SetHeader("Language", lang.String())
				file.SetHeader("Plural-Forms", lang.PluralForms())
			}
			if req.Project != "" {
				file.SetHeader("Project-Id-Version", req.Project)
			}
		}
	}

	file.Catalog = catalog.NormalizePlurals(file.Catalog, npluralsFor(file, req))
	return file, nil
}

// npluralsFor picks the explicit count, then the file header, then the
// configured default.
func npluralsFor(file *pofile.File, req extractRequest) int {
	if req.NPlurals > 0 {
		return req.NPlurals
	}
	if n := file.NPlurals(); n > 0 {
		return n
	}
	if req.DefaultNPlurals > 0 {
		return req.DefaultNPlurals
	}
	return 2
}

func writeCatalog(file *pofile.File, output, format string) error {
	switch format {
	case formatJSON:
		return catalog.ExportJSON(file.Catalog, output)
	case formatTSV:
		return catalog.ExportTSV(file.Catalog, output)
	default:
		return pofile.WriteFile(output, file)
	}
}
