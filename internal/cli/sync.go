package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mimecorg/bc-gettext-utils/internal/catalog"
	"github.com/mimecorg/bc-gettext-utils/internal/config"
	"github.com/mimecorg/bc-gettext-utils/internal/pofile"
	"github.com/mimecorg/bc-gettext-utils/internal/store"
)

func pushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push <file.po>",
		Short: "Store the messages of a PO file in the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(args[0])
		},
	}
}

func pullCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pull <file.po>",
		Short: "Copy translations from the database into a PO file",
		Long: `Copies stored translations into the messages of an existing PO file. When the
file does not exist it is created from every stored message.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, _ := cmd.Flags().GetString("language")
			project, _ := cmd.Flags().GetString("project")
			return runPull(args[0], lang, project)
		},
	}

	cmd.Flags().String("language", "", "Language of a newly created file")
	cmd.Flags().String("project", "", "Project-Id-Version of a newly created file")

	return cmd
}

// runPush handles the `push` command.
func runPush(path string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()

	file, err := pofile.ReadFile(path)
	if err != nil {
		return err
	}

	pgPool, err := initDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer pgPool.Close()

	st := store.New(pgPool, cfg.BatchSize)
	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}

	changed, err := st.Upsert(ctx, file.Catalog)
	if err != nil {
		return fmt.Errorf("push catalog: %w", err)
	}

	log.Info().Str("path", path).Int("messages", file.Catalog.Len()).Int("changed", changed).Msg("Push complete")
	return nil
}

// runPull handles the `pull` command.
func runPull(path, language, project string) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()
	if language == "" {
		language = cfg.Language
	}
	if project == "" {
		project = cfg.Project
	}

	pgPool, err := initDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer pgPool.Close()

	st := store.New(pgPool, cfg.BatchSize)
	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}

	stored, err := st.Load(ctx)
	if err != nil {
		return fmt.Errorf("pull catalog: %w", err)
	}

	file, err := pulledFile(path, stored, language, project, cfg.NPlurals)
	if err != nil {
		return err
	}
	return pofile.WriteFile(path, file)
}

// pulledFile applies stored translations to the PO file at path, or builds
// a new file from stored when path does not exist.
func pulledFile(path string, stored *catalog.Catalog, language, project string, nplurals int) (*pofile.File, error) {
	file, err := pofile.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		lang, err := pofile.ParseLanguage(language)
		if language != "" && err != nil {
			return nil, err
		}
		file = pofile.New(pofile.DefaultHeaders(project, lang))
		file.Catalog = stored
		log.Info().Str("path", path).Int("messages", stored.Len()).Msg("Creating catalog from database")
	case err != nil:
		return nil, err
	default:
		changed := catalog.CopyTranslations(file.Catalog, stored)
		log.Info().Str("path", path).Int("changed", changed).Msg("Copied stored translations")
	}

	if n := file.NPlurals(); n > 0 {
		nplurals = n
	}
	file.Catalog = catalog.NormalizePlurals(file.Catalog, nplurals)
	return file, nil
}
