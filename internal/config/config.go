package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/mimecorg/bc-gettext-utils/internal/extract"
)

type Config struct {
	Keyword              string
	KeywordContext       string
	KeywordPlural        string
	KeywordContextPlural string
	ReverseContext       bool

	DisplayAttributes    []string
	ErrorMessageProperty string

	XAMLExtensions []string
	XAMLText       string
	XAMLPluralText string
	XAMLContext    string

	NPlurals    int
	Language    string
	Project     string
	FormatFlags bool

	WorkerCount int
	BatchSize   int
	DatabaseURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() *Config {
	return &Config{
		Keyword:              getEnv("GETTEXT_KEYWORD", "_"),
		KeywordContext:       getEnv("GETTEXT_KEYWORD_CONTEXT", "_p"),
		KeywordPlural:        getEnv("GETTEXT_KEYWORD_PLURAL", "_n"),
		KeywordContextPlural: getEnv("GETTEXT_KEYWORD_CONTEXT_PLURAL", "_pn"),
		ReverseContext:       getEnvBool("GETTEXT_REVERSE_CONTEXT", false),
		DisplayAttributes:    getEnvList("GETTEXT_DISPLAY_ATTRIBUTES", []string{"Display"}),
		ErrorMessageProperty: getEnv("GETTEXT_ERROR_MESSAGE_PROPERTY", "ErrorMessage"),
		XAMLExtensions:       getEnvList("GETTEXT_XAML_EXTENSIONS", []string{"i18n:Translate", "i18n:Format", "i18n:MultiFormat"}),
		XAMLText:             getEnv("GETTEXT_XAML_TEXT", "Text"),
		XAMLPluralText:       getEnv("GETTEXT_XAML_PLURAL_TEXT", "PluralText"),
		XAMLContext:          getEnv("GETTEXT_XAML_CONTEXT", "Context"),
		NPlurals:             getEnvInt("GETTEXT_NPLURALS", 2),
		Language:             getEnv("GETTEXT_LANGUAGE", ""),
		Project:              getEnv("GETTEXT_PROJECT", ""),
		FormatFlags:          getEnvBool("GETTEXT_FORMAT_FLAGS", false),
		WorkerCount:          getEnvInt("WORKER_COUNT", 8),
		BatchSize:            getEnvInt("BATCH_SIZE", 100),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
	}
}

// ExtractOptions converts the configuration into extractor options.
func (c *Config) ExtractOptions() extract.Options {
	return extract.Options{
		Keywords: extract.Keywords{
			Text:           c.Keyword,
			ContextText:    c.KeywordContext,
			Plural:         c.KeywordPlural,
			ContextPlural:  c.KeywordContextPlural,
			ReverseContext: c.ReverseContext,
		},
		DisplayAttributes:    c.DisplayAttributes,
		ErrorMessageProperty: c.ErrorMessageProperty,
		XAML: extract.XAMLOptions{
			Extensions:          c.XAMLExtensions,
			TextAttribute:       c.XAMLText,
			PluralTextAttribute: c.XAMLPluralText,
			ContextAttribute:    c.XAMLContext,
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Invalid integer, using default")
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Invalid boolean, using default")
		return fallback
	}
	return b
}

// getEnvList splits a comma separated value, dropping empty items.
func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
