// Package store keeps a message catalog in PostgreSQL so it can be shared
// between working copies.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/mimecorg/bc-gettext-utils/internal/catalog"
	"github.com/mimecorg/bc-gettext-utils/internal/textutil"
	"github.com/mimecorg/bc-gettext-utils/internal/worker"
)

const schema = `
CREATE TABLE IF NOT EXISTS gettext_messages (
	hash         TEXT PRIMARY KEY,
	msgctxt      TEXT NOT NULL DEFAULT '',
	msgid        TEXT NOT NULL,
	msgid_plural TEXT NOT NULL DEFAULT '',
	msgstr       TEXT[] NOT NULL DEFAULT '{}',
	translator   TEXT NOT NULL DEFAULT '',
	reference    TEXT NOT NULL DEFAULT '',
	flag         TEXT NOT NULL DEFAULT '',
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const upsertSQL = `
INSERT INTO gettext_messages (hash, msgctxt, msgid, msgid_plural, msgstr, translator, reference, flag)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (hash) DO UPDATE SET
	msgid_plural = EXCLUDED.msgid_plural,
	msgstr       = EXCLUDED.msgstr,
	translator   = EXCLUDED.translator,
	reference    = EXCLUDED.reference,
	flag         = EXCLUDED.flag,
	updated_at   = now()
WHERE (gettext_messages.msgid_plural, gettext_messages.msgstr, gettext_messages.translator,
	gettext_messages.reference, gettext_messages.flag)
	IS DISTINCT FROM (EXCLUDED.msgid_plural, EXCLUDED.msgstr, EXCLUDED.translator,
	EXCLUDED.reference, EXCLUDED.flag)`

const selectSQL = `
SELECT msgctxt, msgid, msgid_plural, msgstr, translator, reference, flag
FROM gettext_messages`

// row is the stored form of a message.
type row struct {
	Hash       string
	Context    string
	ID         string
	Plural     string
	Str        []string
	Translator string
	Reference  string
	Flag       string
}

// Key identifies a message by context and msgid.
func Key(context, id string) string {
	return textutil.Hash(context + "\x04" + id)
}

// rowsFor converts a catalog into rows ordered by reference. The header
// entry is not stored.
func rowsFor(c *catalog.Catalog) []row {
	msgs := c.Messages()
	catalog.Sort(msgs)

	rows := make([]row, 0, len(msgs))
	for _, m := range msgs {
		if m.IsHeader() {
			continue
		}
		str := m.Str
		if str == nil {
			str = []string{}
		}
		rows = append(rows, row{
			Hash:       Key(m.Context, m.ID),
			Context:    m.Context,
			ID:         m.ID,
			Plural:     m.Plural,
			Str:        str,
			Translator: m.Comments.Translator,
			Reference:  m.Comments.Reference,
			Flag:       m.Comments.Flag,
		})
	}
	return rows
}

// Store persists catalogs in PostgreSQL.
type Store struct {
	pool      *pgxpool.Pool
	batchSize int
}

func New(pool *pgxpool.Pool, batchSize int) *Store {
	if batchSize < 1 {
		batchSize = 100
	}
	return &Store{pool: pool, batchSize: batchSize}
}

// EnsureSchema creates the messages table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Upsert writes every message of c. Messages already stored with the same
// values are left untouched. It returns the number of rows changed.
func (s *Store) Upsert(ctx context.Context, c *catalog.Catalog) (int, error) {
	changed := 0

	for _, batch := range worker.Batch(rowsFor(c), s.batchSize) {
		b := &pgx.Batch{}
		for _, r := range batch {
			b.Queue(upsertSQL, r.Hash, r.Context, r.ID, r.Plural, r.Str, r.Translator, r.Reference, r.Flag)
		}

		n, err := s.send(ctx, b)
		changed += n
		if err != nil {
			return changed, err
		}
	}

	log.Info().Int("messages", c.Len()).Int("changed", changed).Msg("Upserted catalog")
	return changed, nil
}

func (s *Store) send(ctx context.Context, b *pgx.Batch) (int, error) {
	results := s.pool.SendBatch(ctx, b)
	defer results.Close()

	changed := 0
	for i := 0; i < b.Len(); i++ {
		tag, err := results.Exec()
		if err != nil {
			return changed, fmt.Errorf("upsert message: %w", err)
		}
		changed += int(tag.RowsAffected())
	}
	return changed, nil
}

// Load reads every stored message into a new catalog.
func (s *Store) Load(ctx context.Context) (*catalog.Catalog, error) {
	rows, err := s.pool.Query(ctx, selectSQL)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	c := catalog.New()
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.Context, &r.ID, &r.Plural, &r.Str, &r.Translator, &r.Reference, &r.Flag); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		c.Put(messageFor(r))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	log.Info().Int("messages", c.Len()).Msg("Loaded catalog")
	return c, nil
}

func messageFor(r row) *catalog.Message {
	str := r.Str
	if len(str) == 0 {
		str = []string{""}
	}
	return &catalog.Message{
		Context: r.Context,
		ID:      r.ID,
		Plural:  r.Plural,
		Str:     str,
		Comments: catalog.Comments{
			Translator: r.Translator,
			Reference:  r.Reference,
			Flag:       r.Flag,
		},
	}
}
