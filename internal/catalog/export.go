package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// entry is the flat JSON form of a message.
type entry struct {
	Context    string   `json:"msgctxt,omitempty"`
	ID         string   `json:"msgid"`
	Plural     string   `json:"msgid_plural,omitempty"`
	Str        []string `json:"msgstr"`
	References []string `json:"references,omitempty"`
	Flag       string   `json:"flag,omitempty"`
}

func entries(c *Catalog) []entry {
	msgs := c.Messages()
	Sort(msgs)

	out := make([]entry, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, entry{
			Context:    m.Context,
			ID:         m.ID,
			Plural:     m.Plural,
			Str:        m.Str,
			References: m.References(),
			Flag:       m.Comments.Flag,
		})
	}
	return out
}

// WriteJSON writes the catalog as a JSON array in reference order.
func WriteJSON(w io.Writer, c *Catalog) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(entries(c)); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// WriteTSV writes one line per message: context, msgid, plural, the
// translated values joined by " | " and the references.
func WriteTSV(w io.Writer, c *Catalog) error {
	if _, err := fmt.Fprintln(w, "msgctxt\tmsgid\tmsgid_plural\tmsgstr\treferences"); err != nil {
		return fmt.Errorf("write TSV header: %w", err)
	}

	for _, e := range entries(c) {
		strs := make([]string, len(e.Str))
		for i, s := range e.Str {
			strs[i] = escapeTSV(s)
		}
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			escapeTSV(e.Context),
			escapeTSV(e.ID),
			escapeTSV(e.Plural),
			strings.Join(strs, " | "),
			strings.Join(e.References, " "),
		)
		if err != nil {
			return fmt.Errorf("write TSV row: %w", err)
		}
	}
	return nil
}

// ExportJSON writes the catalog to a JSON file.
func ExportJSON(c *Catalog, outputPath string) error {
	if err := exportFile(outputPath, c, WriteJSON); err != nil {
		return err
	}
	log.Info().Str("path", outputPath).Int("entries", c.Len()).Msg("Exported catalog to JSON")
	return nil
}

// ExportTSV writes the catalog to a TSV file.
func ExportTSV(c *Catalog, outputPath string) error {
	if err := exportFile(outputPath, c, WriteTSV); err != nil {
		return err
	}
	log.Info().Str("path", outputPath).Int("entries", c.Len()).Msg("Exported catalog to TSV")
	return nil
}

func exportFile(outputPath string, c *Catalog, write func(io.Writer, *Catalog) error) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outputPath, err)
	}
	defer f.Close()

	return write(f, c)
}

// escapeTSV replaces tabs and newlines in a string for TSV safety.
func escapeTSV(s string) string {
	s = strings.ReplaceAll(s, "\t", "\\t")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	return s
}
