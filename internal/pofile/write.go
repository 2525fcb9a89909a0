package pofile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mimecorg/bc-gettext-utils/internal/catalog"
)

// WriteTo writes the header entry followed by the messages in reference
// order.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}

	header := &catalog.Message{
		Str:      []string{formatHeaders(f.Headers)},
		Comments: catalog.Comments{Translator: f.Comments},
	}
	writeMessage(cw, header)

	msgs := f.Catalog.Messages()
	catalog.Sort(msgs)
	for _, m := range msgs {
		cw.WriteString("\n")
		writeMessage(cw, m)
	}

	if cw.err == nil {
		cw.err = cw.w.Flush()
	}
	return cw.n, cw.err
}

// countingWriter remembers the first error so the writer code can ignore
// errors until the end.
type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) WriteString(s string) {
	if c.err != nil {
		return
	}
	n, err := c.w.WriteString(s)
	c.n += int64(n)
	c.err = err
}

func formatHeaders(headers []Header) string {
	var b strings.Builder
	for _, h := range headers {
		fmt.Fprintf(&b, "%s: %s\n", h.Name, h.Value)
	}
	return b.String()
}

func writeMessage(w *countingWriter, m *catalog.Message) {
	c := m.Comments

	writeComment(w, "# ", c.Translator, "\n")
	writeComment(w, "#. ", c.Extracted, "\n")
	if c.Reference != "" {
		w.WriteString("#: " + c.Reference + "\n")
	}
	if c.Flag != "" {
		w.WriteString("#, " + c.Flag + "\n")
	}

	if m.Context != "" {
		writeString(w, "msgctxt", m.Context)
	}
	writeString(w, "msgid", m.ID)

	if m.Plural == "" {
		str := ""
		if len(m.Str) > 0 {
			str = m.Str[0]
		}
		writeString(w, "msgstr", str)
		return
	}

	writeString(w, "msgid_plural", m.Plural)
	strs := m.Str
	if len(strs) == 0 {
		strs = []string{""}
	}
	for i, s := range strs {
		writeString(w, fmt.Sprintf("msgstr[%d]", i), s)
	}
}

func writeComment(w *countingWriter, prefix, text, sep string) {
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, sep) {
		w.WriteString(strings.TrimRight(prefix+line, " ") + "\n")
	}
}

// writeString writes a keyword and its quoted value. Values containing
// inner line breaks are split after each break, starting with an empty
// first line.
func writeString(w *countingWriter, keyword, value string) {
	lines := splitLines(value)
	if len(lines) == 1 {
		w.WriteString(keyword + " " + quote(value) + "\n")
		return
	}

	w.WriteString(keyword + " \"\"\n")
	for _, line := range lines {
		w.WriteString(quote(line) + "\n")
	}
}

func splitLines(s string) []string {
	var lines []string
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 || i == len(s)-1 {
			return append(lines, s)
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
}

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

func quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}
