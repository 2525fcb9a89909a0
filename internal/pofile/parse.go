package pofile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mimecorg/bc-gettext-utils/internal/catalog"
)

// field is the keyword a continuation line appends to.
type field int

const (
	fieldNone field = iota
	fieldContext
	fieldID
	fieldPlural
	fieldStr
)

type parser struct {
	file *File

	msg     *catalog.Message
	started bool
	field   field
	index   int
}

// Parse reads a PO file. Obsolete entries and previous-msgid comments are
// dropped.
func Parse(r io.Reader) (*File, error) {
	p := &parser{file: New(nil)}
	p.reset()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := p.line(strings.TrimSpace(scanner.Text())); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read PO: %w", err)
	}

	p.flush()
	return p.file, nil
}

func (p *parser) reset() {
	p.msg = &catalog.Message{}
	p.started = false
	p.field = fieldNone
}

// flush stores the pending entry, if it has a msgid line.
func (p *parser) flush() {
	if p.started {
		if p.msg.IsHeader() {
			p.file.Comments = p.msg.Comments.Translator
			p.file.Headers = parseHeaders(strings.Join(p.msg.Str, ""))
		} else {
			p.file.Catalog.Put(p.msg)
		}
	}
	p.reset()
}

func (p *parser) line(s string) error {
	switch {
	case s == "":
		if p.started {
			p.flush()
		}
		return nil

	case strings.HasPrefix(s, "#"):
		if p.started && p.field == fieldStr {
			p.flush()
		}
		p.comment(s)
		return nil

	case strings.HasPrefix(s, `"`):
		value, err := unquote(s)
		if err != nil {
			return err
		}
		return p.appendValue(value)
	}

	keyword, rest, _ := strings.Cut(s, " ")
	value, err := unquote(strings.TrimSpace(rest))
	if err != nil {
		return err
	}

	switch {
	case keyword == "msgctxt":
		if p.started {
			p.flush()
		}
		p.msg.Context = value
		p.field = fieldContext

	case keyword == "msgid":
		if p.started && p.field != fieldContext {
			p.flush()
		}
		p.msg.ID = value
		p.started = true
		p.field = fieldID

	case keyword == "msgid_plural":
		p.msg.Plural = value
		p.field = fieldPlural

	case keyword == "msgstr":
		p.setStr(0, value)

	case strings.HasPrefix(keyword, "msgstr[") && strings.HasSuffix(keyword, "]"):
		n, err := strconv.Atoi(keyword[len("msgstr[") : len(keyword)-1])
		if err != nil || n < 0 {
			return fmt.Errorf("bad plural index %q", keyword)
		}
		p.setStr(n, value)

	default:
		return fmt.Errorf("unknown keyword %q", keyword)
	}
	return nil
}

func (p *parser) setStr(n int, value string) {
	for len(p.msg.Str) <= n {
		p.msg.Str = append(p.msg.Str, "")
	}
	p.msg.Str[n] = value
	p.field = fieldStr
	p.index = n
}

func (p *parser) appendValue(value string) error {
	switch p.field {
	case fieldContext:
		p.msg.Context += value
	case fieldID:
		p.msg.ID += value
	case fieldPlural:
		p.msg.Plural += value
	case fieldStr:
		p.msg.Str[p.index] += value
	default:
		return fmt.Errorf("string without keyword")
	}
	return nil
}

func (p *parser) comment(s string) {
	c := &p.msg.Comments

	switch {
	case strings.HasPrefix(s, "#~"), strings.HasPrefix(s, "#|"):
	case strings.HasPrefix(s, "#."):
		c.Extracted = appendLine(c.Extracted, "\n", strings.TrimSpace(s[2:]))
	case strings.HasPrefix(s, "#:"):
		c.Reference = appendLine(c.Reference, " ", strings.TrimSpace(s[2:]))
	case strings.HasPrefix(s, "#,"):
		c.Flag = appendLine(c.Flag, ", ", strings.TrimSpace(s[2:]))
	default:
		c.Translator = appendLine(c.Translator, "\n", strings.TrimPrefix(strings.TrimPrefix(s, "#"), " "))
	}
}

func appendLine(current, sep, value string) string {
	if current == "" {
		return value
	}
	return current + sep + value
}

// parseHeaders splits the header msgstr into ordered "Name: value" pairs.
func parseHeaders(s string) []Header {
	var headers []Header
	for _, line := range strings.Split(s, "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		headers = append(headers, Header{
			Name:  strings.TrimSpace(name),
			Value: strings.TrimSpace(value),
		})
	}
	return headers
}

// unquote decodes a double quoted PO string.
func unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("expected quoted string, got %q", s)
	}
	s = s[1 : len(s)-1]
	if !strings.Contains(s, `\`) {
		return s, nil
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch != '\\' || i+1 == len(s) {
			b.WriteByte(ch)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}
