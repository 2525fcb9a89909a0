package lexer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// cursor is the scan state shared by all lexers: the input, the byte
// position, the current line and the index of the next line break.
type cursor struct {
	text   string
	pos    int
	line   int
	nextLF int
}

func newCursor(text string) cursor {
	return cursor{
		text:   text,
		line:   1,
		nextLF: strings.IndexByte(text, '\n'),
	}
}

// anchored compiles expr so that it only matches at the start of the input.
func anchored(expr string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + expr + `)`)
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.text)
}

// at reports whether the input at pos+offset is the byte ch.
func (c *cursor) at(offset int, ch byte) bool {
	i := c.pos + offset
	return i < len(c.text) && c.text[i] == ch
}

func (c *cursor) startsWith(prefix string) bool {
	return strings.HasPrefix(c.text[c.pos:], prefix)
}

// syncLine advances the line counter past every line break before pos.
func (c *cursor) syncLine() {
	for c.nextLF >= 0 && c.pos > c.nextLF {
		c.line++
		c.nextLF = c.indexLF(c.nextLF + 1)
	}
}

// reindex recomputes nextLF after pos was moved forward externally.
func (c *cursor) reindex() {
	c.nextLF = c.indexLF(c.pos)
}

func (c *cursor) indexLF(from int) int {
	if from >= len(c.text) {
		return -1
	}
	i := strings.IndexByte(c.text[from:], '\n')
	if i < 0 {
		return -1
	}
	return from + i
}

// exec matches an anchored expression at pos and advances past the match.
func (c *cursor) exec(re *regexp.Regexp) []string {
	m := re.FindStringSubmatch(c.text[c.pos:])
	if m == nil {
		return nil
	}
	c.pos += len(m[0])
	return m
}

// match is exec returning only the matched text.
func (c *cursor) match(re *regexp.Regexp) (string, bool) {
	m := c.exec(re)
	if m == nil {
		return "", false
	}
	return m[0], true
}

// lookingAt tests an anchored expression at pos without advancing.
func (c *cursor) lookingAt(re *regexp.Regexp) bool {
	return re.MatchString(c.text[c.pos:])
}

// search finds the first match of an unanchored expression at or after pos.
// It returns absolute offsets, or -1 when there is no match.
func (c *cursor) search(re *regexp.Regexp) (start, end int) {
	loc := re.FindStringIndex(c.text[c.pos:])
	if loc == nil {
		return -1, -1
	}
	return c.pos + loc[0], c.pos + loc[1]
}

// skipWhitespace advances pos past any white space.
func (c *cursor) skipWhitespace() {
	for c.pos < len(c.text) {
		switch c.text[c.pos] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			c.pos++
		default:
			return
		}
	}
}

// advanceTo moves pos to end and returns the skipped text.
func (c *cursor) advanceTo(end int) string {
	value := c.text[c.pos:end]
	c.pos = end
	return value
}

func (c *cursor) token(kind Kind, value string) Token {
	return Token{Kind: kind, Value: value, Line: c.line}
}

func (c *cursor) str(delimiter, value string) Token {
	return Token{Kind: String, Value: value, Delimiter: delimiter, Line: c.line}
}

// operator emits the rune at pos as a single-character operator.
func (c *cursor) operator() Token {
	_, size := utf8.DecodeRuneInString(c.text[c.pos:])
	start := c.pos
	c.pos += size
	return c.token(Operator, c.text[start:c.pos])
}

func one(t Token) []Token {
	return []Token{t}
}
