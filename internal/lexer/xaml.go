package lexer

import (
	"regexp"
	"strings"
)

var (
	xamlTagRe            = regexp.MustCompile(`(?si)</?(?:[a-z][-a-z0-9]*:)?(?:[a-z][-a-z0-9]*\.)?[a-z][-a-z0-9]*|<!--.*?-->`)
	xamlIdentRe          = anchored(`(?i)(?:[a-z][-a-z0-9]*:)?[a-z][-a-z0-9]*`)
	extensionStartRe     = anchored(`(?i)\{\s*((?:[a-z][-a-z0-9]*:)?[a-z][-a-z0-9]*)`)
	extensionArgNameRe   = anchored(`(?i)((?:[a-z][-a-z0-9]*:)?[a-z][-a-z0-9]*)\s*=`)
	extensionArgStringRe = anchored(`[^,={}'"\s]+(?:\s+[^,={}'"\s]+)*`)
)

// XAML tokenizes XAML documents, including markup extensions such as
// {Binding Path=Name} inside attribute values.
type XAML struct {
	*Buffer
	cursor

	insideTag       bool
	insideExtension bool
	inSingleQuotes  bool
	inDoubleQuotes  bool
}

// NewXAML creates a XAML lexer over text.
func NewXAML(text string) *XAML {
	x := &XAML{cursor: newCursor(text)}
	x.Buffer = NewBuffer(x.scan)
	return x
}

func (x *XAML) scan() []Token {
	if x.insideTag || x.insideExtension {
		x.skipWhitespace()
	}

	if x.eof() {
		return one(Token{Kind: EOF})
	}

	x.syncLine()

	switch {
	case x.insideExtension:
		return x.extensionToken()
	case x.insideTag:
		return one(x.tagToken())
	}
	return x.textToken()
}

func (x *XAML) textToken() []Token {
	start, end := x.search(xamlTagRe)

	if start < 0 {
		return x.significantText(len(x.text))
	}
	if start > x.pos {
		return x.significantText(start)
	}

	value := x.text[start:end]
	x.pos = end
	if value[1] == '!' {
		return nil
	}
	x.insideTag = true
	return one(x.token(TagStart, value))
}

// significantText emits text up to end unless it is only white space.
func (x *XAML) significantText(end int) []Token {
	t := x.textUntil(end)
	if strings.TrimSpace(t.Value) == "" {
		return nil
	}
	return one(t)
}

func (x *XAML) tagToken() Token {
	if id, ok := x.match(xamlIdentRe); ok {
		return x.token(Identifier, id)
	}
	if t, ok := x.quotedValue(); ok {
		return t
	}
	if t, ok := x.tagEnd(); ok {
		x.insideTag = false
		return t
	}
	return x.operator()
}

// quotedValue scans a quoted string that is either a literal value or the
// start of a markup extension.
func (x *XAML) quotedValue() (Token, bool) {
	var re *regexp.Regexp
	var flag *bool
	switch {
	case x.at(0, '\''):
		re, flag = tagSingleQuotedRe, &x.inSingleQuotes
	case x.at(0, '"'):
		re, flag = tagDoubleQuotedRe, &x.inDoubleQuotes
	default:
		return Token{}, false
	}

	s := re.FindString(x.text[x.pos:])
	if s == "" {
		return Token{}, false
	}
	end := x.pos + len(s)

	x.pos++
	if m := x.exec(extensionStartRe); m != nil {
		x.insideExtension = true
		*flag = true
		return x.token(ExtensionStart, m[1]), true
	}

	x.pos = end
	return x.str(s[:1], unquoteXAML(s)), true
}

func (x *XAML) extensionToken() []Token {
	switch {
	case x.at(0, '{'):
		if m := x.exec(extensionStartRe); m != nil {
			return one(x.token(ExtensionStart, m[1]))
		}
	case x.at(0, '}'):
		x.pos++
		return one(x.token(ExtensionEnd, ""))
	case x.at(0, '\'') && x.inSingleQuotes:
		x.pos++
		x.inSingleQuotes = false
		x.insideExtension = x.inDoubleQuotes
		return nil
	case x.at(0, '"') && x.inDoubleQuotes:
		x.pos++
		x.inDoubleQuotes = false
		x.insideExtension = x.inSingleQuotes
		return nil
	}

	if t, ok := x.quotedValue(); ok {
		return one(t)
	}

	if m := extensionArgNameRe.FindStringSubmatch(x.text[x.pos:]); m != nil {
		x.pos += len(m[1])
		return one(x.token(Identifier, m[1]))
	}
	if s, ok := x.match(extensionArgStringRe); ok {
		return one(x.str("", s))
	}
	return one(x.operator())
}

// unquoteXAML strips the quotes and the "{}" escape prefix of a literal
// attribute value.
func unquoteXAML(s string) string {
	return strings.TrimPrefix(s[1:len(s)-1], "{}")
}
