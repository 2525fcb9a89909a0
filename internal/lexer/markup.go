package lexer

var (
	tagNumberRe       = anchored(`[0-9]+`)
	tagSingleQuotedRe = anchored(`(?s)'.*?'`)
	tagDoubleQuotedRe = anchored(`(?s)".*?"`)
)

// tagEnd scans ">" or "/>".
func (c *cursor) tagEnd() (Token, bool) {
	if c.at(0, '>') {
		c.pos++
		return c.token(TagEnd, ">"), true
	}
	if c.startsWith("/>") {
		c.pos += 2
		return c.token(TagEnd, "/>"), true
	}
	return Token{}, false
}

// attributeValue scans a quoted attribute value. Markup values are taken
// verbatim, without escape processing.
func (c *cursor) attributeValue() (Token, bool) {
	switch {
	case c.at(0, '\''):
		if s, ok := c.match(tagSingleQuotedRe); ok {
			return c.str("'", s[1:len(s)-1]), true
		}
	case c.at(0, '"'):
		if s, ok := c.match(tagDoubleQuotedRe); ok {
			return c.str(`"`, s[1:len(s)-1]), true
		}
	}
	return Token{}, false
}

// textUntil emits the text between pos and end as a Text token.
func (c *cursor) textUntil(end int) Token {
	line := c.line
	return Token{Kind: Text, Value: c.advanceTo(end), Line: line}
}
