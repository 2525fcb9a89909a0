package lexer

import "strings"

// Language selects the dialect recognized by the code lexer.
type Language int

const (
	JavaScript Language = iota
	CSharp
	PHP
)

func (l Language) String() string {
	switch l {
	case JavaScript:
		return "JavaScript"
	case CSharp:
		return "C#"
	case PHP:
		return "PHP"
	}
	return "Unknown"
}

var (
	codeIdentRe     = anchored(`[_a-zA-Z][_a-zA-Z0-9]*`)
	codeNumberRe    = anchored(`[0-9][_0-9]*`)
	blockCommentRe  = anchored(`(?s)/\*.*?\*/`)
	lineCommentRe   = anchored(`//.*`)
	singleQuotedRe  = anchored(`'(?:[^'\\]|\\.)*'`)
	doubleQuotedRe  = anchored(`"(?:[^"\\]|\\.)*"`)
	verbatimRe      = anchored(`(?s)@"(?:[^"]|"")*"`)
	templateRe      = anchored("(?s)`(?:[^`\\\\]|\\\\.)*`")
	regExpLiteralRe = anchored(`/(?:[^/\\]|\\.)+/[a-z]*`)
	markupTagRe     = anchored(`(?s)<[a-zA-Z]|<!--.*?-->`)
	razorCommentRe  = anchored(`(?s)@\*.*?\*@`)
	memberAheadRe   = anchored(`\.[_a-zA-Z]`)
	elseAheadRe     = anchored(`\s*else\b`)
	whileAheadRe    = anchored(`\s*while\b`)
	catchFinallyRe  = anchored(`\s*(?:catch|finally)\b`)
)

// CodeOption configures a Code lexer.
type CodeOption func(*Code)

// WithMarkup lets the lexer hand over to a markup lexer when a tag or a
// "@:" line appears at the start of a statement.
func WithMarkup(factory MarkupFactory) CodeOption {
	return func(c *Code) {
		c.markup = factory
	}
}

// Code tokenizes JavaScript, C# and PHP source.
type Code struct {
	*Buffer
	cursor

	lang   Language
	markup MarkupFactory
	child  *frame
}

// NewCode creates a code lexer over text.
func NewCode(text string, lang Language, opts ...CodeOption) *Code {
	c := &Code{
		cursor: newCursor(text),
		lang:   lang,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Buffer = NewBuffer(c.scan)
	return c
}

// Offset returns the number of bytes consumed so far.
func (c *Code) Offset() int { return c.pos }

// Line returns the current line.
func (c *Code) Line() int { return c.line }

func (c *Code) scan() []Token {
	if c.child != nil {
		return c.childToken()
	}

	c.skipWhitespace()

	if c.eof() {
		return one(Token{Kind: EOF})
	}

	c.syncLine()

	if id, ok := c.match(codeIdentRe); ok {
		return one(c.token(Identifier, id))
	}
	if n, ok := c.match(codeNumberRe); ok {
		return one(c.token(Number, n))
	}

	if c.at(0, '/') {
		if _, ok := c.match(blockCommentRe); ok {
			return nil
		}
		if _, ok := c.match(lineCommentRe); ok {
			return nil
		}
		if c.lang == JavaScript && !c.afterOperand() {
			if re, ok := c.match(regExpLiteralRe); ok {
				return one(c.token(RegExp, re))
			}
		}
	}

	if t, ok := c.scanString(); ok {
		return one(t)
	}

	switch c.lang {
	case JavaScript:
		if c.startsWith("</") {
			c.pos += 2
			return one(c.token(Operator, "</"))
		}
	case PHP:
		if c.startsWith("?>") {
			c.pos += 2
			return one(c.token(CodeEnd, ""))
		}
		if c.at(0, '.') {
			c.pos++
			return one(c.token(Operator, "+"))
		}
	}

	if (c.lang == JavaScript || c.lang == PHP) && c.at(0, '$') {
		c.pos++
		if id, ok := c.match(codeIdentRe); ok {
			return one(c.token(Identifier, "$"+id))
		}
		return one(c.token(Operator, "$"))
	}

	if c.markup != nil {
		if t, ok := c.scanMarkup(); ok {
			return t
		}
	}

	return one(c.operator())
}

func (c *Code) scanString() (Token, bool) {
	switch {
	case c.at(0, '\''):
		if s, ok := c.match(singleQuotedRe); ok {
			return c.str("'", unescape(s[1:len(s)-1])), true
		}
	case c.at(0, '"'):
		if s, ok := c.match(doubleQuotedRe); ok {
			return c.str(`"`, unescape(s[1:len(s)-1])), true
		}
	case c.lang == CSharp && c.at(0, '@'):
		if s, ok := c.match(verbatimRe); ok {
			return c.str(`@"`, strings.ReplaceAll(s[2:len(s)-1], `""`, `"`)), true
		}
	case c.lang == JavaScript && c.at(0, '`'):
		// Template literals are kept raw; substitutions are not evaluated.
		if s, ok := c.match(templateRe); ok {
			return c.str("`", s[1:len(s)-1]), true
		}
	}
	return Token{}, false
}

// scanMarkup handles the transitions from C# code back into markup.
// A nil token slice with ok set means a skipped comment.
func (c *Code) scanMarkup() ([]Token, bool) {
	if (c.at(0, '<') || c.startsWith("@:")) && c.afterStatement() {
		if c.at(0, '<') {
			if m := markupTagRe.FindString(c.text[c.pos:]); m != "" {
				if m[1] == '!' {
					c.pos += len(m)
					return nil, true
				}
				c.child = &frame{child: c.markup(c.text[c.pos:])}
				return one(c.token(CodeEnd, "")), true
			}
		} else {
			c.pos += 2
			end := len(c.text)
			if c.nextLF >= 0 {
				end = c.nextLF + 1
			}
			c.child = &frame{child: c.markup(c.text[c.pos:end]), lineMode: true}
			return one(c.token(CodeEnd, "")), true
		}
	}

	if c.startsWith("@*") {
		if _, ok := c.match(razorCommentRe); ok {
			return nil, true
		}
	}
	return nil, false
}

// afterOperand reports whether a slash at this point is a division.
func (c *Code) afterOperand() bool {
	last, ok := c.Last()
	if !ok {
		return false
	}
	switch last.Kind {
	case Identifier, Number:
		return true
	case Operator:
		switch last.Value {
		case ")", "]", "}", ".":
			return true
		}
	}
	return false
}

// afterStatement reports whether markup may start at this point.
func (c *Code) afterStatement() bool {
	last, ok := c.Last()
	if !ok {
		return false
	}
	if last.Kind == CodeStart {
		return true
	}
	return last.Kind == Operator && (last.Value == "{" || last.Value == "}" || last.Value == ";")
}

func (c *Code) childToken() []Token {
	f := c.child
	t := f.child.Next()

	if t.Kind == EOF {
		c.child = nil
		if f.lineMode && c.nextLF >= 0 {
			c.pos = c.nextLF + 1
			return one(c.token(CodeStart, ""))
		}
		c.pos = len(c.text)
		return one(t)
	}

	t = shift(t, c.line)

	if !f.lineMode && !f.track(t) {
		c.resume(f.child)
		c.child = nil
		return []Token{t, c.token(CodeStart, "")}
	}
	return one(t)
}

// NewContext returns a statement-boundary tracker for a region of code
// starting with start.
func (c *Code) NewContext(start Token) Context {
	return &codeContext{lexer: c, start: start, first: true}
}

type codeContext struct {
	lexer *Code
	start Token
	first bool

	parens   int
	braces   int
	brackets int
}

func (x *codeContext) Update(t Token) bool {
	first := x.first
	x.first = false

	if t.Kind == Operator {
		switch t.Value {
		case "(":
			x.parens++
		case "{":
			x.braces++
		case "[":
			x.brackets++
		case ")":
			x.parens--
			if x.parens == 0 && x.start.IsOperator("(") {
				return false
			}
		case "}":
			x.braces--
			if x.braces == 0 && x.start.IsOperator("{") {
				return false
			}
		case "]":
			x.brackets--
		}
	}

	if x.start.Kind != Identifier {
		return true
	}

	keyword := x.start.Value
	if keyword == "await" && first {
		return true
	}
	if x.parens > 0 || x.brackets > 0 || x.braces > 0 {
		return true
	}

	l := x.lexer
	terminator := t.IsOperator(";") || t.IsOperator("}")

	switch keyword {
	case "if":
		if terminator {
			return l.lookingAt(elseAheadRe)
		}
		return true
	case "switch":
		return !t.IsOperator("}")
	case "for", "foreach", "while", "using", "lock":
		return !terminator
	case "do":
		if t.IsOperator(";") {
			return l.lookingAt(whileAheadRe)
		}
		return true
	case "try":
		if t.IsOperator("}") {
			return l.lookingAt(catchFinallyRe)
		}
		return true
	}

	// Member access and call chains: Model.Items[0].Name(...)
	if t.Kind == Identifier || t.IsOperator(")") || t.IsOperator("]") || t.IsOperator("}") {
		if l.at(0, '.') {
			return l.lookingAt(memberAheadRe)
		}
		return l.at(0, '(') || l.at(0, '[') || l.at(0, '{')
	}
	return true
}

// unescape decodes backslash escapes in a quoted string body. \t, \r and
// \n are translated; any other escaped character stands for itself.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch != '\\' || i+1 >= len(s) || s[i+1] == '\n' || s[i+1] == '\r' {
			b.WriteByte(ch)
			continue
		}
		i++
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
