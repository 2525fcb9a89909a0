package extract

import (
	"strings"

	"github.com/mimecorg/bc-gettext-utils/internal/lexer"
)

// CodeExtractor finds translation calls such as _( "text" ) in a code token stream.
type CodeExtractor struct {
	lexer      lexer.Lexer
	opts       CodeOptions
	insideCode bool
	pending    []*Record
}

// NewCode creates a call grammar over l.
func NewCode(l lexer.Lexer, opts CodeOptions) *CodeExtractor {
	return &CodeExtractor{
		lexer:      l,
		opts:       opts,
		insideCode: opts.InsideCode,
	}
}

func (c *CodeExtractor) Next() *Record {
	for {
		if len(c.pending) > 0 {
			r := c.pending[0]
			c.pending = c.pending[1:]
			return r
		}

		t := c.lexer.Next()

		switch t.Kind {
		case lexer.EOF:
			return nil
		case lexer.CodeStart:
			c.insideCode = true
		case lexer.CodeEnd:
			c.insideCode = false
		case lexer.Identifier:
			if c.insideCode {
				if r := c.call(t); r != nil {
					return r
				}
			}
		case lexer.Operator:
			if c.insideCode && c.opts.Attributes && t.Value == "[" {
				c.pending = c.attributes()
			}
		}
	}
}

func (c *CodeExtractor) call(t lexer.Token) *Record {
	k := c.opts.Keywords

	switch t.Value {
	case k.Text:
		if args, ok := c.arguments(1); ok {
			return &Record{Line: t.Line, ID: args[0]}
		}
	case k.ContextText:
		if args, ok := c.arguments(2); ok {
			return &Record{Line: t.Line, Context: args[0], ID: args[1]}
		}
	case k.Plural:
		if args, ok := c.arguments(2); ok {
			return &Record{Line: t.Line, ID: args[0], Plural: args[1]}
		}
	case k.ContextPlural:
		if k.ReverseContext {
			return c.reverseContextPlural(t)
		}
		if args, ok := c.arguments(3); ok {
			return &Record{Line: t.Line, Context: args[0], ID: args[1], Plural: args[2]}
		}
	}
	return nil
}

// arguments consumes count string arguments of a call, starting with the
// opening parenthesis. Tokens read before a mismatch stay consumed.
func (c *CodeExtractor) arguments(count int) ([]string, bool) {
	args := make([]string, 0, count)
	sep := "("

	for range count {
		if !c.lexer.Peek(0).IsOperator(sep) {
			return nil, false
		}
		c.lexer.Skip(1)

		arg, ok := c.argument()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		sep = ","
	}
	return args, true
}

func (c *CodeExtractor) argument() (string, bool) {
	s, n := c.peekString(0)
	if n == 0 {
		return "", false
	}
	c.lexer.Skip(n)
	return s, true
}

// peekString reads a string concatenation starting at lookahead offset i.
// It returns the folded value and the number of tokens it spans, or zero
// when the tokens do not form one.
func (c *CodeExtractor) peekString(i int) (string, int) {
	var b strings.Builder
	n := 0

	for {
		t := c.lexer.Peek(i + n)
		if t.Kind != lexer.String {
			return "", 0
		}
		b.WriteString(t.Value)
		n++

		if !c.lexer.Peek(i + n).IsOperator("+") {
			return b.String(), n
		}
		n++
	}
}

// reverseContextPlural reads _pn( text, plural, count, context ).
func (c *CodeExtractor) reverseContextPlural(t lexer.Token) *Record {
	args, ok := c.arguments(2)
	if !ok {
		return nil
	}

	if !c.lexer.Peek(0).IsOperator(",") {
		return nil
	}
	c.lexer.Skip(1)

	if !c.skipArgument() {
		return nil
	}
	c.lexer.Skip(1)

	ctx, ok := c.argument()
	if !ok {
		return nil
	}
	return &Record{Line: t.Line, Context: ctx, ID: args[0], Plural: args[1]}
}

// skipArgument consumes an arbitrary expression up to the next top level
// comma, which is left in place. It fails on an unmatched closing bracket
// or at the end of input.
func (c *CodeExtractor) skipArgument() bool {
	depth := 0
	for {
		t := c.lexer.Peek(0)
		if t.Kind == lexer.EOF {
			return false
		}
		if t.Kind == lexer.Operator {
			switch t.Value {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				if depth == 0 {
					return false
				}
				depth--
			case ",":
				if depth == 0 {
					return true
				}
			}
		}
		c.lexer.Skip(1)
	}
}

// attributes scans the attribute list following "[" without consuming any
// tokens. Display attributes yield every string property, other attributes
// only their error message.
func (c *CodeExtractor) attributes() []*Record {
	var records []*Record
	i := 0

	for {
		name, n := c.attributeName(i)
		if n == 0 {
			return records
		}
		i += n

		if c.lexer.Peek(i).IsOperator("(") {
			var ok bool
			records, i, ok = c.properties(i+1, c.isDisplay(name), records)
			if !ok {
				return records
			}
		}

		if !c.lexer.Peek(i).IsOperator(",") {
			return records
		}
		i++
	}
}

// attributeName reads an optionally qualified attribute name at offset i,
// skipping a target specifier such as "return:". It returns the last
// identifier and the number of tokens read.
func (c *CodeExtractor) attributeName(i int) (string, int) {
	start := i
	t := c.lexer.Peek(i)
	if t.Kind != lexer.Identifier {
		return "", 0
	}
	if c.lexer.Peek(i+1).IsOperator(":") && c.lexer.Peek(i+2).Kind == lexer.Identifier {
		i += 2
		t = c.lexer.Peek(i)
	}
	for c.lexer.Peek(i+1).IsOperator(".") && c.lexer.Peek(i+2).Kind == lexer.Identifier {
		i += 2
		t = c.lexer.Peek(i)
	}
	return t.Value, i + 1 - start
}

func (c *CodeExtractor) isDisplay(name string) bool {
	for _, d := range c.opts.DisplayAttributes {
		if name == d || name == d+"Attribute" {
			return true
		}
	}
	return false
}

// properties walks an attribute argument list from offset i, just past the
// opening parenthesis, and collects name = "value" properties at the top
// level. It returns the offset after the closing parenthesis.
func (c *CodeExtractor) properties(i int, display bool, records []*Record) ([]*Record, int, bool) {
	depth := 1

	for {
		t := c.lexer.Peek(i)

		switch {
		case t.Kind == lexer.EOF:
			return records, i, false

		case t.IsOperator("("):
			depth++

		case t.IsOperator(")"):
			depth--
			if depth == 0 {
				return records, i + 1, true
			}

		case depth == 1 && t.Kind == lexer.Identifier && c.lexer.Peek(i+1).IsOperator("="):
			value, n := c.peekString(i + 2)
			if n > 0 && (display || t.Value == c.opts.ErrorMessageProperty) {
				records = append(records, &Record{Line: t.Line, ID: value})
			}
			i += 1 + n
		}
		i++
	}
}
