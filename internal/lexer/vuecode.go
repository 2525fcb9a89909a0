package lexer

import "strings"

// expressionDirectives are attributes whose value is a JavaScript expression.
var expressionDirectives = map[string]bool{
	"v-bind":    true,
	"v-if":      true,
	"v-else-if": true,
	"v-show":    true,
	"v-model":   true,
	"v-html":    true,
	"v-text":    true,
	"v-for":     true,
}

func isExpressionAttribute(name string) bool {
	switch {
	case strings.HasPrefix(name, ":"), strings.HasPrefix(name, "@"):
		return true
	case strings.HasPrefix(name, "v-bind:"), strings.HasPrefix(name, "v-on:"):
		return true
	}
	return expressionDirectives[name]
}

// VueCode exposes only the JavaScript embedded in a component: the script
// block, interpolations and expression attributes. Each region is wrapped in
// CodeStart and CodeEnd.
type VueCode struct {
	*Buffer

	markup *Vue
	child  *Code
	base   int
}

// NewVueCode creates a lexer over the code regions of a component file.
func NewVueCode(text string) *VueCode {
	v := &VueCode{markup: NewVue(text)}
	v.Buffer = NewBuffer(v.scan)
	return v
}

func (v *VueCode) scan() []Token {
	if v.child != nil {
		return v.childToken()
	}

	for {
		t := v.markup.Next()

		switch t.Kind {
		case EOF:
			return one(t)

		case TagStart:
			if strings.EqualFold(t.Value, "<script") {
				if body, ok := v.scriptBody(); ok {
					return v.enter(body)
				}
			}

		case Interpolation:
			return v.enter(t)

		case Identifier:
			if !isExpressionAttribute(t.Value) {
				continue
			}
			n := 0
			for v.markup.Peek(n).IsOperator(".") && v.markup.Peek(n+1).Kind == Identifier {
				n += 2
			}
			if v.markup.Peek(n).IsOperator("=") && v.markup.Peek(n+1).Kind == String {
				value := v.markup.Peek(n + 1)
				v.markup.Skip(n + 2)
				return v.enter(value)
			}
		}
	}
}

// scriptBody skips the attributes of a script tag and returns its content.
func (v *VueCode) scriptBody() (Token, bool) {
	for {
		t := v.markup.Peek(0)
		switch t.Kind {
		case EOF:
			return Token{}, false
		case TagEnd:
			body := v.markup.Peek(1)
			if body.Kind != Text {
				return Token{}, false
			}
			v.markup.Skip(2)
			return body, true
		}
		v.markup.Skip(1)
	}
}

// enter starts a JavaScript region over the value of t.
func (v *VueCode) enter(t Token) []Token {
	v.child = NewCode(t.Value, JavaScript)
	v.base = t.Line
	return one(Token{Kind: CodeStart, Line: t.Line})
}

func (v *VueCode) childToken() []Token {
	t := v.child.Next()
	if t.Kind == EOF {
		end := shift(Token{Kind: CodeEnd, Line: v.child.Line()}, v.base)
		v.child = nil
		return one(end)
	}
	return one(shift(t, v.base))
}
