package lexer

import (
	"regexp"
	"strings"
)

var (
	razorSpecialRe   = regexp.MustCompile(`(?s)</?[a-zA-Z][-a-zA-Z0-9]*|<!--.*?-->|@`)
	razorDirectiveRe = anchored(`@[_a-zA-Z][_a-zA-Z0-9]*`)
	razorTagIdentRe  = anchored(`[a-zA-Z][-a-zA-Z0-9]*`)
	openBraceAheadRe = anchored(`\s*\{`)
	openParenAheadRe = anchored(`\s*\(`)
)

// lineDirectives take the rest of the line as their argument.
var lineDirectives = map[string]bool{
	"@attribute":          true,
	"@implements":         true,
	"@inherits":           true,
	"@inject":             true,
	"@layout":             true,
	"@model":              true,
	"@namespace":          true,
	"@page":               true,
	"@preservewhitespace": true,
	"@using":              true,
	"@addTagHelper":       true,
	"@removeTagHelper":    true,
	"@tagHelperPrefix":    true,
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// Razor tokenizes cshtml templates. Code regions introduced by "@" are
// delegated to a C# lexer and surrounded by CodeStart and CodeEnd.
type Razor struct {
	*Buffer
	cursor

	insideTag bool
	child     *frame
}

// NewRazor creates a Razor lexer over text.
func NewRazor(text string) *Razor {
	r := &Razor{cursor: newCursor(text)}
	r.Buffer = NewBuffer(r.scan)
	return r
}

func razorMarkup(text string) Child {
	return NewRazor(text)
}

func razorCode(text string) *Code {
	return NewCode(text, CSharp, WithMarkup(razorMarkup))
}

// Offset returns the number of bytes consumed so far.
func (r *Razor) Offset() int { return r.pos }

// Line returns the current line.
func (r *Razor) Line() int { return r.line }

func (r *Razor) scan() []Token {
	if r.child != nil {
		return r.childToken()
	}

	if r.insideTag {
		r.skipWhitespace()
	}

	if r.eof() {
		return one(Token{Kind: EOF})
	}

	r.syncLine()

	if r.insideTag {
		return r.tagToken()
	}
	return r.textToken()
}

func (r *Razor) textToken() []Token {
	start, end := r.search(razorSpecialRe)

	if start < 0 {
		return one(r.textUntil(len(r.text)))
	}
	if start > r.pos {
		return one(r.textUntil(start))
	}

	value := r.text[start:end]
	if value[0] != '<' {
		return r.razorToken()
	}

	r.pos = end
	if value[1] == '!' {
		return nil
	}
	r.insideTag = true
	return one(r.token(TagStart, value))
}

func (r *Razor) tagToken() []Token {
	if id, ok := r.match(razorTagIdentRe); ok {
		return one(r.token(Identifier, id))
	}
	if n, ok := r.match(tagNumberRe); ok {
		return one(r.token(Number, n))
	}
	if t, ok := r.attributeValue(); ok {
		return one(t)
	}
	if t, ok := r.tagEnd(); ok {
		r.insideTag = false
		return one(t)
	}
	if r.at(0, '@') {
		return r.razorToken()
	}
	return one(r.operator())
}

func (r *Razor) razorToken() []Token {
	literal := Text
	if r.insideTag {
		literal = Operator
	}

	switch {
	case r.at(1, '@'):
		r.pos += 2
		return one(r.token(literal, "@"))
	case r.at(1, '*'):
		if _, ok := r.match(razorCommentRe); ok {
			return nil
		}
	case r.at(1, '{'), r.at(1, '('):
		r.pos++
		return r.enter()
	}

	directive := razorDirectiveRe.FindString(r.text[r.pos:])
	if directive == "" {
		r.pos++
		return one(r.token(literal, "@"))
	}

	switch {
	case directive == "@functions":
		r.pos += len(directive)
		if r.lookingAt(openBraceAheadRe) {
			return r.enter()
		}
		return one(r.token(Directive, directive))
	case directive == "@section":
		r.pos += len(directive)
		return one(r.token(Directive, directive))
	case directive == "@using" && openParenAheadRe.MatchString(r.text[r.pos+len(directive):]):
		r.pos++
		return r.enter()
	case lineDirectives[directive]:
		end := len(r.text)
		if r.nextLF >= 0 {
			end = r.nextLF
		}
		line := r.line
		return one(Token{Kind: Directive, Value: r.advanceTo(end), Line: line})
	}

	r.pos++
	return r.enter()
}

// enter starts a C# region at pos.
func (r *Razor) enter() []Token {
	r.child = &frame{child: razorCode(r.text[r.pos:])}
	return one(r.token(CodeStart, ""))
}

func (r *Razor) childToken() []Token {
	f := r.child
	t := f.child.Next()

	if t.Kind == EOF {
		r.child = nil
		r.pos = len(r.text)
		return one(t)
	}

	t = shift(t, r.line)

	if !f.track(t) {
		r.resume(f.child)
		r.child = nil
		return []Token{t, r.token(CodeEnd, "")}
	}
	return one(t)
}

// NewContext returns a tracker that follows the nesting of tags in a
// markup fragment embedded in code. The fragment ends at the tag end that
// leaves no element open.
func (r *Razor) NewContext(Token) Context {
	return &tagContext{}
}

type tagContext struct {
	stack  []string
	pushed bool
}

func (x *tagContext) Update(t Token) bool {
	switch t.Kind {
	case TagStart:
		x.pushed = false
		if !strings.HasPrefix(t.Value, "</") {
			tag := strings.ToLower(t.Value[1:])
			if !voidElements[tag] {
				x.stack = append(x.stack, tag)
				x.pushed = true
			}
			return true
		}
		tag := strings.ToLower(t.Value[2:])
		for len(x.stack) > 0 {
			last := x.stack[len(x.stack)-1]
			x.stack = x.stack[:len(x.stack)-1]
			if last == tag {
				break
			}
		}
	case TagEnd:
		if t.Value == "/>" && x.pushed {
			x.stack = x.stack[:len(x.stack)-1]
		}
		x.pushed = false
		return len(x.stack) > 0
	}
	return true
}
