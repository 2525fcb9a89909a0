package extract

import (
	"slices"
	"strings"

	"github.com/mimecorg/bc-gettext-utils/internal/lexer"
)

// XAMLExtractor finds translation markup extensions such as {i18n:Translate Hello}
// and translation elements such as <i18n:Translate>Hello</i18n:Translate>.
type XAMLExtractor struct {
	lexer lexer.Lexer
	opts  XAMLOptions
}

// NewXAML creates a markup extension grammar over l.
func NewXAML(l lexer.Lexer, opts XAMLOptions) *XAMLExtractor {
	return &XAMLExtractor{lexer: l, opts: opts}
}

func (x *XAMLExtractor) Next() *Record {
	for {
		t := x.lexer.Next()

		switch t.Kind {
		case lexer.EOF:
			return nil

		case lexer.ExtensionStart:
			if slices.Contains(x.opts.Extensions, t.Value) {
				if r := x.fromExtension(); r != nil {
					r.Line = t.Line
					return r
				}
			}

		case lexer.TagStart:
			name := t.Value[1:]
			if slices.Contains(x.opts.Extensions, name) {
				if r := x.fromTag(name); r != nil {
					r.Line = t.Line
					return r
				}
			}
		}
	}
}

// fields collects the named values of one translation.
type fields struct {
	text, plural, context *string
}

func (f *fields) set(x *XAMLExtractor, name, value string) {
	var target **string
	switch name {
	case x.opts.TextAttribute:
		target = &f.text
	case x.opts.PluralTextAttribute:
		target = &f.plural
	case x.opts.ContextAttribute:
		target = &f.context
	default:
		return
	}
	if *target == nil {
		*target = &value
	}
}

func (f *fields) record() *Record {
	if f.text == nil {
		return nil
	}
	r := &Record{ID: *f.text}
	if f.plural != nil {
		r.Plural = *f.plural
	}
	if f.context != nil {
		r.Context = *f.context
	}
	return r
}

func isArgumentEnd(t lexer.Token) bool {
	return t.Kind == lexer.ExtensionEnd || t.IsOperator(",")
}

// fromExtension reads an optional positional text followed by Name=value
// arguments up to the closing brace.
func (x *XAMLExtractor) fromExtension() *Record {
	var f fields

	t := x.lexer.Peek(0)
	if t.Kind == lexer.String {
		t2 := x.lexer.Peek(1)
		if !isArgumentEnd(t2) {
			return nil
		}
		x.lexer.Skip(2)
		text := t.Value
		f.text = &text
		if t2.Kind == lexer.ExtensionEnd {
			return f.record()
		}
		t = x.lexer.Peek(0)
	}

	for t.Kind == lexer.Identifier {
		t2, t3, t4 := x.lexer.Peek(1), x.lexer.Peek(2), x.lexer.Peek(3)
		if !t2.IsOperator("=") || t3.Kind != lexer.String || !isArgumentEnd(t4) {
			return nil
		}
		x.lexer.Skip(4)
		f.set(x, t.Value, t3.Value)

		if t4.Kind == lexer.ExtensionEnd {
			return f.record()
		}
		t = x.lexer.Peek(0)
	}
	return nil
}

// fromTag reads the attributes of a translation element, then its text
// content and property elements up to the closing tag.
func (x *XAMLExtractor) fromTag(name string) *Record {
	var f fields

attributes:
	for {
		t := x.lexer.Peek(0)

		switch {
		case t.Kind == lexer.Identifier:
			t2, t3 := x.lexer.Peek(1), x.lexer.Peek(2)
			if !t2.IsOperator("=") || t3.Kind != lexer.String {
				return nil
			}
			x.lexer.Skip(3)
			f.set(x, t.Value, t3.Value)

		case t.Kind == lexer.TagEnd:
			x.lexer.Skip(1)
			if t.Value == "/>" {
				return f.record()
			}
			break attributes

		default:
			return nil
		}
	}

	for {
		t := x.lexer.Peek(0)

		if t.Kind == lexer.Text && f.text == nil {
			x.lexer.Skip(1)
			text := strings.TrimSpace(t.Value)
			f.text = &text
			continue
		}

		if t.Kind != lexer.TagStart {
			return nil
		}

		if t.Value == "</"+name {
			x.lexer.Skip(1)
			return f.record()
		}

		property, ok := strings.CutPrefix(t.Value, "<"+name+".")
		if !ok {
			return nil
		}

		t2, t3, t4, t5 := x.lexer.Peek(1), x.lexer.Peek(2), x.lexer.Peek(3), x.lexer.Peek(4)
		if t2.Kind != lexer.TagEnd || t3.Kind != lexer.Text || t4.Kind != lexer.TagStart ||
			t4.Value != "</"+name+"."+property || t5.Kind != lexer.TagEnd {
			return nil
		}
		x.lexer.Skip(5)
		f.set(x, property, t3.Value)
	}
}
