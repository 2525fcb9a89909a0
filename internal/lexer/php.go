package lexer

import "regexp"

var phpOpenTagRe = regexp.MustCompile(`<\?(?:php|=)`)

// PHPTemplate tokenizes a PHP file: literal text interleaved with code
// blocks opened by "<?php" or "<?=".
type PHPTemplate struct {
	*Buffer
	cursor

	child *Code
}

// NewPHPTemplate creates a PHP template lexer over text.
func NewPHPTemplate(text string) *PHPTemplate {
	p := &PHPTemplate{cursor: newCursor(text)}
	p.Buffer = NewBuffer(p.scan)
	return p
}

func (p *PHPTemplate) scan() []Token {
	if p.child != nil {
		return p.childToken()
	}

	if p.eof() {
		return one(Token{Kind: EOF})
	}

	p.syncLine()

	start, end := p.search(phpOpenTagRe)
	if start < 0 {
		return one(p.textUntil(len(p.text)))
	}
	if start > p.pos {
		return one(p.textUntil(start))
	}

	p.pos = end
	p.child = NewCode(p.text[p.pos:], PHP)
	return one(p.token(CodeStart, ""))
}

func (p *PHPTemplate) childToken() []Token {
	t := p.child.Next()
	if t.Kind == EOF || t.Kind == CodeEnd {
		p.pos += p.child.Offset()
		p.child = nil
	}
	return one(shift(t, p.line))
}
