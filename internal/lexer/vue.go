package lexer

import (
	"regexp"
	"strings"
)

var (
	vueSpecialRe  = regexp.MustCompile(`(?si)</?[a-z][-a-z0-9]*|<!--.*?-->|\{\{.*?\}\}`)
	vueTagIdentRe = anchored(`(?i)(?:[:@#]|[a-z][-a-z0-9]*:)?[a-z][-a-z0-9]*`)
)

// rawTextTags hold unstructured content up to their closing tag.
var rawTextTags = map[string]*regexp.Regexp{
	"script": regexp.MustCompile(`(?i)</script\s*>`),
	"style":  regexp.MustCompile(`(?i)</style\s*>`),
}

// Vue tokenizes Vue single-file component templates.
type Vue struct {
	*Buffer
	cursor

	insideTag bool
	rawTag    string
}

// NewVue creates a component template lexer over text.
func NewVue(text string) *Vue {
	v := &Vue{cursor: newCursor(text)}
	v.Buffer = NewBuffer(v.scan)
	return v
}

func (v *Vue) scan() []Token {
	if v.insideTag {
		v.skipWhitespace()
	}

	if v.eof() {
		return one(Token{Kind: EOF})
	}

	v.syncLine()

	switch {
	case v.insideTag:
		return one(v.tagToken())
	case v.rawTag != "":
		return one(v.rawTextToken())
	}
	return v.textToken()
}

func (v *Vue) textToken() []Token {
	start, end := v.search(vueSpecialRe)

	if start < 0 {
		return one(v.textUntil(len(v.text)))
	}
	if start > v.pos {
		return one(v.textUntil(start))
	}

	value := v.text[start:end]
	v.pos = end

	if value[0] == '{' {
		return one(v.token(Interpolation, value[2:len(value)-2]))
	}
	if value[1] == '!' {
		return nil
	}
	if value[1] != '/' {
		tag := strings.ToLower(value[1:])
		if _, ok := rawTextTags[tag]; ok {
			v.rawTag = tag
		}
	} else {
		v.rawTag = ""
	}
	v.insideTag = true
	return one(v.token(TagStart, value))
}

func (v *Vue) rawTextToken() Token {
	start, _ := v.search(rawTextTags[v.rawTag])

	if start < 0 {
		return v.textUntil(len(v.text))
	}
	if start > v.pos {
		return v.textUntil(start)
	}

	value := v.text[v.pos : v.pos+2+len(v.rawTag)]
	v.pos += len(value)
	v.insideTag = true
	v.rawTag = ""
	return v.token(TagStart, value)
}

func (v *Vue) tagToken() Token {
	if id, ok := v.match(vueTagIdentRe); ok {
		return v.token(Identifier, id)
	}
	if n, ok := v.match(tagNumberRe); ok {
		return v.token(Number, n)
	}
	if t, ok := v.attributeValue(); ok {
		return t
	}
	if t, ok := v.tagEnd(); ok {
		v.insideTag = false
		if t.Value == "/>" {
			v.rawTag = ""
		}
		return t
	}
	return v.operator()
}
