package extract

import (
	"strings"

	"github.com/mimecorg/bc-gettext-utils/internal/lexer"
)

// Dialect identifies the syntax of a source file.
type Dialect int

const (
	JavaScript Dialect = iota
	CSharp
	Vue
	Razor
	XAML
	PHP
)

var dialectNames = map[Dialect]string{
	JavaScript: "js",
	CSharp:     "cs",
	Vue:        "vue",
	Razor:      "cshtml",
	XAML:       "xaml",
	PHP:        "php",
}

func (d Dialect) String() string {
	if name, ok := dialectNames[d]; ok {
		return name
	}
	return "unknown"
}

// Extensions lists the file extensions with a known dialect.
var Extensions = map[string]Dialect{
	".js":     JavaScript,
	".cs":     CSharp,
	".vue":    Vue,
	".cshtml": Razor,
	".xaml":   XAML,
	".php":    PHP,
}

// DialectForExt maps a file extension, including the dot, to a dialect.
func DialectForExt(ext string) (Dialect, bool) {
	d, ok := Extensions[strings.ToLower(ext)]
	return d, ok
}

// New builds the lexer and grammar for one file of the given dialect.
func New(d Dialect, text string, opts Options) Extractor {
	code := CodeOptions{
		Keywords:             opts.Keywords,
		DisplayAttributes:    opts.DisplayAttributes,
		ErrorMessageProperty: opts.ErrorMessageProperty,
	}

	switch d {
	case CSharp:
		code.InsideCode = true
		code.Attributes = true
		return NewCode(lexer.NewCode(text, lexer.CSharp), code)
	case Vue:
		return NewCode(lexer.NewVueCode(text), code)
	case Razor:
		code.Attributes = true
		return NewCode(lexer.NewRazor(text), code)
	case XAML:
		return NewXAML(lexer.NewXAML(text), opts.XAML)
	case PHP:
		return NewCode(lexer.NewPHPTemplate(text), code)
	}

	code.InsideCode = true
	return NewCode(lexer.NewCode(text, lexer.JavaScript), code)
}
