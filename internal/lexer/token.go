package lexer

// Kind identifies the class of a token.
type Kind int

const (
	EOF Kind = iota
	Identifier
	Number
	String
	RegExp
	Operator
	TagStart
	TagEnd
	Text
	Interpolation
	Directive
	ExtensionStart
	ExtensionEnd
	CodeStart
	CodeEnd
)

var kindNames = [...]string{
	EOF:            "EOF",
	Identifier:     "Identifier",
	Number:         "Number",
	String:         "String",
	RegExp:         "RegExp",
	Operator:       "Operator",
	TagStart:       "TagStart",
	TagEnd:         "TagEnd",
	Text:           "Text",
	Interpolation:  "Interpolation",
	Directive:      "Directive",
	ExtensionStart: "ExtensionStart",
	ExtensionEnd:   "ExtensionEnd",
	CodeStart:      "CodeStart",
	CodeEnd:        "CodeEnd",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Token is a single lexical unit produced by one of the lexers.
type Token struct {
	// Kind is the token class.
	Kind Kind
	// Value is the lexeme, or the decoded value for strings.
	Value string
	// Delimiter records the quoting style of a String token ("'", "\"", "@\"", "`" or "").
	Delimiter string
	// Line is the 1-based source line. Zero only for EOF.
	Line int
}

// Is reports whether the token has the given kind and value.
func (t Token) Is(kind Kind, value string) bool {
	return t.Kind == kind && t.Value == value
}

// IsOperator reports whether the token is the given operator.
func (t Token) IsOperator(value string) bool {
	return t.Is(Operator, value)
}

func (t Token) String() string {
	if t.Value == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + "(" + t.Value + ")"
}
