package extract

// Keywords are the function names recognized as translation calls.
type Keywords struct {
	Text          string
	ContextText   string
	Plural        string
	ContextPlural string

	// ReverseContext reads the contextualized plural form as
	// (text, plural, count, context) instead of (context, text, plural).
	ReverseContext bool
}

func DefaultKeywords() Keywords {
	return Keywords{
		Text:          "_",
		ContextText:   "_p",
		Plural:        "_n",
		ContextPlural: "_pn",
	}
}

// CodeOptions configure the call grammar.
type CodeOptions struct {
	Keywords Keywords

	// InsideCode is the initial state. Hosts that start in markup set it
	// to false and rely on CodeStart tokens.
	InsideCode bool

	// Attributes enables extraction from C# metadata attributes.
	Attributes           bool
	DisplayAttributes    []string
	ErrorMessageProperty string
}

// XAMLOptions configure the markup extension grammar.
type XAMLOptions struct {
	Extensions          []string
	TextAttribute       string
	PluralTextAttribute string
	ContextAttribute    string
}

func DefaultXAMLOptions() XAMLOptions {
	return XAMLOptions{
		Extensions:          []string{"i18n:Translate", "i18n:Format", "i18n:MultiFormat"},
		TextAttribute:       "Text",
		PluralTextAttribute: "PluralText",
		ContextAttribute:    "Context",
	}
}

// Options hold everything needed to build an extractor for any dialect.
type Options struct {
	Keywords             Keywords
	DisplayAttributes    []string
	ErrorMessageProperty string
	XAML                 XAMLOptions
}

// DefaultOptions returns the stock gettext keywords and attribute names.
func DefaultOptions() Options {
	return Options{
		Keywords:             DefaultKeywords(),
		DisplayAttributes:    []string{"Display"},
		ErrorMessageProperty: "ErrorMessage",
		XAML:                 DefaultXAMLOptions(),
	}
}
