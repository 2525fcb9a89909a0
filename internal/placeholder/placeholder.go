// Package placeholder recognizes format placeholders in message text and
// maps them to gettext format flags.
package placeholder

import (
	"regexp"
	"strings"
)

// Format is a gettext format flag such as "csharp-format".
type Format string

const (
	CSharp     Format = "csharp-format"
	JavaScript Format = "javascript-format"
	C          Format = "c-format"
)

var patterns = []struct {
	format Format
	re     *regexp.Regexp
}{
	{CSharp, regexp.MustCompile(`\{[0-9]+(?:,-?[0-9]+)?(?::[^{}]*)?\}`)},
	{JavaScript, regexp.MustCompile(`\$\{[^{}]+\}`)},
	{C, regexp.MustCompile(`%(?:[0-9]+\$)?[-+ #0]*[0-9]*(?:\.[0-9]+)?[sdifuxXeEgGcp]`)},
}

// Detect returns the formats whose placeholders occur in any of texts, in
// a fixed order.
func Detect(texts ...string) []Format {
	var found []Format
	for _, p := range patterns {
		for _, s := range texts {
			if p.format == C {
				s = strings.ReplaceAll(s, "%%", "")
			}
			if p.re.MatchString(s) {
				found = append(found, p.format)
				break
			}
		}
	}
	return found
}

// Flags renders formats as the value of a "#," comment.
func Flags(formats []Format) string {
	parts := make([]string, len(formats))
	for i, f := range formats {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}
