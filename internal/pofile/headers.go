package pofile

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// pluralRule is the Plural-Forms expression of a language family.
type pluralRule struct {
	n       int
	formula string
}

var (
	pluralOne     = pluralRule{1, "0"}
	pluralNotOne  = pluralRule{2, "(n != 1)"}
	pluralGTOne   = pluralRule{2, "(n > 1)"}
	pluralPolish  = pluralRule{3, "(n==1 ? 0 : n%10>=2 && n%10<=4 && (n%100<12 || n%100>14) ? 1 : 2)"}
	pluralSlavic  = pluralRule{3, "(n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2)"}
	pluralCzech   = pluralRule{3, "(n==1) ? 0 : (n>=2 && n<=4) ? 1 : 2"}
	pluralDefault = pluralNotOne
)

var pluralRules = map[string]pluralRule{
	"ja": pluralOne, "ko": pluralOne, "zh": pluralOne, "vi": pluralOne, "th": pluralOne, "id": pluralOne,
	"fr": pluralGTOne, "tr": pluralGTOne,
	"pl": pluralPolish,
	"ru": pluralSlavic, "uk": pluralSlavic, "be": pluralSlavic, "sr": pluralSlavic, "hr": pluralSlavic, "bs": pluralSlavic,
	"cs": pluralCzech, "sk": pluralCzech,
}

// Language is a validated PO language code such as "pl_PL".
type Language struct {
	tag language.Tag
}

// ParseLanguage validates a BCP 47 or POSIX style language code.
func ParseLanguage(s string) (Language, error) {
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return Language{}, fmt.Errorf("parse language %q: %w", s, err)
	}
	return Language{tag: tag}, nil
}

// String formats the language the way PO headers do, with an underscore
// before the region.
func (l Language) String() string {
	if l.tag == language.Und {
		return ""
	}
	return strings.ReplaceAll(l.tag.String(), "-", "_")
}

func (l Language) rule() pluralRule {
	base, _ := l.tag.Base()
	if r, ok := pluralRules[base.String()]; ok {
		return r
	}
	return pluralDefault
}

// NPlurals is the number of plural forms of the language.
func (l Language) NPlurals() int {
	return l.rule().n
}

// PluralForms is the Plural-Forms header value of the language.
func (l Language) PluralForms() string {
	r := l.rule()
	return fmt.Sprintf("nplurals=%d; plural=%s;", r.n, r.formula)
}

// DefaultHeaders builds the header of a newly created catalog.
func DefaultHeaders(project string, lang Language) []Header {
	headers := []Header{
		{Name: "MIME-Version", Value: "1.0"},
		{Name: "Content-Type", Value: "text/plain; charset=utf-8"},
		{Name: "Content-Transfer-Encoding", Value: "8bit"},
	}
	if project != "" {
		headers = append(headers, Header{Name: "Project-Id-Version", Value: project})
	}
	if s := lang.String(); s != "" {
		headers = append(headers,
			Header{Name: "Language", Value: s},
			Header{Name: "Plural-Forms", Value: lang.PluralForms()},
		)
	}
	return headers
}
