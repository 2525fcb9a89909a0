package pofile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mimecorg/bc-gettext-utils/internal/catalog"
)

const sample = `# Polish translation
msgid ""
msgstr ""
"MIME-Version: 1.0\n"
"Language: pl_PL\n"
"Plural-Forms: nplurals=3; plural=(n==1 ? 0 : n%10>=2 && n%10<=4 && (n%100<12 || n%100>14) ? 1 : 2);\n"

# to check
#. shown on the login page
#: script.js:3 view.cshtml:7
#, fuzzy
msgid "Welcome, {0}!"
msgstr "Witaj, {0}!"

#: testclass.cs:18
msgctxt "fruits"
msgid "I have one apple."
msgid_plural "I have {0} apples."
msgstr[0] "Mam jedno jabłko."
msgstr[1] "Mam {0} jabłka."
msgstr[2] "Mam {0} jabłek."

#: script.js:9
msgid ""
"first line\n"
"second \"line\""
msgstr ""

#~ msgid "obsolete"
#~ msgstr "przestarzałe"
`

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "Polish translation", f.Comments)
	assert.Equal(t, "pl_PL", f.Header("language"))
	assert.Equal(t, 3, f.NPlurals())
	assert.Equal(t, 3, f.Catalog.Len())

	welcome, ok := f.Catalog.Get("", "Welcome, {0}!")
	require.True(t, ok)
	assert.Equal(t, catalog.Message{
		ID:  "Welcome, {0}!",
		Str: []string{"Witaj, {0}!"},
		Comments: catalog.Comments{
			Translator: "to check",
			Extracted:  "shown on the login page",
			Reference:  "script.js:3 view.cshtml:7",
			Flag:       "fuzzy",
		},
	}, *welcome)

	apples, ok := f.Catalog.Get("fruits", "I have one apple.")
	require.True(t, ok)
	assert.Equal(t, "I have {0} apples.", apples.Plural)
	assert.Equal(t, []string{"Mam jedno jabłko.", "Mam {0} jabłka.", "Mam {0} jabłek."}, apples.Str)

	_, ok = f.Catalog.Get("", "first line\nsecond \"line\"")
	assert.True(t, ok)

	_, ok = f.Catalog.Get("", "obsolete")
	assert.False(t, ok)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "unknown keyword", text: "msgid \"a\"\nmsgfoo \"b\"\n"},
		{name: "unquoted value", text: "msgid a\n"},
		{name: "orphan string", text: "\"a\"\n"},
		{name: "bad plural index", text: "msgid \"a\"\nmsgid_plural \"b\"\nmsgstr[x] \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.text))
			assert.Error(t, err)
		})
	}
}

func TestWriteTo(t *testing.T) {
	f := New([]Header{
		{Name: "MIME-Version", Value: "1.0"},
		{Name: "Language", Value: "pl_PL"},
	})
	f.Catalog.Put(&catalog.Message{
		ID:       "b",
		Str:      []string{""},
		Comments: catalog.Comments{Reference: "b.js:1"},
	})
	f.Catalog.Put(&catalog.Message{
		Context:  "animal",
		ID:       "a \"dog\"",
		Plural:   "{0} dogs",
		Str:      []string{"pies", ""},
		Comments: catalog.Comments{Reference: "a.js:2", Flag: "csharp-format"},
	})

	var buf bytes.Buffer
	n, err := f.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	assert.Equal(t, `msgid ""
msgstr ""
"MIME-Version: 1.0\n"
"Language: pl_PL\n"

#: a.js:2
#, csharp-format
msgctxt "animal"
msgid "a \"dog\""
msgid_plural "{0} dogs"
msgstr[0] "pies"
msgstr[1] ""

#: b.js:1
msgid "b"
msgstr ""
`, buf.String())
}

func TestRoundTrip(t *testing.T) {
	f, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "pl.po")
	require.NoError(t, WriteFile(path, f))

	again, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, f.Headers, again.Headers)
	assert.Equal(t, f.Comments, again.Comments)
	assert.Equal(t, f.Catalog.Messages(), again.Catalog.Messages())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msgid \"\"\n\"first line\\n\"\n\"second \\\"line\\\"\"\n")
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.po"))
	assert.Error(t, err)
}

func TestSetHeader(t *testing.T) {
	f := New(nil)
	f.SetHeader("Language", "de")
	f.SetHeader("language", "pl")

	assert.Equal(t, []Header{{Name: "Language", Value: "pl"}}, f.Headers)
	assert.Equal(t, 0, f.NPlurals())
}
