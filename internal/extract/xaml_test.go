package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mimecorg/bc-gettext-utils/internal/lexer"
)

func xamlExtractor(text string) *XAMLExtractor {
	return NewXAML(lexer.NewXAML(text), DefaultXAMLOptions())
}

func TestXAMLForms(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Record
	}{
		{
			name: "simple extension",
			text: `<Label Content="{i18n:Translate hello}"/>`,
			want: Record{Line: 1, ID: "hello"},
		},
		{
			name: "extension with named args",
			text: `<Label Content="{i18n:Translate Text=a dog, PluralText=some dogs}"/>`,
			want: Record{Line: 1, ID: "a dog", Plural: "some dogs"},
		},
		{
			name: "extension with mixed args",
			text: `<Label Content="{i18n:Translate hello, Context=welcome}"/>`,
			want: Record{Line: 1, Context: "welcome", ID: "hello"},
		},
		{
			name: "extension with quoted args",
			text: `<Label Content="{Binding Path=Count, Converter={i18n:Format 'a dog', PluralText='{0} dogs', Context='animal'}}"/>`,
			want: Record{Line: 1, Context: "animal", ID: "a dog", Plural: "{0} dogs"},
		},
		{
			name: "tag with attributes",
			text: `<i18n:Translate Text="hello"/>`,
			want: Record{Line: 1, ID: "hello"},
		},
		{
			name: "tag with content",
			text: `<i18n:Translate>hello</i18n:Translate>`,
			want: Record{Line: 1, ID: "hello"},
		},
		{
			name: "tag with content and attributes",
			text: `<i18n:Translate Context="welcome">hello</i18n:Translate>`,
			want: Record{Line: 1, Context: "welcome", ID: "hello"},
		},
		{
			name: "tag with child tags",
			text: "<i18n:Translate>\n<i18n:Translate.Text>a dog</i18n:Translate.Text>\n<i18n:Translate.PluralText>some dogs</i18n:Translate.PluralText>\n</i18n:Translate>",
			want: Record{Line: 1, ID: "a dog", Plural: "some dogs"},
		},
		{
			name: "tag with content and child tags",
			text: "<i18n:Translate>a dog\n<i18n:Translate.PluralText>some dogs</i18n:Translate.PluralText>\n</i18n:Translate>",
			want: Record{Line: 1, ID: "a dog", Plural: "some dogs"},
		},
		{
			name: "first value wins",
			text: `<Label Content="{i18n:Translate Text=one, Text=two}"/>`,
			want: Record{Line: 1, ID: "one"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := xamlExtractor(tt.text)

			got := e.Next()
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
			assert.Nil(t, e.Next())
		})
	}
}

func TestXAMLMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "other extension", text: `<Label Content="{Binding Name}"/>`},
		{name: "no text", text: `<Label Content="{i18n:Translate Context=welcome}"/>`},
		{name: "nested extension argument", text: `<Label Content="{i18n:Translate {Binding Name}}"/>`},
		{name: "unknown child tag", text: `<i18n:Translate><Run>hello</Run></i18n:Translate>`},
		{name: "tag without text", text: `<i18n:Translate Context="welcome"/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, xamlExtractor(tt.text).Next())
		})
	}
}

func TestXAMLMultipleStrings(t *testing.T) {
	e := xamlExtractor("<Label Content=\"{i18n:Translate hello}\"/>\n<Label>\n<i18n:Translate>world</i18n:Translate>\n</Label>")

	assert.Equal(t, []*Record{
		{Line: 1, ID: "hello"},
		{Line: 3, ID: "world"},
	}, All(e))
}

func TestXAMLCustomOptions(t *testing.T) {
	e := NewXAML(lexer.NewXAML("<Label Content=\"{local:Tr Tx=hello}\"/>\n<Label>\n<local:Tr Ctx=\"context\">\nworld\n<local:Tr.Pl>worlds</local:Tr.Pl>\n</local:Tr>"), XAMLOptions{
		Extensions:          []string{"local:Tr"},
		TextAttribute:       "Tx",
		PluralTextAttribute: "Pl",
		ContextAttribute:    "Ctx",
	})

	assert.Equal(t, []*Record{
		{Line: 1, ID: "hello"},
		{Line: 3, Context: "context", ID: "world", Plural: "worlds"},
	}, All(e))
}
