package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  []Format
	}{
		{name: "plain", texts: []string{"Hello, world!"}},
		{name: "indexed", texts: []string{"Welcome, {0}!"}, want: []Format{CSharp}},
		{name: "aligned and formatted", texts: []string{"Total: {0,-10:N2}"}, want: []Format{CSharp}},
		{name: "named braces", texts: []string{"Hello, {name}!"}},
		{name: "template substitution", texts: []string{"Hello, ${name}!"}, want: []Format{JavaScript}},
		{name: "printf", texts: []string{"%d files"}, want: []Format{C}},
		{name: "positional printf", texts: []string{"%2$s of %1$s"}, want: []Format{C}},
		{name: "escaped percent", texts: []string{"100%% done"}},
		{name: "plural only", texts: []string{"a dog", "{0} dogs"}, want: []Format{CSharp}},
		{name: "mixed", texts: []string{"{0} of %s"}, want: []Format{CSharp, C}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.texts...))
		})
	}
}

func TestFlags(t *testing.T) {
	assert.Equal(t, "", Flags(nil))
	assert.Equal(t, "csharp-format, c-format", Flags([]Format{CSharp, C}))
}
