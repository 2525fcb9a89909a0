package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// expect is one expected token. A zero Line is not checked.
type expect struct {
	kind  Kind
	value string
	line  int
}

func assertTokens(t *testing.T, l Lexer, want ...expect) {
	t.Helper()
	for i, w := range want {
		got := l.Next()
		if !assert.Equal(t, w.kind, got.Kind, "token %d: %v", i, got) {
			return
		}
		if w.value != "" {
			assert.Equal(t, w.value, got.Value, "token %d", i)
		}
		if w.line != 0 {
			assert.Equal(t, w.line, got.Line, "token %d: %v", i, got)
		}
	}
}
