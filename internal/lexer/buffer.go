package lexer

// Lexer is a token stream with unbounded lookahead.
type Lexer interface {
	// Next returns and removes the next token.
	Next() Token
	// Peek returns the token n positions ahead without consuming anything.
	Peek(n int) Token
	// Skip discards the next n tokens.
	Skip(n int)
}

// SourceFunc produces the next tokens of a stream. It returns nil when the
// scanned construct yields nothing (a comment, ignorable whitespace) and more
// than one token when a synthetic token must follow the triggering one.
// Once the input is exhausted it must keep returning an EOF token.
type SourceFunc func() []Token

// Buffer is a lazily filled token queue on top of a SourceFunc.
type Buffer struct {
	source SourceFunc
	queue  []Token
	last   Token
	seen   bool
}

// NewBuffer creates a Buffer pulling tokens from source.
func NewBuffer(source SourceFunc) *Buffer {
	return &Buffer{source: source}
}

// Next returns and removes the next token.
func (b *Buffer) Next() Token {
	b.fill(0)
	t := b.queue[0]
	b.queue = b.queue[1:]
	b.last = t
	b.seen = true
	return t
}

// Peek returns the token n positions ahead.
func (b *Buffer) Peek(n int) Token {
	b.fill(n)
	return b.queue[n]
}

// Skip discards n tokens.
func (b *Buffer) Skip(n int) {
	for i := 0; i < n; i++ {
		b.Next()
	}
}

// Last returns the most recently produced token, whether or not it has been
// consumed yet. The second result is false before anything was produced.
func (b *Buffer) Last() (Token, bool) {
	if len(b.queue) > 0 {
		return b.queue[len(b.queue)-1], true
	}
	return b.last, b.seen
}

func (b *Buffer) fill(n int) {
	for len(b.queue) <= n {
		b.queue = append(b.queue, b.source()...)
	}
}
