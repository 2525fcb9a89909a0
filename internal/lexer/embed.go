package lexer

// Context tracks the constructs opened inside an embedded region so the
// host knows where the region ends.
type Context interface {
	// Update feeds the next child token and reports whether the region is
	// still open after it.
	Update(t Token) bool
}

// Child is a lexer that can be embedded in another one.
type Child interface {
	Lexer
	// NewContext creates a closure tracker for a region starting with t.
	NewContext(start Token) Context
	// Offset is the number of bytes of the child's input consumed so far.
	Offset() int
	// Line is the child's current 1-based line.
	Line() int
}

// MarkupFactory creates a markup lexer over a fragment of code. Code lexers
// use it to re-enter the host dialect when markup appears inside code.
type MarkupFactory func(text string) Child

// frame is the state a host keeps while a child lexer is active.
type frame struct {
	child    Child
	ctx      Context
	lineMode bool
}

// shift translates a child token line into host coordinates.
func shift(t Token, base int) Token {
	if t.Line > 0 {
		t.Line += base - 1
	}
	return t
}

// track feeds t to the frame's context, creating it from the first token.
// It reports whether the embedded region is still open.
func (f *frame) track(t Token) bool {
	if f.ctx == nil {
		f.ctx = f.child.NewContext(t)
	}
	return f.ctx.Update(t)
}

// resume moves the host cursor past the text the child consumed.
func (c *cursor) resume(child Child) {
	c.pos += child.Offset()
	c.line += child.Line() - 1
	c.reindex()
}
