package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRazorSingleTokens(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		kind  Kind
		value string
		line  int
	}{
		{name: "opening tag", text: `<button type="button">`, kind: TagStart, value: "<button", line: 1},
		{name: "closing tag", text: "</body>", kind: TagStart, value: "</body", line: 1},
		{name: "escaped at", text: "@@", kind: Text, value: "@", line: 1},
		{name: "text before tag", text: `this is a <button type="button">`, kind: Text, value: "this is a ", line: 1},
		{name: "text before closing tag", text: "foobar\n</body>", kind: Text, value: "foobar\n", line: 1},
		{name: "text before comment", text: "foo:<!-- comment -->", kind: Text, value: "foo:", line: 1},
		{name: "text before code", text: "this is @Model.Name", kind: Text, value: "this is ", line: 1},
		{name: "html comment", text: `<!-- comment --><a href="#">`, kind: TagStart, value: "<a", line: 1},
		{name: "razor comment", text: "@* this\nis\na comment *@ text", kind: Text, value: " text", line: 3},
		{name: "email-like text", text: "@ sign", kind: Text, value: "@", line: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRazor(tt.text).Next()

			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.value, got.Value)
			assert.Equal(t, tt.line, got.Line)
		})
	}
}

func TestRazorCodeBlocks(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		skip  int
		after string
	}{
		{name: "simple code", text: "@{ A; } text", skip: 2, after: " text"},
		{name: "complex code", text: "@{ if ( A ) { B(); } else { C = new D { X } } }( text )", skip: 20, after: "( text )"},
		{name: "functions directive", text: "@functions { public void Test() {} } text", skip: 7, after: " text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewRazor(tt.text)

			assertTokens(t, l, expect{kind: CodeStart}, expect{kind: Operator, value: "{"})
			l.Skip(tt.skip)
			assertTokens(t, l,
				expect{kind: Operator, value: "}"},
				expect{kind: CodeEnd},
				expect{kind: Text, value: tt.after},
			)
		})
	}
}

func TestRazorStatements(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		skip  int
		after string
	}{
		{name: "if ;", text: "@if ( a ) F(); text", skip: 8, after: " text"},
		{name: "if {}", text: "@if ( a ) { F(); } text", skip: 10, after: " text"},
		{name: "if ; else ;", text: "@if ( a ) F(); else G(); text", skip: 13, after: " text"},
		{name: "if {} else if {}", text: "@if ( a ) { F(); } else if ( b ) { G(); } text", skip: 21, after: " text"},
		{name: "switch", text: "@switch ( a ) { case 0: F(); break; } else", skip: 15, after: " else"},
		{name: "for ;", text: "@for ( a = 0; a < 10; a++ ) F(); text", skip: 18, after: " text"},
		{name: "for {}", text: "@for ( a = 0; a < 10; a++ ) { F(); } text", skip: 20, after: " text"},
		{name: "foreach", text: "@foreach ( var a in b ) { F(); } text", skip: 13, after: " text"},
		{name: "while", text: "@while ( true ) { F(); } do", skip: 10, after: " do"},
		{name: "using", text: "@using ( var a = F() ) { G(); } text", skip: 15, after: " text"},
		{name: "lock", text: "@lock ( a ) { F(); } text", skip: 10, after: " text"},
		{name: "do while", text: "@do { F(); } while ( true ); text", skip: 12, after: " text"},
		{name: "try catch finally", text: "@try { F(); } catch ( Exception ) { G(); } finally { H(); } text", skip: 24, after: " text"},
		{name: "parentheses", text: "@( a + b ) text", skip: 5, after: " text"},
		{name: "call", text: `@_p( "a", "b" ) text`, skip: 6, after: " text"},
		{name: "member access", text: "@Model.Text is ok", skip: 3, after: " is ok"},
		{name: "member access with space", text: "@Model. Text", skip: 1, after: ". Text"},
		{name: "identifier before parenthesis", text: "@Model (Text)", skip: 1, after: " (Text)"},
		{name: "await", text: "@await F() await", skip: 4, after: " await"},
		{name: "call chain", text: "@F( a ).B[ i ].C+text", skip: 11, after: "+text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewRazor(tt.text)

			assertTokens(t, l, expect{kind: CodeStart})
			l.Skip(tt.skip)
			assertTokens(t, l, expect{kind: CodeEnd}, expect{kind: Text, value: tt.after})
		})
	}
}

func TestRazorDirectives(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		value string
		after string
	}{
		{name: "model", text: "@model HomeViewModel\ntext", value: "@model HomeViewModel", after: "\ntext"},
		{name: "inject", text: "@inject IService service\ntext", value: "@inject IService service", after: "\ntext"},
		{name: "using", text: "@using App.Web.Models\ntext", value: "@using App.Web.Models", after: "\ntext"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, NewRazor(tt.text),
				expect{Directive, tt.value, 1},
				expect{Text, tt.after, 1},
			)
		})
	}

	t.Run("last line", func(t *testing.T) {
		assertTokens(t, NewRazor("@page \"/index\""),
			expect{Directive, `@page "/index"`, 1},
			expect{kind: EOF},
		)
	})

	t.Run("section", func(t *testing.T) {
		l := NewRazor(`@section Scripts { <script src="index.js"></script> } text`)

		assertTokens(t, l,
			expect{kind: Directive, value: "@section"},
			expect{kind: Text, value: " Scripts { "},
			expect{kind: TagStart, value: "<script"},
		)
		l.Skip(6)
		assertTokens(t, l, expect{kind: Text, value: " } text"})
	})
}

func TestRazorMarkupInsideCode(t *testing.T) {
	t.Run("simple tag", func(t *testing.T) {
		l := NewRazor("@{ A(); <p>hello!</p> }")

		assertTokens(t, l, expect{kind: CodeStart})
		l.Skip(5)
		assertTokens(t, l, expect{kind: CodeEnd}, expect{kind: TagStart, value: "<p"})
		l.Skip(4)
		assertTokens(t, l, expect{kind: CodeStart}, expect{kind: Operator, value: "}"})
	})

	t.Run("less than operator", func(t *testing.T) {
		l := NewRazor("@{ if (a<b) F(); }")

		assertTokens(t, l, expect{kind: CodeStart})
		l.Skip(4)
		assertTokens(t, l, expect{kind: Operator, value: "<"})
	})

	t.Run("nested tags", func(t *testing.T) {
		l := NewRazor("@{ <div><h1>title</h1><div>body</div></div> F(); }")

		assertTokens(t, l, expect{kind: CodeStart})
		l.Skip(1)
		assertTokens(t, l, expect{kind: CodeEnd}, expect{kind: TagStart, value: "<div"})
		l.Skip(13)
		assertTokens(t, l, expect{kind: CodeStart}, expect{kind: Identifier, value: "F"})
	})

	t.Run("void and self-closing elements", func(t *testing.T) {
		l := NewRazor("@{ <br> <img src=\"a.png\" /> F(); }")

		assertTokens(t, l,
			expect{kind: CodeStart},
			expect{kind: Operator, value: "{"},
			expect{kind: CodeEnd},
			expect{kind: TagStart, value: "<br"},
			expect{kind: TagEnd, value: ">"},
			expect{kind: CodeStart},
			expect{kind: CodeEnd},
			expect{kind: TagStart, value: "<img"},
		)
		l.Skip(3)
		assertTokens(t, l,
			expect{kind: TagEnd, value: "/>"},
			expect{kind: CodeStart},
			expect{kind: Identifier, value: "F"},
		)
	})

	t.Run("nested tags and code", func(t *testing.T) {
		l := NewRazor("@{\n<div>\n@{\n<p>@id</p>\n}\n</div>\n}")

		assertTokens(t, l,
			expect{kind: CodeStart},
			expect{Operator, "{", 1},
			expect{kind: CodeEnd},
			expect{TagStart, "<div", 2},
		)
		l.Skip(2)
		assertTokens(t, l,
			expect{kind: CodeStart},
			expect{Operator, "{", 3},
			expect{kind: CodeEnd},
			expect{TagStart, "<p", 4},
		)
		l.Skip(1)
		assertTokens(t, l,
			expect{kind: CodeStart},
			expect{Identifier, "id", 4},
			expect{kind: CodeEnd},
			expect{TagStart, "</p", 4},
		)
		l.Skip(8)
		assertTokens(t, l,
			expect{Operator, "}", 7},
			expect{kind: CodeEnd},
			expect{kind: EOF},
		)
	})

	t.Run("line of markup", func(t *testing.T) {
		l := NewRazor("@{\n@: hello, @name!\nF();\n}")

		l.Skip(2)
		assertTokens(t, l,
			expect{kind: CodeEnd},
			expect{Text, " hello, ", 2},
			expect{kind: CodeStart},
			expect{Identifier, "name", 2},
			expect{kind: CodeEnd},
			expect{Text, "!\n", 2},
			expect{kind: CodeStart},
			expect{Identifier, "F", 3},
		)
	})
}

func TestRazorCommentsInsideCode(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "block comment", text: "@{ /* comment */ F(); }"},
		{name: "razor comment", text: "@{ @* comment *@ F(); }"},
		{name: "html comment", text: "@{ <!-- comment --> F(); }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewRazor(tt.text)
			l.Skip(2)
			assertTokens(t, l, expect{kind: Identifier, value: "F"})
		})
	}
}

func TestRazorSequences(t *testing.T) {
	t.Run("single line", func(t *testing.T) {
		assertTokens(t, NewRazor("@_( 'text' )"),
			expect{kind: CodeStart},
			expect{kind: Identifier, value: "_"},
			expect{kind: Operator, value: "("},
			expect{kind: String, value: "text"},
			expect{kind: Operator, value: ")"},
			expect{kind: CodeEnd},
			expect{kind: EOF},
		)
	})

	t.Run("multiple lines", func(t *testing.T) {
		assertTokens(t, NewRazor("before\n@{\nF();\n}\nafter"),
			expect{Text, "before\n", 1},
			expect{kind: CodeStart},
			expect{Operator, "{", 2},
			expect{Identifier, "F", 3},
			expect{Operator, "(", 3},
			expect{Operator, ")", 3},
			expect{Operator, ";", 3},
			expect{Operator, "}", 4},
			expect{kind: CodeEnd},
			expect{Text, "\nafter", 4},
			expect{kind: EOF},
		)
	})
}

func TestRazorLookahead(t *testing.T) {
	const text = `@_p( "context", "text" )`

	assert.True(t, NewRazor(text).Peek(3).Is(String, "context"))
	assert.Equal(t, EOF, NewRazor(text).Peek(10).Kind)

	l := NewRazor(text)
	l.Skip(4)
	assert.True(t, l.Next().IsOperator(","))
}
