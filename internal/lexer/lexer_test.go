package lexer

import (
	"testing"

	"github.com/yetsing/dai/pkg/token"
)

func TestTokenizeBasic(t *testing.T) {
	input := `var five = 5;
var ten = 10;
fn add(x, y) {
  return x + y;
}
var result = add(five, ten);
`

	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.Var, "var"},
		{token.Ident, "five"},
		{token.Assign, "="},
		{token.Int, "5"},
		{token.Semicolon, ";"},
		{token.Var, "var"},
		{token.Ident, "ten"},
		{token.Assign, "="},
		{token.Int, "10"},
		{token.Semicolon, ";"},
		{token.Function, "fn"},
		{token.Ident, "add"},
		{token.LParen, "("},
		{token.Ident, "x"},
		{token.Comma, ","},
		{token.Ident, "y"},
		{token.RParen, ")"},
		{token.LBrace, "{"},
		{token.Return, "return"},
		{token.Ident, "x"},
		{token.Plus, "+"},
		{token.Ident, "y"},
		{token.Semicolon, ";"},
		{token.RBrace, "}"},
		{token.Var, "var"},
		{token.Ident, "result"},
		{token.Assign, "="},
		{token.Ident, "add"},
		{token.LParen, "("},
		{token.Ident, "five"},
		{token.Comma, ","},
		{token.Ident, "ten"},
		{token.RParen, ")"},
		{token.Semicolon, ";"},
		{token.EOF, ""},
	}

	list, d := Tokenize(input)
	if d != nil {
		t.Fatalf("unexpected error: %v", d)
	}
	if list.Len() != len(tests) {
		t.Fatalf("wrong token count: got=%d want=%d", list.Len(), len(tests))
	}
	for i, tt := range tests {
		tok := list.Get(i)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%s, got=%s (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestTokenizeTwoCharOperators(t *testing.T) {
	input := "== != <= >= << >> += -= *= /="
	want := []token.Type{
		token.Eq, token.NotEq, token.Lte, token.Gte,
		token.LeftShift, token.RightShift,
		token.AddAssign, token.SubAssign, token.MulAssign, token.DivAssign,
		token.EOF,
	}
	list, d := Tokenize(input)
	if d != nil {
		t.Fatalf("unexpected error: %v", d)
	}
	for i, w := range want {
		if got := list.Get(i).Type; got != w {
			t.Fatalf("token[%d]: expected=%s got=%s", i, w, got)
		}
	}
}

func TestTokenizeKeywordsAndBooleans(t *testing.T) {
	input := "if elif else for in while break continue and or not true false nil self super class return"
	want := []token.Type{
		token.If, token.Elif, token.Else, token.For, token.In, token.While,
		token.Break, token.Continue, token.And, token.Or, token.Not,
		token.True, token.False, token.Nil, token.Self, token.Super,
		token.Class, token.Return, token.EOF,
	}
	list, d := Tokenize(input)
	if d != nil {
		t.Fatalf("unexpected error: %v", d)
	}
	for i, w := range want {
		if got := list.Get(i).Type; got != w {
			t.Fatalf("token[%d]: expected=%s got=%s", i, w, got)
		}
	}
}

func TestTokenizeIntegerBases(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"0", "0"},
		{"1_000", "1_000"},
		{"0b101", "0b101"},
		{"0o17", "0o17"},
		{"0x1F", "0x1F"},
	}
	for _, tt := range tests {
		list, d := Tokenize(tt.src)
		if d != nil {
			t.Fatalf("%q: unexpected error: %v", tt.src, d)
		}
		tok := list.Get(0)
		if tok.Type != token.Int || tok.Literal != tt.want {
			t.Fatalf("%q: got type=%s literal=%q", tt.src, tok.Type, tok.Literal)
		}
	}
}

func TestTokenizeFloat(t *testing.T) {
	list, d := Tokenize("3.14 2.5e10 0.5e-3")
	if d != nil {
		t.Fatalf("unexpected error: %v", d)
	}
	wantLiterals := []string{"3.14", "2.5e10", "0.5e-3"}
	for i, want := range wantLiterals {
		tok := list.Get(i)
		if tok.Type != token.Float || tok.Literal != want {
			t.Fatalf("token[%d]: got type=%s literal=%q want literal=%q", i, tok.Type, tok.Literal, want)
		}
	}
}

func TestTokenizeLeadingZeroIsIllegal(t *testing.T) {
	_, d := Tokenize("007;")
	if d == nil {
		t.Fatal("expected an error for a leading-zero decimal integer")
	}
	if d.Pos.Line != 1 || d.Pos.Column != 1 {
		t.Fatalf("unexpected position: %+v", d.Pos)
	}
}

func TestTokenizeInvalidBasePrefixDigit(t *testing.T) {
	_, d := Tokenize("0b12;")
	if d == nil {
		t.Fatal("expected an error for an invalid binary digit")
	}
}

func TestTokenizeStrings(t *testing.T) {
	list, d := Tokenize(`"hello\nworld" 'x' ` + "`raw\nstring`")
	if d != nil {
		t.Fatalf("unexpected error: %v", d)
	}
	if list.Get(0).Literal != `"hello\nworld"` {
		t.Fatalf("unexpected literal: %q", list.Get(0).Literal)
	}
	decoded, err := DecodeStringLiteral(list.Get(0).Literal)
	if err != nil || decoded != "hello\nworld" {
		t.Fatalf("decode failed: decoded=%q err=%v", decoded, err)
	}
	if list.Get(1).Literal != `'x'` {
		t.Fatalf("unexpected literal: %q", list.Get(1).Literal)
	}
	if list.Get(2).Literal != "`raw\nstring`" {
		t.Fatalf("unexpected literal: %q", list.Get(2).Literal)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, d := Tokenize(`"unterminated`)
	if d == nil {
		t.Fatal("expected an unterminated string error")
	}
}

func TestTokenizeInvalidEscapeIsIllegal(t *testing.T) {
	list, d := Tokenize(`'\q'`)
	if d == nil {
		t.Fatal("expected an illegal-token error for an unknown escape")
	}
	if list.Get(0).Type != token.Illegal {
		t.Fatalf("expected an Illegal token, got %s", list.Get(0).Type)
	}
}

func TestTokenizeInvalidHexEscapeIsIllegal(t *testing.T) {
	_, d := Tokenize(`"\xZZ"`)
	if d == nil {
		t.Fatal("expected an illegal-token error for a malformed \\x escape")
	}
}

func TestTokenizeComments(t *testing.T) {
	list, d := Tokenize("// a line comment\n# a hash comment\nvar x = 1;")
	if d != nil {
		t.Fatalf("unexpected error: %v", d)
	}
	if list.Get(0).Type != token.Comment || list.Get(0).Literal != "// a line comment" {
		t.Fatalf("unexpected comment token: %+v", list.Get(0))
	}
	if list.Get(1).Type != token.Comment || list.Get(1).Literal != "# a hash comment" {
		t.Fatalf("unexpected comment token: %+v", list.Get(1))
	}
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	_, d := Tokenize("var x = $;")
	if d == nil {
		t.Fatal("expected an illegal-character error")
	}
}

func TestTokenizeUnicodeIdentifier(t *testing.T) {
	list, d := Tokenize("var 变量 = 1;")
	if d != nil {
		t.Fatalf("unexpected error: %v", d)
	}
	if list.Get(1).Type != token.Ident || list.Get(1).Literal != "变量" {
		t.Fatalf("unexpected identifier token: %+v", list.Get(1))
	}
}

func TestTokenizeSpanTracksLineAndColumn(t *testing.T) {
	list, d := Tokenize("var x\n  = 1;")
	if d != nil {
		t.Fatalf("unexpected error: %v", d)
	}
	// "=" is on line 2, column 3 (two leading spaces).
	var assign token.Token
	found := false
	for i := 0; i < list.Len(); i++ {
		if list.Get(i).Type == token.Assign {
			assign = list.Get(i)
			found = true
			break
		}
	}
	if !found {
		t.Fatal("assign token not found")
	}
	if assign.Span.Start.Line != 2 || assign.Span.Start.Column != 3 {
		t.Fatalf("unexpected span start: %+v", assign.Span.Start)
	}
}
