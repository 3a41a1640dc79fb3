package printer

import (
	"testing"

	"github.com/yetsing/dai/internal/config"
	"github.com/yetsing/dai/internal/lexer"
	"github.com/yetsing/dai/internal/parser"
)

func formatOrFatal(t *testing.T, src string) string {
	t.Helper()
	tokens, lexErr := lexer.Tokenize(src)
	if lexErr != nil {
		t.Fatalf("unexpected lex error: %v", lexErr)
	}
	prog, parseErr := parser.Parse(tokens, "test.dai")
	if parseErr != nil {
		t.Fatalf("unexpected parse error: %v", parseErr)
	}
	return Format(prog, tokens, config.Default())
}

func TestFormatVarStatement(t *testing.T) {
	got := formatOrFatal(t, "var   x=5;")
	want := "var x = 5;\n"
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestFormatExpressionStatementPreservesNumberSpelling(t *testing.T) {
	got := formatOrFatal(t, "1+0x1F;")
	want := "1 + 0x1F;\n"
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestFormatIfElse(t *testing.T) {
	got := formatOrFatal(t, "if(x<1){return 1;}else{return 2;}")
	want := "if (x < 1) {\n  return 1;\n} else {\n  return 2;\n}\n"
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestFormatPreservesTrailingLineComment(t *testing.T) {
	got := formatOrFatal(t, "var x = 1; // note\n")
	want := "var x = 1;  // note\n"
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestFormatFunctionStatement(t *testing.T) {
	got := formatOrFatal(t, "fn add(a,b) { return a+b; }")
	want := "fn add(a, b) {\n  return a + b;\n}\n"
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestFormatArrayLiteralOnePerLine(t *testing.T) {
	got := formatOrFatal(t, "var x = [1,2,3];")
	want := "var x = [\n  1,\n  2,\n  3,\n];\n"
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestFormatEmptyArrayLiteralStaysInline(t *testing.T) {
	got := formatOrFatal(t, "var x = [];")
	want := "var x = [];\n"
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestFormatCallArgumentsOnePerLine(t *testing.T) {
	got := formatOrFatal(t, "f(1,2);")
	want := "f(\n  1,\n  2,\n);\n"
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestFormatCallWithNoArgumentsStaysInline(t *testing.T) {
	got := formatOrFatal(t, "f();")
	want := "f();\n"
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	first := formatOrFatal(t, "var x=1;\nfn f(a,b=1){return a+b;}\n")
	tokens, lexErr := lexer.Tokenize(first)
	if lexErr != nil {
		t.Fatalf("unexpected lex error on reformat: %v", lexErr)
	}
	prog, parseErr := parser.Parse(tokens, "test.dai")
	if parseErr != nil {
		t.Fatalf("unexpected parse error on reformat: %v", parseErr)
	}
	second := Format(prog, tokens, config.Default())
	if first != second {
		t.Fatalf("formatting is not idempotent:\nfirst=%q\nsecond=%q", first, second)
	}
}
