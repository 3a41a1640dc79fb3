package debugprint

import (
	"strings"
	"testing"

	"github.com/yetsing/dai/internal/parser"
)

func TestConvertExpressionStatement(t *testing.T) {
	prog, d := parser.ParseSource("1 + 2 * 3;", "test.dai")
	if d != nil {
		t.Fatalf("unexpected parse error: %v", d)
	}
	shape := Convert(prog)
	m, ok := shape.(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any, got %T", shape)
	}
	if m["kind"] != "Program" {
		t.Fatalf("expected kind Program, got %v", m["kind"])
	}
	stmts, ok := m["statements"].([]any)
	if !ok || len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %v", m["statements"])
	}
	es := stmts[0].(map[string]any)
	if es["kind"] != "ExpressionStatement" {
		t.Fatalf("expected ExpressionStatement, got %v", es["kind"])
	}
	infix := es["expression"].(map[string]any)
	if infix["kind"] != "InfixExpression" || infix["operator"] != "+" {
		t.Fatalf("unexpected infix shape: %+v", infix)
	}
}

func TestPlainProducesIndentedJSON(t *testing.T) {
	prog, d := parser.ParseSource("var x = 5;", "test.dai")
	if d != nil {
		t.Fatalf("unexpected parse error: %v", d)
	}
	out, err := Plain(prog)
	if err != nil {
		t.Fatalf("Plain: %v", err)
	}
	if !strings.Contains(string(out), "\"VarStatement\"") {
		t.Fatalf("expected VarStatement kind in output, got %s", out)
	}
	if !strings.Contains(string(out), "\n") {
		t.Fatalf("expected indented (multi-line) output, got %s", out)
	}
}

func TestColoredContainsEscapeCodes(t *testing.T) {
	prog, d := parser.ParseSource("var x = 5;", "test.dai")
	if d != nil {
		t.Fatalf("unexpected parse error: %v", d)
	}
	out, err := Colored(prog)
	if err != nil {
		t.Fatalf("Colored: %v", err)
	}
	if !strings.Contains(string(out), "\x1b[") {
		t.Fatalf("expected ANSI escape codes in coloured output")
	}
}

func TestQueryPullsSubtree(t *testing.T) {
	prog, d := parser.ParseSource("1 + 2;", "test.dai")
	if d != nil {
		t.Fatalf("unexpected parse error: %v", d)
	}
	raw, err := Query(prog, "statements.0.expression.operator")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if raw != `"+"` {
		t.Fatalf("expected quoted +, got %s", raw)
	}
}

func TestQueryMissingPathErrors(t *testing.T) {
	prog, d := parser.ParseSource("1;", "test.dai")
	if d != nil {
		t.Fatalf("unexpected parse error: %v", d)
	}
	if _, err := Query(prog, "does.not.exist"); err == nil {
		t.Fatal("expected an error for a nonexistent path")
	}
}
