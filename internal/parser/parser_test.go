package parser

import (
	"testing"

	"github.com/yetsing/dai/internal/ast"
)

func parseOrFatal(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, d := ParseSource(src, "test.dai")
	if d != nil {
		t.Fatalf("unexpected error: %v", d)
	}
	return prog
}

func TestParseExpressionStatementPrecedence(t *testing.T) {
	prog := parseOrFatal(t, "1 + 2 * 3;")
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	got := prog.Statements[0].String()
	want := "((1 + (2 * 3)))"
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestParseFullPrecedenceLadder(t *testing.T) {
	prog := parseOrFatal(t, "1 + 2 * 3 < 4 and not 5 == 6;")
	got := prog.Statements[0].(*ast.ExpressionStatement).Expression.String()
	want := "(((1 + (2 * 3)) < 4) and (not (5 == 6)))"
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestParseArrayLiteralTrailingComma(t *testing.T) {
	prog := parseOrFatal(t, "[1, 2 * 2, 3 + 3];")
	arr := prog.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.ArrayLiteral)
	got := arr.String()
	want := "[1, (2 * 2), (3 + 3), ]"
	if got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestParseVarStatement(t *testing.T) {
	prog := parseOrFatal(t, "var x = 5;\ncon y = 10;")
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Statements))
	}
	v1 := prog.Statements[0].(*ast.VarStatement)
	if v1.IsCon || v1.Name.Value != "x" {
		t.Fatalf("unexpected var statement: %+v", v1)
	}
	v2 := prog.Statements[1].(*ast.VarStatement)
	if !v2.IsCon || v2.Name.Value != "y" {
		t.Fatalf("unexpected con statement: %+v", v2)
	}
}

func TestParseIfElifElse(t *testing.T) {
	prog := parseOrFatal(t, `
if (x < 1) {
  return 1;
} elif (x < 2) {
  return 2;
} else {
  return 3;
}
`)
	is := prog.Statements[0].(*ast.IfStatement)
	if len(is.Elifs) != 1 || is.Alternative == nil {
		t.Fatalf("unexpected if statement shape: %+v", is)
	}
}

func TestParseForInIndexed(t *testing.T) {
	prog := parseOrFatal(t, "for (var i, e in xs) { i; }")
	fs := prog.Statements[0].(*ast.ForInStatement)
	if fs.Index == nil || fs.Index.Value != "i" || fs.Elem.Value != "e" {
		t.Fatalf("unexpected for-in shape: %+v", fs)
	}
}

func TestParseForInSingleBinding(t *testing.T) {
	prog := parseOrFatal(t, "for (var e in xs) { e; }")
	fs := prog.Statements[0].(*ast.ForInStatement)
	if fs.Index != nil || fs.Elem.Value != "e" {
		t.Fatalf("unexpected for-in shape: %+v", fs)
	}
}

func TestParseFunctionLiteralDefaults(t *testing.T) {
	prog := parseOrFatal(t, "var f = fn(a, b=1, c=2) { return a; };")
	fn := prog.Statements[0].(*ast.VarStatement).Value.(*ast.FunctionLiteral)
	if fn.DefaultStart != 1 || len(fn.Defaults) != 2 {
		t.Fatalf("unexpected defaults shape: start=%d defaults=%d", fn.DefaultStart, len(fn.Defaults))
	}
}

func TestParseFunctionLiteralDefaultOrderError(t *testing.T) {
	_, d := ParseSource("var f = fn(a=1, b) { return a; };", "test.dai")
	if d == nil {
		t.Fatal("expected an error: non-default parameter following a defaulted one")
	}
}

func TestParseInIsNotAnInfixOperator(t *testing.T) {
	_, d := ParseSource("x in y;", "test.dai")
	if d == nil {
		t.Fatal("expected an error: in is for-loop syntax, not an expression operator")
	}
}

func TestParseFunctionLiteralTrailingComma(t *testing.T) {
	prog, d := ParseSource("var f = fn(a, b,) { return a; };", "test.dai")
	if d != nil {
		t.Fatalf("unexpected error: %v", d)
	}
	fn := prog.Statements[0].(*ast.VarStatement).Value.(*ast.FunctionLiteral)
	if len(fn.Parameters) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(fn.Parameters))
	}
}

func TestParseClassWithMembers(t *testing.T) {
	prog := parseOrFatal(t, `
class Animal {
  var name;
  class var count = 0;
  fn speak() { return name; }
  class fn create() { return nil; }
}
`)
	cs := prog.Statements[0].(*ast.ClassStatement)
	if cs.Name.Value != "Animal" || len(cs.Members) != 4 {
		t.Fatalf("unexpected class shape: %+v", cs)
	}
	if _, ok := cs.Members[0].(*ast.InstanceVarStatement); !ok {
		t.Fatalf("member 0 should be InstanceVarStatement, got %T", cs.Members[0])
	}
	if _, ok := cs.Members[1].(*ast.ClassVarStatement); !ok {
		t.Fatalf("member 1 should be ClassVarStatement, got %T", cs.Members[1])
	}
	if _, ok := cs.Members[2].(*ast.MethodStatement); !ok {
		t.Fatalf("member 2 should be MethodStatement, got %T", cs.Members[2])
	}
	if _, ok := cs.Members[3].(*ast.ClassMethodStatement); !ok {
		t.Fatalf("member 3 should be ClassMethodStatement, got %T", cs.Members[3])
	}
}

func TestParseClassWithInheritance(t *testing.T) {
	prog := parseOrFatal(t, "class Dog < Animal {\n  fn bark() { return 1; }\n}")
	cs := prog.Statements[0].(*ast.ClassStatement)
	if cs.Parent == nil || cs.Parent.Value != "Animal" {
		t.Fatalf("unexpected parent: %+v", cs.Parent)
	}
}

func TestParseAssignStatements(t *testing.T) {
	prog := parseOrFatal(t, "x = 1;\nx += 2;\nx.y = 3;\nxs[0] = 4;")
	if len(prog.Statements) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(prog.Statements))
	}
	as0 := prog.Statements[0].(*ast.AssignStatement)
	if as0.IsCompound {
		t.Fatalf("plain assignment should not be compound")
	}
	as1 := prog.Statements[1].(*ast.AssignStatement)
	if !as1.IsCompound || as1.Operator != "+" {
		t.Fatalf("unexpected compound assignment: %+v", as1)
	}
}

func TestParseSelfSuperClassAccess(t *testing.T) {
	prog := parseOrFatal(t, `
class Dog < Animal {
  fn bark() {
    return self.name;
  }
  fn parentName() {
    return super.name;
  }
  class fn make() {
    return class.count;
  }
}
`)
	cs := prog.Statements[0].(*ast.ClassStatement)
	method := cs.Members[0].(*ast.MethodStatement)
	ret := method.Function.Body.Statements[0].(*ast.ReturnStatement)
	self, ok := ret.ReturnValue.(*ast.SelfExpression)
	if !ok || self.Name != "name" {
		t.Fatalf("unexpected self expression: %+v", ret.ReturnValue)
	}
}

func TestParseMissingSemicolonError(t *testing.T) {
	_, d := ParseSource("var x = 5", "test.dai")
	if d == nil {
		t.Fatal("expected a missing-semicolon error")
	}
}

func TestParseCallAndSubscriptAndDot(t *testing.T) {
	prog := parseOrFatal(t, "add(five, ten)[0].value;")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	dot, ok := es.Expression.(*ast.DotExpression)
	if !ok || dot.Name != "value" {
		t.Fatalf("unexpected expression shape: %+v", es.Expression)
	}
	sub, ok := dot.Receiver.(*ast.SubscriptExpression)
	if !ok {
		t.Fatalf("expected subscript receiver, got %T", dot.Receiver)
	}
	if _, ok := sub.Target.(*ast.CallExpression); !ok {
		t.Fatalf("expected call target, got %T", sub.Target)
	}
}

func TestParseMapLiteral(t *testing.T) {
	prog := parseOrFatal(t, `var m = {"a": 1, "b": 2};`)
	m := prog.Statements[0].(*ast.VarStatement).Value.(*ast.MapLiteral)
	if len(m.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m.Entries))
	}
}
