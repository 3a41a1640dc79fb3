package printer

import (
	"github.com/yetsing/dai/internal/ast"
	"github.com/yetsing/dai/pkg/token"
)

// printStatements prints a statement sequence, forcing two blank lines
// before a top-level-shaped function/class declaration that isn't the
// first statement — Formatter_print_statement_leading's rule for
// separating declarations — and otherwise keeping one blank line where the
// source had one or more between two statements. When a comment sits in
// that gap, printComment decides the blank line instead. Format calls it for
// the program's top-level statements; block and class bodies print theirs
// one by one through printStatement, without this blank-line handling.
func (p *Printer) printStatements(stmts []ast.Statement) {
	for i, s := range stmts {
		if i > 0 && isDeclaration(s) {
			p.ensureBlankLines(2)
		} else if i > 0 && s.Span().Start.Line > stmts[i-1].Span().End.Line+1 {
			commentInGap := false
			for j := p.idx; j < p.tokens.Len() && p.tokens.Get(j).Start().Less(s.Span().Start); j++ {
				if p.tokens.Get(j).Type == token.Comment {
					commentInGap = true
					break
				}
			}
			if !commentInGap {
				p.ensureBlankLines(1)
			}
		}
		p.printStatement(s)
	}
}

func isDeclaration(s ast.Statement) bool {
	switch s.(type) {
	case *ast.FunctionStatement, *ast.ClassStatement:
		return true
	default:
		return false
	}
}

func (p *Printer) ensureBlankLines(n int) {
	p.endline()
	for i := 0; i < n; i++ {
		p.buf.WriteByte('\n')
	}
}

func (p *Printer) printBlock(b *ast.BlockStatement) {
	p.advanceTo(b.Token) // '{'
	p.openIndent()
	p.endline()
	for _, s := range b.Statements {
		p.printStatement(s)
	}
	p.closeIndent()
	p.advanceTo(b.RBrace)
}

func (p *Printer) printStatement(s ast.Statement) {
	if s == nil {
		return
	}
	switch v := s.(type) {
	case *ast.ExpressionStatement:
		p.printExpression(v.Expression)
		p.raw(";")
		p.afterStatement()
	case *ast.BlockStatement:
		p.printBlock(v)
		p.afterStatement()
	case *ast.VarStatement:
		p.advanceTo(v.Token) // 'var'/'con'
		p.space()
		p.advanceTo(v.Name.Token)
		p.space()
		p.raw("=")
		p.space()
		p.printExpression(v.Value)
		p.advanceTo(v.Semi)
		p.afterStatement()
	case *ast.ReturnStatement:
		p.advanceTo(v.Token) // 'return'
		if v.ReturnValue != nil {
			p.space()
			p.printExpression(v.ReturnValue)
		}
		p.advanceTo(v.Semi)
		p.afterStatement()
	case *ast.AssignStatement:
		p.printExpression(v.Target)
		p.space()
		op := "="
		if v.IsCompound {
			op = v.Operator + "="
		}
		p.raw(op)
		p.space()
		p.printExpression(v.Value)
		p.advanceTo(v.Semi)
		p.afterStatement()
	case *ast.WhileStatement:
		p.advanceTo(v.Token) // 'while'
		p.space()
		p.raw("(")
		p.printExpression(v.Condition)
		p.raw(") ")
		p.printBlock(v.Body)
		p.afterStatement()
	case *ast.BreakStatement:
		p.advanceTo(v.Token)
		p.advanceTo(v.Semi)
		p.afterStatement()
	case *ast.ContinueStatement:
		p.advanceTo(v.Token)
		p.advanceTo(v.Semi)
		p.afterStatement()
	case *ast.IfStatement:
		p.printIfStatement(v)
	case *ast.ForInStatement:
		p.printForInStatement(v)
	case *ast.FunctionStatement:
		p.advanceTo(v.Token) // 'fn'
		p.space()
		p.advanceTo(v.Name.Token)
		p.printFunctionTail(v.Function)
		p.afterStatement()
	case *ast.ClassStatement:
		p.printClassStatement(v)
	case *ast.InstanceVarStatement:
		p.advanceTo(v.Token) // 'var'
		p.space()
		p.advanceTo(v.Name.Token)
		if v.Value != nil {
			p.space()
			p.raw("=")
			p.space()
			p.printExpression(v.Value)
		}
		p.advanceTo(v.Semi)
		p.afterStatement()
	case *ast.MethodStatement:
		p.advanceTo(v.Token) // 'fn'
		p.space()
		p.advanceTo(v.Name.Token)
		p.printFunctionTail(v.Function)
		p.afterStatement()
	case *ast.ClassVarStatement:
		p.advanceTo(v.Token) // 'class'
		p.space()
		p.raw("var")
		p.space()
		p.advanceTo(v.Name.Token)
		p.space()
		p.raw("=")
		p.space()
		p.printExpression(v.Value)
		p.advanceTo(v.Semi)
		p.afterStatement()
	case *ast.ClassMethodStatement:
		p.advanceTo(v.Token) // 'class'
		p.space()
		p.raw("fn")
		p.space()
		p.advanceTo(v.Name.Token)
		p.printFunctionTail(v.Function)
		p.afterStatement()
	}
}

// printFunctionTail prints a function literal's parameter list and body
// for the named-declaration forms (FunctionStatement, MethodStatement,
// ClassMethodStatement), which already printed the "fn"/"class fn" prefix
// and name themselves.
func (p *Printer) printFunctionTail(fn *ast.FunctionLiteral) {
	p.raw("(")
	for i, param := range fn.Parameters {
		if i > 0 {
			p.raw(", ")
		}
		p.advanceTo(param.Token)
		if fn.DefaultStart >= 0 && i >= fn.DefaultStart {
			p.raw("=")
			p.printExpression(fn.Defaults[i-fn.DefaultStart])
		}
	}
	p.raw(") ")
	p.printBlock(fn.Body)
}

func (p *Printer) printIfStatement(v *ast.IfStatement) {
	p.advanceTo(v.Token) // 'if'
	p.space()
	p.raw("(")
	p.printExpression(v.Condition)
	p.raw(") ")
	p.printBlock(v.Consequence)
	for _, elif := range v.Elifs {
		p.space()
		p.advanceTo(elif.Token) // 'elif'
		p.space()
		p.raw("(")
		p.printExpression(elif.Condition)
		p.raw(") ")
		p.printBlock(elif.Body)
	}
	if v.Alternative != nil {
		p.space()
		p.raw("else ")
		p.printBlock(v.Alternative)
	}
	p.afterStatement()
}

func (p *Printer) printForInStatement(v *ast.ForInStatement) {
	p.advanceTo(v.Token) // 'for'
	p.space()
	p.raw("(var ")
	if v.Index != nil {
		p.advanceTo(v.Index.Token)
		p.raw(", ")
	}
	p.advanceTo(v.Elem.Token)
	p.raw(" in ")
	p.printExpression(v.Iterable)
	p.raw(") ")
	p.printBlock(v.Body)
	p.afterStatement()
}

func (p *Printer) printClassStatement(v *ast.ClassStatement) {
	p.advanceTo(v.Token) // 'class'
	p.space()
	p.advanceTo(v.Name.Token)
	if v.Parent != nil {
		p.raw(" < ")
		p.advanceTo(v.Parent.Token)
	}
	p.raw(" ")
	p.raw("{")
	p.openIndent()
	p.endline()
	for _, m := range v.Members {
		p.printStatement(m)
	}
	p.closeIndent()
	p.advanceTo(v.RBrace)
	p.afterStatement()
}
