package printer

import "github.com/yetsing/dai/internal/ast"

// printExpression replays the tokens composing e, recursing into children
// in source order so each leaf token is visited exactly once, left to
// right, matching the grammar's own token order.
func (p *Printer) printExpression(e ast.Expression) {
	if e == nil {
		return
	}
	switch v := e.(type) {
	case *ast.Identifier:
		p.advanceTo(v.Token)
	case *ast.IntegerLiteral:
		p.advanceTo(v.Token)
	case *ast.FloatLiteral:
		p.advanceTo(v.Token)
	case *ast.StringLiteral:
		p.advanceTo(v.Token)
	case *ast.BooleanLiteral:
		p.advanceTo(v.Token)
	case *ast.NilLiteral:
		p.advanceTo(v.Token)
	case *ast.PrefixExpression:
		p.printPrefixExpression(v)
	case *ast.InfixExpression:
		p.printInfixExpression(v)
	case *ast.ArrayLiteral:
		p.printArrayLiteral(v)
	case *ast.MapLiteral:
		p.printMapLiteral(v)
	case *ast.CallExpression:
		p.printCallExpression(v)
	case *ast.DotExpression:
		p.printExpression(v.Receiver)
		p.raw(".")
		p.advanceTo(v.Token)
	case *ast.SubscriptExpression:
		p.printSubscriptExpression(v)
	case *ast.SelfExpression:
		p.advanceTo(v.Token)
		if v.Name != "" {
			p.raw(".")
			p.raw(v.Name)
		}
	case *ast.SuperExpression:
		p.advanceTo(v.Token)
		p.raw(".")
		p.raw(v.Name)
	case *ast.ClassAccessExpression:
		p.advanceTo(v.Token)
		p.raw(".")
		p.raw(v.Name)
	case *ast.FunctionLiteral:
		p.printFunctionLiteral(v)
	}
}

func isWordOperatorToken(op string) bool {
	switch op {
	case "and", "or", "not", "in":
		return true
	default:
		return false
	}
}

func (p *Printer) printPrefixExpression(v *ast.PrefixExpression) {
	hasParen := v.LParen != nil
	if hasParen {
		p.raw("(")
	}
	p.advanceTo(v.Token)
	if isWordOperatorToken(v.Operator) {
		p.space()
	}
	p.printExpression(v.Right)
	if hasParen {
		p.raw(")")
	}
}

func (p *Printer) printInfixExpression(v *ast.InfixExpression) {
	hasParen := v.LParen != nil
	if hasParen {
		p.raw("(")
	}
	p.printExpression(v.Left)
	p.space()
	p.advanceTo(v.Token)
	p.space()
	p.printExpression(v.Right)
	if hasParen {
		p.raw(")")
	}
}

func (p *Printer) printArrayLiteral(v *ast.ArrayLiteral) {
	p.advanceTo(v.Token) // '['
	if len(v.Elements) > 0 {
		p.openIndent()
		p.endline()
		for _, el := range v.Elements {
			p.printExpression(el)
			p.raw(",")
			p.endline()
		}
		p.closeIndent()
	}
	p.advanceTo(v.RBracket)
}

func (p *Printer) printMapLiteral(v *ast.MapLiteral) {
	p.advanceTo(v.Token) // '{'
	if len(v.Entries) > 0 {
		p.openIndent()
		p.endline()
		for _, entry := range v.Entries {
			p.printExpression(entry.Key)
			p.raw(":")
			p.space()
			p.printExpression(entry.Value)
			p.raw(",")
			p.endline()
		}
		p.closeIndent()
	}
	p.advanceTo(v.RBrace)
}

func (p *Printer) printCallExpression(v *ast.CallExpression) {
	p.printExpression(v.Function)
	p.advanceTo(v.Token) // '('
	if len(v.Arguments) > 0 {
		p.openIndent()
		p.endline()
		for _, a := range v.Arguments {
			p.printExpression(a)
			p.raw(",")
			p.endline()
		}
		p.closeIndent()
	}
	p.advanceTo(v.RParen)
}

func (p *Printer) printSubscriptExpression(v *ast.SubscriptExpression) {
	p.printExpression(v.Target)
	p.raw("[")
	p.printExpression(v.Index)
	p.advanceTo(v.RBracket)
}

func (p *Printer) printFunctionLiteral(v *ast.FunctionLiteral) {
	p.advanceTo(v.Token) // 'fn'
	p.raw("(")
	for i, param := range v.Parameters {
		if i > 0 {
			p.raw(", ")
		}
		p.advanceTo(param.Token)
		if v.DefaultStart >= 0 && i >= v.DefaultStart {
			p.raw("=")
			p.printExpression(v.Defaults[i-v.DefaultStart])
		}
	}
	p.raw(") ")
	p.printBlock(v.Body)
}
