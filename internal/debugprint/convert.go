// Package debugprint renders an ast.Node as colourized, queryable JSON —
// the Go shape of ast_debug_string(node, recursive). Each node becomes a
// map[string]any carrying a "kind" tag, its source span, and its children,
// which encoding/json then turns into text and tidwall/pretty dresses up.
package debugprint

import (
	"github.com/yetsing/dai/internal/ast"
	"github.com/yetsing/dai/pkg/token"
)

func spanOf(n ast.Node) map[string]any {
	sp := n.Span()
	return map[string]any{
		"start": position(sp.Start),
		"end":   position(sp.End),
	}
}

func position(p token.Position) map[string]any {
	return map[string]any{"line": p.Line, "column": p.Column}
}

func identifier(id *ast.Identifier) any {
	if id == nil {
		return nil
	}
	return node("Identifier", id, map[string]any{"value": id.Value})
}

func node(kind string, n ast.Node, fields map[string]any) map[string]any {
	out := map[string]any{
		"kind": kind,
		"span": spanOf(n),
	}
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func statements(stmts []ast.Statement) []any {
	out := make([]any, len(stmts))
	for i, s := range stmts {
		out[i] = Convert(s)
	}
	return out
}

func expressions(exprs []ast.Expression) []any {
	out := make([]any, len(exprs))
	for i, e := range exprs {
		out[i] = Convert(e)
	}
	return out
}

// Convert turns an ast.Node into a JSON-marshalable map/slice/nil shape. A
// nil node converts to nil so optional fields (an absent else-branch, a
// defaulted-out parameter list) serialize as JSON null rather than panicking.
func Convert(n ast.Node) any {
	switch v := n.(type) {
	case nil:
		return nil
	case *ast.Program:
		return node("Program", v, map[string]any{"statements": statements(v.Statements)})

	// Expressions
	case *ast.Identifier:
		return identifier(v)
	case *ast.IntegerLiteral:
		return node("IntegerLiteral", v, map[string]any{"value": v.Value})
	case *ast.FloatLiteral:
		return node("FloatLiteral", v, map[string]any{"value": v.Value})
	case *ast.StringLiteral:
		return node("StringLiteral", v, map[string]any{"value": v.Value})
	case *ast.BooleanLiteral:
		return node("BooleanLiteral", v, map[string]any{"value": v.Value})
	case *ast.NilLiteral:
		return node("NilLiteral", v, nil)
	case *ast.PrefixExpression:
		return node("PrefixExpression", v, map[string]any{
			"operator": v.Operator,
			"right":    Convert(v.Right),
		})
	case *ast.InfixExpression:
		return node("InfixExpression", v, map[string]any{
			"operator": v.Operator,
			"left":     Convert(v.Left),
			"right":    Convert(v.Right),
		})
	case *ast.ArrayLiteral:
		return node("ArrayLiteral", v, map[string]any{"elements": expressions(v.Elements)})
	case *ast.MapLiteral:
		entries := make([]any, len(v.Entries))
		for i, e := range v.Entries {
			entries[i] = map[string]any{"key": Convert(e.Key), "value": Convert(e.Value)}
		}
		return node("MapLiteral", v, map[string]any{"entries": entries})
	case *ast.CallExpression:
		return node("CallExpression", v, map[string]any{
			"function":  Convert(v.Function),
			"arguments": expressions(v.Arguments),
		})
	case *ast.DotExpression:
		return node("DotExpression", v, map[string]any{
			"receiver": Convert(v.Receiver),
			"name":     v.Name,
		})
	case *ast.SubscriptExpression:
		return node("SubscriptExpression", v, map[string]any{
			"target": Convert(v.Target),
			"index":  Convert(v.Index),
		})
	case *ast.SelfExpression:
		return node("SelfExpression", v, map[string]any{"name": v.Name})
	case *ast.SuperExpression:
		return node("SuperExpression", v, map[string]any{"name": v.Name})
	case *ast.ClassAccessExpression:
		return node("ClassAccessExpression", v, map[string]any{"name": v.Name})
	case *ast.FunctionLiteral:
		return node("FunctionLiteral", v, functionFields(v))

	// Statements
	case *ast.ExpressionStatement:
		return node("ExpressionStatement", v, map[string]any{"expression": Convert(v.Expression)})
	case *ast.BlockStatement:
		return node("BlockStatement", v, map[string]any{"statements": statements(v.Statements)})
	case *ast.VarStatement:
		return node("VarStatement", v, map[string]any{
			"name": identifier(v.Name), "value": Convert(v.Value), "isCon": v.IsCon,
		})
	case *ast.ReturnStatement:
		return node("ReturnStatement", v, map[string]any{"value": Convert(v.ReturnValue)})
	case *ast.AssignStatement:
		return node("AssignStatement", v, map[string]any{
			"target": Convert(v.Target), "operator": v.Operator,
			"isCompound": v.IsCompound, "value": Convert(v.Value),
		})
	case *ast.WhileStatement:
		return node("WhileStatement", v, map[string]any{
			"condition": Convert(v.Condition), "body": Convert(v.Body),
		})
	case *ast.BreakStatement:
		return node("BreakStatement", v, nil)
	case *ast.ContinueStatement:
		return node("ContinueStatement", v, nil)
	case *ast.IfStatement:
		elifs := make([]any, len(v.Elifs))
		for i, e := range v.Elifs {
			elifs[i] = map[string]any{"condition": Convert(e.Condition), "body": Convert(e.Body)}
		}
		var alternative any
		if v.Alternative != nil {
			alternative = Convert(v.Alternative)
		}
		return node("IfStatement", v, map[string]any{
			"condition":   Convert(v.Condition),
			"consequence": Convert(v.Consequence),
			"elifs":       elifs,
			"alternative": alternative,
		})
	case *ast.ForInStatement:
		return node("ForInStatement", v, map[string]any{
			"index": identifier(v.Index), "elem": identifier(v.Elem),
			"iterable": Convert(v.Iterable), "body": Convert(v.Body),
		})
	case *ast.FunctionStatement:
		return node("FunctionStatement", v, map[string]any{
			"name": identifier(v.Name), "function": Convert(v.Function),
		})
	case *ast.ClassStatement:
		return node("ClassStatement", v, map[string]any{
			"name": identifier(v.Name), "parent": identifier(v.Parent),
			"members": statements(v.Members),
		})
	case *ast.InstanceVarStatement:
		return node("InstanceVarStatement", v, map[string]any{
			"name": identifier(v.Name), "value": Convert(v.Value),
		})
	case *ast.MethodStatement:
		return node("MethodStatement", v, map[string]any{
			"name": identifier(v.Name), "function": Convert(v.Function),
		})
	case *ast.ClassVarStatement:
		return node("ClassVarStatement", v, map[string]any{
			"name": identifier(v.Name), "value": Convert(v.Value),
		})
	case *ast.ClassMethodStatement:
		return node("ClassMethodStatement", v, map[string]any{
			"name": identifier(v.Name), "function": Convert(v.Function),
		})
	default:
		return node("Unknown", v, map[string]any{"tokenLiteral": v.TokenLiteral()})
	}
}

func functionFields(fl *ast.FunctionLiteral) map[string]any {
	params := make([]any, len(fl.Parameters))
	for i, p := range fl.Parameters {
		entry := map[string]any{"name": identifier(p)}
		if fl.DefaultStart >= 0 && i >= fl.DefaultStart {
			entry["default"] = Convert(fl.Defaults[i-fl.DefaultStart])
		}
		params[i] = entry
	}
	return map[string]any{"parameters": params, "body": Convert(fl.Body)}
}
