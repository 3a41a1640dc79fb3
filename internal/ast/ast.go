// Package ast defines the Dai abstract syntax tree: a sum type over
// statement kinds and a sum type over expression kinds, each node carrying
// its originating token(s) and source span. Grounded on the teacher's
// ast.go, whose C original used a header-macro-plus-vtable scheme per node;
// here that becomes marker interfaces (Node/Expression/Statement) and a
// plain String() method per concrete type, per spec.md §9's own steer away
// from the tagged-union/vtable idiom.
package ast

import (
	"strings"

	"github.com/yetsing/dai/pkg/token"
)

// Node is implemented by every AST node.
type Node interface {
	// TokenLiteral returns the literal text of the node's leading token.
	TokenLiteral() string
	// String renders a fully-parenthesized debug form, not formatted source.
	String() string
	// Span returns the node's source span, derived from its first and
	// one-past-last tokens.
	Span() token.Span
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a Node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Program is the root node: the Program owns every top-level statement.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.String())
	}
	return b.String()
}

func (p *Program) Span() token.Span {
	if len(p.Statements) == 0 {
		return token.Span{}
	}
	return token.Span{Start: p.Statements[0].Span().Start, End: p.Statements[len(p.Statements)-1].Span().End}
}

// Identifier is a name reference: a variable, function, class, or parameter
// name used as an expression.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()        {}
func (i *Identifier) TokenLiteral() string   { return i.Token.Literal }
func (i *Identifier) String() string         { return i.Value }
func (i *Identifier) Span() token.Span       { return i.Token.Span }

// IntegerLiteral is a parsed, based-integer literal.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }
func (il *IntegerLiteral) Span() token.Span     { return il.Token.Span }

// FloatLiteral is a parsed floating-point literal.
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()      {}
func (fl *FloatLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FloatLiteral) String() string       { return fl.Token.Literal }
func (fl *FloatLiteral) Span() token.Span     { return fl.Token.Span }

// StringLiteral is a parsed string literal; Value holds the decoded text
// (escapes resolved), Token.Literal holds the original quoted source form
// the printer replays verbatim.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return sl.Token.Literal }
func (sl *StringLiteral) Span() token.Span     { return sl.Token.Span }

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string       { return bl.Token.Literal }
func (bl *BooleanLiteral) Span() token.Span     { return bl.Token.Span }

// NilLiteral is the `nil` literal.
type NilLiteral struct {
	Token token.Token
}

func (nl *NilLiteral) expressionNode()      {}
func (nl *NilLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NilLiteral) String() string       { return "nil" }
func (nl *NilLiteral) Span() token.Span     { return nl.Token.Span }

// PrefixExpression is a prefix operator applied to a single operand:
// `-x`, `!x`, `not x`, `~x`. LParen/RParen are set (and Span widened) only
// when the source wrapped the expression in parentheses, so the printer can
// preserve or elide them per spec.md §4.5's "preserve outer parens iff the
// source carried them" rule.
type PrefixExpression struct {
	Token    token.Token // the operator token
	Operator string
	Right    Expression
	LParen   *token.Token
	RParen   *token.Token
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *PrefixExpression) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(pe.Operator)
	if isWordOperator(pe.Operator) {
		b.WriteByte(' ')
	}
	b.WriteString(pe.Right.String())
	b.WriteByte(')')
	return b.String()
}
func (pe *PrefixExpression) Span() token.Span {
	start := pe.Token.Span.Start
	if pe.LParen != nil {
		start = pe.LParen.Span.Start
	}
	end := pe.Right.Span().End
	if pe.RParen != nil {
		end = pe.RParen.Span.End
	}
	return token.Span{Start: start, End: end}
}

// InfixExpression is a binary operator applied to two operands. LParen/
// RParen mirror PrefixExpression's stored-parens convention.
type InfixExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
	LParen   *token.Token
	RParen   *token.Token
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *InfixExpression) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(ie.Left.String())
	b.WriteByte(' ')
	b.WriteString(ie.Operator)
	b.WriteByte(' ')
	b.WriteString(ie.Right.String())
	b.WriteByte(')')
	return b.String()
}
func (ie *InfixExpression) Span() token.Span {
	start := ie.Left.Span().Start
	if ie.LParen != nil {
		start = ie.LParen.Span.Start
	}
	end := ie.Right.Span().End
	if ie.RParen != nil {
		end = ie.RParen.Span.End
	}
	return token.Span{Start: start, End: end}
}

func isWordOperator(op string) bool {
	return len(op) > 0 && ((op[0] >= 'a' && op[0] <= 'z') || (op[0] >= 'A' && op[0] <= 'Z'))
}

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	Token    token.Token // '['
	RBracket token.Token
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *ArrayLiteral) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, el := range al.Elements {
		b.WriteString(el.String())
		b.WriteString(", ")
	}
	b.WriteByte(']')
	return b.String()
}
func (al *ArrayLiteral) Span() token.Span {
	return token.Span{Start: al.Token.Span.Start, End: al.RBracket.Span.End}
}

// MapEntry is one ordered key/value pair of a MapLiteral.
type MapEntry struct {
	Key   Expression
	Value Expression
}

// MapLiteral is `{k1: v1, k2: v2, ...}`, preserving source order.
type MapLiteral struct {
	Token   token.Token // '{'
	RBrace  token.Token
	Entries []MapEntry
}

func (ml *MapLiteral) expressionNode()      {}
func (ml *MapLiteral) TokenLiteral() string { return ml.Token.Literal }
func (ml *MapLiteral) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for _, e := range ml.Entries {
		b.WriteString(e.Key.String())
		b.WriteString(": ")
		b.WriteString(e.Value.String())
		b.WriteString(", ")
	}
	b.WriteByte('}')
	return b.String()
}
func (ml *MapLiteral) Span() token.Span {
	return token.Span{Start: ml.Token.Span.Start, End: ml.RBrace.Span.End}
}

// CallExpression is `callee(arg1, arg2, ...)`.
type CallExpression struct {
	Token     token.Token // '('
	RParen    token.Token
	Function  Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	var b strings.Builder
	b.WriteString(ce.Function.String())
	b.WriteByte('(')
	for i, a := range ce.Arguments {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}
func (ce *CallExpression) Span() token.Span {
	return token.Span{Start: ce.Function.Span().Start, End: ce.RParen.Span.End}
}

// DotExpression is `receiver.name`.
type DotExpression struct {
	Token    token.Token // the name token
	Receiver Expression
	Name     string
}

func (de *DotExpression) expressionNode()      {}
func (de *DotExpression) TokenLiteral() string { return de.Token.Literal }
func (de *DotExpression) String() string       { return de.Receiver.String() + "." + de.Name }
func (de *DotExpression) Span() token.Span {
	return token.Span{Start: de.Receiver.Span().Start, End: de.Token.Span.End}
}

// SubscriptExpression is `target[index]`.
type SubscriptExpression struct {
	Token    token.Token // '['
	RBracket token.Token
	Target   Expression
	Index    Expression
}

func (se *SubscriptExpression) expressionNode()      {}
func (se *SubscriptExpression) TokenLiteral() string { return se.Token.Literal }
func (se *SubscriptExpression) String() string {
	return se.Target.String() + "[" + se.Index.String() + "]"
}
func (se *SubscriptExpression) Span() token.Span {
	return token.Span{Start: se.Target.Span().Start, End: se.RBracket.Span.End}
}

// SelfExpression is `self` or `self.name`.
type SelfExpression struct {
	Token token.Token // 'self'
	Name  string      // "" when there is no trailing ".name"
	end   token.Position
}

func (se *SelfExpression) expressionNode()      {}
func (se *SelfExpression) TokenLiteral() string { return se.Token.Literal }
func (se *SelfExpression) String() string {
	if se.Name == "" {
		return "self"
	}
	return "self." + se.Name
}
func (se *SelfExpression) Span() token.Span {
	end := se.Token.Span.End
	if se.end != (token.Position{}) {
		end = se.end
	}
	return token.Span{Start: se.Token.Span.Start, End: end}
}

// SetEnd records the position one-past the last token of the expression
// (used by the parser once it knows whether a trailing ".name" was
// present).
func (se *SelfExpression) SetEnd(p token.Position) { se.end = p }

// SuperExpression is `super.name`.
type SuperExpression struct {
	Token token.Token // 'super'
	End   token.Token // the name token
	Name  string
}

func (se *SuperExpression) expressionNode()      {}
func (se *SuperExpression) TokenLiteral() string { return se.Token.Literal }
func (se *SuperExpression) String() string       { return "super." + se.Name }
func (se *SuperExpression) Span() token.Span {
	return token.Span{Start: se.Token.Span.Start, End: se.End.Span.End}
}

// ClassAccessExpression is `class.name`, referring to a class-level member
// from within a method body.
type ClassAccessExpression struct {
	Token token.Token // 'class'
	End   token.Token // the name token
	Name  string
}

func (ce *ClassAccessExpression) expressionNode()      {}
func (ce *ClassAccessExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *ClassAccessExpression) String() string       { return "class." + ce.Name }
func (ce *ClassAccessExpression) Span() token.Span {
	return token.Span{Start: ce.Token.Span.Start, End: ce.End.Span.End}
}
