package ast

import (
	"strings"

	"github.com/yetsing/dai/pkg/token"
)

// ClassStatement is `class Name [< Parent] { member... }`. Members is
// restricted by the parser to InstanceVarStatement, MethodStatement,
// ClassVarStatement and ClassMethodStatement — anything else is a
// SyntaxError at class-body-construction time, per the class-body
// invariant.
type ClassStatement struct {
	Token   token.Token // 'class'
	RBrace  token.Token
	Name    *Identifier
	Parent  *Identifier // nil when there is no `< Parent` clause
	Members []Statement
}

func (cs *ClassStatement) statementNode()       {}
func (cs *ClassStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ClassStatement) String() string {
	var b strings.Builder
	b.WriteString("class ")
	b.WriteString(cs.Name.String())
	if cs.Parent != nil {
		b.WriteString(" < ")
		b.WriteString(cs.Parent.String())
	}
	b.WriteString(" {\n")
	for _, m := range cs.Members {
		b.WriteString("  ")
		b.WriteString(strings.ReplaceAll(m.String(), "\n", "\n  "))
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}
func (cs *ClassStatement) Span() token.Span {
	return token.Span{Start: cs.Token.Span.Start, End: cs.RBrace.Span.End}
}

// InstanceVarStatement is `var name [= expr];` inside a class body.
type InstanceVarStatement struct {
	Token token.Token // 'var'
	Semi  token.Token
	Name  *Identifier
	Value Expression // nil when there is no initializer
}

func (ivs *InstanceVarStatement) statementNode()       {}
func (ivs *InstanceVarStatement) TokenLiteral() string { return ivs.Token.Literal }
func (ivs *InstanceVarStatement) String() string {
	if ivs.Value == nil {
		return "var " + ivs.Name.String() + ";"
	}
	return "var " + ivs.Name.String() + " = " + ivs.Value.String() + ";"
}
func (ivs *InstanceVarStatement) Span() token.Span {
	return token.Span{Start: ivs.Token.Span.Start, End: ivs.Semi.Span.End}
}

// MethodStatement is `fn name(params) block` inside a class body.
type MethodStatement struct {
	Token    token.Token // 'fn'
	Name     *Identifier
	Function *FunctionLiteral
}

func (ms *MethodStatement) statementNode()       {}
func (ms *MethodStatement) TokenLiteral() string { return ms.Token.Literal }
func (ms *MethodStatement) String() string {
	s := ms.Function.String()
	return "fn " + ms.Name.String() + s[len("fn"):]
}
func (ms *MethodStatement) Span() token.Span {
	return token.Span{Start: ms.Token.Span.Start, End: ms.Function.Span().End}
}

// ClassVarStatement is `class var name = expr;` — a class-level (static)
// variable.
type ClassVarStatement struct {
	Token token.Token // 'class'
	Semi  token.Token
	Name  *Identifier
	Value Expression
}

func (cvs *ClassVarStatement) statementNode()       {}
func (cvs *ClassVarStatement) TokenLiteral() string { return cvs.Token.Literal }
func (cvs *ClassVarStatement) String() string {
	return "class var " + cvs.Name.String() + " = " + cvs.Value.String() + ";"
}
func (cvs *ClassVarStatement) Span() token.Span {
	return token.Span{Start: cvs.Token.Span.Start, End: cvs.Semi.Span.End}
}

// ClassMethodStatement is `class fn name(params) block` — a class-level
// (static) method.
type ClassMethodStatement struct {
	Token    token.Token // 'class'
	Name     *Identifier
	Function *FunctionLiteral
}

func (cms *ClassMethodStatement) statementNode()       {}
func (cms *ClassMethodStatement) TokenLiteral() string { return cms.Token.Literal }
func (cms *ClassMethodStatement) String() string {
	s := cms.Function.String()
	return "class fn " + cms.Name.String() + s[len("fn"):]
}
func (cms *ClassMethodStatement) Span() token.Span {
	return token.Span{Start: cms.Token.Span.Start, End: cms.Function.Span().End}
}
