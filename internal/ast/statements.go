package ast

import (
	"strings"

	"github.com/yetsing/dai/pkg/token"
)

// ExpressionStatement wraps a bare expression used in statement position.
// Its debug String() wraps the inner expression's own parenthesized form in
// one more pair of parens — not formatted source, just the literal
// debug-print shape the test grounding requires.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) String() string {
	if es.Expression == nil {
		return ""
	}
	return "(" + es.Expression.String() + ")"
}
func (es *ExpressionStatement) Span() token.Span {
	if es.Expression == nil {
		return es.Token.Span
	}
	return es.Expression.Span()
}

// BlockStatement is `{ stmt... }`.
type BlockStatement struct {
	Token      token.Token // '{'
	RBrace     token.Token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) String() string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, s := range bs.Statements {
		b.WriteString("  ")
		b.WriteString(strings.ReplaceAll(s.String(), "\n", "\n  "))
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}
func (bs *BlockStatement) Span() token.Span {
	return token.Span{Start: bs.Token.Span.Start, End: bs.RBrace.Span.End}
}

// VarStatement is `var name = expr;` or, when IsCon is true, `con name =
// expr;`.
type VarStatement struct {
	Token    token.Token // 'var' or 'con'
	Semi     token.Token
	Name     *Identifier
	Value    Expression
	IsCon    bool
}

func (vs *VarStatement) statementNode()       {}
func (vs *VarStatement) TokenLiteral() string { return vs.Token.Literal }
func (vs *VarStatement) String() string {
	kw := "var"
	if vs.IsCon {
		kw = "con"
	}
	var b strings.Builder
	b.WriteString(kw)
	b.WriteByte(' ')
	b.WriteString(vs.Name.String())
	b.WriteString(" = ")
	if vs.Value != nil {
		b.WriteString(vs.Value.String())
	}
	b.WriteByte(';')
	return b.String()
}
func (vs *VarStatement) Span() token.Span {
	return token.Span{Start: vs.Token.Span.Start, End: vs.Semi.Span.End}
}

// ReturnStatement is `return [expr];`.
type ReturnStatement struct {
	Token       token.Token // 'return'
	Semi        token.Token
	ReturnValue Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) String() string {
	var b strings.Builder
	b.WriteString("return")
	if rs.ReturnValue != nil {
		b.WriteByte(' ')
		b.WriteString(rs.ReturnValue.String())
	}
	b.WriteByte(';')
	return b.String()
}
func (rs *ReturnStatement) Span() token.Span {
	return token.Span{Start: rs.Token.Span.Start, End: rs.Semi.Span.End}
}

// AssignStatement is `target = expr;` or a compound form (`+= -= *= /=`).
// Operator retains the bare arithmetic operator ("" for plain `=`, else one
// of "+" "-" "*" "/") so a compiler collaborator can desugar the compound
// form without re-parsing the spelling.
type AssignStatement struct {
	Token      token.Token // the assignment operator token
	Semi       token.Token
	Target     Expression
	Operator   string
	IsCompound bool
	Value      Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignStatement) String() string {
	op := "="
	if as.IsCompound {
		op = as.Operator + "="
	}
	return as.Target.String() + " " + op + " " + as.Value.String() + ";"
}
func (as *AssignStatement) Span() token.Span {
	return token.Span{Start: as.Target.Span().Start, End: as.Semi.Span.End}
}

// WhileStatement is `while (cond) block`.
type WhileStatement struct {
	Token     token.Token // 'while'
	Condition Expression
	Body      *BlockStatement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) String() string {
	return "while (" + ws.Condition.String() + ") " + ws.Body.String()
}
func (ws *WhileStatement) Span() token.Span {
	return token.Span{Start: ws.Token.Span.Start, End: ws.Body.Span().End}
}

// BreakStatement is `break;`.
type BreakStatement struct {
	Token token.Token
	Semi  token.Token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BreakStatement) String() string       { return "break;" }
func (bs *BreakStatement) Span() token.Span {
	return token.Span{Start: bs.Token.Span.Start, End: bs.Semi.Span.End}
}

// ContinueStatement is `continue;`.
type ContinueStatement struct {
	Token token.Token
	Semi  token.Token
}

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ContinueStatement) String() string       { return "continue;" }
func (cs *ContinueStatement) Span() token.Span {
	return token.Span{Start: cs.Token.Span.Start, End: cs.Semi.Span.End}
}
