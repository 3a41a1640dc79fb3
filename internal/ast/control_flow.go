package ast

import (
	"strings"

	"github.com/yetsing/dai/pkg/token"
)

// ElifBranch is one `elif (cond) block` clause; IfStatement keeps these in
// source order.
type ElifBranch struct {
	Token     token.Token // 'elif'
	Condition Expression
	Body      *BlockStatement
}

// IfStatement is `if (cond) block [elif (cond) block]* [else block]`.
type IfStatement struct {
	Token       token.Token // 'if'
	Condition   Expression
	Consequence *BlockStatement
	Elifs       []ElifBranch
	Alternative *BlockStatement // nil when there is no else clause
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) String() string {
	var b strings.Builder
	b.WriteString("if (")
	b.WriteString(is.Condition.String())
	b.WriteString(") ")
	b.WriteString(is.Consequence.String())
	for _, e := range is.Elifs {
		b.WriteString(" elif (")
		b.WriteString(e.Condition.String())
		b.WriteString(") ")
		b.WriteString(e.Body.String())
	}
	if is.Alternative != nil {
		b.WriteString(" else ")
		b.WriteString(is.Alternative.String())
	}
	return b.String()
}
func (is *IfStatement) Span() token.Span {
	end := is.Consequence.Span().End
	if n := len(is.Elifs); n > 0 {
		end = is.Elifs[n-1].Body.Span().End
	}
	if is.Alternative != nil {
		end = is.Alternative.Span().End
	}
	return token.Span{Start: is.Token.Span.Start, End: end}
}

// ForInStatement is `for (var e in expr) block` or, when Index is non-nil,
// `for (var i, e in expr) block`.
type ForInStatement struct {
	Token    token.Token // 'for'
	Index    *Identifier // nil when the single-binding form is used
	Elem     *Identifier
	Iterable Expression
	Body     *BlockStatement
}

func (fs *ForInStatement) statementNode()       {}
func (fs *ForInStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForInStatement) String() string {
	var b strings.Builder
	b.WriteString("for (var ")
	if fs.Index != nil {
		b.WriteString(fs.Index.String())
		b.WriteString(", ")
	}
	b.WriteString(fs.Elem.String())
	b.WriteString(" in ")
	b.WriteString(fs.Iterable.String())
	b.WriteString(") ")
	b.WriteString(fs.Body.String())
	return b.String()
}
func (fs *ForInStatement) Span() token.Span {
	return token.Span{Start: fs.Token.Span.Start, End: fs.Body.Span().End}
}
