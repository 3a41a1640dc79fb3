package ast

import (
	"strings"

	"github.com/yetsing/dai/pkg/token"
)

// FunctionLiteral is `fn (params) block`, also the anonymous-function
// expression form. Defaults is a suffix of Parameters: once parameter i has
// a default, DefaultStart records i and Defaults holds exactly
// len(Parameters)-DefaultStart expressions, the "default-suffix rule" named
// in the glossary.
type FunctionLiteral struct {
	Token        token.Token // 'fn'
	Parameters   []*Identifier
	DefaultStart int // index of the first parameter with a default; -1 if none
	Defaults     []Expression
	Body         *BlockStatement
}

func (fl *FunctionLiteral) expressionNode()      {}
func (fl *FunctionLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FunctionLiteral) String() string {
	var b strings.Builder
	b.WriteString("fn(")
	for i, p := range fl.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
		if fl.DefaultStart >= 0 && i >= fl.DefaultStart {
			b.WriteString("=")
			b.WriteString(fl.Defaults[i-fl.DefaultStart].String())
		}
	}
	b.WriteString(") ")
	b.WriteString(fl.Body.String())
	return b.String()
}
func (fl *FunctionLiteral) Span() token.Span {
	return token.Span{Start: fl.Token.Span.Start, End: fl.Body.Span().End}
}

// FunctionStatement is a named top-level function declaration: `fn name
// (params) block`.
type FunctionStatement struct {
	Token    token.Token // 'fn'
	Name     *Identifier
	Function *FunctionLiteral
}

func (fs *FunctionStatement) statementNode()       {}
func (fs *FunctionStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *FunctionStatement) String() string {
	s := fs.Function.String()
	return "fn " + fs.Name.String() + s[len("fn"):]
}
func (fs *FunctionStatement) Span() token.Span {
	return token.Span{Start: fs.Token.Span.Start, End: fs.Function.Span().End}
}
