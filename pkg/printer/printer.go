// Package printer formats a Dai program by walking the AST while replaying
// the original token stream: punctuation, literals, and comments all come
// from the TokenList rather than being re-synthesized from AST field
// values, which is what makes number/string literal round-tripping
// byte-exact "for free" and lets comments survive formatting. Grounded on
// original_source/dai/dai_fmt.c's Formatter — a StringBuffer plus an
// indent level plus "last token printed", advanced one AST node at a time.
package printer

import (
	"strings"

	"github.com/yetsing/dai/internal/ast"
	"github.com/yetsing/dai/internal/config"
	"github.com/yetsing/dai/internal/strbuf"
	"github.com/yetsing/dai/pkg/token"
)

// Printer holds the replay cursor over tokens plus the output buffer being
// built. The zero value is not usable; construct with New.
type Printer struct {
	buf    strbuf.Buffer
	indent int
	style  config.Config

	tokens  *token.List
	idx     int
	last    token.Token
	hasLast bool
}

// New constructs a Printer over tokens (the full, comment-inclusive list
// produced alongside the AST being printed), using style for indentation.
func New(tokens *token.List, style config.Config) *Printer {
	return &Printer{tokens: tokens, style: style}
}

// Format is the package entry point: render prog back to source text,
// replaying tokens for literal text and comments.
func Format(prog *ast.Program, tokens *token.List, style config.Config) string {
	p := New(tokens, style)
	p.printStatements(prog.Statements)
	p.flushTrailingComments()
	return p.buf.String()
}

func (p *Printer) indentUnit() string {
	if p.style.UseTabs {
		return "\t"
	}
	width := p.style.IndentWidth
	if width <= 0 {
		width = 2
	}
	return strings.Repeat(" ", width)
}

func (p *Printer) indentPrefix() string {
	return strings.Repeat(p.indentUnit(), p.indent)
}

func (p *Printer) openIndent()  { p.indent++ }
func (p *Printer) closeIndent() { p.indent-- }

// raw appends s verbatim, inserting the current indent prefix immediately
// after any newline already at the buffer's end — Formatter_printn's
// indent-on-line-start behaviour.
func (p *Printer) raw(s string) {
	if s == "" {
		return
	}
	if p.buf.Last() == '\n' && p.indent > 0 {
		p.buf.WriteString(p.indentPrefix())
	}
	p.buf.WriteString(s)
}

func (p *Printer) space() {
	if last := p.buf.Last(); last != ' ' && last != '\n' && last != 0 {
		p.buf.WriteByte(' ')
	}
}

func (p *Printer) endline() {
	if p.buf.Last() != '\n' {
		p.buf.WriteByte('\n')
	}
}

func (p *Printer) blankLine() {
	p.endline()
	p.buf.WriteByte('\n')
}
