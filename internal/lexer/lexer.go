// Package lexer implements the Dai tokenizer: a single-pass, one-rune
// lookahead state machine that turns a UTF-8 source buffer into a
// token.List. Grounded structurally on the teacher's internal/lexer
// (readChar/peekChar/mark idiom, functional-options constructor,
// dispatch-table operator handling) and semantically on
// original_source/src/dai_tokenize.c, whose read_char/mark/autos table this
// package follows byte-for-byte where the two disagree on detail.
package lexer

import (
	"unicode/utf8"

	"github.com/yetsing/dai/internal/diag"
	"github.com/yetsing/dai/internal/utf8util"
	"github.com/yetsing/dai/pkg/token"
)

// Lexer scans Dai source text into a token.List. The zero value is not
// usable; construct with New.
type Lexer struct {
	input string

	position     int // byte offset of ch
	readPosition int // byte offset of the rune after ch
	ch           rune

	line, column int // position of ch (1-based)

	markPos           int
	markLine, markCol int

	tracing bool
	trace   func(token.Token)

	list *token.List
	err  *diag.Diagnostic
}

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithTracing enables per-token trace callbacks (wired to structured
// logging by the caller; see internal/dailog).
func WithTracing(trace func(token.Token)) Option {
	return func(l *Lexer) {
		l.tracing = trace != nil
		l.trace = trace
	}
}

// New constructs a Lexer over input, ready to Tokenize.
func New(input string, opts ...Option) *Lexer {
	l := &Lexer{input: input, line: 1, list: token.NewList()}
	for _, opt := range opts {
		opt(l)
	}
	l.readChar()
	return l
}

// Tokenize scans the entire input and returns the resulting TokenList. On
// the first lexical error, an Illegal token is appended for the offending
// text, the diagnostic is returned, and scanning stops — the first lexical
// error is fatal to the whole file, per the error-handling design.
// Tokenize is total: on error the returned list still holds every token
// scanned up to and including the illegal one, and always ends in EOF.
func Tokenize(input string, opts ...Option) (*token.List, *diag.Diagnostic) {
	l := New(input, opts...)
	return l.run()
}

func (l *Lexer) run() (*token.List, *diag.Diagnostic) {
	for {
		tok, stop := l.scanOne()
		l.emit(tok)
		if stop {
			break
		}
		if tok.Type == token.EOF {
			break
		}
	}
	if l.err != nil {
		l.mark()
		l.emit(token.Token{Type: token.EOF, Literal: "", Span: l.span()})
	}
	return l.list, l.err
}

func (l *Lexer) emit(t token.Token) {
	l.list.Append(t)
	if l.tracing {
		l.trace(t)
	}
}

func (l *Lexer) pos() token.Position { return token.Position{Line: l.line, Column: l.column} }

func (l *Lexer) mark() {
	l.markPos, l.markLine, l.markCol = l.position, l.line, l.column
}

func (l *Lexer) span() token.Span {
	return token.Span{Start: token.Position{Line: l.markLine, Column: l.markCol}, End: l.pos()}
}

// readChar advances to the next rune, updating line/column. Mirrors
// dai_tokenize.c's Tokenizer_read_char: the newline-triggered line bump
// happens on the character *after* the newline, based on the rune that was
// current before this call.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.column++
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	if r == utf8.RuneError && size <= 1 {
		l.ch = utf8.RuneError
		l.position = l.readPosition
		l.column++
		l.fail("invalid utf8 encoding character")
		return
	}
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) fail(format string, args ...any) {
	if l.err != nil {
		return
	}
	l.err = diag.New(diag.SyntaxError, token.Position{Line: l.markLine, Column: l.markCol}, format, args...)
}

// scanOne scans and returns the next token. stop is true when this is the
// last token the caller should emit (an Illegal token following a fatal
// error, or EOF).
func (l *Lexer) scanOne() (token.Token, bool) {
	l.skipWhitespace()
	l.mark()

	if l.err != nil {
		return token.Token{Type: token.Illegal, Literal: "", Span: l.span()}, true
	}

	switch {
	case l.ch == 0:
		return token.Token{Type: token.EOF, Literal: "", Span: l.span()}, false
	case l.ch == '/' && l.peekChar() == '/':
		return l.scanLineComment("//"), false
	case l.ch == '#':
		return l.scanLineComment("#"), false
	case l.ch == '"' || l.ch == '\'' || l.ch == '`':
		return l.scanString()
	case isDecDigit(l.ch):
		return l.scanNumber()
	case utf8util.IsIdentifierStart(l.ch):
		return l.scanIdentifier(), false
	default:
		return l.scanOperator()
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

func (l *Lexer) scanLineComment(prefix string) token.Token {
	for i := 0; i < len(prefix); i++ {
		l.readChar()
	}
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	return token.Token{Type: token.Comment, Literal: l.input[l.markPos:l.position], Span: l.span()}
}

func (l *Lexer) scanIdentifier() token.Token {
	for utf8util.IsIdentifierContinue(l.ch) {
		l.readChar()
	}
	lit := l.input[l.markPos:l.position]
	return token.Token{Type: token.LookupIdent(lit), Literal: lit, Span: l.span()}
}

// operatorBytes lists every byte the fast path recognizes, matching
// dai_tokenize.c's single-byte dispatch set.
const operatorBytes = "=+-!*/%<>.,;:(){}[]&|~^"

func (l *Lexer) scanOperator() (token.Token, bool) {
	ch := l.ch
	var ok bool
	for i := 0; i < len(operatorBytes); i++ {
		if rune(operatorBytes[i]) == ch {
			ok = true
			break
		}
	}
	if !ok {
		l.readChar()
		l.fail("illegal character '%c'", ch)
		return token.Token{Type: token.Illegal, Literal: string(ch), Span: l.span()}, true
	}

	first := ch
	l.readChar()
	lit := string(first)

	if two, has := twoCharOp(first, l.ch); has {
		lit = two
		l.readChar()
	}

	return token.Token{Type: token.AutoConvert(lit), Literal: lit, Span: l.span()}, false
}

func twoCharOp(first, second rune) (string, bool) {
	switch {
	case first == '=' && second == '=':
		return "==", true
	case first == '!' && second == '=':
		return "!=", true
	case first == '<' && second == '=':
		return "<=", true
	case first == '>' && second == '=':
		return ">=", true
	case first == '<' && second == '<':
		return "<<", true
	case first == '>' && second == '>':
		return ">>", true
	case first == '+' && second == '=':
		return "+=", true
	case first == '-' && second == '=':
		return "-=", true
	case first == '*' && second == '=':
		return "*=", true
	case first == '/' && second == '=':
		return "/=", true
	default:
		return "", false
	}
}

func isDecDigit(r rune) bool { return r >= '0' && r <= '9' }
