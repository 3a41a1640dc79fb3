package lexer

import (
	"github.com/yetsing/dai/internal/utf8util"
	"github.com/yetsing/dai/pkg/token"
)

// scanNumber scans an integer or float literal starting at l.ch (already
// known to be a decimal digit). Grounded on original_source/src/dai_parseint.c's
// digit-validity and base-prefix rules, and on spec.md's leading-zero and
// underscore-placement rules, which that C file no longer enforces itself
// (its dai_underscore_ok helper is dead code there — the check moved to the
// tokenizer, which is why it lives here and nowhere else in this module).
func (l *Lexer) scanNumber() (token.Token, bool) {
	if l.ch == '0' {
		switch l.peekChar() {
		case 'b', 'B':
			return l.scanPrefixedInt(isBinDigit, "binary")
		case 'o', 'O':
			return l.scanPrefixedInt(isOctDigit, "octal")
		case 'x', 'X':
			return l.scanPrefixedInt(isHexDigit, "hexadecimal")
		}
	}

	if !l.scanDigitRun(isDecDigit) {
		return l.illegalNumber()
	}
	intLen := l.position - l.markPos
	if intLen >= 2 && l.input[l.markPos] == '0' {
		l.fail("leading zeros in decimal integer literals are not permitted")
		return l.illegalNumber()
	}

	isFloat := false
	if l.ch == '.' && isDecDigit(l.peekChar()) {
		isFloat = true
		l.readChar() // consume '.'
		if !l.scanDigitRun(isDecDigit) {
			return l.illegalNumber()
		}
		if l.ch == 'e' || l.ch == 'E' {
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			if !l.scanDigitRun(isDecDigit) {
				return l.illegalNumber()
			}
		}
	}

	lit := l.input[l.markPos:l.position]
	typ := token.Int
	if isFloat {
		typ = token.Float
	}
	return token.Token{Type: typ, Literal: lit, Span: l.span()}, false
}

func (l *Lexer) scanPrefixedInt(isDigit func(rune) bool, name string) (token.Token, bool) {
	l.readChar() // '0'
	l.readChar() // b/o/x
	if !l.scanDigitRun(isDigit) {
		l.fail("invalid number")
		return l.illegalNumber()
	}
	// A digit or letter immediately following the valid run (no separator)
	// means the literal's tail doesn't belong to this base — e.g. the "2" in
	// "0b12". Surface that as one malformed literal instead of silently
	// splitting it into two tokens.
	if isDecDigit(l.ch) || utf8util.IsIdentifierContinue(l.ch) {
		l.fail("invalid number")
		return l.illegalNumber()
	}
	lit := l.input[l.markPos:l.position]
	return token.Token{Type: token.Int, Literal: lit, Span: l.span()}, false
}

// scanDigitRun consumes a run of isDigit-valid digits, allowing single
// underscores strictly between two digits. It requires at least one digit
// and reports false (via l.fail, already invoked) on any violation:
// leading/trailing/doubled underscore, or an invalid character where a
// digit was expected.
func (l *Lexer) scanDigitRun(isDigit func(rune) bool) bool {
	if !isDigit(l.ch) {
		l.fail("invalid number")
		return false
	}
	l.readChar()
	for {
		if isDigit(l.ch) {
			l.readChar()
			continue
		}
		if l.ch == '_' {
			if !isDigit(l.peekChar()) {
				l.fail("invalid number")
				return false
			}
			l.readChar() // consume '_'
			l.readChar() // consume the digit guaranteed above
			continue
		}
		return true
	}
}

func (l *Lexer) illegalNumber() (token.Token, bool) {
	for isDecDigit(l.ch) || utf8util.IsIdentifierContinue(l.ch) || l.ch == '.' || l.ch == '_' {
		l.readChar()
	}
	return token.Token{Type: token.Illegal, Literal: l.input[l.markPos:l.position], Span: l.span()}, true
}

func isBinDigit(r rune) bool { return r == '0' || r == '1' }
func isOctDigit(r rune) bool { return r >= '0' && r <= '7' }
func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
