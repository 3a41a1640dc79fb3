// Package diag implements the span-tagged diagnostic value the lexer and
// parser return on failure, grounded on dai_error.c's DaiError/DaiError_string
// and DaiError_pprint.
package diag

import (
	"fmt"
	"strings"

	"github.com/yetsing/dai/pkg/token"
)

// Kind names the category of a Diagnostic. The lexer and parser produce
// only SyntaxError; CompileError and RuntimeError are named for a
// compiler/VM collaborator, and nothing in this repository constructs
// either.
type Kind string

const (
	SyntaxError  Kind = "SyntaxError"
	CompileError Kind = "CompileError"
	RuntimeError Kind = "RuntimeError"
)

// Diagnostic is a span-tagged error value: a kind, a message, and the
// position it occurred at. Filename starts empty — it is set by the
// collaborator that owns the source file (the CLI), not by the lexer or
// parser themselves, the same division dai_error.c draws between
// DaiError_New (no filename) and DaiError_setFilename (set later by the
// caller).
type Diagnostic struct {
	Kind     Kind
	Message  string
	Filename string
	Pos      token.Position
}

// New builds a Diagnostic with no filename set yet.
func New(kind Kind, pos token.Position, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// WithFilename returns a copy of d with Filename set, leaving d unmodified.
func (d *Diagnostic) WithFilename(filename string) *Diagnostic {
	cp := *d
	cp.Filename = filename
	return &cp
}

// Error implements the error interface with the bit-exact shape required by
// the diagnostic text contract: "Kind: message in filename:line:column".
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s in %s:%d:%d", d.Kind, d.Message, d.Filename, d.Pos.Line, d.Pos.Column)
}

// Pretty renders the source line the diagnostic points at, a caret under
// the offending column, then the one-line Error() form — the Go shape of
// DaiError_pprint's "file/line/caret/message" layout.
func (d *Diagnostic) Pretty(source string) string {
	line := sourceLine(source, d.Pos.Line)
	var b strings.Builder
	fmt.Fprintf(&b, "  File %q, line %d\n", d.Filename, d.Pos.Line)
	fmt.Fprintf(&b, "    %s\n", line)
	if d.Pos.Column > 1 {
		fmt.Fprintf(&b, "    %s^--- here\n", strings.Repeat(" ", d.Pos.Column-1))
	} else {
		b.WriteString("    ^--- here\n")
	}
	fmt.Fprintf(&b, "%s\n", d.Error())
	return b.String()
}

// sourceLine returns the 1-based lineno'th line of source, without its
// trailing newline. A lineno past the end of source returns "".
func sourceLine(source string, lineno int) string {
	start := 0
	cur := 1
	for cur < lineno {
		idx := strings.IndexByte(source[start:], '\n')
		if idx < 0 {
			return ""
		}
		start += idx + 1
		cur++
	}
	end := strings.IndexByte(source[start:], '\n')
	if end < 0 {
		return source[start:]
	}
	return source[start : start+end]
}
