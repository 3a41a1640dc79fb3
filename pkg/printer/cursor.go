package printer

import "github.com/yetsing/dai/pkg/token"

// advanceTo scans the raw token list forward from the cursor until it finds
// target (matched by start position — tokens are produced in strictly
// increasing span order, so a linear scan from the last position found is
// enough), printing any comment tokens encountered along the way, then
// prints target's own literal text and leaves the cursor just past it.
//
// This is the Go shape of Formatter_print_token_with_comment /
// Formatter_print_next_token_with_comment: those print exactly one token
// plus its immediately-following same-line comment; here, locating that
// token by scanning is the price of the AST holding Token values instead of
// raw indices into the list.
func (p *Printer) advanceTo(target token.Token) {
	for p.idx < p.tokens.Len() {
		t := p.tokens.Get(p.idx)
		if t.Type != token.Comment && t.Start() == target.Start() {
			p.idx++
			p.printLexeme(t)
			return
		}
		p.idx++
		if t.Type == token.Comment {
			p.printComment(t)
		}
	}
	// target never found in the list (synthetic node, e.g. EOF-adjacent);
	// fall back to printing its own literal without comment interleaving.
	p.printLexeme(target)
}

// printLexeme writes one non-comment token's literal text, tracking it as
// the most recently printed token for same-line-comment and blank-line
// decisions.
func (p *Printer) printLexeme(t token.Token) {
	p.raw(t.Literal)
	p.last = t
	p.hasLast = true
}

// printComment prints a comment encountered between two real tokens. A
// comment starting on the same line as the last printed token is a
// trailing comment ("x;  // note"); anything else is a leading comment on
// its own line, with at most one blank line preserved from the source gap,
// mirroring Formatter_print_statement_leading's collapsing of runs of
// blank lines down to one.
func (p *Printer) printComment(c token.Token) {
	switch {
	case !p.hasLast:
		// leading comment before the first token of the file
	case c.Start().Line == p.last.End().Line:
		// trailing comment on the same line as the last token: always
		// exactly two literal spaces, not space()'s idempotent one —
		// mirrors Formatter_print_comments' unconditional Formatter_print(formatter, "  ").
		p.raw("  ")
	default:
		p.endline()
		if c.Start().Line > p.last.End().Line+1 {
			p.buf.WriteByte('\n')
		}
	}
	p.raw(c.Literal)
	p.endline()
	p.last = c
	p.hasLast = true
}

// drainTrailingComment prints a comment immediately following the last
// printed token IF it starts on that same source line — "x;  // note" —
// consuming it from the cursor. It does nothing (and consumes nothing) for
// a comment that starts on a later line: that one is a leading comment for
// whatever prints next, and advanceTo will pick it up when it scans past it.
func (p *Printer) drainTrailingComment() {
	for p.idx < p.tokens.Len() {
		t := p.tokens.Get(p.idx)
		if t.Type != token.Comment {
			return
		}
		if p.hasLast && t.Start().Line != p.last.End().Line {
			return
		}
		p.idx++
		p.printComment(t)
	}
}

// afterStatement closes out one statement/declaration: drain a trailing
// same-line comment if there is one, then guarantee the buffer ends on a
// fresh line for whatever comes next.
func (p *Printer) afterStatement() {
	p.drainTrailingComment()
	p.endline()
}

// flushTrailingComments prints any comments left in the list after the
// last AST token has been replayed (end-of-file trailing comments).
func (p *Printer) flushTrailingComments() {
	for p.idx < p.tokens.Len() {
		t := p.tokens.Get(p.idx)
		p.idx++
		if t.Type == token.Comment {
			p.printComment(t)
		}
	}
}
