package token

// List is an append-only, randomly indexable sequence of tokens produced by
// the lexer. Reading past the end with Next returns the final token (which the
// lexer guarantees is EOF): callers never need a separate "exhausted" check.
type List struct {
	tokens []Token
	cursor int
}

// NewList returns an empty List ready to receive tokens via Append.
func NewList() *List {
	return &List{tokens: make([]Token, 0, 64)}
}

// Append adds t as the last token.
func (l *List) Append(t Token) {
	l.tokens = append(l.tokens, t)
}

// Len returns the number of tokens appended so far.
func (l *List) Len() int { return len(l.tokens) }

// Get returns the token at absolute index i. It panics if i is out of
// range; callers (the formatter) only ever index positions they know exist.
func (l *List) Get(i int) Token { return l.tokens[i] }

// Next returns the token at the current read cursor and advances it. Once
// the cursor reaches the end it stays there and every subsequent call
// returns the last token — idempotent tail, matching the grounding
// implementation's "index >= length" clamp.
func (l *List) Next() Token {
	if len(l.tokens) == 0 {
		return Token{Type: EOF}
	}
	if l.cursor >= len(l.tokens) {
		return l.tokens[len(l.tokens)-1]
	}
	t := l.tokens[l.cursor]
	l.cursor++
	return t
}

// CurrentIndex returns the absolute index of the token most recently
// returned by Next, or -1 if Next has never been called.
func (l *List) CurrentIndex() int { return l.cursor - 1 }
