// Package utf8util decodes UTF-8 code points the way the lexer needs them
// and classifies which ones may start or continue an identifier.
//
// The grounding implementation (dai_codecs.c's dai_utf8_decode) hand-rolls
// decoding up to 6-byte sequences and rejects overlong encodings by
// checking the decoded rune against the minimum value for its byte width.
// Go's utf8.DecodeRuneInString already performs that exact validation (and
// Go strings cap out at 4-byte sequences, matching valid Unicode), so this
// package is a thin, spec-shaped wrapper over the standard library rather
// than a reimplementation — there is no third-party decoder in the example
// pack that does this any better, and rolling a second one by hand would
// just reintroduce the overlong-encoding bugs the standard library already
// closed.
package utf8util

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// Decode reads one code point from s. It returns (RuneError, 0) if s is
// empty or begins with an invalid UTF-8 sequence, mirroring
// dai_utf8_decode's -1 return.
func Decode(s string) (r rune, size int) {
	if len(s) == 0 {
		return utf8.RuneError, 0
	}
	r, size = utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return utf8.RuneError, 0
	}
	return r, size
}

// CodepointCount returns the number of code points in s.
func CodepointCount(s string) int {
	return utf8.RuneCountInString(s)
}

// identifierDigits covers the non-ASCII digit blocks that may continue
// (but never start) an identifier.
var identifierDigits = rangetable.Merge(
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x0660, Hi: 0x0669, Stride: 1}}}, // Arabic-Indic digits
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x06F0, Hi: 0x06F9, Stride: 1}}}, // Extended Arabic-Indic digits
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x07C0, Hi: 0x07C9, Stride: 1}}}, // NKo digits
	&unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x0966, Hi: 0x096F, Stride: 1}}}, // Devanagari digits
)

// identifierLetters is the merged range table of every Unicode block a
// letter-class identifier character may come from, minus the two
// Latin-1 punctuation gaps (× U+00D7 and ÷ U+00F7) that sit inside the
// Latin-1 letter range but are not letters.
var identifierLetters = rangetable.Merge(
	unicode.Latin,
	unicode.Greek,
	unicode.Cyrillic,
	unicode.Han,
	unicode.Hiragana,
	unicode.Katakana,
)

const (
	times  = 0x00D7 // ×
	divide = 0x00F7 // ÷
)

// IsIdentifierStart reports whether cp may begin an identifier: ASCII
// letters, underscore, or one of the classified non-ASCII letter blocks.
func IsIdentifierStart(cp rune) bool {
	switch {
	case cp == '_':
		return true
	case cp >= 'a' && cp <= 'z', cp >= 'A' && cp <= 'Z':
		return true
	case cp == times || cp == divide:
		return false
	case cp < 0x80:
		return false
	default:
		return unicode.Is(identifierLetters, cp)
	}
}

// IsIdentifierContinue reports whether cp may continue an identifier that
// has already started: everything IsIdentifierStart accepts, plus ASCII
// digits and the non-ASCII digit blocks named in the component design.
func IsIdentifierContinue(cp rune) bool {
	if cp >= '0' && cp <= '9' {
		return true
	}
	if IsIdentifierStart(cp) {
		return true
	}
	return unicode.Is(identifierDigits, cp)
}
