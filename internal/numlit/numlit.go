// Package numlit parses based-integer literal strings into int64, grounded
// directly on dai_parseint.c's dai_parseuint/dai_parseint (itself modeled on
// Go's strconv.ParseUint/ParseInt — the original's own comment points at
// src/strconv/atoi.go).
package numlit

import "fmt"

// digitTable maps an ASCII byte to its digit value in base <= 36, or 255 if
// the byte is not a valid digit in any base. Ports dai_parseint.c's `table`.
var digitTable = [256]byte{}

func init() {
	for i := range digitTable {
		digitTable[i] = 255
	}
	for d := byte(0); d <= 9; d++ {
		digitTable['0'+d] = d
	}
	for d := byte(0); d <= 25; d++ {
		digitTable['a'+d] = d + 10
		digitTable['A'+d] = d + 10
	}
}

// ParseError is returned for any of the fixed error strings the diagnostic
// contract requires verbatim: "empty string", "invalid base", "invalid base
// prefix", "invalid character in number", "integer overflow".
type ParseError struct{ msg string }

func (e *ParseError) Error() string { return e.msg }

func parseErr(msg string) error { return &ParseError{msg: msg} }

// ParseUint parses str (no sign prefix) in the given base (2..36) to a
// uint64, detecting overflow with a precomputed cutoff exactly as
// dai_parseuint does: `n >= cutoff` before the multiply forbids it, and the
// post-add result is checked for wraparound.
func ParseUint(str string, base int) (uint64, error) {
	if base < 2 || base > 36 {
		return 0, parseErr("invalid base")
	}
	if len(str) == 0 {
		return 0, parseErr("empty string")
	}
	if len(str) == 1 {
		d := digitTable[str[0]]
		if int(d) >= base {
			return 0, parseErr("invalid character in number")
		}
		return uint64(d), nil
	}

	if str[0] == '0' {
		var base0 int
		switch base {
		case 2:
			if len(str) >= 3 && (str[1] == 'b' || str[1] == 'B') {
				base0 = 2
			}
			str = str[2:]
		case 8:
			if len(str) >= 3 && (str[1] == 'o' || str[1] == 'O') {
				base0 = 8
			}
			str = str[2:]
		case 16:
			if len(str) >= 3 && (str[1] == 'x' || str[1] == 'X') {
				base0 = 16
			}
			str = str[2:]
		}
		if base0 == 0 || base0 != base {
			return 0, parseErr("invalid base prefix")
		}
	}

	var cutoff uint64
	switch base {
	case 10:
		cutoff = ^uint64(0)/10 + 1
	case 16:
		cutoff = ^uint64(0)/16 + 1
	default:
		cutoff = ^uint64(0)/uint64(base) + 1
	}

	var n uint64
	for i := 0; i < len(str); i++ {
		c := str[i]
		if c == '_' {
			continue
		}
		d := digitTable[c]
		if int(d) >= base {
			return 0, parseErr("invalid character in number")
		}
		if n >= cutoff {
			return 0, parseErr("integer overflow")
		}
		n *= uint64(base)
		n1 := n + uint64(d)
		if n1 < n {
			return 0, parseErr("integer overflow")
		}
		n = n1
	}
	return n, nil
}

// ParseInt layers signed parsing over ParseUint: an optional leading '+' or
// '-', then the same unsigned scan, with the asymmetric int64 overflow
// bound (|INT64_MIN| admits one more magnitude than INT64_MAX).
func ParseInt(str string, base int) (int64, error) {
	if base < 2 || base > 36 {
		return 0, parseErr("invalid base")
	}
	neg := false
	switch {
	case len(str) > 0 && str[0] == '+':
		str = str[1:]
	case len(str) > 0 && str[0] == '-':
		str = str[1:]
		neg = true
	}

	un, err := ParseUint(str, base)
	if err != nil {
		return 0, err
	}

	const maxInt64 = uint64(1<<63 - 1)
	if !neg && un > maxInt64 {
		return 0, parseErr("integer overflow")
	}
	if neg && un > maxInt64+1 {
		return 0, parseErr("integer overflow")
	}

	n := int64(un)
	if neg {
		n = -n
	}
	return n, nil
}

// MustParseInt parses str and panics on error; used only where the lexer has
// already validated the literal's shape so failure would indicate an
// internal inconsistency, not bad user input.
func MustParseInt(str string, base int) int64 {
	n, err := ParseInt(str, base)
	if err != nil {
		panic(fmt.Sprintf("numlit: unexpected parse failure for %q base %d: %v", str, base, err))
	}
	return n
}
