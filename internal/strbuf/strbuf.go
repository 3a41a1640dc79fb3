// Package strbuf provides the growable, typed-append buffer the printer
// builds its output in, grounded on dai_stringbuffer.c's
// DaiStringBuffer. Go's strings.Builder already grows geometrically and
// exposes WriteString/WriteByte; Buffer wraps it instead of hand-rolling
// DaiStringBuffer_grow1's doubling, and adds the handful of typed-append
// helpers (Int, Line-prefixed write) the C buffer offered as named
// functions.
package strbuf

import (
	"strconv"
	"strings"
)

// Buffer is a growable byte buffer with typed append operations.
type Buffer struct {
	b strings.Builder
}

// WriteString appends s.
func (buf *Buffer) WriteString(s string) { buf.b.WriteString(s) }

// WriteByte appends a single byte.
func (buf *Buffer) WriteByte(c byte) { buf.b.WriteByte(c) }

// WriteInt appends the base-10 rendering of n.
func (buf *Buffer) WriteInt(n int) { buf.b.WriteString(strconv.Itoa(n)) }

// WriteWithLinePrefix writes s with prefix inserted before every line,
// mirroring DaiStringBuffer_writeWithLinePrefix's per-line indentation
// behaviour. No package in this module calls it.
func (buf *Buffer) WriteWithLinePrefix(s, prefix string) {
	lines := strings.Split(s, "\n")
	endsWithNewline := strings.HasSuffix(s, "\n")
	if endsWithNewline {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		if i > 0 {
			buf.b.WriteByte('\n')
		}
		buf.b.WriteString(prefix)
		buf.b.WriteString(line)
	}
	if endsWithNewline {
		buf.b.WriteByte('\n')
	}
}

// Last returns the final byte written, or 0 if the buffer is empty.
func (buf *Buffer) Last() byte {
	s := buf.b.String()
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Len returns the number of bytes written so far.
func (buf *Buffer) Len() int { return buf.b.Len() }

// String returns the accumulated contents.
func (buf *Buffer) String() string { return buf.b.String() }
