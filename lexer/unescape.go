// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package lexer

import (
	"strings"
	"unicode/utf8"
)

var simpleEscapes = map[byte]string{
	'n':  "\n",
	'r':  "\r",
	'b':  "\b",
	't':  "\t",
	'f':  "\f",
	'a':  "\a",
	'v':  "\v",
	'"':  `"`,
	'\'': "'",
	'?':  "?",
	'\\': `\`,
}

// unquote strips the quotes from a string literal and resolves its escape
// sequences. The literal has already been validated by the string pattern.
func unquote(lit string) string {
	if len(lit) < 2 {
		return lit
	}
	s := lit[1 : len(lit)-1]
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		c = s[i]

		if rep, ok := simpleEscapes[c]; ok {
			sb.WriteString(rep)
			continue
		}

		switch {
		case c >= '0' && c <= '7':
			n, j := digits(s, i, 3, 8)
			sb.WriteByte(byte(n))
			i = j - 1
		case c == 'x' || c == 'X':
			n, j := digits(s, i+1, -1, 16)
			writeRune(&sb, n)
			i = j - 1
		case c == 'u' || c == 'U':
			// Either four or eight hex digits follow.
			n, j := digits(s, i+1, 8, 16)
			if j-(i+1) < 8 {
				n, j = digits(s, i+1, 4, 16)
			}
			writeRune(&sb, n)
			i = j - 1
		default:
			sb.WriteByte('\\')
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

// digits reads up to limit digits in base starting at s[i]. A negative
// limit reads as many digits as are present.
func digits(s string, i, limit, base int) (int, int) {
	n := 0
	j := i
	for j < len(s) && (limit < 0 || j-i < limit) {
		d := digitVal(s[j])
		if d < 0 || d >= base {
			break
		}
		n = n*base + d
		j++
	}
	return n, j
}

func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

func writeRune(sb *strings.Builder, n int) {
	r := rune(n)
	if n > utf8.MaxRune || !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	sb.WriteRune(r)
}
