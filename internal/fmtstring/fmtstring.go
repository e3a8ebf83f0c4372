// Package fmtstring implements the compile-time parser for frst's format
// strings: "${name}" placeholders with "$$"/"\$" escapes (spec.md §4.G,
// component G). Parsing happens once, at AST-construction time, producing a
// fixed sequence of Literal/Placeholder segments that Format_String and
// mformat replay against a symbol table or a Map at evaluation time.
package fmtstring

import (
	"strings"

	"github.com/cwbudde/frst/internal/langerr"
)

// Segment is one piece of a parsed format string: either literal text or a
// placeholder naming a variable to substitute.
type Segment struct {
	Literal     string
	Placeholder string // empty when this segment is literal text
	IsPlaceholder bool
}

// isIdentStart / isIdentCont classify the identifier grammar a placeholder's
// content must match: [A-Za-z_][A-Za-z0-9_]*.
func isIdentStart(r byte) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentCont(r byte) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func isValidIdentifier(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentCont(s[i]) {
			return false
		}
	}
	return true
}

// Parse scans src left-to-right per spec.md §4.G's grammar:
//   - An unescaped '$' followed by '{' introduces a placeholder, continuing
//     to the next '}'. Missing '}' -> unrecoverable "Unterminated format
//     placeholder".
//   - Placeholder content must match the identifier grammar, and must be
//     non-empty; otherwise unrecoverable, with the content echoed.
//   - "$$" is an escaped dollar and emits a single literal '$'.
//   - Any other '$' not followed by '{' is literal.
//   - A backslash preceding '$' escapes it: an even run of backslashes
//     leaves '$' active, an odd run escapes it. Backslashes outside of an
//     escape sequence are preserved literally.
func Parse(src string) ([]Segment, error) {
	var segs []Segment
	var lit strings.Builder

	flushLiteral := func() {
		if lit.Len() > 0 {
			segs = append(segs, Segment{Literal: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(src) {
		c := src[i]
		if c == '\\' {
			// Backslashes pair up: each adjacent pair collapses to one
			// literal backslash. A leftover (odd) backslash either escapes
			// a following '$' or, absent one, is emitted as itself.
			j := i
			for j < len(src) && src[j] == '\\' {
				j++
			}
			runLen := j - i
			pairs, leftover := runLen/2, runLen%2
			lit.WriteString(strings.Repeat(`\`, pairs))
			if leftover == 1 {
				if j < len(src) && src[j] == '$' {
					lit.WriteByte('$')
					i = j + 1
					continue
				}
				lit.WriteByte('\\')
			}
			i = j
			continue
		}
		if c == '$' {
			if i+1 < len(src) && src[i+1] == '{' {
				end := strings.IndexByte(src[i+2:], '}')
				if end < 0 {
					return nil, langerr.Unrecoverable("Unterminated format placeholder")
				}
				name := src[i+2 : i+2+end]
				if !isValidIdentifier(name) {
					return nil, langerr.Unrecoverable("Invalid format placeholder: %q", name)
				}
				flushLiteral()
				segs = append(segs, Segment{Placeholder: name, IsPlaceholder: true})
				i = i + 2 + end + 1
				continue
			}
			if i+1 < len(src) && src[i+1] == '$' {
				lit.WriteByte('$')
				i += 2
				continue
			}
			lit.WriteByte('$')
			i++
			continue
		}
		lit.WriteByte(c)
		i++
	}
	flushLiteral()
	return segs, nil
}
