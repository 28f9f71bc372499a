package cmdgif

import (
	"path/filepath"
	"strings"
)

// shellPattern rewrites a shell-style glob into the dialect understood by
// filepath.Match. A '[' without a closing ']' is a literal character, '!'
// negates a class, and a backslash has no special meaning. The result is
// always a valid filepath.Match pattern.
func shellPattern(p string) string {
	var b strings.Builder
	for i := 0; i < len(p); i++ {
		switch c := p[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '[':
			end := classEnd(p, i)
			if end < 0 {
				b.WriteString(`\[`)
				continue
			}
			b.WriteString(class(p[i+1 : end]))
			i = end
		default:
			b.WriteByte(c)
		}
	}
	out := b.String()
	if _, err := filepath.Match(out, ""); err != nil {
		return literalPattern(p)
	}
	return out
}

// classEnd returns the index of the ']' closing the class opened at i, or
// -1. A ']' right after the opening '[' or '[!' belongs to the class.
func classEnd(p string, i int) int {
	j := i + 1
	if j < len(p) && p[j] == '!' {
		j++
	}
	if j < len(p) && p[j] == ']' {
		j++
	}
	if k := strings.IndexByte(p[j:], ']'); k >= 0 {
		return j + k
	}
	return -1
}

// class translates the body of a bracket expression.
func class(body string) string {
	if body == "!" {
		return "?"
	}
	var b strings.Builder
	b.WriteByte('[')
	if strings.HasPrefix(body, "!") {
		b.WriteByte('^')
		body = body[1:]
	}
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\\' || c == ']' || c == '^' && i == 0:
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '-' && (i == 0 || i == len(body)-1):
			b.WriteString(`\-`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// literalPattern keeps the leading '*' and matches the rest verbatim.
func literalPattern(p string) string {
	var b strings.Builder
	for i := 0; i < len(p); i++ {
		c := p[i]
		if i > 0 || c != '*' {
			if strings.IndexByte(`*?[\`, c) >= 0 {
				b.WriteByte('\\')
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}
