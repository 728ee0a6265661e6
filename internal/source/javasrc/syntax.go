package javasrc

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/Alia5/beangen/internal/diag"
)

// SyntaxError is returned for input the parser cannot follow.
type SyntaxError struct {
	Pos diag.Position
	Msg string
}

func (e *SyntaxError) Error() string { return e.Pos.String() + ": " + e.Msg }

// pos returns the 1-based position of n, counting columns in characters.
func (p *parser) pos(n *sitter.Node) diag.Position {
	start := int(n.StartByte())
	lineStart := bytes.LastIndexByte(p.src[:start], '\n') + 1
	return diag.Position{
		File:   p.file,
		Line:   int(n.StartPoint().Row) + 1,
		Column: utf8.RuneCount(p.src[lineStart:start]) + 1,
	}
}

func (p *parser) syntaxError(n *sitter.Node) *SyntaxError {
	var msg string
	switch text := firstLine(p.text(n)); {
	case n.IsMissing():
		msg = fmt.Sprintf("missing %q", n.Type())
	case text == "":
		msg = "unexpected end of file"
	default:
		msg = fmt.Sprintf("syntax error near %q", text)
	}
	return &SyntaxError{Pos: p.pos(n), Msg: msg}
}

// errorNode returns the first node below n that the grammar could not
// place. Inside an error node the leading children that parsed cleanly are
// skipped, so the position points at the offending token.
func errorNode(n *sitter.Node) *sitter.Node {
	if n.IsMissing() {
		return n
	}
	if n.IsError() {
		for i := 0; i < int(n.ChildCount()); i++ {
			c := n.Child(i)
			if c.IsNamed() && !c.HasError() {
				continue
			}
			if e := errorNode(c); e != nil {
				return e
			}
			return c
		}
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if e := errorNode(n.Child(i)); e != nil {
			return e
		}
	}
	return n
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	if r := []rune(s); len(r) > 20 {
		s = string(r[:20])
	}
	return strings.TrimSpace(s)
}

// compact normalizes source text of a type or expression: whitespace and
// comments go, except a single space between words and after commas.
func compact(s string) string {
	var b strings.Builder
	var last byte
	space := false
	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], "//"):
			j := strings.IndexByte(s[i:], '\n')
			if j < 0 {
				j = len(s) - i
			}
			i += j
			space = true
			continue
		case strings.HasPrefix(s[i:], "/*"):
			j := strings.Index(s[i+2:], "*/")
			if j < 0 {
				j = len(s) - i - 4
			}
			i += j + 4
			space = true
			continue
		}
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' {
			space = true
			i++
			continue
		}
		if last == ',' || space && isWordByte(last) && isWordByte(c) {
			b.WriteByte(' ')
		}
		space = false
		last = c
		b.WriteByte(c)
		i++
	}
	return b.String()
}

func isWordByte(c byte) bool {
	return c == '_' || c == '$' || c == '?' || c == '@' || c == '"' || c == '\'' ||
		'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c >= utf8.RuneSelf
}

// docText strips the comment delimiters and the leading "*" of each line,
// keeping the text after it as written.
func docText(raw string) string {
	body := strings.TrimSuffix(strings.TrimPrefix(raw, "/**"), "*/")
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		l = strings.TrimRight(l, "\r")
		if i > 0 {
			l = strings.TrimLeft(l, " \t")
			l = strings.TrimLeft(l, "*")
		}
		lines[i] = strings.TrimRight(l, " \t")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
