package xkb

import (
	"fmt"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokWord
	tokKeyName
	tokString
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	line int
}

func (t token) is(kind tokenKind, text string) bool {
	return t.kind == kind && t.text == text
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokKeyName:
		return "<" + t.text + ">"
	default:
		return fmt.Sprintf("%q", t.text)
	}
}

// ParseError reports a malformed keymap.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("xkb: line %d: %s", e.Line, e.Msg)
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// lex splits keymap source into tokens, dropping comments and whitespace.
func lex(src []byte) ([]token, error) {
	var toks []token
	line := 1
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\n':
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == 0:
			i++
		case c == '#' || c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			start := line
			i += 2
			for ; i < len(src) && !(src[i] == '*' && i+1 < len(src) && src[i+1] == '/'); i++ {
				if src[i] == '\n' {
					line++
				}
			}
			if i >= len(src) {
				return nil, &ParseError{Line: start, Msg: "unterminated comment"}
			}
			i += 2
		case c == '<':
			j := i + 1
			for j < len(src) && src[j] != '>' && src[j] != '\n' {
				j++
			}
			if j >= len(src) || src[j] != '>' {
				return nil, &ParseError{Line: line, Msg: "unterminated key name"}
			}
			toks = append(toks, token{kind: tokKeyName, text: string(src[i+1 : j]), line: line})
			i = j + 1
		case c == '"':
			var sb []byte
			j := i + 1
			for ; j < len(src) && src[j] != '"'; j++ {
				if src[j] == '\n' {
					return nil, &ParseError{Line: line, Msg: "newline in string"}
				}
				if src[j] == '\\' && j+1 < len(src) {
					j++
				}
				sb = append(sb, src[j])
			}
			if j >= len(src) {
				return nil, &ParseError{Line: line, Msg: "unterminated string"}
			}
			toks = append(toks, token{kind: tokString, text: string(sb), line: line})
			i = j + 1
		case isWordByte(c):
			j := i
			for j < len(src) && isWordByte(src[j]) {
				j++
			}
			toks = append(toks, token{kind: tokWord, text: string(src[i:j]), line: line})
			i = j
		default:
			toks = append(toks, token{kind: tokPunct, text: string(c), line: line})
			i++
		}
	}
	toks = append(toks, token{kind: tokEOF, line: line})
	return toks, nil
}
