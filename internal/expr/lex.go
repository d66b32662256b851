package expr

import (
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number such as 12, 1.5, .5 or 5.
	tokenNum
	// tokenOp is one of + - * / % **.
	tokenOp
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	}
	return "None"
}

type token struct {
	text string
	kind tokenKind
	// col is the 1-based column of the first character.
	col int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.col)
}

// lexer splits an expression that has already passed the character
// whitelist, so it only ever sees ASCII.
type lexer struct {
	src string
	pos int
}

func newLexer(src string) *lexer {
	return &lexer{src: src}
}

// next scans the next token. After the end of input it keeps returning EOF.
func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && l.src[l.pos] == ' ' {
		l.pos++
	}
	tok := token{col: l.pos + 1}
	if l.pos >= len(l.src) {
		tok.kind = tokenEOF
		return tok, nil
	}

	c := l.src[l.pos]
	switch {
	case isDigit(c) || c == '.':
		return l.scanNum()
	case c == '(':
		tok.kind, tok.text = tokenOpen, "("
	case c == ')':
		tok.kind, tok.text = tokenClose, ")"
	case c == '*' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '*':
		l.pos += 2
		return token{kind: tokenOp, text: "**", col: tok.col}, nil
	case c == '+', c == '-', c == '*', c == '/', c == '%':
		tok.kind, tok.text = tokenOp, string(c)
	default:
		return tok, invalid(l.src, tok.col, "unexpected character "+strconv.QuoteRune(rune(c)))
	}
	l.pos++
	return tok, nil
}

func (l *lexer) scanNum() (token, error) {
	start := l.pos
	var dig, dot bool
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '.' {
			if dot {
				return token{}, invalid(l.src, l.pos+1, "malformed number "+strconv.Quote(l.src[start:l.pos+1]))
			}
			dot = true
		} else if isDigit(c) {
			dig = true
		} else {
			break
		}
		l.pos++
	}
	text := l.src[start:l.pos]
	if !dig {
		return token{}, invalid(l.src, start+1, "malformed number "+strconv.Quote(text))
	}
	// An integer may only start with 0 when it is all zeros, so "007" is
	// rejected while "0", "000" and "00.5" are fine.
	if !dot && text[0] == '0' && strings.Trim(text, "0") != "" {
		return token{}, invalid(l.src, start+1, "leading zeros are not allowed in "+strconv.Quote(text))
	}
	return token{kind: tokenNum, text: text, col: start + 1}, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
