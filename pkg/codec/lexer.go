package codec

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenIllegal
	tokenLBrace
	tokenRBrace
	tokenLBracket
	tokenRBracket
	tokenColon
	tokenComma
	tokenString
	tokenNumber
	tokenTrue
	tokenFalse
	tokenNull
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "end of input"
	case tokenIllegal:
		return "illegal token"
	case tokenLBrace:
		return "'{'"
	case tokenRBrace:
		return "'}'"
	case tokenLBracket:
		return "'['"
	case tokenRBracket:
		return "']'"
	case tokenColon:
		return "':'"
	case tokenComma:
		return "','"
	case tokenString:
		return "string"
	case tokenNumber:
		return "number"
	case tokenTrue, tokenFalse:
		return "boolean"
	case tokenNull:
		return "null"
	default:
		return fmt.Sprintf("token(%d)", int(t))
	}
}

// token is one lexical unit. For strings value holds the decoded text, for
// numbers the raw literal, for illegal tokens the reason.
type token struct {
	typ   tokenType
	value string
	pos   int
}

// lexer produces tokens from a byte slice. It never fails; malformed input
// yields tokenIllegal and the caller decides how to recover.
type lexer struct {
	data []byte
	pos  int
}

func newLexer(data []byte) *lexer {
	return &lexer{data: data}
}

// seek moves the lexer to an absolute offset.
func (l *lexer) seek(pos int) {
	l.pos = min(max(pos, 0), len(l.data))
}

func (l *lexer) next() token {
	l.skipSpace()
	if l.pos >= len(l.data) {
		return token{typ: tokenEOF, pos: l.pos}
	}

	start := l.pos
	c := l.data[l.pos]
	switch c {
	case '{':
		l.pos++
		return token{typ: tokenLBrace, pos: start}
	case '}':
		l.pos++
		return token{typ: tokenRBrace, pos: start}
	case '[':
		l.pos++
		return token{typ: tokenLBracket, pos: start}
	case ']':
		l.pos++
		return token{typ: tokenRBracket, pos: start}
	case ':':
		l.pos++
		return token{typ: tokenColon, pos: start}
	case ',':
		l.pos++
		return token{typ: tokenComma, pos: start}
	case '"':
		return l.lexString()
	}

	if c == '-' || isDigit(c) {
		return l.lexNumber()
	}
	if isLetter(c) {
		return l.lexWord()
	}

	r, size := utf8.DecodeRune(l.data[l.pos:])
	l.pos += size
	return token{typ: tokenIllegal, value: fmt.Sprintf("unexpected character %q", r), pos: start}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.data) {
		switch l.data[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func (l *lexer) lexString() token {
	start := l.pos
	l.pos++ // opening quote

	var b strings.Builder
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		switch {
		case c == '"':
			l.pos++
			return token{typ: tokenString, value: b.String(), pos: start}
		case c == '\\':
			if err := l.lexEscape(&b); err != "" {
				return token{typ: tokenIllegal, value: err, pos: start}
			}
		default:
			b.WriteByte(c)
			l.pos++
		}
	}
	return token{typ: tokenIllegal, value: "unterminated string", pos: start}
}

// lexEscape decodes one escape sequence starting at the backslash.
func (l *lexer) lexEscape(b *strings.Builder) string {
	if l.pos+1 >= len(l.data) {
		l.pos = len(l.data)
		return "unterminated string"
	}
	c := l.data[l.pos+1]
	l.pos += 2
	switch c {
	case '"', '\\', '/':
		b.WriteByte(c)
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		r, ok := l.hex4()
		if !ok {
			return "invalid unicode escape"
		}
		if utf16.IsSurrogate(r) {
			if lo, ok := l.lowSurrogate(); ok {
				r = utf16.DecodeRune(r, lo)
			} else {
				r = utf8.RuneError
			}
		}
		b.WriteRune(r)
	default:
		return fmt.Sprintf("invalid escape %q", c)
	}
	return ""
}

// lowSurrogate consumes a following \uXXXX when it holds a low surrogate.
func (l *lexer) lowSurrogate() (rune, bool) {
	if l.pos+6 > len(l.data) || l.data[l.pos] != '\\' || l.data[l.pos+1] != 'u' {
		return 0, false
	}
	save := l.pos
	l.pos += 2
	r, ok := l.hex4()
	if !ok || r < 0xDC00 || r > 0xDFFF {
		l.pos = save
		return 0, false
	}
	return r, true
}

func (l *lexer) hex4() (rune, bool) {
	if l.pos+4 > len(l.data) {
		return 0, false
	}
	v, err := strconv.ParseUint(string(l.data[l.pos:l.pos+4]), 16, 32)
	if err != nil {
		return 0, false
	}
	l.pos += 4
	return rune(v), true
}

func (l *lexer) lexNumber() token {
	start := l.pos
	if l.data[l.pos] == '-' {
		l.pos++
	}
	digits := l.digits()
	if l.pos < len(l.data) && l.data[l.pos] == '.' {
		l.pos++
		if l.digits() == 0 {
			return token{typ: tokenIllegal, value: "malformed number", pos: start}
		}
	}
	if l.pos < len(l.data) && (l.data[l.pos] == 'e' || l.data[l.pos] == 'E') {
		l.pos++
		if l.pos < len(l.data) && (l.data[l.pos] == '+' || l.data[l.pos] == '-') {
			l.pos++
		}
		if l.digits() == 0 {
			return token{typ: tokenIllegal, value: "malformed number", pos: start}
		}
	}
	if digits == 0 {
		return token{typ: tokenIllegal, value: "malformed number", pos: start}
	}
	return token{typ: tokenNumber, value: string(l.data[start:l.pos]), pos: start}
}

func (l *lexer) digits() int {
	n := 0
	for l.pos < len(l.data) && isDigit(l.data[l.pos]) {
		l.pos++
		n++
	}
	return n
}

func (l *lexer) lexWord() token {
	start := l.pos
	for l.pos < len(l.data) && isLetter(l.data[l.pos]) {
		l.pos++
	}
	switch word := string(l.data[start:l.pos]); word {
	case "true":
		return token{typ: tokenTrue, value: word, pos: start}
	case "false":
		return token{typ: tokenFalse, value: word, pos: start}
	case "null":
		return token{typ: tokenNull, value: word, pos: start}
	default:
		return token{typ: tokenIllegal, value: fmt.Sprintf("unknown literal %q", word), pos: start}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// matchingBrace returns the offset just past the '}' closing the object that
// opens at start, skipping braces inside strings. It returns -1 when the
// object is never closed.
func matchingBrace(data []byte, start int) int {
	depth := 0
	inString := false
	for i := start; i < len(data); i++ {
		c := data[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}
