package parse

import "unicode"

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
	col  int // current 1-based source column
}

// NewLexer returns a lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), line: 1, col: 1}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

// readIdentifier consumes the remainder of an identifier whose first rune
// has already been consumed, then checks it against the keyword table.
func (l *Lexer) readIdentifier(first rune, pos Position) Token {
	lit := []rune{first}
	for l.pos < len(l.src) && isIdentPart(l.peek()) {
		lit = append(lit, l.advance())
	}
	word := string(lit)
	if kw, ok := keywords[word]; ok {
		return Token{Type: kw, Lit: word, Pos: pos}
	}
	return Token{Type: IDENT, Lit: word, Pos: pos}
}

// Next scans and returns the next token. Once the input is exhausted it
// returns EOF tokens forever.
func (l *Lexer) Next() Token {
	l.skipWhitespace()
	pos := Position{Line: l.line, Column: l.col}
	if l.pos >= len(l.src) {
		return Token{Type: EOF, Pos: pos}
	}
	r := l.advance()
	switch {
	case r == '(':
		return Token{Type: LPAREN, Lit: "(", Pos: pos}
	case r == ')':
		return Token{Type: RPAREN, Lit: ")", Pos: pos}
	case r == ':':
		return Token{Type: COLON, Lit: ":", Pos: pos}
	case r == ';':
		return Token{Type: SEMICOLON, Lit: ";", Pos: pos}
	case r == ',':
		return Token{Type: COMMA, Lit: ",", Pos: pos}
	case isIdentStart(r):
		return l.readIdentifier(r, pos)
	default:
		return Token{Type: ILLEGAL, Lit: string(r), Pos: pos}
	}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
