package parse

import "fmt"

// TokenType identifies the lexical class of a token.
type TokenType int

const (
	// ILLEGAL is produced for any character the language does not admit.
	ILLEGAL TokenType = iota
	// EOF marks the end of the input.
	EOF

	// IDENT is any word: a type name, a field name...
	IDENT

	LPAREN    // (
	RPAREN    // )
	COLON     // :
	SEMICOLON // ;
	COMMA     // ,

	// TIPO is the only keyword in the language.
	TIPO
)

var tokenNames = [...]string{
	ILLEGAL:   "illegal character",
	EOF:       "end of input",
	IDENT:     "identifier",
	LPAREN:    "'('",
	RPAREN:    "')'",
	COLON:     "':'",
	SEMICOLON: "';'",
	COMMA:     "','",
	TIPO:      "'tipo'",
}

// String returns a human-readable name for the token type, suitable for
// diagnostics.
func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// keywords maps source text to its keyword TokenType.
var keywords = map[string]TokenType{
	"tipo": TIPO,
}

// Position is a 1-based line and column location in the source text.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// String formats the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexeme together with its source position.
type Token struct {
	Type TokenType
	Lit  string
	Pos  Position
}
