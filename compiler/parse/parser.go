// Package parse turns source text into an ordered sequence of type
// declarations. It checks syntax only; whether a field's type actually
// exists is decided later, when the dependency graph is built.
package parse

import "fmt"

// Declaration is a named record type loaded from source. The declaration
// sequence returned by Parse preserves textual order, and each field list
// preserves source order, which defines the generated struct layout.
// Declarations are immutable once parsed; downstream stages only read them.
type Declaration struct {
	Name   string   `json:"name"`
	Fields []*Field `json:"fields"`
	Pos    Position `json:"pos"`
}

// Field is a single name/type pair inside a declaration.
type Field struct {
	Name string   `json:"name"`
	Type string   `json:"type"`
	Pos  Position `json:"pos"`
}

// Error is a syntax error with its source position.
type Error struct {
	Pos     Position
	Message string
}

// Error returns the error string.
func (e *Error) Error() string {
	return fmt.Sprintf("simcom: syntax error at %s: %s", e.Pos, e.Message)
}

// Parser consumes the lexer's token stream and produces declarations.
type Parser struct {
	lex *Lexer
	tok Token // current token
}

// Parse scans and parses src into its declarations, in textual order.
// It returns a *Error describing the first malformed construct found.
func Parse(src string) ([]*Declaration, error) {
	p := &Parser{lex: NewLexer(src)}
	p.next()
	var decls []*Declaration
	for p.tok.Type != EOF {
		d, err := p.declaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	return decls, nil
}

func (p *Parser) next() {
	p.tok = p.lex.Next()
}

// expect consumes the current token if it matches tt, otherwise returns an
// error naming what the grammar wanted at this point.
func (p *Parser) expect(tt TokenType) (Token, error) {
	if p.tok.Type != tt {
		return Token{}, p.errorf("expected %s, found %s", tt, describe(p.tok))
	}
	tok := p.tok
	p.next()
	return tok, nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return &Error{Pos: p.tok.Pos, Message: fmt.Sprintf(format, args...)}
}

// describe renders a token for diagnostics, quoting the literal for
// identifiers and stray characters.
func describe(tok Token) string {
	switch tok.Type {
	case IDENT:
		return fmt.Sprintf("identifier %q", tok.Lit)
	case ILLEGAL:
		return fmt.Sprintf("illegal character %q", tok.Lit)
	default:
		return tok.Type.String()
	}
}

// declaration matches an entire declaration, from the tipo keyword to the
// terminating semicolon.
func (p *Parser) declaration() (*Declaration, error) {
	kw, err := p.expect(TIPO)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	fields, err := p.fields()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &Declaration{Name: name.Lit, Fields: fields, Pos: kw.Pos}, nil
}

// fields matches a comma-separated field list. The list may be empty.
func (p *Parser) fields() ([]*Field, error) {
	if p.tok.Type == RPAREN {
		return nil, nil
	}
	var fields []*Field
	for {
		f, err := p.field()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
		if p.tok.Type != COMMA {
			return fields, nil
		}
		p.next()
	}
}

// field matches a single "name: Type" pair.
func (p *Parser) field() (*Field, error) {
	name, err := p.expect(IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(COLON); err != nil {
		return nil, err
	}
	typ, err := p.expect(IDENT)
	if err != nil {
		return nil, err
	}
	return &Field{Name: name.Lit, Type: typ.Lit, Pos: name.Pos}, nil
}
