package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeclaration(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	decls, err := Parse("tipo Punto(x: Entero, y: Entero);")
	require.NoError(err)
	require.Len(decls, 1)

	d := decls[0]
	require.Equal("Punto", d.Name)
	require.Equal(Position{Line: 1, Column: 1}, d.Pos)
	require.Len(d.Fields, 2)
	require.Equal("x", d.Fields[0].Name)
	require.Equal("Entero", d.Fields[0].Type)
	require.Equal("y", d.Fields[1].Name)
	require.Equal("Entero", d.Fields[1].Type)
}

func TestParseManyDeclarations(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	decls, err := Parse(`
		tipo Circulo(centro: Punto, radio: Real);
		tipo Punto(x: Entero, y: Entero);
	`)
	require.NoError(err)
	require.Len(decls, 2)
	// Textual order is preserved.
	require.Equal("Circulo", decls[0].Name)
	require.Equal("Punto", decls[1].Name)
}

func TestParseEmptyFieldList(t *testing.T) {
	t.Parallel()

	decls, err := Parse("tipo Nada();")
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Empty(t, decls[0].Fields)
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	decls, err := Parse("   \n\t ")
	require.NoError(t, err)
	assert.Empty(t, decls)
}

// TestParseDuplicateFieldNames checks the parser stays out of semantic
// checking: repeated field names parse fine and fail later, during graph
// building.
func TestParseDuplicateFieldNames(t *testing.T) {
	t.Parallel()

	decls, err := Parse("tipo Punto(x: P, x: P);")
	require.NoError(t, err)
	require.Len(t, decls[0].Fields, 2)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "MisspelledKeyword",
			input: "tiipo Punto(x: Entero);",
			want:  `simcom: syntax error at 1:1: expected 'tipo', found identifier "tiipo"`,
		},
		{
			name:  "MissingName",
			input: "tipo (x: Entero);",
			want:  "simcom: syntax error at 1:6: expected identifier, found '('",
		},
		{
			name:  "MissingOpenParen",
			input: "tipo Punto x: Entero);",
			want:  `simcom: syntax error at 1:12: expected '(', found identifier "x"`,
		},
		{
			name:  "MissingColon",
			input: "tipo Punto(x Entero);",
			want:  `simcom: syntax error at 1:14: expected ':', found identifier "Entero"`,
		},
		{
			name:  "MissingFieldType",
			input: "tipo Punto(x: );",
			want:  "simcom: syntax error at 1:15: expected identifier, found ')'",
		},
		{
			name:  "MissingCloseParen",
			input: "tipo Punto(x: Entero;",
			want:  "simcom: syntax error at 1:21: expected ')', found ';'",
		},
		{
			name:  "MissingSemicolon",
			input: "tipo Punto(x: Entero)",
			want:  "simcom: syntax error at 1:22: expected ';', found end of input",
		},
		{
			name:  "MissingSemicolonBeforeNext",
			input: "tipo P(x: E) tipo Q(y: E);",
			want:  "simcom: syntax error at 1:14: expected ';', found 'tipo'",
		},
		{
			name:  "UnterminatedDeclaration",
			input: "tipo Punto(x: Entero",
			want:  "simcom: syntax error at 1:21: expected ')', found end of input",
		},
		{
			name:  "StraySemicolon",
			input: "tipo A(x: Entero);;",
			want:  "simcom: syntax error at 1:19: expected 'tipo', found ';'",
		},
		{
			name:  "MissingCommaEndsList",
			input: "tipo P(x: E y: E);",
			want:  `simcom: syntax error at 1:13: expected ')', found identifier "y"`,
		},
		{
			name:  "IllegalCharacter",
			input: "tipo P(x: E); @",
			want:  `simcom: syntax error at 1:15: expected 'tipo', found illegal character "@"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			decls, err := Parse(tt.input)
			require.Nil(t, decls)
			require.Error(t, err)

			var perr *Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}
