package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marionauta/simple-compiler/compiler/parse"
)

// generate resolves and renders decls with the given generator options.
func generate(t *testing.T, g func(*Generator) *Generator, decls ...*parse.Declaration) string {
	t.Helper()
	graph, err := NewGraph(decls...)
	require.NoError(t, err)
	ord, err := graph.Order()
	require.NoError(t, err)

	generator := NewGenerator(graph)
	if g != nil {
		generator = g(generator)
	}
	var b strings.Builder
	require.NoError(t, generator.Generate(&b, ord))
	return b.String()
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	out := generate(t, nil,
		decl("Circulo", [2]string{"centro", "Punto"}, [2]string{"radio", "Real"}),
		decl("Punto", [2]string{"x", "Entero"}, [2]string{"y", "Entero"}),
	)
	assert.Equal(t, `typedef struct Punto {
    long x;
    long y;
} Punto;

typedef struct Circulo {
    Punto centro;
    double radio;
} Circulo;
`, out)
}

func TestGenerateSingleType(t *testing.T) {
	t.Parallel()

	out := generate(t, nil, decl("Punto", [2]string{"x", "Entero"}))
	assert.Equal(t, "typedef struct Punto {\n    long x;\n} Punto;\n", out)
}

func TestGenerateEmptyFieldList(t *testing.T) {
	t.Parallel()

	out := generate(t, nil, decl("Nada"))
	assert.Equal(t, "typedef struct Nada {\n} Nada;\n", out)
}

func TestGenerateFieldOrderMatchesDeclaration(t *testing.T) {
	t.Parallel()

	out := generate(t, nil,
		decl("Punto", [2]string{"y", "Entero"}, [2]string{"x", "Entero"}),
	)
	yIdx := strings.Index(out, "long y;")
	xIdx := strings.Index(out, "long x;")
	require.NotEqual(t, -1, yIdx)
	require.NotEqual(t, -1, xIdx)
	assert.Less(t, yIdx, xIdx, "struct layout mirrors field declaration order")
}

func TestGenerateIndent(t *testing.T) {
	t.Parallel()

	out := generate(t, func(g *Generator) *Generator {
		return g.WithIndent("\t")
	}, decl("Punto", [2]string{"x", "Entero"}))
	assert.Equal(t, "typedef struct Punto {\n\tlong x;\n} Punto;\n", out)
}

func TestGenerateGuard(t *testing.T) {
	t.Parallel()

	out := generate(t, func(g *Generator) *Generator {
		return g.WithGuard("out/figuras.h")
	}, decl("Punto", [2]string{"x", "Entero"}))
	assert.Equal(t, `#ifndef FIGURAS_H
#define FIGURAS_H

typedef struct Punto {
    long x;
} Punto;

#endif /* FIGURAS_H */
`, out)
}

func TestGenerateBanner(t *testing.T) {
	t.Parallel()

	out := generate(t, func(g *Generator) *Generator {
		return g.WithBanner("generated by simcom")
	}, decl("Punto", [2]string{"x", "Entero"}))
	assert.True(t, strings.HasPrefix(out, "/* generated by simcom */\n\n"))
}

func TestGuardMacro(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "FIGURAS_H", GuardMacro("figuras.h"))
	assert.Equal(t, "POINT_TYPES_H", GuardMacro("pointTypes.h"))
	assert.Equal(t, "SHAPES_H", GuardMacro("out/dir/shapes.h"))
	assert.Equal(t, "TYPES_H", GuardMacro("types"))
}

func TestGenerateTrailingNewline(t *testing.T) {
	t.Parallel()

	out := generate(t, nil,
		decl("A", [2]string{"x", "Entero"}),
		decl("B", [2]string{"x", "Real"}),
	)
	assert.True(t, strings.HasSuffix(out, ";\n"))
	assert.False(t, strings.HasSuffix(out, "\n\n"))
	// Definitions are separated by exactly one blank line.
	assert.Contains(t, out, "} A;\n\ntypedef struct B {")
}
