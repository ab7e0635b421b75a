package gen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marionauta/simple-compiler/compiler/parse"
)

// chainDecls builds n declarations where each depends on the next, declared
// dependent-first so the resolver has real work to do.
func chainDecls(n int) []*parse.Declaration {
	decls := make([]*parse.Declaration, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("T%d", i)
		if i == n-1 {
			decls = append(decls, decl(name, [2]string{"x", "Entero"}))
			continue
		}
		decls = append(decls, decl(name, [2]string{"siguiente", fmt.Sprintf("T%d", i+1)}))
	}
	return decls
}

func BenchmarkNewGraph(b *testing.B) {
	decls := chainDecls(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := NewGraph(decls...)
		require.NoError(b, err)
	}
}

func BenchmarkOrder(b *testing.B) {
	g, err := NewGraph(chainDecls(100)...)
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := g.Order()
		require.NoError(b, err)
	}
}
