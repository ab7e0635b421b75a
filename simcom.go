// Package simcom compiles a small declarative record-type language into C
// typedef struct definitions. Declarations may reference each other in any
// order; the compiler discovers the dependencies between them and emits
// every struct after the types it uses, or fails without producing any
// output when the references cannot be satisfied.
//
// The pipeline is a straight line: text is parsed into declarations
// (compiler/parse), the declarations are indexed and linked into a
// dependency graph, the graph is linearized, and the result is rendered as
// C (compiler/gen). All state lives inside a single Compile call, so
// concurrent or repeated compilations never interfere.
package simcom

import (
	"bytes"
	"os"

	json "github.com/goccy/go-json"

	"github.com/marionauta/simple-compiler/compiler/gen"
	"github.com/marionauta/simple-compiler/compiler/parse"
)

// Result holds everything a single compilation run produced.
type Result struct {
	// Declarations are the parsed declarations in textual order.
	Declarations []*parse.Declaration `json:"declarations"`
	// Order lists the type names in emission order.
	Order []string `json:"order"`
	// Output is the generated C text.
	Output string `json:"output"`
}

// JSON returns a machine-readable dump of the compilation: the parsed
// declarations, the resolved order, and the generated text.
func (r *Result) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Compile runs the full pipeline over src: parse, graph, order, generate.
// It returns a complete result or an error; there is no partial output.
func Compile(src string, opts ...Option) (*Result, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	decls, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	graph, err := gen.NewGraph(decls...)
	if err != nil {
		return nil, err
	}
	order, err := graph.Order()
	if err != nil {
		return nil, err
	}
	generator := gen.NewGenerator(graph).
		WithIndent(cfg.Indent).
		WithGuard(cfg.Guard).
		WithBanner(cfg.Banner)
	var buf bytes.Buffer
	if err := generator.Generate(&buf, order); err != nil {
		return nil, err
	}
	names := make([]string, len(order))
	for i, t := range order {
		names[i] = t.Name
	}
	return &Result{Declarations: decls, Order: names, Output: buf.String()}, nil
}

// CompileFile reads path and compiles its contents.
func CompileFile(path string, opts ...Option) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Compile(string(src), opts...)
}
