// Package gen builds the dependency graph between parsed declarations,
// resolves the order definitions must be emitted in, and generates the C
// output. Declaration order in the source carries no meaning; the graph is
// the only thing that decides what comes before what.
package gen

import (
	"github.com/marionauta/simple-compiler/compiler/parse"
)

// Type is one node in the dependency graph: a parsed declaration together
// with the user-defined types it references.
type Type struct {
	*parse.Declaration
	// index is the original declaration position. It has no semantic
	// weight; it only breaks ordering ties so output stays stable.
	index int
	// deps holds the declared types this type has a field of,
	// deduplicated. A self-typed field puts the type in its own deps;
	// the resolver reports that as a cycle rather than dropping it.
	deps []*Type
}

// Graph indexes every declared type by name and holds the "contains a
// field of type" edges between them. It is built once per compilation and
// read-only afterward.
type Graph struct {
	// Nodes holds all declared types, in source declaration order.
	Nodes []*Type

	types map[string]*Type
}

// NewGraph indexes the declarations and builds the dependency edges.
// It fails with a DuplicateTypeError when two declarations share a name,
// a DuplicateFieldError when one declaration repeats a field name, and an
// UndefinedTypeError when a field type is neither a primitive nor a key in
// the catalog.
func NewGraph(decls ...*parse.Declaration) (*Graph, error) {
	g := &Graph{types: make(map[string]*Type, len(decls))}
	for i, d := range decls {
		if _, ok := g.types[d.Name]; ok {
			return nil, &DuplicateTypeError{Name: d.Name}
		}
		t := &Type{Declaration: d, index: i}
		g.types[d.Name] = t
		g.Nodes = append(g.Nodes, t)
	}
	for _, t := range g.Nodes {
		if err := g.resolve(t); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// resolve validates t's fields against the catalog and records its
// dependency edges. Multiple fields of the same target contribute a single
// edge; presence is all the graph cares about.
func (g *Graph) resolve(t *Type) error {
	names := make(map[string]struct{}, len(t.Fields))
	linked := make(map[string]struct{}, len(t.Fields))
	for _, f := range t.Fields {
		if _, ok := names[f.Name]; ok {
			return &DuplicateFieldError{Type: t.Name, Field: f.Name}
		}
		names[f.Name] = struct{}{}
		if _, ok := LookupPrimitive(f.Type); ok {
			continue
		}
		dep, ok := g.types[f.Type]
		if !ok {
			return &UndefinedTypeError{Type: t.Name, Field: f.Name, Ref: f.Type}
		}
		if _, ok := linked[dep.Name]; ok {
			continue
		}
		linked[dep.Name] = struct{}{}
		t.deps = append(t.deps, dep)
	}
	return nil
}

// Lookup returns the declared type with the given name.
func (g *Graph) Lookup(name string) (*Type, bool) {
	t, ok := g.types[name]
	return t, ok
}
