package gen

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-openapi/inflect"
)

// DefaultIndent is the indentation used for struct fields.
const DefaultIndent = "    "

// Generator renders a resolved graph as C typedef struct definitions.
type Generator struct {
	graph  *Graph
	indent string
	guard  string // include-guard macro, empty disables the wrapper
	banner string // leading comment text, empty disables
}

// NewGenerator creates a generator for the given graph.
func NewGenerator(g *Graph) *Generator {
	return &Generator{graph: g, indent: DefaultIndent}
}

// WithIndent sets the field indentation string.
func (g *Generator) WithIndent(indent string) *Generator {
	if indent != "" {
		g.indent = indent
	}
	return g
}

// WithGuard wraps the output in an include guard derived from the given
// output file name.
func (g *Generator) WithGuard(filename string) *Generator {
	if filename != "" {
		g.guard = GuardMacro(filename)
	}
	return g
}

// WithBanner adds a leading comment line to the output.
func (g *Generator) WithBanner(banner string) *Generator {
	g.banner = banner
	return g
}

// GuardMacro derives an include-guard macro from a file name:
// "pointTypes.h" becomes "POINT_TYPES_H".
func GuardMacro(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ToUpper(inflect.Underscore(base)) + "_H"
}

// Generate writes one struct definition per entry of order, in that exact
// order, separated by blank lines and ending with a trailing newline.
// Field types are either the mapped primitive spelling or the referenced
// struct name, which the order guarantees is already defined above.
func (g *Generator) Generate(w io.Writer, order []*Type) error {
	var b strings.Builder
	if g.banner != "" {
		fmt.Fprintf(&b, "/* %s */\n\n", g.banner)
	}
	if g.guard != "" {
		fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", g.guard, g.guard)
	}
	for i, t := range order {
		if i > 0 {
			b.WriteByte('\n')
		}
		if err := g.typedef(&b, t); err != nil {
			return err
		}
	}
	if g.guard != "" {
		fmt.Fprintf(&b, "\n#endif /* %s */\n", g.guard)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// typedef renders a single declaration as a named struct with a matching
// type alias, fields in declaration order.
func (g *Generator) typedef(b *strings.Builder, t *Type) error {
	fmt.Fprintf(b, "typedef struct %s {\n", t.Name)
	for _, f := range t.Fields {
		spelling := f.Type
		if p, ok := LookupPrimitive(f.Type); ok {
			ct, err := p.CType()
			if err != nil {
				return err
			}
			spelling = ct
		}
		fmt.Fprintf(b, "%s%s %s;\n", g.indent, spelling, f.Name)
	}
	fmt.Fprintf(b, "} %s;\n", t.Name)
	return nil
}
