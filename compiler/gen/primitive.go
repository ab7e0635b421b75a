package gen

import "fmt"

// Primitive is one of the built-in scalar kinds of the source language.
// The set is closed: a name either spells one of these kinds or it must
// resolve to a declared type.
type Primitive int

const (
	// Entero is the integer kind.
	Entero Primitive = iota
	// Real is the floating-point kind.
	Real
)

// primitives maps source spellings to their kind. Membership here is what
// the graph builder consults, so the catalog and the generator can never
// disagree on what counts as a primitive.
var primitives = map[string]Primitive{
	"Entero": Entero,
	"Real":   Real,
}

// LookupPrimitive reports whether name spells a built-in primitive.
func LookupPrimitive(name string) (Primitive, bool) {
	p, ok := primitives[name]
	return p, ok
}

// CType returns the fixed C spelling for the primitive. Every kind in the
// closed set has exactly one spelling; a kind missing here is an
// implementation bug and fails loudly.
func (p Primitive) CType() (string, error) {
	switch p {
	case Entero:
		return "long", nil
	case Real:
		return "double", nil
	default:
		return "", &UnknownPrimitiveError{Primitive: p}
	}
}

// String returns the source spelling of the primitive.
func (p Primitive) String() string {
	switch p {
	case Entero:
		return "Entero"
	case Real:
		return "Real"
	default:
		return fmt.Sprintf("Primitive(%d)", int(p))
	}
}
