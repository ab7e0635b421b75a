package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the semantic and structural failure classes.
var (
	// ErrDuplicateType indicates two declarations share a name.
	ErrDuplicateType = errors.New("simcom: duplicate type")
	// ErrDuplicateField indicates a declaration repeats a field name.
	ErrDuplicateField = errors.New("simcom: duplicate field")
	// ErrUndefinedType indicates a field references an unknown type.
	ErrUndefinedType = errors.New("simcom: undefined type")
	// ErrCyclicDependency indicates the declarations cannot be linearized.
	ErrCyclicDependency = errors.New("simcom: cyclic dependency")
	// ErrUnknownPrimitive indicates a primitive kind with no C mapping.
	// This is an implementation bug, never a user input error.
	ErrUnknownPrimitive = errors.New("simcom: unknown primitive")
)

// DuplicateTypeError reports that a type name was declared more than once.
type DuplicateTypeError struct {
	Name string
}

// Error implements the error interface.
func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("simcom: type %q declared more than once", e.Name)
}

// Is reports whether the target matches the sentinel error for DuplicateTypeError.
func (e *DuplicateTypeError) Is(target error) bool {
	return target == ErrDuplicateType
}

// DuplicateFieldError reports that one declaration uses the same field
// name twice.
type DuplicateFieldError struct {
	Type  string
	Field string
}

// Error implements the error interface.
func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("simcom: field %q redeclared in type %q", e.Field, e.Type)
}

// Is reports whether the target matches the sentinel error for DuplicateFieldError.
func (e *DuplicateFieldError) Is(target error) bool {
	return target == ErrDuplicateField
}

// UndefinedTypeError reports a field whose type is neither a primitive nor
// a declared type.
type UndefinedTypeError struct {
	Type  string // the referencing declaration
	Field string // the offending field
	Ref   string // the unknown type name
}

// Error implements the error interface.
func (e *UndefinedTypeError) Error() string {
	return fmt.Sprintf("simcom: undefined type %q referenced by field %q of type %q", e.Ref, e.Field, e.Type)
}

// Is reports whether the target matches the sentinel error for UndefinedTypeError.
func (e *UndefinedTypeError) Is(target error) bool {
	return target == ErrUndefinedType
}

// CyclicDependencyError reports a set of declarations whose dependency
// edges form a closed loop. Such structures cannot be written as flat C
// structs without indirection the language does not offer.
type CyclicDependencyError struct {
	// Members holds every type participating in the cycle, in the order
	// the cycle was walked.
	Members []string
}

// Error implements the error interface.
func (e *CyclicDependencyError) Error() string {
	var b strings.Builder
	b.WriteString("simcom: cyclic dependency involving type ")
	fmt.Fprintf(&b, "%q", e.Members[0])
	if len(e.Members) > 1 {
		b.WriteString(" (cycle: ")
		b.WriteString(strings.Join(e.Members, " -> "))
		b.WriteString(" -> ")
		b.WriteString(e.Members[0])
		b.WriteString(")")
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for CyclicDependencyError.
func (e *CyclicDependencyError) Is(target error) bool {
	return target == ErrCyclicDependency
}

// UnknownPrimitiveError reports a primitive kind the generator has no C
// spelling for. It indicates the primitive set and the mapping table went
// out of sync.
type UnknownPrimitiveError struct {
	Primitive Primitive
}

// Error implements the error interface.
func (e *UnknownPrimitiveError) Error() string {
	return fmt.Sprintf("simcom: no C mapping for primitive %s", e.Primitive)
}

// Is reports whether the target matches the sentinel error for UnknownPrimitiveError.
func (e *UnknownPrimitiveError) Is(target error) bool {
	return target == ErrUnknownPrimitive
}

// IsDuplicateType reports whether the error is a DuplicateTypeError.
func IsDuplicateType(err error) bool {
	var dupErr *DuplicateTypeError
	return errors.As(err, &dupErr)
}

// IsDuplicateField reports whether the error is a DuplicateFieldError.
func IsDuplicateField(err error) bool {
	var dupErr *DuplicateFieldError
	return errors.As(err, &dupErr)
}

// IsUndefinedType reports whether the error is an UndefinedTypeError.
func IsUndefinedType(err error) bool {
	var undefErr *UndefinedTypeError
	return errors.As(err, &undefErr)
}

// IsCyclicDependency reports whether the error is a CyclicDependencyError.
func IsCyclicDependency(err error) bool {
	var cycErr *CyclicDependencyError
	return errors.As(err, &cycErr)
}

// IsUnknownPrimitive reports whether the error is an UnknownPrimitiveError.
func IsUnknownPrimitive(err error) bool {
	var primErr *UnknownPrimitiveError
	return errors.As(err, &primErr)
}
