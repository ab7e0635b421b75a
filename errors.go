package simcom

import (
	"errors"
	"fmt"

	"github.com/marionauta/simple-compiler/compiler/gen"
	"github.com/marionauta/simple-compiler/compiler/parse"
)

// Exit codes per failure class, used by the command line interface. Every
// stage fails fast: whichever class fires first aborts the run, and no
// output is produced.
const (
	// ExitOK means the compilation succeeded.
	ExitOK = 0
	// ExitParse covers malformed declaration syntax.
	ExitParse = 1
	// ExitUndefined covers fields referencing unknown types.
	ExitUndefined = 2
	// ExitStructural covers cycles and duplicate declarations.
	ExitStructural = 3
	// ExitInternal covers everything that is not a user input error.
	ExitInternal = 4
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil && e.Value != "" {
		return fmt.Sprintf("simcom: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("simcom: config error for %q: %s", e.Option, e.Message)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// IsParseError reports whether the error is a syntax error.
func IsParseError(err error) bool {
	var parseErr *parse.Error
	return errors.As(err, &parseErr)
}

// ExitCode classifies err into the exit code for its failure class.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsParseError(err):
		return ExitParse
	case gen.IsUndefinedType(err):
		return ExitUndefined
	case gen.IsCyclicDependency(err), gen.IsDuplicateType(err), gen.IsDuplicateField(err):
		return ExitStructural
	default:
		return ExitInternal
	}
}
