package generator

import (
	"gitlab.com/tozd/go/errors"
)

// Failure categories for the generation pipeline. Wrapped errors carry the
// offending file, class or method; callers classify with errors.Is.
var (
	// ErrParse marks a file the AST provider could not turn into a tree.
	// The file is skipped and the failure surfaces in the run error.
	ErrParse = errors.Base("parse failure")

	// ErrUnsupportedType marks a type token stream that cannot be spelled
	// back into valid C++, unbalanced brackets and variadic ellipses
	// included. The owning method is dropped.
	ErrUnsupportedType = errors.Base("unsupported type construct")

	// ErrMacroArity marks a method with more parameters than the mock
	// macro family supports.
	ErrMacroArity = errors.Base("arity exceeds mock macro set")

	// ErrMalformedOperator marks a method whose name begins with
	// "operator" but is not an overloadable operator we can decompose.
	ErrMalformedOperator = errors.Base("malformed operator name")
)
