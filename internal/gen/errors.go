package gen

import (
	"fmt"
	"strings"
)

// DuplicateTypeError is returned when a collection declares the
// same element type more than once.
type DuplicateTypeError struct {
	Collection string
	Type       string

	// Same holds the earlier name for the type when
	// it was declared under a different name.
	Same string
}

func (e *DuplicateTypeError) Error() string {
	if e.Same != "" && e.Same != e.Type {
		return fmt.Sprintf("collection %s: duplicate type %s (same type as %s)", e.Collection, e.Type, e.Same)
	}
	return fmt.Sprintf("collection %s: duplicate type %s", e.Collection, e.Type)
}

// UnhandledPairError is returned when a visitor has no method for
// an ordered pair of element types and no Fallback method either.
type UnhandledPairError struct {
	Collection string
	Visitor    string
	First      string
	Second     string
}

func (e *UnhandledPairError) Error() string {
	return fmt.Sprintf("collection %s: visitor %s has no handler for (%s, %s) and no Fallback method", e.Collection, e.Visitor, e.First, e.Second)
}

// AmbiguousHandlerError is returned when a visitor has more than
// one method for the same ordered pair of element types.
type AmbiguousHandlerError struct {
	Visitor string
	First   string
	Second  string
	Methods []string
}

func (e *AmbiguousHandlerError) Error() string {
	return fmt.Sprintf("visitor %s has more than one handler for (%s, %s): %s", e.Visitor, e.First, e.Second, strings.Join(e.Methods, ", "))
}
