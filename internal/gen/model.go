package gen

import (
	"fmt"
	"strings"
)

// File holds everything needed to generate one output file.
type File struct {
	// Package is the name of the Go package.
	Package string

	Collections []*CollectionModel
}

// CollectionModel is a collection whose types have been resolved.
type CollectionModel struct {
	Name  string
	Elems []Elem

	Visitors []*VisitorModel
}

// Elem is a single element type of a collection.
type Elem struct {
	// Index is the position of the type in the declared list.
	Index int

	// Type is the Go source for the type.
	Type string
}

// Field returns the name of the struct field holding the
// partition for the element.
func (e Elem) Field() string {
	return fmt.Sprintf("p%d", e.Index)
}

// Name returns the exported form of the type name, used in
// generated identifiers.
func (e Elem) Name() string {
	return exported(e.Type)
}

// VisitorModel describes a visitor type and the handler
// chosen for every ordered pair of element types.
type VisitorModel struct {
	// Type is the name of the visitor type.
	Type string

	// Pointer holds whether the visitor must be passed by pointer
	// because some chosen method has a pointer receiver.
	Pointer bool

	// Method is the name of the generated traversal method.
	Method string

	// Handlers holds the handler for each ordered pair:
	// Handlers[i][j] takes a value of element i followed
	// by a value of element j.
	Handlers [][]Handler
}

// Param returns the Go type of the traversal method's parameter.
func (v *VisitorModel) Param() string {
	if v.Pointer {
		return "*" + v.Type
	}
	return v.Type
}

// ReturnsError reports whether any chosen handler can fail,
// in which case the traversal method returns an error.
func (v *VisitorModel) ReturnsError() bool {
	for _, row := range v.Handlers {
		for _, h := range row {
			if h.ReturnsError {
				return true
			}
		}
	}
	return false
}

// Handler is the visitor method chosen for one ordered pair.
type Handler struct {
	// Method is the name of the visitor method.
	Method string

	// Fallback is true when no method matches the pair exactly
	// and the visitor's Fallback method is used.
	Fallback bool

	// ReturnsError holds whether the method returns an error.
	ReturnsError bool
}

// HandlerTypeName returns the name of the generated struct type
// holding a handler function per pair.
func (c *CollectionModel) HandlerTypeName() string {
	return handlersType(c.Name)
}

// Later returns the elements declared after element i.
func (c *CollectionModel) Later(i int) []Elem {
	return c.Elems[i+1:]
}

// TypeList returns the element types as an English list.
func (c *CollectionModel) TypeList() string {
	names := make([]string, len(c.Elems))
	for i, e := range c.Elems {
		names[i] = e.Type
	}
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

// Pairs returns every ordered pair of elements, in the
// order the handler fields are declared.
func (c *CollectionModel) Pairs() []Pair {
	pairs := make([]Pair, 0, len(c.Elems)*len(c.Elems))
	for _, a := range c.Elems {
		for _, b := range c.Elems {
			pairs = append(pairs, Pair{a, b})
		}
	}
	return pairs
}

// Pair is an ordered pair of element types.
type Pair struct {
	First, Second Elem
}

// Field returns the name of the handler struct field for the pair.
func (p Pair) Field() string {
	return pairField(p.First.Index, p.Second.Index)
}

func pairField(i, j int) string {
	return fmt.Sprintf("f%d_%d", i, j)
}

// HandlerField is a pair together with the handler chosen for it
// by a particular visitor.
type HandlerField struct {
	Pair
	Handler
}

// Fields returns the handler chosen for each pair, in
// the order returned by CollectionModel.Pairs.
func (v *VisitorModel) Fields(c *CollectionModel) []HandlerField {
	pairs := c.Pairs()
	fields := make([]HandlerField, len(pairs))
	for i, p := range pairs {
		fields[i] = HandlerField{
			Pair:    p,
			Handler: v.Handlers[p.First.Index][p.Second.Index],
		}
	}
	return fields
}
