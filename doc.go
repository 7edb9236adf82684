// Package hetvec provides the runtime support for heterogeneous
// collections: collections holding values of a fixed set of distinct
// types, each type in its own partition, that can apply a set of
// pairwise handlers to every unordered pair of values they hold.
//
// This is the classic "collide everything with everything" problem:
// a game holds spheres, boxes and triangles and wants to call
// the right check for every pair of objects, with the check chosen by
// the static types of both arguments.
//
// Collection types are generated by the hetvecgen command from a
// declaration such as:
//
//	collections:
//	  - name: Scene
//	    types: [Dog, Car, Foo, Bar]
//	    visitors:
//	      - type: Behaviour
//
// which produces a Scene type with InsertDog, InsertCar etc. methods,
// Size, Empty and Clear, and a TraverseBehaviour method.
//
// A visitor is any type with methods of the form
//
//	func (v V) AnyName(a T, b U)
//
// where T and U are element types of the collection (the method may
// also return an error). When the generator finds no method for a
// pair of types, it uses the visitor's Fallback method, which must have
// the signature
//
//	func (v V) Fallback(a, b any)
//
// Embed Nop to get a Fallback that does nothing, or *Table to get one
// that dispatches on the dynamic types of its arguments. A visitor
// that leaves a pair uncovered and has no Fallback is rejected when
// the code is generated.
//
// Traversal visits each pair of values of the same type once, with
// the earlier-inserted value first. Each pair of values of different
// types is visited twice, once in each argument order, so a handler
// need only be written for one order.
//
// The generated code is built from Partition, Within and Forward,
// which can also be used directly.
package hetvec
