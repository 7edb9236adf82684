package gen

import (
	"errors"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/go-quicktest/qt"
)

// checkSource type-checks a single-file package.
func checkSource(t *testing.T, src string) *types.Package {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "x.go", src, 0)
	qt.Assert(t, qt.IsNil(err))
	conf := types.Config{
		Importer: importer.Default(),
	}
	pkg, err := conf.Check("example.com/x", fset, []*ast.File{f}, nil)
	qt.Assert(t, qt.IsNil(err))
	return pkg
}

func resolveOne(t *testing.T, src string, coll Collection) (*CollectionModel, error) {
	t.Helper()
	cfg := &Config{
		Collections: []Collection{coll},
	}
	qt.Assert(t, qt.IsNil(cfg.Validate()))
	f, err := Resolve(checkSource(t, src), cfg)
	if err != nil {
		return nil, err
	}
	qt.Assert(t, qt.Equals(f.Package, "x"))
	qt.Assert(t, qt.HasLen(f.Collections, 1))
	return f.Collections[0], nil
}

const sceneSource = `
package x

type Dog struct{}
type Car struct{}
type Foo struct{}
type Bar struct{}

type Nop struct{}

func (Nop) Fallback(a, b any) {}

type Behaviour struct {
	Nop
}

func (Behaviour) Bark(a, b Dog)       {}
func (Behaviour) HitDog(d Dog, c Car) {}
func (Behaviour) Foobar(b Bar, f Foo) {}
func (Behaviour) Other(d Dog, s string) {}
func (Behaviour) Three(a, b, c Dog)   {}
func (Behaviour) Result(a, b Car) int { return 0 }
`

func TestResolveExactAndFallback(t *testing.T) {
	cm, err := resolveOne(t, sceneSource, Collection{
		Name:     "Scene",
		Types:    []string{"Dog", "Car", "Foo", "Bar"},
		Visitors: []Visitor{{Type: "Behaviour"}},
	})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(cm.Elems, 4))
	qt.Assert(t, qt.HasLen(cm.Visitors, 1))
	v := cm.Visitors[0]
	qt.Assert(t, qt.Equals(v.Method, "TraverseBehaviour"))
	qt.Assert(t, qt.Equals(v.Param(), "Behaviour"))
	qt.Assert(t, qt.IsFalse(v.ReturnsError()))

	fallback := Handler{Method: "Fallback", Fallback: true}
	want := make([][]Handler, 4)
	for i := range want {
		want[i] = []Handler{fallback, fallback, fallback, fallback}
	}
	want[0][0] = Handler{Method: "Bark"}
	want[0][1] = Handler{Method: "HitDog"}
	want[3][2] = Handler{Method: "Foobar"}
	qt.Assert(t, qt.DeepEquals(v.Handlers, want))
}

func TestResolveUnhandledPair(t *testing.T) {
	src := `
package x

type A struct{}
type B struct{}

type V struct{}

func (V) AA(x, y A) {}
func (V) AB(x A, y B) {}
`
	_, err := resolveOne(t, src, Collection{
		Name:     "C",
		Types:    []string{"A", "B"},
		Visitors: []Visitor{{Type: "V"}},
	})
	var uerr *UnhandledPairError
	qt.Assert(t, qt.ErrorAs(err, &uerr))
	qt.Assert(t, qt.DeepEquals(uerr, &UnhandledPairError{
		Collection: "C",
		Visitor:    "V",
		First:      "B",
		Second:     "A",
	}))
	qt.Assert(t, qt.ErrorMatches(err, `collection C: visitor V has no handler for \(B, A\) and no Fallback method
collection C: visitor V has no handler for \(B, B\) and no Fallback method`))
}

func TestResolveAmbiguous(t *testing.T) {
	src := `
package x

type A struct{}

type V struct{}

func (V) One(x, y A) {}
func (*V) Two(x, y A) {}
`
	_, err := resolveOne(t, src, Collection{
		Name:     "C",
		Types:    []string{"A"},
		Visitors: []Visitor{{Type: "V"}},
	})
	var aerr *AmbiguousHandlerError
	qt.Assert(t, qt.ErrorAs(err, &aerr))
	qt.Assert(t, qt.DeepEquals(aerr.Methods, []string{"One", "Two"}))
	qt.Assert(t, qt.ErrorMatches(err, `visitor V has more than one handler for \(A, A\): One, Two`))
}

func TestResolveBadFallback(t *testing.T) {
	src := `
package x

type A struct{}

type V struct{}

func (V) Fallback(x, y A) {}
`
	_, err := resolveOne(t, src, Collection{
		Name:     "C",
		Types:    []string{"A"},
		Visitors: []Visitor{{Type: "V"}},
	})
	qt.Assert(t, qt.ErrorMatches(err, `visitor V: Fallback method has signature func\(x A, y A\); want func\(a, b any\) or func\(a, b any\) error`))
}

func TestResolvePointerAndErrors(t *testing.T) {
	src := `
package x

type A struct{}
type B int

type V struct{}

func (*V) AA(x, y A) error { return nil }
func (V) AB(x A, y B) {}
func (V) Fallback(a, b interface{}) error { return nil }
`
	cm, err := resolveOne(t, src, Collection{
		Name:     "C",
		Types:    []string{"A", "B"},
		Visitors: []Visitor{{Type: "V", Method: "Visit"}},
	})
	qt.Assert(t, qt.IsNil(err))
	v := cm.Visitors[0]
	qt.Assert(t, qt.Equals(v.Param(), "*V"))
	qt.Assert(t, qt.Equals(v.Method, "Visit"))
	qt.Assert(t, qt.IsTrue(v.ReturnsError()))
	qt.Assert(t, qt.DeepEquals(v.Handlers, [][]Handler{{
		{Method: "AA", ReturnsError: true},
		{Method: "AB"},
	}, {
		{Method: "Fallback", Fallback: true, ReturnsError: true},
		{Method: "Fallback", Fallback: true, ReturnsError: true},
	}}))
}

func TestResolveUnusedPointerFallback(t *testing.T) {
	// The Fallback method needs a pointer receiver but is
	// never used, so the visitor can be passed by value.
	src := `
package x

type A struct{}

type V struct{}

func (V) AA(x, y A) {}
func (*V) Fallback(a, b any) {}
`
	cm, err := resolveOne(t, src, Collection{
		Name:     "C",
		Types:    []string{"A"},
		Visitors: []Visitor{{Type: "V"}},
	})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cm.Visitors[0].Param(), "V"))
}

func TestResolveInterfaceVisitor(t *testing.T) {
	src := `
package x

type V interface {
	Ints(a, b int)
	Fallback(a, b any)
}
`
	cm, err := resolveOne(t, src, Collection{
		Name:     "C",
		Types:    []string{"int", "string"},
		Visitors: []Visitor{{Type: "V"}},
	})
	qt.Assert(t, qt.IsNil(err))
	v := cm.Visitors[0]
	qt.Assert(t, qt.Equals(v.Param(), "V"))
	qt.Assert(t, qt.Equals(v.Handlers[0][0], Handler{Method: "Ints"}))
	qt.Assert(t, qt.Equals(v.Handlers[1][0], Handler{Method: "Fallback", Fallback: true}))
}

var elemTypeErrorTests = []struct {
	testName  string
	types     []string
	expectErr string
}{{
	testName:  "NotFound",
	types:     []string{"Missing"},
	expectErr: `collection C: type Missing not found`,
}, {
	testName:  "NotAType",
	types:     []string{"fn"},
	expectErr: `collection C: fn is not a type`,
}, {
	testName:  "Interface",
	types:     []string{"Shape"},
	expectErr: `collection C: type Shape is an interface type`,
}, {
	testName:  "Any",
	types:     []string{"any"},
	expectErr: `collection C: type any is an interface type`,
}, {
	testName:  "Generic",
	types:     []string{"List"},
	expectErr: `collection C: type List is generic`,
}}

func TestResolveElemTypeErrors(t *testing.T) {
	src := `
package x

type Shape interface{ Area() float64 }

type List[T any] []T

func fn() {}
`
	for _, test := range elemTypeErrorTests {
		t.Run(test.testName, func(t *testing.T) {
			_, err := resolveOne(t, src, Collection{
				Name:  "C",
				Types: test.types,
			})
			qt.Assert(t, qt.ErrorMatches(err, test.expectErr))
		})
	}
}

func TestResolveVisitorNotFound(t *testing.T) {
	_, err := resolveOne(t, "package x\ntype A struct{}\n", Collection{
		Name:     "C",
		Types:    []string{"A"},
		Visitors: []Visitor{{Type: "V"}},
	})
	qt.Assert(t, qt.ErrorMatches(err, `visitor type V not found`))
	qt.Assert(t, qt.IsFalse(errors.As(err, new(*UnhandledPairError))))
}

var duplicateElemTypeTests = []struct {
	testName  string
	types     []string
	expect    *DuplicateTypeError
	expectErr string
}{{
	testName: "Alias",
	types:    []string{"Dog", "Pet"},
	expect: &DuplicateTypeError{
		Collection: "C",
		Type:       "Pet",
		Same:       "Dog",
	},
	expectErr: `collection C: duplicate type Pet \(same type as Dog\)`,
}, {
	testName: "Predeclared",
	types:    []string{"byte", "Dog", "uint8"},
	expect: &DuplicateTypeError{
		Collection: "C",
		Type:       "uint8",
		Same:       "byte",
	},
	expectErr: `collection C: duplicate type uint8 \(same type as byte\)`,
}, {
	testName: "RuneInt32",
	types:    []string{"int32", "rune"},
	expect: &DuplicateTypeError{
		Collection: "C",
		Type:       "rune",
		Same:       "int32",
	},
	expectErr: `collection C: duplicate type rune \(same type as int32\)`,
}}

func TestResolveDuplicateElemTypes(t *testing.T) {
	src := `
package x

type Dog struct{}

type Pet = Dog

type V struct{}

func (V) Bark(a Pet, b Dog) {}
func (V) Fallback(a, b any) {}
`
	for _, test := range duplicateElemTypeTests {
		t.Run(test.testName, func(t *testing.T) {
			_, err := resolveOne(t, src, Collection{
				Name:     "C",
				Types:    test.types,
				Visitors: []Visitor{{Type: "V"}},
			})
			var derr *DuplicateTypeError
			qt.Assert(t, qt.ErrorAs(err, &derr))
			qt.Assert(t, qt.DeepEquals(derr, test.expect))
			qt.Assert(t, qt.ErrorMatches(err, test.expectErr))
		})
	}
}

func TestResolveDistinctNamedTypes(t *testing.T) {
	// A defined type is distinct from its underlying type.
	src := `
package x

type Celsius float64
`
	cm, err := resolveOne(t, src, Collection{
		Name:  "C",
		Types: []string{"float64", "Celsius"},
	})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(cm.Elems, 2))
}
