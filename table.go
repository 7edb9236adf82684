package hetvec

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Table is a dispatch table mapping ordered pairs of types to
// handlers. It provides a Fallback method, so embedding a *Table in
// a visitor makes pairs that the visitor has no method for
// dispatch on the dynamic types of their values instead.
//
// A Table should be filled in once, before use, and can then be
// reused for any number of traversals. Lookups may be made
// concurrently; registration may not.
type Table struct {
	handlers map[typePair]func(a, b any) error
	dflt     func(a, b any) error
	logger   *zap.Logger
}

type typePair struct {
	a, b reflect.Type
}

func (p typePair) String() string {
	return fmt.Sprintf("(%v, %v)", p.a, p.b)
}

// Option configures a Table.
type Option func(*Table)

// WithDefault sets the function called for pairs with no
// registered handler. By default such pairs are ignored.
func WithDefault(f func(a, b any) error) Option {
	return func(t *Table) {
		t.dflt = f
	}
}

// WithLogger sets the logger used by the table.
// By default the package logger is used.
func WithLogger(l *zap.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTable returns an empty table configured with the given options.
func NewTable(opts ...Option) *Table {
	t := &Table{
		handlers: make(map[typePair]func(a, b any) error),
		dflt:     func(a, b any) error { return nil },
		logger:   Logger(),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Handle registers f as the handler for values of exactly type T
// followed by values of exactly type U. It panics if a handler is
// already registered for that pair.
//
// Lookups use the dynamic types of the values, which are never
// interface types, so a handler registered for an interface type
// is never called.
func Handle[T, U any](t *Table, f func(T, U) error) {
	key := typePair{reflect.TypeFor[T](), reflect.TypeFor[U]()}
	if _, ok := t.handlers[key]; ok {
		panic(fmt.Sprintf("hetvec.Handle: duplicate handler for %v", key))
	}
	t.handlers[key] = func(a, b any) error {
		return f(a.(T), b.(U))
	}
	t.logger.Debug("registered pair handler", zap.Stringer("pair", key))
}

// HandleFunc is like Handle but for handlers that cannot fail.
func HandleFunc[T, U any](t *Table, f func(T, U)) {
	Handle(t, func(a T, b U) error {
		f(a, b)
		return nil
	})
}

// Len returns the number of registered pairs.
func (t *Table) Len() int {
	return len(t.handlers)
}

// Fallback calls the handler registered for the dynamic types of a
// and b, or the table's default if there is none, and returns its
// error.
func (t *Table) Fallback(a, b any) error {
	key := typePair{reflect.TypeOf(a), reflect.TypeOf(b)}
	if f, ok := t.handlers[key]; ok {
		return f(a, b)
	}
	if ce := t.logger.Check(zap.DebugLevel, "no handler for pair"); ce != nil {
		ce.Write(zap.Stringer("pair", key))
	}
	return t.dflt(a, b)
}
