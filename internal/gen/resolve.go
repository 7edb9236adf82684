package gen

import (
	"errors"
	"fmt"
	"go/types"
	"slices"
)

// Resolve looks up the element and visitor types of every collection
// in cfg in pkg and chooses a handler for each ordered pair of
// element types. The configuration must already have been validated.
func Resolve(pkg *types.Package, cfg *Config) (*File, error) {
	f := &File{
		Package: pkg.Name(),
	}
	for _, c := range cfg.Collections {
		cm, err := resolveCollection(pkg, c)
		if err != nil {
			return nil, err
		}
		f.Collections = append(f.Collections, cm)
	}
	return f, nil
}

func resolveCollection(pkg *types.Package, c Collection) (*CollectionModel, error) {
	cm := &CollectionModel{
		Name: c.Name,
	}
	elemTypes := make([]types.Type, len(c.Types))
	for i, name := range c.Types {
		t, err := lookupElemType(pkg, name)
		if err != nil {
			return nil, fmt.Errorf("collection %s: %w", c.Name, err)
		}
		// Aliases and predeclared synonyms such as byte and uint8
		// name the same type under a different spelling.
		for j, prev := range elemTypes[:i] {
			if types.Identical(prev, t) {
				return nil, &DuplicateTypeError{
					Collection: c.Name,
					Type:       name,
					Same:       c.Types[j],
				}
			}
		}
		elemTypes[i] = t
		cm.Elems = append(cm.Elems, Elem{
			Index: i,
			Type:  name,
		})
	}
	for _, v := range c.Visitors {
		vm, err := resolveVisitor(pkg, v, elemTypes)
		if err != nil {
			return nil, setCollection(err, c.Name)
		}
		cm.Visitors = append(cm.Visitors, vm)
	}
	return cm, nil
}

// setCollection fills in the collection name of every
// UnhandledPairError in err, which may be a joined error.
func setCollection(err error, coll string) error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			setCollection(e, coll)
		}
		return err
	}
	if uerr, ok := err.(*UnhandledPairError); ok {
		uerr.Collection = coll
	}
	return err
}

// lookupElemType returns the type with the given name, which must be a
// non-generic, non-interface type declared in pkg or a predeclared type.
func lookupElemType(pkg *types.Package, name string) (types.Type, error) {
	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		obj = types.Universe.Lookup(name)
	}
	if obj == nil {
		return nil, fmt.Errorf("type %s not found", name)
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s is not a type", name)
	}
	t := tn.Type()
	if named, ok := types.Unalias(t).(*types.Named); ok && named.TypeParams().Len() > 0 {
		return nil, fmt.Errorf("type %s is generic", name)
	}
	if types.IsInterface(t) {
		// Values of different dynamic types would share
		// the partition of an interface type.
		return nil, fmt.Errorf("type %s is an interface type", name)
	}
	return t, nil
}

// resolveVisitor chooses the handler for each ordered pair of elemTypes
// from the methods of the visitor type v.
func resolveVisitor(pkg *types.Package, v Visitor, elemTypes []types.Type) (*VisitorModel, error) {
	obj := pkg.Scope().Lookup(v.Type)
	if obj == nil {
		return nil, fmt.Errorf("visitor type %s not found", v.Type)
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("visitor %s is not a type", v.Type)
	}
	t := tn.Type()
	if named, ok := t.(*types.Named); ok && named.TypeParams().Len() > 0 {
		return nil, fmt.Errorf("visitor type %s is generic", v.Type)
	}
	valueSet := types.NewMethodSet(t)
	mset := valueSet
	if !types.IsInterface(t) {
		mset = types.NewMethodSet(types.NewPointer(t))
	}

	n := len(elemTypes)
	var fallback *Handler
	// candidates[i][j] holds the methods matching pair (i, j).
	candidates := make([][][]Handler, n)
	for i := range candidates {
		candidates[i] = make([][]Handler, n)
	}
	// needsPointer records the methods not in the value method set.
	needsPointer := make(map[string]bool)
	for k := range mset.Len() {
		fn := mset.At(k).Obj().(*types.Func)
		if !fn.Exported() && fn.Pkg() != pkg {
			// Promoted from another package; not callable here.
			continue
		}
		sig := fn.Type().(*types.Signature)
		if valueSet.Lookup(fn.Pkg(), fn.Name()) == nil {
			needsPointer[fn.Name()] = true
		}
		if fn.Name() == "Fallback" {
			h, err := checkFallback(pkg, v.Type, sig)
			if err != nil {
				return nil, err
			}
			fallback = h
			continue
		}
		h, i, j, ok := matchHandler(fn, sig, elemTypes)
		if !ok {
			continue
		}
		candidates[i][j] = append(candidates[i][j], h)
	}

	vm := &VisitorModel{
		Type:     v.Type,
		Method:   v.Method,
		Handlers: make([][]Handler, n),
	}
	var errs []error
	for i := range n {
		vm.Handlers[i] = make([]Handler, n)
		for j := range n {
			hs := candidates[i][j]
			switch {
			case len(hs) == 1:
				vm.Handlers[i][j] = hs[0]
			case len(hs) > 1:
				methods := make([]string, len(hs))
				for k, h := range hs {
					methods[k] = h.Method
				}
				slices.Sort(methods)
				errs = append(errs, &AmbiguousHandlerError{
					Visitor: v.Type,
					First:   typeString(pkg, elemTypes[i]),
					Second:  typeString(pkg, elemTypes[j]),
					Methods: methods,
				})
				continue
			case fallback != nil:
				vm.Handlers[i][j] = *fallback
			default:
				errs = append(errs, &UnhandledPairError{
					Visitor: v.Type,
					First:   typeString(pkg, elemTypes[i]),
					Second:  typeString(pkg, elemTypes[j]),
				})
				continue
			}
			if needsPointer[vm.Handlers[i][j].Method] {
				vm.Pointer = true
			}
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return vm, nil
}

// matchHandler reports whether fn has the form of a handler for a
// pair of element types, and if so, which pair.
func matchHandler(fn *types.Func, sig *types.Signature, elemTypes []types.Type) (Handler, int, int, bool) {
	if sig.Variadic() || sig.Params().Len() != 2 {
		return Handler{}, 0, 0, false
	}
	returnsError, ok := checkResults(sig)
	if !ok {
		return Handler{}, 0, 0, false
	}
	i := indexOf(elemTypes, sig.Params().At(0).Type())
	j := indexOf(elemTypes, sig.Params().At(1).Type())
	if i < 0 || j < 0 {
		return Handler{}, 0, 0, false
	}
	return Handler{
		Method:       fn.Name(),
		ReturnsError: returnsError,
	}, i, j, true
}

func checkFallback(pkg *types.Package, visitor string, sig *types.Signature) (*Handler, error) {
	returnsError, ok := checkResults(sig)
	if ok && !sig.Variadic() && sig.Params().Len() == 2 &&
		isEmptyInterface(sig.Params().At(0).Type()) &&
		isEmptyInterface(sig.Params().At(1).Type()) {
		return &Handler{
			Method:       "Fallback",
			Fallback:     true,
			ReturnsError: returnsError,
		}, nil
	}
	return nil, fmt.Errorf("visitor %s: Fallback method has signature %s; want func(a, b any) or func(a, b any) error", visitor, typeString(pkg, sig))
}

// checkResults reports whether sig returns nothing or just an error,
// and which of the two it is.
func checkResults(sig *types.Signature) (returnsError, ok bool) {
	switch sig.Results().Len() {
	case 0:
		return false, true
	case 1:
		errType := types.Universe.Lookup("error").Type()
		if types.Identical(sig.Results().At(0).Type(), errType) {
			return true, true
		}
	}
	return false, false
}

func isEmptyInterface(t types.Type) bool {
	iface, ok := t.Underlying().(*types.Interface)
	return ok && iface.Empty()
}

func indexOf(ts []types.Type, t types.Type) int {
	for i, et := range ts {
		if types.Identical(et, t) {
			return i
		}
	}
	return -1
}

func typeString(pkg *types.Package, t types.Type) string {
	return types.TypeString(t, types.RelativeTo(pkg))
}
