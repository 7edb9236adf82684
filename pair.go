package hetvec

// Within calls f once for every pair of distinct values in p.
// For values p[i] and p[j] with i < j, it calls f(p[i], p[j]);
// the mirrored call is never made.
//
// If f returns an error, Within stops and returns it.
func Within[T any](p *Partition[T], f func(a, b T) error) error {
	items := p.items
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if err := f(items[i], items[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

// Forward pairs x with every value in p. For each value y in p, in
// insertion order, it calls f(y, x) and then g(x, y), so
// both argument orders are presented.
//
// If either function returns an error, Forward stops and returns it.
func Forward[U, T any](x U, p *Partition[T], f func(T, U) error, g func(U, T) error) error {
	for _, y := range p.items {
		if err := f(y, x); err != nil {
			return err
		}
		if err := g(x, y); err != nil {
			return err
		}
	}
	return nil
}
