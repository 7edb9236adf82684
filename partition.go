package hetvec

import "iter"

// Partition holds a slice-backed sequence of values of a single type.
// Values can only be added at the end; they are kept in the
// order they were pushed.
//
// The zero value is an empty partition, ready to use.
type Partition[T any] struct {
	// items holds the values in insertion order.
	items []T
}

// Push adds x to the end of the partition.
func (p *Partition[T]) Push(x T) {
	p.items = append(p.items, x)
}

// PushSlice adds all the elements of src to the end of the
// partition, in order.
func (p *Partition[T]) PushSlice(src []T) {
	p.items = append(p.items, src...)
}

// Len returns the number of values in the partition.
func (p *Partition[T]) Len() int {
	return len(p.items)
}

// Cap returns the capacity of the underlying slice.
func (p *Partition[T]) Cap() int {
	return cap(p.items)
}

// Reset removes all values from the partition. The backing
// storage is kept for reuse, but the old values are zeroed
// so that they can be garbage collected.
func (p *Partition[T]) Reset() {
	clear(p.items)
	p.items = p.items[:0]
}

// All returns an iterator over all the values in the partition,
// in insertion order.
func (p *Partition[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range p.items {
			if !yield(x) {
				break
			}
		}
	}
}
