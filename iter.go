package dynarray

import "iter"

// View returns a mutable window over the live elements [0, Len()).
// The window aliases the owned buffer: writes through it are visible in
// the array, and any buffer-replacing operation (growth, Reserve,
// reallocating Insert, MoveFrom) invalidates it. Returns nil when the
// array is empty.
func (a *Array[T]) View() []T {
	return a.items.prefix(a.size)
}

// Values returns an iterator over copies of the live elements in order.
// The array must not be mutated while iterating.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(*a.items.ref(i)) {
				return
			}
		}
	}
}

// All returns an iterator over index/element pairs of the live
// elements in order. The array must not be mutated while iterating.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, *a.items.ref(i)) {
				return
			}
		}
	}
}
