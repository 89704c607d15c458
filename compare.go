package dynarray

import "cmp"

// Equal reports whether a and b have the same length and equal elements
// at every index.
func Equal[T comparable](a, b *Array[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if *a.items.ref(i) != *b.items.ref(i) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically: the first unequal element
// pair decides, otherwise the shorter array is smaller. Returns -1, 0,
// or +1.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if c := cmp.Compare(*a.items.ref(i), *b.items.ref(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}

// Less reports whether a orders strictly before b.
func Less[T cmp.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) < 0
}

// LessEqual reports whether a orders before b or equals it.
func LessEqual[T cmp.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a orders strictly after b.
func Greater[T cmp.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) > 0
}

// GreaterEqual reports whether a orders after b or equals it.
func GreaterEqual[T cmp.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) >= 0
}
