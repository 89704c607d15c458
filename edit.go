package dynarray

// grownCapacity picks the capacity for a reallocation that must fit
// need elements: double the current capacity, or need itself when
// doubling is not enough. From an empty array this yields 1. One
// policy is used for every growing edit.
func (a *Array[T]) grownCapacity(need int) int {
	next := 2 * a.capacity
	if next < need {
		next = need
	}
	return next
}

// PushBack appends v. When the array is full it reallocates first, so
// a panic during growth leaves the array unchanged. Amortized O(1).
func (a *Array[T]) PushBack(v T) {
	if a.size == a.capacity {
		a.reallocate(a.grownCapacity(a.size + 1))
	}
	*a.items.ref(a.size) = v
	a.size++
}

// Insert places v at index i, shifting [i, Len()) one slot right, and
// returns a pointer to the inserted element. i may equal Len(), which
// appends. Any pointer or view obtained before the call must be
// considered invalid afterwards. Panics if i is outside [0, Len()].
func (a *Array[T]) Insert(i int, v T) *T {
	if i < 0 || i > a.size {
		panic("dynarray: insert position out of range")
	}
	if a.size < a.capacity {
		// Room in place: walk the tail right from the back.
		for j := a.size; j > i; j-- {
			*a.items.ref(j) = *a.items.ref(j - 1)
		}
		*a.items.ref(i) = v
	} else {
		next := newBuffer[T](a.grownCapacity(a.size + 1))
		for j := 0; j < i; j++ {
			*next.ref(j) = *a.items.ref(j)
		}
		*next.ref(i) = v
		for j := i; j < a.size; j++ {
			*next.ref(j + 1) = *a.items.ref(j)
		}
		a.items.swap(&next)
		next.drop()
		a.capacity = a.items.capacity()
	}
	a.size++
	return a.items.ref(i)
}

// PopBack removes the last element in O(1). On an empty array it does
// nothing. The slot keeps its stale value until overwritten.
func (a *Array[T]) PopBack() {
	if a.size > 0 {
		a.size--
	}
}

// Erase removes the element at index i, shifting [i+1, Len()) one slot
// left. O(n) in elements shifted. Panics if i is outside [0, Len()).
func (a *Array[T]) Erase(i int) {
	if i < 0 || i >= a.size {
		panic("dynarray: erase position out of range")
	}
	for j := i + 1; j < a.size; j++ {
		*a.items.ref(j - 1) = *a.items.ref(j)
	}
	a.size--
}
