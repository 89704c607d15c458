package dynarray

import "fmt"

// Array is a resizable, contiguous-storage sequence of T. It owns
// exactly one buffer at a time and tracks the logical element count
// (size) separately from the allocated slot count (capacity), with
// 0 <= size <= capacity at all times. Slots in [size, capacity) are
// allocated but logically dead; they may hold stale values and are
// overwritten, not cleared, when the array grows back into them.
//
// Not goroutine-safe. Concurrent readers are fine as long as no
// mutation is in flight.
type Array[T any] struct {
	items    buffer[T]
	size     int
	capacity int
}

// New returns an empty array with no allocated storage.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// NewSize returns an array of n zero-valued elements, with capacity n.
// Panics if n is negative.
func NewSize[T any](n int) *Array[T] {
	if n < 0 {
		panic("dynarray: negative size")
	}
	return &Array[T]{items: newBuffer[T](n), size: n, capacity: n}
}

// Repeat returns an array of n elements, each a copy of v.
func Repeat[T any](n int, v T) *Array[T] {
	a := NewSize[T](n)
	for i := 0; i < n; i++ {
		*a.items.ref(i) = v
	}
	return a
}

// Of returns an array holding the given values in order.
func Of[T any](vs ...T) *Array[T] {
	a := NewSize[T](len(vs))
	for i, v := range vs {
		*a.items.ref(i) = v
	}
	return a
}

// WithCapacity returns an empty array with storage for n elements
// already allocated. Panics if n is negative.
func WithCapacity[T any](n int) *Array[T] {
	if n < 0 {
		panic("dynarray: negative capacity")
	}
	return &Array[T]{items: newBuffer[T](n), capacity: n}
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	return a.capacity
}

// IsEmpty reports whether the array holds no live elements.
func (a *Array[T]) IsEmpty() bool {
	return a.size == 0
}

// Get returns the element at index i without a length check beyond the
// underlying slot bound. Callers must keep i < Len(); use At for a
// checked variant.
func (a *Array[T]) Get(i int) T {
	return *a.items.ref(i)
}

// Ref returns a pointer to the element at index i. The pointer aliases
// the live buffer and is invalidated by any operation that replaces it
// (growth, Reserve, reallocating Insert). Callers must keep i < Len().
func (a *Array[T]) Ref(i int) *T {
	return a.items.ref(i)
}

// Set overwrites the element at index i. Callers must keep i < Len().
func (a *Array[T]) Set(i int, v T) {
	*a.items.ref(i) = v
}

// At returns a pointer to the element at index i, or an error wrapping
// ErrIndexOutOfRange when i is not within [0, Len()).
func (a *Array[T]) At(i int) (*T, error) {
	if i < 0 || i >= a.size {
		return nil, outOfRange(i, a.size)
	}
	return a.items.ref(i), nil
}

// Clear resets the logical size to zero in O(1). Capacity is retained
// and dead slots are not zeroed.
func (a *Array[T]) Clear() {
	a.size = 0
}

// Resize changes the logical size to n. Shrinking is an O(1) size
// reset; previously live elements beyond n stay in their slots as dead
// values. Growing reallocates to capacity 2*n, carries the existing
// elements over, and exposes a zero-valued tail. The array is unchanged
// if allocation panics mid-growth.
func (a *Array[T]) Resize(n int) {
	if n < 0 {
		panic("dynarray: negative size")
	}
	if n <= a.size {
		a.size = n
		return
	}
	next := newBuffer[T](n * 2)
	for i := 0; i < a.size; i++ {
		*next.ref(i) = *a.items.ref(i)
	}
	a.items.swap(&next)
	next.drop()
	a.size = n
	a.capacity = a.items.capacity()
}

// Reserve grows the capacity to exactly n if it is below n, moving the
// live elements into the new block. It never shrinks.
func (a *Array[T]) Reserve(n int) {
	if n <= a.capacity {
		return
	}
	a.reallocate(n)
}

// Swap exchanges the contents, sizes, and capacities of two arrays in
// O(1). Never fails.
func (a *Array[T]) Swap(other *Array[T]) {
	a.items.swap(&other.items)
	a.size, other.size = other.size, a.size
	a.capacity, other.capacity = other.capacity, a.capacity
}

// Clone returns a deep copy of the array. The copy's capacity equals
// its size; mutating either array afterwards leaves the other alone.
func (a *Array[T]) Clone() *Array[T] {
	out := NewSize[T](a.size)
	for i := 0; i < a.size; i++ {
		*out.items.ref(i) = *a.items.ref(i)
	}
	return out
}

// CopyFrom replaces the contents with a deep copy of src. The copy is
// built completely before a single swap adopts it, so a panic while
// copying leaves the receiver untouched. Copying from itself is a
// no-op, and copying from an empty source degrades to Clear, which
// keeps the current capacity.
func (a *Array[T]) CopyFrom(src *Array[T]) {
	if a == src {
		return
	}
	if src.IsEmpty() {
		a.Clear()
		return
	}
	tmp := src.Clone()
	a.Swap(tmp)
}

// MoveFrom takes ownership of src's buffer, size, and capacity in O(1)
// and leaves src fully emptied (no buffer, size and capacity zero).
// A block never has two live owners. Moving from itself is a no-op.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.items.drop()
	a.items = src.items.move()
	a.size, a.capacity = src.size, src.capacity
	src.size, src.capacity = 0, 0
}

// TakeOwnership returns a new array that has taken src's buffer and
// state, leaving src empty. This is the construction-flavored
// counterpart of MoveFrom.
func TakeOwnership[T any](src *Array[T]) *Array[T] {
	a := New[T]()
	a.MoveFrom(src)
	return a
}

// String formats the live elements like a slice, for debugging.
func (a *Array[T]) String() string {
	return fmt.Sprintf("%v", a.items.prefix(a.size))
}

// reallocate replaces the buffer with a fresh block of exactly newCap
// slots, carrying the live elements over. The old block is dropped only
// after the new one is fully populated and adopted.
func (a *Array[T]) reallocate(newCap int) {
	next := newBuffer[T](newCap)
	for i := 0; i < a.size; i++ {
		*next.ref(i) = *a.items.ref(i)
	}
	a.items.swap(&next)
	next.drop()
	a.capacity = newCap
}
