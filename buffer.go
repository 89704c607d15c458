package dynarray

// buffer is a single-owner handle over one heap-allocated block of T.
// It knows nothing about logical size or growth; it only allocates,
// transfers ownership, and hands out slot references. The block is nil
// if and only if the capacity is zero.
type buffer[T any] struct {
	block []T // len == cap == allocated slot count
}

// newBuffer allocates a block of n zero-valued slots. With n == 0 the
// buffer stays empty and no allocation happens. Allocation failure is a
// runtime panic and propagates to the caller.
func newBuffer[T any](n int) buffer[T] {
	if n < 0 {
		panic("dynarray: negative buffer capacity")
	}
	if n == 0 {
		return buffer[T]{}
	}
	return buffer[T]{block: make([]T, n)}
}

// adoptBlock wraps an already-allocated block without copying it. The
// buffer becomes the block's sole owner.
func adoptBlock[T any](block []T) buffer[T] {
	if len(block) == 0 {
		return buffer[T]{}
	}
	return buffer[T]{block: block}
}

// capacity returns the number of allocated slots.
func (b *buffer[T]) capacity() int {
	return len(b.block)
}

// valid reports whether the buffer owns a block.
func (b *buffer[T]) valid() bool {
	return b.block != nil
}

// ref returns a pointer to slot i. Callers must keep i < capacity();
// violating that panics.
func (b *buffer[T]) ref(i int) *T {
	return &b.block[i]
}

// prefix returns a window over the first n slots of the owned block.
// The window aliases the block and is invalidated when the buffer is
// swapped, released, or dropped.
func (b *buffer[T]) prefix(n int) []T {
	if n == 0 {
		return nil
	}
	return b.block[:n]
}

// move transfers ownership of the block to the returned buffer and
// leaves the receiver empty.
func (b *buffer[T]) move() buffer[T] {
	out := buffer[T]{block: b.block}
	b.block = nil
	return out
}

// release relinquishes ownership of the block and returns it. The
// caller is responsible for it from here on; the buffer is empty after.
func (b *buffer[T]) release() []T {
	block := b.block
	b.block = nil
	return block
}

// drop frees the block eagerly. Safe to call on an empty buffer.
func (b *buffer[T]) drop() {
	b.block = nil
}

// swap exchanges the owned blocks of two buffers in O(1). Never fails,
// which is what makes it the adoption step of every reallocation.
func (b *buffer[T]) swap(other *buffer[T]) {
	b.block, other.block = other.block, b.block
}
