package dynarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuffer(t *testing.T) {
	b := newBuffer[int](4)
	require.True(t, b.valid())
	assert.Equal(t, 4, b.capacity())
	for i := 0; i < 4; i++ {
		assert.Equal(t, 0, *b.ref(i), "slot %d not zero-valued", i)
	}
}

func TestNewBufferEmpty(t *testing.T) {
	b := newBuffer[int](0)
	assert.False(t, b.valid())
	assert.Equal(t, 0, b.capacity())
}

func TestNewBufferNegative(t *testing.T) {
	assert.Panics(t, func() { newBuffer[int](-1) })
}

func TestAdoptBlock(t *testing.T) {
	block := make([]string, 3)
	block[1] = "x"
	b := adoptBlock(block)
	require.True(t, b.valid())
	assert.Equal(t, 3, b.capacity())
	assert.Equal(t, "x", *b.ref(1))

	// An empty block adopts to the empty state.
	empty := adoptBlock[int](nil)
	assert.False(t, empty.valid())
}

func TestBufferRefWrites(t *testing.T) {
	b := newBuffer[int](2)
	*b.ref(0) = 10
	*b.ref(1) = 20
	assert.Equal(t, 10, *b.ref(0))
	assert.Equal(t, 20, *b.ref(1))
}

func TestBufferMove(t *testing.T) {
	src := newBuffer[int](2)
	*src.ref(0) = 7

	dst := src.move()
	assert.False(t, src.valid(), "moved-from buffer must be empty")
	assert.Equal(t, 0, src.capacity())
	require.True(t, dst.valid())
	assert.Equal(t, 7, *dst.ref(0))
}

func TestBufferRelease(t *testing.T) {
	b := newBuffer[int](3)
	*b.ref(2) = 9

	block := b.release()
	assert.False(t, b.valid())
	require.Len(t, block, 3)
	assert.Equal(t, 9, block[2])

	// Releasing an empty buffer yields nothing.
	assert.Nil(t, b.release())
}

func TestBufferDrop(t *testing.T) {
	b := newBuffer[int](2)
	b.drop()
	assert.False(t, b.valid())
	b.drop() // idempotent
	assert.False(t, b.valid())
}

func TestBufferSwap(t *testing.T) {
	x := newBuffer[int](1)
	*x.ref(0) = 1
	y := newBuffer[int](2)
	*y.ref(0) = 2

	x.swap(&y)
	assert.Equal(t, 2, x.capacity())
	assert.Equal(t, 2, *x.ref(0))
	assert.Equal(t, 1, y.capacity())
	assert.Equal(t, 1, *y.ref(0))
}

func TestBufferPrefix(t *testing.T) {
	b := newBuffer[int](4)
	*b.ref(0) = 1
	*b.ref(1) = 2

	w := b.prefix(2)
	assert.Equal(t, []int{1, 2}, w)
	assert.Nil(t, b.prefix(0))

	// The window aliases the block.
	w[0] = 5
	assert.Equal(t, 5, *b.ref(0))
}
