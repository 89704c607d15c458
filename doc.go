// Package dynarray implements a from-scratch growable array: a generic
// contiguous-storage sequence built on a single owned heap block, with
// the logical element count tracked separately from the allocated
// capacity.
//
// # Overview
//
// Array[T] reproduces the behavioral contract of a standard growable
// array without leaning on append or any pre-built container: indexed
// access, insertion and removal anywhere, amortized O(1) PushBack,
// explicit capacity management, and deep-copy/move semantics. It is
// useful when the growth policy, slot reuse, and reallocation points
// need to be explicit and observable rather than left to the runtime.
//
// # Basic Usage
//
//	a := dynarray.Of(1, 2, 3)
//	a.PushBack(4)
//	a.Insert(1, 9)         // {1, 9, 2, 3, 4}
//	a.Erase(0)             // {9, 2, 3, 4}
//
//	v, err := a.At(10)     // checked access
//	if err != nil { ... }  // wraps dynarray.ErrIndexOutOfRange
//	_ = a.Get(0)           // unchecked access, caller upholds the bound
//
//	for i, v := range a.All() {
//		...
//	}
//
// # Memory Layout
//
// The array owns exactly one contiguous block at a time. Slots in
// [0, Len()) hold live elements; slots in [Len(), Cap()) are allocated
// but dead and may hold stale values, since Clear, PopBack, and
// shrinking Resize only move the size marker. Every capacity change
// builds a fresh fully-populated block and adopts it with a single
// swap, so a failed reallocation leaves the array exactly as it was.
//
// # Invalidation
//
// Pointers from Ref/At/Insert and windows from View alias the live
// block. Any operation that replaces the block (growing Resize,
// Reserve, reallocating PushBack or Insert, MoveFrom, Swap) invalidates
// all of them.
//
// # Thread Safety
//
// Array is not goroutine-safe. Concurrent read-only access is fine as
// long as no mutation is in flight; mutation requires external
// synchronization.
//
// # Performance Characteristics
//
//   - Get/Ref/Set/At: O(1)
//   - PushBack/PopBack: amortized O(1)
//   - Insert/Erase: O(n) in elements shifted
//   - Clear and shrinking Resize: O(1)
//   - Growing Resize/Reserve: O(n) in elements carried over
package dynarray
