// Package pool provides pooled slices for decoder working state.
package pool

import "sync"

// uint64SlicePool pools operand stacks used by the packet evaluator.
var uint64SlicePool = sync.Pool{
	New: func() any { return &[]uint64{} },
}

// GetUint64Slice retrieves and resizes a uint64 slice from the pool.
//
// The returned slice has the exact length specified by size. If the pooled
// slice has insufficient capacity, a new slice is allocated. The caller must
// call the returned cleanup function (typically with defer) to return the
// slice to the pool.
//
// Example:
//
//	operands, cleanup := pool.GetUint64Slice(0)
//	defer cleanup()
//	// Use operands slice...
func GetUint64Slice(size int) ([]uint64, func()) {
	ptr, _ := uint64SlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint64, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { uint64SlicePool.Put(ptr) }
}
