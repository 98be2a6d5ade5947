package concurrency

import (
	"sync/atomic"
)

// AtomicUint64 is a wrapper with a simpler interface around atomic.(Add|Store|Load|CompareAndSwap)Uint64 functions.
type AtomicUint64 struct {
	uint64
}

// NewAtomicUint64 initializes a new AtomicUint64 with a given value.
func NewAtomicUint64(n uint64) AtomicUint64 {
	return AtomicUint64{n}
}

// Add atomically adds n to the value.
func (i *AtomicUint64) Add(n uint64) uint64 {
	return atomic.AddUint64(&i.uint64, n)
}

// Set atomically sets n as new value.
func (i *AtomicUint64) Set(n uint64) {
	atomic.StoreUint64(&i.uint64, n)
}

// Get atomically returns the current value.
func (i *AtomicUint64) Get() uint64 {
	return atomic.LoadUint64(&i.uint64)
}

// CompareAndSwap automatically swaps the old with the new value.
func (i *AtomicUint64) CompareAndSwap(oldVal, newVal uint64) (swapped bool) {
	return atomic.CompareAndSwapUint64(&i.uint64, oldVal, newVal)
}
