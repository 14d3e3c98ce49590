// Package heap implements a capacity-bounded min-heap of ints.
package heap

import (
	"fmt"
	"strings"

	gbh "github.com/emirpasic/gods/trees/binaryheap"
	gutils "github.com/emirpasic/gods/utils"
)

// Bounded keeps at most Cap() values and evicts its minimum whenever a push would exceed the capacity.
// As a result it always holds the largest Cap() values pushed so far, and Min() is the smallest of them.
// Methods of the heap are not thread-safe.
type Bounded struct {
	heap *gbh.Heap
	cap  int
}

// NewBounded creates an empty Bounded heap holding at most capacity values.
// A capacity below 1 is treated as 1.
func NewBounded(capacity int) *Bounded {
	if capacity < 1 {
		capacity = 1
	}
	return &Bounded{
		heap: gbh.NewWith(gutils.IntComparator),
		cap:  capacity,
	}
}

// String returns a string representation of the heap in ascending order.
func (b *Bounded) String() string {
	strs := make([]string, 0, b.heap.Size())
	for _, v := range b.Values() {
		strs = append(strs, fmt.Sprint(v))
	}
	return "heap[" + strings.Join(strs, " ") + "]"
}

// Push adds v to the heap.
// If the heap overflows, the minimum is removed and returned with ok set to true.
func (b *Bounded) Push(v int) (evicted int, ok bool) {
	b.heap.Push(v)
	if b.heap.Size() <= b.cap {
		return 0, false
	}
	raw, _ := b.heap.Pop()
	return raw.(int), true
}

// Min returns the smallest value kept, or false if the heap is empty.
func (b *Bounded) Min() (int, bool) {
	raw, found := b.heap.Peek()
	if !found {
		return 0, false
	}
	return raw.(int), true
}

// Size returns the number of values kept.
func (b *Bounded) Size() int {
	return b.heap.Size()
}

// Cap returns the maximum number of values kept.
func (b *Bounded) Cap() int {
	return b.cap
}

// Full reports whether the heap holds Cap() values.
func (b *Bounded) Full() bool {
	return b.heap.Size() == b.cap
}

// Values returns a copy of the kept values in ascending order.
func (b *Bounded) Values() []int {
	raws := b.heap.Values()
	gutils.Sort(raws, gutils.IntComparator)
	values := make([]int, len(raws))
	for i := 0; i < len(raws); i++ {
		values[i], _ = raws[i].(int)
	}
	return values
}
