package algo

import (
	"fmt"

	"github.com/chuyangliu/selecteval/pkg/algods/heap"
	"github.com/chuyangliu/selecteval/pkg/logging"
)

// Tracker reports the k-th largest value of a stream of ints.
// Methods of the tracker are not thread-safe.
type Tracker struct {
	logger *logging.Logger
	heap   *heap.Bounded // largest k values seen so far
	seen   int
}

// NewTracker creates a Tracker for rank k, seeded with nums.
func NewTracker(logLevel int, k int, nums []int) (*Tracker, error) {
	if k < 1 {
		return nil, fmt.Errorf("Rank out of range | k=%v | err=[%w]", k, ErrInvalidArgument)
	}
	t := &Tracker{
		logger: logging.New(logLevel),
		heap:   heap.NewBounded(k),
	}
	for _, v := range nums {
		t.Add(v)
	}
	return t, nil
}

// Add records v and returns the current k-th largest value.
// The second return value is false while fewer than k values have been recorded.
func (t *Tracker) Add(v int) (int, bool) {
	t.seen++
	if evicted, ok := t.heap.Push(v); ok {
		t.logger.Debug("Evict | value=%v | seen=%v", evicted, t.seen)
	}
	return t.Kth()
}

// Kth returns the current k-th largest value, or false if fewer than k values have been recorded.
func (t *Tracker) Kth() (int, bool) {
	if !t.heap.Full() {
		return 0, false
	}
	return t.heap.Min()
}

// K returns the tracked rank.
func (t *Tracker) K() int {
	return t.heap.Cap()
}

// Len returns the number of values recorded.
func (t *Tracker) Len() int {
	return t.seen
}
