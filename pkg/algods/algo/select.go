// Package algo implements selection algorithms over int sequences.
package algo

import (
	"fmt"

	"github.com/chuyangliu/selecteval/pkg/algods/heap"
	"github.com/chuyangliu/selecteval/pkg/algods/treemap"
)

// FindKthLargest returns the k-th largest value of nums (1-indexed, duplicates counted), i.e. nums[k-1] once nums
// is sorted in descending order. It runs in O(n log k) time with O(k) extra space and does not modify nums.
func FindKthLargest(nums []int, k int) (int, error) {
	if err := checkArgs(nums, k); err != nil {
		return 0, err
	}
	h := heap.NewBounded(k)
	for _, v := range nums {
		h.Push(v)
	}
	kth, _ := h.Min()
	return kth, nil
}

// KthLargestOrdered returns the same result as FindKthLargest by counting values in an ordered map and walking it
// from the largest key. It takes O(n log n) time and O(d) space for d distinct values.
func KthLargestOrdered(nums []int, k int) (int, error) {
	if err := checkArgs(nums, k); err != nil {
		return 0, err
	}

	counts := treemap.New(treemap.IntCmp)
	for _, v := range nums {
		count := 0
		if raw, found := counts.Get(v); found {
			count = raw.(int)
		}
		counts.Put(v, count+1)
	}

	var kth int
	remain := k
	counts.Descending(func(key, value interface{}) bool {
		remain -= value.(int)
		if remain <= 0 {
			kth = key.(int)
			return false
		}
		return true
	})
	return kth, nil
}

func checkArgs(nums []int, k int) error {
	if len(nums) == 0 {
		return fmt.Errorf("Empty input | k=%v | err=[%w]", k, ErrInvalidArgument)
	}
	if k < 1 || k > len(nums) {
		return fmt.Errorf("Rank out of range | k=%v | len=%v | err=[%w]", k, len(nums), ErrInvalidArgument)
	}
	return nil
}
