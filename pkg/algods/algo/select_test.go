package algo

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chuyangliu/selecteval/pkg/logging"
)

const seed = 20201004

var selectors = map[string]func([]int, int) (int, error){
	"heap":    FindKthLargest,
	"ordered": KthLargestOrdered,
}

func TestFindKthLargest(t *testing.T) {
	cases := []struct {
		nums []int
		k    int
		want int
	}{
		{[]int{3, 2, 1, 5, 6, 4}, 2, 5},
		{[]int{3, 2, 3, 1, 2, 4, 5, 5, 6}, 4, 4},
		{[]int{1}, 1, 1},
		{[]int{-1, -7, -3}, 1, -1},
		{[]int{-1, -7, -3}, 3, -7},
		{[]int{2, 2, 2, 2}, 3, 2},
		{[]int{7, 7, 1}, 2, 7},
	}
	for name, sel := range selectors {
		for _, c := range cases {
			got, err := sel(c.nums, c.k)
			assert.NoError(t, err, name)
			assert.Equal(t, c.want, got, "%v: nums=%v k=%v", name, c.nums, c.k)
		}
	}
}

func TestFindKthLargestInvalid(t *testing.T) {
	cases := []struct {
		nums []int
		k    int
	}{
		{nil, 1},
		{[]int{}, 0},
		{[]int{1, 2}, 0},
		{[]int{1, 2}, -1},
		{[]int{1, 2}, 3},
	}
	for name, sel := range selectors {
		for _, c := range cases {
			_, err := sel(c.nums, c.k)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "%v: nums=%v k=%v err=%v", name, c.nums, c.k, err)
		}
	}
}

func TestFindKthLargestInputUnchanged(t *testing.T) {
	nums := []int{9, 4, 6, 1}
	_, err := FindKthLargest(nums, 2)
	assert.NoError(t, err)
	assert.Equal(t, []int{9, 4, 6, 1}, nums)
}

func TestFindKthLargestRandom(t *testing.T) {
	r := rand.New(rand.NewSource(seed))
	for round := 0; round < 200; round++ {
		n := r.Intn(100) + 1
		nums := make([]int, n)
		for i := range nums {
			nums[i] = r.Intn(40) - 20
		}
		sorted := append([]int(nil), nums...)
		sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

		for k := 1; k <= n; k++ {
			for name, sel := range selectors {
				got, err := sel(nums, k)
				if !assert.NoError(t, err) || !assert.Equal(t, sorted[k-1], got, "%v: nums=%v k=%v", name, nums, k) {
					return
				}
			}
		}
	}
}

func TestTracker(t *testing.T) {
	tr, err := NewTracker(logging.LevelError, 3, []int{4, 5, 8, 2})
	assert.NoError(t, err)
	assert.Equal(t, 3, tr.K())
	assert.Equal(t, 4, tr.Len())

	steps := []struct {
		add, want int
	}{
		{3, 4},
		{5, 5},
		{10, 5},
		{9, 8},
		{4, 8},
	}
	for _, s := range steps {
		got, ok := tr.Add(s.add)
		assert.True(t, ok)
		assert.Equal(t, s.want, got, "add=%v", s.add)
	}
	assert.Equal(t, 9, tr.Len())
}

func TestTrackerWarmup(t *testing.T) {
	tr, err := NewTracker(logging.LevelError, 2, nil)
	assert.NoError(t, err)

	_, ok := tr.Kth()
	assert.False(t, ok)
	_, ok = tr.Add(1)
	assert.False(t, ok)

	got, ok := tr.Add(3)
	assert.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestTrackerInvalid(t *testing.T) {
	_, err := NewTracker(logging.LevelError, 0, []int{1})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
