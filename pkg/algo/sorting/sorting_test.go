package sorting

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomInts(r *rand.Rand, n int) []int {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = r.Intn(2000) - 1000
	}
	return arr
}

func TestComparisonSorts(t *testing.T) {
	sorts := map[string]func([]int){
		"bubble":      Bubble[int],
		"selection":   Selection[int],
		"insertion":   Insertion[int],
		"merge":       Merge[int],
		"quick":       Quick[int],
		"quickMedian": QuickMedian[int],
		"shell":       Shell[int],
		"counting":    Counting,
	}
	r := rand.New(rand.NewSource(9))

	for name, fn := range sorts {
		t.Run(name, func(t *testing.T) {
			for _, arr := range [][]int{
				nil,
				{1},
				{2, 1},
				{5, 5, 5, 5},
				{1, 2, 3, 4, 5},
				{5, 4, 3, 2, 1},
				randomInts(r, 300),
			} {
				work := append([]int(nil), arr...)
				want := append([]int(nil), arr...)
				sort.Ints(want)

				fn(work)
				require.Equal(t, want, work)
				require.True(t, IsSorted(work))
			}
		})
	}
}

func TestGenericOverStrings(t *testing.T) {
	words := []string{"pear", "apple", "fig", "banana"}
	Quick(words)
	assert.Equal(t, []string{"apple", "banana", "fig", "pear"}, words)

	floats := []float64{3.2, -1.5, 0.0, 2.7}
	Merge(floats)
	assert.True(t, IsSorted(floats))
}

func TestRadix(t *testing.T) {
	arr := []int{170, 45, 75, 90, 802, 24, 2, 66}
	Radix(arr)
	assert.Equal(t, []int{2, 24, 45, 66, 75, 90, 170, 802}, arr)

	single := []int{7}
	Radix(single)
	assert.Equal(t, []int{7}, single)

	zeros := []int{0, 0, 1, 0}
	Radix(zeros)
	assert.Equal(t, []int{0, 0, 0, 1}, zeros)
}

func TestDutchFlag(t *testing.T) {
	arr := []int{2, 0, 2, 1, 1, 0}
	DutchFlag(arr)
	assert.Equal(t, []int{0, 0, 1, 1, 2, 2}, arr)

	DutchFlag(nil)

	ones := []int{1, 1, 1}
	DutchFlag(ones)
	assert.Equal(t, []int{1, 1, 1}, ones)
}

func TestQuickSelect(t *testing.T) {
	arr := []int{7, 10, 4, 3, 20, 15}

	v, ok := QuickSelect(arr, 0)
	require.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = QuickSelect(arr, 2)
	require.True(t, ok)
	assert.Equal(t, 7, v)

	v, ok = QuickSelect(arr, 5)
	require.True(t, ok)
	assert.Equal(t, 20, v)

	_, ok = QuickSelect(arr, 6)
	assert.False(t, ok)
	_, ok = QuickSelect(arr, -1)
	assert.False(t, ok)
	_, ok = QuickSelect(nil, 0)
	assert.False(t, ok)

	// Input must be untouched.
	assert.Equal(t, []int{7, 10, 4, 3, 20, 15}, arr)
}

func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted([]int{1, 2, 2, 3}))
	assert.False(t, IsSorted([]int{3, 1}))
	assert.True(t, IsSorted([]int{}))

	assert.True(t, IsSortedDesc([]int{5, 3, 3, 1}))
	assert.False(t, IsSortedDesc([]int{1, 5}))
}
