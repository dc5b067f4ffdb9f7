package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoSumSorted(t *testing.T) {
	i, j, ok := TwoSumSorted([]int{2, 7, 11, 15}, 9)
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j)

	i, j, ok = TwoSumSorted([]int{1, 3, 4, 8}, 12)
	require.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, 3, j)

	_, _, ok = TwoSumSorted([]int{1, 2, 3}, 100)
	assert.False(t, ok)
	_, _, ok = TwoSumSorted(nil, 0)
	assert.False(t, ok)
}

func TestThreeSum(t *testing.T) {
	got := ThreeSum([]int{-1, 0, 1, 2, -1, -4}, 0)
	assert.Equal(t, [][3]int{{-1, -1, 2}, {-1, 0, 1}}, got)

	assert.Empty(t, ThreeSum([]int{1, 2}, 3))
	assert.Equal(t, [][3]int{{0, 0, 0}}, ThreeSum([]int{0, 0, 0, 0}, 0))
}

func TestInPlaceHelpers(t *testing.T) {
	arr := []int{1, 1, 2, 3, 3, 3, 7}
	n := RemoveDuplicates(arr)
	assert.Equal(t, []int{1, 2, 3, 7}, arr[:n])
	assert.Equal(t, 0, RemoveDuplicates(nil))

	z := []int{0, 1, 0, 3, 12}
	MoveZeros(z)
	assert.Equal(t, []int{1, 3, 12, 0, 0}, z)

	r := []int{1, 2, 3, 4}
	ReverseArray(r)
	assert.Equal(t, []int{4, 3, 2, 1}, r)

	colors := []int{2, 0, 2, 1, 1, 0}
	SortColors(colors)
	assert.Equal(t, []int{0, 0, 1, 1, 2, 2}, colors)

	p := []int{9, 1, 8, 2, 7, 3}
	cut := PartitionArray(p, 5)
	assert.Equal(t, 3, cut)
	for _, x := range p[:cut] {
		assert.Less(t, x, 5)
	}
	for _, x := range p[cut:] {
		assert.GreaterOrEqual(t, x, 5)
	}
}

func TestMaxWaterContainer(t *testing.T) {
	assert.Equal(t, 49, MaxWaterContainer([]int{1, 8, 6, 2, 5, 4, 8, 3, 7}))
	assert.Equal(t, 1, MaxWaterContainer([]int{1, 1}))
	assert.Equal(t, 0, MaxWaterContainer([]int{4}))
}

func TestIsPalindrome(t *testing.T) {
	assert.True(t, IsPalindrome("A man, a plan, a canal: Panama"))
	assert.False(t, IsPalindrome("race a car"))
	assert.True(t, IsPalindrome(""))
	assert.True(t, IsPalindrome(".,"))
}

func TestFixedWindows(t *testing.T) {
	best, ok := MaxSumSubarrayK([]int{2, 1, 5, 1, 3, 2}, 3)
	require.True(t, ok)
	assert.Equal(t, 9, best)

	_, ok = MaxSumSubarrayK([]int{1, 2}, 3)
	assert.False(t, ok)
	_, ok = MaxSumSubarrayK([]int{1, 2}, 0)
	assert.False(t, ok)

	assert.Equal(t, []int{3, 3, 5, 5, 6, 7},
		SlidingWindowMax([]int{1, 3, -1, -3, 5, 3, 6, 7}, 3))
	assert.Equal(t, []int{4}, SlidingWindowMax([]int{4}, 1))
	assert.Nil(t, SlidingWindowMax([]int{1, 2}, 3))
}

func TestVariableWindows(t *testing.T) {
	assert.Equal(t, 2, MinSubarrayLen([]int{2, 3, 1, 2, 4, 3}, 7))
	assert.Equal(t, 1, MinSubarrayLen([]int{1, 4, 4}, 4))
	assert.Equal(t, 0, MinSubarrayLen([]int{1, 1, 1}, 100))

	assert.Equal(t, 3, LongestUniqueSubstring("abcabcbb"))
	assert.Equal(t, 1, LongestUniqueSubstring("bbbbb"))
	assert.Equal(t, 3, LongestUniqueSubstring("pwwkew"))
	assert.Equal(t, 0, LongestUniqueSubstring(""))

	assert.Equal(t, 2, CountSubarraysSum([]int{1, 1, 1}, 2))
	assert.Equal(t, 2, CountSubarraysSum([]int{1, 2, 3}, 3))
	assert.Equal(t, 4, CountSubarraysSum([]int{1, -1, 1, -1}, 0))
}

func TestFindAnagrams(t *testing.T) {
	assert.Equal(t, []int{0, 6}, FindAnagrams("cbaebabacd", "abc"))
	assert.Equal(t, []int{0, 1, 2}, FindAnagrams("abab", "ab"))
	assert.Nil(t, FindAnagrams("ab", "abc"))
	assert.Nil(t, FindAnagrams("abc", ""))
}

func TestMinWindowSubstring(t *testing.T) {
	start, length, ok := MinWindowSubstring("ADOBECODEBANC", "ABC")
	require.True(t, ok)
	assert.Equal(t, "BANC", "ADOBECODEBANC"[start:start+length])

	start, length, ok = MinWindowSubstring("a", "a")
	require.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 1, length)

	_, _, ok = MinWindowSubstring("a", "aa")
	assert.False(t, ok)
	_, _, ok = MinWindowSubstring("", "a")
	assert.False(t, ok)
}
