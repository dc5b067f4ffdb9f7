package dp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequences(t *testing.T) {
	assert.Equal(t, int64(0), Fibonacci(-1))
	assert.Equal(t, int64(0), Fibonacci(0))
	assert.Equal(t, int64(1), Fibonacci(1))
	assert.Equal(t, int64(55), Fibonacci(10))
	assert.Equal(t, int64(12586269025), Fibonacci(50))

	assert.Equal(t, int64(0), ClimbingStairs(0))
	assert.Equal(t, int64(2), ClimbingStairs(2))
	assert.Equal(t, int64(8), ClimbingStairs(5))

	assert.Equal(t, int64(0), Tribonacci(0))
	assert.Equal(t, int64(1), Tribonacci(1))
	assert.Equal(t, int64(4), Tribonacci(4))
	assert.Equal(t, int64(1389537), Tribonacci(25))
}

func TestKnapsack(t *testing.T) {
	weights := []int{1, 3, 4, 5}
	values := []int{1, 4, 5, 7}
	assert.Equal(t, 9, Knapsack01(weights, values, 7))
	assert.Equal(t, 0, Knapsack01(weights, values, 0))
	assert.Equal(t, 0, Knapsack01(nil, nil, 10))

	assert.Equal(t, 10, KnapsackUnbounded([]int{2, 3}, []int{3, 4}, 7))
}

func TestSubsetSums(t *testing.T) {
	nums := []int{3, 34, 4, 12, 5, 2}
	assert.True(t, SubsetSum(nums, 9))
	assert.False(t, SubsetSum(nums, 30))
	assert.True(t, SubsetSum(nil, 0))

	assert.True(t, CanPartition([]int{1, 5, 11, 5}))
	assert.False(t, CanPartition([]int{1, 2, 3, 5}))

	assert.Equal(t, 5, TargetSumWays([]int{1, 1, 1, 1, 1}, 3))
	assert.Equal(t, 0, TargetSumWays([]int{1, 2}, 10))
}

func TestStringDP(t *testing.T) {
	assert.Equal(t, 3, LCS("abcde", "ace"))
	assert.Equal(t, 0, LCS("abc", ""))
	assert.Equal(t, 4, LongestCommonSubstring("abcdxyz", "xyzabcd"))
	assert.Equal(t, 6, LongestCommonSubstring("zxabcdezy", "yzabcdezx"))

	assert.Equal(t, 3, EditDistance("horse", "ros"))
	assert.Equal(t, 5, EditDistance("", "intro"))
	assert.Equal(t, 0, EditDistance("same", "same"))

	assert.Equal(t, 4, LongestPalindromicSubsequence("bbbab"))
	assert.Equal(t, 1, LongestPalindromicSubsequence("abcd"))

	start, length := LongestPalindromicSubstring("babad")
	assert.Equal(t, 3, length)
	assert.Contains(t, []int{0, 1}, start) // "bab" or "aba"
	start, length = LongestPalindromicSubstring("cbbd")
	assert.Equal(t, 1, start)
	assert.Equal(t, 2, length)
	_, length = LongestPalindromicSubstring("")
	assert.Equal(t, 0, length)
}

func TestSubarrays(t *testing.T) {
	assert.Equal(t, 4, LIS([]int{10, 9, 2, 5, 3, 7, 101, 18}))
	assert.Equal(t, 1, LIS([]int{7, 7, 7}))
	assert.Equal(t, 0, LIS(nil))

	assert.Equal(t, 6, MaxSubarraySum([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4}))
	assert.Equal(t, -1, MaxSubarraySum([]int{-3, -1, -2}))
	assert.Equal(t, 0, MaxSubarraySum(nil))

	assert.Equal(t, 6, MaxProductSubarray([]int{2, 3, -2, 4}))
	assert.Equal(t, 24, MaxProductSubarray([]int{-2, 3, -4}))
	assert.Equal(t, 0, MaxProductSubarray([]int{-2, 0, -1}))
}

func TestCoins(t *testing.T) {
	assert.Equal(t, 3, CoinChangeMin([]int{1, 2, 5}, 11))
	assert.Equal(t, -1, CoinChangeMin([]int{2}, 3))
	assert.Equal(t, 0, CoinChangeMin([]int{2}, 0))

	assert.Equal(t, 4, CoinChangeWays([]int{1, 2, 5}, 5))
	assert.Equal(t, 1, CoinChangeWays([]int{3}, 0))
	assert.Equal(t, 0, CoinChangeWays([]int{3}, 2))
}

func TestGrids(t *testing.T) {
	assert.Equal(t, int64(28), UniquePaths(3, 7))
	assert.Equal(t, int64(1), UniquePaths(1, 1))
	assert.Equal(t, int64(0), UniquePaths(0, 5))

	grid := [][]int{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}
	assert.Equal(t, 2, UniquePathsObstacles(grid))
	assert.Equal(t, 0, UniquePathsObstacles([][]int{{1}}))

	assert.Equal(t, 7, MinPathSum([][]int{{1, 3, 1}, {1, 5, 1}, {4, 2, 1}}))
}

func TestRobbery(t *testing.T) {
	assert.Equal(t, 12, HouseRobber([]int{2, 7, 9, 3, 1}))
	assert.Equal(t, 0, HouseRobber(nil))

	assert.Equal(t, 3, HouseRobberCircular([]int{2, 3, 2}))
	assert.Equal(t, 4, HouseRobberCircular([]int{1, 2, 3, 1}))
	assert.Equal(t, 5, HouseRobberCircular([]int{5}))
}

func TestStocks(t *testing.T) {
	assert.Equal(t, 5, MaxProfitOneTxn([]int{7, 1, 5, 3, 6, 4}))
	assert.Equal(t, 0, MaxProfitOneTxn([]int{7, 6, 4, 3, 1}))

	assert.Equal(t, 7, MaxProfitUnlimited([]int{7, 1, 5, 3, 6, 4}))

	assert.Equal(t, 3, MaxProfitCooldown([]int{1, 2, 3, 0, 2}))
	assert.Equal(t, 0, MaxProfitCooldown([]int{5}))
}

func TestCutsAndChains(t *testing.T) {
	assert.Equal(t, 22, RodCutting([]int{1, 5, 8, 9, 10, 17, 17, 20}))
	assert.Equal(t, 0, RodCutting(nil))

	assert.Equal(t, 18, MatrixChainMultiply([]int{1, 2, 3, 4}))
	assert.Equal(t, 0, MatrixChainMultiply([]int{5, 10}))
}

func TestWordBreak(t *testing.T) {
	assert.True(t, WordBreak("leetcode", []string{"leet", "code"}))
	assert.True(t, WordBreak("applepenapple", []string{"apple", "pen"}))
	assert.False(t, WordBreak("catsandog", []string{"cats", "dog", "sand", "and", "cat"}))
	assert.True(t, WordBreak("", nil))
}
