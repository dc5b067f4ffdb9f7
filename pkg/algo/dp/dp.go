// Package dp collects classic dynamic-programming routines. All functions
// are pure: inputs are never mutated and results are freshly allocated.
package dp

// Fibonacci returns the nth Fibonacci number. Negative n yields 0.
func Fibonacci(n int) int64 {
	if n < 0 {
		return 0
	}
	if n <= 1 {
		return int64(n)
	}
	var prev2, prev1 int64 = 0, 1
	for i := 2; i <= n; i++ {
		prev2, prev1 = prev1, prev1+prev2
	}
	return prev1
}

// ClimbingStairs counts the distinct 1-or-2-step ways to climb n stairs.
func ClimbingStairs(n int) int64 {
	if n < 0 {
		return 0
	}
	if n <= 2 {
		return int64(n)
	}
	var prev2, prev1 int64 = 1, 2
	for i := 3; i <= n; i++ {
		prev2, prev1 = prev1, prev1+prev2
	}
	return prev1
}

// Tribonacci returns the nth Tribonacci number (0, 1, 1, 2, 4, ...).
func Tribonacci(n int) int64 {
	if n <= 0 {
		return 0
	}
	if n <= 2 {
		return 1
	}
	var t0, t1, t2 int64 = 0, 1, 1
	for i := 3; i <= n; i++ {
		t0, t1, t2 = t1, t2, t0+t1+t2
	}
	return t2
}

// Knapsack01 maximizes value with each item usable at most once.
func Knapsack01(weights, values []int, capacity int) int {
	if len(weights) != len(values) || capacity < 0 {
		return 0
	}
	dp := make([]int, capacity+1)
	for i := range weights {
		for w := capacity; w >= weights[i]; w-- {
			if v := dp[w-weights[i]] + values[i]; v > dp[w] {
				dp[w] = v
			}
		}
	}
	return dp[capacity]
}

// KnapsackUnbounded maximizes value with unlimited copies of each item.
func KnapsackUnbounded(weights, values []int, capacity int) int {
	if len(weights) != len(values) || capacity < 0 {
		return 0
	}
	dp := make([]int, capacity+1)
	for w := 1; w <= capacity; w++ {
		for i := range weights {
			if weights[i] <= w {
				if v := dp[w-weights[i]] + values[i]; v > dp[w] {
					dp[w] = v
				}
			}
		}
	}
	return dp[capacity]
}

// SubsetSum reports whether some subset of nums sums to target.
func SubsetSum(nums []int, target int) bool {
	if target < 0 {
		return false
	}
	dp := make([]bool, target+1)
	dp[0] = true
	for _, x := range nums {
		for s := target; s >= x && x > 0; s-- {
			if dp[s-x] {
				dp[s] = true
			}
		}
	}
	return dp[target]
}

// CanPartition reports whether nums splits into two equal-sum halves.
func CanPartition(nums []int) bool {
	total := 0
	for _, x := range nums {
		total += x
	}
	if total%2 != 0 {
		return false
	}
	return SubsetSum(nums, total/2)
}

// TargetSumWays counts sign assignments of nums that evaluate to target.
func TargetSumWays(nums []int, target int) int {
	total := 0
	for _, x := range nums {
		total += x
	}
	// P - N = target and P + N = total, so P = (total + target) / 2.
	sum := total + target
	if sum < 0 || sum%2 != 0 {
		return 0
	}
	want := sum / 2
	dp := make([]int, want+1)
	dp[0] = 1
	for _, x := range nums {
		for s := want; s >= x; s-- {
			dp[s] += dp[s-x]
		}
	}
	return dp[want]
}

// LCS returns the length of the longest common subsequence of a and b.
func LCS(a, b string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// LongestCommonSubstring returns the length of the longest contiguous run
// shared by a and b.
func LongestCommonSubstring(a, b string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	best := 0
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > best {
					best = cur[j]
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return best
}

// EditDistance returns the Levenshtein distance between a and b.
func EditDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1]
			} else {
				min := prev[j-1]
				if prev[j] < min {
					min = prev[j]
				}
				if cur[j-1] < min {
					min = cur[j-1]
				}
				cur[j] = min + 1
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// LongestPalindromicSubsequence returns the length of the longest
// palindromic subsequence of s.
func LongestPalindromicSubsequence(s string) int {
	n := len(s)
	if n == 0 {
		return 0
	}
	dp := make([][]int, n)
	for i := range dp {
		dp[i] = make([]int, n)
		dp[i][i] = 1
	}
	for length := 2; length <= n; length++ {
		for i := 0; i+length-1 < n; i++ {
			j := i + length - 1
			if s[i] == s[j] {
				dp[i][j] = dp[i+1][j-1] + 2
			} else if dp[i+1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i+1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}
	return dp[0][n-1]
}

// LongestPalindromicSubstring returns the start index and length of the
// longest palindromic substring, expanding around each center.
func LongestPalindromicSubstring(s string) (start, length int) {
	if len(s) == 0 {
		return 0, 0
	}
	start, length = 0, 1
	expand := func(lo, hi int) {
		for lo >= 0 && hi < len(s) && s[lo] == s[hi] {
			lo--
			hi++
		}
		if hi-lo-1 > length {
			start = lo + 1
			length = hi - lo - 1
		}
	}
	for i := 0; i < len(s); i++ {
		expand(i, i)
		expand(i, i+1)
	}
	return start, length
}

// LIS returns the length of the longest strictly increasing subsequence,
// via patience sorting.
func LIS(nums []int) int {
	tails := make([]int, 0, len(nums))
	for _, x := range nums {
		lo, hi := 0, len(tails)
		for lo < hi {
			mid := (lo + hi) / 2
			if tails[mid] < x {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo == len(tails) {
			tails = append(tails, x)
		} else {
			tails[lo] = x
		}
	}
	return len(tails)
}

// MaxSubarraySum returns the maximum sum over non-empty contiguous
// subarrays (Kadane). Empty input yields 0.
func MaxSubarraySum(nums []int) int {
	if len(nums) == 0 {
		return 0
	}
	best, cur := nums[0], nums[0]
	for _, x := range nums[1:] {
		if cur+x > x {
			cur += x
		} else {
			cur = x
		}
		if cur > best {
			best = cur
		}
	}
	return best
}

// MaxProductSubarray returns the maximum product over non-empty contiguous
// subarrays. Empty input yields 0.
func MaxProductSubarray(nums []int) int {
	if len(nums) == 0 {
		return 0
	}
	maxP, minP, best := nums[0], nums[0], nums[0]
	for _, x := range nums[1:] {
		if x < 0 {
			maxP, minP = minP, maxP
		}
		if maxP*x > x {
			maxP *= x
		} else {
			maxP = x
		}
		if minP*x < x {
			minP *= x
		} else {
			minP = x
		}
		if maxP > best {
			best = maxP
		}
	}
	return best
}

// CoinChangeMin returns the fewest coins summing to amount, or -1 when
// amount is unreachable.
func CoinChangeMin(coins []int, amount int) int {
	if amount < 0 {
		return -1
	}
	if amount == 0 {
		return 0
	}
	const unreachable = 1 << 30
	dp := make([]int, amount+1)
	for i := 1; i <= amount; i++ {
		dp[i] = unreachable
	}
	for _, c := range coins {
		if c <= 0 {
			continue
		}
		for s := c; s <= amount; s++ {
			if dp[s-c]+1 < dp[s] {
				dp[s] = dp[s-c] + 1
			}
		}
	}
	if dp[amount] >= unreachable {
		return -1
	}
	return dp[amount]
}

// CoinChangeWays counts the combinations of coins summing to amount.
func CoinChangeWays(coins []int, amount int) int {
	if amount < 0 {
		return 0
	}
	dp := make([]int, amount+1)
	dp[0] = 1
	for _, c := range coins {
		if c <= 0 {
			continue
		}
		for s := c; s <= amount; s++ {
			dp[s] += dp[s-c]
		}
	}
	return dp[amount]
}

// UniquePaths counts monotone lattice paths across an m x n grid.
func UniquePaths(m, n int) int64 {
	if m <= 0 || n <= 0 {
		return 0
	}
	row := make([]int64, n)
	for j := range row {
		row[j] = 1
	}
	for i := 1; i < m; i++ {
		for j := 1; j < n; j++ {
			row[j] += row[j-1]
		}
	}
	return row[n-1]
}

// UniquePathsObstacles counts paths over a grid where nonzero cells block.
func UniquePathsObstacles(grid [][]int) int {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0
	}
	n := len(grid[0])
	row := make([]int, n)
	if grid[0][0] == 0 {
		row[0] = 1
	}
	for i := range grid {
		for j := 0; j < n; j++ {
			if grid[i][j] != 0 {
				row[j] = 0
			} else if j > 0 {
				row[j] += row[j-1]
			}
		}
	}
	return row[n-1]
}

// MinPathSum returns the cheapest top-left to bottom-right path cost.
func MinPathSum(grid [][]int) int {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0
	}
	n := len(grid[0])
	row := make([]int, n)
	row[0] = grid[0][0]
	for j := 1; j < n; j++ {
		row[j] = row[j-1] + grid[0][j]
	}
	for i := 1; i < len(grid); i++ {
		row[0] += grid[i][0]
		for j := 1; j < n; j++ {
			if row[j-1] < row[j] {
				row[j] = row[j-1]
			}
			row[j] += grid[i][j]
		}
	}
	return row[n-1]
}

// HouseRobber maximizes loot over a row of houses without robbing adjacent
// ones.
func HouseRobber(nums []int) int {
	rob, skip := 0, 0
	for _, x := range nums {
		rob, skip = skip+x, max2(rob, skip)
	}
	return max2(rob, skip)
}

// HouseRobberCircular is HouseRobber on a circular street: the first and
// last houses are adjacent.
func HouseRobberCircular(nums []int) int {
	n := len(nums)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return nums[0]
	}
	return max2(HouseRobber(nums[:n-1]), HouseRobber(nums[1:]))
}

// MaxProfitOneTxn maximizes profit over one buy-sell transaction.
func MaxProfitOneTxn(prices []int) int {
	if len(prices) == 0 {
		return 0
	}
	minPrice := prices[0]
	best := 0
	for _, p := range prices[1:] {
		if p-minPrice > best {
			best = p - minPrice
		}
		if p < minPrice {
			minPrice = p
		}
	}
	return best
}

// MaxProfitUnlimited sums every upward price move.
func MaxProfitUnlimited(prices []int) int {
	profit := 0
	for i := 1; i < len(prices); i++ {
		if prices[i] > prices[i-1] {
			profit += prices[i] - prices[i-1]
		}
	}
	return profit
}

// MaxProfitCooldown maximizes profit when each sell forces a one-day
// cooldown before the next buy.
func MaxProfitCooldown(prices []int) int {
	if len(prices) <= 1 {
		return 0
	}
	sold, rest := 0, 0
	hold := -(1 << 30)
	for _, p := range prices {
		prevSold := sold
		sold = hold + p
		hold = max2(hold, rest-p)
		rest = max2(rest, prevSold)
	}
	return max2(sold, rest)
}

// RodCutting maximizes revenue cutting a rod of length len(prices), where
// prices[i] is the price of a piece of length i+1.
func RodCutting(prices []int) int {
	n := len(prices)
	dp := make([]int, n+1)
	for length := 1; length <= n; length++ {
		for cut := 1; cut <= length; cut++ {
			if v := prices[cut-1] + dp[length-cut]; v > dp[length] {
				dp[length] = v
			}
		}
	}
	return dp[n]
}

// MatrixChainMultiply returns the minimum scalar multiplications to compute
// the chain whose matrix i has dimensions dims[i] x dims[i+1].
func MatrixChainMultiply(dims []int) int {
	n := len(dims)
	if n <= 2 {
		return 0
	}
	dp := make([][]int, n)
	for i := range dp {
		dp[i] = make([]int, n)
	}
	for length := 2; length < n; length++ {
		for i := 1; i+length-1 < n; i++ {
			j := i + length - 1
			dp[i][j] = 1 << 30
			for k := i; k < j; k++ {
				cost := dp[i][k] + dp[k+1][j] + dims[i-1]*dims[k]*dims[j]
				if cost < dp[i][j] {
					dp[i][j] = cost
				}
			}
		}
	}
	return dp[1][n-1]
}

// WordBreak reports whether s segments into words from dict.
func WordBreak(s string, dict []string) bool {
	words := make(map[string]bool, len(dict))
	for _, w := range dict {
		words[w] = true
	}
	dp := make([]bool, len(s)+1)
	dp[0] = true
	for i := 1; i <= len(s); i++ {
		for j := 0; j < i; j++ {
			if dp[j] && words[s[j:i]] {
				dp[i] = true
				break
			}
		}
	}
	return dp[len(s)]
}

func max2(a, b int) int {
	if a > b {
		return a
	}
	return b
}
