// Package window implements the two-pointer and sliding-window techniques
// over slices and byte strings. In-place functions say so; everything else
// leaves its input alone.
package window

import "sort"

// TwoSumSorted returns indices i < j with arr[i]+arr[j] == target in a
// sorted array.
func TwoSumSorted(arr []int, target int) (i, j int, ok bool) {
	lo, hi := 0, len(arr)-1
	for lo < hi {
		sum := arr[lo] + arr[hi]
		switch {
		case sum == target:
			return lo, hi, true
		case sum < target:
			lo++
		default:
			hi--
		}
	}
	return 0, 0, false
}

// ThreeSum returns all unique triplets of values summing to target, each
// triplet ascending, in the order found over a sorted copy of nums.
func ThreeSum(nums []int, target int) [][3]int {
	arr := append([]int(nil), nums...)
	sort.Ints(arr)

	var result [][3]int
	for i := 0; i+2 < len(arr); i++ {
		if i > 0 && arr[i] == arr[i-1] {
			continue
		}
		lo, hi := i+1, len(arr)-1
		want := target - arr[i]
		for lo < hi {
			sum := arr[lo] + arr[hi]
			switch {
			case sum == want:
				result = append(result, [3]int{arr[i], arr[lo], arr[hi]})
				for lo < hi && arr[lo] == arr[lo+1] {
					lo++
				}
				for lo < hi && arr[hi] == arr[hi-1] {
					hi--
				}
				lo++
				hi--
			case sum < want:
				lo++
			default:
				hi--
			}
		}
	}
	return result
}

// RemoveDuplicates compacts a sorted array in place and returns the new
// length.
func RemoveDuplicates(arr []int) int {
	if len(arr) == 0 {
		return 0
	}
	w := 1
	for r := 1; r < len(arr); r++ {
		if arr[r] != arr[r-1] {
			arr[w] = arr[r]
			w++
		}
	}
	return w
}

// MoveZeros shifts all zeros to the end in place, keeping the order of the
// nonzero elements.
func MoveZeros(arr []int) {
	w := 0
	for _, x := range arr {
		if x != 0 {
			arr[w] = x
			w++
		}
	}
	for ; w < len(arr); w++ {
		arr[w] = 0
	}
}

// MaxWaterContainer returns the largest area between two heights.
func MaxWaterContainer(heights []int) int {
	best := 0
	lo, hi := 0, len(heights)-1
	for lo < hi {
		h := heights[lo]
		if heights[hi] < h {
			h = heights[hi]
		}
		if area := h * (hi - lo); area > best {
			best = area
		}
		if heights[lo] < heights[hi] {
			lo++
		} else {
			hi--
		}
	}
	return best
}

// IsPalindrome reports whether s reads the same both ways, comparing only
// ASCII letters and digits case-insensitively.
func IsPalindrome(s string) bool {
	lo, hi := 0, len(s)-1
	for lo < hi {
		for lo < hi && !isAlnum(s[lo]) {
			lo++
		}
		for lo < hi && !isAlnum(s[hi]) {
			hi--
		}
		if toLower(s[lo]) != toLower(s[hi]) {
			return false
		}
		lo++
		hi--
	}
	return true
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// ReverseArray reverses arr in place.
func ReverseArray(arr []int) {
	for lo, hi := 0, len(arr)-1; lo < hi; lo, hi = lo+1, hi-1 {
		arr[lo], arr[hi] = arr[hi], arr[lo]
	}
}

// SortColors sorts an array of 0s, 1s and 2s in one pass, in place.
func SortColors(arr []int) {
	lo, mid, hi := 0, 0, len(arr)-1
	for mid <= hi {
		switch arr[mid] {
		case 0:
			arr[lo], arr[mid] = arr[mid], arr[lo]
			lo++
			mid++
		case 1:
			mid++
		default:
			arr[mid], arr[hi] = arr[hi], arr[mid]
			hi--
		}
	}
}

// PartitionArray moves elements < pivot before the rest, in place, and
// returns the boundary index.
func PartitionArray(arr []int, pivot int) int {
	w := 0
	for r := range arr {
		if arr[r] < pivot {
			arr[w], arr[r] = arr[r], arr[w]
			w++
		}
	}
	return w
}

// MaxSumSubarrayK returns the largest sum over windows of exactly k
// elements. k out of range reports false.
func MaxSumSubarrayK(arr []int, k int) (int, bool) {
	if k <= 0 || k > len(arr) {
		return 0, false
	}
	sum := 0
	for _, x := range arr[:k] {
		sum += x
	}
	best := sum
	for i := k; i < len(arr); i++ {
		sum += arr[i] - arr[i-k]
		if sum > best {
			best = sum
		}
	}
	return best, true
}

// MinSubarrayLen returns the length of the shortest contiguous run of
// positive ints summing to at least target, or 0 when none exists.
func MinSubarrayLen(arr []int, target int) int {
	best := len(arr) + 1
	sum, lo := 0, 0
	for hi, x := range arr {
		sum += x
		for sum >= target {
			if hi-lo+1 < best {
				best = hi - lo + 1
			}
			sum -= arr[lo]
			lo++
		}
	}
	if best > len(arr) {
		return 0
	}
	return best
}

// LongestUniqueSubstring returns the length of the longest substring of s
// without repeated bytes.
func LongestUniqueSubstring(s string) int {
	var lastSeen [256]int
	for i := range lastSeen {
		lastSeen[i] = -1
	}
	best, lo := 0, 0
	for hi := 0; hi < len(s); hi++ {
		if idx := lastSeen[s[hi]]; idx >= lo {
			lo = idx + 1
		}
		lastSeen[s[hi]] = hi
		if hi-lo+1 > best {
			best = hi - lo + 1
		}
	}
	return best
}

// CountSubarraysSum counts contiguous runs summing to exactly k, using
// prefix-sum counting so negatives work.
func CountSubarraysSum(arr []int, k int) int {
	seen := map[int]int{0: 1}
	count, sum := 0, 0
	for _, x := range arr {
		sum += x
		count += seen[sum-k]
		seen[sum]++
	}
	return count
}

// SlidingWindowMax returns the maximum of every k-wide window, via a
// monotonic deque of indices. k out of range yields nil.
func SlidingWindowMax(arr []int, k int) []int {
	if k <= 0 || k > len(arr) {
		return nil
	}
	result := make([]int, 0, len(arr)-k+1)
	deque := make([]int, 0, k) // indices, values decreasing
	for i, x := range arr {
		for len(deque) > 0 && arr[deque[len(deque)-1]] <= x {
			deque = deque[:len(deque)-1]
		}
		deque = append(deque, i)
		if deque[0] <= i-k {
			deque = deque[1:]
		}
		if i >= k-1 {
			result = append(result, arr[deque[0]])
		}
	}
	return result
}

// FindAnagrams returns the start indices of every substring of s that is an
// anagram of p.
func FindAnagrams(s, p string) []int {
	if len(p) == 0 || len(p) > len(s) {
		return nil
	}
	var need, have [256]int
	for i := 0; i < len(p); i++ {
		need[p[i]]++
		have[s[i]]++
	}
	var result []int
	if have == need {
		result = append(result, 0)
	}
	for i := len(p); i < len(s); i++ {
		have[s[i]]++
		have[s[i-len(p)]]--
		if have == need {
			result = append(result, i-len(p)+1)
		}
	}
	return result
}

// MinWindowSubstring returns the start and length of the shortest substring
// of s containing every byte of t with multiplicity.
func MinWindowSubstring(s, t string) (start, length int, ok bool) {
	if len(s) == 0 || len(t) == 0 {
		return 0, 0, false
	}
	var need, have [256]int
	required := 0
	for i := 0; i < len(t); i++ {
		if need[t[i]] == 0 {
			required++
		}
		need[t[i]]++
	}

	formed, lo := 0, 0
	bestLen := len(s) + 1
	bestStart := 0
	for hi := 0; hi < len(s); hi++ {
		c := s[hi]
		have[c]++
		if need[c] > 0 && have[c] == need[c] {
			formed++
		}
		for formed == required {
			if hi-lo+1 < bestLen {
				bestLen = hi - lo + 1
				bestStart = lo
			}
			lc := s[lo]
			have[lc]--
			if need[lc] > 0 && have[lc] < need[lc] {
				formed--
			}
			lo++
		}
	}
	if bestLen > len(s) {
		return 0, 0, false
	}
	return bestStart, bestLen, true
}
