// Package searching implements the classic array searches. Index-returning
// functions report -1 on a miss; the arrays are never mutated. Sorted inputs
// mean ascending order unless stated otherwise.
package searching

import "math"

// Linear scans for target and returns its first index.
func Linear(arr []int, target int) int {
	for i, x := range arr {
		if x == target {
			return i
		}
	}
	return -1
}

// Binary searches a sorted array and returns any index holding target.
func Binary(arr []int, target int) int {
	lo, hi := 0, len(arr)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case arr[mid] == target:
			return mid
		case arr[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}

// BinaryRecursive is Binary with explicit recursion.
func BinaryRecursive(arr []int, target int) int {
	return binaryHelper(arr, 0, len(arr)-1, target)
}

func binaryHelper(arr []int, lo, hi, target int) int {
	if lo > hi {
		return -1
	}
	mid := lo + (hi-lo)/2
	switch {
	case arr[mid] == target:
		return mid
	case arr[mid] < target:
		return binaryHelper(arr, mid+1, hi, target)
	default:
		return binaryHelper(arr, lo, mid-1, target)
	}
}

// LowerBound returns the first index whose element is >= target, possibly
// len(arr).
func LowerBound(arr []int, target int) int {
	lo, hi := 0, len(arr)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if arr[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// UpperBound returns the first index whose element is > target, possibly
// len(arr).
func UpperBound(arr []int, target int) int {
	lo, hi := 0, len(arr)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if arr[mid] <= target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// FindFirst returns the first index of target in a sorted array.
func FindFirst(arr []int, target int) int {
	i := LowerBound(arr, target)
	if i < len(arr) && arr[i] == target {
		return i
	}
	return -1
}

// FindLast returns the last index of target in a sorted array.
func FindLast(arr []int, target int) int {
	i := UpperBound(arr, target) - 1
	if i >= 0 && arr[i] == target {
		return i
	}
	return -1
}

// CountOccurrences counts target in a sorted array.
func CountOccurrences(arr []int, target int) int {
	return UpperBound(arr, target) - LowerBound(arr, target)
}

// SearchInsert returns where target sits or would be inserted.
func SearchInsert(arr []int, target int) int {
	return LowerBound(arr, target)
}

// Interpolation searches a sorted array by estimating the target's position
// from the value range. Degrades on skewed distributions, never worse than
// linear.
func Interpolation(arr []int, target int) int {
	lo, hi := 0, len(arr)-1
	for lo <= hi && target >= arr[lo] && target <= arr[hi] {
		if lo == hi || arr[lo] == arr[hi] {
			if arr[lo] == target {
				return lo
			}
			return -1
		}
		pos := lo + int(float64(hi-lo)/float64(arr[hi]-arr[lo])*float64(target-arr[lo]))
		if pos > hi {
			pos = hi
		}
		switch {
		case arr[pos] == target:
			return pos
		case arr[pos] < target:
			lo = pos + 1
		default:
			hi = pos - 1
		}
	}
	return -1
}

// Exponential doubles a bound until it passes target, then binary-searches
// the bracketed block.
func Exponential(arr []int, target int) int {
	if len(arr) == 0 {
		return -1
	}
	if arr[0] == target {
		return 0
	}
	bound := 1
	for bound < len(arr) && arr[bound] <= target {
		bound *= 2
	}
	hi := bound
	if hi >= len(arr) {
		hi = len(arr) - 1
	}
	if idx := Binary(arr[bound/2:hi+1], target); idx != -1 {
		return bound/2 + idx
	}
	return -1
}

// Jump scans a sorted array in sqrt(n)-sized blocks.
func Jump(arr []int, target int) int {
	n := len(arr)
	if n == 0 {
		return -1
	}
	step := int(math.Sqrt(float64(n)))
	if step < 1 {
		step = 1
	}
	prev, cur := 0, step
	for cur < n && arr[cur] < target {
		prev = cur
		cur += step
	}
	for i := prev; i < n && i <= cur; i++ {
		if arr[i] == target {
			return i
		}
	}
	return -1
}

// TernaryMin returns the index of the minimum of a unimodal (valley) array.
func TernaryMin(arr []int) int {
	if len(arr) == 0 {
		return 0
	}
	lo, hi := 0, len(arr)-1
	for hi-lo > 2 {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if arr[m1] < arr[m2] {
			hi = m2
		} else {
			lo = m1
		}
	}
	min := lo
	for i := lo + 1; i <= hi; i++ {
		if arr[i] < arr[min] {
			min = i
		}
	}
	return min
}

// TernaryMax returns the index of the maximum of a unimodal (peak) array.
func TernaryMax(arr []int) int {
	if len(arr) == 0 {
		return 0
	}
	lo, hi := 0, len(arr)-1
	for hi-lo > 2 {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if arr[m1] > arr[m2] {
			hi = m2
		} else {
			lo = m1
		}
	}
	max := lo
	for i := lo + 1; i <= hi; i++ {
		if arr[i] > arr[max] {
			max = i
		}
	}
	return max
}

// SearchRotated finds target in a sorted array rotated at an unknown pivot.
func SearchRotated(arr []int, target int) int {
	lo, hi := 0, len(arr)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if arr[mid] == target {
			return mid
		}
		if arr[lo] <= arr[mid] {
			// Left half is sorted.
			if target >= arr[lo] && target < arr[mid] {
				hi = mid - 1
			} else {
				lo = mid + 1
			}
		} else {
			if target > arr[mid] && target <= arr[hi] {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
	}
	return -1
}

// FindRotationPoint returns the index of the smallest element of a rotated
// sorted array.
func FindRotationPoint(arr []int) int {
	n := len(arr)
	if n == 0 {
		return 0
	}
	if n == 1 || arr[0] < arr[n-1] {
		return 0
	}
	lo, hi := 0, n-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if arr[mid] > arr[hi] {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// FindPeak returns an index whose element is not smaller than its neighbors.
func FindPeak(arr []int) int {
	if len(arr) <= 1 {
		return 0
	}
	lo, hi := 0, len(arr)-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if arr[mid] > arr[mid+1] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// SearchMatrix finds target in a matrix whose rows and columns are each
// sorted, walking a staircase from the top-right corner.
func SearchMatrix(matrix [][]int, target int) (row, col int, ok bool) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return 0, 0, false
	}
	r, c := 0, len(matrix[0])-1
	for r < len(matrix) && c >= 0 {
		switch {
		case matrix[r][c] == target:
			return r, c, true
		case matrix[r][c] > target:
			c--
		default:
			r++
		}
	}
	return 0, 0, false
}

// SearchMatrixSorted finds target in a matrix that is one sorted sequence
// laid out row by row.
func SearchMatrixSorted(matrix [][]int, target int) (row, col int, ok bool) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return 0, 0, false
	}
	cols := len(matrix[0])
	lo, hi := 0, len(matrix)*cols-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		cur := matrix[mid/cols][mid%cols]
		switch {
		case cur == target:
			return mid / cols, mid % cols, true
		case cur < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, 0, false
}

// SqrtBinary returns floor(sqrt(n)), or -1 for negative n.
func SqrtBinary(n int) int {
	if n < 0 {
		return -1
	}
	if n == 0 {
		return 0
	}
	lo, hi, result := 1, n, 0
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if mid <= n/mid {
			result = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return result
}

// KthMissing returns the kth missing positive integer relative to a sorted
// array of distinct positives.
func KthMissing(arr []int, k int) int {
	lo, hi := 0, len(arr)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if arr[mid]-(mid+1) < k {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return k + lo
}
