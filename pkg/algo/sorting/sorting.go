// Package sorting implements the classic in-place sorts. Comparison-based
// sorts are generic over ordered element types; the counting sorts work on
// ints. All sorts mutate the slice they are given.
package sorting

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// Bubble sorts by repeated adjacent swaps, stopping early on a clean pass.
func Bubble[T constraints.Ordered](arr []T) {
	for n := len(arr); n > 1; {
		swapped := false
		for i := 1; i < n; i++ {
			if arr[i-1] > arr[i] {
				arr[i-1], arr[i] = arr[i], arr[i-1]
				swapped = true
			}
		}
		n--
		if !swapped {
			return
		}
	}
}

// Selection repeatedly moves the minimum of the unsorted tail to the front.
func Selection[T constraints.Ordered](arr []T) {
	for i := 0; i < len(arr)-1; i++ {
		min := i
		for j := i + 1; j < len(arr); j++ {
			if arr[j] < arr[min] {
				min = j
			}
		}
		arr[i], arr[min] = arr[min], arr[i]
	}
}

// Insertion shifts each element left into its sorted position.
func Insertion[T constraints.Ordered](arr []T) {
	for i := 1; i < len(arr); i++ {
		cur := arr[i]
		j := i
		for j > 0 && arr[j-1] > cur {
			arr[j] = arr[j-1]
			j--
		}
		arr[j] = cur
	}
}

// Merge sorts stably with a single scratch buffer.
func Merge[T constraints.Ordered](arr []T) {
	if len(arr) <= 1 {
		return
	}
	scratch := make([]T, len(arr))
	mergeSort(arr, scratch)
}

func mergeSort[T constraints.Ordered](arr, scratch []T) {
	if len(arr) <= 1 {
		return
	}
	mid := len(arr) / 2
	mergeSort(arr[:mid], scratch[:mid])
	mergeSort(arr[mid:], scratch[mid:])

	copy(scratch, arr)
	i, j := 0, mid
	for k := 0; k < len(arr); k++ {
		switch {
		case i >= mid:
			arr[k] = scratch[j]
			j++
		case j >= len(arr):
			arr[k] = scratch[i]
			i++
		case scratch[j] < scratch[i]:
			arr[k] = scratch[j]
			j++
		default:
			arr[k] = scratch[i]
			i++
		}
	}
}

// Quick sorts with Lomuto partitioning on the last element.
func Quick[T constraints.Ordered](arr []T) {
	if len(arr) <= 1 {
		return
	}
	p := partition(arr)
	Quick(arr[:p])
	Quick(arr[p+1:])
}

func partition[T constraints.Ordered](arr []T) int {
	pivot := arr[len(arr)-1]
	i := 0
	for j := 0; j < len(arr)-1; j++ {
		if arr[j] < pivot {
			arr[i], arr[j] = arr[j], arr[i]
			i++
		}
	}
	arr[i], arr[len(arr)-1] = arr[len(arr)-1], arr[i]
	return i
}

// QuickMedian is Quick with median-of-three pivot selection, which defuses
// the sorted-input worst case.
func QuickMedian[T constraints.Ordered](arr []T) {
	if len(arr) <= 1 {
		return
	}
	medianOfThree(arr)
	p := partition(arr)
	QuickMedian(arr[:p])
	QuickMedian(arr[p+1:])
}

// medianOfThree moves the median of first, middle, last into the pivot slot.
func medianOfThree[T constraints.Ordered](arr []T) {
	mid, last := len(arr)/2, len(arr)-1
	if arr[mid] < arr[0] {
		arr[mid], arr[0] = arr[0], arr[mid]
	}
	if arr[last] < arr[0] {
		arr[last], arr[0] = arr[0], arr[last]
	}
	if arr[mid] < arr[last] {
		arr[mid], arr[last] = arr[last], arr[mid]
	}
}

// Counting sorts ints by histogram. Handles negatives via a min offset; the
// value range should be modest relative to the input length.
func Counting(arr []int) {
	if len(arr) <= 1 {
		return
	}
	min, max := arr[0], arr[0]
	for _, x := range arr[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	counts := make([]int, max-min+1)
	for _, x := range arr {
		counts[x-min]++
	}
	i := 0
	for v, c := range counts {
		for ; c > 0; c-- {
			arr[i] = v + min
			i++
		}
	}
}

// Radix sorts non-negative ints digit by digit in base 10. Negative inputs
// are not supported.
func Radix(arr []int) {
	if len(arr) <= 1 {
		return
	}
	max := arr[0]
	for _, x := range arr[1:] {
		if x > max {
			max = x
		}
	}
	output := make([]int, len(arr))
	for exp := 1; max/exp > 0; exp *= 10 {
		var counts [10]int
		for _, x := range arr {
			counts[(x/exp)%10]++
		}
		for d := 1; d < 10; d++ {
			counts[d] += counts[d-1]
		}
		for i := len(arr) - 1; i >= 0; i-- {
			d := (arr[i] / exp) % 10
			counts[d]--
			output[counts[d]] = arr[i]
		}
		copy(arr, output)
	}
}

// Shell sorts with Ciura's gap sequence.
func Shell[T constraints.Ordered](arr []T) {
	for _, gap := range []int{701, 301, 132, 57, 23, 10, 4, 1} {
		if gap >= len(arr) {
			continue
		}
		for i := gap; i < len(arr); i++ {
			cur := arr[i]
			j := i
			for j >= gap && arr[j-gap] > cur {
				arr[j] = arr[j-gap]
				j -= gap
			}
			arr[j] = cur
		}
	}
}

// DutchFlag sorts an array of 0s, 1s and 2s in one pass.
func DutchFlag(arr []int) {
	low, mid, high := 0, 0, len(arr)-1
	for mid <= high {
		switch arr[mid] {
		case 0:
			arr[low], arr[mid] = arr[mid], arr[low]
			low++
			mid++
		case 1:
			mid++
		default:
			arr[mid], arr[high] = arr[high], arr[mid]
			high--
		}
	}
}

// QuickSelect returns the k-th smallest element (0-indexed) without sorting,
// leaving the input untouched. k out of range reports false.
func QuickSelect(arr []int, k int) (int, bool) {
	if k < 0 || k >= len(arr) {
		return 0, false
	}
	work := make([]int, len(arr))
	copy(work, arr)

	lo, hi := 0, len(work)-1
	for {
		if lo == hi {
			return work[lo], true
		}
		p := lo + rand.Intn(hi-lo+1)
		work[p], work[hi] = work[hi], work[p]
		pi := lo + partition(work[lo:hi+1])
		switch {
		case pi == k:
			return work[pi], true
		case pi < k:
			lo = pi + 1
		default:
			hi = pi - 1
		}
	}
}

// IsSorted reports whether arr is in ascending order.
func IsSorted[T constraints.Ordered](arr []T) bool {
	for i := 1; i < len(arr); i++ {
		if arr[i-1] > arr[i] {
			return false
		}
	}
	return true
}

// IsSortedDesc reports whether arr is in descending order.
func IsSortedDesc[T constraints.Ordered](arr []T) bool {
	for i := 1; i < len(arr); i++ {
		if arr[i-1] < arr[i] {
			return false
		}
	}
	return true
}
