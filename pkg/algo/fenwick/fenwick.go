// Package fenwick implements a binary indexed tree over int64 sums. Indices
// are 0-based at the API; the internal array is 1-based as usual.
package fenwick

type Tree struct {
	tree []int64
	n    int
}

// NewEmpty builds an all-zero tree of size n.
func NewEmpty(n int) *Tree {
	if n < 0 {
		n = 0
	}
	return &Tree{tree: make([]int64, n+1), n: n}
}

// New builds a tree initialized from arr in O(n).
func New(arr []int64) *Tree {
	t := NewEmpty(len(arr))
	for i, v := range arr {
		t.tree[i+1] += v
		if parent := i + 1 + ((i + 1) & -(i + 1)); parent <= t.n {
			t.tree[parent] += t.tree[i+1]
		}
	}
	return t
}

func (t *Tree) Len() int { return t.n }

// Add adds delta to the element at index. Out-of-range indices are ignored.
func (t *Tree) Add(index int, delta int64) {
	if index < 0 || index >= t.n {
		return
	}
	for i := index + 1; i <= t.n; i += i & -i {
		t.tree[i] += delta
	}
}

// Update sets the element at index to value.
func (t *Tree) Update(index int, value int64) {
	if index < 0 || index >= t.n {
		return
	}
	t.Add(index, value-t.Get(index))
}

// PrefixSum returns the sum of elements [0, index]. Negative index yields 0;
// indices past the end clamp to the full sum.
func (t *Tree) PrefixSum(index int) int64 {
	if index < 0 {
		return 0
	}
	if index >= t.n {
		index = t.n - 1
	}
	var sum int64
	for i := index + 1; i > 0; i -= i & -i {
		sum += t.tree[i]
	}
	return sum
}

// RangeSum returns the sum of elements [left, right]. Empty or inverted
// ranges yield 0.
func (t *Tree) RangeSum(left, right int) int64 {
	if left < 0 {
		left = 0
	}
	if left > right {
		return 0
	}
	return t.PrefixSum(right) - t.PrefixSum(left-1)
}

// Get returns the element at index.
func (t *Tree) Get(index int) int64 {
	return t.RangeSum(index, index)
}

// LowerBound returns the smallest index whose prefix sum is >= target,
// or Len() when the total falls short. Requires all elements non-negative.
func (t *Tree) LowerBound(target int64) int {
	if target <= 0 {
		return 0
	}
	pos := 0
	// Largest power of two <= n.
	step := 1
	for step*2 <= t.n {
		step *= 2
	}
	var acc int64
	for ; step > 0; step /= 2 {
		if next := pos + step; next <= t.n && acc+t.tree[next] < target {
			pos = next
			acc += t.tree[next]
		}
	}
	return pos
}
