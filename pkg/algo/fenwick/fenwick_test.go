package fenwick

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndSums(t *testing.T) {
	tr := New([]int64{3, 2, -1, 6, 5, 4, -3, 3})

	assert.Equal(t, 8, tr.Len())
	assert.Equal(t, int64(3), tr.PrefixSum(0))
	assert.Equal(t, int64(5), tr.PrefixSum(1))
	assert.Equal(t, int64(10), tr.PrefixSum(4))
	assert.Equal(t, int64(19), tr.PrefixSum(7))
	assert.Equal(t, int64(19), tr.PrefixSum(100)) // clamps
	assert.Equal(t, int64(0), tr.PrefixSum(-1))

	assert.Equal(t, int64(7), tr.RangeSum(1, 3))
	assert.Equal(t, int64(-1), tr.RangeSum(2, 2))
	assert.Equal(t, int64(0), tr.RangeSum(5, 2))

	for i, want := range []int64{3, 2, -1, 6, 5, 4, -3, 3} {
		assert.Equal(t, want, tr.Get(i))
	}
}

func TestAddAndUpdate(t *testing.T) {
	tr := NewEmpty(5)
	assert.Equal(t, int64(0), tr.PrefixSum(4))

	tr.Add(2, 10)
	tr.Add(4, 3)
	assert.Equal(t, int64(10), tr.PrefixSum(2))
	assert.Equal(t, int64(13), tr.PrefixSum(4))

	tr.Update(2, 4)
	assert.Equal(t, int64(4), tr.Get(2))
	assert.Equal(t, int64(7), tr.PrefixSum(4))

	// Out-of-range writes are ignored.
	tr.Add(-1, 100)
	tr.Add(5, 100)
	tr.Update(9, 100)
	assert.Equal(t, int64(7), tr.PrefixSum(4))
}

func TestAgainstNaive(t *testing.T) {
	r := rand.New(rand.NewSource(19))
	const n = 64
	naive := make([]int64, n)
	tr := NewEmpty(n)

	for op := 0; op < 2000; op++ {
		i := r.Intn(n)
		switch r.Intn(3) {
		case 0:
			d := int64(r.Intn(21) - 10)
			naive[i] += d
			tr.Add(i, d)
		case 1:
			v := int64(r.Intn(100))
			naive[i] = v
			tr.Update(i, v)
		default:
			l, h := r.Intn(n), r.Intn(n)
			if l > h {
				l, h = h, l
			}
			var want int64
			for _, v := range naive[l : h+1] {
				want += v
			}
			require.Equal(t, want, tr.RangeSum(l, h))
		}
	}
}

func TestLowerBound(t *testing.T) {
	tr := New([]int64{1, 2, 3, 4}) // prefix sums 1, 3, 6, 10

	assert.Equal(t, 0, tr.LowerBound(0))
	assert.Equal(t, 0, tr.LowerBound(1))
	assert.Equal(t, 1, tr.LowerBound(2))
	assert.Equal(t, 1, tr.LowerBound(3))
	assert.Equal(t, 2, tr.LowerBound(4))
	assert.Equal(t, 3, tr.LowerBound(10))
	assert.Equal(t, 4, tr.LowerBound(11)) // past the total

	empty := NewEmpty(0)
	assert.Equal(t, 0, empty.LowerBound(5))
}
