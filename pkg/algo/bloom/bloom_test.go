package bloom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoFalseNegatives(t *testing.T) {
	f := New(4096, 4)

	keys := make([]string, 200)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
		f.Add(keys[i])
	}
	assert.Equal(t, uint(200), f.Count())

	for _, k := range keys {
		require.True(t, f.Contains(k), "inserted key %q reported absent", k)
	}
}

func TestDefinitelyAbsent(t *testing.T) {
	f := New(1<<16, 5)
	for i := 0; i < 100; i++ {
		f.Add(fmt.Sprintf("present-%d", i))
	}

	misses := 0
	for i := 0; i < 1000; i++ {
		if !f.Contains(fmt.Sprintf("absent-%d", i)) {
			misses++
		}
	}
	// At this load the filter is nearly empty; false positives are rare.
	assert.Greater(t, misses, 950)
}

func TestBytesAndStringsAgree(t *testing.T) {
	f := New(1024, 3)
	f.AddBytes([]byte{0x01, 0x02, 0xff})
	assert.True(t, f.ContainsBytes([]byte{0x01, 0x02, 0xff}))

	f.Add("hello")
	assert.True(t, f.ContainsBytes([]byte("hello")))

	f.AddBytes(nil) // ignored
	assert.False(t, f.ContainsBytes(nil))
}

func TestNewOptimal(t *testing.T) {
	f := NewOptimal(1000, 0.01)
	// m = -1000 ln(0.01) / ln(2)^2 ~ 9586, k ~ 7.
	assert.InDelta(t, 9586, int(f.NumBits()), 2)
	assert.Equal(t, uint(7), f.numHashes)

	assert.Panics(t, func() { NewOptimal(0, 0.01) })
	assert.Panics(t, func() { NewOptimal(100, 0) })
	assert.Panics(t, func() { NewOptimal(100, 1) })
	assert.Panics(t, func() { New(0, 3) })
}

func TestFalsePositiveRate(t *testing.T) {
	f := NewOptimal(1000, 0.01)
	assert.Equal(t, 0.0, f.FalsePositiveRate())

	for i := 0; i < 1000; i++ {
		f.Add(fmt.Sprintf("k%d", i))
	}
	rate := f.FalsePositiveRate()
	assert.Greater(t, rate, 0.0)
	assert.Less(t, rate, 0.02)
}

func TestBitsSetGrows(t *testing.T) {
	f := New(4096, 4)
	assert.Equal(t, uint(0), f.BitsSet())

	f.Add("a")
	first := f.BitsSet()
	assert.Greater(t, first, uint(0))
	assert.LessOrEqual(t, first, uint(4))

	f.Add("b")
	assert.GreaterOrEqual(t, f.BitsSet(), first)
}

func TestMerge(t *testing.T) {
	a := New(2048, 4)
	b := New(2048, 4)
	a.Add("alpha")
	b.Add("beta")

	require.True(t, a.Merge(b))
	assert.True(t, a.Contains("alpha"))
	assert.True(t, a.Contains("beta"))
	assert.Equal(t, uint(2), a.Count())

	mismatched := New(1024, 4)
	assert.False(t, a.Merge(mismatched))
	assert.False(t, a.Merge(nil))
}

func TestClear(t *testing.T) {
	f := New(512, 3)
	f.Add("x")
	f.Clear()

	assert.Equal(t, uint(0), f.Count())
	assert.Equal(t, uint(0), f.BitsSet())
	assert.False(t, f.Contains("x"))
}
