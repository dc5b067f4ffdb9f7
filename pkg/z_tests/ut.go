// Package tests holds the shared ordered-map suite. Each backend's test file
// calls these with its own constructor so all backends face identical
// scenarios.
package tests

import (
	"math/rand"
	"testing"

	"github.com/dborchard/orderedkv/pkg/omap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tbtree "github.com/tidwall/btree"
)

// TestBasicOps exercises the full contract on a small fixed key set.
func TestBasicOps(newMap func() omap.Map, t *testing.T) {
	m := newMap()

	for _, k := range []int32{50, 30, 70, 20, 40, 60, 80} {
		assert.True(t, m.Set(k, k*10))
	}
	assert.Equal(t, 7, m.Len())
	assert.True(t, m.Validate())

	out := make([]int32, 16)
	n := m.Range(-1<<31, 1<<31-1, out)
	assert.Equal(t, []int32{20, 30, 40, 50, 60, 70, 80}, out[:n])

	k, ok := m.Floor(45)
	assert.True(t, ok)
	assert.Equal(t, int32(40), k)

	k, ok = m.Ceiling(45)
	assert.True(t, ok)
	assert.Equal(t, int32(50), k)

	k, ok = m.Min()
	assert.True(t, ok)
	assert.Equal(t, int32(20), k)

	k, ok = m.Max()
	assert.True(t, ok)
	assert.Equal(t, int32(80), k)

	assert.True(t, m.Delete(50))
	n = m.Range(-1<<31, 1<<31-1, out)
	assert.Equal(t, []int32{20, 30, 40, 60, 70, 80}, out[:n])

	_, ok = m.Get(50)
	assert.False(t, ok)
	assert.False(t, m.Contains(50))
	assert.True(t, m.Validate())
}

// TestSizeConsistency checks size = inserts - updates - deletes.
func TestSizeConsistency(newMap func() omap.Map, t *testing.T) {
	m := newMap()

	assert.True(t, m.Set(1, 10))
	assert.True(t, m.Set(2, 20))
	assert.True(t, m.Set(3, 30))
	assert.False(t, m.Set(2, 25)) // update, size unchanged
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get(2)
	assert.True(t, ok)
	assert.Equal(t, int32(25), v)

	assert.True(t, m.Delete(1))
	assert.False(t, m.Delete(1))
	assert.Equal(t, 2, m.Len())
	assert.False(t, m.IsEmpty())

	assert.True(t, m.Delete(2))
	assert.True(t, m.Delete(3))
	assert.True(t, m.IsEmpty())
	assert.True(t, m.Validate())
}

// TestRoundTrip inserts a shuffled key set and reads every value back.
func TestRoundTrip(newMap func() omap.Map, t *testing.T) {
	m := newMap()
	r := rand.New(rand.NewSource(7))

	keys := r.Perm(500)
	for _, k := range keys {
		m.Set(int32(k), int32(k)*3)
	}
	require.Equal(t, 500, m.Len())

	for _, k := range keys {
		v, ok := m.Get(int32(k))
		require.True(t, ok)
		require.Equal(t, int32(k)*3, v)
	}
	_, ok := m.Get(500)
	assert.False(t, ok)
	assert.True(t, m.Validate())
}

// TestOrdering verifies the in-order dump is strictly ascending and equals
// the live key set after interleaved inserts and deletes.
func TestOrdering(newMap func() omap.Map, t *testing.T) {
	m := newMap()
	r := rand.New(rand.NewSource(11))
	live := map[int32]bool{}

	for i := 0; i < 2000; i++ {
		k := int32(r.Intn(300))
		if r.Intn(3) == 0 {
			assert.Equal(t, live[k], m.Delete(k))
			delete(live, k)
		} else {
			assert.Equal(t, !live[k], m.Set(k, k))
			live[k] = true
		}
	}

	require.Equal(t, len(live), m.Len())
	out := make([]int32, len(live)+8)
	n := m.Keys(out)
	require.Equal(t, len(live), n)
	for i := 0; i < n; i++ {
		assert.True(t, live[out[i]])
		if i > 0 {
			assert.Less(t, out[i-1], out[i])
		}
	}
	assert.True(t, m.Validate())
}

// TestFloorCeiling compares floor/ceiling against a mirrored sorted set.
func TestFloorCeiling(newMap func() omap.Map, t *testing.T) {
	m := newMap()
	keys := []int32{-40, -7, 0, 3, 19, 19 + 23, 88, 301}
	for _, k := range keys {
		m.Set(k, 1)
	}

	for q := int32(-50); q <= 310; q += 3 {
		var wantFloor, wantCeil int32
		floorOK, ceilOK := false, false
		for _, k := range keys {
			if k <= q && (!floorOK || k > wantFloor) {
				wantFloor, floorOK = k, true
			}
			if k >= q && (!ceilOK || k < wantCeil) {
				wantCeil, ceilOK = k, true
			}
		}

		gotFloor, ok := m.Floor(q)
		require.Equal(t, floorOK, ok, "floor(%d)", q)
		if ok {
			require.Equal(t, wantFloor, gotFloor, "floor(%d)", q)
		}
		gotCeil, ok := m.Ceiling(q)
		require.Equal(t, ceilOK, ok, "ceiling(%d)", q)
		if ok {
			require.Equal(t, wantCeil, gotCeil, "ceiling(%d)", q)
		}
	}
}

// TestRangeWindows covers inverted and truncated windows.
func TestRangeWindows(newMap func() omap.Map, t *testing.T) {
	m := newMap()
	for k := int32(0); k < 100; k += 2 {
		m.Set(k, k)
	}

	out := make([]int32, 100)
	assert.Equal(t, 0, m.Range(60, 40, out))
	assert.Equal(t, 0, m.Range(0, 99, nil))

	n := m.Range(10, 20, out)
	assert.Equal(t, []int32{10, 12, 14, 16, 18, 20}, out[:n])

	// Odd bounds land between stored keys.
	n = m.Range(11, 19, out)
	assert.Equal(t, []int32{12, 14, 16, 18}, out[:n])

	// Buffer smaller than the window truncates from the low end.
	small := make([]int32, 3)
	n = m.Range(0, 98, small)
	assert.Equal(t, []int32{0, 2, 4}, small[:n])

	n = m.Range(200, 300, out)
	assert.Equal(t, 0, n)
}

// TestClear releases everything and leaves a reusable map.
func TestClear(newMap func() omap.Map, t *testing.T) {
	m := newMap()
	for k := int32(0); k < 64; k++ {
		m.Set(k, k)
	}
	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.True(t, m.IsEmpty())
	assert.True(t, m.Validate())
	_, ok := m.Min()
	assert.False(t, ok)
	_, ok = m.Max()
	assert.False(t, ok)
	_, ok = m.Floor(10)
	assert.False(t, ok)

	assert.True(t, m.Set(5, 50))
	assert.Equal(t, 1, m.Len())
}

// TestValidateUnderChurn asserts Validate holds through a long random
// insert/delete sequence.
func TestValidateUnderChurn(newMap func() omap.Map, t *testing.T) {
	m := newMap()
	r := rand.New(rand.NewSource(23))

	for i := 0; i < 3000; i++ {
		k := int32(r.Intn(512))
		if r.Intn(4) == 0 {
			m.Delete(k)
		} else {
			m.Set(k, k^7)
		}
		if i%100 == 99 {
			require.True(t, m.Validate(), "invalid after %d ops", i+1)
		}
	}
	require.True(t, m.Validate())
}

type pair struct {
	k, v int32
}

// TestOracle replays a random workload against a tidwall/btree model and
// compares every observable result.
func TestOracle(newMap func() omap.Map, t *testing.T) {
	m := newMap()
	oracle := tbtree.NewBTreeG[pair](func(a, b pair) bool { return a.k < b.k })
	r := rand.New(rand.NewSource(41))

	for i := 0; i < 5000; i++ {
		k := int32(r.Intn(1000) - 500)
		switch r.Intn(5) {
		case 0:
			gotPrev := !m.Set(k, k*2)
			_, wantPrev := oracle.Set(pair{k, k * 2})
			require.Equal(t, wantPrev, gotPrev)
		case 1:
			got := m.Delete(k)
			_, want := oracle.Delete(pair{k: k})
			require.Equal(t, want, got)
		case 2:
			gotV, gotOK := m.Get(k)
			wantItem, wantOK := oracle.Get(pair{k: k})
			require.Equal(t, wantOK, gotOK)
			if wantOK {
				require.Equal(t, wantItem.v, gotV)
			}
		case 3:
			gotK, gotOK := m.Ceiling(k)
			var wantK int32
			wantOK := false
			oracle.Ascend(pair{k: k}, func(it pair) bool {
				wantK, wantOK = it.k, true
				return false
			})
			require.Equal(t, wantOK, gotOK)
			if wantOK {
				require.Equal(t, wantK, gotK)
			}
		default:
			gotK, gotOK := m.Floor(k)
			var wantK int32
			wantOK := false
			oracle.Descend(pair{k: k}, func(it pair) bool {
				wantK, wantOK = it.k, true
				return false
			})
			require.Equal(t, wantOK, gotOK)
			if wantOK {
				require.Equal(t, wantK, gotK)
			}
		}
	}

	require.Equal(t, oracle.Len(), m.Len())
	out := make([]int32, m.Len())
	n := m.Keys(out)
	require.Equal(t, oracle.Len(), n)
	i := 0
	oracle.Scan(func(it pair) bool {
		require.Equal(t, it.k, out[i])
		i++
		return true
	})
	require.True(t, m.Validate())
}

// RunAll drives every shared scenario against one backend constructor.
func RunAll(newMap func() omap.Map, t *testing.T) {
	t.Run("BasicOps", func(t *testing.T) { TestBasicOps(newMap, t) })
	t.Run("SizeConsistency", func(t *testing.T) { TestSizeConsistency(newMap, t) })
	t.Run("RoundTrip", func(t *testing.T) { TestRoundTrip(newMap, t) })
	t.Run("Ordering", func(t *testing.T) { TestOrdering(newMap, t) })
	t.Run("FloorCeiling", func(t *testing.T) { TestFloorCeiling(newMap, t) })
	t.Run("RangeWindows", func(t *testing.T) { TestRangeWindows(newMap, t) })
	t.Run("Clear", func(t *testing.T) { TestClear(newMap, t) })
	t.Run("ValidateUnderChurn", func(t *testing.T) { TestValidateUnderChurn(newMap, t) })
	t.Run("Oracle", func(t *testing.T) { TestOracle(newMap, t) })
}
