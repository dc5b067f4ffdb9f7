package janitor

import (
	"testing"
	"time"

	"github.com/dborchard/orderedkv/pkg/cache/ttlcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackgroundSweep(t *testing.T) {
	c := ttlcache.New(16, 0.01) // entries lapse after 10ms
	j := New(c, 20*time.Millisecond)

	j.Do(func(c *ttlcache.Cache) {
		for k := int32(0); k < 8; k++ {
			c.Put(k, k)
		}
	})

	j.Start()
	defer j.Stop()

	require.Eventually(t, func() bool {
		return j.Swept() == 8
	}, 2*time.Second, 10*time.Millisecond)

	j.Do(func(c *ttlcache.Cache) {
		assert.Equal(t, 0, c.LenDirty())
		assert.True(t, c.Validate())
	})
}

func TestStartStopIdempotent(t *testing.T) {
	c := ttlcache.New(4, 10)
	j := New(c, 10*time.Millisecond)

	j.Start()
	j.Start()
	j.Stop()
	j.Stop()

	assert.Equal(t, int64(0), j.Swept())
}

func TestStopHaltsSweeps(t *testing.T) {
	c := ttlcache.New(16, 0.01)
	j := New(c, 10*time.Millisecond)
	j.Start()
	j.Stop()

	j.Do(func(c *ttlcache.Cache) { c.Put(1, 1) })
	time.Sleep(50 * time.Millisecond)

	// Nothing swept after Stop; the lapsed entry is still resident.
	assert.Equal(t, int64(0), j.Swept())
	j.Do(func(c *ttlcache.Cache) {
		assert.Equal(t, 1, c.LenDirty())
	})
}

func TestIntervalPanics(t *testing.T) {
	c := ttlcache.New(4, 10)
	assert.Panics(t, func() { New(c, 0) })
	assert.Panics(t, func() { New(c, -time.Second) })
}
