package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMix32Spreads(t *testing.T) {
	// Sequential keys must not collapse into the same low bits.
	seen := make(map[uint32]bool)
	for k := int32(0); k < 1024; k++ {
		seen[Mix32(k)%64] = true
	}
	assert.Equal(t, 64, len(seen))

	assert.Equal(t, Mix32(42), Mix32(42))
	assert.NotEqual(t, Mix32(1), Mix32(2))
}

func TestNextPow2(t *testing.T) {
	assert.Equal(t, 1, NextPow2(0))
	assert.Equal(t, 1, NextPow2(1))
	assert.Equal(t, 2, NextPow2(2))
	assert.Equal(t, 4, NextPow2(3))
	assert.Equal(t, 16, NextPow2(16))
	assert.Equal(t, 32, NextPow2(17))
}

func TestBucketsFor(t *testing.T) {
	// Starts at 16 and doubles until capacity/buckets <= load.
	assert.Equal(t, 16, BucketsFor(1, 0.75))
	assert.Equal(t, 16, BucketsFor(12, 0.75))
	assert.Equal(t, 32, BucketsFor(13, 0.75))
	assert.Equal(t, 32, BucketsFor(24, 0.75))
	assert.Equal(t, 64, BucketsFor(25, 0.75))
	assert.Equal(t, 2048, BucketsFor(1000, 0.5))
}
