package hash

import "math/bits"

// Mix32 scrambles an int32 key into a well-distributed uint32. The constant
// is Degski's multiplier; two xor-shift-multiply rounds are enough for bucket
// selection over small tables.
func Mix32(key int32) uint32 {
	k := uint32(key)
	k = ((k >> 16) ^ k) * 0x45d9f3b
	k = ((k >> 16) ^ k) * 0x45d9f3b
	k = (k >> 16) ^ k
	return k
}

// NextPow2 returns the smallest power of two >= n. n <= 1 yields 1.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// BucketsFor sizes a non-resizing hash table: start at 16 buckets and double
// until capacity/buckets stays at or under maxLoad.
func BucketsFor(capacity int, maxLoad float64) int {
	n := 16
	for float64(capacity)/float64(n) > maxLoad {
		n *= 2
	}
	return n
}
