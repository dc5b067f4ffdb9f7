// Package bloom implements a bloom filter over a packed bitset, using
// enhanced double hashing (FNV-1a and DJB2 mixed through the murmur3
// finalizer) to derive k probe positions per key.
package bloom

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

type Filter struct {
	bits      *bitset.BitSet
	numBits   uint
	numHashes uint
	count     uint
}

// New builds a filter with numBits bits and numHashes probes per key.
// Panics when either is zero.
func New(numBits, numHashes uint) *Filter {
	if numBits == 0 || numHashes == 0 {
		panic("bloom: bits and hashes must be positive")
	}
	return &Filter{
		bits:      bitset.New(numBits),
		numBits:   numBits,
		numHashes: numHashes,
	}
}

// NewOptimal sizes the filter for n expected elements at the given false
// positive rate: m = -n ln(p) / ln(2)^2, k = (m/n) ln(2).
func NewOptimal(n uint, fpRate float64) *Filter {
	if n == 0 || fpRate <= 0 || fpRate >= 1 {
		panic("bloom: need n > 0 and fpRate in (0, 1)")
	}
	ln2 := math.Ln2
	m := -float64(n) * math.Log(fpRate) / (ln2 * ln2)
	k := m / float64(n) * ln2

	numHashes := uint(math.Ceil(k))
	if numHashes == 0 {
		numHashes = 1
	}
	return New(uint(math.Ceil(m)), numHashes)
}

func fnv1a(data []byte) uint32 {
	h := uint32(2166136261)
	for _, b := range data {
		h ^= uint32(b)
		h *= 16777619
	}
	return h
}

func djb2(data []byte) uint32 {
	h := uint32(5381)
	for _, b := range data {
		h = h<<5 + h + uint32(b)
	}
	return h
}

// murmurMix is the murmur3 32-bit finalizer.
func murmurMix(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// indexes yields the probe position for round i: mix(h1 + i*h2 + i*i).
func (f *Filter) index(h1, h2 uint32, i uint) uint {
	combined := h1 + uint32(i)*h2 + uint32(i*i)
	return uint(murmurMix(combined)) % f.numBits
}

// AddBytes inserts a raw key. Empty keys are ignored.
func (f *Filter) AddBytes(data []byte) {
	if len(data) == 0 {
		return
	}
	h1, h2 := fnv1a(data), djb2(data)
	for i := uint(0); i < f.numHashes; i++ {
		f.bits.Set(f.index(h1, h2, i))
	}
	f.count++
}

// Add inserts a string key.
func (f *Filter) Add(s string) {
	f.AddBytes([]byte(s))
}

// ContainsBytes reports whether a raw key may have been added. False means
// definitely absent.
func (f *Filter) ContainsBytes(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	h1, h2 := fnv1a(data), djb2(data)
	for i := uint(0); i < f.numHashes; i++ {
		if !f.bits.Test(f.index(h1, h2, i)) {
			return false
		}
	}
	return true
}

// Contains reports whether a string key may have been added.
func (f *Filter) Contains(s string) bool {
	return f.ContainsBytes([]byte(s))
}

// BitsSet returns the number of set bits.
func (f *Filter) BitsSet() uint {
	return f.bits.Count()
}

// Count returns how many keys were added.
func (f *Filter) Count() uint {
	return f.count
}

// NumBits returns the filter width.
func (f *Filter) NumBits() uint {
	return f.numBits
}

// FalsePositiveRate estimates the current rate as (1 - e^(-kn/m))^k.
func (f *Filter) FalsePositiveRate() float64 {
	m := float64(f.numBits)
	k := float64(f.numHashes)
	n := float64(f.count)
	return math.Pow(1-math.Exp(-k*n/m), k)
}

// Merge ORs other into f. Both filters must share width and hash count.
func (f *Filter) Merge(other *Filter) bool {
	if other == nil || f.numBits != other.numBits || f.numHashes != other.numHashes {
		return false
	}
	f.bits.InPlaceUnion(other.bits)
	f.count += other.count
	return true
}

// Clear resets the filter to empty.
func (f *Filter) Clear() {
	f.bits.ClearAll()
	f.count = 0
}
