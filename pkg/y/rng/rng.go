// Package rng holds the randomness helpers the probabilistic structures use.
// Every consumer gets its own source; nothing in this module touches the
// process-wide generator, so seeded runs replay exactly.
package rng

import "math/rand"

// MaxTower caps skip-list node heights. 32 levels cover 2^32 entries at
// p = 0.5.
const MaxTower = 32

// Tower samples node heights from a geometric distribution: height h with
// probability p^(h-1) * (1-p), capped at max.
type Tower struct {
	src *rand.Rand
	p   float64
	max int
}

func NewTower(p float64, seed int64, max int) *Tower {
	if p <= 0 || p >= 1 {
		p = 0.5
	}
	if max <= 0 || max > MaxTower {
		max = MaxTower
	}
	return &Tower{
		src: rand.New(rand.NewSource(seed)),
		p:   p,
		max: max,
	}
}

// Next draws the height for a new node, always >= 1.
func (t *Tower) Next() int {
	level := 1
	for t.src.Float64() < t.p && level < t.max {
		level++
	}
	return level
}

func (t *Tower) P() float64 { return t.p }

func (t *Tower) Max() int { return t.max }
