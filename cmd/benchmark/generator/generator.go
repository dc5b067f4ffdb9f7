package generator

import (
	"math/rand"
	"sync/atomic"
)

// Generator yields keys in [lo, hi]. Implementations that need randomness
// draw from the caller-supplied source so each worker can keep its own.
type Generator interface {
	Next(r *rand.Rand) int64
}

// Distribution selects how keys are drawn from the range.
type Distribution int

const (
	SEQUENTIAL Distribution = iota
	UNIFORM
)

// Build returns a generator over the `count` keys starting at `start`.
func Build(dist Distribution, start, count int64) Generator {
	hi := start + count - 1
	switch dist {
	case SEQUENTIAL:
		return NewSequential(start, hi)
	case UNIFORM:
		return NewUniform(start, hi)
	}
	panic("generator: unknown distribution")
}

type sequential struct {
	lo      int64
	span    int64
	counter atomic.Int64
}

// NewSequential cycles through [lo, hi] in order, wrapping at hi.
func NewSequential(lo, hi int64) Generator {
	return &sequential{lo: lo, span: hi - lo + 1}
}

func (s *sequential) Next(_ *rand.Rand) int64 {
	n := s.counter.Add(1) - 1
	return s.lo + n%s.span
}

type uniform struct {
	lo   int64
	span int64
}

// NewUniform draws uniformly from [lo, hi].
func NewUniform(lo, hi int64) Generator {
	return &uniform{lo: lo, span: hi - lo + 1}
}

func (u *uniform) Next(r *rand.Rand) int64 {
	return u.lo + r.Int63n(u.span)
}
