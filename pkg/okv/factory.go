// Package okv wires the ordered-map backends behind a single constructor.
// Callers pick a backend at construction; there is no runtime substitution.
package okv

import (
	"github.com/dborchard/orderedkv/pkg/omap"
	"github.com/dborchard/orderedkv/pkg/omap/btree"
	"github.com/dborchard/orderedkv/pkg/omap/rbtree"
	"github.com/dborchard/orderedkv/pkg/omap/skiplist"
)

func New(typ omap.Typ) (m omap.Map) {
	switch typ {
	case omap.RBTree:
		m = rbtree.New()

	case omap.BTree:
		m = btree.New(btree.DefaultMinDegree)

	case omap.SkipList:
		m = skiplist.New()

	default:
		panic("unknown")
	}

	return
}

// NewBTree builds the B-tree backend with a caller-chosen minimum degree.
func NewBTree(minDegree int) omap.Map {
	return btree.New(minDegree)
}

// NewSkipList builds the skip-list backend with a caller-chosen promotion
// probability and seed.
func NewSkipList(p float64, seed int64) omap.Map {
	return skiplist.New(skiplist.WithProbability(p), skiplist.WithSeed(seed))
}
