// Package skiplist implements the ordered-map contract with a probabilistic
// skip list. Node heights come from a per-list geometric sampler so seeded
// lists replay identically.
package skiplist

import (
	"time"

	"github.com/dborchard/orderedkv/pkg/y/rng"
)

const maxLevel = rng.MaxTower

type node struct {
	key     int32
	value   int32
	forward []*node
}

type List struct {
	head  *node
	level int
	size  int
	tower *rng.Tower
}

type config struct {
	p    float64
	seed int64
}

type Option func(*config)

// WithProbability sets the per-level promotion probability. Values outside
// (0, 1) fall back to 0.5.
func WithProbability(p float64) Option {
	return func(c *config) { c.p = p }
}

// WithSeed fixes the level sampler's seed so runs replay deterministically.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

func New(opts ...Option) *List {
	cfg := config{p: 0.5, seed: time.Now().UnixNano()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &List{
		head:  &node{forward: make([]*node, maxLevel)},
		level: 1,
		tower: rng.NewTower(cfg.p, cfg.seed, maxLevel),
	}
}

func (l *List) Name() string { return "skiplist" }

func (l *List) Len() int { return l.size }

func (l *List) IsEmpty() bool { return l.size == 0 }

func (l *List) Clear() {
	for i := range l.head.forward {
		l.head.forward[i] = nil
	}
	l.level = 1
	l.size = 0
}

/* ---------- core operations ---------- */

func (l *List) Set(key, value int32) bool {
	var update [maxLevel]*node
	cur := l.head

	for i := l.level - 1; i >= 0; i-- {
		for cur.forward[i] != nil && cur.forward[i].key < key {
			cur = cur.forward[i]
		}
		update[i] = cur
	}

	cur = cur.forward[0]
	if cur != nil && cur.key == key {
		cur.value = value
		return false
	}

	height := l.tower.Next()
	if height > l.level {
		for i := l.level; i < height; i++ {
			update[i] = l.head
		}
		l.level = height
	}

	n := &node{key: key, value: value, forward: make([]*node, height)}
	for i := 0; i < height; i++ {
		n.forward[i] = update[i].forward[i]
		update[i].forward[i] = n
	}

	l.size++
	return true
}

func (l *List) find(key int32) *node {
	cur := l.head
	for i := l.level - 1; i >= 0; i-- {
		for cur.forward[i] != nil && cur.forward[i].key < key {
			cur = cur.forward[i]
		}
	}
	cur = cur.forward[0]
	if cur != nil && cur.key == key {
		return cur
	}
	return nil
}

func (l *List) Get(key int32) (int32, bool) {
	if n := l.find(key); n != nil {
		return n.value, true
	}
	return 0, false
}

func (l *List) Contains(key int32) bool {
	return l.find(key) != nil
}

func (l *List) Delete(key int32) bool {
	var update [maxLevel]*node
	cur := l.head

	for i := l.level - 1; i >= 0; i-- {
		for cur.forward[i] != nil && cur.forward[i].key < key {
			cur = cur.forward[i]
		}
		update[i] = cur
	}

	cur = cur.forward[0]
	if cur == nil || cur.key != key {
		return false
	}

	for i := 0; i < l.level; i++ {
		if update[i].forward[i] != cur {
			break
		}
		update[i].forward[i] = cur.forward[i]
	}

	for l.level > 1 && l.head.forward[l.level-1] == nil {
		l.level--
	}

	l.size--
	return true
}

/* ---------- ordered queries ---------- */

func (l *List) Min() (int32, bool) {
	if l.size == 0 {
		return 0, false
	}
	return l.head.forward[0].key, true
}

func (l *List) Max() (int32, bool) {
	if l.size == 0 {
		return 0, false
	}
	cur := l.head
	for i := l.level - 1; i >= 0; i-- {
		for cur.forward[i] != nil {
			cur = cur.forward[i]
		}
	}
	return cur.key, true
}

// seek returns the last node with key < target, using the full descent.
func (l *List) seek(target int32) *node {
	cur := l.head
	for i := l.level - 1; i >= 0; i-- {
		for cur.forward[i] != nil && cur.forward[i].key < target {
			cur = cur.forward[i]
		}
	}
	return cur
}

func (l *List) Ceiling(key int32) (int32, bool) {
	next := l.seek(key).forward[0]
	if next != nil {
		return next.key, true
	}
	return 0, false
}

func (l *List) Floor(key int32) (int32, bool) {
	cur := l.head
	for i := l.level - 1; i >= 0; i-- {
		for cur.forward[i] != nil && cur.forward[i].key <= key {
			cur = cur.forward[i]
		}
	}
	if cur == l.head {
		return 0, false
	}
	return cur.key, true
}

func (l *List) Range(lo, hi int32, out []int32) int {
	if len(out) == 0 || lo > hi {
		return 0
	}
	count := 0
	for cur := l.seek(lo).forward[0]; cur != nil && cur.key <= hi && count < len(out); cur = cur.forward[0] {
		out[count] = cur.key
		count++
	}
	return count
}

func (l *List) Keys(out []int32) int {
	count := 0
	for cur := l.head.forward[0]; cur != nil && count < len(out); cur = cur.forward[0] {
		out[count] = cur.key
		count++
	}
	return count
}

/* ---------- introspection ---------- */

// Height reports the current level: the tallest tower in use.
func (l *List) Height() int { return l.level }

// Validate checks that every forward chain is strictly ascending, that each
// chain above level 0 threads exactly the nodes tall enough to reach it, and
// that the current level matches the tallest live tower.
func (l *List) Validate() bool {
	// Level 0 is the ground truth: every node, ascending order.
	count := 0
	tallest := 0
	for cur := l.head.forward[0]; cur != nil; cur = cur.forward[0] {
		if cur.forward[0] != nil && cur.forward[0].key <= cur.key {
			return false
		}
		if len(cur.forward) < 1 || len(cur.forward) > maxLevel {
			return false
		}
		if len(cur.forward) > tallest {
			tallest = len(cur.forward)
		}
		count++
	}
	if count != l.size {
		return false
	}
	if l.size == 0 {
		return l.level == 1
	}
	if tallest != l.level {
		return false
	}

	for lvl := 1; lvl < l.level; lvl++ {
		prev := l.head
		expect := l.head.forward[lvl]
		// The level-lvl chain must equal the subsequence of level-0 nodes
		// with height > lvl.
		for cur := l.head.forward[0]; cur != nil; cur = cur.forward[0] {
			if len(cur.forward) > lvl {
				if expect != cur {
					return false
				}
				if prev != l.head && prev.key >= cur.key {
					return false
				}
				prev = cur
				expect = cur.forward[lvl]
			}
		}
		if expect != nil {
			return false
		}
	}
	return true
}

// levels reports each live node's tower height in key order; test hook for
// determinism checks.
func (l *List) levels() []int {
	out := make([]int, 0, l.size)
	for cur := l.head.forward[0]; cur != nil; cur = cur.forward[0] {
		out = append(out, len(cur.forward))
	}
	return out
}
