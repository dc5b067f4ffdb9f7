// Package ttlcache is a fixed-capacity cache combining per-entry time-based
// expiry with LRU eviction. Expired entries are dropped lazily when an
// operation touches them; Cleanup sweeps the whole cache on demand. Nothing
// runs in the background (see package janitor for scheduled sweeps).
package ttlcache

import (
	"time"

	movingaverage "github.com/RobinUS2/golang-moving-average"
	"github.com/dborchard/orderedkv/pkg/y/hash"
)

const loadFactor = 0.75

// Clock reports the current time in seconds. Injectable for tests.
type Clock func() float64

func systemClock() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// entry lives in the hash table and the recency list at once. head.next is
// the LRU entry, tail.prev the MRU.
type entry struct {
	key      int32
	value    int32
	expireAt float64
	prev     *entry
	next     *entry
	hashNext *entry
}

type Cache struct {
	capacity   int
	size       int
	defaultTTL float64
	clock      Clock
	buckets    []*entry
	head       *entry
	tail       *entry
	moAvg      *movingaverage.MovingAverage
}

type Option func(*Cache)

// WithClock replaces the system clock. The clock must be monotonic
// non-decreasing for expiry to behave.
func WithClock(clock Clock) Option {
	return func(c *Cache) { c.clock = clock }
}

// WithStats keeps a moving average of Cleanup sweep times over the last
// window sweeps.
func WithStats(window int) Option {
	return func(c *Cache) { c.moAvg = movingaverage.New(window) }
}

// New builds a cache holding at most capacity entries, each expiring
// defaultTTL seconds after its last write. Panics when capacity < 1.
func New(capacity int, defaultTTL float64, opts ...Option) *Cache {
	if capacity < 1 {
		panic("ttlcache: capacity must be at least 1")
	}

	c := &Cache{
		capacity:   capacity,
		defaultTTL: defaultTTL,
		clock:      systemClock,
		buckets:    make([]*entry, hash.BucketsFor(capacity, loadFactor)),
		head:       &entry{},
		tail:       &entry{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewWithClock is shorthand for New with an injected clock.
func NewWithClock(capacity int, defaultTTL float64, clock Clock) *Cache {
	return New(capacity, defaultTTL, WithClock(clock))
}

/* ---------- intrusive list and hash table ---------- */

func (c *Cache) bucketOf(key int32) int {
	return int(hash.Mix32(key) % uint32(len(c.buckets)))
}

func (c *Cache) findEntry(key int32) *entry {
	for e := c.buckets[c.bucketOf(key)]; e != nil; e = e.hashNext {
		if e.key == key {
			return e
		}
	}
	return nil
}

func unlink(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

func (c *Cache) pushBack(e *entry) {
	e.prev = c.tail.prev
	e.next = c.tail
	c.tail.prev.next = e
	c.tail.prev = e
}

func (c *Cache) moveToBack(e *entry) {
	unlink(e)
	c.pushBack(e)
}

func (c *Cache) removeFromHash(e *entry) {
	b := c.bucketOf(e.key)
	if c.buckets[b] == e {
		c.buckets[b] = e.hashNext
		return
	}
	for cur := c.buckets[b]; cur.hashNext != nil; cur = cur.hashNext {
		if cur.hashNext == e {
			cur.hashNext = e.hashNext
			return
		}
	}
}

func (c *Cache) remove(e *entry) {
	unlink(e)
	c.removeFromHash(e)
	c.size--
}

func (c *Cache) expired(e *entry, now float64) bool {
	return now > e.expireAt
}

/* ---------- core operations ---------- */

// Get returns the live value for key and marks it most recently used. An
// expired entry is removed and reported as a miss.
func (c *Cache) Get(key int32) (int32, bool) {
	e := c.findEntry(key)
	if e == nil {
		return 0, false
	}
	if c.expired(e, c.clock()) {
		c.remove(e)
		return 0, false
	}
	c.moveToBack(e)
	return e.value, true
}

// Put stores value under key with the default TTL.
func (c *Cache) Put(key, value int32) {
	c.PutWithTTL(key, value, c.defaultTTL)
}

// PutWithTTL stores value under key, expiring ttl seconds from now. Writing
// an existing key resets its expiry and recency even when the old entry had
// already lapsed. Inserting into a full cache sweeps expired entries first
// and then evicts from the LRU end.
func (c *Cache) PutWithTTL(key, value int32, ttl float64) {
	expireAt := c.clock() + ttl

	if e := c.findEntry(key); e != nil {
		e.value = value
		e.expireAt = expireAt
		c.moveToBack(e)
		return
	}

	if c.size >= c.capacity {
		c.Cleanup()
	}
	for c.size >= c.capacity && c.head.next != c.tail {
		c.remove(c.head.next)
	}

	e := &entry{key: key, value: value, expireAt: expireAt}
	b := c.bucketOf(key)
	e.hashNext = c.buckets[b]
	c.buckets[b] = e
	c.pushBack(e)
	c.size++
}

// Delete removes key regardless of expiry and reports whether it was stored.
func (c *Cache) Delete(key int32) bool {
	e := c.findEntry(key)
	if e == nil {
		return false
	}
	c.remove(e)
	return true
}

// Contains reports whether key is stored and live, without touching recency.
func (c *Cache) Contains(key int32) bool {
	e := c.findEntry(key)
	if e == nil {
		return false
	}
	if c.expired(e, c.clock()) {
		c.remove(e)
		return false
	}
	return true
}

/* ---------- maintenance ---------- */

// Cleanup removes every expired entry and returns how many were dropped.
func (c *Cache) Cleanup() int {
	start := time.Now()
	now := c.clock()

	removed := 0
	for e := c.head.next; e != c.tail; {
		next := e.next
		if c.expired(e, now) {
			c.remove(e)
			removed++
		}
		e = next
	}

	if c.moAvg != nil {
		c.moAvg.Add(float64(time.Since(start).Nanoseconds()))
	}
	return removed
}

// AvgCleanupTime reports the moving average of recent Cleanup sweeps. Zero
// unless the cache was built WithStats.
func (c *Cache) AvgCleanupTime() time.Duration {
	if c.moAvg == nil {
		return 0
	}
	return time.Duration(c.moAvg.Avg())
}

// RemainingTTL reports the seconds until key expires. An expired entry is
// removed and reported as a miss.
func (c *Cache) RemainingTTL(key int32) (float64, bool) {
	e := c.findEntry(key)
	if e == nil {
		return 0, false
	}
	now := c.clock()
	if c.expired(e, now) {
		c.remove(e)
		return 0, false
	}
	return e.expireAt - now, true
}

// Refresh resets a live entry's expiry to the default TTL from now and marks
// it most recently used. The stored value is untouched.
func (c *Cache) Refresh(key int32) bool {
	e := c.findEntry(key)
	if e == nil {
		return false
	}
	if c.expired(e, c.clock()) {
		c.remove(e)
		return false
	}
	e.expireAt = c.clock() + c.defaultTTL
	c.moveToBack(e)
	return true
}

/* ---------- properties ---------- */

// Len sweeps expired entries first, so the count reflects only live entries.
func (c *Cache) Len() int {
	c.Cleanup()
	return c.size
}

// LenDirty reads the raw counter; expired entries not yet swept are included.
func (c *Cache) LenDirty() int { return c.size }

func (c *Cache) Cap() int { return c.capacity }

func (c *Cache) IsEmpty() bool { return c.size == 0 }

// IsFull compares against the raw counter; expired entries still count until
// swept.
func (c *Cache) IsFull() bool { return c.size >= c.capacity }

// Clear drops every entry, expired or not.
func (c *Cache) Clear() {
	c.head.next = c.tail
	c.tail.prev = c.head
	for i := range c.buckets {
		c.buckets[i] = nil
	}
	c.size = 0
}

// Validate cross-checks the recency list against the hash table: the list
// length matches the counter, links are mutually consistent, every listed
// entry is findable in its bucket, and every chained entry is on the list.
func (c *Cache) Validate() bool {
	listCount := 0
	onList := make(map[*entry]bool, c.size)
	for e := c.head.next; e != c.tail; e = e.next {
		if e.next.prev != e || e.prev.next != e {
			return false
		}
		if c.findEntry(e.key) != e {
			return false
		}
		onList[e] = true
		listCount++
	}
	if listCount != c.size {
		return false
	}

	hashCount := 0
	for b, e := range c.buckets {
		for ; e != nil; e = e.hashNext {
			if c.bucketOf(e.key) != b || !onList[e] {
				return false
			}
			hashCount++
		}
	}
	return hashCount == c.size
}
