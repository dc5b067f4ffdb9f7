package omap

// Map is the ordered-map contract every backend implements. Keys are unique
// int32 values ordered numerically; values are opaque int32 payloads. An
// instance is exclusively owned by one caller: no operation is safe to run
// concurrently with another on the same Map, and enumerations (Range, Keys)
// must not be interleaved with mutations.
type Map interface {
	// Set stores value under key and reports true when a new entry was
	// created, false when an existing key was overwritten.
	Set(key, value int32) bool
	Get(key int32) (int32, bool)
	Contains(key int32) bool
	// Delete reports true when the key was present and removed.
	Delete(key int32) bool

	Min() (int32, bool)
	Max() (int32, bool)
	// Floor returns the largest stored key <= key.
	Floor(key int32) (int32, bool)
	// Ceiling returns the smallest stored key >= key.
	Ceiling(key int32) (int32, bool)

	// Range writes the keys in [lo, hi] in ascending order into out, up to
	// len(out) entries, and returns how many were written. lo > hi yields 0.
	Range(lo, hi int32, out []int32) int
	// Keys writes the full in-order key sequence into out, up to len(out).
	Keys(out []int32) int

	Len() int
	IsEmpty() bool
	Clear()

	// Validate walks the whole structure and checks every backend invariant.
	// Read-only; meant for tests.
	Validate() bool
	Height() int

	Name() string
}

type Typ int

const (
	RBTree Typ = iota
	BTree
	SkipList
)
