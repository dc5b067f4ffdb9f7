// Package btree implements the ordered-map contract with an in-memory
// B-tree of configurable minimum degree t. Inserts split full children on
// the way down and deletes refill thin children on the way down, so neither
// ever walks back up the tree.
package btree

const DefaultMinDegree = 3

type node struct {
	keys     []int32
	vals     []int32
	children []*node
	leaf     bool
}

func newNode(t int, leaf bool) *node {
	n := &node{
		keys: make([]int32, 0, 2*t-1),
		vals: make([]int32, 0, 2*t-1),
		leaf: leaf,
	}
	if !leaf {
		n.children = make([]*node, 0, 2*t)
	}
	return n
}

type Tree struct {
	root      *node
	minDegree int
	size      int
}

// New builds an empty tree with the given minimum degree. Degrees below 2
// cannot satisfy the node-occupancy bounds and fall back to the default.
func New(minDegree int) *Tree {
	if minDegree < 2 {
		minDegree = DefaultMinDegree
	}
	return &Tree{
		root:      newNode(minDegree, true),
		minDegree: minDegree,
	}
}

func (t *Tree) Name() string { return "btree" }

func (t *Tree) Len() int { return t.size }

func (t *Tree) IsEmpty() bool { return t.size == 0 }

func (t *Tree) MinDegree() int { return t.minDegree }

func (t *Tree) Clear() {
	t.root = newNode(t.minDegree, true)
	t.size = 0
}

// keyIndex returns the position of key in n, or the index of the first key
// greater than it (the child slot to descend into).
func (n *node) keyIndex(key int32) int {
	lo, hi := 0, len(n.keys)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case n.keys[mid] == key:
			return mid
		case n.keys[mid] < key:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return lo
}

/* ---------- lookup ---------- */

func (t *Tree) Get(key int32) (int32, bool) {
	n := t.root
	for {
		i := n.keyIndex(key)
		if i < len(n.keys) && n.keys[i] == key {
			return n.vals[i], true
		}
		if n.leaf {
			return 0, false
		}
		n = n.children[i]
	}
}

func (t *Tree) Contains(key int32) bool {
	_, ok := t.Get(key)
	return ok
}

/* ---------- insert ---------- */

// splitChild splits the full child at idx, lifting its median key into n.
func (t *Tree) splitChild(n *node, idx int) {
	td := t.minDegree
	child := n.children[idx]

	sibling := newNode(td, child.leaf)
	sibling.keys = append(sibling.keys, child.keys[td:]...)
	sibling.vals = append(sibling.vals, child.vals[td:]...)
	if !child.leaf {
		sibling.children = append(sibling.children, child.children[td:]...)
		child.children = child.children[:td]
	}

	midKey, midVal := child.keys[td-1], child.vals[td-1]
	child.keys = child.keys[:td-1]
	child.vals = child.vals[:td-1]

	n.children = append(n.children, nil)
	copy(n.children[idx+2:], n.children[idx+1:])
	n.children[idx+1] = sibling

	n.keys = append(n.keys, 0)
	copy(n.keys[idx+1:], n.keys[idx:])
	n.keys[idx] = midKey
	n.vals = append(n.vals, 0)
	copy(n.vals[idx+1:], n.vals[idx:])
	n.vals[idx] = midVal
}

func (t *Tree) Set(key, value int32) bool {
	root := t.root
	if len(root.keys) == 2*t.minDegree-1 {
		newRoot := newNode(t.minDegree, false)
		newRoot.children = append(newRoot.children, root)
		t.root = newRoot
		t.splitChild(newRoot, 0)
	}
	inserted := t.insertNonFull(t.root, key, value)
	if inserted {
		t.size++
	}
	return inserted
}

func (t *Tree) insertNonFull(n *node, key, value int32) bool {
	idx := n.keyIndex(key)
	if idx < len(n.keys) && n.keys[idx] == key {
		n.vals[idx] = value
		return false
	}

	if n.leaf {
		n.keys = append(n.keys, 0)
		copy(n.keys[idx+1:], n.keys[idx:])
		n.keys[idx] = key
		n.vals = append(n.vals, 0)
		copy(n.vals[idx+1:], n.vals[idx:])
		n.vals[idx] = value
		return true
	}

	if len(n.children[idx].keys) == 2*t.minDegree-1 {
		t.splitChild(n, idx)
		switch {
		case key > n.keys[idx]:
			idx++
		case key == n.keys[idx]:
			// The lifted median is the key being set.
			n.vals[idx] = value
			return false
		}
	}
	return t.insertNonFull(n.children[idx], key, value)
}

/* ---------- delete ---------- */

func (t *Tree) Delete(key int32) bool {
	deleted := t.deleteKey(t.root, key)
	if deleted {
		t.size--
		if len(t.root.keys) == 0 && !t.root.leaf {
			t.root = t.root.children[0]
		}
	}
	return deleted
}

func (t *Tree) deleteKey(n *node, key int32) bool {
	idx := n.keyIndex(key)

	if idx < len(n.keys) && n.keys[idx] == key {
		if n.leaf {
			n.removeAt(idx)
			return true
		}
		return t.deleteInternal(n, idx)
	}

	if n.leaf {
		return false
	}

	lastChild := idx == len(n.keys)
	if len(n.children[idx].keys) < t.minDegree {
		t.fillChild(n, idx)
	}
	// A merge may have shifted the target child left by one.
	if lastChild && idx > len(n.keys) {
		return t.deleteKey(n.children[idx-1], key)
	}
	return t.deleteKey(n.children[idx], key)
}

func (n *node) removeAt(idx int) {
	n.keys = append(n.keys[:idx], n.keys[idx+1:]...)
	n.vals = append(n.vals[:idx], n.vals[idx+1:]...)
}

func (t *Tree) deleteInternal(n *node, idx int) bool {
	key := n.keys[idx]
	td := t.minDegree

	switch {
	case len(n.children[idx].keys) >= td:
		pk, pv := predecessor(n, idx)
		n.keys[idx], n.vals[idx] = pk, pv
		return t.deleteKey(n.children[idx], pk)
	case len(n.children[idx+1].keys) >= td:
		sk, sv := successor(n, idx)
		n.keys[idx], n.vals[idx] = sk, sv
		return t.deleteKey(n.children[idx+1], sk)
	default:
		t.mergeChildren(n, idx)
		return t.deleteKey(n.children[idx], key)
	}
}

// predecessor returns the largest entry in the subtree left of key idx.
func predecessor(n *node, idx int) (int32, int32) {
	cur := n.children[idx]
	for !cur.leaf {
		cur = cur.children[len(cur.children)-1]
	}
	last := len(cur.keys) - 1
	return cur.keys[last], cur.vals[last]
}

// successor returns the smallest entry in the subtree right of key idx.
func successor(n *node, idx int) (int32, int32) {
	cur := n.children[idx+1]
	for !cur.leaf {
		cur = cur.children[0]
	}
	return cur.keys[0], cur.vals[0]
}

// mergeChildren folds children idx and idx+1 plus the separating key into a
// single 2t-1 key node.
func (t *Tree) mergeChildren(n *node, idx int) {
	left := n.children[idx]
	right := n.children[idx+1]

	left.keys = append(left.keys, n.keys[idx])
	left.vals = append(left.vals, n.vals[idx])
	left.keys = append(left.keys, right.keys...)
	left.vals = append(left.vals, right.vals...)
	if !left.leaf {
		left.children = append(left.children, right.children...)
	}

	n.removeAt(idx)
	n.children = append(n.children[:idx+1], n.children[idx+2:]...)
}

// fillChild tops up a t-1 key child before descending into it: borrow from a
// rich sibling through the parent, else merge with an adjacent sibling.
func (t *Tree) fillChild(n *node, idx int) {
	td := t.minDegree

	if idx > 0 && len(n.children[idx-1].keys) >= td {
		child := n.children[idx]
		sibling := n.children[idx-1]

		child.keys = append([]int32{n.keys[idx-1]}, child.keys...)
		child.vals = append([]int32{n.vals[idx-1]}, child.vals...)
		if !child.leaf {
			last := len(sibling.children) - 1
			child.children = append([]*node{sibling.children[last]}, child.children...)
			sibling.children = sibling.children[:last]
		}

		last := len(sibling.keys) - 1
		n.keys[idx-1], n.vals[idx-1] = sibling.keys[last], sibling.vals[last]
		sibling.keys = sibling.keys[:last]
		sibling.vals = sibling.vals[:last]
		return
	}

	if idx < len(n.keys) && len(n.children[idx+1].keys) >= td {
		child := n.children[idx]
		sibling := n.children[idx+1]

		child.keys = append(child.keys, n.keys[idx])
		child.vals = append(child.vals, n.vals[idx])
		if !child.leaf {
			child.children = append(child.children, sibling.children[0])
			sibling.children = sibling.children[1:]
		}

		n.keys[idx], n.vals[idx] = sibling.keys[0], sibling.vals[0]
		sibling.keys = sibling.keys[1:]
		sibling.vals = sibling.vals[1:]
		return
	}

	if idx < len(n.keys) {
		t.mergeChildren(n, idx)
	} else {
		t.mergeChildren(n, idx-1)
	}
}

/* ---------- ordered queries ---------- */

func (t *Tree) Min() (int32, bool) {
	if t.size == 0 {
		return 0, false
	}
	cur := t.root
	for !cur.leaf {
		cur = cur.children[0]
	}
	return cur.keys[0], true
}

func (t *Tree) Max() (int32, bool) {
	if t.size == 0 {
		return 0, false
	}
	cur := t.root
	for !cur.leaf {
		cur = cur.children[len(cur.children)-1]
	}
	return cur.keys[len(cur.keys)-1], true
}

func (t *Tree) Floor(key int32) (int32, bool) {
	n := t.root
	var best int32
	found := false
	for {
		idx := n.keyIndex(key)
		if idx < len(n.keys) && n.keys[idx] == key {
			return key, true
		}
		if idx > 0 {
			best = n.keys[idx-1]
			found = true
		}
		if n.leaf {
			break
		}
		n = n.children[idx]
	}
	return best, found
}

func (t *Tree) Ceiling(key int32) (int32, bool) {
	n := t.root
	var best int32
	found := false
	for {
		idx := n.keyIndex(key)
		if idx < len(n.keys) && n.keys[idx] == key {
			return key, true
		}
		if idx < len(n.keys) {
			best = n.keys[idx]
			found = true
		}
		if n.leaf {
			break
		}
		n = n.children[idx]
	}
	return best, found
}

func (t *Tree) Range(lo, hi int32, out []int32) int {
	if len(out) == 0 || lo > hi {
		return 0
	}
	return rangeWalk(t.root, lo, hi, out, 0)
}

func rangeWalk(n *node, lo, hi int32, out []int32, count int) int {
	if n == nil || count >= len(out) {
		return count
	}

	i := 0
	for i < len(n.keys) && n.keys[i] < lo {
		i++
	}
	// The child left of the first in-window key may still hold lo itself.
	if !n.leaf {
		count = rangeWalk(n.children[i], lo, hi, out, count)
	}
	for i < len(n.keys) && n.keys[i] <= hi {
		if count >= len(out) {
			return count
		}
		out[count] = n.keys[i]
		count++
		i++
		if !n.leaf {
			count = rangeWalk(n.children[i], lo, hi, out, count)
		}
	}
	return count
}

func (t *Tree) Keys(out []int32) int {
	return inorder(t.root, out, 0)
}

func inorder(n *node, out []int32, count int) int {
	if n == nil || count >= len(out) {
		return count
	}
	for i := range n.keys {
		if !n.leaf {
			count = inorder(n.children[i], out, count)
		}
		if count >= len(out) {
			return count
		}
		out[count] = n.keys[i]
		count++
	}
	if !n.leaf {
		count = inorder(n.children[len(n.keys)], out, count)
	}
	return count
}

/* ---------- introspection ---------- */

// Height counts levels; the empty tree has height 0 and a lone root leaf
// with keys has height 1.
func (t *Tree) Height() int {
	if len(t.root.keys) == 0 {
		return 0
	}
	h := 1
	for cur := t.root; !cur.leaf; cur = cur.children[0] {
		h++
	}
	return h
}

// Validate checks node occupancy bounds, strict intra-node key ordering,
// separator partitioning between parent and children, and equal leaf depth.
func (t *Tree) Validate() bool {
	if t.root == nil {
		return false
	}
	leafDepth := -1
	const (
		noMin = int64(-1) << 62
		noMax = int64(1) << 62
	)
	return validateNode(t.root, t.minDegree, noMin, noMax, 0, &leafDepth)
}

func validateNode(n *node, td int, min, max int64, depth int, leafDepth *int) bool {
	if depth > 0 && len(n.keys) < td-1 {
		return false
	}
	if len(n.keys) > 2*td-1 {
		return false
	}
	if len(n.vals) != len(n.keys) {
		return false
	}

	for i, k := range n.keys {
		if int64(k) <= min || int64(k) >= max {
			return false
		}
		if i > 0 && k <= n.keys[i-1] {
			return false
		}
	}

	if n.leaf {
		if len(n.children) != 0 {
			return false
		}
		if *leafDepth == -1 {
			*leafDepth = depth
		}
		return *leafDepth == depth
	}

	if len(n.children) != len(n.keys)+1 {
		return false
	}
	for i := range n.children {
		childMin, childMax := min, max
		if i > 0 {
			childMin = int64(n.keys[i-1])
		}
		if i < len(n.keys) {
			childMax = int64(n.keys[i])
		}
		if !validateNode(n.children[i], td, childMin, childMax, depth+1, leafDepth) {
			return false
		}
	}
	return true
}
