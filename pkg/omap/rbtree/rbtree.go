// Package rbtree implements the ordered-map contract with a red-black tree.
//
// The tree follows the classical sentinel formulation: one shared BLACK node
// stands in for every nil child and for the root's parent, so rotations and
// fix-ups never special-case leaves. The sentinel belongs to the tree and
// never escapes into results.
package rbtree

type color byte

const (
	red color = iota
	black
)

type node struct {
	key    int32
	value  int32
	color  color
	left   *node
	right  *node
	parent *node
}

type Tree struct {
	root     *node
	sentinel *node
	size     int
}

func New() *Tree {
	s := &node{color: black}
	s.left, s.right, s.parent = s, s, s
	return &Tree{root: s, sentinel: s}
}

func (t *Tree) Name() string { return "rbtree" }

func (t *Tree) Len() int { return t.size }

func (t *Tree) IsEmpty() bool { return t.size == 0 }

func (t *Tree) Clear() {
	t.root = t.sentinel
	t.size = 0
}

/* ---------- rotations ---------- */

func (t *Tree) rotateLeft(x *node) {
	y := x.right

	x.right = y.left
	if y.left != t.sentinel {
		y.left.parent = x
	}

	y.parent = x.parent
	if x.parent == t.sentinel {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}

	y.left = x
	x.parent = y
}

func (t *Tree) rotateRight(x *node) {
	y := x.left

	x.left = y.right
	if y.right != t.sentinel {
		y.right.parent = x
	}

	y.parent = x.parent
	if x.parent == t.sentinel {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}

	y.right = x
	x.parent = y
}

/* ---------- insert ---------- */

func (t *Tree) Set(key, value int32) bool {
	y := t.sentinel
	x := t.root

	for x != t.sentinel {
		y = x
		switch {
		case key < x.key:
			x = x.left
		case key > x.key:
			x = x.right
		default:
			x.value = value
			return false
		}
	}

	z := &node{
		key:    key,
		value:  value,
		color:  red,
		left:   t.sentinel,
		right:  t.sentinel,
		parent: y,
	}

	if y == t.sentinel {
		t.root = z
	} else if key < y.key {
		y.left = z
	} else {
		y.right = z
	}

	t.size++
	t.insertFixup(z)
	return true
}

func (t *Tree) insertFixup(z *node) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			uncle := z.parent.parent.right
			if uncle.color == red {
				z.parent.color = black
				uncle.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateRight(z.parent.parent)
			}
		} else {
			uncle := z.parent.parent.left
			if uncle.color == red {
				z.parent.color = black
				uncle.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.color = black
}

/* ---------- lookup ---------- */

func (t *Tree) find(key int32) *node {
	x := t.root
	for x != t.sentinel {
		switch {
		case key < x.key:
			x = x.left
		case key > x.key:
			x = x.right
		default:
			return x
		}
	}
	return nil
}

func (t *Tree) Get(key int32) (int32, bool) {
	if n := t.find(key); n != nil {
		return n.value, true
	}
	return 0, false
}

func (t *Tree) Contains(key int32) bool {
	return t.find(key) != nil
}

/* ---------- delete ---------- */

func (t *Tree) transplant(u, v *node) {
	if u.parent == t.sentinel {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *Tree) minimum(x *node) *node {
	for x.left != t.sentinel {
		x = x.left
	}
	return x
}

func (t *Tree) maximum(x *node) *node {
	for x.right != t.sentinel {
		x = x.right
	}
	return x
}

func (t *Tree) Delete(key int32) bool {
	z := t.find(key)
	if z == nil {
		return false
	}

	y := z
	yColor := y.color
	var x *node

	switch {
	case z.left == t.sentinel:
		x = z.right
		t.transplant(z, z.right)
	case z.right == t.sentinel:
		x = z.left
		t.transplant(z, z.left)
	default:
		y = t.minimum(z.right)
		yColor = y.color
		x = y.right
		if y.parent == z {
			// x may be the sentinel; its parent is scratch state for the
			// fix-up climb below.
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	t.size--

	if yColor == black {
		t.deleteFixup(x)
	}
	return true
}

func (t *Tree) deleteFixup(x *node) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					t.rotateRight(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.rotateLeft(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}

/* ---------- ordered queries ---------- */

func (t *Tree) Min() (int32, bool) {
	if t.root == t.sentinel {
		return 0, false
	}
	return t.minimum(t.root).key, true
}

func (t *Tree) Max() (int32, bool) {
	if t.root == t.sentinel {
		return 0, false
	}
	return t.maximum(t.root).key, true
}

func (t *Tree) Floor(key int32) (int32, bool) {
	x := t.root
	var best *node
	for x != t.sentinel {
		switch {
		case key == x.key:
			return x.key, true
		case key < x.key:
			x = x.left
		default:
			best = x
			x = x.right
		}
	}
	if best != nil {
		return best.key, true
	}
	return 0, false
}

func (t *Tree) Ceiling(key int32) (int32, bool) {
	x := t.root
	var best *node
	for x != t.sentinel {
		switch {
		case key == x.key:
			return x.key, true
		case key > x.key:
			x = x.right
		default:
			best = x
			x = x.left
		}
	}
	if best != nil {
		return best.key, true
	}
	return 0, false
}

func (t *Tree) Range(lo, hi int32, out []int32) int {
	if len(out) == 0 || lo > hi {
		return 0
	}
	return t.rangeWalk(t.root, lo, hi, out, 0)
}

func (t *Tree) rangeWalk(n *node, lo, hi int32, out []int32, count int) int {
	if n == t.sentinel || count >= len(out) {
		return count
	}
	if n.key > lo {
		count = t.rangeWalk(n.left, lo, hi, out, count)
	}
	if count < len(out) && n.key >= lo && n.key <= hi {
		out[count] = n.key
		count++
	}
	if n.key < hi {
		count = t.rangeWalk(n.right, lo, hi, out, count)
	}
	return count
}

func (t *Tree) Keys(out []int32) int {
	return t.inorder(t.root, out, 0)
}

func (t *Tree) inorder(n *node, out []int32, count int) int {
	if n == t.sentinel || count >= len(out) {
		return count
	}
	count = t.inorder(n.left, out, count)
	if count < len(out) {
		out[count] = n.key
		count++
	}
	return t.inorder(n.right, out, count)
}

/* ---------- introspection ---------- */

func (t *Tree) Height() int {
	return t.heightOf(t.root)
}

func (t *Tree) heightOf(n *node) int {
	if n == t.sentinel {
		return 0
	}
	lh := t.heightOf(n.left)
	rh := t.heightOf(n.right)
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}

// BlackHeight counts the BLACK nodes on the leftmost root-to-sentinel path,
// sentinel included.
func (t *Tree) BlackHeight() int {
	if t.root == t.sentinel {
		return 0
	}
	bh := 0
	for x := t.root; x != t.sentinel; x = x.left {
		if x.color == black {
			bh++
		}
	}
	return bh + 1
}

// Validate checks all red-black invariants: the root and sentinel are BLACK,
// no RED node has a RED child, every path to a sentinel carries the same
// number of BLACK nodes, and in-order traversal is strictly ascending.
func (t *Tree) Validate() bool {
	if t.sentinel.color != black {
		return false
	}
	if t.root != t.sentinel && t.root.color != black {
		return false
	}
	return t.blackWalk(t.root) != -1
}

// blackWalk returns the subtree's black-height, or -1 on any violation.
func (t *Tree) blackWalk(n *node) int {
	if n == t.sentinel {
		return 1
	}

	if n.color == red {
		if n.left.color == red || n.right.color == red {
			return -1
		}
	}

	if n.left != t.sentinel && n.left.key >= n.key {
		return -1
	}
	if n.right != t.sentinel && n.right.key <= n.key {
		return -1
	}

	lbh := t.blackWalk(n.left)
	rbh := t.blackWalk(n.right)
	if lbh == -1 || rbh == -1 || lbh != rbh {
		return -1
	}

	if n.color == black {
		return lbh + 1
	}
	return lbh
}
